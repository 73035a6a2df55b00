package mailer

import (
	"context"
	"fmt"
)

// Sender delivers a fully rendered Email.
type Sender interface {
	Send(ctx context.Context, email *Email) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, email *Email) error

// Send implements Sender.
func (f SenderFunc) Send(ctx context.Context, email *Email) error { return f(ctx, email) }

// Email is a message ready for delivery.
type Email struct {
	Headers map[string]string
	Tags    map[string]string
	Subject string
	HTML    string
	Text    string
	From    string // empty means the sender's default
	ReplyTo string
	To      []string
}

// Validate reports the first missing required part.
func (e *Email) Validate() error {
	switch {
	case len(e.To) == 0:
		return ErrNoRecipient
	case e.Subject == "":
		return ErrNoSubject
	case e.HTML == "":
		return ErrNoContent
	}
	return nil
}

// Address formats name and email as "Name <email>".
// The bare email is returned when name is empty.
func Address(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
