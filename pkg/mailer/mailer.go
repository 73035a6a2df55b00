package mailer

import (
	"context"
	"errors"
	"strings"
	texttemplate "text/template"
)

// Config holds mailer defaults.
type Config struct {
	FallbackSubject string `env:"MAILER_FALLBACK_SUBJECT" envDefault:"Nuevo mensaje"`
	Layout          string `env:"MAILER_LAYOUT" envDefault:"base.html"`
}

// Mailer renders templates and hands the result to a Sender.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	config   Config
}

// New creates a Mailer.
func New(sender Sender, renderer *Renderer, cfg Config) *Mailer {
	if cfg.Layout == "" {
		cfg.Layout = "base.html"
	}
	return &Mailer{sender: sender, renderer: renderer, config: cfg}
}

// Message describes a templated email.
type Message struct {
	Data     any
	Headers  map[string]string
	Tags     map[string]string
	To       string
	Template string
	Subject  string // overrides the template's subject
	ReplyTo  string
}

// Send renders msg and delivers it.
// The subject is msg.Subject, else the template's "subject" front matter,
// else Config.FallbackSubject. It is executed as a text template with msg.Data.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}

	out, err := m.renderer.Render(m.config.Layout, msg.Template, msg.Data)
	if err != nil {
		return err
	}

	subject := msg.Subject
	if subject == "" {
		subject = out.Metadata.String("subject")
	}
	if subject == "" {
		subject = m.config.FallbackSubject
	}
	subject, err = executeSubject(subject, msg.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	email := &Email{
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: subject,
		HTML:    out.HTML,
		Text:    out.Text,
		Headers: msg.Headers,
		Tags:    msg.Tags,
	}
	if err := email.Validate(); err != nil {
		return err
	}
	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

func executeSubject(subject string, data any) (string, error) {
	if !strings.Contains(subject, "{{") {
		return subject, nil
	}
	t, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(b.String()), " "), nil
}
