package emailjs

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredentials = errors.New("emailjs: service id, template id and public key are required")
	ErrRequestFailed      = errors.New("emailjs: request failed")
)

// APIError is returned when EmailJS answers with a non-2xx status.
type APIError struct {
	Body       string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("emailjs: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("emailjs: unexpected status %d: %s", e.StatusCode, e.Body)
}
