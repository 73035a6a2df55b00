package contact

import "errors"

// Rejection reasons returned by Validate. Their messages are the ones
// surfaced to callers, so they carry no package prefix.
var (
	ErrMissingRequired = errors.New("missing required fields")
	ErrInvalidEmail    = errors.New("invalid email format")
)

var (
	// ErrDispatchFailed is matched by every DispatchError.
	ErrDispatchFailed = errors.New("contact: dispatch failed")

	// ErrUnknownField indicates a field name outside the draft vocabulary.
	ErrUnknownField = errors.New("contact: unknown field")

	// ErrUnknownService indicates a service identifier outside the fixed list.
	ErrUnknownService = errors.New("contact: unknown service")
)

// ValidationError is returned by Validate when a draft is not submittable.
// Err is always ErrMissingRequired or ErrInvalidEmail.
type ValidationError struct {
	Err   error
	Field Field // first offending field, advisory only
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// AsValidationError extracts a ValidationError from err if present.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// DispatchError reports a failed hand-off to the email provider.
// The cause is meant for logs, never for the visitor.
type DispatchError struct {
	Cause error
}

// NewDispatchError wraps cause. An existing DispatchError is returned as is.
func NewDispatchError(cause error) *DispatchError {
	var de *DispatchError
	if errors.As(cause, &de) {
		return de
	}
	return &DispatchError{Cause: cause}
}

func (e *DispatchError) Error() string {
	if e.Cause == nil {
		return ErrDispatchFailed.Error()
	}
	return ErrDispatchFailed.Error() + ": " + e.Cause.Error()
}

func (e *DispatchError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrDispatchFailed}
	}
	return []error{ErrDispatchFailed, e.Cause}
}

// IsDispatchError reports whether err is or wraps a DispatchError.
func IsDispatchError(err error) bool {
	var de *DispatchError
	return errors.As(err, &de)
}
