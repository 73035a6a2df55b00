package form

import "errors"

var (
	ErrInFlight      = errors.New("form: submission already in flight")
	ErrDraftNotFound = errors.New("form: draft not found")
	ErrClosed        = errors.New("form: closed")
	ErrStoreFailed   = errors.New("form: draft store failed")
)
