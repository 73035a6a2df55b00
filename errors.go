package site

import "errors"

var (
	ErrInvalidConfig     = errors.New("site: invalid configuration")
	ErrUnknownDispatcher = errors.New("site: unknown contact dispatcher")
)
