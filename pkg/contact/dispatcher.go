package contact

import "context"

// Dispatcher hands a validated draft to an external email provider.
//
// Implementations make at most one network attempt per call, hold no
// cross-call state and report every failure as a *DispatchError.
// Callers are expected to run Validate first; dispatchers do not re-validate.
type Dispatcher interface {
	Submit(ctx context.Context, d Draft) error
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(ctx context.Context, d Draft) error

// Submit calls f and wraps any failure in a DispatchError.
func (f DispatcherFunc) Submit(ctx context.Context, d Draft) error {
	if err := f(ctx, d); err != nil {
		return NewDispatchError(err)
	}
	return nil
}
