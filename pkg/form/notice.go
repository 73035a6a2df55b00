package form

import "context"

// NoticeKind classifies the outcome of a submit attempt.
type NoticeKind string

const (
	NoticeInvalid NoticeKind = "invalid"
	NoticeSent    NoticeKind = "sent"
	NoticeFailed  NoticeKind = "failed"
	NoticeBusy    NoticeKind = "busy"
)

// Notice is emitted once per submit attempt. Err is set for every kind but
// NoticeSent. It carries no user-facing text.
type Notice struct {
	Err  error
	Kind NoticeKind
}

// Notifier receives submit outcomes.
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notice)

// Notify implements Notifier.
func (f NotifierFunc) Notify(ctx context.Context, n Notice) { f(ctx, n) }
