package form

import "context"

// Clipboard receives the generated CSS on copy.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// NoticeKind distinguishes informational notices from failures.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeError
)

func (k NoticeKind) String() string {
	if k == NoticeError {
		return "error"
	}
	return "info"
}

// Notice is a user-facing message raised by the controller.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Notifier shows notices to the user. Surfaces decide how blocking that is.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

// Notify calls f.
func (f NotifierFunc) Notify(n Notice) {
	f(n)
}

type discardNotifier struct{}

func (discardNotifier) Notify(Notice) {}
