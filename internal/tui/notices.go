package tui

import (
	"sync"

	"github.com/alexisbeaulieu97/designvars/internal/form"
)

// NoticeQueue collects controller notices until the model shows them.
type NoticeQueue struct {
	mu      sync.Mutex
	pending []form.Notice
}

// NewNoticeQueue returns an empty queue.
func NewNoticeQueue() *NoticeQueue {
	return &NoticeQueue{}
}

// Notify implements form.Notifier.
func (q *NoticeQueue) Notify(n form.Notice) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, n)
}

// Drain returns and clears every queued notice.
func (q *NoticeQueue) Drain() []form.Notice {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}
