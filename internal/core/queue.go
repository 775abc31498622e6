package core

import (
	"context"
	"time"
)

// Queue is a bounded FIFO of messages shared by the producer tasks and the
// single consumer. It is created once and handed to every task.
type Queue struct {
	ch chan Message
}

func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = QueueSize
	}
	return &Queue{ch: make(chan Message, capacity)}
}

// Send enqueues m, waiting at most timeout for space. A zero timeout never
// blocks. It reports false if the message was not queued.
func (q *Queue) Send(ctx context.Context, m Message, timeout time.Duration) bool {
	select {
	case q.ch <- m:
		return true
	default:
	}
	if timeout <= 0 {
		return false
	}

	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case q.ch <- m:
		return true
	case <-t.C:
		return false
	case <-ctx.Done():
		return false
	}
}

// Receive dequeues the oldest message, waiting at most timeout for one.
func (q *Queue) Receive(ctx context.Context, timeout time.Duration) (Message, bool) {
	select {
	case m := <-q.ch:
		return m, true
	default:
	}
	if timeout <= 0 {
		return Message{}, false
	}

	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case m := <-q.ch:
		return m, true
	case <-t.C:
		return Message{}, false
	case <-ctx.Done():
		return Message{}, false
	}
}

func (q *Queue) Len() int { return len(q.ch) }

func (q *Queue) Cap() int { return cap(q.ch) }
