package notify

import (
	"sync"
	"time"

	"github.com/buildbridge/dashboard/internal/domain"
	"github.com/rs/zerolog/log"
)

// Notifier receives mutation events from the workspace for UI feedback.
type Notifier interface {
	Publish(title, message string)
}

// Ring is a bounded in-process notifier. Oldest entries are dropped once
// capacity is reached; nothing is persisted.
type Ring struct {
	mu       sync.Mutex
	capacity int
	entries  []domain.Notification
}

// NewRing creates a ring notifier with the given capacity.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = 50
	}
	return &Ring{capacity: capacity}
}

// Publish records a notification and logs it.
func (r *Ring) Publish(title, message string) {
	n := domain.Notification{
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}

	r.mu.Lock()
	r.entries = append(r.entries, n)
	if len(r.entries) > r.capacity {
		r.entries = r.entries[len(r.entries)-r.capacity:]
	}
	r.mu.Unlock()

	log.Debug().Str("title", title).Str("message", message).Msg("notification published")
}

// Recent returns the buffered notifications, newest last.
func (r *Ring) Recent() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Notification, len(r.entries))
	copy(out, r.entries)
	return out
}
