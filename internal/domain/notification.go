package domain

import "time"

// Notification is a mutation event published for UI feedback. It carries no
// semantic weight; losing notifications on restart is acceptable.
type Notification struct {
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
