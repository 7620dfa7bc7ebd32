package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project status constants
const (
	StatusPlanning   = "Planning"
	StatusInProgress = "In Progress"
	StatusReview     = "Review"
	StatusCompleted  = "Completed"
	StatusOnHold     = "On Hold"
)

// Project represents a construction project in the workspace
type Project struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Location  string    `json:"location"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Budget    float64   `json:"budget"`
	Status    string    `json:"status"`
	Progress  int       `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
}

// ProjectCreate represents project creation data. ID and CreatedAt are
// assigned by the store, never by the caller.
type ProjectCreate struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Type      string  `json:"type" validate:"required,max=100"`
	Location  string  `json:"location" validate:"max=255"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Budget    float64 `json:"budget" validate:"gte=0"`
	Status    string  `json:"status" validate:"omitempty,oneof=Planning 'In Progress' Review Completed 'On Hold'"`
	Progress  int     `json:"progress" validate:"gte=0,lte=100"`
}

// ProjectUpdate represents a partial project update. Nil fields are left
// unchanged; ID and CreatedAt are never touched.
type ProjectUpdate struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,max=255"`
	Type      *string  `json:"type,omitempty" validate:"omitempty,max=100"`
	Location  *string  `json:"location,omitempty" validate:"omitempty,max=255"`
	StartDate *string  `json:"start_date,omitempty"`
	EndDate   *string  `json:"end_date,omitempty"`
	Budget    *float64 `json:"budget,omitempty" validate:"omitempty,gte=0"`
	Status    *string  `json:"status,omitempty" validate:"omitempty,oneof=Planning 'In Progress' Review Completed 'On Hold'"`
	Progress  *int     `json:"progress,omitempty" validate:"omitempty,gte=0,lte=100"`
}
