package domain

import (
	"time"

	"github.com/google/uuid"
)

// Member status constants
const (
	MemberActive   = "active"
	MemberInactive = "inactive"
)

// Member is a team member record managed in the workspace. It is distinct
// from Identity, which is the authenticated session itself.
type Member struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      string      `json:"role"`
	Status    string      `json:"status"`
	LastLogin time.Time   `json:"last_login"`
	Projects  []uuid.UUID `json:"projects"`
}

// MemberCreate represents member creation data
type MemberCreate struct {
	Name     string      `json:"name" validate:"required,max=255"`
	Email    string      `json:"email" validate:"required,email,max=255"`
	Role     string      `json:"role" validate:"required,max=100"`
	Status   string      `json:"status" validate:"omitempty,oneof=active inactive"`
	Projects []uuid.UUID `json:"projects,omitempty"`
}

// MemberUpdate represents a partial member update. A status change through
// here is the sole activate/deactivate mechanism.
type MemberUpdate struct {
	Name      *string     `json:"name,omitempty" validate:"omitempty,max=255"`
	Email     *string     `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Role      *string     `json:"role,omitempty" validate:"omitempty,max=100"`
	Status    *string     `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	LastLogin *time.Time  `json:"last_login,omitempty"`
	Projects  []uuid.UUID `json:"projects,omitempty"`
}
