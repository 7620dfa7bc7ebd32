package domain

import (
	"time"

	"github.com/google/uuid"
)

// Simulation status constants
const (
	SimulationPending   = "pending"
	SimulationCompleted = "completed"
	SimulationCancelled = "cancelled"
)

// Simulation kind constants. These stand in for the work the dashboard
// fakes: file upload progress, payment processing and report export.
const (
	SimulationUpload  = "upload"
	SimulationPayment = "payment"
	SimulationExport  = "export"
)

// Simulation is a fixed-delay task bound to the view that started it.
// Navigating away from that view cancels it before completion.
type Simulation struct {
	ID          uuid.UUID     `json:"id"`
	Kind        string        `json:"kind"`
	View        string        `json:"view"`
	Status      string        `json:"status"`
	StartedAt   time.Time     `json:"started_at"`
	Duration    time.Duration `json:"duration"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
}

// SimulationCreate represents a request to start simulated work.
type SimulationCreate struct {
	Kind string `json:"kind" validate:"required,oneof=upload payment export"`
}
