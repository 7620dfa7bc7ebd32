package service

import (
	"testing"
	"time"

	"github.com/buildbridge/dashboard/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSimulationService_Completes(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewSimulationService(notifier, 20*time.Millisecond)

	sim := svc.Start("/upload-documents", domain.SimulationUpload)
	assert.Equal(t, domain.SimulationPending, sim.Status)
	assert.Equal(t, "/upload-documents", sim.View)

	assert.Eventually(t, func() bool {
		got, err := svc.Get(sim.ID)
		return err == nil && got.Status == domain.SimulationCompleted && got.CompletedAt != nil
	}, 2*time.Second, 5*time.Millisecond)

	assert.Eventually(t, func() bool {
		for _, m := range notifier.Messages() {
			if m == "File uploaded successfully!" {
				return true
			}
		}
		return false
	}, time.Second, 5*time.Millisecond)
}

func TestSimulationService_CancelView(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewSimulationService(notifier, 500*time.Millisecond)

	pending := svc.Start("/payment", domain.SimulationPayment)
	other := svc.Start("/upload-documents", domain.SimulationUpload)

	// Leaving /payment cancels only the task bound to it
	svc.CancelView("/payment")

	assert.Eventually(t, func() bool {
		got, err := svc.Get(pending.ID)
		return err == nil && got.Status == domain.SimulationCancelled
	}, time.Second, 5*time.Millisecond)

	assert.Eventually(t, func() bool {
		got, err := svc.Get(other.ID)
		return err == nil && got.Status == domain.SimulationCompleted
	}, 2*time.Second, 5*time.Millisecond)

	// A cancelled task never publishes its completion
	for _, m := range notifier.Messages() {
		assert.NotEqual(t, "Payment processed successfully!", m)
	}
}

func TestSimulationService_GetUnknown(t *testing.T) {
	svc := NewSimulationService(&recordingNotifier{}, time.Millisecond)

	_, err := svc.Get(uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
