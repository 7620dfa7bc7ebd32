package service

import (
	"context"
	"sync"
	"time"

	"github.com/buildbridge/dashboard/internal/domain"
	"github.com/buildbridge/dashboard/internal/notify"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// SimulationService runs the dashboard's fake asynchronous work: fixed-delay
// timers standing in for uploads, payments and report exports. Each task is
// bound to the view that started it; leaving that view cancels the task, so
// a completion never fires against a stale view.
type SimulationService struct {
	mu       sync.Mutex
	tasks    map[uuid.UUID]*simulationTask
	notifier notify.Notifier
	duration time.Duration
}

type simulationTask struct {
	record domain.Simulation
	cancel context.CancelFunc
}

// NewSimulationService creates a simulation service with a default task
// duration.
func NewSimulationService(notifier notify.Notifier, duration time.Duration) *SimulationService {
	if duration <= 0 {
		duration = 2 * time.Second
	}
	return &SimulationService{
		tasks:    make(map[uuid.UUID]*simulationTask),
		notifier: notifier,
		duration: duration,
	}
}

// Start begins a simulated task for the given view. The task completes
// unconditionally after the fixed duration unless cancelled; there are no
// retries and no real I/O.
func (s *SimulationService) Start(view, kind string) *domain.Simulation {
	ctx, cancel := context.WithCancel(context.Background())

	task := &simulationTask{
		record: domain.Simulation{
			ID:        uuid.New(),
			Kind:      kind,
			View:      view,
			Status:    domain.SimulationPending,
			StartedAt: time.Now(),
			Duration:  s.duration,
		},
		cancel: cancel,
	}

	s.mu.Lock()
	s.tasks[task.record.ID] = task
	s.mu.Unlock()

	go s.run(ctx, task.record.ID)

	record := task.record
	return &record
}

func (s *SimulationService) run(ctx context.Context, id uuid.UUID) {
	timer := time.NewTimer(s.duration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		s.finish(id, domain.SimulationCancelled)
	case <-timer.C:
		s.finish(id, domain.SimulationCompleted)
	}
}

func (s *SimulationService) finish(id uuid.UUID, status string) {
	s.mu.Lock()
	task, ok := s.tasks[id]
	if !ok || task.record.Status != domain.SimulationPending {
		s.mu.Unlock()
		return
	}
	now := time.Now()
	task.record.Status = status
	task.record.CompletedAt = &now
	kind := task.record.Kind
	s.mu.Unlock()

	if status == domain.SimulationCompleted {
		switch kind {
		case domain.SimulationUpload:
			s.notifier.Publish("Success", "File uploaded successfully!")
		case domain.SimulationPayment:
			s.notifier.Publish("Success", "Payment processed successfully!")
		case domain.SimulationExport:
			s.notifier.Publish("Success", "Report exported successfully!")
		}
	}
	log.Debug().Str("id", id.String()).Str("kind", kind).Str("status", status).Msg("simulation finished")
}

// Get returns a simulation by id, or domain.ErrNotFound.
func (s *SimulationService) Get(id uuid.UUID) (*domain.Simulation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	record := task.record
	return &record, nil
}

// CancelView cancels every pending task bound to the given view. Registered
// as a leave hook on the view router.
func (s *SimulationService) CancelView(view string) {
	s.mu.Lock()
	var cancels []context.CancelFunc
	for _, task := range s.tasks {
		if task.record.View == view && task.record.Status == domain.SimulationPending {
			cancels = append(cancels, task.cancel)
		}
	}
	s.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}
