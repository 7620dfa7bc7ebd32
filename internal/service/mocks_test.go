package service

import (
	"context"
	"sync"

	"github.com/buildbridge/dashboard/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockSlotRepository mocks the SlotRepository interface
type MockSlotRepository struct {
	mock.Mock
}

func (m *MockSlotRepository) Save(ctx context.Context, identity *domain.Identity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}

func (m *MockSlotRepository) Load(ctx context.Context) (*domain.Identity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

func (m *MockSlotRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// memorySlot is a stateful slot fake for round-trip tests
type memorySlot struct {
	mu       sync.Mutex
	identity *domain.Identity
}

func (s *memorySlot) Save(ctx context.Context, identity *domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *identity
	s.identity = &copied
	return nil
}

func (s *memorySlot) Load(ctx context.Context) (*domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil, nil
	}
	copied := *s.identity
	return &copied, nil
}

func (s *memorySlot) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	return nil
}

// recordingNotifier captures published notifications
type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Publish(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.messages))
	copy(out, n.messages)
	return out
}
