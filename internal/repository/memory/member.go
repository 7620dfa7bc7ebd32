package memory

import (
	"context"
	"sync"

	"github.com/buildbridge/dashboard/internal/domain"
	"github.com/google/uuid"
)

// MemberRepository holds the team member collection in memory. Members are
// never deleted; deactivation happens through a status update.
type MemberRepository struct {
	mu      sync.RWMutex
	members []*domain.Member
	byID    map[uuid.UUID]*domain.Member
}

// NewMemberRepository creates an empty member repository.
func NewMemberRepository() *MemberRepository {
	return &MemberRepository{byID: make(map[uuid.UUID]*domain.Member)}
}

// Create appends a member to the collection.
func (r *MemberRepository) Create(ctx context.Context, member *domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members = append(r.members, member)
	r.byID[member.ID] = member
	return nil
}

// GetByID returns a member or domain.ErrNotFound.
func (r *MemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	member, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *member
	return &copied, nil
}

// List returns all members in insertion order.
func (r *MemberRepository) List(ctx context.Context) ([]domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Member, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, *m)
	}
	return out, nil
}

// Update shallow-merges the non-nil fields of input into the stored record.
func (r *MemberRepository) Update(ctx context.Context, id uuid.UUID, input *domain.MemberUpdate) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	member, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	if input.Name != nil {
		member.Name = *input.Name
	}
	if input.Email != nil {
		member.Email = *input.Email
	}
	if input.Role != nil {
		member.Role = *input.Role
	}
	if input.Status != nil {
		member.Status = *input.Status
	}
	if input.LastLogin != nil {
		member.LastLogin = *input.LastLogin
	}
	if input.Projects != nil {
		member.Projects = input.Projects
	}

	copied := *member
	return &copied, nil
}
