package memory

import (
	"context"
	"sync"

	"github.com/buildbridge/dashboard/internal/domain"
	"github.com/google/uuid"
)

// ProjectRepository holds the project collection in memory. Insertion order
// is preserved and meaningful for default list display; ids are assigned
// once by the caller and never reused after deletion.
type ProjectRepository struct {
	mu       sync.RWMutex
	projects []*domain.Project
	byID     map[uuid.UUID]*domain.Project
}

// NewProjectRepository creates an empty project repository.
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{byID: make(map[uuid.UUID]*domain.Project)}
}

// Create appends a project to the collection.
func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects = append(r.projects, project)
	r.byID[project.ID] = project
	return nil
}

// GetByID returns a project or domain.ErrNotFound.
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	project, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *project
	return &copied, nil
}

// List returns all projects in insertion order.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, *p)
	}
	return out, nil
}

// Update shallow-merges the non-nil fields of input into the stored record.
// ID and CreatedAt are never touched.
func (r *ProjectRepository) Update(ctx context.Context, id uuid.UUID, input *domain.ProjectUpdate) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	project, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Type != nil {
		project.Type = *input.Type
	}
	if input.Location != nil {
		project.Location = *input.Location
	}
	if input.StartDate != nil {
		project.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		project.EndDate = *input.EndDate
	}
	if input.Budget != nil {
		project.Budget = *input.Budget
	}
	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.Progress != nil {
		project.Progress = *input.Progress
	}

	copied := *project
	return &copied, nil
}

// Delete removes exactly one matching record, or reports domain.ErrNotFound.
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	for i, p := range r.projects {
		if p.ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			break
		}
	}
	return nil
}
