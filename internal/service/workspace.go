package service

import (
	"context"
	"fmt"
	"time"

	"github.com/buildbridge/dashboard/internal/domain"
	"github.com/buildbridge/dashboard/internal/notify"
	"github.com/buildbridge/dashboard/internal/repository/memory"
	"github.com/google/uuid"
)

// WorkspaceService owns the three workspace collections for the lifetime of
// the process. Every successful mutation publishes a notification; no
// referential integrity is enforced between collections, so project ids
// held by members or documents may dangle.
type WorkspaceService struct {
	projectRepo  *memory.ProjectRepository
	memberRepo   *memory.MemberRepository
	documentRepo *memory.DocumentRepository
	notifier     notify.Notifier
}

// NewWorkspaceService creates a new workspace service
func NewWorkspaceService(
	projectRepo *memory.ProjectRepository,
	memberRepo *memory.MemberRepository,
	documentRepo *memory.DocumentRepository,
	notifier notify.Notifier,
) *WorkspaceService {
	return &WorkspaceService{
		projectRepo:  projectRepo,
		memberRepo:   memberRepo,
		documentRepo: documentRepo,
		notifier:     notifier,
	}
}

// AddProject creates a project. ID and CreatedAt are assigned here, never
// by the caller; the record is appended so list order follows creation.
func (s *WorkspaceService) AddProject(ctx context.Context, input domain.ProjectCreate) (*domain.Project, error) {
	status := input.Status
	if status == "" {
		status = domain.StatusPlanning
	}

	project := &domain.Project{
		ID:        uuid.New(),
		Name:      input.Name,
		Type:      input.Type,
		Location:  input.Location,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Budget:    input.Budget,
		Status:    status,
		Progress:  input.Progress,
		CreatedAt: time.Now(),
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.notifier.Publish("Success", "Project created successfully!")
	return project, nil
}

// GetProject retrieves a project by ID
func (s *WorkspaceService) GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// ListProjects returns all projects in creation order
func (s *WorkspaceService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepo.List(ctx)
}

// UpdateProject applies a partial update to a project
func (s *WorkspaceService) UpdateProject(ctx context.Context, id uuid.UUID, input domain.ProjectUpdate) (*domain.Project, error) {
	project, err := s.projectRepo.Update(ctx, id, &input)
	if err != nil {
		return nil, err
	}

	s.notifier.Publish("Success", "Project updated successfully!")
	return project, nil
}

// DeleteProject removes a project
func (s *WorkspaceService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.notifier.Publish("Success", "Project deleted successfully!")
	return nil
}

// AddMember creates a team member record
func (s *WorkspaceService) AddMember(ctx context.Context, input domain.MemberCreate) (*domain.Member, error) {
	status := input.Status
	if status == "" {
		status = domain.MemberActive
	}

	member := &domain.Member{
		ID:       uuid.New(),
		Name:     input.Name,
		Email:    input.Email,
		Role:     input.Role,
		Status:   status,
		Projects: input.Projects,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	s.notifier.Publish("Success", "User added successfully!")
	return member, nil
}

// GetMember retrieves a member by ID
func (s *WorkspaceService) GetMember(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	return s.memberRepo.GetByID(ctx, id)
}

// ListMembers returns all members in creation order
func (s *WorkspaceService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	return s.memberRepo.List(ctx)
}

// UpdateMember applies a partial update to a member. A status change here
// is the sole activate/deactivate mechanism; members are never deleted.
func (s *WorkspaceService) UpdateMember(ctx context.Context, id uuid.UUID, input domain.MemberUpdate) (*domain.Member, error) {
	member, err := s.memberRepo.Update(ctx, id, &input)
	if err != nil {
		return nil, err
	}

	s.notifier.Publish("Success", "User updated successfully!")
	return member, nil
}

// AddDocument records an uploaded document's metadata
func (s *WorkspaceService) AddDocument(ctx context.Context, input domain.DocumentCreate) (*domain.Document, error) {
	doc := &domain.Document{
		ID:         uuid.New(),
		Name:       input.Name,
		Type:       input.Type,
		Size:       input.Size,
		UploadDate: time.Now(),
		ProjectID:  input.ProjectID,
	}

	if err := s.documentRepo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	s.notifier.Publish("Success", "Document uploaded successfully!")
	return doc, nil
}

// GetDocument retrieves a document by ID
func (s *WorkspaceService) GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	return s.documentRepo.GetByID(ctx, id)
}

// ListDocuments returns all documents in upload order
func (s *WorkspaceService) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	return s.documentRepo.List(ctx)
}

// DeleteDocument removes a document from the authoritative collection
func (s *WorkspaceService) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	if err := s.documentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.notifier.Publish("Success", "Document deleted successfully!")
	return nil
}

// SeedDemoData populates a few records so a fresh demo has something to
// show.
func (s *WorkspaceService) SeedDemoData(ctx context.Context) {
	tower, _ := s.AddProject(ctx, domain.ProjectCreate{
		Name:      "Downtown Office Tower",
		Type:      "Commercial",
		Location:  "Seattle, WA",
		StartDate: "2026-01-15",
		EndDate:   "2027-06-30",
		Budget:    12500000,
		Status:    domain.StatusInProgress,
		Progress:  45,
	})
	s.AddProject(ctx, domain.ProjectCreate{
		Name:     "Riverside Apartments",
		Type:     "Residential",
		Location: "Portland, OR",
		Budget:   8200000,
		Status:   domain.StatusPlanning,
	})

	var projectIDs []uuid.UUID
	if tower != nil {
		projectIDs = append(projectIDs, tower.ID)
	}
	member, _ := s.AddMember(ctx, domain.MemberCreate{
		Name:     "Emily Davis",
		Email:    "emily.davis@abcconstruction.com",
		Role:     "Project Manager",
		Projects: projectIDs,
	})
	if member != nil {
		lastLogin := time.Now().Add(-26 * time.Hour)
		s.UpdateMember(ctx, member.ID, domain.MemberUpdate{LastLogin: &lastLogin})
	}
}
