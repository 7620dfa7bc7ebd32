package memory

import (
	"context"
	"sync"

	"github.com/buildbridge/dashboard/internal/domain"
	"github.com/google/uuid"
)

// DocumentRepository holds the document collection in memory. This is the
// single authoritative document list; screen-level deletion goes through it
// too rather than a view-local copy.
type DocumentRepository struct {
	mu        sync.RWMutex
	documents []*domain.Document
	byID      map[uuid.UUID]*domain.Document
}

// NewDocumentRepository creates an empty document repository.
func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{byID: make(map[uuid.UUID]*domain.Document)}
}

// Create appends a document to the collection.
func (r *DocumentRepository) Create(ctx context.Context, doc *domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.documents = append(r.documents, doc)
	r.byID[doc.ID] = doc
	return nil
}

// GetByID returns a document or domain.ErrNotFound.
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *doc
	return &copied, nil
}

// List returns all documents in insertion order.
func (r *DocumentRepository) List(ctx context.Context) ([]domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Document, 0, len(r.documents))
	for _, d := range r.documents {
		out = append(out, *d)
	}
	return out, nil
}

// Delete removes a document, or reports domain.ErrNotFound.
func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	for i, d := range r.documents {
		if d.ID == id {
			r.documents = append(r.documents[:i], r.documents[i+1:]...)
			break
		}
	}
	return nil
}
