package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/buildbridge/dashboard/internal/api/response"
	"github.com/buildbridge/dashboard/internal/domain"
	"github.com/buildbridge/dashboard/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// DocumentHandler handles document endpoints against the single
// authoritative document collection.
type DocumentHandler struct {
	workspaceService *service.WorkspaceService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(workspaceService *service.WorkspaceService) *DocumentHandler {
	return &DocumentHandler{workspaceService: workspaceService}
}

// Create records an uploaded document's metadata
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.DocumentCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	doc, err := h.workspaceService.AddDocument(r.Context(), input)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}

	response.Created(w, doc)
}

// List handles listing all documents
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.workspaceService.ListDocuments(r.Context())
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, docs)
}

// Get handles getting a document by ID
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "documentID"))
	if err != nil {
		response.BadRequest(w, "invalid document ID")
		return
	}

	doc, err := h.workspaceService.GetDocument(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "document not found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, doc)
}

// Delete handles deleting a document
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "documentID"))
	if err != nil {
		response.BadRequest(w, "invalid document ID")
		return
	}

	if err := h.workspaceService.DeleteDocument(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "document not found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	response.NoContent(w)
}
