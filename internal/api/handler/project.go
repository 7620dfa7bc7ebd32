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

// ProjectHandler handles project endpoints
type ProjectHandler struct {
	workspaceService *service.WorkspaceService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(workspaceService *service.WorkspaceService) *ProjectHandler {
	return &ProjectHandler{workspaceService: workspaceService}
}

func projectID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "projectID"))
}

// Create handles project creation
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.ProjectCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	project, err := h.workspaceService.AddProject(r.Context(), input)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}

	response.Created(w, project)
}

// List handles listing all projects
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.workspaceService.ListProjects(r.Context())
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, projects)
}

// Get handles getting a project by ID
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := projectID(r)
	if err != nil {
		response.BadRequest(w, "invalid project ID")
		return
	}

	project, err := h.workspaceService.GetProject(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "project not found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, project)
}

// Update handles a partial project update
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := projectID(r)
	if err != nil {
		response.BadRequest(w, "invalid project ID")
		return
	}

	var input domain.ProjectUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	project, err := h.workspaceService.UpdateProject(r.Context(), id, input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "project not found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, project)
}

// Delete handles deleting a project
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := projectID(r)
	if err != nil {
		response.BadRequest(w, "invalid project ID")
		return
	}

	if err := h.workspaceService.DeleteProject(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "project not found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	response.NoContent(w)
}
