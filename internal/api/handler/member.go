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

// MemberHandler handles team member endpoints. Members are never deleted;
// deactivation is a status update.
type MemberHandler struct {
	workspaceService *service.WorkspaceService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(workspaceService *service.WorkspaceService) *MemberHandler {
	return &MemberHandler{workspaceService: workspaceService}
}

// Create handles adding a team member
func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.MemberCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	member, err := h.workspaceService.AddMember(r.Context(), input)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}

	response.Created(w, member)
}

// List handles listing all members
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.workspaceService.ListMembers(r.Context())
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, members)
}

// Get handles getting a member by ID
func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "memberID"))
	if err != nil {
		response.BadRequest(w, "invalid member ID")
		return
	}

	member, err := h.workspaceService.GetMember(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "member not found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, member)
}

// Update handles a partial member update, including status toggles
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "memberID"))
	if err != nil {
		response.BadRequest(w, "invalid member ID")
		return
	}

	var input domain.MemberUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	member, err := h.workspaceService.UpdateMember(r.Context(), id, input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "member not found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, member)
}
