package handler

import (
	"encoding/json"
	"net/http"

	"github.com/buildbridge/dashboard/internal/api/response"
	"github.com/buildbridge/dashboard/internal/domain"
	"github.com/buildbridge/dashboard/internal/service"
	"github.com/buildbridge/dashboard/internal/view"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validationErrors turns validator errors into a field -> message map for
// the view boundary.
func validationErrors(err error) any {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	errors := make(map[string]string)
	for _, e := range verrs {
		switch e.Tag() {
		case "required":
			errors[e.Field()] = "field is required"
		case "email":
			errors[e.Field()] = "invalid email format"
		case "oneof":
			errors[e.Field()] = "must be one of: " + e.Param()
		case "gte":
			errors[e.Field()] = "must be at least " + e.Param()
		case "lte":
			errors[e.Field()] = "must be at most " + e.Param()
		case "max":
			errors[e.Field()] = "must be at most " + e.Param() + " characters"
		default:
			errors[e.Field()] = "validation failed on " + e.Tag()
		}
	}
	return errors
}

// AuthHandler handles demo authentication endpoints
type AuthHandler struct {
	sessionService *service.SessionService
	viewRouter     *view.Router
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessionService *service.SessionService, viewRouter *view.Router) *AuthHandler {
	return &AuthHandler{
		sessionService: sessionService,
		viewRouter:     viewRouter,
	}
}

// Login handles a demo login. There is no credential check; the identity is
// fabricated from the selected role.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input domain.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	identity, tokens, err := h.sessionService.Login(r.Context(), input)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, map[string]any{
		"identity": identity,
		"tokens":   tokens,
	})
}

// Logout clears the session and tears the shell back to the default path.
// Idempotent.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionService.Logout(r.Context()); err != nil {
		response.InternalError(w, err.Error())
		return
	}
	h.viewRouter.Reset()
	response.NoContent(w)
}

// Refresh rotates the token pair
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var input struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	tokens, err := h.sessionService.Refresh(r.Context(), input.RefreshToken)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	response.OK(w, tokens)
}

// Session returns the current identity
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	identity := h.sessionService.Current()
	if identity == nil {
		response.Unauthorized(w, "no active session")
		return
	}
	response.OK(w, identity)
}
