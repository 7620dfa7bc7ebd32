package handler

import (
	"encoding/json"
	"net/http"

	"github.com/buildbridge/dashboard/internal/api/response"
	"github.com/buildbridge/dashboard/internal/view"
)

// NavigationHandler exposes the view router: current path, navigation and
// path resolution.
type NavigationHandler struct {
	router *view.Router
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(router *view.Router) *NavigationHandler {
	return &NavigationHandler{router: router}
}

// Current returns the current path and its resolved view
func (h *NavigationHandler) Current(w http.ResponseWriter, r *http.Request) {
	path := h.router.Current()
	response.OK(w, map[string]any{
		"path": path,
		"view": view.Resolve(path),
	})
}

// Navigate sets the current path. The target is not validated against the
// known views; an unknown path simply resolves to the not-found view.
func (h *NavigationHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Path string `json:"path" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	h.router.Navigate(input.Path)

	response.OK(w, map[string]any{
		"path": input.Path,
		"view": view.Resolve(input.Path),
	})
}

// Resolve maps an arbitrary path string to a view without navigating
func (h *NavigationHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	response.OK(w, map[string]any{
		"path": path,
		"view": view.Resolve(path),
	})
}
