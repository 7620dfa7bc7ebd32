package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/buildbridge/dashboard/internal/api/response"
	"github.com/buildbridge/dashboard/internal/domain"
	"github.com/buildbridge/dashboard/internal/service"
	"github.com/buildbridge/dashboard/internal/view"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// SimulationHandler exposes the fake asynchronous work endpoints
type SimulationHandler struct {
	simulationService *service.SimulationService
	router            *view.Router
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler(simulationService *service.SimulationService, router *view.Router) *SimulationHandler {
	return &SimulationHandler{
		simulationService: simulationService,
		router:            router,
	}
}

// Start begins a simulated task bound to the current view
func (h *SimulationHandler) Start(w http.ResponseWriter, r *http.Request) {
	var input domain.SimulationCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationErrors(err))
		return
	}

	sim := h.simulationService.Start(h.router.Current(), input.Kind)
	response.Created(w, sim)
}

// Get returns the status of a simulated task
func (h *SimulationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "simulationID"))
	if err != nil {
		response.BadRequest(w, "invalid simulation ID")
		return
	}

	sim, err := h.simulationService.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "simulation not found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, sim)
}
