package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/travel-planner/internal/adapters/http/dto"
	"github.com/jsamuelsen11/travel-planner/internal/ports"
)

// PlaceHandler handles HTTP requests for the places of a project.
type PlaceHandler struct {
	svc ports.TravelService
}

// NewPlaceHandler creates a new PlaceHandler with the given service port.
func NewPlaceHandler(svc ports.TravelService) *PlaceHandler {
	return &PlaceHandler{svc: svc}
}

// AddPlace handles POST /projects/{projectId}/places.
func (h *PlaceHandler) AddPlace(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(r, "projectId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.PlaceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.AddPlace(r.Context(), projectID, req.ToDetails())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToPlaceResponse(created))
}

// UpdatePlace handles PATCH /projects/{projectId}/places/{placeId}.
func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	projectID, placeID, err := parseIDs(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.PlaceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdatePlace(r.Context(), projectID, placeID, req.ToDetails())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToPlaceResponse(updated))
}

// MarkVisited handles PATCH /projects/{projectId}/places/{placeId}/visited.
// It takes no body.
func (h *PlaceHandler) MarkVisited(w http.ResponseWriter, r *http.Request) {
	projectID, placeID, err := parseIDs(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	visited, err := h.svc.MarkPlaceVisited(r.Context(), projectID, placeID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToPlaceResponse(visited))
}
