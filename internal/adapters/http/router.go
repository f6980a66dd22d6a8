// Package http is the inbound HTTP adapter: chi routing for the travel API
// and the server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/travel-planner/internal/adapters/http/dto"
	"github.com/jsamuelsen11/travel-planner/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/travel-planner/internal/domain"
)

// NewRouter registers the project, place and health routes. Middleware is
// applied to every route in the order given. Unknown paths get a 404 problem
// response.
func NewRouter(
	projectHandler *handlers.ProjectHandler,
	placeHandler *handlers.PlaceHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("no route for %s: %w", req.URL.Path, domain.ErrNotFound))
	})

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Get("/projects", projectHandler.ListProjects)
	r.Post("/projects", projectHandler.CreateProject)
	r.Get("/projects/{id}", projectHandler.GetProject)
	r.Patch("/projects/{id}", projectHandler.UpdateProject)
	r.Delete("/projects/{id}", projectHandler.DeleteProject)

	r.Post("/projects/{projectId}/places", placeHandler.AddPlace)
	r.Patch("/projects/{projectId}/places/{placeId}", placeHandler.UpdatePlace)
	r.Patch("/projects/{projectId}/places/{placeId}/visited", placeHandler.MarkVisited)

	return r
}
