package ports

import (
	"context"

	"github.com/jsamuelsen11/travel-planner/internal/domain/place"
	"github.com/jsamuelsen11/travel-planner/internal/domain/project"
)

// TravelService defines the service port for travel project operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Place names are resolved against the places catalog before anything is
// stored.
type TravelService interface {
	// CreateProject creates a project and adds the requested places one by
	// one. Places that cannot be added are reported as warnings and never
	// fail the call.
	// Returns domain.ErrValidation if the project details are invalid.
	CreateProject(ctx context.Context, in CreateProjectInput) (*CreateProjectResult, error)

	// GetProject returns a snapshot of a single project.
	// Returns domain.ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, id int64) (project.Snapshot, error)

	// ListProjects returns projects in creation order, filtered and
	// windowed by the given filter.
	ListProjects(ctx context.Context, filter project.Filter) (*ProjectPage, error)

	// UpdateProject applies a partial update to the project metadata.
	// Returns domain.ErrNotFound if the project does not exist.
	UpdateProject(ctx context.Context, id int64, update project.Update) (project.Snapshot, error)

	// RemoveProject deletes a project that has no visited places.
	// Returns domain.ErrNotFound if the project does not exist and
	// domain.ErrForbidden if any of its places has been visited.
	RemoveProject(ctx context.Context, id int64) error

	// AddPlace resolves the place name in the catalog and appends it to the
	// project.
	// Returns domain.ErrValidation if the name is not in the catalog and
	// domain.ErrConflict for duplicates or a full project.
	AddPlace(ctx context.Context, projectID int64, details place.Details) (place.Snapshot, error)

	// UpdatePlace overwrites the name and note of a place. The catalog id is
	// not re-resolved.
	// Returns domain.ErrNotFound if the project or place does not exist.
	UpdatePlace(ctx context.Context, projectID, placeID int64, details place.Details) (place.Snapshot, error)

	// MarkPlaceVisited marks a place visited. Repeating the call is a no-op.
	// Returns domain.ErrNotFound if the project or place does not exist.
	MarkPlaceVisited(ctx context.Context, projectID, placeID int64) (place.Snapshot, error)
}

// CreateProjectInput carries the project details and the places to add,
// in request order.
type CreateProjectInput struct {
	Project project.Details
	Places  []place.Details
}

// CreateProjectResult holds the created project and one warning per place
// that was skipped. Warnings is empty, never nil, when every place was added.
type CreateProjectResult struct {
	Project  project.Snapshot
	Warnings []string
}

// Partial reports whether any requested place was skipped.
func (r *CreateProjectResult) Partial() bool {
	return len(r.Warnings) > 0
}

// ProjectPage is one window of a project listing. Total counts every
// project that matched the filter before the window was applied.
type ProjectPage struct {
	Projects []project.Snapshot
	Total    int
}
