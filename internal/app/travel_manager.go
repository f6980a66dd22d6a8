// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/travel-planner/internal/domain"
	"github.com/jsamuelsen11/travel-planner/internal/domain/place"
	"github.com/jsamuelsen11/travel-planner/internal/domain/project"
	"github.com/jsamuelsen11/travel-planner/internal/platform/telemetry"
	"github.com/jsamuelsen11/travel-planner/internal/ports"
)

// Compile-time check that TravelManager implements ports.TravelService.
var _ ports.TravelService = (*TravelManager)(nil)

// TravelManager implements ports.TravelService. It owns every project for the
// lifetime of the process and resolves place names through the PlaceCatalog
// port before touching a project. Safe for concurrent use.
type TravelManager struct {
	catalog ports.PlaceCatalog
	limit   int
	logger  *slog.Logger
	metrics *telemetry.Metrics
	now     func() time.Time

	mu       sync.RWMutex
	projects map[int64]*project.Project
	order    []int64
	nextID   int64
}

// Option configures a TravelManager.
type Option func(*TravelManager)

// WithPlacesLimit sets the maximum number of places per project. Values
// below 1 are ignored.
func WithPlacesLimit(n int) Option {
	return func(m *TravelManager) {
		if n > 0 {
			m.limit = n
		}
	}
}

// WithMetrics records travel events on metrics.
func WithMetrics(metrics *telemetry.Metrics) Option {
	return func(m *TravelManager) { m.metrics = metrics }
}

// WithClock overrides time.Now for project timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *TravelManager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewTravelManager creates an empty manager. A nil logger discards output.
func NewTravelManager(catalog ports.PlaceCatalog, logger *slog.Logger, opts ...Option) *TravelManager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m := &TravelManager{
		catalog:  catalog,
		limit:    project.DefaultPlacesLimit,
		logger:   logger,
		now:      time.Now,
		projects: make(map[int64]*project.Project),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// resolved is a requested place paired with its catalog lookup.
type resolved struct {
	details   place.Details
	catalogID int64
	found     bool
}

// CreateProject registers a new project and then adds the requested places
// in order. A place missing from the catalog, already present, or beyond the
// limit becomes a warning and the remaining places are still tried.
func (m *TravelManager) CreateProject(ctx context.Context, in ports.CreateProjectInput) (*ports.CreateProjectResult, error) {
	m.logger.InfoContext(ctx, "creating project",
		slog.String("name", in.Project.Name),
		slog.Int("places", len(in.Places)),
	)

	if err := in.Project.Validate(); err != nil {
		m.logger.WarnContext(ctx, "project validation failed",
			slog.String("operation", "CreateProject"),
			slog.Any("error", err),
		)
		return nil, err
	}

	lookups := make([]resolved, len(in.Places))
	for i, d := range in.Places {
		id, ok := m.catalog.LookupByName(d.Name)
		lookups[i] = resolved{details: d, catalogID: id, found: ok}
	}

	m.mu.Lock()
	proj, err := project.New(m.nextID+1, in.Project, m.now)
	if err != nil {
		m.mu.Unlock()
		return nil, err
	}
	m.nextID++
	m.projects[proj.ID()] = proj
	m.order = append(m.order, proj.ID())

	warnings := make([]string, 0)
	for _, r := range lookups {
		if !r.found {
			warnings = append(warnings, (&domain.CatalogPlaceNotFoundError{Name: r.details.Name}).Error())
			continue
		}
		if _, err := proj.AddPlace(r.catalogID, r.details, m.limit); err != nil {
			warnings = append(warnings, err.Error())
		}
	}
	snap := proj.Snapshot()
	m.mu.Unlock()

	m.metrics.RecordTravelEvent(ctx, telemetry.EventProjectCreated)
	for range warnings {
		m.metrics.RecordTravelEvent(ctx, telemetry.EventPlaceSkipped)
	}
	for range snap.Places {
		m.metrics.RecordTravelEvent(ctx, telemetry.EventPlaceAdded)
	}

	if len(warnings) > 0 {
		m.logger.WarnContext(ctx, "project created with skipped places",
			slog.Int64("project_id", snap.ID),
			slog.Int("added", len(snap.Places)),
			slog.Any("warnings", warnings),
		)
	} else {
		m.logger.InfoContext(ctx, "project created",
			slog.Int64("project_id", snap.ID),
			slog.Int("added", len(snap.Places)),
		)
	}

	return &ports.CreateProjectResult{Project: snap, Warnings: warnings}, nil
}

// GetProject returns a snapshot of the project with id.
func (m *TravelManager) GetProject(ctx context.Context, id int64) (project.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	proj, err := m.find(ctx, "GetProject", id)
	if err != nil {
		return project.Snapshot{}, err
	}
	return proj.Snapshot(), nil
}

// ListProjects returns the projects matching filter in creation order.
func (m *TravelManager) ListProjects(ctx context.Context, filter project.Filter) (*ports.ProjectPage, error) {
	m.mu.RLock()
	matched := make([]project.Snapshot, 0, len(m.order))
	for _, id := range m.order {
		proj := m.projects[id]
		if filter.Matches(proj.Name()) {
			matched = append(matched, proj.Snapshot())
		}
	}
	m.mu.RUnlock()

	start, end := filter.Window(len(matched))

	m.logger.DebugContext(ctx, "listed projects",
		slog.String("name_filter", filter.NameContains),
		slog.Int("matched", len(matched)),
		slog.Int("returned", end-start),
	)

	return &ports.ProjectPage{Projects: matched[start:end], Total: len(matched)}, nil
}

// UpdateProject applies update to the project metadata.
func (m *TravelManager) UpdateProject(ctx context.Context, id int64, update project.Update) (project.Snapshot, error) {
	m.mu.Lock()
	proj, err := m.find(ctx, "UpdateProject", id)
	if err != nil {
		m.mu.Unlock()
		return project.Snapshot{}, err
	}
	if err := proj.Apply(update); err != nil {
		m.mu.Unlock()
		m.logger.WarnContext(ctx, "project update rejected",
			slog.String("operation", "UpdateProject"),
			slog.Int64("project_id", id),
			slog.Any("error", err),
		)
		return project.Snapshot{}, err
	}
	snap := proj.Snapshot()
	m.mu.Unlock()

	m.metrics.RecordTravelEvent(ctx, telemetry.EventProjectUpdated)
	m.logger.InfoContext(ctx, "project updated", slog.Int64("project_id", id))
	return snap, nil
}

// RemoveProject deletes the project unless one of its places was visited.
func (m *TravelManager) RemoveProject(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	proj, err := m.find(ctx, "RemoveProject", id)
	if err != nil {
		return err
	}

	if !proj.IsDeletable() {
		err := &domain.ProjectNotDeletableError{ProjectID: id}
		m.logger.WarnContext(ctx, "refused to remove project with visited places",
			slog.String("operation", "RemoveProject"),
			slog.Int64("project_id", id),
			slog.Any("error", err),
		)
		return err
	}

	delete(m.projects, id)
	for i, pid := range m.order {
		if pid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}

	m.metrics.RecordTravelEvent(ctx, telemetry.EventProjectRemoved)
	m.logger.InfoContext(ctx, "project removed", slog.Int64("project_id", id))
	return nil
}

// AddPlace resolves details.Name in the catalog and appends the place to the
// project.
func (m *TravelManager) AddPlace(ctx context.Context, projectID int64, details place.Details) (place.Snapshot, error) {
	catalogID, ok := m.catalog.LookupByName(details.Name)

	m.mu.Lock()
	defer m.mu.Unlock()

	proj, err := m.find(ctx, "AddPlace", projectID)
	if err != nil {
		return place.Snapshot{}, err
	}

	if !ok {
		err := &domain.CatalogPlaceNotFoundError{Name: details.Name}
		m.logger.WarnContext(ctx, "place not in catalog",
			slog.String("operation", "AddPlace"),
			slog.Int64("project_id", projectID),
			slog.Any("error", err),
		)
		return place.Snapshot{}, err
	}

	snap, err := proj.AddPlace(catalogID, details, m.limit)
	if err != nil {
		m.logger.WarnContext(ctx, "failed to add place",
			slog.String("operation", "AddPlace"),
			slog.Int64("project_id", projectID),
			slog.Int64("catalog_id", catalogID),
			slog.Any("error", err),
		)
		return place.Snapshot{}, err
	}

	m.metrics.RecordTravelEvent(ctx, telemetry.EventPlaceAdded)
	m.logger.InfoContext(ctx, "place added",
		slog.Int64("project_id", projectID),
		slog.Int64("place_id", snap.ID),
		slog.Int64("catalog_id", catalogID),
	)
	return snap, nil
}

// UpdatePlace overwrites the name and note of a place. The catalog id the
// place was added with is kept.
func (m *TravelManager) UpdatePlace(ctx context.Context, projectID, placeID int64, details place.Details) (place.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	proj, err := m.find(ctx, "UpdatePlace", projectID)
	if err != nil {
		return place.Snapshot{}, err
	}

	snap, err := proj.UpdatePlace(placeID, details)
	if err != nil {
		m.logger.WarnContext(ctx, "failed to update place",
			slog.String("operation", "UpdatePlace"),
			slog.Int64("project_id", projectID),
			slog.Int64("place_id", placeID),
			slog.Any("error", err),
		)
		return place.Snapshot{}, err
	}

	m.metrics.RecordTravelEvent(ctx, telemetry.EventPlaceUpdated)
	m.logger.InfoContext(ctx, "place updated",
		slog.Int64("project_id", projectID),
		slog.Int64("place_id", placeID),
	)
	return snap, nil
}

// MarkPlaceVisited marks a place visited.
func (m *TravelManager) MarkPlaceVisited(ctx context.Context, projectID, placeID int64) (place.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	proj, err := m.find(ctx, "MarkPlaceVisited", projectID)
	if err != nil {
		return place.Snapshot{}, err
	}

	snap, err := proj.MarkPlaceVisited(placeID)
	if err != nil {
		m.logger.WarnContext(ctx, "failed to mark place visited",
			slog.String("operation", "MarkPlaceVisited"),
			slog.Int64("project_id", projectID),
			slog.Int64("place_id", placeID),
			slog.Any("error", err),
		)
		return place.Snapshot{}, err
	}

	m.metrics.RecordTravelEvent(ctx, telemetry.EventPlaceVisited)
	m.logger.InfoContext(ctx, "place visited",
		slog.Int64("project_id", projectID),
		slog.Int64("place_id", placeID),
	)
	return snap, nil
}

// find returns the project with id. The caller holds m.mu.
func (m *TravelManager) find(ctx context.Context, op string, id int64) (*project.Project, error) {
	proj, ok := m.projects[id]
	if !ok {
		err := &domain.ProjectNotFoundError{ProjectID: id}
		m.logger.WarnContext(ctx, "project not found",
			slog.String("operation", op),
			slog.Int64("project_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return proj, nil
}
