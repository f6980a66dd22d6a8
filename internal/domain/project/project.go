// Package project contains the TravelProject aggregate. A project owns an
// ordered list of places and enforces the per-project rules: catalog ids are
// unique, the place count is capped, and a project with visited places cannot
// be deleted.
package project

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/travel-planner/internal/domain"
	"github.com/jsamuelsen11/travel-planner/internal/domain/place"
)

// DefaultPlacesLimit is the place cap used when none is configured.
const DefaultPlacesLimit = 10

// Details holds the caller-supplied fields of a project.
type Details struct {
	Name        string
	Description *string
	StartDate   *time.Time
}

// Validate checks business rules for project details.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (d *Details) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}}
	}
	return nil
}

// Update is a partial update of project details. Unset fields are left as
// they are. Description and StartDate may be set to nil, which clears them.
type Update struct {
	Name        domain.Optional[string]
	Description domain.Optional[*string]
	StartDate   domain.Optional[*time.Time]
}

// IsZero reports whether the update sets no field.
func (u Update) IsZero() bool {
	return !u.Name.IsSet() && !u.Description.IsSet() && !u.StartDate.IsSet()
}

// Project is the travel project aggregate. It is not safe for concurrent use;
// the owner serializes access.
type Project struct {
	id          int64
	name        string
	description *string
	startDate   *time.Time
	places      []*place.Place
	nextPlaceID int64
	createdAt   time.Time
	updatedAt   time.Time
	now         func() time.Time
}

// New creates an empty project. The id is allocated by the caller. A nil
// clock defaults to time.Now.
func New(id int64, d Details, now func() time.Time) (*Project, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}

	ts := now().UTC()
	return &Project{
		id:          id,
		name:        d.Name,
		description: cloneString(d.Description),
		startDate:   cloneTime(d.StartDate),
		createdAt:   ts,
		updatedAt:   ts,
		now:         now,
	}, nil
}

// ID returns the project identifier.
func (p *Project) ID() int64 { return p.id }

// Name returns the project name.
func (p *Project) Name() string { return p.name }

// PlaceCount returns the number of places in the project.
func (p *Project) PlaceCount() int { return len(p.places) }

// AddPlace appends a new place for catalogID. The duplicate check runs
// before the capacity check, so re-adding a present place to a full project
// reports the duplicate.
func (p *Project) AddPlace(catalogID int64, d place.Details, limit int) (place.Snapshot, error) {
	for _, pl := range p.places {
		if pl.CatalogID() == catalogID {
			return place.Snapshot{}, &domain.DuplicatePlaceError{ProjectID: p.id, CatalogID: catalogID}
		}
	}

	if len(p.places) >= limit {
		return place.Snapshot{}, &domain.ProjectAtCapacityError{ProjectID: p.id, Limit: limit}
	}

	p.nextPlaceID++
	pl := place.New(p.nextPlaceID, catalogID, d)
	p.places = append(p.places, pl)
	p.touch()

	return pl.Snapshot(), nil
}

// UpdatePlace overwrites the name and note of the place with placeID.
func (p *Project) UpdatePlace(placeID int64, d place.Details) (place.Snapshot, error) {
	pl, err := p.findPlace(placeID)
	if err != nil {
		return place.Snapshot{}, err
	}

	pl.Update(d)
	p.touch()
	return pl.Snapshot(), nil
}

// MarkPlaceVisited marks the place with placeID visited. Marking an already
// visited place succeeds and changes nothing.
func (p *Project) MarkPlaceVisited(placeID int64) (place.Snapshot, error) {
	pl, err := p.findPlace(placeID)
	if err != nil {
		return place.Snapshot{}, err
	}

	if !pl.IsVisited() {
		pl.MarkVisited()
		p.touch()
	}
	return pl.Snapshot(), nil
}

// IsDeletable reports whether no place in the project has been visited.
func (p *Project) IsDeletable() bool {
	for _, pl := range p.places {
		if pl.IsVisited() {
			return false
		}
	}
	return true
}

// Apply applies a partial update. A name that is set must not be blank. An
// update that sets nothing leaves updated_at alone.
func (p *Project) Apply(u Update) error {
	name, setName := u.Name.Get()
	if setName && strings.TrimSpace(name) == "" {
		return &domain.ValidationError{Fields: map[string]string{"name": domain.MsgMustNotBeEmpty}}
	}
	if u.IsZero() {
		return nil
	}

	if setName {
		p.name = name
	}
	if desc, ok := u.Description.Get(); ok {
		p.description = cloneString(desc)
	}
	if start, ok := u.StartDate.Get(); ok {
		p.startDate = cloneTime(start)
	}
	p.touch()
	return nil
}

// Snapshot is an immutable projection of a project and its places.
type Snapshot struct {
	ID          int64
	Name        string
	Description *string
	StartDate   *time.Time
	Places      []place.Snapshot
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Snapshot returns a copy of the current state. Places keep insertion order.
func (p *Project) Snapshot() Snapshot {
	places := make([]place.Snapshot, len(p.places))
	for i, pl := range p.places {
		places[i] = pl.Snapshot()
	}

	return Snapshot{
		ID:          p.id,
		Name:        p.name,
		Description: cloneString(p.description),
		StartDate:   cloneTime(p.startDate),
		Places:      places,
		CreatedAt:   p.createdAt,
		UpdatedAt:   p.updatedAt,
	}
}

func (p *Project) findPlace(placeID int64) (*place.Place, error) {
	for _, pl := range p.places {
		if pl.ID() == placeID {
			return pl, nil
		}
	}
	return nil, &domain.PlaceNotFoundError{ProjectID: p.id, PlaceID: placeID}
}

func (p *Project) touch() {
	p.updatedAt = p.now().UTC()
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
