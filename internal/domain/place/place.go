// Package place contains the ProjectPlace entity: a catalog place attached to
// a single travel project.
package place

// Details holds the caller-supplied fields of a place.
type Details struct {
	Name string
	Note *string
}

// Place is a catalog place attached to one project. Visited moves from false
// to true only; nothing in this package clears it.
type Place struct {
	id        int64
	catalogID int64
	name      string
	note      *string
	visited   bool
}

// New creates an unvisited place. The id is allocated by the owning project.
func New(id, catalogID int64, d Details) *Place {
	return &Place{
		id:        id,
		catalogID: catalogID,
		name:      d.Name,
		note:      cloneString(d.Note),
	}
}

// ID returns the project-local identifier.
func (p *Place) ID() int64 { return p.id }

// CatalogID returns the external catalog identifier.
func (p *Place) CatalogID() int64 { return p.catalogID }

// Update overwrites name and note.
func (p *Place) Update(d Details) {
	p.name = d.Name
	p.note = cloneString(d.Note)
}

// MarkVisited marks the place visited. Calling it again is a no-op.
func (p *Place) MarkVisited() {
	p.visited = true
}

// IsVisited reports whether the place has been visited.
func (p *Place) IsVisited() bool {
	return p.visited
}

// Snapshot is an immutable copy of a Place for use outside the aggregate.
type Snapshot struct {
	ID        int64
	CatalogID int64
	Name      string
	Note      *string
	Visited   bool
}

// Snapshot returns a copy of the current state.
func (p *Place) Snapshot() Snapshot {
	return Snapshot{
		ID:        p.id,
		CatalogID: p.catalogID,
		Name:      p.name,
		Note:      cloneString(p.note),
		Visited:   p.visited,
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
