package dto

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/travel-planner/internal/domain"
	"github.com/jsamuelsen11/travel-planner/internal/domain/place"
	"github.com/jsamuelsen11/travel-planner/internal/domain/project"
	"github.com/jsamuelsen11/travel-planner/internal/ports"
)

// Listing bounds for GET /projects.
const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

// PlaceRequest is the JSON body for adding or updating a place. It is also
// the element type of CreateProjectRequest.Places.
type PlaceRequest struct {
	Name string  `json:"name"`
	Note *string `json:"note,omitempty"`
}

// Validate checks that the place name is present.
func (r *PlaceRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}}
	}
	return nil
}

// ToDetails converts the request to domain place details.
func (r *PlaceRequest) ToDetails() place.Details {
	return place.Details{Name: r.Name, Note: r.Note}
}

// CreateProjectRequest is the JSON body for creating a project together with
// an optional list of places.
type CreateProjectRequest struct {
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	StartDate   *Date          `json:"start_date,omitempty"`
	Places      []PlaceRequest `json:"places,omitempty"`
}

// Validate checks the project name and start date. Place names are not
// checked here: a place that does not resolve in the catalog, blank names
// included, becomes a warning on the created project.
func (r *CreateProjectRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	checkDate(fields, r.StartDate)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToInput converts the request to the service input.
func (r *CreateProjectRequest) ToInput() ports.CreateProjectInput {
	places := make([]place.Details, len(r.Places))
	for i := range r.Places {
		places[i] = r.Places[i].ToDetails()
	}

	return ports.CreateProjectInput{
		Project: project.Details{
			Name:        r.Name,
			Description: r.Description,
			StartDate:   datePtr(r.StartDate),
		},
		Places: places,
	}
}

// UpdateProjectRequest is the JSON body for a partial project update.
// Absent keys are left unchanged. An explicit null clears description or
// start_date; a null name is treated as absent.
type UpdateProjectRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description Nullable[string] `json:"description"`
	StartDate   Nullable[Date]   `json:"start_date"`
}

// Validate checks that a provided name is not blank and that a provided
// start date parses.
func (r *UpdateProjectRequest) Validate() error {
	fields := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		fields["name"] = domain.MsgMustNotBeEmpty
	}
	if r.StartDate.Set && !r.StartDate.Null {
		checkDate(fields, &r.StartDate.Value)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToUpdate converts the request to a domain partial update.
func (r *UpdateProjectRequest) ToUpdate() project.Update {
	return project.Update{
		Name:        domain.FromPtr(r.Name),
		Description: optionalString(r.Description),
		StartDate:   optionalDate(r.StartDate),
	}
}

// ParseListProjectsQuery reads limit, offset and name_filter from a
// GET /projects query string. limit defaults to DefaultListLimit and must
// be within 1..MaxListLimit; offset must not be negative.
func ParseListProjectsQuery(q url.Values) (project.Filter, error) {
	filter := project.Filter{
		NameContains: strings.TrimSpace(q.Get("name_filter")),
		Limit:        DefaultListLimit,
	}
	fields := make(map[string]string)

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			fields["query.limit"] = "must be a valid integer"
		case n < 1 || n > MaxListLimit:
			fields["query.limit"] = fmt.Sprintf("must be between 1 and %d", MaxListLimit)
		default:
			filter.Limit = n
		}
	}

	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			fields["query.offset"] = "must be a valid integer"
		case n < 0:
			fields["query.offset"] = "must not be negative"
		default:
			filter.Offset = n
		}
	}

	if len(fields) > 0 {
		return project.Filter{}, &domain.ValidationError{Fields: fields}
	}
	return filter, nil
}
