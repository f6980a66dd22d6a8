// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/travel-planner/internal/domain/place"
	"github.com/jsamuelsen11/travel-planner/internal/domain/project"
	"github.com/jsamuelsen11/travel-planner/internal/ports"
)

// Values of CreateProjectResponse.Status.
const (
	CreateStatusCreated = "created"
	CreateStatusPartial = "partial"
)

// PlaceResponse represents a single place in HTTP responses.
type PlaceResponse struct {
	ID        int64   `json:"id"`
	CatalogID int64   `json:"catalog_id"`
	Name      string  `json:"name"`
	Note      *string `json:"note"`
	Visited   bool    `json:"visited"`
}

// ToPlaceResponse converts a place snapshot to an HTTP response DTO.
func ToPlaceResponse(p place.Snapshot) PlaceResponse {
	return PlaceResponse{
		ID:        p.ID,
		CatalogID: p.CatalogID,
		Name:      p.Name,
		Note:      p.Note,
		Visited:   p.Visited,
	}
}

// ProjectResponse represents a single project in HTTP responses. Places are
// always present, in the order they were added.
type ProjectResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	StartDate   *string         `json:"start_date"`
	Places      []PlaceResponse `json:"places"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// ToProjectResponse converts a project snapshot to an HTTP response DTO.
func ToProjectResponse(p project.Snapshot) ProjectResponse {
	resp := ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Places:      make([]PlaceResponse, len(p.Places)),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}

	if p.StartDate != nil {
		s := p.StartDate.Format(time.RFC3339)
		resp.StartDate = &s
	}
	for i := range p.Places {
		resp.Places[i] = ToPlaceResponse(p.Places[i])
	}

	return resp
}

// CreateProjectResponse is returned by POST /projects. Warnings lists every
// requested place that was not added.
type CreateProjectResponse struct {
	Project  ProjectResponse `json:"project"`
	Warnings []string        `json:"warnings"`
	Status   string          `json:"status"`
}

// ToCreateProjectResponse converts a creation result to an HTTP response DTO.
func ToCreateProjectResponse(res *ports.CreateProjectResult) CreateProjectResponse {
	resp := CreateProjectResponse{
		Project:  ToProjectResponse(res.Project),
		Warnings: res.Warnings,
		Status:   CreateStatusCreated,
	}
	if resp.Warnings == nil {
		resp.Warnings = []string{}
	}
	if res.Partial() {
		resp.Status = CreateStatusPartial
	}
	return resp
}

// ProjectListResponse is one window of GET /projects. Count is the number of
// projects in this response; Total counts every match of the name filter.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// ToProjectListResponse converts a project page to an HTTP list response.
func ToProjectListResponse(page *ports.ProjectPage, filter project.Filter) ProjectListResponse {
	items := make([]ProjectResponse, len(page.Projects))
	for i := range page.Projects {
		items[i] = ToProjectResponse(page.Projects[i])
	}
	return ProjectListResponse{
		Projects: items,
		Count:    len(items),
		Total:    page.Total,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	}
}
