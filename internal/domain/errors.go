package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking. Every typed domain error below
// unwraps to exactly one of these, which is what the HTTP boundary maps to a
// status code.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// Validation messages shared by the domain and the request DTOs.
const (
	MsgRequired       = "is required"
	MsgMustNotBeEmpty = "must not be empty"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ProjectNotFoundError is returned when no project is registered under ProjectID.
type ProjectNotFoundError struct {
	ProjectID int64
}

func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("project with id %d could not be found", e.ProjectID)
}

func (e *ProjectNotFoundError) Unwrap() error { return ErrNotFound }

// PlaceNotFoundError is returned when a project has no place with PlaceID.
type PlaceNotFoundError struct {
	ProjectID int64
	PlaceID   int64
}

func (e *PlaceNotFoundError) Error() string {
	return fmt.Sprintf("project (id = %d) place with id %d could not be found", e.ProjectID, e.PlaceID)
}

func (e *PlaceNotFoundError) Unwrap() error { return ErrNotFound }

// DuplicatePlaceError is returned when a project already holds a place with
// the same catalog id.
type DuplicatePlaceError struct {
	ProjectID int64
	CatalogID int64
}

func (e *DuplicatePlaceError) Error() string {
	return fmt.Sprintf("project (id = %d) already contains catalog place %d", e.ProjectID, e.CatalogID)
}

func (e *DuplicatePlaceError) Unwrap() error { return ErrConflict }

// ProjectAtCapacityError is returned when a project already holds Limit places.
type ProjectAtCapacityError struct {
	ProjectID int64
	Limit     int
}

func (e *ProjectAtCapacityError) Error() string {
	return fmt.Sprintf("project (id = %d) has reached the maximum of %d places", e.ProjectID, e.Limit)
}

func (e *ProjectAtCapacityError) Unwrap() error { return ErrConflict }

// ProjectNotDeletableError is returned when deleting a project that has at
// least one visited place.
type ProjectNotDeletableError struct {
	ProjectID int64
}

func (e *ProjectNotDeletableError) Error() string {
	return fmt.Sprintf("project with id %d has visited places and cannot be deleted", e.ProjectID)
}

func (e *ProjectNotDeletableError) Unwrap() error { return ErrForbidden }

// CatalogPlaceNotFoundError is returned when a place name does not resolve
// against the external places catalog. It is a client input problem, so it
// unwraps to ErrValidation.
type CatalogPlaceNotFoundError struct {
	Name string
}

func (e *CatalogPlaceNotFoundError) Error() string {
	return fmt.Sprintf("place %q was not found in the catalog", e.Name)
}

func (e *CatalogPlaceNotFoundError) Unwrap() error { return ErrValidation }
