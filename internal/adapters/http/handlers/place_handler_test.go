package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/travel-planner/internal/adapters/http/dto"
	"github.com/jsamuelsen11/travel-planner/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/travel-planner/internal/domain"
	"github.com/jsamuelsen11/travel-planner/internal/domain/place"
	"github.com/jsamuelsen11/travel-planner/mocks"
)

func newPlaceHandler(t *testing.T) (*handlers.PlaceHandler, *mocks.MockTravelService) {
	t.Helper()
	svc := mocks.NewMockTravelService(t)
	return handlers.NewPlaceHandler(svc), svc
}

func placeParams(projectID, placeID string) map[string]string {
	return map[string]string{"projectId": projectID, "placeId": placeID}
}

// --- AddPlace ---

func TestAddPlace_Created(t *testing.T) {
	t.Parallel()
	h, svc := newPlaceHandler(t)

	svc.EXPECT().AddPlace(mock.Anything, int64(1), mock.MatchedBy(func(d place.Details) bool {
		return d.Name == "Izumo" && d.Note != nil && *d.Note == "Check the architecture"
	})).Return(izumo(), nil)

	body := jsonBody(t, dto.PlaceRequest{Name: "Izumo", Note: strPtr("Check the architecture")})
	req := withChiParams(httptest.NewRequest(http.MethodPost, "/projects/1/places", body), map[string]string{"projectId": "1"})
	rec := httptest.NewRecorder()
	h.AddPlace(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.PlaceResponse](t, rec)
	if resp.ID != 1 || resp.CatalogID != 7 || resp.Visited {
		t.Errorf("response = %+v, want unvisited place 1 from catalog 7", resp)
	}
}

func TestAddPlace_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "project missing", err: &domain.ProjectNotFoundError{ProjectID: 1}, wantCode: http.StatusNotFound},
		{name: "not in catalog", err: &domain.CatalogPlaceNotFoundError{Name: "Izumo"}, wantCode: http.StatusBadRequest},
		{name: "duplicate", err: &domain.DuplicatePlaceError{ProjectID: 1, CatalogID: 7}, wantCode: http.StatusConflict},
		{name: "at capacity", err: &domain.ProjectAtCapacityError{ProjectID: 1, Limit: 10}, wantCode: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newPlaceHandler(t)
			svc.EXPECT().AddPlace(mock.Anything, int64(1), mock.Anything).Return(place.Snapshot{}, tt.err)

			body := jsonBody(t, dto.PlaceRequest{Name: "Izumo"})
			req := withChiParams(httptest.NewRequest(http.MethodPost, "/projects/1/places", body), map[string]string{"projectId": "1"})
			rec := httptest.NewRecorder()
			h.AddPlace(rec, req)

			requireStatus(t, rec, tt.wantCode)
			if resp := decodeJSON[dto.ErrorResponse](t, rec); resp.Detail != tt.err.Error() {
				t.Errorf("Detail = %q, want %q", resp.Detail, tt.err.Error())
			}
		})
	}
}

func TestAddPlace_MissingName(t *testing.T) {
	t.Parallel()
	h, _ := newPlaceHandler(t)

	req := withChiParams(httptest.NewRequest(http.MethodPost, "/projects/1/places", bytes.NewBufferString(`{"note":"x"}`)),
		map[string]string{"projectId": "1"})
	rec := httptest.NewRecorder()
	h.AddPlace(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- UpdatePlace ---

func TestUpdatePlace(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		h, svc := newPlaceHandler(t)

		updated := izumo()
		updated.Note = strPtr("morning visit")
		svc.EXPECT().UpdatePlace(mock.Anything, int64(1), int64(2), place.Details{Name: "Izumo", Note: strPtr("morning visit")}).
			Return(updated, nil)

		body := jsonBody(t, dto.PlaceRequest{Name: "Izumo", Note: strPtr("morning visit")})
		req := withChiParams(httptest.NewRequest(http.MethodPatch, "/projects/1/places/2", body), placeParams("1", "2"))
		rec := httptest.NewRecorder()
		h.UpdatePlace(rec, req)

		requireStatus(t, rec, http.StatusOK)
		if resp := decodeJSON[dto.PlaceResponse](t, rec); resp.Note == nil || *resp.Note != "morning visit" {
			t.Errorf("Note = %v, want morning visit", resp.Note)
		}
	})

	t.Run("place missing", func(t *testing.T) {
		t.Parallel()
		h, svc := newPlaceHandler(t)
		svc.EXPECT().UpdatePlace(mock.Anything, int64(1), int64(9), mock.Anything).
			Return(place.Snapshot{}, &domain.PlaceNotFoundError{ProjectID: 1, PlaceID: 9})

		body := jsonBody(t, dto.PlaceRequest{Name: "Izumo"})
		req := withChiParams(httptest.NewRequest(http.MethodPatch, "/projects/1/places/9", body), placeParams("1", "9"))
		rec := httptest.NewRecorder()
		h.UpdatePlace(rec, req)

		requireStatus(t, rec, http.StatusNotFound)
	})
}

// --- MarkVisited ---

func TestMarkVisited(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		h, svc := newPlaceHandler(t)

		visited := izumo()
		visited.Visited = true
		svc.EXPECT().MarkPlaceVisited(mock.Anything, int64(1), int64(1)).Return(visited, nil)

		req := withChiParams(httptest.NewRequest(http.MethodPatch, "/projects/1/places/1/visited", nil), placeParams("1", "1"))
		rec := httptest.NewRecorder()
		h.MarkVisited(rec, req)

		requireStatus(t, rec, http.StatusOK)
		if resp := decodeJSON[dto.PlaceResponse](t, rec); !resp.Visited {
			t.Error("Visited = false, want true")
		}
	})

	t.Run("place missing", func(t *testing.T) {
		t.Parallel()
		h, svc := newPlaceHandler(t)
		svc.EXPECT().MarkPlaceVisited(mock.Anything, int64(1), int64(5)).
			Return(place.Snapshot{}, &domain.PlaceNotFoundError{ProjectID: 1, PlaceID: 5})

		req := withChiParams(httptest.NewRequest(http.MethodPatch, "/projects/1/places/5/visited", nil), placeParams("1", "5"))
		rec := httptest.NewRecorder()
		h.MarkVisited(rec, req)

		requireStatus(t, rec, http.StatusNotFound)
	})

	t.Run("bad place id", func(t *testing.T) {
		t.Parallel()
		h, _ := newPlaceHandler(t)

		req := withChiParams(httptest.NewRequest(http.MethodPatch, "/projects/1/places/x/visited", nil), placeParams("1", "x"))
		rec := httptest.NewRecorder()
		h.MarkVisited(rec, req)

		requireStatus(t, rec, http.StatusBadRequest)
		resp := decodeJSON[dto.ErrorResponse](t, rec)
		if len(resp.Errors) != 1 || resp.Errors[0].Location != "path.placeId" {
			t.Errorf("Errors = %+v, want path.placeId", resp.Errors)
		}
	})
}
