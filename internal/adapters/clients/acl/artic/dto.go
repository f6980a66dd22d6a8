// Package artic translates the Art Institute of Chicago places API into
// catalog domain values. Only the fields the catalog needs are decoded.
package artic

// PlacesPageDTO is the envelope returned by GET /api/v1/places.
type PlacesPageDTO struct {
	Pagination PaginationDTO `json:"pagination"`
	Data       []PlaceDTO    `json:"data"`
}

// PaginationDTO is the pagination block of a listing response.
type PaginationDTO struct {
	Total       int `json:"total"`
	Limit       int `json:"limit"`
	Offset      int `json:"offset"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

// PlaceDTO is a single place record. Title is null for some records.
type PlaceDTO struct {
	ID    int64   `json:"id"`
	Title *string `json:"title"`
}

// Fields is the value sent as the fields query parameter to keep responses
// small.
const Fields = "id,title"
