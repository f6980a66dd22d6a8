package artic

import "github.com/jsamuelsen11/travel-planner/internal/domain/catalog"

// ToDomainPage converts a listing response into a catalog page. Records
// without a title cannot be looked up by name and are dropped. A negative
// total page count is treated as zero.
func ToDomainPage(dto PlacesPageDTO) catalog.Page {
	entries := make([]catalog.Entry, 0, len(dto.Data))
	for _, p := range dto.Data {
		if p.Title == nil || *p.Title == "" {
			continue
		}
		entries = append(entries, catalog.Entry{ID: p.ID, Title: *p.Title})
	}

	return catalog.Page{
		Entries:    entries,
		TotalPages: max(dto.Pagination.TotalPages, 0),
	}
}
