// Package catalog holds the value types of the external places catalog.
package catalog

// Entry is a single catalog place.
type Entry struct {
	ID    int64
	Title string
}

// Page is one page of a paginated catalog listing.
type Page struct {
	Entries    []Entry
	TotalPages int
}
