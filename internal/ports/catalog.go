package ports

import "context"

// PlaceCatalog is the local, read-mostly index of the external places
// catalog. It is loaded once at startup and consulted on every place write.
type PlaceCatalog interface {
	// FetchAll downloads every catalog page and rebuilds the index. Pages
	// that fail after the first are skipped. Returns an error only when the
	// first page cannot be fetched.
	FetchAll(ctx context.Context) (map[int64]string, error)

	// LookupByName returns the catalog id of the entry whose title equals
	// name exactly.
	LookupByName(name string) (int64, bool)
}
