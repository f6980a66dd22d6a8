package ports

import (
	"context"

	"github.com/jsamuelsen11/travel-planner/internal/domain/catalog"
)

// CatalogClient defines the client port for the downstream places catalog.
// Implemented by the ACL adapter; called by the place catalog loader.
type CatalogClient interface {
	// FetchPage returns one page of catalog entries together with the total
	// page count reported by the catalog. Pages are 1-based.
	FetchPage(ctx context.Context, page, limit int) (catalog.Page, error)
}
