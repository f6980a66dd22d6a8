package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/travel-planner/internal/adapters/clients/acl/artic"
	"github.com/jsamuelsen11/travel-planner/internal/domain/catalog"
	"github.com/jsamuelsen11/travel-planner/internal/platform/httpclient"
	"github.com/jsamuelsen11/travel-planner/internal/ports"
)

var (
	_ ports.CatalogClient = (*CatalogClient)(nil)
	_ ports.HealthChecker = (*CatalogClient)(nil)
)

// placesPath is the listing endpoint of the catalog API.
const placesPath = "/api/v1/places"

// CatalogName identifies the catalog API in health checks, traces and
// metrics.
const CatalogName = "places-catalog"

// CatalogClient is the outbound adapter for the places catalog API. It
// implements [ports.CatalogClient] and [ports.HealthChecker].
type CatalogClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewCatalogClient creates a CatalogClient on top of client, whose base URL
// points at the catalog API root (e.g. "https://api.artic.edu").
func NewCatalogClient(client *httpclient.Client, logger *slog.Logger) *CatalogClient {
	return &CatalogClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// FetchPage fetches page (1-based) of the places listing with limit entries
// per page.
func (c *CatalogClient) FetchPage(ctx context.Context, page, limit int) (catalog.Page, error) {
	if page < 1 || limit < 1 {
		return catalog.Page{}, fmt.Errorf("fetching catalog page %d with limit %d: page and limit must be >= 1", page, limit)
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("fields", artic.Fields)

	var dto artic.PlacesPageDTO
	if err := c.req.GetJSON(ctx, placesPath, q, &dto); err != nil {
		return catalog.Page{}, fmt.Errorf("fetching catalog page %d: %w", page, err)
	}
	return artic.ToDomainPage(dto), nil
}

// Name returns the health check name.
func (c *CatalogClient) Name() string {
	return CatalogName
}

// HealthCheck reports the catalog API from the circuit breaker state. No
// request is sent.
func (c *CatalogClient) HealthCheck(_ context.Context) error {
	switch state := c.req.CircuitBreakerState(); state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", CatalogName)
	case "open":
		return fmt.Errorf("%s: failing (circuit breaker open)", CatalogName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %q", CatalogName, state)
	}
}
