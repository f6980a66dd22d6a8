// Package placecatalog holds the in-memory index of the external places
// catalog. The index is filled once at startup by FetchAll and then serves
// name lookups for every place write.
package placecatalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"github.com/jsamuelsen11/travel-planner/internal/app/fanout"
	"github.com/jsamuelsen11/travel-planner/internal/domain/catalog"
	"github.com/jsamuelsen11/travel-planner/internal/platform/telemetry"
	"github.com/jsamuelsen11/travel-planner/internal/ports"
)

var (
	_ ports.PlaceCatalog  = (*Catalog)(nil)
	_ ports.HealthChecker = (*Catalog)(nil)
)

// Default fetch settings.
const (
	DefaultPageSize     = 100
	DefaultFetchWorkers = 8
)

// ErrEmpty is reported by HealthCheck until a fetch has loaded at least one
// entry.
var ErrEmpty = errors.New("place catalog is empty")

// Options tunes the bulk fetch.
type Options struct {
	PageSize     int
	FetchWorkers int
}

// Catalog implements [ports.PlaceCatalog]. Safe for concurrent use.
type Catalog struct {
	client  ports.CatalogClient
	opts    Options
	logger  *slog.Logger
	metrics *telemetry.Metrics

	mu     sync.RWMutex
	titles map[int64]string
	byName map[string]int64
}

// New creates an empty catalog that loads pages through client. Zero
// options fall back to the defaults. logger and metrics may be nil.
func New(client ports.CatalogClient, opts Options, logger *slog.Logger, metrics *telemetry.Metrics) *Catalog {
	if opts.PageSize < 1 {
		opts.PageSize = DefaultPageSize
	}
	if opts.FetchWorkers < 1 {
		opts.FetchWorkers = DefaultFetchWorkers
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Catalog{
		client:  client,
		opts:    opts,
		logger:  logger,
		metrics: metrics,
		titles:  make(map[int64]string),
		byName:  make(map[string]int64),
	}
}

// FetchAll downloads the whole catalog and replaces the index. Page 1 is
// fetched first to learn the page count; the remaining pages are fetched
// concurrently. A failed page after the first is logged and skipped. If
// page 1 fails the index is left untouched and the error is returned.
//
// Pages are merged in page order, so when two entries share a title the one
// on the earlier page wins the name lookup.
func (c *Catalog) FetchAll(ctx context.Context) (map[int64]string, error) {
	first, err := c.client.FetchPage(ctx, 1, c.opts.PageSize)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to fetch first catalog page",
			slog.String("operation", "FetchAll"),
			slog.Int("page", 1),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("fetching catalog page 1: %w", err)
	}

	rest := make([]int, 0, max(first.TotalPages-1, 0))
	for p := 2; p <= first.TotalPages; p++ {
		rest = append(rest, p)
	}

	results := fanout.Run(ctx, c.opts.FetchWorkers, rest, func(ctx context.Context, page int) (catalog.Page, error) {
		return c.client.FetchPage(ctx, page, c.opts.PageSize)
	})

	pages := make([]catalog.Page, 0, len(results)+1)
	pages = append(pages, first)
	failed := 0
	for i, r := range results {
		if r.Err != nil {
			failed++
			c.metrics.RecordCatalogPageFailed(ctx)
			c.logger.WarnContext(ctx, "skipping catalog page",
				slog.String("operation", "FetchAll"),
				slog.Int("page", rest[i]),
				slog.Any("error", r.Err),
			)
			continue
		}
		pages = append(pages, r.Value)
	}

	titles, byName := index(pages)

	c.mu.Lock()
	c.titles = titles
	c.byName = byName
	c.mu.Unlock()

	c.logger.InfoContext(ctx, "place catalog loaded",
		slog.Int("entries", len(titles)),
		slog.Int("total_pages", first.TotalPages),
		slog.Int("failed_pages", failed),
	)

	return maps.Clone(titles), nil
}

// LookupByName returns the catalog id whose title equals name exactly.
func (c *Catalog) LookupByName(name string) (int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	id, ok := c.byName[name]
	return id, ok
}

// Len returns the number of indexed entries.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.titles)
}

// Name returns the health check name.
func (c *Catalog) Name() string {
	return "place-index"
}

// HealthCheck fails with ErrEmpty while nothing has been loaded, since
// every place write would then be rejected.
func (c *Catalog) HealthCheck(_ context.Context) error {
	if c.Len() == 0 {
		return ErrEmpty
	}
	return nil
}

func index(pages []catalog.Page) (map[int64]string, map[string]int64) {
	titles := make(map[int64]string)
	byName := make(map[string]int64)

	for _, p := range pages {
		for _, e := range p.Entries {
			titles[e.ID] = e.Title
			if _, taken := byName[e.Title]; !taken {
				byName[e.Title] = e.ID
			}
		}
	}
	return titles, byName
}
