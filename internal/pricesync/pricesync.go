// Package pricesync periodically refreshes registered products from the
// shopping search provider. It is the only caller of the unauthenticated
// update-by-search path.
package pricesync

import (
	"context"
	"log/slog"
	"time"

	"github.com/selectshop/selectshop-go/internal/naver"
	"github.com/selectshop/selectshop-go/internal/repository"
	"github.com/selectshop/selectshop-go/internal/service"
)

const pageSize = 100

// Refresher walks all products on an interval and re-queries the search
// provider by title, updating lprice and the other search-sourced fields.
type Refresher struct {
	products repository.ProductStore
	service  *service.ProductService
	search   *naver.Client
	interval time.Duration
}

// NewRefresher creates a new Refresher.
func NewRefresher(products repository.ProductStore, svc *service.ProductService, search *naver.Client, interval time.Duration) *Refresher {
	return &Refresher{
		products: products,
		service:  svc,
		search:   search,
		interval: interval,
	}
}

// Run refreshes on the configured interval until ctx is cancelled. Individual
// product failures are logged and skipped.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	slog.Info("price sync started", "interval", r.interval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("price sync stopped")
			return
		case <-ticker.C:
			r.refreshAll(ctx)
		}
	}
}

func (r *Refresher) refreshAll(ctx context.Context) {
	params := repository.ListParams{Page: 0, Size: pageSize, SortBy: "id", Asc: true}
	var refreshed, failed int

	for {
		products, _, err := r.products.ListAll(ctx, params)
		if err != nil {
			slog.Error("price sync: listing products", "error", err)
			return
		}
		if len(products) == 0 {
			break
		}

		for i := range products {
			if err := r.refreshOne(ctx, products[i].ID, products[i].Title); err != nil {
				slog.Warn("price sync: product skipped", "id", products[i].ID, "error", err)
				failed++
				continue
			}
			refreshed++
		}

		if len(products) < pageSize {
			break
		}
		params.Page++
	}

	slog.Info("price sync completed", "refreshed", refreshed, "failed", failed)
}

func (r *Refresher) refreshOne(ctx context.Context, id int64, title string) error {
	items, err := r.search.Search(ctx, title, 1)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return r.service.UpdateBySearch(ctx, id, items[0])
}
