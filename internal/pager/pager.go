// Package pager implements the page-based fetch-and-accumulate pattern
// shared by the history, employee and attendance listings.
package pager

import (
	"context"

	"attendctl/internal/api"
)

// FetchFunc loads one page of records.
type FetchFunc[T any] func(ctx context.Context, page, limit int) ([]T, api.Pagination, error)

// Pager accumulates records across pages. Refresh replaces the
// accumulated list from page 1; LoadMore appends the next page in order.
// Records are never de-duplicated: the server is trusted not to repeat a
// record across pages, a best-effort assumption under concurrent writes.
type Pager[T any] struct {
	fetch FetchFunc[T]
	limit int

	records []T
	cursor  api.Pagination
	loaded  bool
}

// New creates a Pager fetching limit records per page.
func New[T any](fetch FetchFunc[T], limit int) *Pager[T] {
	return &Pager[T]{fetch: fetch, limit: limit}
}

// Records returns the accumulated records in fetch order.
func (p *Pager[T]) Records() []T { return p.records }

// Cursor returns the cursor from the most recent fetch.
func (p *Pager[T]) Cursor() api.Pagination { return p.cursor }

// Loaded reports whether an initial fetch has completed, letting callers
// distinguish a first full load from an incremental one.
func (p *Pager[T]) Loaded() bool { return p.loaded }

// HasMore reports whether pages remain beyond the current cursor.
func (p *Pager[T]) HasMore() bool {
	return p.loaded && p.cursor.Page < p.cursor.Pages
}

// Refresh discards the accumulated records and reloads page 1. On error
// the previous state is left untouched.
func (p *Pager[T]) Refresh(ctx context.Context) error {
	records, cursor, err := p.fetch(ctx, 1, p.limit)
	if err != nil {
		return err
	}
	p.records = records
	p.cursor = cursor
	p.loaded = true
	return nil
}

// LoadMore fetches the next page and appends its records, preserving
// order. It reports whether a page was actually fetched: once the cursor
// is at the last page the call is a no-op, so repeated invocations are
// idempotent. A LoadMore before any Refresh performs the initial load.
func (p *Pager[T]) LoadMore(ctx context.Context) (bool, error) {
	if !p.loaded {
		return true, p.Refresh(ctx)
	}
	if p.cursor.Page >= p.cursor.Pages {
		return false, nil
	}
	records, cursor, err := p.fetch(ctx, p.cursor.Page+1, p.limit)
	if err != nil {
		return false, err
	}
	p.records = append(p.records, records...)
	p.cursor = cursor
	return true, nil
}

// All keeps loading pages until none remain and returns everything.
func (p *Pager[T]) All(ctx context.Context) ([]T, error) {
	if !p.loaded {
		if err := p.Refresh(ctx); err != nil {
			return nil, err
		}
	}
	for p.HasMore() {
		if _, err := p.LoadMore(ctx); err != nil {
			return nil, err
		}
	}
	return p.records, nil
}
