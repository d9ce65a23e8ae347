// Package state provides the per-resource page cache the presentation
// layer reads from: the latest queried page, the active filter set, the
// pagination cursor and a loading flag. It forwards to a list function and
// republishes whatever comes back.
package state

import (
	"sync"

	"contractdesk/internal/store"
)

// ListFunc fetches one page for the given filter spec.
type ListFunc[T any] func(store.Query) (store.Page[T], error)

// Cache caches the latest page of one resource listing.
type Cache[T any] struct {
	mu      sync.Mutex
	fetch   ListFunc[T]
	query   store.Query
	page    store.Page[T]
	loading bool
}

// New returns a cache with the default pagination cursor and an empty
// filter set.
func New[T any](fetch ListFunc[T]) *Cache[T] {
	return &Cache[T]{
		fetch: fetch,
		query: store.Query{PageNum: store.DefaultPageNum, PageSize: store.DefaultPageSize},
	}
}

// SetFilter replaces the active filter set and rewinds to the first page.
func (c *Cache[T]) SetFilter(keyword, status string, departmentID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query.Keyword = keyword
	c.query.Status = status
	c.query.DepartmentID = departmentID
	c.query.PageNum = store.DefaultPageNum
}

// SetPagination moves the pagination cursor. Non-positive values fall back
// to the defaults.
func (c *Cache[T]) SetPagination(pageNum, pageSize int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if pageNum <= 0 {
		pageNum = store.DefaultPageNum
	}
	if pageSize <= 0 {
		pageSize = store.DefaultPageSize
	}
	c.query.PageNum = pageNum
	c.query.PageSize = pageSize
}

// Refresh fetches the page for the current cursor and filter set and
// caches it. The loading flag is up for the duration of the fetch.
func (c *Cache[T]) Refresh() (store.Page[T], error) {
	c.mu.Lock()
	c.loading = true
	q := c.query
	c.mu.Unlock()

	page, err := c.fetch(q)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		return store.Page[T]{}, err
	}
	c.page = page
	return page, nil
}

// Snapshot returns the cached page and whether a refresh is in flight.
func (c *Cache[T]) Snapshot() (store.Page[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page, c.loading
}

// Reset clears the filter set, rewinds the cursor and drops the cached
// page.
func (c *Cache[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = store.Query{PageNum: store.DefaultPageNum, PageSize: store.DefaultPageSize}
	c.page = store.Page[T]{}
}
