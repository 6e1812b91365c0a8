package paging

import "sync"

// Page is one page of items together with what the caller needs to ask for
// the next one.
type Page[T any] struct {
	Items    []T  `json:"items"`
	Page     int  `json:"page"`
	PageSize int  `json:"page_size"`
	Total    int  `json:"total,omitempty"`
	HasMore  bool `json:"has_more"`
}

func NewPage[T any](items []T, page, pageSize, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	hasMore := len(items) == pageSize
	if total > 0 {
		hasMore = page*pageSize < total
	}
	return Page[T]{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		HasMore:  hasMore,
	}
}

// Cache accumulates consecutive pages of a list. Storing page 1 replaces the
// whole list. Storing page N again replaces what page N contributed and drops
// every later page, so retrying a page never duplicates items.
type Cache[T any] struct {
	mu    sync.RWMutex
	pages [][]T
}

func (c *Cache[T]) Store(page int, items []T) {
	if page < 1 {
		page = 1
	}
	copied := append([]T(nil), items...)

	c.mu.Lock()
	defer c.mu.Unlock()

	for len(c.pages) < page-1 {
		c.pages = append(c.pages, nil)
	}
	c.pages = append(c.pages[:page-1], copied)
}

// Items returns a copy of the accumulated list in page order.
func (c *Cache[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]T, 0)
	for _, page := range c.pages {
		items = append(items, page...)
	}
	return items
}

func (c *Cache[T]) LoadedPages() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}

// Remove drops every cached item matching the predicate and reports how many
// were removed.
func (c *Cache[T]) Remove(match func(T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for i, page := range c.pages {
		kept := page[:0:0]
		for _, item := range page {
			if match(item) {
				removed++
				continue
			}
			kept = append(kept, item)
		}
		c.pages[i] = kept
	}
	return removed
}

// Update applies fn to every cached item matching the predicate and reports
// how many were changed.
func (c *Cache[T]) Update(match func(T) bool, fn func(*T)) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated := 0
	for _, page := range c.pages {
		for i := range page {
			if match(page[i]) {
				fn(&page[i])
				updated++
			}
		}
	}
	return updated
}

func (c *Cache[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages = nil
}
