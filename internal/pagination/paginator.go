// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pagination

// Paginator holds the current page over a sequence of items. It is owned by
// a single view and is not safe for concurrent use.
type Paginator[T any] struct {
	items       []T
	currentPage int
	perPage     int
	groupSize   int
	onNavigate  func(page int)
}

// Option configures a Paginator.
type Option func(*config)

type config struct {
	perPage    int
	groupSize  int
	onNavigate func(int)
}

// WithItemsPerPage sets the page size. Non-positive values are ignored.
func WithItemsPerPage(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.perPage = n
		}
	}
}

// WithGroupSize sets the page band width. Non-positive values are ignored.
func WithGroupSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.groupSize = n
		}
	}
}

// WithOnNavigate registers a callback fired after every successful page
// jump. The listing uses it to scroll back to the top.
func WithOnNavigate(fn func(page int)) Option {
	return func(c *config) {
		c.onNavigate = fn
	}
}

// New creates a paginator positioned on initialPage, clamped to the last
// page when it is out of range. A page below 1 starts at 1.
func New[T any](items []T, initialPage int, opts ...Option) *Paginator[T] {
	c := config{perPage: DefaultItemsPerPage, groupSize: DefaultGroupSize}
	for _, opt := range opts {
		opt(&c)
	}

	if initialPage < 1 {
		initialPage = 1
	}
	p := &Paginator[T]{
		currentPage: initialPage,
		perPage:     c.perPage,
		groupSize:   c.groupSize,
		onNavigate:  c.onNavigate,
	}
	p.SetItems(items)
	return p
}

// SetItems replaces the sequence. The current page is clamped down to the
// new last page; with no pages at all it is left alone.
func (p *Paginator[T]) SetItems(items []T) {
	p.items = items
	p.clamp()
}

func (p *Paginator[T]) clamp() {
	total := p.TotalPages()
	if total > 0 && p.currentPage > total {
		p.currentPage = total
	}
}

// SetGroupSize changes the band width. Non-positive values are ignored.
func (p *Paginator[T]) SetGroupSize(n int) {
	if n > 0 {
		p.groupSize = n
	}
}

// CurrentPage returns the 1-based current page.
func (p *Paginator[T]) CurrentPage() int { return p.currentPage }

// ItemsPerPage returns the page size.
func (p *Paginator[T]) ItemsPerPage() int { return p.perPage }

// GroupSize returns the band width.
func (p *Paginator[T]) GroupSize() int { return p.groupSize }

// Len returns the number of items being paginated.
func (p *Paginator[T]) Len() int { return len(p.items) }

// TotalPages returns the number of pages.
func (p *Paginator[T]) TotalPages() int {
	return TotalPages(len(p.items), p.perPage)
}

// Items returns the current page's items.
func (p *Paginator[T]) Items() []T {
	return Slice(p.items, p.currentPage, p.perPage)
}

// PageGroup returns the band holding the current page.
func (p *Paginator[T]) PageGroup() PageGroup {
	return Group(p.currentPage, p.TotalPages(), p.groupSize)
}

// Pages lists the page numbers of the current band.
func (p *Paginator[T]) Pages() []int {
	return p.PageGroup().Pages()
}

// HasItems reports whether there is anything to show.
func (p *Paginator[T]) HasItems() bool { return len(p.items) > 0 }

// HasPagination reports whether page controls are needed.
func (p *Paginator[T]) HasPagination() bool { return p.TotalPages() > 1 }

// GoToPage jumps to page n. It returns false and does nothing when n is
// outside [1, TotalPages].
func (p *Paginator[T]) GoToPage(n int) bool {
	if n < 1 || n > p.TotalPages() {
		return false
	}
	p.currentPage = n
	if p.onNavigate != nil {
		p.onNavigate(n)
	}
	return true
}

// GoToPrevGroup jumps to the page just before the current band.
func (p *Paginator[T]) GoToPrevGroup() bool {
	g := p.PageGroup()
	if !g.HasPrevGroup {
		return false
	}
	return p.GoToPage(g.StartPage - 1)
}

// GoToNextGroup jumps to the page just after the current band.
func (p *Paginator[T]) GoToNextGroup() bool {
	g := p.PageGroup()
	if !g.HasNextGroup {
		return false
	}
	return p.GoToPage(g.EndPage + 1)
}

// GoToPrevPage moves back one page.
func (p *Paginator[T]) GoToPrevPage() bool {
	return p.GoToPage(p.currentPage - 1)
}

// GoToNextPage moves forward one page.
func (p *Paginator[T]) GoToNextPage() bool {
	return p.GoToPage(p.currentPage + 1)
}

// ResetPage returns to page 1 without firing the navigate callback.
func (p *Paginator[T]) ResetPage() {
	p.currentPage = 1
}
