// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package pagination slices an ordered sequence into fixed-size pages and
// groups page numbers into bands for display. It knows nothing about what
// is being paginated.
package pagination

const (
	// DefaultItemsPerPage is the listing page size.
	DefaultItemsPerPage = 9
	// DefaultGroupSize is the page band width on wide screens.
	DefaultGroupSize = 10
)

// PageGroup is the band of page numbers that holds the current page.
type PageGroup struct {
	StartPage    int  `json:"start_page"`
	EndPage      int  `json:"end_page"`
	HasPrevGroup bool `json:"has_prev_group"`
	HasNextGroup bool `json:"has_next_group"`
}

// Pages lists StartPage..EndPage. It is empty when there are no pages.
func (g PageGroup) Pages() []int {
	if g.EndPage < g.StartPage {
		return nil
	}
	pages := make([]int, 0, g.EndPage-g.StartPage+1)
	for p := g.StartPage; p <= g.EndPage; p++ {
		pages = append(pages, p)
	}
	return pages
}

// TotalPages returns ceil(n/perPage), or 0 for an empty sequence.
func TotalPages(n, perPage int) int {
	if perPage <= 0 {
		perPage = DefaultItemsPerPage
	}
	if n <= 0 {
		return 0
	}
	return (n + perPage - 1) / perPage
}

// Slice returns the items of a 1-based page, clipped to bounds. Pages past
// the end yield an empty slice.
func Slice[T any](items []T, page, perPage int) []T {
	if perPage <= 0 {
		perPage = DefaultItemsPerPage
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}
	end := min(start+perPage, len(items))
	return items[start:end:end]
}

// Group returns the band of groupSize pages that contains page.
func Group(page, totalPages, groupSize int) PageGroup {
	if groupSize <= 0 {
		groupSize = DefaultGroupSize
	}
	if page < 1 {
		page = 1
	}
	band := (page - 1) / groupSize
	start := band*groupSize + 1
	end := min((band+1)*groupSize, totalPages)

	return PageGroup{
		StartPage:    start,
		EndPage:      end,
		HasPrevGroup: start > 1,
		HasNextGroup: end < totalPages,
	}
}
