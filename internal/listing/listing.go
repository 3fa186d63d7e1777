// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package listing composes filtering, pagination and URL synchronization
// into the state behind one category listing page.
//
// A View is built per request from the URL snapshot, receives at most a few
// interaction events, and is then rendered. Every state change runs in the
// same order: filter, then paginate, then sync the URL.
package listing

import (
	"hislight/internal/catalog"
	"hislight/internal/filter"
	"hislight/internal/models"
	"hislight/internal/pagination"
	"hislight/internal/urlstate"
)

// Options configures a View. Zero values fall back to defaults, and Path
// defaults to "/" + categoryID. OnScrollTop fires after a successful page
// jump.
type Options struct {
	Path         string
	ItemsPerPage int
	GroupSize    int
	Navigator    urlstate.Navigator
	OnScrollTop  func(page int)
	Memo         *filter.Memo
}

// View is the listing state of one category for one viewer. It is not safe
// for concurrent use.
type View struct {
	store      *catalog.Store
	categoryID string
	memo       *filter.Memo

	sel    filter.Selection
	result filter.Result
	pager  *pagination.Paginator[models.Resource]
	sync   *urlstate.Synchronizer
}

// New builds the view for categoryID seeded from initial. For an unknown
// category the view reports Found() == false and does no further work.
func New(store *catalog.Store, categoryID string, initial urlstate.Snapshot, opts Options) *View {
	v := &View{
		store:      store,
		categoryID: categoryID,
		memo:       opts.Memo,
		sel: filter.Selection{
			SearchQuery:   initial.Search,
			SubcategoryID: initial.Subcategory,
		},
	}

	v.result = v.memo.Apply(store, categoryID, v.sel)
	if !v.result.Found() {
		return v
	}

	pagerOpts := []pagination.Option{
		pagination.WithItemsPerPage(opts.ItemsPerPage),
		pagination.WithGroupSize(opts.GroupSize),
	}
	if opts.OnScrollTop != nil {
		pagerOpts = append(pagerOpts, pagination.WithOnNavigate(opts.OnScrollTop))
	}
	v.pager = pagination.New(v.result.Resources, initial.Page, pagerOpts...)

	path := opts.Path
	if path == "" {
		path = "/" + categoryID
	}
	v.sync = urlstate.NewSynchronizer(path, opts.Navigator)
	v.sync.Sync(v.Snapshot())

	return v
}

// Found reports whether the category exists.
func (v *View) Found() bool {
	return v.result.Found()
}

// CategoryID returns the requested category ID, found or not.
func (v *View) CategoryID() string {
	return v.categoryID
}

// Selection returns the active filters.
func (v *View) Selection() filter.Selection {
	return v.sel
}

// SetSearchQuery changes the search text. It reports whether anything
// changed.
func (v *View) SetSearchQuery(q string) bool {
	if !v.Found() || q == v.sel.SearchQuery {
		return false
	}
	v.sel.SearchQuery = q
	v.refilter()
	return true
}

// SetSubcategory selects a subcategory; "" selects all.
func (v *View) SetSubcategory(id string) bool {
	if !v.Found() || id == v.sel.SubcategoryID {
		return false
	}
	v.sel.SubcategoryID = id
	v.refilter()
	return true
}

// ResetFilters clears the search text and the subcategory choice.
func (v *View) ResetFilters() bool {
	if !v.Found() || v.sel.IsZero() {
		return false
	}
	v.sel = filter.Selection{}
	v.refilter()
	return true
}

// refilter applies a selection change: filter, back to page 1, paginate,
// then sync.
func (v *View) refilter() {
	v.result = v.memo.Apply(v.store, v.categoryID, v.sel)
	v.pager.ResetPage()
	v.pager.SetItems(v.result.Resources)
	v.sync.Sync(v.Snapshot())
}

// GoToPage jumps to page n when it exists.
func (v *View) GoToPage(n int) bool {
	return v.navigate(func() bool { return v.pager.GoToPage(n) })
}

// GoToPrevGroup jumps to the last page of the previous band.
func (v *View) GoToPrevGroup() bool {
	return v.navigate(func() bool { return v.pager.GoToPrevGroup() })
}

// GoToNextGroup jumps to the first page of the next band.
func (v *View) GoToNextGroup() bool {
	return v.navigate(func() bool { return v.pager.GoToNextGroup() })
}

// GoToPrevPage moves back one page.
func (v *View) GoToPrevPage() bool {
	return v.navigate(func() bool { return v.pager.GoToPrevPage() })
}

// GoToNextPage moves forward one page.
func (v *View) GoToNextPage() bool {
	return v.navigate(func() bool { return v.pager.GoToNextPage() })
}

func (v *View) navigate(move func() bool) bool {
	if !v.Found() || !move() {
		return false
	}
	v.sync.Sync(v.Snapshot())
	return true
}

// SetGroupSize changes the page band width, e.g. after a viewport change.
func (v *View) SetGroupSize(n int) {
	if v.Found() {
		v.pager.SetGroupSize(n)
	}
}

// Snapshot returns the URL-visible state.
func (v *View) Snapshot() urlstate.Snapshot {
	s := urlstate.Snapshot{
		Search:      v.sel.SearchQuery,
		Subcategory: v.sel.SubcategoryID,
		Page:        1,
	}
	if v.pager != nil {
		s.Page = v.pager.CurrentPage()
	}
	return s
}

// URL returns the canonical URL of the current state, or "" for an unknown
// category.
func (v *View) URL() string {
	if v.sync == nil {
		return ""
	}
	return v.sync.Current()
}
