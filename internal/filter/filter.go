// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package filter derives the visible resources of a category from the
// catalog and the user's selection. Everything here is a pure function of
// its inputs; Memo is an optional cache on top.
package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"hislight/internal/catalog"
	"hislight/internal/models"
)

// Selection is the user's current search text and subcategory choice.
// An empty SubcategoryID means all subcategories of the category.
type Selection struct {
	SearchQuery   string
	SubcategoryID string
}

// IsZero reports whether no filter is active.
func (s Selection) IsZero() bool {
	return s.SearchQuery == "" && s.SubcategoryID == ""
}

// Result is the derived view of one category under a Selection.
type Result struct {
	// Category is nil when the requested category does not exist.
	Category *models.Category

	Subcategories     []models.Subcategory
	CategoryResources []models.Resource
	Resources         []models.Resource

	// SubcategoryCounts counts CategoryResources per subcategory. Empty
	// buckets are absent; use Count.
	SubcategoryCounts map[string]int
	TotalCount        int
}

// Found reports whether the category exists.
func (r Result) Found() bool {
	return r.Category != nil
}

// FilteredCount is the number of resources left after filtering.
func (r Result) FilteredCount() int {
	return len(r.Resources)
}

// Count returns the number of category resources in a subcategory.
func (r Result) Count(subcategoryID string) int {
	return r.SubcategoryCounts[subcategoryID]
}

// Apply filters the resources of categoryID. An unknown category yields a
// zero Result and no further work.
func Apply(store *catalog.Store, categoryID string, sel Selection) Result {
	cat, ok := store.Category(categoryID)
	if !ok {
		return Result{}
	}

	res := Result{
		Category:          &cat,
		SubcategoryCounts: make(map[string]int),
	}

	inCategory := make(map[string]struct{})
	for _, sc := range store.Subcategories() {
		if sc.CategoryID == categoryID {
			res.Subcategories = append(res.Subcategories, sc)
			inCategory[sc.ID] = struct{}{}
		}
	}

	m := newMatcher(sel.SearchQuery)
	for _, r := range store.Resources() {
		if _, ok := inCategory[r.SubcategoryID]; !ok {
			continue
		}
		res.CategoryResources = append(res.CategoryResources, r)
		res.SubcategoryCounts[r.SubcategoryID]++

		if sel.SubcategoryID != "" && r.SubcategoryID != sel.SubcategoryID {
			continue
		}
		if !m.match(r) {
			continue
		}
		res.Resources = append(res.Resources, r)
	}
	res.TotalCount = len(res.CategoryResources)

	return res
}

// matcher tests resources against a case-folded query.
type matcher struct {
	fold  cases.Caser
	query string
}

func newMatcher(query string) *matcher {
	if query == "" {
		return &matcher{}
	}
	// cases.Caser keeps state and is not safe for concurrent use, so each
	// Apply call gets its own.
	fold := cases.Fold()
	return &matcher{fold: fold, query: fold.String(query)}
}

func (m *matcher) match(r models.Resource) bool {
	if m.query == "" {
		return true
	}
	return strings.Contains(m.fold.String(r.Title), m.query) ||
		strings.Contains(m.fold.String(r.Description), m.query)
}
