// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package listing

import (
	"hislight/internal/models"
	"hislight/internal/pagination"
)

// SubcategoryOption is one entry of the subcategory filter.
type SubcategoryOption struct {
	models.Subcategory
	Count    int  `json:"count"`
	Selected bool `json:"selected"`
}

// State is the read model rendered by templates and the JSON API.
type State struct {
	Category      models.Category      `json:"category"`
	Subcategories []SubcategoryOption  `json:"subcategories"`
	Search        string               `json:"search"`
	Subcategory   string               `json:"subcategory"`
	TotalCount    int                  `json:"total_count"`
	FilteredCount int                  `json:"filtered_count"`
	Resources     []models.Resource    `json:"resources"`
	CurrentPage   int                  `json:"current_page"`
	TotalPages    int                  `json:"total_pages"`
	ItemsPerPage  int                  `json:"items_per_page"`
	GroupSize     int                  `json:"group_size"`
	PageGroup     pagination.PageGroup `json:"page_group"`
	Pages         []int                `json:"pages"`
	HasItems      bool                 `json:"has_items"`
	HasPagination bool                 `json:"has_pagination"`
	URL           string               `json:"url"`
}

// AllSelected reports whether the "all" filter option is active.
func (s State) AllSelected() bool {
	return s.Subcategory == ""
}

// State returns the read model of the view. It is the zero State for an
// unknown category.
func (v *View) State() State {
	if !v.Found() {
		return State{}
	}

	opts := make([]SubcategoryOption, 0, len(v.result.Subcategories))
	for _, sc := range v.result.Subcategories {
		opts = append(opts, SubcategoryOption{
			Subcategory: sc,
			Count:       v.result.Count(sc.ID),
			Selected:    sc.ID == v.sel.SubcategoryID,
		})
	}

	return State{
		Category:      *v.result.Category,
		Subcategories: opts,
		Search:        v.sel.SearchQuery,
		Subcategory:   v.sel.SubcategoryID,
		TotalCount:    v.result.TotalCount,
		FilteredCount: v.result.FilteredCount(),
		Resources:     v.pager.Items(),
		CurrentPage:   v.pager.CurrentPage(),
		TotalPages:    v.pager.TotalPages(),
		ItemsPerPage:  v.pager.ItemsPerPage(),
		GroupSize:     v.pager.GroupSize(),
		PageGroup:     v.pager.PageGroup(),
		Pages:         v.pager.Pages(),
		HasItems:      v.pager.HasItems(),
		HasPagination: v.pager.HasPagination(),
		URL:           v.URL(),
	}
}
