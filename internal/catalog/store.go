// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog holds the read-only resource catalog: categories,
// subcategories and resources loaded once from JSON. A Store never changes
// after construction; reloads build a new Store and swap it into a Holder.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sync/atomic"

	"hislight/internal/models"
)

var (
	// ErrDuplicateID is returned when two records of the same set share an ID.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrMissingFile is returned when a catalog JSON file is absent.
	ErrMissingFile = errors.New("catalog file missing")
)

// versionSeq hands out a distinct version to every Store built in the process.
var versionSeq atomic.Uint64

// Store is an immutable, indexed snapshot of the catalog. It is safe for
// concurrent use by any number of readers.
type Store struct {
	version       uint64
	categories    []models.Category
	subcategories []models.Subcategory
	resources     []models.Resource

	categoryIdx    map[string]int
	subcategoryIdx map[string]int
	resourceCounts map[string]int // category ID → resources reachable through its subcategories
}

// New builds a Store from the three record sets, preserving their order.
// Duplicate IDs within a set are rejected. Dangling references are kept;
// they are simply unreachable from category-scoped views.
func New(categories []models.Category, subcategories []models.Subcategory, resources []models.Resource) (*Store, error) {
	s := &Store{
		version:        versionSeq.Add(1),
		categories:     slices.Clone(categories),
		subcategories:  slices.Clone(subcategories),
		resources:      slices.Clone(resources),
		categoryIdx:    make(map[string]int, len(categories)),
		subcategoryIdx: make(map[string]int, len(subcategories)),
		resourceCounts: make(map[string]int, len(categories)),
	}

	for i, c := range s.categories {
		if _, dup := s.categoryIdx[c.ID]; dup {
			return nil, fmt.Errorf("category %q: %w", c.ID, ErrDuplicateID)
		}
		s.categoryIdx[c.ID] = i
	}
	for i, sc := range s.subcategories {
		if _, dup := s.subcategoryIdx[sc.ID]; dup {
			return nil, fmt.Errorf("subcategory %q: %w", sc.ID, ErrDuplicateID)
		}
		s.subcategoryIdx[sc.ID] = i
	}

	seen := make(map[string]struct{}, len(s.resources))
	for _, r := range s.resources {
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("resource %q: %w", r.ID, ErrDuplicateID)
		}
		seen[r.ID] = struct{}{}

		if sc, ok := s.Subcategory(r.SubcategoryID); ok {
			if _, ok := s.categoryIdx[sc.CategoryID]; ok {
				s.resourceCounts[sc.CategoryID]++
			}
		}
	}

	return s, nil
}

// Version identifies this snapshot. Two stores never share a version.
func (s *Store) Version() uint64 {
	return s.version
}

// Categories returns all categories in storage order.
func (s *Store) Categories() []models.Category {
	return slices.Clone(s.categories)
}

// Category looks up a category by ID.
func (s *Store) Category(id string) (models.Category, bool) {
	i, ok := s.categoryIdx[id]
	if !ok {
		return models.Category{}, false
	}
	return s.categories[i], true
}

// Subcategories returns all subcategories in storage order.
func (s *Store) Subcategories() []models.Subcategory {
	return slices.Clone(s.subcategories)
}

// Subcategory looks up a subcategory by ID.
func (s *Store) Subcategory(id string) (models.Subcategory, bool) {
	i, ok := s.subcategoryIdx[id]
	if !ok {
		return models.Subcategory{}, false
	}
	return s.subcategories[i], true
}

// Resources returns all resources in storage order, including orphans.
func (s *Store) Resources() []models.Resource {
	return slices.Clone(s.resources)
}

// ResourceCount returns how many resources are reachable from a category.
func (s *Store) ResourceCount(categoryID string) int {
	return s.resourceCounts[categoryID]
}

// Len returns the sizes of the three record sets.
func (s *Store) Len() (categories, subcategories, resources int) {
	return len(s.categories), len(s.subcategories), len(s.resources)
}
