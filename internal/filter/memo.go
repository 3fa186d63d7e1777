// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package filter

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"hislight/internal/catalog"
)

// DefaultMemoSize is used when NewMemo is given a non-positive size.
const DefaultMemoSize = 256

type memoKey struct {
	version    uint64
	categoryID string
	sel        Selection
}

// Memo caches Apply results by store version, category and selection.
// A nil *Memo is valid and simply computes every time.
type Memo struct {
	cache *lru.Cache[memoKey, Result]
}

// NewMemo creates a memo holding at most size results.
func NewMemo(size int) (*Memo, error) {
	if size <= 0 {
		size = DefaultMemoSize
	}
	c, err := lru.New[memoKey, Result](size)
	if err != nil {
		return nil, fmt.Errorf("create filter memo: %w", err)
	}
	return &Memo{cache: c}, nil
}

// Apply returns the cached result for the inputs, computing it on a miss.
// Cached results share their slices; callers must not modify them.
func (m *Memo) Apply(store *catalog.Store, categoryID string, sel Selection) Result {
	if m == nil {
		return Apply(store, categoryID, sel)
	}

	key := memoKey{version: store.Version(), categoryID: categoryID, sel: sel}
	if r, ok := m.cache.Get(key); ok {
		return r
	}

	r := Apply(store, categoryID, sel)
	m.cache.Add(key, r)
	return r
}

// Len returns the number of cached results.
func (m *Memo) Len() int {
	if m == nil {
		return 0
	}
	return m.cache.Len()
}

// Purge drops every cached result. Registered as a catalog reload hook.
func (m *Memo) Purge() {
	if m == nil {
		return
	}
	m.cache.Purge()
}
