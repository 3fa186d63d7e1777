// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"sync"
	"sync/atomic"
)

// Holder publishes the current Store. Readers call Get on every request;
// a reload replaces the whole snapshot at once with Swap.
type Holder struct {
	current atomic.Pointer[Store]

	mu    sync.Mutex
	hooks []func(*Store)
}

// NewHolder returns a Holder serving s.
func NewHolder(s *Store) *Holder {
	h := &Holder{}
	h.current.Store(s)
	return h
}

// Get returns the current snapshot.
func (h *Holder) Get() *Store {
	return h.current.Load()
}

// Swap installs s and runs the reload hooks in registration order.
func (h *Holder) Swap(s *Store) {
	h.current.Store(s)

	h.mu.Lock()
	hooks := append([]func(*Store){}, h.hooks...)
	h.mu.Unlock()

	for _, fn := range hooks {
		fn(s)
	}
}

// OnReload registers fn to run after every Swap. Used to purge caches
// derived from the previous snapshot.
func (h *Holder) OnReload(fn func(*Store)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, fn)
}
