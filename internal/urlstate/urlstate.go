// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package urlstate mirrors listing state into shareable query strings.
package urlstate

import (
	"log/slog"
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names.
const (
	ParamSearch      = "search"
	ParamSubcategory = "subcategory"
	ParamPage        = "page"
)

// Snapshot is the part of a listing's state that lives in the URL.
type Snapshot struct {
	Search      string `json:"search"`
	Subcategory string `json:"subcategory"`
	Page        int    `json:"page"`
}

// Encode serializes the snapshot in canonical form: parameters appear in the
// order search, subcategory, page, and defaults are left out. A snapshot
// holding only defaults encodes to "".
func (s Snapshot) Encode() string {
	var parts []string
	if s.Search != "" {
		parts = append(parts, ParamSearch+"="+url.QueryEscape(s.Search))
	}
	if s.Subcategory != "" {
		parts = append(parts, ParamSubcategory+"="+url.QueryEscape(s.Subcategory))
	}
	if s.Page > 1 {
		parts = append(parts, ParamPage+"="+strconv.Itoa(s.Page))
	}
	return strings.Join(parts, "&")
}

// URL joins path with the encoded snapshot.
func URL(path string, s Snapshot) string {
	if q := s.Encode(); q != "" {
		return path + "?" + q
	}
	return path
}

// Parse reads a snapshot from query values. Missing parameters take their
// defaults; a page that is not a positive integer becomes 1.
func Parse(v url.Values) Snapshot {
	s := Snapshot{
		Search:      v.Get(ParamSearch),
		Subcategory: v.Get(ParamSubcategory),
		Page:        1,
	}
	if n, err := strconv.Atoi(strings.TrimSpace(v.Get(ParamPage))); err == nil && n > 1 {
		s.Page = n
	}
	return s
}

// Navigator replaces the current location without adding a history entry.
type Navigator interface {
	Replace(target string) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(target string) error

// Replace calls f(target).
func (f NavigatorFunc) Replace(target string) error { return f(target) }

// Synchronizer writes snapshots to a Navigator. It is write-only and never
// fails: navigator errors are logged and dropped.
type Synchronizer struct {
	path string
	nav  Navigator
	last string
}

// NewSynchronizer creates a synchronizer for the page at path. A nil
// navigator makes Sync a no-op apart from tracking the URL.
func NewSynchronizer(path string, nav Navigator) *Synchronizer {
	return &Synchronizer{path: path, nav: nav}
}

// Sync writes the URL for s unless it equals the last one written.
func (z *Synchronizer) Sync(s Snapshot) {
	target := URL(z.path, s)
	if target == z.last {
		return
	}
	z.last = target

	if z.nav == nil {
		return
	}
	if err := z.nav.Replace(target); err != nil {
		slog.Debug("location update failed", "target", target, "error", err)
	}
}

// Current returns the last URL written.
func (z *Synchronizer) Current() string {
	return z.last
}
