// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package viewport turns the client's reported viewport width into the
// pagination band width.
package viewport

import (
	"net/http"
	"strconv"
	"strings"
)

// Breakpoints in CSS pixels.
const (
	SmallMobileMax  = 640
	MediumMobileMax = 768
	TabletMax       = 1024
)

// Sources of the viewport width, in lookup order.
const (
	HeaderViewportWidth       = "Sec-CH-Viewport-Width"
	HeaderLegacyViewportWidth = "Viewport-Width"
	CookieName                = "vw"
)

// GroupSize maps a viewport width to the number of page links shown at
// once. A non-positive width means unknown and is treated as desktop.
func GroupSize(width int) int {
	switch {
	case width <= 0:
		return 10
	case width <= SmallMobileMax:
		return 3
	case width <= MediumMobileMax:
		return 5
	case width <= TabletMax:
		return 7
	default:
		return 10
	}
}

// FromRequest returns the viewport width the client reported, or 0 when it
// did not report one.
func FromRequest(r *http.Request) int {
	for _, h := range []string{HeaderViewportWidth, HeaderLegacyViewportWidth} {
		if w := parseWidth(r.Header.Get(h)); w > 0 {
			return w
		}
	}
	if c, err := r.Cookie(CookieName); err == nil {
		return parseWidth(c.Value)
	}
	return 0
}

// GroupSizeFromRequest is GroupSize(FromRequest(r)).
func GroupSizeFromRequest(r *http.Request) int {
	return GroupSize(FromRequest(r))
}

// AdvertiseHints asks supporting browsers to send the viewport width on
// subsequent requests.
func AdvertiseHints(w http.ResponseWriter) {
	w.Header().Set("Accept-CH", HeaderViewportWidth+", "+HeaderLegacyViewportWidth)
	w.Header().Add("Vary", HeaderViewportWidth)
}

func parseWidth(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	// Client hints may carry a fractional value.
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
