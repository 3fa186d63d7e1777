// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import "net/http"

// hxNavigator replaces the browser location through the HX-Replace-Url
// response header. Only the last write before the body is sent counts.
type hxNavigator struct {
	w http.ResponseWriter
}

func (n hxNavigator) Replace(target string) error {
	n.w.Header().Set(hxReplaceURL, target)
	return nil
}

// redirectNavigator remembers the canonical URL of a full-page request so
// the handler can redirect non-canonical requests.
type redirectNavigator struct {
	target string
}

func (n *redirectNavigator) Replace(target string) error {
	n.target = target
	return nil
}
