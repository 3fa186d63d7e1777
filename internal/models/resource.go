// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "net/url"

// Resource is a single externally linked item listed under a Subcategory.
type Resource struct {
	ID            string `json:"id" validate:"required"`
	SubcategoryID string `json:"subcategoryId" validate:"required"`
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description"`
	URL           string `json:"url" validate:"required,url"`
}

// Hostname returns the host part of the resource URL for display. When the
// URL is not an absolute URL, the raw string is returned unchanged.
func (r Resource) Hostname() string {
	u, err := url.Parse(r.URL)
	if err != nil || u.Hostname() == "" {
		return r.URL
	}
	return u.Hostname()
}
