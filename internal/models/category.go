// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category is a top-level section of the resource hub (e.g. housing, life).
type Category struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// Subcategory is a second-level grouping that belongs to exactly one Category.
type Subcategory struct {
	ID          string `json:"id" validate:"required"`
	CategoryID  string `json:"categoryId" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}
