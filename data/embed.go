// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package data embeds the bundled resource catalog: categories.json,
// subcategories.json and resources.json.
package data

import "embed"

// FS holds the catalog JSON files at its root.
//
//go:embed *.json
var FS embed.FS
