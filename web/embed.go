// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package web provides the embedded static assets served at /static/ and
// the editorial Markdown rendered on the landing page.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree (site.css, site.js).
//
//go:embed all:static
var StaticFS embed.FS

// ContentFS embeds the Markdown under web/content/.
//
//go:embed content/*.md
var ContentFS embed.FS

// AboutFile is the landing page's about section, split on level-2 headings.
const AboutFile = "content/about.md"
