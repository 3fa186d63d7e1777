// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown converts the site's editorial Markdown (the about
// section and category blurbs) into HTML using goldmark.
package markdown

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// md is the configured goldmark instance, reused across calls. Raw HTML in
// the source is escaped.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
		highlighting.NewHighlighting(
			highlighting.WithStyle("monokai"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// ToHTML converts Markdown source into HTML.
func ToHTML(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Section is one level-2 block of a document: the heading text and the
// rendered HTML that follows it up to the next level-2 heading.
type Section struct {
	Title string
	Body  template.HTML
}

// Sections splits a document on its level-2 headings. Content before the
// first such heading becomes a section with an empty title.
func Sections(source []byte) ([]Section, error) {
	doc := md.Parser().Parse(text.NewReader(source))

	var (
		sections []Section
		title    string
		buf      bytes.Buffer
		open     bool
	)
	flush := func() {
		if open {
			sections = append(sections, Section{Title: title, Body: template.HTML(buf.String())})
		}
		buf.Reset()
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok && h.Level == 2 {
			flush()
			title = headingText(h, source)
			open = true
			continue
		}
		if err := md.Renderer().Render(&buf, source, n); err != nil {
			return nil, fmt.Errorf("render section %q: %w", title, err)
		}
		open = true
	}
	flush()

	return sections, nil
}

// headingText concatenates the text segments of a heading.
func headingText(h *ast.Heading, source []byte) string {
	var b bytes.Buffer
	_ = ast.Walk(h, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
