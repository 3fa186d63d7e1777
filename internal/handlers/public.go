// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers serves the HisLight pages, the HTMX listing fragments and
// the JSON API.
package handlers

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hislight/internal/cache"
	"hislight/internal/catalog"
	"hislight/internal/filter"
	"hislight/internal/listing"
	"hislight/internal/markdown"
	"hislight/internal/models"
	"hislight/internal/render"
	"hislight/internal/urlstate"
	"hislight/internal/viewport"
	"hislight/web"
)

// Fragment event parameters understood by Results, on top of the
// urlstate parameters.
const (
	eventReset = "reset"
	eventGroup = "group"
)

// HTMX headers.
const (
	hxCurrentURL = "HX-Current-URL"
	hxReplaceURL = "HX-Replace-Url"
	hxTrigger    = "HX-Trigger"

	scrollTopEvent = "scroll-top"
)

// Public groups the HTML handlers. Rendered pages go through the L2 Valkey
// page cache; filter results go through the in-process memo.
type Public struct {
	holder    *catalog.Holder
	renderer  *render.Renderer
	memo      *filter.Memo
	pageCache *cache.PageCache
	about     []markdown.Section
}

// NewPublic creates the Public handler group. memo and pageCache may be nil.
func NewPublic(holder *catalog.Holder, renderer *render.Renderer, memo *filter.Memo, pageCache *cache.PageCache) (*Public, error) {
	src, err := fs.ReadFile(web.ContentFS, web.AboutFile)
	if err != nil {
		return nil, fmt.Errorf("read about: %w", err)
	}
	about, err := markdown.Sections(src)
	if err != nil {
		return nil, fmt.Errorf("render about: %w", err)
	}

	return &Public{
		holder:    holder,
		renderer:  renderer,
		memo:      memo,
		pageCache: pageCache,
		about:     about,
	}, nil
}

// categoryCard is one entry of the landing page category grid.
type categoryCard struct {
	models.Category
	Count int
	Blurb template.HTML
}

// Home renders the landing page: hero, about sections and category cards.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	if render.IsHTMX(r) {
		p.renderer.Page(w, r, "home", http.StatusOK, p.homeData(p.holder.Get()))
		return
	}

	ctx := r.Context()
	store := p.holder.Get()
	key := cache.HomeKey(store.Version())

	if cached, ok := p.pageCache.Get(ctx, key); ok {
		writeHTML(w, http.StatusOK, cached)
		return
	}

	body, err := p.renderer.Render("home", "", p.homeData(store))
	if err != nil {
		slog.Error("render home failed", "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, key, body)
	writeHTML(w, http.StatusOK, body)
}

func (p *Public) homeData(store *catalog.Store) *render.PageData {
	cats := store.Categories()
	cards := make([]categoryCard, 0, len(cats))
	for _, c := range cats {
		cards = append(cards, categoryCard{
			Category: c,
			Count:    store.ResourceCount(c.ID),
			Blurb:    blurb(c),
		})
	}

	return &render.PageData{
		Section: "home",
		Data: map[string]any{
			"About":      p.about,
			"Categories": cards,
		},
	}
}

// Listing renders the full listing page of a category. A request whose
// query is not in canonical form is redirected to the canonical URL.
func (p *Public) Listing(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "category")
	store := p.holder.Get()
	groupSize := viewport.GroupSizeFromRequest(r)
	viewport.AdvertiseHints(w)

	nav := &redirectNavigator{}
	initial := urlstate.Parse(r.URL.Query())
	initial.Search = normalizeSearch(initial.Search)

	view := listing.New(store, categoryID, initial, listing.Options{
		GroupSize: groupSize,
		Navigator: nav,
		Memo:      p.memo,
	})
	if !view.Found() {
		p.categoryNotFound(w, r, categoryID)
		return
	}

	if nav.target != requestTarget(r) {
		http.Redirect(w, r, nav.target, http.StatusFound)
		return
	}

	if render.IsHTMX(r) {
		p.renderer.Page(w, r, "listing", http.StatusOK, p.listingData(view, false))
		return
	}

	ctx := r.Context()
	key := cache.ListingKey(store.Version(), view.URL(), groupSize, false)
	if cached, ok := p.pageCache.Get(ctx, key); ok {
		writeHTML(w, http.StatusOK, cached)
		return
	}

	body, err := p.renderer.Render("listing", "", p.listingData(view, false))
	if err != nil {
		slog.Error("render listing failed", "category", categoryID, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, key, body)
	writeHTML(w, http.StatusOK, body)
}

// Results answers an HTMX interaction on a listing. The starting state is
// read from the HX-Current-URL header; the query carries at most one event
// of each kind, applied in the order reset, subcategory, search, group,
// page. The new canonical URL is returned in HX-Replace-Url.
func (p *Public) Results(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "category")
	store := p.holder.Get()
	groupSize := viewport.GroupSizeFromRequest(r)
	viewport.AdvertiseHints(w)

	base := currentSnapshot(r)
	view := listing.New(store, categoryID, base, listing.Options{
		GroupSize: groupSize,
		Navigator: hxNavigator{w: w},
		OnScrollTop: func(int) {
			w.Header().Set(hxTrigger, scrollTopEvent)
		},
		Memo: p.memo,
	})
	if !view.Found() {
		p.categoryNotFound(w, r, categoryID)
		return
	}

	reset := applyEvents(view, r.URL.Query())

	data := p.listingData(view, reset)
	if reset {
		// The out-of-band search input depends on the event, not only on
		// the resulting state.
		p.renderer.Partial(w, r, "listing", "results", data)
		return
	}

	ctx := r.Context()
	key := cache.ListingKey(store.Version(), view.URL(), groupSize, true)
	if cached, ok := p.pageCache.Get(ctx, key); ok {
		writeHTML(w, http.StatusOK, cached)
		return
	}

	body, err := p.renderer.Render("listing", "results", data)
	if err != nil {
		slog.Error("render results failed", "category", categoryID, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, key, body)
	writeHTML(w, http.StatusOK, body)
}

// applyEvents replays the fragment events in q on view and reports whether
// a reset was requested.
func applyEvents(view *listing.View, q url.Values) bool {
	reset := q.Has(eventReset)
	if reset {
		view.ResetFilters()
	}
	if q.Has(urlstate.ParamSubcategory) {
		view.SetSubcategory(q.Get(urlstate.ParamSubcategory))
	}
	if q.Has(urlstate.ParamSearch) {
		view.SetSearchQuery(normalizeSearch(q.Get(urlstate.ParamSearch)))
	}
	switch q.Get(eventGroup) {
	case "prev":
		view.GoToPrevGroup()
	case "next":
		view.GoToNextGroup()
	}
	if raw := q.Get(urlstate.ParamPage); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			view.GoToPage(n)
		}
	}
	return reset
}

// Demo renders the component showcase. The router only mounts it in
// development.
func (p *Public) Demo(w http.ResponseWriter, r *http.Request) {
	store := p.holder.Get()
	cats := store.Categories()
	if len(cats) == 0 {
		p.NotFound(w, r)
		return
	}

	view := listing.New(store, cats[0].ID, urlstate.Snapshot{Page: 1}, listing.Options{
		GroupSize: viewport.GroupSizeFromRequest(r),
		Memo:      p.memo,
	})
	data := p.listingData(view, false)
	data.Title = "컴포넌트 데모"
	data.Section = "demo"
	if st := view.State(); len(st.Resources) > 0 {
		data.Data["Sample"] = st.Resources[0]
	}

	p.renderer.Page(w, r, "demo", http.StatusOK, data)
}

// NotFound renders the generic 404 page.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	p.renderer.Page(w, r, "not_found", http.StatusNotFound, &render.PageData{
		Title: "페이지를 찾을 수 없습니다",
		Data:  map[string]any{},
	})
}

func (p *Public) categoryNotFound(w http.ResponseWriter, r *http.Request, categoryID string) {
	slog.Debug("unknown category", "category", categoryID)
	p.renderer.Page(w, r, "not_found", http.StatusNotFound, &render.PageData{
		Title: "카테고리를 찾을 수 없습니다",
		Data:  map[string]any{"Message": "카테고리를 찾을 수 없습니다"},
	})
}

func (p *Public) listingData(view *listing.View, resetSearch bool) *render.PageData {
	st := view.State()
	return &render.PageData{
		Title:   st.Category.Name,
		Section: st.Category.ID,
		Data: map[string]any{
			"State":       st,
			"ResultsPath": "/" + st.Category.ID + "/results",
			"Blurb":       blurb(st.Category),
			"ResetSearch": resetSearch,
		},
	}
}

// blurb renders a category description as Markdown. Failures fall back to
// the escaped plain text.
func blurb(c models.Category) template.HTML {
	if c.Description == "" {
		return ""
	}
	out, err := markdown.ToHTML(c.Description)
	if err != nil {
		slog.Warn("category description markdown failed", "category", c.ID, "error", err)
		return template.HTML("<p>" + template.HTMLEscapeString(c.Description) + "</p>")
	}
	return out
}

// currentSnapshot reads the listing state the browser is showing from the
// HX-Current-URL header. A missing or unparsable header yields the default
// state.
func currentSnapshot(r *http.Request) urlstate.Snapshot {
	raw := r.Header.Get(hxCurrentURL)
	if raw == "" {
		return urlstate.Snapshot{Page: 1}
	}
	u, err := url.Parse(raw)
	if err != nil {
		slog.Debug("bad HX-Current-URL", "value", raw, "error", err)
		return urlstate.Snapshot{Page: 1}
	}
	s := urlstate.Parse(u.Query())
	s.Search = normalizeSearch(s.Search)
	return s
}

// requestTarget returns the path and raw query of r as sent by the client.
func requestTarget(r *http.Request) string {
	if r.URL.RawQuery == "" {
		return r.URL.Path
	}
	return r.URL.Path + "?" + r.URL.RawQuery
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}
