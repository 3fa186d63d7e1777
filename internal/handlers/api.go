// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hislight/internal/catalog"
	"hislight/internal/filter"
	"hislight/internal/listing"
	"hislight/internal/models"
	"hislight/internal/urlstate"
)

// API error codes.
const (
	codeNotFound     = "NOT_FOUND"
	codeInvalidQuery = "INVALID_QUERY"
	codeRateLimited  = "RATE_LIMITED"
)

// envelope is the shape of every API response.
type envelope struct {
	Data  any       `json:"data"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// API serves the read-only JSON interface over the catalog.
type API struct {
	holder *catalog.Holder
	memo   *filter.Memo
}

// NewAPI creates the API handler group. memo may be nil.
func NewAPI(holder *catalog.Holder, memo *filter.Memo) *API {
	return &API{holder: holder, memo: memo}
}

// categorySummary is a category with its subcategories and resource count.
type categorySummary struct {
	models.Category
	ResourceCount int                  `json:"resourceCount"`
	Subcategories []models.Subcategory `json:"subcategories"`
}

// Categories lists every category with its resource count.
func (a *API) Categories(w http.ResponseWriter, r *http.Request) {
	store := a.holder.Get()
	cats := store.Categories()
	subs := store.Subcategories()

	out := make([]categorySummary, 0, len(cats))
	for _, c := range cats {
		cs := categorySummary{
			Category:      c,
			ResourceCount: store.ResourceCount(c.ID),
			Subcategories: []models.Subcategory{},
		}
		for _, sc := range subs {
			if sc.CategoryID == c.ID {
				cs.Subcategories = append(cs.Subcategories, sc)
			}
		}
		out = append(out, cs)
	}

	writeJSON(w, http.StatusOK, envelope{Data: out})
}

// CategoryResources returns one page of a category listing. The query takes
// search, subcategory, page and group_size.
func (a *API) CategoryResources(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")

	q, problems := parseResourceQuery(r.URL.Query())
	if len(problems) > 0 {
		writeError(w, http.StatusBadRequest, codeInvalidQuery, "invalid query parameters", problems)
		return
	}

	view := listing.New(a.holder.Get(), categoryID, urlstate.Snapshot{
		Search:      q.Search,
		Subcategory: q.Subcategory,
		Page:        q.Page,
	}, listing.Options{
		GroupSize: q.GroupSize,
		Memo:      a.memo,
	})
	if !view.Found() {
		writeError(w, http.StatusNotFound, codeNotFound, "category not found", map[string]string{"id": categoryID})
		return
	}

	writeJSON(w, http.StatusOK, envelope{Data: view.State()})
}

// RateLimited answers requests rejected by the API rate limiter.
func (a *API) RateLimited(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusTooManyRequests, codeRateLimited, "too many requests", nil)
}

// NotFound answers unknown API routes.
func (a *API) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, codeNotFound, "no such endpoint", map[string]string{"path": r.URL.Path})
}

func writeError(w http.ResponseWriter, status int, code, msg string, details any) {
	writeJSON(w, status, envelope{Error: &apiError{Code: code, Message: msg, Details: details}})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Debug("write json failed", "error", err)
	}
}
