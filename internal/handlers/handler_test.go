// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Everything runs against the embedded catalog without a page cache.
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"hislight/data"
	"hislight/internal/catalog"
	"hislight/internal/filter"
	"hislight/internal/render"
)

type testEnv struct {
	Holder *catalog.Holder
	Public *Public
	API    *API
	Router chi.Router
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := catalog.Load(data.FS)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	holder := catalog.NewHolder(store)

	renderer, err := render.New(true, render.Site{Name: "HisLight", KakaoURL: "http://pf.kakao.com/_test"})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	memo, err := filter.NewMemo(32)
	if err != nil {
		t.Fatalf("NewMemo: %v", err)
	}

	public, err := NewPublic(holder, renderer, memo, nil)
	if err != nil {
		t.Fatalf("NewPublic: %v", err)
	}
	api := NewAPI(holder, memo)

	r := chi.NewRouter()
	r.Get("/", public.Home)
	r.Get("/components-demo", public.Demo)
	r.Get("/api/categories", api.Categories)
	r.Get("/api/categories/{id}/resources", api.CategoryResources)
	r.Get("/{category}", public.Listing)
	r.Get("/{category}/results", public.Results)
	r.NotFound(public.NotFound)

	return &testEnv{Holder: holder, Public: public, API: api, Router: r}
}

// do sends a GET through the test router. headers are name/value pairs.
func (e *testEnv) do(t *testing.T, target string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.Router.ServeHTTP(rec, req)
	return rec
}

// decodeEnvelope parses an API response body.
func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) (T, *apiError) {
	t.Helper()
	var body struct {
		Data  T         `json:"data"`
		Error *apiError `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return body.Data, body.Error
}
