// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the routing table, middleware chains and the
// health endpoint.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"hislight/data"
	"hislight/internal/catalog"
	"hislight/internal/handlers"
	"hislight/internal/middleware"
	"hislight/internal/render"
)

func newTestRouter(t *testing.T, dev bool, limit int) chi.Router {
	t.Helper()

	store, err := catalog.Load(data.FS)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	holder := catalog.NewHolder(store)

	renderer, err := render.New(dev, render.Site{Name: "HisLight"})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	public, err := handlers.NewPublic(holder, renderer, nil, nil)
	if err != nil {
		t.Fatalf("NewPublic: %v", err)
	}

	limiter := middleware.NewRateLimiter(limit, time.Minute)
	t.Cleanup(limiter.Stop)

	r, err := New(public, handlers.NewAPI(holder, nil), limiter, Options{
		Dev:         dev,
		CORSOrigins: []string{"https://hislight.example"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func get(r http.Handler, target string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealthHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	healthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func TestRoutes(t *testing.T) {
	r := newTestRouter(t, false, 100)

	tests := []struct {
		target string
		status int
	}{
		{"/", http.StatusOK},
		{"/health", http.StatusOK},
		{"/housing", http.StatusOK},
		{"/life?page=2", http.StatusOK},
		{"/housing?page=1", http.StatusFound},
		{"/housing/results?page=2", http.StatusOK},
		{"/garden", http.StatusNotFound},
		{"/static/css/site.css", http.StatusOK},
		{"/static/js/site.js", http.StatusOK},
		{"/static/missing.css", http.StatusNotFound},
		{"/api/categories", http.StatusOK},
		{"/api/categories/life/resources", http.StatusOK},
		{"/api/categories/garden/resources", http.StatusNotFound},
		{"/api/unknown", http.StatusNotFound},
		{"/a/b/c", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(r, tt.target)
			if rec.Code != tt.status {
				t.Errorf("status: got %d, want %d", rec.Code, tt.status)
			}
		})
	}
}

func TestGlobalMiddleware(t *testing.T) {
	r := newTestRouter(t, false, 100)
	rec := get(r, "/housing")

	if rec.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("request id header should be set")
	}
	if rec.Header().Get("Content-Security-Policy") == "" {
		t.Error("security headers should be set")
	}
}

func TestComponentsDemo(t *testing.T) {
	t.Run("development", func(t *testing.T) {
		rec := get(newTestRouter(t, true, 100), "/components-demo")
		if rec.Code != http.StatusOK {
			t.Errorf("status: got %d, want 200", rec.Code)
		}
	})

	t.Run("production", func(t *testing.T) {
		rec := get(newTestRouter(t, false, 100), "/components-demo")
		if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/" {
			t.Errorf("got %d to %q, want 302 to /", rec.Code, rec.Header().Get("Location"))
		}
	})
}

func TestAPICORS(t *testing.T) {
	r := newTestRouter(t, false, 100)

	rec := get(r, "/api/categories", "Origin", "https://hislight.example")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://hislight.example" {
		t.Errorf("allowed origin: got %q", got)
	}

	rec = get(r, "/api/categories", "Origin", "https://evil.example")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("foreign origin should not be allowed, got %q", got)
	}
}

func TestAPIRateLimit(t *testing.T) {
	r := newTestRouter(t, false, 2)

	for i := range 2 {
		if rec := get(r, "/api/categories"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: got %d, want 200", i+1, rec.Code)
		}
	}

	rec := get(r, "/api/categories")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status: got %d, want 429", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"RATE_LIMITED"`) {
		t.Errorf("body: got %q", rec.Body.String())
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("Retry-After should be set")
	}

	// Pages are not rate-limited.
	if rec := get(r, "/housing"); rec.Code != http.StatusOK {
		t.Errorf("page status: got %d, want 200", rec.Code)
	}
}
