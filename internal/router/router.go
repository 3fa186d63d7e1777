// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// HisLight server: the HTML pages, the HTMX fragments, the JSON API and
// the embedded static assets.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"hislight/internal/handlers"
	"hislight/internal/middleware"
	"hislight/web"
)

// Options carries the environment-dependent parts of the routing setup.
type Options struct {
	Dev         bool     // mounts /components-demo when true
	CORSOrigins []string // allowed origins for /api
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. limiter guards the JSON API and may be nil.
func New(public *handlers.Public, api *handlers.API, limiter *middleware.RateLimiter, opts Options) (chi.Router, error) {
	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", healthHandler)
	r.Handle("/static/*", http.StripPrefix("/static/", staticHandler(static)))

	// JSON API: CORS-enabled, rate-limited, read-only.
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
			ExposedHeaders: []string{middleware.RequestIDHeader, "Retry-After"},
			MaxAge:         300,
		}))
		if limiter != nil {
			r.Use(limiter.Middleware(api.RateLimited))
		}

		r.Get("/categories", api.Categories)
		r.Get("/categories/{id}/resources", api.CategoryResources)
		r.NotFound(api.NotFound)
	})

	r.With(middleware.DevOnly(opts.Dev)).Get("/components-demo", public.Demo)

	// Public pages.
	r.Get("/", public.Home)
	r.Get("/{category}", public.Listing)
	r.Get("/{category}/results", public.Results)
	r.NotFound(public.NotFound)

	return r, nil
}

// staticHandler serves the embedded assets with a short cache lifetime.
func staticHandler(fsys fs.FS) http.Handler {
	files := http.FileServer(http.FS(fsys))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
