// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"hislight/data"
	"hislight/internal/cache"
	"hislight/internal/catalog"
	"hislight/internal/config"
	"hislight/internal/filter"
	"hislight/internal/handlers"
	"hislight/internal/middleware"
	"hislight/internal/render"
	"hislight/internal/router"
)

const (
	shutdownTimeout   = 30 * time.Second
	invalidateTimeout = 10 * time.Second
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

// setupLogger installs the default logger: text in development, JSON
// otherwise.
func setupLogger(dev bool) {
	var h slog.Handler
	if dev {
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(h))
}

func serve(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return err
	}
	setupLogger(cfg.IsDev())

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"catalog_dir", cfg.CatalogDir,
		"cache", cfg.CacheEnabled(),
	)

	store, err := loadCatalog(cfg.CatalogDir)
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		return err
	}
	report := catalog.Validate(store)
	for _, issue := range report.Issues {
		slog.Warn("catalog issue", "issue", issue.String())
	}
	if err := report.Err(cfg.CatalogStrict); err != nil {
		slog.Error("catalog rejected", "error", err, "strict", cfg.CatalogStrict)
		return err
	}
	categories, subcategories, resources := store.Len()
	slog.Info("catalog loaded",
		"version", store.Version(),
		"categories", categories,
		"subcategories", subcategories,
		"resources", resources,
	)

	holder := catalog.NewHolder(store)

	memo, err := filter.NewMemo(cfg.FilterCacheSize)
	if err != nil {
		return fmt.Errorf("filter memo: %w", err)
	}

	// The page cache is optional: without Valkey every page renders fresh.
	var pageCache *cache.PageCache
	if cfg.CacheEnabled() {
		client, err := cache.ConnectValkey(ctx, cfg.ValkeyAddr(), cfg.ValkeyPassword)
		if err != nil {
			slog.Warn("valkey unavailable, page cache disabled", "error", err)
		} else {
			defer client.Close()
			pageCache = cache.NewPageCache(client, cfg.PageCacheTTL)
		}
	}

	holder.OnReload(func(s *catalog.Store) {
		memo.Purge()
		ictx, cancel := context.WithTimeout(context.Background(), invalidateTimeout)
		defer cancel()
		pageCache.InvalidateAll(ictx)
		slog.Info("catalog swapped", "version", s.Version())
	})

	if cfg.CatalogWatch {
		w, err := catalog.NewWatcher(cfg.CatalogDir, holder, cfg.CatalogStrict, 0)
		if err != nil {
			return fmt.Errorf("catalog watcher: %w", err)
		}
		if err := w.Start(ctx); err != nil {
			w.Stop()
			return fmt.Errorf("catalog watcher: %w", err)
		}
		defer w.Stop()
	}

	renderer, err := render.New(cfg.IsDev(), render.Site{
		Name:             cfg.SiteName,
		KakaoURL:         cfg.KakaoChannelURL(),
		ContactEmail:     cfg.ContactEmail,
		UnicornProjectID: cfg.UnicornProjectID,
	})
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		return err
	}

	public, err := handlers.NewPublic(holder, renderer, memo, pageCache)
	if err != nil {
		return fmt.Errorf("public handlers: %w", err)
	}
	api := handlers.NewAPI(holder, memo)

	limiter := middleware.NewRateLimiter(cfg.APIRateLimit, time.Minute)
	defer limiter.Stop()

	r, err := router.New(public, api, limiter, router.Options{
		Dev:         cfg.IsDev(),
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		return fmt.Errorf("router: %w", err)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		slog.Error("server failed to start", "error", err)
		return err
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		return err
	}

	slog.Info("server stopped gracefully")
	return nil
}

// loadCatalog reads the catalog from dir, or from the embedded data set
// when dir is empty.
func loadCatalog(dir string) (*catalog.Store, error) {
	if dir == "" {
		return catalog.Load(data.FS)
	}
	return catalog.LoadDir(dir)
}
