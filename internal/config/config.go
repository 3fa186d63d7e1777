// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Site chrome
	SiteName         string
	KakaoChannelID   string
	ContactEmail     string
	UnicornProjectID string

	// Catalog source. Empty CatalogDir means the embedded data.
	CatalogDir    string
	CatalogWatch  bool
	CatalogStrict bool

	// Valkey (Redis-compatible cache). Empty ValkeyHost disables the page cache.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
	PageCacheTTL   time.Duration

	FilterCacheSize int

	// JSON API
	APIRateLimit int // requests per minute per client IP
	CORSOrigins  []string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. A .env file in the working directory
// is read first; variables already set in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		SiteName:         envOrDefault("SITE_NAME", "HisLight"),
		KakaoChannelID:   envOrDefault("KAKAO_CHANNEL_ID", "_xoWKpn"),
		ContactEmail:     envOrDefault("CONTACT_EMAIL", "kls24.hislight@gmail.com"),
		UnicornProjectID: envOrDefault("UNICORN_PROJECT_ID", "KJW2rH7O15F5WUxxdd5w"),

		CatalogDir: os.Getenv("CATALOG_DIR"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		CORSOrigins: splitList(envOrDefault("CORS_ORIGINS", "*")),
	}

	var errs []error
	var err error

	if cfg.CatalogWatch, err = envBool("CATALOG_WATCH", false); err != nil {
		errs = append(errs, err)
	}
	if cfg.CatalogStrict, err = envBool("CATALOG_STRICT", false); err != nil {
		errs = append(errs, err)
	}
	if cfg.PageCacheTTL, err = envDuration("PAGE_CACHE_TTL", 5*time.Minute); err != nil {
		errs = append(errs, err)
	}
	if cfg.FilterCacheSize, err = envInt("FILTER_CACHE_SIZE", 256); err != nil {
		errs = append(errs, err)
	}
	if cfg.APIRateLimit, err = envInt("API_RATE_LIMIT", 120); err != nil {
		errs = append(errs, err)
	} else if cfg.APIRateLimit <= 0 {
		errs = append(errs, fmt.Errorf("API_RATE_LIMIT must be positive, got %d", cfg.APIRateLimit))
	}

	if cfg.CatalogWatch && cfg.CatalogDir == "" {
		errs = append(errs, fmt.Errorf("CATALOG_WATCH requires CATALOG_DIR"))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("load config: %w", errors.Join(errs...))
	}
	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// ValkeyAddr returns the Valkey address (host:port).
func (c *Config) ValkeyAddr() string {
	return fmt.Sprintf("%s:%s", c.ValkeyHost, c.ValkeyPort)
}

// CacheEnabled reports whether the Valkey page cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyHost != ""
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// KakaoChannelURL returns the public KakaoTalk channel link.
func (c *Config) KakaoChannelURL() string {
	return "http://pf.kakao.com/" + c.KakaoChannelID
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}

// splitList splits a comma-separated value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
