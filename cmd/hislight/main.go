// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the HisLight server. It wires the
// catalog, caches and HTTP router together and exposes them through a
// small cobra CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	// Cancelled on SIGINT or SIGTERM; serve drains connections when it fires.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Running the binary without a
// subcommand starts the server.
func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:   "hislight",
		Short: "HisLight resource hub server",
		Long: `HisLight serves a curated catalog of housing and living resources
with search, subcategory filters and shareable, paginated listings.`,
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	root.AddCommand(serve, newValidateCmd())
	return root
}
