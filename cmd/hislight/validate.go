// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hislight/internal/catalog"
)

func newValidateCmd() *cobra.Command {
	var (
		dir    string
		strict bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog for errors and warnings",
		Long: `Validate loads the catalog, prints every issue it finds and exits
non-zero when the catalog has errors, or warnings in strict mode.
Without --dir the embedded catalog is checked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := loadCatalog(dir)
			if err != nil {
				return err
			}
			report := catalog.Validate(store)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
			} else {
				for _, issue := range report.Issues {
					fmt.Fprintln(out, issue.String())
				}
				categories, subcategories, resources := store.Len()
				fmt.Fprintf(out, "%d categories, %d subcategories, %d resources: %d errors, %d warnings\n",
					categories, subcategories, resources, report.Errors(), report.Warnings())
			}

			return report.Err(strict)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", os.Getenv("CATALOG_DIR"), "catalog directory (default: embedded catalog)")
	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}
