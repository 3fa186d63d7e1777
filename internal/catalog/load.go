// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"hislight/internal/models"
)

// File names expected at the root of a catalog filesystem.
const (
	CategoriesFile    = "categories.json"
	SubcategoriesFile = "subcategories.json"
	ResourcesFile     = "resources.json"
)

// Load reads the three catalog files from fsys and builds a Store.
func Load(fsys fs.FS) (*Store, error) {
	var categories []models.Category
	if err := readJSON(fsys, CategoriesFile, &categories); err != nil {
		return nil, err
	}

	var subcategories []models.Subcategory
	if err := readJSON(fsys, SubcategoriesFile, &subcategories); err != nil {
		return nil, err
	}

	var resources []models.Resource
	if err := readJSON(fsys, ResourcesFile, &resources); err != nil {
		return nil, err
	}

	s, err := New(categories, subcategories, resources)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return s, nil
}

// LoadDir reads the catalog from a directory on disk.
func LoadDir(dir string) (*Store, error) {
	return Load(os.DirFS(dir))
}

// readJSON decodes a JSON array file from fsys into v.
func readJSON(fsys fs.FS, name string, v any) error {
	raw, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrMissingFile, name)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
