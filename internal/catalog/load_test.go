// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

const (
	testCategories    = `[{"id":"housing","name":"주거","description":"집"}]`
	testSubcategories = `[{"id":"loan","categoryId":"housing","name":"주택자금","description":""}]`
	testResources     = `[{"id":"r1","subcategoryId":"loan","title":"주택연금","description":"연금","url":"https://www.hf.go.kr"}]`
)

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		CategoriesFile:    {Data: []byte(testCategories)},
		SubcategoriesFile: {Data: []byte(testSubcategories)},
		ResourcesFile:     {Data: []byte(testResources)},
	}

	s, err := Load(fsys)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	sc, ok := s.Subcategory("loan")
	if !ok {
		t.Fatal("subcategory loan not loaded")
	}
	if sc.CategoryID != "housing" {
		t.Errorf("categoryId json mapping: got %q", sc.CategoryID)
	}

	res := s.Resources()
	if len(res) != 1 || res[0].SubcategoryID != "loan" || res[0].URL != "https://www.hf.go.kr" {
		t.Errorf("resources: got %+v", res)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	fsys := fstest.MapFS{
		CategoriesFile: {Data: []byte(testCategories)},
		ResourcesFile:  {Data: []byte(testResources)},
	}

	_, err := Load(fsys)
	if !errors.Is(err, ErrMissingFile) {
		t.Fatalf("err = %v, want ErrMissingFile", err)
	}
	if !strings.Contains(err.Error(), SubcategoriesFile) {
		t.Errorf("error should name the missing file, got: %v", err)
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	fsys := fstest.MapFS{
		CategoriesFile:    {Data: []byte(testCategories)},
		SubcategoriesFile: {Data: []byte(testSubcategories)},
		ResourcesFile:     {Data: []byte(`[{"id": "r1",`)},
	}

	_, err := Load(fsys)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !strings.Contains(err.Error(), "decode "+ResourcesFile) {
		t.Errorf("error should mention the file being decoded, got: %v", err)
	}
}

func TestLoad_DuplicateWrapped(t *testing.T) {
	fsys := fstest.MapFS{
		CategoriesFile:    {Data: []byte(`[{"id":"a","name":"A"},{"id":"a","name":"B"}]`)},
		SubcategoriesFile: {Data: []byte(`[]`)},
		ResourcesFile:     {Data: []byte(`[]`)},
	}

	_, err := Load(fsys)
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("err = %v, want ErrDuplicateID", err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, testCategories, testSubcategories, testResources)

	s, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if got := s.ResourceCount("housing"); got != 1 {
		t.Errorf("ResourceCount(housing) = %d, want 1", got)
	}
}

// writeCatalog writes the three catalog files into dir.
func writeCatalog(t *testing.T, dir, categories, subcategories, resources string) {
	t.Helper()
	files := map[string]string{
		CategoriesFile:    categories,
		SubcategoriesFile: subcategories,
		ResourcesFile:     resources,
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}
