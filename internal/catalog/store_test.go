// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"hislight/data"
	"hislight/internal/models"
)

// testStore builds a small catalog with one orphaned resource.
func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(
		[]models.Category{
			{ID: "housing", Name: "주거"},
			{ID: "life", Name: "생활"},
		},
		[]models.Subcategory{
			{ID: "rental", CategoryID: "housing", Name: "임대주택"},
			{ID: "loan", CategoryID: "housing", Name: "주택자금"},
			{ID: "welfare", CategoryID: "life", Name: "복지"},
		},
		[]models.Resource{
			{ID: "r1", SubcategoryID: "rental", Title: "마이홈", URL: "https://www.myhome.go.kr"},
			{ID: "r2", SubcategoryID: "loan", Title: "주택연금", URL: "https://www.hf.go.kr"},
			{ID: "r3", SubcategoryID: "welfare", Title: "복지로", URL: "https://www.bokjiro.go.kr"},
			{ID: "r4", SubcategoryID: "gone", Title: "Orphan", URL: "https://example.com"},
		},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNew_Lookups(t *testing.T) {
	s := testStore(t)

	c, ok := s.Category("life")
	if !ok || c.Name != "생활" {
		t.Errorf("Category(life) = %+v, %v", c, ok)
	}
	if _, ok := s.Category("missing"); ok {
		t.Error("Category(missing) should not be found")
	}

	sc, ok := s.Subcategory("loan")
	if !ok || sc.CategoryID != "housing" {
		t.Errorf("Subcategory(loan) = %+v, %v", sc, ok)
	}

	cats, subs, res := s.Len()
	if cats != 2 || subs != 3 || res != 4 {
		t.Errorf("Len() = %d, %d, %d; want 2, 3, 4", cats, subs, res)
	}
}

func TestNew_PreservesOrder(t *testing.T) {
	s := testStore(t)

	var ids []string
	for _, sc := range s.Subcategories() {
		ids = append(ids, sc.ID)
	}
	if diff := cmp.Diff([]string{"rental", "loan", "welfare"}, ids); diff != "" {
		t.Errorf("subcategory order mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_ResourceCountExcludesOrphans(t *testing.T) {
	s := testStore(t)

	tests := []struct {
		category string
		want     int
	}{
		{"housing", 2},
		{"life", 1},
		{"unknown", 0},
	}
	for _, tt := range tests {
		if got := s.ResourceCount(tt.category); got != tt.want {
			t.Errorf("ResourceCount(%q) = %d, want %d", tt.category, got, tt.want)
		}
	}
}

func TestNew_DuplicateIDs(t *testing.T) {
	tests := []struct {
		name string
		cats []models.Category
		subs []models.Subcategory
		res  []models.Resource
	}{
		{
			name: "categories",
			cats: []models.Category{{ID: "a"}, {ID: "a"}},
		},
		{
			name: "subcategories",
			subs: []models.Subcategory{{ID: "s", CategoryID: "a"}, {ID: "s", CategoryID: "b"}},
		},
		{
			name: "resources",
			res:  []models.Resource{{ID: "r"}, {ID: "r"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cats, tt.subs, tt.res)
			if !errors.Is(err, ErrDuplicateID) {
				t.Errorf("err = %v, want ErrDuplicateID", err)
			}
		})
	}
}

func TestStore_AccessorsReturnCopies(t *testing.T) {
	s := testStore(t)

	cats := s.Categories()
	cats[0].Name = "changed"
	if c, _ := s.Category(cats[0].ID); c.Name == "changed" {
		t.Error("mutating Categories() result changed the store")
	}

	res := s.Resources()
	res[0].Title = "changed"
	if s.Resources()[0].Title == "changed" {
		t.Error("mutating Resources() result changed the store")
	}
}

func TestStore_VersionsDiffer(t *testing.T) {
	a := testStore(t)
	b := testStore(t)
	if a.Version() == b.Version() {
		t.Errorf("two stores share version %d", a.Version())
	}
}

// TestBundledCatalog guards the shipped data: it must load and contain the
// housing layout the listing pages are designed around.
func TestBundledCatalog(t *testing.T) {
	s, err := Load(data.FS)
	if err != nil {
		t.Fatalf("Load(data.FS): %v", err)
	}

	if _, ok := s.Category("housing"); !ok {
		t.Fatal("bundled catalog has no housing category")
	}
	if _, ok := s.Category("life"); !ok {
		t.Fatal("bundled catalog has no life category")
	}
	if got := s.ResourceCount("housing"); got != 12 {
		t.Errorf("housing resources: got %d, want 12", got)
	}

	report := Validate(s)
	if report.Errors() != 0 || report.Warnings() != 0 {
		t.Errorf("bundled catalog has issues: %v", report.Issues)
	}
}
