// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slug

import "testing"

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple two words", input: "Housing Finance", want: "housing-finance"},
		{name: "with number", input: "Res 001", want: "res-001"},
		{name: "already a slug", input: "life-welfare", want: "life-welfare"},
		{name: "underscores become hyphens", input: "rental_housing", want: "rental-housing"},
		{name: "tabs and newlines", input: "health\tcare\nnow", want: "health-care-now"},
		{name: "punctuation dropped", input: "Loans & Grants!", want: "loans-grants"},
		{name: "surrounding hyphens trimmed", input: "--housing--", want: "housing"},
		{name: "hangul stripped", input: "주거 housing", want: "housing"},
		{name: "only hangul", input: "주거", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestGenerate_Idempotent verifies that a generated slug is a fixed point.
func TestGenerate_Idempotent(t *testing.T) {
	inputs := []string{"Housing Finance", "  Life / Welfare  ", "res_042", "A--B"}
	for _, in := range inputs {
		once := Generate(in)
		if twice := Generate(once); twice != once {
			t.Errorf("Generate not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"housing", true},
		{"housing-finance", true},
		{"res-001", true},
		{"", false},
		{"Housing", false},
		{"housing finance", false},
		{"housing_finance", false},
		{"-housing", false},
		{"주거", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := Valid(tt.id); got != tt.want {
				t.Errorf("Valid(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
