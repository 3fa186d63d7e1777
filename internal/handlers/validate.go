// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"hislight/internal/urlstate"
)

// Input limits for listing queries.
const (
	maxSearchLen      = 100
	maxSubcategoryLen = 64
	maxGroupSize      = 50
)

// paramGroupSize is the API override for the pagination band width.
const paramGroupSize = "group_size"

var validate = validator.New(validator.WithRequiredStructEnabled())

// normalizeSearch caps a search query at maxSearchLen runes.
func normalizeSearch(q string) string {
	if utf8.RuneCountInString(q) <= maxSearchLen {
		return q
	}
	runes := []rune(q)
	return string(runes[:maxSearchLen])
}

// resourceQuery is the parsed query of the resources API.
type resourceQuery struct {
	Search      string `validate:"max=100"`
	Subcategory string `validate:"omitempty,max=64,excludesall=/?#&"`
	Page        int    `validate:"min=1"`
	GroupSize   int    `validate:"omitempty,min=1,max=50"`
}

// fieldProblem describes one rejected query parameter.
type fieldProblem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// parseResourceQuery reads and validates the resources API query. Search,
// subcategory and page follow urlstate.Parse, so a bad page becomes 1;
// group_size must be a number when present.
func parseResourceQuery(v url.Values) (resourceQuery, []fieldProblem) {
	s := urlstate.Parse(v)
	q := resourceQuery{
		Search:      s.Search,
		Subcategory: s.Subcategory,
		Page:        s.Page,
	}

	var problems []fieldProblem
	if raw := v.Get(paramGroupSize); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			problems = append(problems, fieldProblem{Field: paramGroupSize, Message: "must be a number"})
		} else {
			q.GroupSize = n
		}
	}

	if err := validate.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			problems = append(problems, fieldProblem{Field: "query", Message: err.Error()})
			return q, problems
		}
		for _, fe := range verrs {
			problems = append(problems, fieldProblem{Field: queryParamName(fe.Field()), Message: problemMessage(fe)})
		}
	}
	return q, problems
}

func queryParamName(field string) string {
	switch field {
	case "Search":
		return urlstate.ParamSearch
	case "Subcategory":
		return urlstate.ParamSubcategory
	case "Page":
		return urlstate.ParamPage
	case "GroupSize":
		return paramGroupSize
	}
	return field
}

func problemMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "excludesall":
		return "contains reserved characters"
	}
	return "is invalid"
}
