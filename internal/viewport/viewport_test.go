// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package viewport

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGroupSize(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 10},
		{-1, 10},
		{320, 3},
		{640, 3},
		{641, 5},
		{768, 5},
		{769, 7},
		{1024, 7},
		{1025, 10},
		{1920, 10},
	}
	for _, tt := range tests {
		if got := GroupSize(tt.width); got != tt.want {
			t.Errorf("GroupSize(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		cookie  string
		want    int
	}{
		{name: "nothing reported", want: 0},
		{name: "client hint", headers: map[string]string{HeaderViewportWidth: "390"}, want: 390},
		{name: "fractional hint", headers: map[string]string{HeaderViewportWidth: "767.5"}, want: 767},
		{name: "legacy hint", headers: map[string]string{HeaderLegacyViewportWidth: "1024"}, want: 1024},
		{name: "hint wins over cookie", headers: map[string]string{HeaderViewportWidth: "600"}, cookie: "1400", want: 600},
		{name: "cookie fallback", cookie: "700", want: 700},
		{name: "garbage hint falls through", headers: map[string]string{HeaderViewportWidth: "wide"}, cookie: "500", want: 500},
		{name: "garbage cookie", cookie: "abc", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/housing", nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}
			if got := FromRequest(r); got != tt.want {
				t.Errorf("FromRequest = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGroupSizeFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/life", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "375"})
	if got := GroupSizeFromRequest(r); got != 3 {
		t.Errorf("GroupSizeFromRequest = %d, want 3", got)
	}
}

func TestAdvertiseHints(t *testing.T) {
	rec := httptest.NewRecorder()
	AdvertiseHints(rec)
	if got := rec.Header().Get("Accept-CH"); got != "Sec-CH-Viewport-Width, Viewport-Width" {
		t.Errorf("Accept-CH = %q", got)
	}
}
