// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		contains []string
	}{
		{"paragraph", "은퇴 선교사의 새로운 시작", []string{"<p>은퇴 선교사의 새로운 시작</p>"}},
		{"emphasis", "**사랑의 빛**", []string{"<strong>사랑의 빛</strong>"}},
		{"blockquote", "> 너희는 세상의 빛이라", []string{"<blockquote>", "너희는 세상의 빛이라"}},
		{"autolink", "https://www.myhome.go.kr", []string{`<a href="https://www.myhome.go.kr">`}},
		{"raw html escaped", "<script>alert(1)</script>", []string{"<!-- raw HTML omitted -->"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.source)
			if err != nil {
				t.Fatalf("ToHTML: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(string(got), want) {
					t.Errorf("ToHTML(%q) = %q, want it to contain %q", tt.source, got, want)
				}
			}
		})
	}
}

func TestSections(t *testing.T) {
	source := []byte(`인트로 문단

## 팀 소개

히즈라이트는 **복음의 빛**을 비췄던 이들을 응원합니다.

> 마태복음 5:14

## 미션

동행하겠습니다.

### 하위 제목

본문
`)

	sections, err := Sections(source)
	if err != nil {
		t.Fatalf("Sections: %v", err)
	}
	if len(sections) != 3 {
		t.Fatalf("got %d sections, want 3: %+v", len(sections), sections)
	}

	if sections[0].Title != "" || !strings.Contains(string(sections[0].Body), "인트로 문단") {
		t.Errorf("lead section = %+v", sections[0])
	}

	team := sections[1]
	if team.Title != "팀 소개" {
		t.Errorf("title = %q, want 팀 소개", team.Title)
	}
	for _, want := range []string{"<strong>복음의 빛</strong>", "<blockquote>"} {
		if !strings.Contains(string(team.Body), want) {
			t.Errorf("team body missing %q: %s", want, team.Body)
		}
	}
	if strings.Contains(string(team.Body), "동행하겠습니다") {
		t.Error("team section leaked into the next section")
	}

	mission := sections[2]
	if mission.Title != "미션" {
		t.Errorf("title = %q, want 미션", mission.Title)
	}
	if !strings.Contains(string(mission.Body), "<h3") || !strings.Contains(string(mission.Body), "본문") {
		t.Errorf("level-3 headings belong to their section: %s", mission.Body)
	}
}

func TestSections_NoHeadings(t *testing.T) {
	sections, err := Sections([]byte("한 문단"))
	if err != nil {
		t.Fatalf("Sections: %v", err)
	}
	if len(sections) != 1 || sections[0].Title != "" {
		t.Errorf("sections = %+v", sections)
	}

	empty, err := Sections(nil)
	if err != nil {
		t.Fatalf("Sections(nil): %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("empty document produced %d sections", len(empty))
	}
}
