// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"regexp"
	"testing"

	"github.com/pdiddy/pdf2llm/pkg/types"
)

func doc(pages ...string) types.Document {
	return types.Document{Path: "test.pdf", Pages: pages}
}

func TestParseRanges(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		pageCount int
		want      [][2]int // start, end pairs
		wantErr   bool
	}{
		{
			name: "three ranges", spec: "1-12,13-40,41-57", pageCount: 57,
			want: [][2]int{{1, 12}, {13, 40}, {41, 57}},
		},
		{
			name: "single pages and gaps", spec: "1,5-6", pageCount: 10,
			want: [][2]int{{1, 1}, {5, 6}},
		},
		{
			name: "spaces tolerated", spec: " 1-2 , 3-4 ", pageCount: 4,
			want: [][2]int{{1, 2}, {3, 4}},
		},
		{name: "overlap rejected", spec: "1-5,4-8", pageCount: 10, wantErr: true},
		{name: "out of order rejected", spec: "5-8,1-4", pageCount: 10, wantErr: true},
		{name: "beyond document rejected", spec: "1-20", pageCount: 10, wantErr: true},
		{name: "reversed range rejected", spec: "5-2", pageCount: 10, wantErr: true},
		{name: "zero page rejected", spec: "0-3", pageCount: 10, wantErr: true},
		{name: "garbage rejected", spec: "a-b", pageCount: 10, wantErr: true},
		{name: "empty spec rejected", spec: " , ", pageCount: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chapters, err := ParseRanges(tt.spec, tt.pageCount)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(chapters) != len(tt.want) {
				t.Fatalf("chapters = %d, want %d", len(chapters), len(tt.want))
			}
			for i, w := range tt.want {
				if chapters[i].StartPage != w[0] || chapters[i].EndPage != w[1] {
					t.Errorf("chapter %d = %d-%d, want %d-%d",
						i, chapters[i].StartPage, chapters[i].EndPage, w[0], w[1])
				}
			}
		})
	}
}

func TestByPattern(t *testing.T) {
	re := regexp.MustCompile(`^Chapter \d+`)

	d := doc(
		"Preface text.",
		"Chapter 1\nThe beginning.",
		"Middle of chapter one.",
		"Chapter 2\nThe continuation.",
	)
	chapters := ByPattern(d, re)

	if len(chapters) != 3 {
		t.Fatalf("chapters = %d, want 3 (leading unmatched pages form a chapter)", len(chapters))
	}
	if chapters[0].Title != "" || chapters[0].StartPage != 1 || chapters[0].EndPage != 1 {
		t.Errorf("leading chapter = %+v", chapters[0])
	}
	if chapters[1].Title != "Chapter 1" || chapters[1].StartPage != 2 || chapters[1].EndPage != 3 {
		t.Errorf("chapter 1 = %+v", chapters[1])
	}
	if chapters[2].Title != "Chapter 2" || chapters[2].StartPage != 4 || chapters[2].EndPage != 4 {
		t.Errorf("chapter 2 = %+v", chapters[2])
	}
}

func TestByPattern_NoMatches(t *testing.T) {
	d := doc("page one", "page two")
	chapters := ByPattern(d, regexp.MustCompile(`^Chapter`))

	if len(chapters) != 1 {
		t.Fatalf("chapters = %d, want 1 whole-document chapter", len(chapters))
	}
	if chapters[0].StartPage != 1 || chapters[0].EndPage != 2 {
		t.Errorf("chapter = %+v", chapters[0])
	}
}

func TestByHeuristic(t *testing.T) {
	d := doc(
		"INTRODUCTION\nSome opening text.",
		"continuation of the introduction, lower case prose that runs on",
		"Chapter 2: The Middle\nMore text.",
		"3.1 Numbered Section\nDetails.",
	)
	chapters := ByHeuristic(d)

	if len(chapters) != 3 {
		t.Fatalf("chapters = %d, want 3: %+v", len(chapters), chapters)
	}
	if chapters[0].Title != "INTRODUCTION" {
		t.Errorf("title = %q, want INTRODUCTION", chapters[0].Title)
	}
	if chapters[1].StartPage != 3 {
		t.Errorf("second chapter starts at page %d, want 3", chapters[1].StartPage)
	}
}

func TestIsLikelyHeading(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"INTRODUCTION", true},
		{"Chapter 7", true},
		{"Part II", true},
		{"Appendix A", true},
		{"1. Overview", true},
		{"3.2 Results", true},
		{"regular prose starting a page without any heading shape", false},
		{"", false},
		{"42", false}, // bare page number, no dot
	}
	for _, tt := range tests {
		if got := isLikelyHeading(tt.line); got != tt.want {
			t.Errorf("isLikelyHeading(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		title, want string
	}{
		{"Chapter 1: The Beginning", "chapter-1-the-beginning"},
		{"", ""},
		{"---", ""},
		{"Ünïcode Heading", "n-code-heading"},
	}
	for _, tt := range tests {
		if got := Slug(tt.title); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
