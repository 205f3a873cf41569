// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package toc

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	text := `Contents
Introduction ................. 1
2. Background   17
Results and Discussion … 42
just a paragraph of prose with no page number
`
	entries := Parse(text)
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3: %+v", len(entries), entries)
	}

	want := []Entry{
		{Section: "Introduction", Page: "1"},
		{Section: "2. Background", Page: "17"},
		{Section: "Results and Discussion", Page: "42"},
	}
	for i, e := range entries {
		if e != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, e, want[i])
		}
	}
}

func TestRender(t *testing.T) {
	out := Render("Introduction .... 1\nA | B section .... 2")

	if !strings.HasPrefix(out, "| Section | Page |\n|---------|------|\n") {
		t.Errorf("missing table header:\n%s", out)
	}
	if !strings.Contains(out, "| Introduction | 1 |") {
		t.Errorf("missing entry row:\n%s", out)
	}
	if !strings.Contains(out, `A \| B section`) {
		t.Errorf("pipe characters should be escaped:\n%s", out)
	}
}

func TestRender_NoEntries(t *testing.T) {
	text := "no table of contents here, just prose"
	if got := Render(text); got != text {
		t.Errorf("text without entries should pass through unchanged, got %q", got)
	}
}

func TestIsTOCName(t *testing.T) {
	for name, want := range map[string]bool{
		"toc":     true,
		"TOC":     true,
		"Toc":     true,
		"preface": false,
		"toctoc":  false,
	} {
		if got := IsTOCName(name); got != want {
			t.Errorf("IsTOCName(%q) = %v, want %v", name, got, want)
		}
	}
}
