// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toc renders table-of-contents pages as Markdown tables.
// TOC entries in extracted text look like "Introduction .... 1" or
// "Chapter 2   27"; a Markdown table is far easier for a language model
// to use than the dotted-leader original.
package toc

import (
	"fmt"
	"regexp"
	"strings"
)

// entryRe matches a TOC line: a title, a run of dot leaders or
// whitespace, and a trailing page number.
var entryRe = regexp.MustCompile(`^(.*?)[.…\s]+(\d+)$`)

// Entry is one parsed table-of-contents line.
type Entry struct {
	Section string
	Page    string
}

// Parse extracts TOC entries from page text. Lines that do not match
// the entry pattern are ignored.
func Parse(text string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(text, "\n") {
		m := entryRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		section := strings.TrimSpace(m[1])
		if section == "" {
			continue
		}
		entries = append(entries, Entry{Section: section, Page: m[2]})
	}
	return entries
}

// Render converts TOC text to a Markdown table. When no entries are
// found the input is returned unchanged.
func Render(text string) string {
	entries := Parse(text)
	if len(entries) == 0 {
		return text
	}

	var b strings.Builder
	b.WriteString("| Section | Page |\n|---------|------|\n")
	for _, e := range entries {
		section := strings.ReplaceAll(e.Section, "|", `\|`)
		fmt.Fprintf(&b, "| %s | %s |\n", section, e.Page)
	}
	return b.String()
}

// IsTOCName reports whether a source base name identifies a
// table-of-contents document.
func IsTOCName(baseName string) bool {
	return strings.EqualFold(baseName, "toc")
}
