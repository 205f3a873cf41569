// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textclean normalizes extracted PDF text for language-model
// consumption: whitespace collapse, glyph filtering, punctuation spacing,
// and paragraph-preserving line wrapping.
package textclean

import (
	"regexp"
	"strings"
)

var (
	// whitespaceRe collapses runs of whitespace, including the stray
	// newlines PDF extraction scatters through paragraphs.
	whitespaceRe = regexp.MustCompile(`\s+`)

	// glyphRe drops characters outside letters, digits, whitespace, and
	// basic punctuation. PDF extraction leaks ligatures, box-drawing
	// characters, and private-use glyphs that only confuse a model.
	glyphRe = regexp.MustCompile(`[^\p{L}\p{N}\s.,!?;:()\-]`)

	// punctSpaceRe matches whitespace preceding closing punctuation.
	punctSpaceRe = regexp.MustCompile(`\s+([.,!?;:])`)
)

// DefaultWrapWidth is the wrap column used when none is configured.
const DefaultWrapWidth = 80

// Clean normalizes one page of extracted text: collapses whitespace,
// strips non-text glyphs, and removes space before punctuation. The
// result is a single logical paragraph with no leading or trailing
// whitespace.
func Clean(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = glyphRe.ReplaceAllString(text, "")
	text = punctSpaceRe.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}

// Wrap re-flows text to the given width while preserving paragraph
// breaks (blank lines) and leaving page-marker lines untouched. A width
// of zero or less disables wrapping.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var out []string
	for _, paragraph := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(paragraph)
		if trimmed == "" {
			out = append(out, "")
			continue
		}
		if strings.HasPrefix(trimmed, "[Page") {
			out = append(out, paragraph)
			continue
		}
		out = append(out, wrapParagraph(paragraph, width)...)
	}
	return strings.Join(out, "\n")
}

// wrapParagraph greedily packs words into lines no longer than width.
// A single word longer than width gets a line of its own.
func wrapParagraph(paragraph string, width int) []string {
	var lines []string
	var current []string
	length := 0

	for _, word := range strings.Fields(paragraph) {
		wordLen := len(word) + 1 // trailing space
		if length+wordLen > width && len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
			current = []string{word}
			length = wordLen
		} else {
			current = append(current, word)
			length += wordLen
		}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}
