// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment splits extracted documents into chapters. Explicit
// page ranges are authoritative when supplied; otherwise a chapter
// starts at each page whose first non-blank line matches a configured
// pattern or the built-in heading heuristic.
package segment

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/pdf2llm/pkg/types"
)

// ParseRanges parses a range spec like "1-12,13-40,41-57" into chapters.
// Single pages ("5") are allowed. Ranges must be ascending,
// non-overlapping, and within 1..pageCount.
func ParseRanges(spec string, pageCount int) ([]types.Chapter, error) {
	parts := strings.Split(spec, ",")
	chapters := make([]types.Chapter, 0, len(parts))
	prevEnd := 0

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		start, end, err := parseRange(part)
		if err != nil {
			return nil, err
		}
		if start <= prevEnd {
			return nil, fmt.Errorf("range %q overlaps or is out of order (previous range ended at page %d)", part, prevEnd)
		}
		if end > pageCount {
			return nil, fmt.Errorf("range %q exceeds document length (%d pages)", part, pageCount)
		}

		chapters = append(chapters, types.Chapter{StartPage: start, EndPage: end})
		prevEnd = end
	}

	if len(chapters) == 0 {
		return nil, fmt.Errorf("empty range spec %q", spec)
	}
	return chapters, nil
}

func parseRange(part string) (start, end int, err error) {
	if before, after, found := strings.Cut(part, "-"); found {
		start, err = strconv.Atoi(strings.TrimSpace(before))
		if err == nil {
			end, err = strconv.Atoi(strings.TrimSpace(after))
		}
	} else {
		start, err = strconv.Atoi(part)
		end = start
	}
	if err != nil {
		return 0, 0, fmt.Errorf("invalid page range %q", part)
	}
	if start < 1 || end < start {
		return 0, 0, fmt.Errorf("invalid page range %q", part)
	}
	return start, end, nil
}

// ByPattern splits a document at each page whose first non-blank line
// matches re. The matched line becomes the chapter title. Pages before
// the first match form an untitled leading chapter; with no matches the
// whole document is a single chapter.
func ByPattern(doc types.Document, re *regexp.Regexp) []types.Chapter {
	return split(doc, func(line string) (string, bool) {
		if re.MatchString(line) {
			return line, true
		}
		return "", false
	})
}

// ByHeuristic splits a document at pages whose first non-blank line
// looks like a chapter heading: a short all-caps line, a "Chapter N" /
// "Part N" / "Section N" prefix, or a numbered "N." prefix.
func ByHeuristic(doc types.Document) []types.Chapter {
	return split(doc, func(line string) (string, bool) {
		if isLikelyHeading(line) {
			return line, true
		}
		return "", false
	})
}

func split(doc types.Document, boundary func(line string) (title string, ok bool)) []types.Chapter {
	var chapters []types.Chapter

	for i, page := range doc.Pages {
		title, ok := boundary(firstLine(page))
		if ok || len(chapters) == 0 {
			if len(chapters) > 0 {
				chapters[len(chapters)-1].EndPage = i
			}
			chapters = append(chapters, types.Chapter{
				Title:     title,
				StartPage: i + 1,
			})
		}
	}

	if len(chapters) > 0 {
		chapters[len(chapters)-1].EndPage = doc.PageCount()
	}
	return chapters
}

// firstLine returns the first non-blank line of a page, trimmed.
func firstLine(page string) string {
	for _, line := range strings.Split(page, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func isLikelyHeading(line string) bool {
	if line == "" || len(line) > 100 {
		return false
	}
	// All caps and short.
	if len(line) > 2 && line == strings.ToUpper(line) && strings.ToLower(line) != line {
		return true
	}
	lower := strings.ToLower(line)
	for _, prefix := range []string{"chapter ", "part ", "section ", "appendix "} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	// Numbered heading like "1. Introduction" or "3.2 Results".
	if line[0] >= '0' && line[0] <= '9' {
		head := line
		if len(head) > 10 {
			head = head[:10]
		}
		if strings.Contains(head, ".") {
			return true
		}
	}
	return false
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slug derives a filesystem-safe fragment from a chapter title for use
// in output filenames. Returns "" for untitled chapters.
func Slug(title string) string {
	s := slugRe.ReplaceAllString(strings.ToLower(title), "-")
	s = strings.Trim(s, "-")
	if len(s) > 40 {
		s = strings.Trim(s[:40], "-")
	}
	return s
}
