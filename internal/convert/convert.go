// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns extracted PDF text into cleaned, wrapped text
// files, one per document or per chapter.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/pdf2llm/internal/extract"
	"github.com/pdiddy/pdf2llm/internal/pagenum"
	"github.com/pdiddy/pdf2llm/internal/segment"
	"github.com/pdiddy/pdf2llm/internal/textclean"
	"github.com/pdiddy/pdf2llm/internal/toc"
	"github.com/pdiddy/pdf2llm/pkg/types"
)

// ErrWrite indicates an output file or directory could not be created.
var ErrWrite = errors.New("cannot write output")

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
	Results   []types.ConversionResult
}

// Total returns the total number of inputs processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any inputs failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertFile converts a single PDF to one or more text files, writing
// per-file status lines to w. The returned result records the outcome;
// errors never propagate beyond it so a batch can continue.
func ConvertFile(ex extract.Extractor, pdfPath string, cfg types.ConvertConfig, numbering pagenum.Config, w io.Writer) types.ConversionResult {
	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	result := types.ConversionResult{Source: pdfPath}

	singleOutput := !splitRequested(cfg) || toc.IsTOCName(base)
	if singleOutput && !cfg.Force {
		outPath := filepath.Join(cfg.OutputDir, base+".txt")
		if _, err := os.Stat(outPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", base)
			result.Status = types.StatusSkipped
			result.Outputs = []string{outPath}
			return result
		}
	}

	doc, err := ex.Extract(pdfPath)
	if err != nil {
		return fail(&result, w, base, err)
	}

	scheme := numbering.For(base)
	pages := make([]string, doc.PageCount())
	for i, raw := range doc.Pages {
		cleaned := textclean.Clean(raw)
		if cleaned == "" {
			result.EmptyPages++
			fmt.Fprintf(w, "  warning: %s page %s has no extractable text\n", base, scheme.Label(i))
		}
		pages[i] = textclean.Wrap(cleaned, cfg.WrapWidth)
	}
	if result.EmptyPages == doc.PageCount() {
		fmt.Fprintf(w, "  warning: %s yielded no text at all\n", base)
	}

	var outputs map[string]string // path -> content
	if toc.IsTOCName(base) {
		// TOC parsing needs the original line structure, which Clean
		// collapses away.
		outputs = map[string]string{
			filepath.Join(cfg.OutputDir, base+".txt"): toc.Render(strings.Join(doc.Pages, "\n")),
		}
	} else {
		chapters, err := chapterize(doc, cfg)
		if err != nil {
			return fail(&result, w, base, err)
		}
		outputs = renderOutputs(base, chapters, pages, scheme, cfg)
	}

	paths := make([]string, 0, len(outputs))
	for p := range outputs {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	if !cfg.Force && allExist(paths) {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", base)
		result.Status = types.StatusSkipped
		result.Outputs = paths
		return result
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fail(&result, w, base, fmt.Errorf("%w: %v", ErrWrite, err))
	}

	for _, p := range paths {
		data, err := encodeText(outputs[p], cfg.Encoding)
		if err != nil {
			return fail(&result, w, base, err)
		}
		if err := os.WriteFile(p, data, 0o644); err != nil {
			return fail(&result, w, base, fmt.Errorf("%w: %v", ErrWrite, err))
		}
	}

	fmt.Fprintf(w, "converted: %s (%d file(s))\n", base, len(paths))
	result.Status = types.StatusConverted
	result.Outputs = paths
	return result
}

// ConvertBatch processes inputs sequentially in sorted order, printing
// per-file status to w and a summary at the end. It writes a
// manifest.yaml of results into the output directory.
func ConvertBatch(ex extract.Extractor, pdfPaths []string, cfg types.ConvertConfig, numbering pagenum.Config, w io.Writer) BatchResult {
	sorted := append([]string(nil), pdfPaths...)
	sort.Strings(sorted)

	var result BatchResult
	for _, p := range sorted {
		r := ConvertFile(ex, p, cfg, numbering, w)
		result.Results = append(result.Results, r)
		switch r.Status {
		case types.StatusConverted:
			result.Converted++
		case types.StatusSkipped:
			result.Skipped++
		case types.StatusFailed:
			result.Failed++
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())

	if result.Converted > 0 || result.Failed > 0 {
		if err := WriteManifest(cfg.OutputDir, result.Results); err != nil {
			fmt.Fprintf(w, "warning: manifest write failed: %v\n", err)
		}
	}

	return result
}

// ConvertDir converts every PDF in a directory.
func ConvertDir(ex extract.Extractor, inputDir string, cfg types.ConvertConfig, numbering pagenum.Config, w io.Writer) (BatchResult, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return BatchResult{}, fmt.Errorf("reading input directory %s: %w", inputDir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		paths = append(paths, filepath.Join(inputDir, entry.Name()))
	}
	if len(paths) == 0 {
		return BatchResult{}, fmt.Errorf("no PDF files found in %s", inputDir)
	}

	return ConvertBatch(ex, paths, cfg, numbering, w), nil
}

func fail(result *types.ConversionResult, w io.Writer, base string, err error) types.ConversionResult {
	fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
	result.Status = types.StatusFailed
	result.Error = err.Error()
	result.Outputs = nil
	return *result
}

func splitRequested(cfg types.ConvertConfig) bool {
	return cfg.SplitChapters || cfg.ChapterPattern != "" || cfg.ChapterRanges != ""
}

// chapterize builds the chapter list for a document, or a single
// whole-document chapter when no splitting is requested.
func chapterize(doc types.Document, cfg types.ConvertConfig) ([]types.Chapter, error) {
	switch {
	case cfg.ChapterRanges != "":
		return segment.ParseRanges(cfg.ChapterRanges, doc.PageCount())
	case cfg.ChapterPattern != "":
		re, err := regexp.Compile(cfg.ChapterPattern)
		if err != nil {
			return nil, fmt.Errorf("invalid chapter pattern %q: %w", cfg.ChapterPattern, err)
		}
		return segment.ByPattern(doc, re), nil
	case cfg.SplitChapters:
		return segment.ByHeuristic(doc), nil
	default:
		return []types.Chapter{{StartPage: 1, EndPage: doc.PageCount()}}, nil
	}
}

// renderOutputs assembles the output file contents: each chapter's pages
// prefixed with their [Page N] markers and joined in order.
func renderOutputs(base string, chapters []types.Chapter, pages []string, scheme pagenum.Scheme, cfg types.ConvertConfig) map[string]string {
	outputs := make(map[string]string, len(chapters))

	for i, ch := range chapters {
		var b strings.Builder
		for p := ch.StartPage; p <= ch.EndPage && p <= len(pages); p++ {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "\n[Page %s]\n", scheme.Label(p-1))
			b.WriteString(pages[p-1])
		}

		name := base + ".txt"
		if len(chapters) > 1 {
			name = fmt.Sprintf("%s-%02d", base, i+1)
			if slug := segment.Slug(ch.Title); slug != "" {
				name += "-" + slug
			}
			name += ".txt"
		}

		outputs[filepath.Join(cfg.OutputDir, name)] = b.String()
	}

	return outputs
}

func allExist(paths []string) bool {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return false
		}
	}
	return len(paths) > 0
}
