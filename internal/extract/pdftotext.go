// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/pdiddy/pdf2llm/pkg/types"
)

// PdftotextExtractor shells out to the poppler pdftotext binary. It is
// useful for PDFs the native backend cannot handle.
type PdftotextExtractor struct{}

// Extract runs pdftotext in layout mode and splits the output on the
// form-feed characters pdftotext emits between pages.
func (p *PdftotextExtractor) Extract(pdfPath string) (types.Document, error) {
	out, err := exec.Command("pdftotext", "-layout", pdfPath, "-").Output()
	if err != nil {
		return types.Document{}, fmt.Errorf("%w: %s: pdftotext: %v", ErrRead, pdfPath, err)
	}

	doc := types.Document{Path: pdfPath, Pages: strings.Split(string(out), "\f")}
	// pdftotext terminates the last page with a form feed, leaving a
	// trailing empty element.
	if n := len(doc.Pages); n > 1 && strings.TrimSpace(doc.Pages[n-1]) == "" {
		doc.Pages = doc.Pages[:n-1]
	}

	return doc, nil
}
