// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract implements PDF text extraction with pluggable backends.
package extract

import (
	"errors"
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/pdiddy/pdf2llm/pkg/types"
)

// Sentinel error kinds for conversion results.
var (
	// ErrRead indicates the PDF could not be opened or parsed.
	ErrRead = errors.New("cannot read PDF")

	// ErrEncrypted indicates the PDF is encrypted and no password was
	// supplied. ErrEncrypted wraps ErrRead.
	ErrEncrypted = fmt.Errorf("%w: encrypted", ErrRead)
)

// Extractor pulls per-page text out of a PDF file. Different backends
// (native, pdftotext, markitdown) implement this interface.
type Extractor interface {
	// Extract reads the PDF at pdfPath and returns its per-page text.
	Extract(pdfPath string) (types.Document, error)
}

// New returns the Extractor for the named backend.
func New(backend types.ExtractionBackend) (Extractor, error) {
	switch backend {
	case types.BackendNative, "":
		return &NativeExtractor{}, nil
	case types.BackendPdftotext:
		return &PdftotextExtractor{}, nil
	case types.BackendMarkitdown:
		return NewMarkitdownExtractor()
	default:
		return nil, fmt.Errorf("unknown backend %q: use native, pdftotext, or markitdown", backend)
	}
}

// NativeExtractor reads PDFs in-process with the ledongthuc/pdf library.
type NativeExtractor struct{}

// Extract walks the document page by page. Pages that are null or fail
// text extraction become empty entries so page numbering stays aligned
// with the source document.
func (n *NativeExtractor) Extract(pdfPath string) (doc types.Document, err error) {
	// The library panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", ErrRead, pdfPath, r)
		}
	}()

	f, reader, err := pdflib.Open(pdfPath)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "encrypt") ||
			strings.Contains(strings.ToLower(err.Error()), "password") {
			return types.Document{}, fmt.Errorf("%w: %s", ErrEncrypted, pdfPath)
		}
		return types.Document{}, fmt.Errorf("%w: %s: %v", ErrRead, pdfPath, err)
	}
	defer f.Close()

	doc = types.Document{Path: pdfPath}
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			doc.Pages = append(doc.Pages, "")
			continue
		}
		doc.Pages = append(doc.Pages, text)
	}

	return doc, nil
}
