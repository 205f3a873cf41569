// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Document holds the text extracted from one input PDF. It exists only
// for the duration of a conversion.
type Document struct {
	// Path is the source PDF path.
	Path string `json:"path" yaml:"path"`

	// Pages is the extracted raw text, one entry per page in order.
	Pages []string `json:"pages" yaml:"pages"`
}

// PageCount returns the number of pages in the document.
func (d Document) PageCount() int { return len(d.Pages) }

// Chapter is a contiguous run of pages written to one output file.
type Chapter struct {
	// Title is the detected or configured chapter title. May be empty.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// StartPage and EndPage are 1-based inclusive page indices into the
	// source document.
	StartPage int `json:"start_page" yaml:"start_page"`
	EndPage   int `json:"end_page" yaml:"end_page"`

	// Body is the cleaned, marked-up text of the chapter.
	Body string `json:"-" yaml:"-"`
}

// ConversionStatus indicates the outcome of converting one input PDF.
type ConversionStatus string

const (
	StatusConverted ConversionStatus = "converted"
	StatusSkipped   ConversionStatus = "skipped"
	StatusFailed    ConversionStatus = "failed"
)

// ConversionResult records the outcome for a single input PDF. Exactly
// one result exists per input processed in a run.
type ConversionResult struct {
	// Source is the input PDF path.
	Source string `json:"source" yaml:"source"`

	// Status is the conversion outcome.
	Status ConversionStatus `json:"status" yaml:"status"`

	// Outputs lists the text files written, in chapter order.
	Outputs []string `json:"outputs,omitempty" yaml:"outputs,omitempty"`

	// Error holds the failure reason when Status is failed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// EmptyPages counts pages that yielded no extractable text.
	EmptyPages int `json:"empty_pages,omitempty" yaml:"empty_pages,omitempty"`
}
