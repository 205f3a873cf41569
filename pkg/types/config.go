// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractionBackend identifies the PDF text-extraction tool.
type ExtractionBackend string

const (
	BackendNative     ExtractionBackend = "native"
	BackendPdftotext  ExtractionBackend = "pdftotext"
	BackendMarkitdown ExtractionBackend = "markitdown"
)

// ConvertConfig holds settings for the conversion stage.
type ConvertConfig struct {
	// Backend selects the extraction tool: native, pdftotext, or markitdown.
	Backend ExtractionBackend `json:"backend" yaml:"backend"`

	// OutputDir is the directory where text files are written.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Encoding is the IANA name of the output text encoding (default "utf-8").
	Encoding string `json:"encoding" yaml:"encoding"`

	// WrapWidth is the column to wrap paragraphs at. Zero disables wrapping.
	WrapWidth int `json:"wrap_width" yaml:"wrap_width"`

	// SplitChapters enables chapter segmentation with the built-in
	// heading heuristic when no pattern or ranges are given.
	SplitChapters bool `json:"split_chapters" yaml:"split_chapters"`

	// ChapterPattern is a regular expression matched against the first
	// non-blank line of each page; a match starts a new chapter.
	ChapterPattern string `json:"chapter_pattern,omitempty" yaml:"chapter_pattern,omitempty"`

	// ChapterRanges lists explicit page ranges, e.g. "1-12,13-40". When
	// set it overrides pattern and heuristic segmentation.
	ChapterRanges string `json:"chapter_ranges,omitempty" yaml:"chapter_ranges,omitempty"`

	// NumberingPath is the path to the sections.yaml numbering config.
	// Empty means every document numbers its pages 1, 2, 3, ...
	NumberingPath string `json:"numbering_path,omitempty" yaml:"numbering_path,omitempty"`

	// Force overwrites existing output files instead of skipping.
	Force bool `json:"force" yaml:"force"`
}

// IndexConfig holds settings for the chapter index.
type IndexConfig struct {
	// IndexDir is the directory holding the SQLite database.
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
