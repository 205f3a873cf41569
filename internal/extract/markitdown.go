// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pdiddy/pdf2llm/internal/container"
	"github.com/pdiddy/pdf2llm/pkg/types"
)

const imageMarkitdown = "markitdown:latest"

// MarkitdownExtractor converts PDFs by piping them through the markitdown
// container image. It depends on a container.Runtime (docker or podman)
// injected at construction time. The container sees the whole document at
// once, so the result is a single logical page.
type MarkitdownExtractor struct {
	runtime container.Runtime
}

// NewMarkitdownExtractor detects a container runtime and verifies that the
// markitdown image exists locally before returning.
func NewMarkitdownExtractor() (*MarkitdownExtractor, error) {
	rt, err := container.DetectRuntime()
	if err != nil {
		return nil, err
	}
	return newMarkitdownExtractor(rt)
}

func newMarkitdownExtractor(rt container.Runtime) (*MarkitdownExtractor, error) {
	if err := rt.ImageExists(imageMarkitdown); err != nil {
		return nil, fmt.Errorf("markitdown image not available in %s: %w", rt.Name(), err)
	}
	return &MarkitdownExtractor{runtime: rt}, nil
}

// Extract pipes the PDF through the markitdown container and returns the
// output as a one-page document.
func (m *MarkitdownExtractor) Extract(pdfPath string) (types.Document, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return types.Document{}, fmt.Errorf("%w: %s: %v", ErrRead, pdfPath, err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := m.runtime.Run(imageMarkitdown, f, &out); err != nil {
		return types.Document{}, fmt.Errorf("%w: %s: markitdown: %v", ErrRead, pdfPath, err)
	}

	if out.Len() == 0 {
		return types.Document{}, fmt.Errorf("%w: %s: markitdown produced empty output", ErrRead, pdfPath)
	}

	return types.Document{Path: pdfPath, Pages: []string{out.String()}}, nil
}
