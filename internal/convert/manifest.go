// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf2llm/pkg/types"
)

const manifestFile = "manifest.yaml"

// Manifest is the on-disk record of a conversion run. It lists one
// result per input so a later run (or the index stage) can see what was
// produced and what failed. It deliberately carries no timestamps:
// rerunning an identical conversion leaves it byte-identical.
type Manifest struct {
	Results []types.ConversionResult `yaml:"results"`
}

// WriteManifest saves conversion results to outputDir/manifest.yaml.
func WriteManifest(outputDir string, results []types.ConversionResult) error {
	data, err := yaml.Marshal(&Manifest{Results: results})
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return os.WriteFile(filepath.Join(outputDir, manifestFile), data, 0o644)
}

// ReadManifest loads a previously written manifest.
func ReadManifest(outputDir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(outputDir, manifestFile))
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}
