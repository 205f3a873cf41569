// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pagenum assigns page labels to converted documents. Front
// matter in a thesis or book is conventionally numbered with lower-case
// Roman numerals while the main body uses Arabic numerals, and each
// chapter file starts at its own page number; a YAML config keyed by
// source file base name captures both.
package pagenum

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Scheme describes how one document's pages are numbered.
type Scheme struct {
	// StartPage is the label of the document's first page.
	StartPage int `yaml:"start_page"`

	// Roman selects lower-case Roman numeral labels (iv, v, vi, ...).
	Roman bool `yaml:"roman"`
}

// DefaultScheme numbers pages 1, 2, 3, ...
var DefaultScheme = Scheme{StartPage: 1}

// Label returns the page label for the zero-based page offset.
func (s Scheme) Label(offset int) string {
	n := s.StartPage + offset
	if s.Roman {
		return toRoman(n)
	}
	return fmt.Sprintf("%d", n)
}

// Config maps lower-cased source base names to numbering schemes.
type Config map[string]Scheme

// Load reads a numbering config from a YAML file. An empty path returns
// an empty config, so every document falls back to DefaultScheme.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading numbering config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing numbering config %s: %w", path, err)
	}
	for name, s := range cfg {
		if s.StartPage <= 0 {
			s.StartPage = 1
			cfg[name] = s
		}
	}
	return cfg, nil
}

// For returns the scheme for a source base name, falling back to
// DefaultScheme when the name is not configured.
func (c Config) For(baseName string) Scheme {
	if s, ok := c[strings.ToLower(baseName)]; ok {
		return s
	}
	return DefaultScheme
}

var romanSymbols = []struct {
	symbol string
	value  int
}{
	{"M", 1000}, {"CM", 900}, {"D", 500}, {"CD", 400},
	{"C", 100}, {"XC", 90}, {"L", 50}, {"XL", 40},
	{"X", 10}, {"IX", 9}, {"V", 5}, {"IV", 4}, {"I", 1},
}

// toRoman converts n to lower-case Roman numerals, the conventional
// style for thesis front matter.
func toRoman(n int) string {
	var b strings.Builder
	for _, rs := range romanSymbols {
		for n >= rs.value {
			b.WriteString(rs.symbol)
			n -= rs.value
		}
	}
	return strings.ToLower(b.String())
}
