// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pagenum

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemeLabel(t *testing.T) {
	tests := []struct {
		name   string
		scheme Scheme
		offset int
		want   string
	}{
		{"arabic from one", Scheme{StartPage: 1}, 0, "1"},
		{"arabic with offset", Scheme{StartPage: 13}, 4, "17"},
		{"roman four", Scheme{StartPage: 4, Roman: true}, 0, "iv"},
		{"roman with offset", Scheme{StartPage: 1, Roman: true}, 11, "xii"},
		{"roman forty-nine", Scheme{StartPage: 49, Roman: true}, 0, "xlix"},
		{"roman large", Scheme{StartPage: 1994, Roman: true}, 0, "mcmxciv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.scheme.Label(tt.offset))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sections.yaml")
	content := `
preface:
  start_page: 4
  roman: true
chapter1:
  start_page: 13
broken:
  start_page: 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Scheme{StartPage: 4, Roman: true}, cfg.For("Preface"), "lookup is case-insensitive")
	assert.Equal(t, Scheme{StartPage: 13}, cfg.For("chapter1"))
	assert.Equal(t, DefaultScheme, cfg.For("unconfigured"))
	assert.Equal(t, 1, cfg.For("broken").StartPage, "non-positive start pages fall back to 1")
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultScheme, cfg.For("anything"))
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("not: [valid"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}
