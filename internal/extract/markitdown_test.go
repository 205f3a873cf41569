// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// fakeRuntime implements container.Runtime for testing.
type fakeRuntime struct {
	imageErr error
	output   string
	runErr   error
}

func (f *fakeRuntime) Name() string    { return "docker" }
func (f *fakeRuntime) Available() bool { return true }

func (f *fakeRuntime) ImageExists(image string) error { return f.imageErr }

func (f *fakeRuntime) Run(image string, stdin io.Reader, stdout io.Writer) error {
	if f.runErr != nil {
		return f.runErr
	}
	io.Copy(io.Discard, stdin)
	_, err := stdout.Write([]byte(f.output))
	return err
}

func writePDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(path, []byte("fake pdf"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMarkitdownExtractor(t *testing.T) {
	ex, err := newMarkitdownExtractor(&fakeRuntime{output: "# Title\n\nBody text."})
	if err != nil {
		t.Fatal(err)
	}

	doc, err := ex.Extract(writePDF(t))
	if err != nil {
		t.Fatal(err)
	}
	if doc.PageCount() != 1 {
		t.Fatalf("pages = %d, want 1 (whole document)", doc.PageCount())
	}
	if doc.Pages[0] != "# Title\n\nBody text." {
		t.Errorf("page content = %q", doc.Pages[0])
	}
}

func TestMarkitdownExtractor_ImageMissing(t *testing.T) {
	_, err := newMarkitdownExtractor(&fakeRuntime{imageErr: errors.New("no such image")})
	if err == nil {
		t.Fatal("expected error when the image is missing")
	}
}

func TestMarkitdownExtractor_Failures(t *testing.T) {
	t.Run("container failure", func(t *testing.T) {
		ex, err := newMarkitdownExtractor(&fakeRuntime{runErr: errors.New("exit 1")})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := ex.Extract(writePDF(t)); !errors.Is(err, ErrRead) {
			t.Errorf("error should match ErrRead, got: %v", err)
		}
	})

	t.Run("empty output", func(t *testing.T) {
		ex, err := newMarkitdownExtractor(&fakeRuntime{output: ""})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := ex.Extract(writePDF(t)); !errors.Is(err, ErrRead) {
			t.Errorf("error should match ErrRead, got: %v", err)
		}
	})
}
