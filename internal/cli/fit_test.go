package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rowfit/rowfit/pkg/errors"
)

func TestReportPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"book.toml", "book.report.json"},
		{"dir/book.toml", "dir/book.report.json"},
		{"noext", "noext.report.json"},
	}

	for _, tt := range tests {
		if got := reportPath(tt.input); got != tt.want {
			t.Errorf("reportPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRunFitRejectsTraversalOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.toml")
	book := "[[cells]]\nrow = 0\ncol = 0\ntext = \"hello\"\nwrap = true\n"
	if err := os.WriteFile(path, []byte(book), 0644); err != nil {
		t.Fatal(err)
	}

	opts := fitOpts{output: "../escape.report.json", noCache: true, quiet: true}
	err := runFit(context.Background(), path, &opts)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want INVALID_INPUT", errors.GetCode(err))
	}
}

func TestWrapInputArgument(t *testing.T) {
	text, err := wrapInput([]string{"Hello world"}, "")
	if err != nil {
		t.Fatalf("wrapInput error: %v", err)
	}
	if text != "Hello world" {
		t.Errorf("wrapInput = %q", text)
	}
}

func TestWrapInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.txt")
	if err := os.WriteFile(path, []byte("from file"), 0644); err != nil {
		t.Fatal(err)
	}

	text, err := wrapInput(nil, path)
	if err != nil {
		t.Fatalf("wrapInput error: %v", err)
	}
	if text != "from file" {
		t.Errorf("wrapInput = %q", text)
	}
}

func TestWrapInputConflicts(t *testing.T) {
	if _, err := wrapInput([]string{"text"}, "file.txt"); err == nil {
		t.Error("wrapInput should reject both argument and --file")
	}
	if _, err := wrapInput(nil, ""); err == nil {
		t.Error("wrapInput should reject missing input")
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg", appName) {
		t.Errorf("cacheDir = %q", dir)
	}
}

func TestWrapModelRewrap(t *testing.T) {
	m := newWrapModel("Hello world", 6, true)
	if len(m.lines) != 2 {
		t.Fatalf("lines at width 6 = %v, want 2", m.lines)
	}

	m.width = 20
	m.rewrap()
	if len(m.lines) != 1 {
		t.Errorf("lines at width 20 = %v, want 1", m.lines)
	}
}
