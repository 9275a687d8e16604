package workbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rowfit/rowfit/pkg/errors"
	"github.com/rowfit/rowfit/pkg/sheet"
)

const sampleBook = `
name = "Quarterly report"
default_row_height = 18.0
default_font = "body"

[fonts.body]
size = 11.0

[fonts.heading]
size = 14.0
bold = true

[[columns]]
index = 0
width = 120.0

[[columns]]
index = 1
width = 70.0

[[cells]]
row = 0
col = 0
text = "Revenue by region"
font = "heading"
wrap = true

[[cells]]
row = 1
col = 0
value = 1250.5

[[cells]]
row = 1
col = 1
value = true

[[merges]]
first_row = 0
last_row = 0
first_col = 0
last_col = 1
`

func TestParse(t *testing.T) {
	book, err := Parse([]byte(sampleBook))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if book.Name != "Quarterly report" {
		t.Errorf("Name = %q, want Quarterly report", book.Name)
	}

	s := book.Sheet
	if s.DefaultRowHeight() != 18 {
		t.Errorf("default row height = %g, want 18", s.DefaultRowHeight())
	}
	if s.DefaultFont().Size != 11 {
		t.Errorf("default font size = %g, want 11", s.DefaultFont().Size)
	}
	if w := s.ColumnWidth(0); w != 120 {
		t.Errorf("column 0 width = %g, want 120", w)
	}

	head := s.Row(0).Cell(0)
	if head == nil {
		t.Fatal("cell (0,0) missing")
	}
	if head.Text() != "Revenue by region" || !head.Style().Wrap {
		t.Errorf("cell (0,0) = %q wrap=%v", head.Text(), head.Style().Wrap)
	}
	font, err := s.Font(head.Style().Font)
	if err != nil {
		t.Fatalf("Font error: %v", err)
	}
	if font.Size != 14 || !font.Bold {
		t.Errorf("heading font = %+v, want 14pt bold", font)
	}

	// Typed values are formatted into display text.
	if got := s.Row(1).Cell(0).Text(); got != "1250.5" {
		t.Errorf("numeric cell text = %q, want 1250.5", got)
	}
	if got := s.Row(1).Cell(1).Text(); got != "TRUE" {
		t.Errorf("boolean cell text = %q, want TRUE", got)
	}

	if len(s.Regions()) != 1 {
		t.Errorf("regions = %v, want one", s.Regions())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{
			name: "bad toml",
			body: "name = [unterminated",
			code: errors.ErrCodeInvalidWorkbook,
		},
		{
			name: "undefined cell font",
			body: "[[cells]]\nrow = 0\ncol = 0\ntext = \"x\"\nfont = \"nope\"\n",
			code: errors.ErrCodeInvalidWorkbook,
		},
		{
			name: "undefined default font",
			body: "default_font = \"nope\"\n",
			code: errors.ErrCodeInvalidWorkbook,
		},
		{
			name: "negative cell position",
			body: "[[cells]]\nrow = -1\ncol = 0\ntext = \"x\"\n",
			code: errors.ErrCodeInvalidWorkbook,
		},
		{
			name: "zero column width",
			body: "[[columns]]\nindex = 0\nwidth = 0.0\n",
			code: errors.ErrCodeInvalidWorkbook,
		},
		{
			name: "text and value together",
			body: "[[cells]]\nrow = 0\ncol = 0\ntext = \"x\"\nvalue = 1\n",
			code: errors.ErrCodeInvalidWorkbook,
		},
		{
			name: "invalid merge bounds",
			body: "[[merges]]\nfirst_row = 2\nlast_row = 0\nfirst_col = 0\nlast_col = 0\n",
			code: errors.ErrCodeInvalidRegion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body))
			if err == nil {
				t.Fatal("Parse expected error, got nil")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v (err: %v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.toml")
	if err := os.WriteFile(path, []byte(sampleBook), 0644); err != nil {
		t.Fatal(err)
	}

	book, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if book.Sheet.Row(0) == nil {
		t.Error("loaded sheet missing row 0")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestParseIntegerValue(t *testing.T) {
	book, err := Parse([]byte("[[cells]]\nrow = 0\ncol = 0\nvalue = 42\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got := book.Sheet.Row(0).Cell(0).Text(); got != "42" {
		t.Errorf("integer cell text = %q, want 42", got)
	}
}

func TestParseDefaults(t *testing.T) {
	book, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	s := book.Sheet
	if s.DefaultRowHeight() != sheet.DefaultRowHeight {
		t.Errorf("default row height = %g, want %g", s.DefaultRowHeight(), sheet.DefaultRowHeight)
	}
	if s.DefaultFont().Size != sheet.DefaultFontSize {
		t.Errorf("default font size = %g, want %g", s.DefaultFont().Size, sheet.DefaultFontSize)
	}
}
