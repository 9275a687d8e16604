// Package workbook loads TOML workbook definitions and builds the in-memory
// sheet the fitting engine operates on.
//
// A workbook definition is the data-entry layer the engine itself excludes:
// it names fonts, column widths, cell contents (text or typed values), and
// merged regions. Typed values are formatted into display text here; the
// engine only ever sees final strings.
//
// # Format
//
//	name = "Quarterly report"
//	default_row_height = 15.0
//	default_font = "body"
//
//	[fonts.body]
//	size = 11.0
//
//	[fonts.heading]
//	size = 14.0
//	bold = true
//
//	[[columns]]
//	index = 0
//	width = 120.0 # pixels
//
//	[[cells]]
//	row = 0
//	col = 0
//	text = "Revenue by region"
//	font = "heading"
//	wrap = true
//
//	[[merges]]
//	first_row = 0
//	last_row = 1
//	first_col = 0
//	last_col = 3
package workbook

import (
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/rowfit/rowfit/pkg/errors"
	"github.com/rowfit/rowfit/pkg/sheet"
)

// Book is a loaded workbook: a named sheet ready for fitting.
type Book struct {
	Name  string
	Sheet *sheet.Sheet
}

// definition mirrors the TOML document structure.
type definition struct {
	Name             string             `toml:"name"`
	DefaultRowHeight float64            `toml:"default_row_height"`
	DefaultFont      string             `toml:"default_font"`
	Fonts            map[string]fontDef `toml:"fonts"`
	Columns          []columnDef        `toml:"columns"`
	Cells            []cellDef          `toml:"cells"`
	Merges           []mergeDef         `toml:"merges"`
}

type mergeDef struct {
	FirstRow int `toml:"first_row"`
	LastRow  int `toml:"last_row"`
	FirstCol int `toml:"first_col"`
	LastCol  int `toml:"last_col"`
}

type fontDef struct {
	Size   float64 `toml:"size"`
	Bold   bool    `toml:"bold"`
	Italic bool    `toml:"italic"`
}

type columnDef struct {
	Index int     `toml:"index"`
	Width float64 `toml:"width"`
}

type cellDef struct {
	Row    int    `toml:"row"`
	Col    int    `toml:"col"`
	Text   string `toml:"text"`
	Value  any    `toml:"value"`
	Font   string `toml:"font"`
	Wrap   bool   `toml:"wrap"`
	Indent int    `toml:"indent"`
}

// Load reads a workbook definition from a TOML file.
func Load(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "workbook %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidWorkbook, err, "read %s", path)
	}
	return Parse(data)
}

// Parse builds a workbook from TOML bytes.
func Parse(data []byte) (*Book, error) {
	var def definition
	if err := toml.Unmarshal(data, &def); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidWorkbook, err, "parse workbook")
	}

	if def.Name != "" {
		if err := errors.ValidateSheetName(def.Name); err != nil {
			return nil, err
		}
	}

	s := sheet.New()
	if def.DefaultRowHeight > 0 {
		s.SetDefaultRowHeight(def.DefaultRowHeight)
	}

	fontRefs := make(map[string]sheet.FontRef, len(def.Fonts))
	for name, fd := range def.Fonts {
		ref, err := s.AddFont(sheet.Font{Size: fd.Size, Bold: fd.Bold, Italic: fd.Italic})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidWorkbook, err, "font %q", name)
		}
		fontRefs[name] = ref
	}

	if def.DefaultFont != "" {
		ref, ok := fontRefs[def.DefaultFont]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidWorkbook, "default font %q is not defined", def.DefaultFont)
		}
		if err := s.SetDefaultFont(ref); err != nil {
			return nil, err
		}
	}

	for _, cd := range def.Columns {
		if cd.Index < 0 {
			return nil, errors.New(errors.ErrCodeInvalidWorkbook, "column index must be non-negative, got %d", cd.Index)
		}
		if cd.Width <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidWorkbook, "column %d width must be positive, got %g", cd.Index, cd.Width)
		}
		s.SetColumnWidth(cd.Index, cd.Width)
	}

	for i, cd := range def.Cells {
		if cd.Row < 0 || cd.Col < 0 {
			return nil, errors.New(errors.ErrCodeInvalidWorkbook, "cell #%d position must be non-negative, got (%d,%d)", i, cd.Row, cd.Col)
		}

		text, err := cellText(cd)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidWorkbook, err, "cell (%d,%d)", cd.Row, cd.Col)
		}

		style := sheet.Style{Wrap: cd.Wrap, Indent: cd.Indent}
		if cd.Font != "" {
			ref, ok := fontRefs[cd.Font]
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidWorkbook, "cell (%d,%d) references undefined font %q", cd.Row, cd.Col, cd.Font)
			}
			style.Font = ref
		}

		s.EnsureRow(cd.Row).SetCell(cd.Col, text, style)
	}

	for _, m := range def.Merges {
		r := sheet.Region{FirstRow: m.FirstRow, LastRow: m.LastRow, FirstCol: m.FirstCol, LastCol: m.LastCol}
		if err := s.Merge(r); err != nil {
			return nil, err
		}
	}

	return &Book{Name: def.Name, Sheet: s}, nil
}

// cellText resolves a cell's display text from either the text field or a
// typed value. Formula evaluation belongs to a real spreadsheet application;
// here a value is simply formatted.
func cellText(cd cellDef) (string, error) {
	if cd.Value == nil {
		return cd.Text, nil
	}
	if cd.Text != "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "text and value are mutually exclusive")
	}

	switch v := cd.Value.(type) {
	case string:
		return v, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		if v {
			return "TRUE", nil
		}
		return "FALSE", nil
	case time.Time:
		return v.Format("2006-01-02"), nil
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "unsupported value type %T", cd.Value)
	}
}
