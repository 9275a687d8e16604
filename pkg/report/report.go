// Package report provides the serialization format for fit results.
//
// A Report captures the row heights a fitting pass settled on, plus the
// per-cell line counts that produced them. The format is human-readable
// JSON designed for round-trip fidelity: fit → export → re-import produces
// identical numbers.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rowfit/rowfit/pkg/fit"
	"github.com/rowfit/rowfit/pkg/sheet"
)

// Report is the canonical serialization of one fitting pass over a sheet.
type Report struct {
	Sheet        string   `json:"sheet,omitempty"`
	Proportional bool     `json:"proportional"`
	Rows         []RowFit `json:"rows"`
}

// RowFit records the fitted height of one row.
type RowFit struct {
	Index  int       `json:"index"`
	Height float64   `json:"height"`
	Cells  []CellFit `json:"cells,omitempty"`
}

// CellFit records how many display lines one cell rendered to.
type CellFit struct {
	Column int `json:"column"`
	Lines  int `json:"lines"`
}

// Build assembles a Report from a fitted sheet.
// Rows appear in ascending index order for deterministic output.
func Build(s *sheet.Sheet, f *fit.Fitter, name string, proportional bool) (Report, error) {
	rep := Report{Sheet: name, Proportional: proportional}

	for _, idx := range s.RowIndices() {
		row := s.Row(idx)
		rf := RowFit{Index: idx, Height: row.Height()}
		for _, c := range row.Cells() {
			lines, err := f.CellLines(s, c)
			if err != nil {
				return Report{}, fmt.Errorf("count lines for cell (%d,%d): %w", idx, c.Column(), err)
			}
			rf.Cells = append(rf.Cells, CellFit{Column: c.Column(), Lines: lines})
		}
		rep.Rows = append(rep.Rows, rf)
	}
	return rep, nil
}

// Marshal converts a Report to indented JSON bytes.
func Marshal(r Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(r, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a Report as JSON to an io.Writer.
// Use Marshal for in-memory serialization or WriteFile for files.
func Write(r Report, w io.Writer) error {
	return writeTo(r, w)
}

// WriteFile writes a Report to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(r Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(r, f)
}

// Read decodes a JSON report from an io.Reader.
func Read(rd io.Reader) (Report, error) {
	var r Report
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return Report{}, fmt.Errorf("decode: %w", err)
	}
	return r, nil
}

// ReadFile reads a JSON file and returns the decoded Report.
func ReadFile(path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

func writeTo(r Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
