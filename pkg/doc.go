// Package pkg provides the core libraries for rowfit row-height fitting.
//
// # Overview
//
// rowfit renders plain text into a fixed-width character grid (a spreadsheet
// cell) and computes the vertical space the cell needs, then reconciles that
// requirement across rows, including rows spanned by merged regions. The pkg
// directory is organized into:
//
//  1. [textwrap] - Line breaking: text → display lines for a width budget
//  2. [sheet] - In-memory sheet store: rows, cells, fonts, column widths, merges
//  3. [fit] - Height estimation and row stretching (the fitting engine)
//  4. [workbook] - TOML workbook definitions → sheet.Sheet
//  5. [report] - JSON serialization of fit results
//  6. [cache] - File-based result cache for the CLI
//  7. [errors] - Structured errors with machine-readable codes
//
// # Architecture
//
// The typical data flow through rowfit:
//
//	TOML workbook definition
//	         ↓
//	    [workbook] package (build the sheet)
//	         ↓
//	    [fit] package (wrap text, estimate heights, stretch rows)
//	         ↓
//	    [report] package (JSON row-height report)
//
// # Quick Start
//
// Build a sheet and auto-fit its rows:
//
//	import (
//	    "github.com/rowfit/rowfit/pkg/fit"
//	    "github.com/rowfit/rowfit/pkg/sheet"
//	)
//
//	s := sheet.New()
//	row := s.EnsureRow(0)
//	row.SetCell(0, "a long paragraph of text...", sheet.Style{Wrap: true})
//
//	f := fit.New(fit.Options{})
//	if err := f.StretchRow(s, 0); err != nil {
//	    // handle error
//	}
//	fmt.Println(s.Row(0).Height())
//
// Heights are deterministic approximations derived from character counts and
// font metrics; no glyph table or rasterizer is consulted.
//
// [textwrap]: https://pkg.go.dev/github.com/rowfit/rowfit/pkg/textwrap
// [sheet]: https://pkg.go.dev/github.com/rowfit/rowfit/pkg/sheet
// [fit]: https://pkg.go.dev/github.com/rowfit/rowfit/pkg/fit
// [workbook]: https://pkg.go.dev/github.com/rowfit/rowfit/pkg/workbook
// [report]: https://pkg.go.dev/github.com/rowfit/rowfit/pkg/report
// [cache]: https://pkg.go.dev/github.com/rowfit/rowfit/pkg/cache
// [errors]: https://pkg.go.dev/github.com/rowfit/rowfit/pkg/errors
package pkg
