// Package fit implements the row-height fitting engine: estimating the
// vertical space a cell's wrapped text needs and stretching stored row
// heights to satisfy it, including rows spanned by merged regions.
//
// All heights are deterministic approximations derived from character counts
// and font metrics. The engine performs no I/O, holds no locks, and mutates
// nothing but row heights (plus lazily creating rows a merged region spans).
// Callers stretching multiple rows of one sheet must do so sequentially, in
// ascending row order, so merged-region corrections compose.
package fit

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/rowfit/rowfit/pkg/sheet"
)

// Geometry constants for the height approximation. These are tuned for the
// usual spreadsheet defaults (11pt font, 64px columns); they intentionally
// overshoot slightly rather than clip.
const (
	// lineHeightFactor converts a font size into the height of one
	// rendered text line.
	lineHeightFactor = 1.4

	// verticalMarginFactor adds cell padding above and below the text,
	// expressed as a fraction of the default font size.
	verticalMarginFactor = 0.2

	// widthMarginFactor shrinks the usable character budget: rendered
	// glyphs never fill the nominal column width exactly.
	widthMarginFactor = 0.9

	// boldWidthFactor and italicWidthFactor inflate glyph widths for
	// styled fonts. The factors are additive.
	boldWidthFactor   = 0.10
	italicWidthFactor = 0.05

	// pixelsPerChar converts stored column widths (pixels) into character
	// units of the default font.
	pixelsPerChar = 7.0

	// minWrapWidthChars is the floor for the usable wrap width, so extreme
	// indentation or tiny columns still wrap instead of failing.
	minWrapWidthChars = 1.0
)

// Options configures a Fitter.
type Options struct {
	// Proportional selects the merged-region growth policy: when true, every
	// row a winning region spans grows by the same multiplier; when false,
	// the whole shortfall is absorbed by the region's first row.
	Proportional bool

	// Logger receives per-row debug traces. Nil disables logging.
	Logger *log.Logger
}

// Fitter computes and applies row heights for a sheet.
// A Fitter is stateless between calls and may be reused across sheets.
type Fitter struct {
	proportional bool
	logger       *log.Logger
}

// New creates a Fitter with the given options.
func New(opts Options) *Fitter {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Fitter{
		proportional: opts.Proportional,
		logger:       logger,
	}
}

// StretchSheet stretches every existing row of the sheet to its content, in
// ascending row order. Row order matters: proportional merged-region growth
// builds on the heights earlier rows settled on.
func (f *Fitter) StretchSheet(s *sheet.Sheet) error {
	for _, idx := range s.RowIndices() {
		if err := f.StretchRow(s, idx); err != nil {
			return err
		}
	}
	return nil
}
