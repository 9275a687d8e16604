package fit

import (
	"github.com/rowfit/rowfit/pkg/sheet"
	"github.com/rowfit/rowfit/pkg/textwrap"
)

// wrapCell breaks a cell's text into display lines for an effective width
// given in character units of the default font.
//
// The usable wrap width scales the effective width by the default-to-cell
// font size ratio (larger fonts fit fewer characters), applies the safety
// margin, subtracts indentation, and divides by the style inflation factor
// for bold/italic glyphs.
func (f *Fitter) wrapCell(s *sheet.Sheet, c *sheet.Cell, effChars float64) ([]string, error) {
	style := c.Style()
	font, err := s.Font(style.Font)
	if err != nil {
		return nil, err
	}
	def := s.DefaultFont()

	scale := def.Size / font.Size
	usable := (effChars*scale*widthMarginFactor - float64(style.Indent)) / styleWidthFactor(font)
	if usable < minWrapWidthChars {
		usable = minWrapWidthChars
	}

	return textwrap.BreakLines(c.Text(), style.Wrap, usable)
}

// estimateCellHeight computes the height in points one cell needs in
// isolation. The result is always at least one line of text plus the
// vertical margin, and never negative.
func (f *Fitter) estimateCellHeight(s *sheet.Sheet, c *sheet.Cell, effChars float64) (float64, error) {
	lines, err := f.wrapCell(s, c, effChars)
	if err != nil {
		return 0, err
	}
	font, err := s.Font(c.Style().Font)
	if err != nil {
		return 0, err
	}

	textHeight := font.Size * float64(len(lines)) * lineHeightFactor
	marginHeight := s.DefaultFont().Size * verticalMarginFactor
	return textHeight + marginHeight, nil
}

// CellLines reports how many display lines the cell renders to at its
// effective width, using the spanned region's width when the cell is merged.
// Used for reporting; the height math lives in estimateCellHeight.
func (f *Fitter) CellLines(s *sheet.Sheet, c *sheet.Cell) (int, error) {
	var region *sheet.Region
	if r, ok := s.RegionAt(c.Row(), c.Column()); ok {
		region = &r
	}
	lines, err := f.wrapCell(s, c, cellChars(s, c, region))
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}

// styleWidthFactor returns the additive width inflation for styled glyphs.
func styleWidthFactor(f sheet.Font) float64 {
	factor := 1.0
	if f.Bold {
		factor += boldWidthFactor
	}
	if f.Italic {
		factor += italicWidthFactor
	}
	return factor
}

// columnChars converts a pixel width into character units.
func columnChars(px float64) float64 {
	return px / pixelsPerChar
}

// cellChars returns the effective character width for a cell: the spanned
// region's summed column widths when the cell is merged, otherwise its own
// column's width.
func cellChars(s *sheet.Sheet, c *sheet.Cell, region *sheet.Region) float64 {
	if region == nil {
		return columnChars(s.ColumnWidth(c.Column()))
	}
	px := 0.0
	for col := region.FirstCol; col <= region.LastCol; col++ {
		px += s.ColumnWidth(col)
	}
	return columnChars(px)
}
