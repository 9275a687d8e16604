package fit

import (
	"github.com/rowfit/rowfit/pkg/errors"
	"github.com/rowfit/rowfit/pkg/sheet"
)

// ResolveRowHeight returns the minimum height in points the row needs to
// avoid clipping any cell's content, given the current heights of sibling
// rows in any spanning merges. The result is never below the row's stored
// height.
//
// With ignoreMerges set, every cell is measured against its own column width
// only. Otherwise a cell inside a multi-row merged region is measured
// against the region's summed width, and the stored (or default) heights of
// the rows after the region's first row are subtracted: the remainder is the
// requirement attributable to the first row alone.
//
// The row must exist; a missing row is a caller-visible error.
func (f *Fitter) ResolveRowHeight(s *sheet.Sheet, rowIdx int, ignoreMerges bool) (float64, error) {
	row := s.Row(rowIdx)
	if row == nil {
		return 0, errors.New(errors.ErrCodeRowNotFound, "row %d does not exist", rowIdx)
	}

	height := row.Height()
	for _, c := range row.Cells() {
		var region *sheet.Region
		if !ignoreMerges {
			if r, ok := s.RegionAt(rowIdx, c.Column()); ok {
				region = &r
			}
		}

		h, err := f.estimateCellHeight(s, c, cellChars(s, c, region))
		if err != nil {
			return 0, err
		}
		if region != nil && region.SpansRows() {
			h -= f.trailingHeightSum(s, *region)
		}
		if h > height {
			height = h
		}
	}
	return height, nil
}

// trailingHeightSum sums the current heights of every region row after the
// first, substituting the sheet default for rows that do not exist yet.
// It never creates rows.
func (f *Fitter) trailingHeightSum(s *sheet.Sheet, r sheet.Region) float64 {
	sum := 0.0
	for i := r.FirstRow + 1; i <= r.LastRow; i++ {
		if row := s.Row(i); row != nil {
			sum += row.Height()
		} else {
			sum += s.DefaultRowHeight()
		}
	}
	return sum
}
