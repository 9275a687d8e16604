package fit

import (
	"github.com/rowfit/rowfit/pkg/errors"
	"github.com/rowfit/rowfit/pkg/sheet"
)

// StretchRow raises the row's stored height to fit its content, distributing
// or absorbing merged-region requirements according to the fitter's policy.
// Heights only ever grow; calling StretchRow again with unchanged content
// changes nothing.
//
// Behavior by merge membership:
//   - No merged region touches the row: the row grows to the standalone
//     maximum over its cells.
//   - Regions touch the row but none is anchored here (first row elsewhere):
//     cells outside those regions still raise the row; nothing is
//     distributed into other rows.
//   - The row anchors one or more regions: the region with the largest
//     unmet full-span requirement wins. The shortfall is either absorbed by
//     this row or spread proportionally over every spanned row, depending on
//     Options.Proportional. Rows the winning region spans are created at the
//     sheet default height if missing. Standalone cells in the same row keep
//     acting as a floor on the anchor row's height.
func (f *Fitter) StretchRow(s *sheet.Sheet, rowIdx int) error {
	row := s.Row(rowIdx)
	if row == nil {
		return errors.New(errors.ErrCodeRowNotFound, "row %d does not exist", rowIdx)
	}

	if len(s.RegionsTouchingRow(rowIdx)) == 0 {
		h, err := f.ResolveRowHeight(s, rowIdx, true)
		if err != nil {
			return err
		}
		if h > row.Height() {
			f.logger.Debug("stretch row", "row", rowIdx, "height", h)
			row.SetHeight(h)
		}
		return nil
	}

	// Cells outside any region anchored at this row contribute a plain
	// standalone requirement.
	standalone, err := f.standaloneMax(s, row)
	if err != nil {
		return err
	}

	// Among the regions anchored here whose current total height falls
	// short of their content, the one with the largest requirement wins.
	// Cells are visited in column order, so ties go to the first region
	// encountered.
	var (
		winner     sheet.Region
		winnerNeed float64
		winnerSum  float64
		haveWinner bool
	)
	seen := make(map[sheet.Region]bool)
	for _, c := range row.Cells() {
		region, ok := s.RegionAt(rowIdx, c.Column())
		if !ok || region.FirstRow != rowIdx || seen[region] {
			continue
		}
		seen[region] = true

		need, err := f.estimateCellHeight(s, c, cellChars(s, c, &region))
		if err != nil {
			return err
		}
		sum := f.spanHeightSum(s, region)
		if sum < need && (!haveWinner || need > winnerNeed) {
			winner, winnerNeed, winnerSum, haveWinner = region, need, sum, true
		}
	}

	if !haveWinner {
		if standalone > row.Height() {
			f.logger.Debug("stretch row", "row", rowIdx, "height", standalone)
			row.SetHeight(standalone)
		}
		return nil
	}

	if !f.proportional || winnerSum <= 0 {
		// Absorption policy: the anchor row takes the whole shortfall. A
		// taller standalone cell in the same row still sets the floor.
		h := row.Height() + (winnerNeed - winnerSum)
		if standalone > h {
			h = standalone
		}
		f.logger.Debug("stretch merged row", "row", rowIdx, "height", h, "span", winner.LastRow-winner.FirstRow+1)
		row.SetHeight(h)
		return nil
	}

	multiplier := winnerNeed / winnerSum
	if multiplier > 1 {
		f.logger.Debug("stretch merged span", "row", rowIdx, "multiplier", multiplier, "span", winner.LastRow-winner.FirstRow+1)
		for i := winner.FirstRow; i <= winner.LastRow; i++ {
			r := s.EnsureRow(i)
			r.SetHeight(r.Height() * multiplier)
		}
	}
	// Standalone cells never distribute into other rows, so they apply to
	// the anchor row after the span has grown.
	if standalone > row.Height() {
		f.logger.Debug("stretch row", "row", rowIdx, "height", standalone)
		row.SetHeight(standalone)
	}
	return nil
}

// standaloneMax returns the largest isolated height requirement over the
// row's cells, skipping cells inside regions anchored at this row (those are
// handled by the winning-region logic).
func (f *Fitter) standaloneMax(s *sheet.Sheet, row *sheet.Row) (float64, error) {
	max := 0.0
	for _, c := range row.Cells() {
		if region, ok := s.RegionAt(row.Index(), c.Column()); ok && region.FirstRow == row.Index() {
			continue
		}
		h, err := f.estimateCellHeight(s, c, cellChars(s, c, nil))
		if err != nil {
			return 0, err
		}
		if h > max {
			max = h
		}
	}
	return max, nil
}

// spanHeightSum sums the current heights of every row the region spans,
// creating missing rows at the sheet default height. This is the only place
// the engine creates rows.
func (f *Fitter) spanHeightSum(s *sheet.Sheet, r sheet.Region) float64 {
	sum := 0.0
	for i := r.FirstRow; i <= r.LastRow; i++ {
		sum += s.EnsureRow(i).Height()
	}
	return sum
}
