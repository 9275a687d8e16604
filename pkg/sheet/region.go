package sheet

import "github.com/rowfit/rowfit/pkg/errors"

// Region is a merged cell range. All bounds are inclusive and zero-based.
type Region struct {
	FirstRow int `json:"first_row"`
	LastRow  int `json:"last_row"`
	FirstCol int `json:"first_col"`
	LastCol  int `json:"last_col"`
}

// Validate checks the region invariants: non-negative bounds with
// FirstRow ≤ LastRow and FirstCol ≤ LastCol.
func (r Region) Validate() error {
	if r.FirstRow < 0 || r.FirstCol < 0 {
		return errors.New(errors.ErrCodeInvalidRegion, "region bounds must be non-negative: %+v", r)
	}
	if r.FirstRow > r.LastRow {
		return errors.New(errors.ErrCodeInvalidRegion, "region first row %d after last row %d", r.FirstRow, r.LastRow)
	}
	if r.FirstCol > r.LastCol {
		return errors.New(errors.ErrCodeInvalidRegion, "region first column %d after last column %d", r.FirstCol, r.LastCol)
	}
	return nil
}

// IsDegenerate reports whether the region covers a single cell.
// Merging a single cell is a no-op, not an error.
func (r Region) IsDegenerate() bool {
	return r.FirstRow == r.LastRow && r.FirstCol == r.LastCol
}

// SpansRows reports whether the region covers more than one row.
func (r Region) SpansRows() bool {
	return r.LastRow > r.FirstRow
}

// Contains reports whether the cell at (row, col) lies inside the region.
func (r Region) Contains(row, col int) bool {
	return row >= r.FirstRow && row <= r.LastRow && col >= r.FirstCol && col <= r.LastCol
}

// TouchesRow reports whether the region intersects the given row.
func (r Region) TouchesRow(row int) bool {
	return row >= r.FirstRow && row <= r.LastRow
}

// Overlaps reports whether two regions share at least one cell.
func (r Region) Overlaps(o Region) bool {
	return r.FirstRow <= o.LastRow && o.FirstRow <= r.LastRow &&
		r.FirstCol <= o.LastCol && o.FirstCol <= r.LastCol
}

func errRegionOverlap(r, existing Region) error {
	return errors.New(errors.ErrCodeInvalidRegion, "region %+v overlaps existing region %+v", r, existing)
}
