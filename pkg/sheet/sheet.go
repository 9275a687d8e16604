// Package sheet provides the in-memory document store the fitting engine
// reads and mutates: rows of cells, column widths, a font registry, and the
// merged-region list.
//
// The store is deliberately small. It holds already-formatted display text;
// formula evaluation, typed values, and file-format persistence belong to
// whatever populated it. The only mutation the fitting engine performs is
// row heights (and lazily creating rows a merged region spans).
//
// Sheets are not safe for concurrent use; callers serialize access.
package sheet

import "slices"

// Default geometry for rows and columns a caller never configured.
const (
	// DefaultRowHeight is the height in points of a freshly created row.
	DefaultRowHeight = 15.0

	// DefaultColumnWidth is the width in pixels of an unconfigured column,
	// roughly 8.4 characters of an 11pt default font.
	DefaultColumnWidth = 64.0
)

// Sheet is a sparse grid of rows plus the registries the fitting engine
// consults: column widths, fonts, and merged regions.
type Sheet struct {
	rows             map[int]*Row
	colWidths        map[int]float64
	defaultRowHeight float64
	defaultColWidth  float64
	fonts            []Font
	defaultFont      FontRef
	regions          []Region
}

// New creates an empty sheet with default geometry and a regular 11pt
// default font registered as reference 0.
func New() *Sheet {
	return &Sheet{
		rows:             make(map[int]*Row),
		colWidths:        make(map[int]float64),
		defaultRowHeight: DefaultRowHeight,
		defaultColWidth:  DefaultColumnWidth,
		fonts:            []Font{{Size: DefaultFontSize}},
		defaultFont:      0,
	}
}

// Row returns the row at the given index, or nil if it was never created.
func (s *Sheet) Row(index int) *Row {
	return s.rows[index]
}

// EnsureRow returns the row at the given index, creating it at the default
// row height if necessary.
func (s *Sheet) EnsureRow(index int) *Row {
	if r, ok := s.rows[index]; ok {
		return r
	}
	r := &Row{index: index, height: s.defaultRowHeight, cells: make(map[int]*Cell)}
	s.rows[index] = r
	return r
}

// RowIndices returns the indices of all existing rows in ascending order.
func (s *Sheet) RowIndices() []int {
	out := make([]int, 0, len(s.rows))
	for i := range s.rows {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// DefaultRowHeight returns the height assigned to lazily created rows.
func (s *Sheet) DefaultRowHeight() float64 { return s.defaultRowHeight }

// SetDefaultRowHeight changes the height assigned to lazily created rows.
func (s *Sheet) SetDefaultRowHeight(h float64) { s.defaultRowHeight = h }

// ColumnWidth returns the stored width of a column in pixels, or the default
// column width if the column was never configured.
func (s *Sheet) ColumnWidth(col int) float64 {
	if w, ok := s.colWidths[col]; ok {
		return w
	}
	return s.defaultColWidth
}

// SetColumnWidth stores a column width in pixels.
func (s *Sheet) SetColumnWidth(col int, px float64) {
	s.colWidths[col] = px
}

// Merge registers a merged region. Invalid bounds and overlaps with existing
// regions are rejected; a degenerate single-cell region is silently ignored.
func (s *Sheet) Merge(r Region) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.IsDegenerate() {
		return nil
	}
	for _, existing := range s.regions {
		if r.Overlaps(existing) {
			return errRegionOverlap(r, existing)
		}
	}
	s.regions = append(s.regions, r)
	return nil
}

// Regions returns all merged regions in registration order.
func (s *Sheet) Regions() []Region {
	return s.regions
}

// RegionsTouchingRow returns the merged regions that intersect the given
// row, in registration order.
func (s *Sheet) RegionsTouchingRow(row int) []Region {
	var out []Region
	for _, r := range s.regions {
		if r.TouchesRow(row) {
			out = append(out, r)
		}
	}
	return out
}

// RegionAt returns the merged region containing the cell at (row, col).
// At most one region can contain a cell since overlaps are rejected.
func (s *Sheet) RegionAt(row, col int) (Region, bool) {
	for _, r := range s.regions {
		if r.Contains(row, col) {
			return r, true
		}
	}
	return Region{}, false
}
