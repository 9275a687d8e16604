package sheet

import "slices"

// Style is the read-only style snapshot a cell carries. The fitting engine
// consumes it and never mutates it.
type Style struct {
	Wrap   bool    // wrap text at the column width
	Indent int     // indentation in character units
	Font   FontRef // font reference, resolved through the sheet
}

// Cell holds the displayed text of one cell. Formula evaluation and typed
// value formatting happen before the cell is populated; the fitting engine
// only ever sees the final string.
type Cell struct {
	row   int
	col   int
	text  string
	style Style
}

// Row returns the cell's zero-based row index.
func (c *Cell) Row() int { return c.row }

// Column returns the cell's zero-based column index.
func (c *Cell) Column() int { return c.col }

// Text returns the displayed text.
func (c *Cell) Text() string { return c.text }

// Style returns the cell's style snapshot.
func (c *Cell) Style() Style { return c.style }

// Row is an ordered-by-index collection of cells with a mutable height.
type Row struct {
	index  int
	height float64
	cells  map[int]*Cell
}

// Index returns the zero-based row index.
func (r *Row) Index() int { return r.index }

// Height returns the row height in points.
func (r *Row) Height() float64 { return r.height }

// SetHeight sets the row height in points.
func (r *Row) SetHeight(h float64) { r.height = h }

// Cell returns the cell at the given column, or nil if the column is empty.
func (r *Row) Cell(col int) *Cell {
	return r.cells[col]
}

// SetCell stores text and style at the given column, replacing any existing
// cell, and returns the cell.
func (r *Row) SetCell(col int, text string, style Style) *Cell {
	c := &Cell{row: r.index, col: col, text: text, style: style}
	r.cells[col] = c
	return c
}

// Cells returns the row's cells in ascending column order.
func (r *Row) Cells() []*Cell {
	cols := make([]int, 0, len(r.cells))
	for col := range r.cells {
		cols = append(cols, col)
	}
	slices.Sort(cols)

	out := make([]*Cell, len(cols))
	for i, col := range cols {
		out[i] = r.cells[col]
	}
	return out
}
