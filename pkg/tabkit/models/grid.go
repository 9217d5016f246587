package models

// Row is an ordered sequence of cells. Rows may be shorter than the widest
// row of their grid; positions past the end read as absent.
type Row []Cell

// Cell returns the cell at position i, or an absent cell when i is past the
// end of the row.
func (r Row) Cell(i int) Cell {
	if i < 0 || i >= len(r) {
		return AbsentCell()
	}
	return r[i]
}

// IsBlank reports whether every cell in the row is blank.
func (r Row) IsBlank() bool {
	for _, c := range r {
		if !c.IsBlank() {
			return false
		}
	}
	return true
}

// Grid is an ordered sequence of rows decoded from one worksheet. A grid is
// read-only for the duration of a locate or reconcile call; nothing in tabkit
// retains a reference to it after returning.
type Grid []Row

// Width returns the length of the widest row.
func (g Grid) Width() int {
	width := 0
	for _, row := range g {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}
