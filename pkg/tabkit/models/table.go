package models

// Table is a grid sliced at its header row: column labels plus the data rows
// beneath them.
type Table struct {
	// Sheet is the worksheet the table was read from.
	Sheet string `json:"sheet"`
	// HeaderRow is the 0-based index of the header row in the decoded grid.
	HeaderRow int `json:"header_row"`
	// Columns holds the column labels, after any reconciliation renames.
	Columns []string `json:"columns"`
	// Rows holds the data rows below the header.
	Rows []Row `json:"rows"`
	// Reconciliation records the rename plan and missing columns when a
	// column mapping was applied.
	Reconciliation *Reconciliation `json:"reconciliation,omitempty"`
}

// Reorder moves the named columns to the front of the table, in the order
// given. Names not present are ignored; the remaining columns follow in
// their original order. Rows are rebuilt to match, so the underlying grid
// is left untouched.
func (t *Table) Reorder(order []string) {
	index := make([]int, 0, len(t.Columns))
	taken := make([]bool, len(t.Columns))
	for _, name := range order {
		for i, col := range t.Columns {
			if !taken[i] && col == name {
				index = append(index, i)
				taken[i] = true
				break
			}
		}
	}
	if len(index) == 0 {
		return
	}
	for i := range t.Columns {
		if !taken[i] {
			index = append(index, i)
		}
	}

	columns := make([]string, len(index))
	for j, i := range index {
		columns[j] = t.Columns[i]
	}
	t.Columns = columns

	rows := make([]Row, len(t.Rows))
	for r, row := range t.Rows {
		cells := make(Row, len(index))
		for j, i := range index {
			cells[j] = row.Cell(i)
		}
		rows[r] = cells
	}
	t.Rows = rows
}
