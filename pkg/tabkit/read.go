package tabkit

import (
	"fmt"

	"github.com/tabkit/tabkit-go/pkg/tabkit/models"
	"github.com/tabkit/tabkit-go/pkg/tabkit/xlsx"
	"github.com/xuri/excelize/v2"
)

// ReadTable reads one worksheet from an Excel file into a normalized table:
// decode, locate the header row, slice the grid at it, and reconcile the
// columns when a mapping is configured.
func ReadTable(path string, opts Options) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadTableFrom(f, opts)
}

// ReadTableFrom is ReadTable over an already-open workbook.
func ReadTableFrom(f *excelize.File, opts Options) (*models.Table, error) {
	decOpts := xlsx.DecodeOptions{
		Sheet:           opts.Sheet,
		SheetIndex:      opts.SheetIndex,
		VisibleRowsOnly: opts.VisibleRowsOnly,
		DropEmptyRows:   opts.DropEmptyRows,
		DropEmptyCols:   opts.DropEmptyCols,
	}
	sheet, err := xlsx.ResolveSheet(f, decOpts)
	if err != nil {
		return nil, err
	}
	grid, err := xlsx.DecodeGrid(f, sheet, decOpts)
	if err != nil {
		return nil, err
	}

	headerRow := LocateHeaderRow(grid, opts.Locate)
	table := sliceAtHeader(grid, headerRow)
	table.Sheet = sheet

	if opts.ShouldRaiseIfEmpty() && len(table.Rows) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyTable, sheet)
	}

	if len(opts.Mapping) > 0 || len(opts.Reconcile.Required) > 0 {
		rec, err := ReconcileColumns(table.Columns, opts.Mapping, opts.Reconcile)
		if err != nil {
			return nil, err
		}
		table.Columns = rec.Apply(table.Columns)
		table.Reconciliation = rec
	}

	return table, nil
}

// sliceAtHeader splits a grid into column labels and the data rows beneath
// them. Labels are the rendered cell values of the header row; data rows are
// shared with the grid, not copied.
func sliceAtHeader(grid models.Grid, headerRow int) *models.Table {
	table := &models.Table{HeaderRow: headerRow}
	if headerRow >= len(grid) {
		return table
	}

	header := grid[headerRow]
	table.Columns = make([]string, len(header))
	for i, cell := range header {
		table.Columns[i] = cell.String()
	}
	table.Rows = grid[headerRow+1:]
	return table
}
