// Package xlsx decodes Excel worksheets into tabkit grids. It owns all
// excelize handling: sheet selection, cell typing, and visibility filtering,
// so the core scan and reconcile logic stays file-format independent.
package xlsx

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/tabkit/tabkit-go/pkg/tabkit/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetSelector indicates a sheet name and a sheet index were both
// supplied; the two selectors are mutually exclusive.
var ErrSheetSelector = errors.New("sheet name and sheet index cannot both be specified")

// ErrSheetIndex indicates a sheet index outside the workbook's sheet list.
var ErrSheetIndex = errors.New("sheet index out of range")

// ErrNoSheets indicates a workbook with no worksheets.
var ErrNoSheets = errors.New("workbook contains no sheets")

// SheetNotFoundError indicates a requested sheet name does not exist in the
// workbook.
type SheetNotFoundError struct {
	Sheet string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found in workbook", e.Sheet)
}

// DecodeOptions configures grid decoding.
type DecodeOptions struct {
	// Sheet selects a worksheet by name. Mutually exclusive with
	// SheetIndex; neither set selects the first sheet.
	Sheet string
	// SheetIndex selects a worksheet by 0-based index.
	SheetIndex *int
	// VisibleRowsOnly skips rows hidden by filters or manual hiding.
	VisibleRowsOnly bool
	// DropEmptyRows removes all-blank rows from the decoded grid.
	DropEmptyRows bool
	// DropEmptyCols removes all-blank columns from the decoded grid.
	DropEmptyCols bool
	// MaxRows caps how many rows are decoded. Zero means no cap.
	MaxRows int
}

// ResolveSheet returns the worksheet name selected by opts, validating the
// selector against the open workbook.
func ResolveSheet(f *excelize.File, opts DecodeOptions) (string, error) {
	if opts.Sheet != "" && opts.SheetIndex != nil {
		return "", ErrSheetSelector
	}
	if opts.Sheet != "" {
		idx, err := f.GetSheetIndex(opts.Sheet)
		if err != nil || idx < 0 {
			return "", &SheetNotFoundError{Sheet: opts.Sheet}
		}
		return opts.Sheet, nil
	}
	if opts.SheetIndex != nil {
		name := f.GetSheetName(*opts.SheetIndex)
		if name == "" {
			return "", fmt.Errorf("%w: %d", ErrSheetIndex, *opts.SheetIndex)
		}
		return name, nil
	}
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrNoSheets
	}
	return sheets[0], nil
}

// DecodeGrid reads the named worksheet into a grid of typed cells. Hidden
// rows are filtered out before the grid is returned when VisibleRowsOnly is
// set, so downstream header location only sees what a user sees.
func DecodeGrid(f *excelize.File, sheetName string, opts DecodeOptions) (models.Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	grid := make(models.Grid, 0, len(rows))
	for idx, row := range rows {
		if opts.MaxRows > 0 && len(grid) >= opts.MaxRows {
			break
		}
		if opts.VisibleRowsOnly {
			visible, err := f.GetRowVisible(sheetName, idx+1)
			if err == nil && !visible {
				continue
			}
		}
		cells := make(models.Row, len(row))
		for c, value := range row {
			cells[c] = parseCell(value)
		}
		grid = append(grid, cells)
	}

	if opts.DropEmptyRows {
		grid = dropEmptyRows(grid)
	}
	if opts.DropEmptyCols {
		grid = dropEmptyCols(grid)
	}
	return grid, nil
}

// VisibleSheets returns the names of all non-hidden worksheets, in workbook
// order.
func VisibleSheets(f *excelize.File) []string {
	var visible []string
	for _, name := range f.GetSheetList() {
		v, err := f.GetSheetVisible(name)
		if err == nil && v {
			visible = append(visible, name)
		}
	}
	return visible
}

// parseCell types a formatted cell value. Integers and decimals become
// number cells, TRUE/FALSE become boolean cells, everything else stays text.
// Empty strings are absent: excelize renders unset cells as "".
func parseCell(s string) models.Cell {
	if s == "" {
		return models.AbsentCell()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.NumberCell(float64(i))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.NumberCell(f)
	}
	switch s {
	case "TRUE":
		return models.BoolCell(true)
	case "FALSE":
		return models.BoolCell(false)
	}
	return models.TextCell(s)
}

// dropEmptyRows removes rows whose cells are all blank.
func dropEmptyRows(grid models.Grid) models.Grid {
	out := grid[:0]
	for _, row := range grid {
		if !row.IsBlank() {
			out = append(out, row)
		}
	}
	return out
}

// dropEmptyCols removes columns that are blank in every row.
func dropEmptyCols(grid models.Grid) models.Grid {
	width := grid.Width()
	keep := make([]bool, width)
	kept := 0
	for c := 0; c < width; c++ {
		for _, row := range grid {
			if !row.Cell(c).IsBlank() {
				keep[c] = true
				kept++
				break
			}
		}
	}
	if kept == width {
		return grid
	}

	out := make(models.Grid, len(grid))
	for i, row := range grid {
		cells := make(models.Row, 0, kept)
		for c := 0; c < width && c < len(row); c++ {
			if keep[c] {
				cells = append(cells, row[c])
			}
		}
		out[i] = cells
	}
	return out
}
