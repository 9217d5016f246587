package xlsx

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/tabkit/tabkit-go/pkg/tabkit/models"
	"github.com/xuri/excelize/v2"
)

// saveWorkbook writes f to a temp file and reopens it, so tests decode what
// excelize actually persists.
func saveWorkbook(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f.Close()

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestDecodeGridTypesCells(t *testing.T) {
	f := excelize.NewFile()
	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A3", "Text")
	f.SetCellValue(sheetName, "B3", true)

	f2 := saveWorkbook(t, f)

	grid, err := DecodeGrid(f2, sheetName, DecodeOptions{})
	if err != nil {
		t.Fatalf("DecodeGrid failed: %v", err)
	}

	if len(grid) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(grid))
	}
	if got := grid[0].Cell(0); got != models.TextCell("Header1") {
		t.Errorf("Expected text Header1, got %+v", got)
	}
	if got := grid[1].Cell(0); got != models.NumberCell(100) {
		t.Errorf("Expected number 100, got %+v", got)
	}
	if got := grid[1].Cell(1); got != models.NumberCell(200.5) {
		t.Errorf("Expected number 200.5, got %+v", got)
	}
	if got := grid[2].Cell(1); got != models.BoolCell(true) {
		t.Errorf("Expected bool true, got %+v", got)
	}
}

func TestDecodeGridSkipsHiddenRows(t *testing.T) {
	f := excelize.NewFile()
	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Name")
	f.SetCellValue(sheetName, "A2", "hidden")
	f.SetCellValue(sheetName, "A3", "visible")
	if err := f.SetRowVisible(sheetName, 2, false); err != nil {
		t.Fatalf("SetRowVisible failed: %v", err)
	}

	f2 := saveWorkbook(t, f)

	grid, err := DecodeGrid(f2, sheetName, DecodeOptions{VisibleRowsOnly: true})
	if err != nil {
		t.Fatalf("DecodeGrid failed: %v", err)
	}
	if len(grid) != 2 {
		t.Fatalf("Expected 2 visible rows, got %d", len(grid))
	}
	if got := grid[1].Cell(0); got != models.TextCell("visible") {
		t.Errorf("Expected row after hidden row, got %+v", got)
	}

	// Without the filter the hidden row is decoded.
	grid, err = DecodeGrid(f2, sheetName, DecodeOptions{})
	if err != nil {
		t.Fatalf("DecodeGrid failed: %v", err)
	}
	if len(grid) != 3 {
		t.Errorf("Expected 3 rows without filtering, got %d", len(grid))
	}
}

func TestDecodeGridMaxRows(t *testing.T) {
	f := excelize.NewFile()
	sheetName := "Sheet1"
	for i := 1; i <= 10; i++ {
		cell, _ := excelize.CoordinatesToCellName(1, i)
		f.SetCellValue(sheetName, cell, i)
	}

	f2 := saveWorkbook(t, f)

	grid, err := DecodeGrid(f2, sheetName, DecodeOptions{MaxRows: 4})
	if err != nil {
		t.Fatalf("DecodeGrid failed: %v", err)
	}
	if len(grid) != 4 {
		t.Errorf("Expected 4 rows, got %d", len(grid))
	}
}

func TestDecodeGridDropEmptyRows(t *testing.T) {
	f := excelize.NewFile()
	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Name")
	// Row 2 left empty.
	f.SetCellValue(sheetName, "A3", "Jane")

	f2 := saveWorkbook(t, f)

	grid, err := DecodeGrid(f2, sheetName, DecodeOptions{DropEmptyRows: true})
	if err != nil {
		t.Fatalf("DecodeGrid failed: %v", err)
	}
	if len(grid) != 2 {
		t.Fatalf("Expected 2 rows after dropping, got %d", len(grid))
	}
	if got := grid[1].Cell(0); got != models.TextCell("Jane") {
		t.Errorf("Expected Jane, got %+v", got)
	}
}

func TestDecodeGridDropEmptyCols(t *testing.T) {
	f := excelize.NewFile()
	sheetName := "Sheet1"
	// Column B is blank in every row.
	f.SetCellValue(sheetName, "A1", "Name")
	f.SetCellValue(sheetName, "C1", "City")
	f.SetCellValue(sheetName, "A2", "Jane")
	f.SetCellValue(sheetName, "C2", "LA")

	f2 := saveWorkbook(t, f)

	grid, err := DecodeGrid(f2, sheetName, DecodeOptions{DropEmptyCols: true})
	if err != nil {
		t.Fatalf("DecodeGrid failed: %v", err)
	}
	if len(grid[0]) != 2 {
		t.Fatalf("Expected 2 columns after dropping, got %d", len(grid[0]))
	}
	if got := grid[0].Cell(1); got != models.TextCell("City") {
		t.Errorf("Expected City in column 1, got %+v", got)
	}
	if got := grid[1].Cell(1); got != models.TextCell("LA") {
		t.Errorf("Expected LA in column 1, got %+v", got)
	}
}

func TestResolveSheetDefaultsToFirst(t *testing.T) {
	f := excelize.NewFile()
	f.NewSheet("Data")

	name, err := ResolveSheet(f, DecodeOptions{})
	if err != nil {
		t.Fatalf("ResolveSheet failed: %v", err)
	}
	if name != "Sheet1" {
		t.Errorf("Expected Sheet1, got %q", name)
	}
}

func TestResolveSheetByIndex(t *testing.T) {
	f := excelize.NewFile()
	f.NewSheet("Data")

	idx := 1
	name, err := ResolveSheet(f, DecodeOptions{SheetIndex: &idx})
	if err != nil {
		t.Fatalf("ResolveSheet failed: %v", err)
	}
	if name != "Data" {
		t.Errorf("Expected Data, got %q", name)
	}

	out := 5
	_, err = ResolveSheet(f, DecodeOptions{SheetIndex: &out})
	if !errors.Is(err, ErrSheetIndex) {
		t.Errorf("Expected ErrSheetIndex, got %v", err)
	}
}

func TestResolveSheetSelectorConflict(t *testing.T) {
	f := excelize.NewFile()
	idx := 0
	_, err := ResolveSheet(f, DecodeOptions{Sheet: "Sheet1", SheetIndex: &idx})
	if !errors.Is(err, ErrSheetSelector) {
		t.Errorf("Expected ErrSheetSelector, got %v", err)
	}
}

func TestResolveSheetNotFound(t *testing.T) {
	f := excelize.NewFile()
	_, err := ResolveSheet(f, DecodeOptions{Sheet: "Missing"})

	var notFound *SheetNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected SheetNotFoundError, got %v", err)
	}
	if notFound.Sheet != "Missing" {
		t.Errorf("Expected sheet name Missing, got %q", notFound.Sheet)
	}
}

func TestVisibleSheets(t *testing.T) {
	f := excelize.NewFile()
	f.NewSheet("Hidden")
	f.NewSheet("Shown")
	if err := f.SetSheetVisible("Hidden", false); err != nil {
		t.Fatalf("SetSheetVisible failed: %v", err)
	}

	f2 := saveWorkbook(t, f)

	visible := VisibleSheets(f2)
	if len(visible) != 2 {
		t.Fatalf("Expected 2 visible sheets, got %v", visible)
	}
	if visible[0] != "Sheet1" || visible[1] != "Shown" {
		t.Errorf("Unexpected visible sheets: %v", visible)
	}
}
