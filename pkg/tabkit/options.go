// Package tabkit normalizes loosely structured spreadsheet data into clean
// tables: it locates the header row inside grids with banner or title rows
// above the real header, and reconciles inconsistently named columns against
// a canonical schema.
package tabkit

import (
	"github.com/tabkit/tabkit-go/pkg/tabkit/models"
)

// DefaultMaxScanRows bounds the header scan when LocateOptions.MaxRows is
// unset.
const DefaultMaxScanRows = 200

// LocateOptions configures LocateHeaderRow.
type LocateOptions struct {
	// MaxRows limits how many leading rows are scanned. Zero or negative
	// means DefaultMaxScanRows. A grid shorter than MaxRows is scanned in
	// full.
	MaxRows int
	// Keywords, when non-empty, marks a row containing every keyword
	// (compared trimmed and case-folded) as a high-confidence header: the
	// first such row that also widens the running maximum ends the scan.
	Keywords []string
}

// DefaultLocateOptions returns locate options with the default scan bound
// and no keywords.
func DefaultLocateOptions() LocateOptions {
	return LocateOptions{MaxRows: DefaultMaxScanRows}
}

// ReconcileOptions configures ReconcileColumns.
type ReconcileOptions struct {
	// StripPunctuation removes punctuation from observed names before
	// matching. If nil, defaults to true.
	StripPunctuation *bool
	// FoldCase matches names case-insensitively. If nil, defaults to true.
	FoldCase *bool
	// Replacement substitutes stripped punctuation runs. Empty removes
	// them.
	Replacement string
	// Required lists canonical names that must be matched; unmatched ones
	// are reported in Reconciliation.Missing.
	Required []string
}

// ShouldStripPunctuation returns whether punctuation stripping is enabled.
func (o ReconcileOptions) ShouldStripPunctuation() bool {
	if o.StripPunctuation != nil {
		return *o.StripPunctuation
	}
	return true
}

// ShouldFoldCase returns whether case folding is enabled.
func (o ReconcileOptions) ShouldFoldCase() bool {
	if o.FoldCase != nil {
		return *o.FoldCase
	}
	return true
}

// Options configures ReadTable.
type Options struct {
	// Sheet selects a worksheet by name. Mutually exclusive with
	// SheetIndex; neither set reads the first sheet.
	Sheet string
	// SheetIndex selects a worksheet by 0-based index.
	SheetIndex *int
	// VisibleRowsOnly drops rows hidden by filters before the grid is
	// scanned.
	VisibleRowsOnly bool
	// DropEmptyRows removes all-blank data rows from the result.
	DropEmptyRows bool
	// DropEmptyCols removes all-blank columns from the result.
	DropEmptyCols bool
	// RaiseIfEmpty fails with ErrEmptyTable when no data rows remain.
	// If nil, defaults to true.
	RaiseIfEmpty *bool
	// Locate configures the header row scan.
	Locate LocateOptions
	// Mapping, when non-empty, reconciles the header against a canonical
	// schema and renames matched columns.
	Mapping models.ColumnMapping
	// Reconcile configures the mapping match and required columns.
	Reconcile ReconcileOptions
}

// DefaultOptions returns read options for the first sheet with default
// header location and no column mapping.
func DefaultOptions() Options {
	return Options{Locate: DefaultLocateOptions()}
}

// ShouldRaiseIfEmpty returns whether an empty result is an error.
func (o Options) ShouldRaiseIfEmpty() bool {
	if o.RaiseIfEmpty != nil {
		return *o.RaiseIfEmpty
	}
	return true
}
