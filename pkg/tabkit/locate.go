package tabkit

import (
	"github.com/tabkit/tabkit-go/pkg/tabkit/models"
	"github.com/tabkit/tabkit-go/pkg/tabkit/norm"
)

// LocateHeaderRow returns the 0-based index of the row most likely to hold
// column headers. Sheets exported from business systems often carry title or
// banner rows above the real header; the header is distinguished as the first
// row with the widest unbroken run of labeled leading cells.
//
// Each scanned row is scored by ConsecutiveCount. A row that strictly
// improves on the running maximum becomes the candidate. When keywords are
// supplied, the first improving row whose values contain every keyword ends
// the scan immediately; a wider row appearing later is not considered. Ties
// keep the earlier row.
//
// LocateHeaderRow never fails: an empty or all-blank grid yields row 0.
// Whether that row is actually a header is for the caller to judge.
func LocateHeaderRow(grid models.Grid, opts LocateOptions) int {
	maxRows := opts.MaxRows
	if maxRows <= 0 {
		maxRows = DefaultMaxScanRows
	}
	limit := len(grid)
	if maxRows < limit {
		limit = maxRows
	}

	keywords := make([]string, 0, len(opts.Keywords))
	for _, kw := range opts.Keywords {
		keywords = append(keywords, norm.Fold(kw))
	}

	maxConsecutive := 0
	headerRow := 0
	for i := 0; i < limit; i++ {
		count := ConsecutiveCount(grid[i])
		if count <= maxConsecutive {
			continue
		}
		maxConsecutive = count
		headerRow = i
		if len(keywords) > 0 && rowHasKeywords(grid[i], keywords) {
			break
		}
	}
	return headerRow
}

// ConsecutiveCount returns the number of leading non-blank cells in row,
// stopping at the first blank or absent cell. Cells after a gap do not
// count: a header row is a contiguous block of labels starting at column 0.
func ConsecutiveCount(row models.Row) int {
	count := 0
	for _, cell := range row {
		if cell.IsBlank() {
			break
		}
		count++
	}
	return count
}

// rowHasKeywords reports whether the trimmed, case-folded values of row
// contain every keyword. Keywords must already be folded.
func rowHasKeywords(row models.Row, keywords []string) bool {
	values := make(map[string]struct{}, len(row))
	for _, cell := range row {
		if cell.Kind == models.Absent {
			continue
		}
		values[norm.Fold(cell.String())] = struct{}{}
	}
	for _, kw := range keywords {
		if _, ok := values[kw]; !ok {
			return false
		}
	}
	return true
}
