package tabkit

import (
	"errors"
	"fmt"
)

// ErrEmptyTable indicates no data rows survived decoding and slicing.
var ErrEmptyTable = errors.New("no rows found in sheet")

// AmbiguousMappingError indicates one alias is claimed by two different
// canonical column names. It is detected from the mapping alone, before any
// observed column is examined.
type AmbiguousMappingError struct {
	Alias  string
	First  string
	Second string
}

func (e *AmbiguousMappingError) Error() string {
	return fmt.Sprintf("ambiguous mapping: %q maps to both %q and %q", e.Alias, e.First, e.Second)
}

// DuplicateTargetError indicates two observed columns resolve to the same
// canonical column name.
type DuplicateTargetError struct {
	Canonical string
	First     string
	Second    string
}

func (e *DuplicateTargetError) Error() string {
	return fmt.Sprintf("columns %q and %q both map to %q", e.First, e.Second, e.Canonical)
}
