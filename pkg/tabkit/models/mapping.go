package models

// ColumnMapping maps a canonical column name to the alias spellings accepted
// for it. Aliases are compared case-insensitively; an alias claimed by two
// different canonical names is rejected at reconciliation time.
type ColumnMapping map[string][]string

// Reconciliation is the outcome of aligning observed column names to a
// canonical schema: a rename plan plus the required canonical names that no
// observed column resolved to.
type Reconciliation struct {
	// Renames maps original column name to canonical name. Only columns
	// that actually change are listed.
	Renames map[string]string `json:"renames"`
	// Missing lists required canonical names with no observed column,
	// sorted for stable output.
	Missing []string `json:"missing"`
}

// Apply returns a copy of names with the rename plan applied. Names outside
// the plan are passed through unchanged.
func (r *Reconciliation) Apply(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		if canonical, ok := r.Renames[name]; ok {
			out[i] = canonical
		} else {
			out[i] = name
		}
	}
	return out
}
