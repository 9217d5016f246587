package tabkit

import (
	"sort"
	"strings"

	"github.com/tabkit/tabkit-go/pkg/tabkit/models"
	"github.com/tabkit/tabkit-go/pkg/tabkit/norm"
)

// ReconcileColumns aligns observed column names to a canonical schema. Each
// observed name is normalized (trimmed, punctuation stripped, case folded,
// per opts) and looked up among the mapping's aliases; matches produce a
// rename plan. Reconciliation is partial by design: observed columns with no
// alias match are left untouched, and only true conflicts are errors.
//
// Every canonical name also matches itself, so a column already carrying its
// canonical name claims it without a rename.
//
// It fails with *AmbiguousMappingError when one alias is claimed by two
// canonical names, and with *DuplicateTargetError when two observed columns
// resolve to the same canonical name. The result is a pure function of the
// inputs; mapping key order does not affect it.
func ReconcileColumns(observed []string, mapping models.ColumnMapping, opts ReconcileOptions) (*models.Reconciliation, error) {
	foldCase := opts.ShouldFoldCase()

	reverse, err := buildReverseIndex(mapping, opts.Required, foldCase)
	if err != nil {
		return nil, err
	}

	normOpts := norm.Options{
		FoldCase:         foldCase,
		StripPunctuation: opts.ShouldStripPunctuation(),
		Replacement:      opts.Replacement,
	}

	renames := make(map[string]string)
	claimed := make(map[string]string) // canonical name -> observed claimant
	for _, name := range observed {
		canonical, ok := reverse[norm.Normalize(name, normOpts)]
		if !ok {
			continue
		}
		if first, dup := claimed[canonical]; dup {
			return nil, &DuplicateTargetError{Canonical: canonical, First: first, Second: name}
		}
		claimed[canonical] = name
		if name != canonical {
			renames[name] = canonical
		}
	}

	missing := make([]string, 0)
	for _, req := range opts.Required {
		if _, ok := claimed[req]; !ok {
			missing = append(missing, req)
		}
	}
	sort.Strings(missing)

	return &models.Reconciliation{Renames: renames, Missing: missing}, nil
}

// buildReverseIndex inverts the mapping into normalized alias -> canonical
// name. Canonical names are visited in sorted order so the error reported
// for an ambiguous alias is deterministic. Each canonical name, including
// required names absent from the mapping, is added as an alias of itself
// afterwards, without displacing an explicit alias.
func buildReverseIndex(mapping models.ColumnMapping, required []string, foldCase bool) (map[string]string, error) {
	canonicals := make([]string, 0, len(mapping))
	for canonical := range mapping {
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals)

	reverse := make(map[string]string)
	for _, canonical := range canonicals {
		for _, alias := range mapping[canonical] {
			key := aliasKey(alias, foldCase)
			if prior, ok := reverse[key]; ok && prior != canonical {
				return nil, &AmbiguousMappingError{Alias: alias, First: prior, Second: canonical}
			}
			reverse[key] = canonical
		}
	}
	for _, canonical := range append(canonicals, required...) {
		key := aliasKey(canonical, foldCase)
		if _, ok := reverse[key]; !ok {
			reverse[key] = canonical
		}
	}
	return reverse, nil
}

func aliasKey(alias string, foldCase bool) string {
	if foldCase {
		return norm.Fold(alias)
	}
	return strings.TrimSpace(alias)
}
