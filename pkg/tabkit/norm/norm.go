// Package norm canonicalizes text labels for comparison: trimming,
// Unicode case folding, and punctuation folding. It is shared by the header
// locator (keyword matching) and the column reconciler (name matching).
package norm

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// ErrNotText indicates a value that is not text was passed where a text
// label was expected. Empty text is valid and is not this error.
var ErrNotText = errors.New("input must be text")

// punctRun matches a maximal run of characters that are neither word
// content (Unicode letter, digit, underscore) nor whitespace. Hyphens are
// punctuation; underscores are not.
var punctRun = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)

// Options configures Normalize.
type Options struct {
	// FoldCase applies Unicode case folding.
	FoldCase bool
	// StripPunctuation replaces punctuation runs with Replacement.
	StripPunctuation bool
	// Replacement substitutes each punctuation run when StripPunctuation
	// is set. Empty removes the run entirely.
	Replacement string
}

// DefaultOptions returns the normalization used for column name comparison:
// punctuation removed, case folded.
func DefaultOptions() Options {
	return Options{FoldCase: true, StripPunctuation: true}
}

// Strip replaces every maximal run of punctuation in s with replacement and
// trims surrounding whitespace. Interior whitespace is preserved as-is, so
// "Hello,   World!" keeps its triple space.
func Strip(s, replacement string) string {
	return strings.TrimSpace(punctRun.ReplaceAllString(s, replacement))
}

// Fold trims s and applies Unicode case folding.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Normalize canonicalizes s according to opts. It is idempotent:
// Normalize(Normalize(s)) == Normalize(s) for any fixed opts whose
// Replacement is not itself punctuation.
func Normalize(s string, opts Options) string {
	if opts.StripPunctuation {
		s = Strip(s, opts.Replacement)
	}
	if opts.FoldCase {
		s = cases.Fold().String(s)
	}
	return strings.TrimSpace(s)
}

// NormalizeValue normalizes a dynamically typed value that must hold text.
// Non-text input fails with ErrNotText.
func NormalizeValue(v any, opts Options) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w, got %T", ErrNotText, v)
	}
	return Normalize(s, opts), nil
}
