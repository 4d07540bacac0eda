// Package normalize prepares post text before it is embedded in a model prompt
// Pipeline order
// 1 Control-character sanitize and UTF-8 repair drop invalid bytes
// 2 Unicode NFC normalization
// 3 Remove format chars ZWJ ZWNJ FEFF etc
// 4 Width fold fullwidth to ASCII
// 5 Collapse whitespace to single spaces, preserving line breaks, and trim
//
// Letters are left untouched on purpose: accents and casing carry meaning for
// the classifier, so only invisible and layout noise is removed.
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalizer is concurrency safe when used with the pool below
type Normalizer struct{}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			width.Fold,                         // map fullwidth forms to ASCII
		)
	},
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the normalized form of s following the pipeline described above
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = Sanitize(s)

	// 1 repair UTF-8 drop invalid bytes
	s = strings.ToValidUTF8(s, "")

	// 2-4 transform via pooled chain then reset and return it
	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	// 5 collapse whitespace and trim
	ns = collapseSpaces(ns)

	return ns
}

// collapseSpaces converts whitespace runs to a single ASCII space, but preserves line breaks.
// Runs that contain any newline are collapsed to a single newline. Leading/trailing spaces/newlines are trimmed
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	sawNL := false
	flush := func() {
		if !inWS {
			return
		}
		if sawNL {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
		inWS = false
		sawNL = false
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			if r == '\n' || r == '\r' {
				sawNL = true
			}
			continue
		}
		flush()
		b.WriteRune(r)
	}
	flush()
	out := b.String()
	// Trim both spaces and newlines on edges
	out = strings.Trim(out, " \n\t\r")
	return out
}
