// Package matcher implements the fuzzy item-matching engine behind the
// picker: an append-only item store fed by one or more Injector handles, a
// smart-case substring-chain matcher ported from the teacher's own
// filter/fuzzy.go, and a budget-bounded Tick that the frame loop calls once
// per frame to make incremental progress without blocking on the full
// item set. This plays the role an external engine (such as the Rust
// `nucleo` crate) plays in the original picker design, internalized here
// since no equivalent library exists in the module's dependency stack.
package matcher

import (
	"strings"
	"sync"
	"unicode"

	"github.com/peco-labs/gopicker/internal/pool"
	"github.com/pkg/errors"
)

// Render produces the display string an item of type T is matched against.
type Render[T any] func(item *T) string

// CaseMatching selects how fuzzyMatch treats letter case, mirroring
// nucleo::pattern::CaseMatching.
type CaseMatching int

const (
	// CaseSmart matches case-sensitively only if the query itself contains
	// an uppercase letter, and case-insensitively otherwise.
	CaseSmart CaseMatching = iota
	// CaseRespect always matches case-sensitively.
	CaseRespect
	// CaseIgnore always matches case-insensitively.
	CaseIgnore
)

// Normalization selects whether fuzzyMatch folds accented Latin letters to
// their plain-ASCII equivalent before comparing, mirroring
// nucleo::pattern::Normalization.
type Normalization int

const (
	// NormalizationSmart folds accents away unless the query itself
	// contains a non-ASCII rune, in which case the query is presumed to be
	// intentionally accented and is matched verbatim.
	NormalizationSmart Normalization = iota
	// NormalizationNever never folds accents; matching is always verbatim.
	NormalizationNever
)

// Config tunes how fuzzyMatch compares runes. The zero value is
// CaseSmart/NormalizationSmart, matching the picker's own defaults.
type Config struct {
	CaseMatching  CaseMatching
	Normalization Normalization
}

// Match describes one item that matched the current query, along with the
// rune indices into Rendered that the query matched, one per query rune, in
// ascending order (the caller collapses contiguous runs into ranges).
type Match[T any] struct {
	Item    *T
	Rendered string
	Indices []int
}

// entry is the immutable, append-only record for one injected item.
type entry[T any] struct {
	item     *T
	rendered string
}

// Matcher owns the full item list and the current match snapshot. One
// Matcher belongs to exactly one picker session; Restart discards it in
// favor of a fresh Matcher, per the observer handoff in package observer.
type Matcher[T any] struct {
	render Render[T]
	cfg    Config

	mu      sync.Mutex
	items   []entry[T]
	scanned int // items already tested against the current query

	query   string
	matched []Match[T]
}

// New constructs a Matcher that renders injected items with render, matching
// queries against them per cfg.
func New[T any](render Render[T], cfg Config) *Matcher[T] {
	return &Matcher[T]{render: render, cfg: cfg}
}

// Push appends item to the matcher's item list. Safe to call concurrently
// with Tick and with other Push calls, matching the picker's "inject from
// any thread" contract.
func (m *Matcher[T]) Push(item *T) {
	rendered := m.render(item)
	m.mu.Lock()
	m.items = append(m.items, entry[T]{item: item, rendered: rendered})
	m.mu.Unlock()
}

// SetQuery replaces the current query, resetting scan progress so the next
// Tick re-evaluates every item from the start. Returns true if the query
// actually changed.
func (m *Matcher[T]) SetQuery(query string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.query == query {
		return false
	}
	m.query = query
	m.scanned = 0
	m.matched = m.matched[:0]
	return true
}

// Len returns the total number of injected items.
func (m *Matcher[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Tick advances the match scan by at most budget items, appending any new
// matches to the running snapshot. Returns whether every injected item has
// now been scanned against the current query (i.e. the matcher is settled
// and Snapshot is stable until the next Push or SetQuery).
func (m *Matcher[T]) Tick(budget int) (settled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	end := m.scanned + budget
	if end > len(m.items) || budget <= 0 {
		end = len(m.items)
	}
	for i := m.scanned; i < end; i++ {
		e := m.items[i]
		if indices, ok := fuzzyMatch(m.query, e.rendered, m.cfg); ok {
			m.matched = append(m.matched, Match[T]{Item: e.item, Rendered: e.rendered, Indices: indices})
		}
	}
	m.scanned = end
	return m.scanned >= len(m.items)
}

// Snapshot returns the matches found so far, in item-injection order. The
// returned slice must not be mutated; it is shared with the matcher's
// internal state.
func (m *Matcher[T]) Snapshot() []Match[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matched
}

// errNoMatch is a package-private sentinel for a failed match. No function
// in this package returns it: fuzzyMatch reports a failed match through its
// bool result.
var errNoMatch = errors.New("fuzzy: no match")

// fuzzyMatch implements a substring-chain match: for a query "abc" it
// matches the equivalent of "a(.*)b(.*)c(.*)", with case and accent
// sensitivity governed by cfg. Returned indices are rune
// positions into rendered, one per query rune, suitable for
// internal/unicode.SpansFromIndices.
func fuzzyMatch(query, rendered string, cfg Config) ([]int, bool) {
	if query == "" {
		return nil, true
	}

	caseSensitive := resolveCaseSensitive(cfg.CaseMatching, query)
	fold := resolveFold(cfg.Normalization, query)

	runes := []rune(rendered)
	base := 0
	buf := pool.GetIndexBuf()

	for _, qr := range query {
		var found int = -1
		for i := base; i < len(runes); i++ {
			if runeEq(fold(runes[i]), fold(qr), caseSensitive) {
				found = i
				break
			}
		}
		if found == -1 {
			pool.ReleaseIndexBuf(buf)
			return nil, false
		}
		buf = append(buf, found)
		base = found + 1
	}

	indices := append([]int(nil), buf...)
	pool.ReleaseIndexBuf(buf)
	return indices, true
}

func resolveCaseSensitive(cm CaseMatching, query string) bool {
	switch cm {
	case CaseRespect:
		return true
	case CaseIgnore:
		return false
	default: // CaseSmart
		return containsUpper(query)
	}
}

// resolveFold returns the per-rune transform fuzzyMatch applies before
// comparing, folding accented Latin letters to their plain-ASCII
// equivalent under NormalizationSmart unless query itself carries a
// non-ASCII rune (in which case the query is presumed intentionally
// accented and folding is skipped), matching nucleo's own Smart/Never split.
func resolveFold(n Normalization, query string) func(rune) rune {
	if n == NormalizationNever || !isASCII(query) {
		return func(r rune) rune { return r }
	}
	return foldAccent
}

func runeEq(a, b rune, caseSensitive bool) bool {
	if caseSensitive {
		return a == b
	}
	return unicode.ToUpper(a) == unicode.ToUpper(b)
}

func containsUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// accentFoldTable maps common accented Latin-1/Latin Extended-A letters to
// their plain-ASCII base letter. It is a practical subset, not a full
// Unicode decomposition (no such table exists in this module's dependency
// stack); runes outside the table pass through unchanged.
var accentFoldTable = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a', 'ā': 'a',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e', 'ē': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i', 'ī': 'i',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o', 'ø': 'o', 'ō': 'o',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u', 'ū': 'u',
	'ý': 'y', 'ÿ': 'y',
	'ñ': 'n', 'ç': 'c',
}

func foldAccent(r rune) rune {
	if mapped, ok := accentFoldTable[unicode.ToLower(r)]; ok {
		if unicode.IsUpper(r) {
			return unicode.ToUpper(mapped)
		}
		return mapped
	}
	return r
}

// normalizedContains reports whether needle appears in haystack per the
// same smart-case rule used by fuzzyMatch, without computing indices; kept
// for callers that only need a boolean (e.g. prompt preview filtering).
func normalizedContains(haystack, needle string) bool {
	if containsUpper(needle) {
		return strings.Contains(haystack, needle)
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
