package picker

import (
	"runtime"

	"github.com/peco-labs/gopicker/internal/matcher"
	"github.com/peco-labs/gopicker/prompt"
)

// CaseMatching selects how query characters are compared against item text.
type CaseMatching = matcher.CaseMatching

const (
	CaseSmart   = matcher.CaseSmart
	CaseRespect = matcher.CaseRespect
	CaseIgnore  = matcher.CaseIgnore
)

// Normalization selects whether accented letters are folded to their plain
// form before matching.
type Normalization = matcher.Normalization

const (
	NormalizationSmart = matcher.NormalizationSmart
	NormalizationNever = matcher.NormalizationNever
)

// HeightMode selects how many terminal rows the picker's inline region
// occupies, mirroring the teacher's config.HeightSpec (a fixed row count,
// or a fraction of the terminal height).
type HeightMode int

const (
	// HeightFixed uses HeightValue rows outright.
	HeightFixed HeightMode = iota
	// HeightFraction uses HeightValue as a percent (1-100) of terminal rows.
	HeightFraction
)

// Options configures a Picker before it starts. DefaultOptions returns the
// baseline configuration; the zero value has an empty Prompt and a
// HeightFixed mode with HeightValue 0, which Resolve turns into zero rows.
type Options struct {
	// Prompt is shown to the left of the query input, e.g. "> ".
	Prompt string

	// Multi enables toggling more than one item with Tab before accepting.
	Multi bool

	// Reversed switches the match list to its reversed mode: a reset fills
	// every list row from the selection downward without reserving padding
	// rows, and Up/Down move the selection in the opposite direction. Rows
	// are drawn in the same order as in the default mode, with the prompt
	// on the region's last row.
	Reversed bool

	// HeightMode and HeightValue together size the picker's screen region.
	HeightMode  HeightMode
	HeightValue int

	// Padding is the minimum number of match-list rows kept visible above
	// and below the current selection, subject to the list's own bounds
	// (spec's scroll_padding).
	Padding uint16

	// CaseMatching selects how query characters are compared against item
	// text: Smart (case-sensitive only if the query has an uppercase
	// letter), Respect (always case-sensitive), or Ignore (never).
	CaseMatching CaseMatching

	// Normalization selects whether accented Latin letters are folded to
	// their plain form before matching: Smart (fold unless the query
	// itself is accented) or Never.
	Normalization Normalization

	// Highlight enables cyan rendering of the matched spans within each
	// item; when false, items are drawn without any span emphasis.
	Highlight bool

	// HighlightPadding is the number of columns reserved when horizontally
	// scrolling a wide item to keep its rightmost match visible.
	HighlightPadding uint16

	// Threads hints how many worker goroutines the matcher's caller may use
	// to render/inject items concurrently; the matcher itself is
	// single-threaded internally but callers (e.g. Pick's item-streaming
	// goroutines) can consult this to size their own worker pools.
	Threads int

	// Query seeds the prompt's initial contents, as if the user had typed
	// it before the first frame.
	Query string

	// PromptConfig tunes the single-line query editor.
	PromptConfig prompt.Config

	// TickBudget bounds how many items the fuzzy matcher scans per frame,
	// keeping the UI responsive while a large candidate list streams in.
	TickBudget int

	// FrameRate bounds how often the picker redraws per second while idle;
	// it always redraws immediately in response to input or new matches.
	FrameRate int
}

// DefaultOptions returns the picker's baseline configuration.
func DefaultOptions() Options {
	return Options{
		Prompt:           "> ",
		HeightMode:       HeightFraction,
		HeightValue:      100,
		Padding:          3,
		CaseMatching:     CaseSmart,
		Normalization:    NormalizationSmart,
		Highlight:        true,
		HighlightPadding: 3,
		Threads:          defaultThreads(),
		PromptConfig:     prompt.DefaultConfig(),
		TickBudget:       256,
		FrameRate:        60,
	}
}

// defaultThreads mirrors spec's "available parallelism - 2, floor 1".
func defaultThreads() int {
	if n := runtime.GOMAXPROCS(0) - 2; n > 1 {
		return n
	}
	return 1
}

// Option mutates an Options value; New applies a sequence of them over
// DefaultOptions, following the functional-options idiom the rest of the
// ecosystem pack uses for library configuration.
type Option func(*Options)

// WithPrompt sets the prompt prefix.
func WithPrompt(p string) Option { return func(o *Options) { o.Prompt = p } }

// WithMulti enables multi-select.
func WithMulti() Option { return func(o *Options) { o.Multi = true } }

// WithReversed sets Options.Reversed.
func WithReversed() Option { return func(o *Options) { o.Reversed = true } }

// WithFixedHeight sets an exact row count for the picker's region.
func WithFixedHeight(rows int) Option {
	return func(o *Options) { o.HeightMode, o.HeightValue = HeightFixed, rows }
}

// WithHeightFraction sets the picker's region to percent% of the terminal's
// height (1-100).
func WithHeightFraction(percent int) Option {
	return func(o *Options) { o.HeightMode, o.HeightValue = HeightFraction, percent }
}

// WithPadding sets the minimum visible rows around the selection.
func WithPadding(n uint16) Option { return func(o *Options) { o.Padding = n } }

// WithTickBudget bounds how many items the matcher scans per frame.
func WithTickBudget(n int) Option { return func(o *Options) { o.TickBudget = n } }

// WithCaseMatching sets the query/item case-comparison mode.
func WithCaseMatching(c CaseMatching) Option {
	return func(o *Options) { o.CaseMatching = c }
}

// WithNormalization sets the accent-folding mode.
func WithNormalization(n Normalization) Option {
	return func(o *Options) { o.Normalization = n }
}

// WithHighlight toggles cyan rendering of matched spans.
func WithHighlight(enabled bool) Option { return func(o *Options) { o.Highlight = enabled } }

// WithHighlightPadding sets the columns reserved to keep a scrolled match's
// rightmost highlight visible.
func WithHighlightPadding(n uint16) Option {
	return func(o *Options) { o.HighlightPadding = n }
}

// WithThreads hints the worker-goroutine count a caller's own item-streaming
// pool should use.
func WithThreads(n int) Option { return func(o *Options) { o.Threads = n } }

// WithQuery seeds the prompt's initial contents.
func WithQuery(q string) Option { return func(o *Options) { o.Query = q } }

// Resolve turns o.HeightMode/HeightValue into an absolute row count, given
// the terminal's current height.
func (o Options) Resolve(termHeight int) int {
	switch o.HeightMode {
	case HeightFixed:
		if o.HeightValue > termHeight {
			return termHeight
		}
		return o.HeightValue
	case HeightFraction:
		v := o.HeightValue
		if v > 100 {
			v = 100
		}
		if v < 1 {
			v = 1
		}
		h := termHeight * v / 100
		if h < 1 {
			h = 1
		}
		return h
	default:
		return termHeight
	}
}
