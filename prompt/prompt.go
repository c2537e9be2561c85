// Package prompt implements the single-line query editor: a grapheme-aware
// cursor over a normalized string, with a horizontally scrolling screen
// window and configurable edge padding, ported from the teacher's simpler
// byte-offset caret (caret.go) generalized to full grapheme/word awareness.
package prompt

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/clipperhouse/uax29/v2/words"
	"github.com/mattn/go-runewidth"
)

// Config holds tunables for the scroll window.
type Config struct {
	// Padding is the minimum number of columns kept visible between the
	// cursor and either edge of the screen window, when the contents are
	// wide enough to need scrolling.
	Padding uint16
}

// DefaultConfig matches the teacher's conservative default padding used for
// the match-list viewport in layout.go.
func DefaultConfig() Config { return Config{Padding: 2} }

// Prompt is a single-line, grapheme-aware text editor with a horizontally
// scrolling view.
type Prompt struct {
	contents     string
	offset       int // byte offset of the cursor within contents
	screenOffset uint16
	width        uint16
	cfg          Config
}

// New constructs an empty prompt. The screen width defaults to effectively
// unbounded until the first Resize call, matching the Rust source's
// uninitialized-width default so an un-resized Prompt never clips content.
func New(cfg Config) *Prompt {
	return &Prompt{width: ^uint16(0), cfg: cfg}
}

func (p *Prompt) padding() uint16 {
	max := uint16(0)
	if p.width > 0 {
		max = (p.width - 1) / 2
	}
	if p.cfg.Padding < max {
		return p.cfg.Padding
	}
	return max
}

// IsEmpty reports whether the prompt has no contents.
func (p *Prompt) IsEmpty() bool { return p.contents == "" }

// Contents returns the full, unscrolled prompt text.
func (p *Prompt) Contents() string { return p.contents }

// CursorAtEnd reports whether the cursor sits at the end of the contents.
func (p *Prompt) CursorAtEnd() bool { return p.offset == len(p.contents) }

// View returns the visible slice of contents for the current screen window,
// plus the extra column count consumed by a grapheme straddling the left
// edge (usually 0; nonzero for wide characters such as full-width glyphs).
func (p *Prompt) View() (string, uint16) {
	if p.width == 0 {
		return "", 0
	}

	leftPart := p.contents[:p.offset]
	leftGraphemes := graphemeList(leftPart)
	totalLeftWidth := 0
	leftOffset, extra := 0, uint16(0)
	found := false
	for i := len(leftGraphemes) - 1; i >= 0; i-- {
		g := leftGraphemes[i]
		totalLeftWidth += runewidth.StringWidth(g.text)
		if totalLeftWidth >= int(p.screenOffset) {
			e := totalLeftWidth - int(p.screenOffset)
			off := g.offset
			if totalLeftWidth != int(p.screenOffset) {
				off = g.offset + len(g.text)
			}
			leftOffset, extra, found = off, uint16(e), true
			break
		}
	}
	if !found {
		leftOffset, extra = 0, 0
	}

	rightPart := p.contents[p.offset:]
	totalRightWidth := 0
	maxRightWidth := int(p.width) - int(p.screenOffset)
	rightOffset := len(p.contents)
	for _, g := range graphemeList(rightPart) {
		totalRightWidth += runewidth.StringWidth(g.text)
		if totalRightWidth > maxRightWidth {
			rightOffset = p.offset + g.offset
			break
		}
	}

	return p.contents[leftOffset:rightOffset], extra
}

// Resize updates the screen width and clamps the scroll offset accordingly.
func (p *Prompt) Resize(width uint16) {
	p.width = width
	maxOffset := uint16(0)
	if width > p.padding() {
		maxOffset = width - p.padding()
	}
	if p.screenOffset > maxOffset {
		p.screenOffset = maxOffset
	}
}

// ScreenOffset returns the cursor's column within the visible window.
func (p *Prompt) ScreenOffset() uint16 { return p.screenOffset }

func (p *Prompt) rightBy(width int) {
	max := uint16(0)
	if p.width > p.padding() {
		max = p.width - p.padding()
	}
	next := p.screenOffset + uint16(width)
	if next < p.screenOffset { // overflow saturate
		next = ^uint16(0)
	}
	if next > max {
		next = max
	}
	p.screenOffset = next
}

func (p *Prompt) leftBy(width int) {
	totalLeftWidth := 0
	leftGraphemes := graphemeList(p.contents[:p.offset])
	leftPadding := p.padding()
	for i := len(leftGraphemes) - 1; i >= 0; i-- {
		totalLeftWidth += runewidth.StringWidth(leftGraphemes[i].text)
		lp := p.padding()
		if totalLeftWidth >= int(lp) {
			leftPadding = lp
			break
		}
		leftPadding = uint16(totalLeftWidth)
	}

	next := int(p.screenOffset) - width
	if next < 0 {
		next = 0
	}
	if next < int(leftPadding) {
		next = int(leftPadding)
	}
	p.screenOffset = uint16(next)
}

func (p *Prompt) insertChar(ch rune, w int) {
	p.contents = p.contents[:p.offset] + string(ch) + p.contents[p.offset:]
	p.rightBy(w)
	p.offset += len(string(ch))
}

func (p *Prompt) insert(s string) {
	p.contents = p.contents[:p.offset] + s + p.contents[p.offset:]
	p.rightBy(runewidth.StringWidth(s))
	p.offset += len(s)
}

// normalizeChar strips ASCII control characters and maps newline/tab to a
// single space, matching the query normalization used before fuzzy
// matching so injected newlines never corrupt the single-line prompt.
func normalizeChar(ch rune) (rune, int, bool) {
	switch ch {
	case '\n', '\t':
		return ' ', 1, true
	case '\r':
		return 0, 0, false
	}
	w := runewidth.RuneWidth(ch)
	if ch < 0x20 || ch == 0x7f {
		return 0, 0, false
	}
	return ch, w, true
}

func normalize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if nr, _, ok := normalizeChar(r); ok {
			b.WriteRune(nr)
		}
	}
	return b.String()
}

// SetPrompt replaces the contents wholesale and moves the cursor to the
// end, normalizing control characters out of the input.
func (p *Prompt) SetPrompt(s string) {
	p.contents = normalize(s)
	p.offset = len(p.contents)
	w := uint16(runewidth.StringWidth(p.contents))
	max := uint16(0)
	if p.width > p.padding() {
		max = p.width - p.padding()
	}
	if w > max {
		w = max
	}
	p.screenOffset = w
}

type grapheme struct {
	offset int
	text   string
}

func graphemeList(s string) []grapheme {
	var out []grapheme
	seg := graphemes.NewSegmenter([]byte(s))
	for seg.Next() {
		out = append(out, grapheme{offset: seg.Start(), text: string(seg.Bytes())})
	}
	return out
}

func wordOffsets(s string) []int {
	var out []int
	seg := words.NewSegmenter([]byte(s))
	for seg.Next() {
		w := string(seg.Bytes())
		if strings.TrimFunc(w, unicode.IsSpace) == "" {
			continue
		}
		out = append(out, seg.Start())
	}
	return out
}

// stepLeft returns the byte offset n graphemes to the left of the cursor
// (or 0), without moving the cursor.
func (p *Prompt) stepLeft(n int) int {
	gs := graphemeList(p.contents[:p.offset])
	if n > len(gs) {
		n = len(gs)
	}
	if n == 0 {
		return p.offset
	}
	return gs[len(gs)-n].offset
}

func (p *Prompt) stepRight(n int) int {
	gs := graphemeList(p.contents[p.offset:])
	if n <= 0 {
		return p.offset
	}
	if n > len(gs) {
		return len(p.contents)
	}
	return p.offset + gs[n].offset
}

func (p *Prompt) stepWordLeft(n int) int {
	offsets := wordOffsets(p.contents[:p.offset])
	if n > len(offsets) {
		return 0
	}
	if n <= 0 {
		return p.offset
	}
	return offsets[len(offsets)-n]
}

func (p *Prompt) stepWordRight(n int) int {
	offsets := wordOffsets(p.contents[p.offset:])
	if n <= 0 {
		return p.offset
	}
	if n > len(offsets) {
		return len(p.contents)
	}
	return p.offset + offsets[n-1] + 1
}
