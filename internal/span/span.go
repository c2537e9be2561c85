// Package span draws one matched item's rendered text into a row range of a
// cell.Sink, handling multi-line items, horizontal scrolling to keep
// the rightmost highlighted match on-screen, and truncation with an
// ellipsis indicator. Ported from the original picker's
// match_list/span.rs, whose Spanned::queue_print/queue_print_line computed
// the same offset and truncation logic against a terminal writer instead of
// a cell grid.
package span

import (
	"github.com/peco-labs/gopicker/internal/unicode"
	"github.com/peco-labs/gopicker/internal/cell"
)

const ellipsis = '…'

// KeepLines selects which screen lines of a multi-line rendered item survive
// truncation when it has more lines than the viewport has rows for it.
type KeepLines int

const (
	// KeepAll keeps every line (used when the item's full height fits).
	KeepAll KeepLines = iota
	// KeepHead keeps the first N lines.
	KeepHead
	// KeepTail keeps the last N lines.
	KeepTail
)

// Spanned is a rendered item's text together with its computed highlight
// spans and line boundaries, ready to be drawn.
type Spanned struct {
	proc     unicode.Processor
	rendered string
	spans    []unicode.Span
	lines    []unicode.LineRange
}

// New computes the spans and line boundaries for rendered given its matched
// rune indices, keeping only the lines selected by keep/n.
func New(rendered string, indices []int, keep KeepLines, n int) Spanned {
	proc := unicode.SelectProcessor(rendered)
	spans, lines := unicode.SpansFromIndices(proc, indices, rendered)

	switch keep {
	case KeepHead:
		if n < len(lines) {
			lines = lines[:n]
		}
	case KeepTail:
		if n < len(lines) {
			lines = lines[len(lines)-n:]
		}
	}

	return Spanned{proc: proc, rendered: rendered, spans: spans, lines: lines}
}

// NumLines returns the number of screen lines this item occupies.
func (s Spanned) NumLines() int { return len(s.lines) }

func (s Spanned) lineSpans(i int) []unicode.Span {
	lr := s.lines[i]
	return s.spans[lr.Start:lr.End]
}

func (s Spanned) textOf(sp unicode.Span) string {
	return s.rendered[sp.Start:sp.End]
}

func (s Spanned) maxLineBytes() int {
	max := 0
	for i := range s.lines {
		line := s.lineSpans(i)
		if len(line) == 0 {
			continue
		}
		n := line[len(line)-1].End - line[0].Start
		if n > max {
			max = n
		}
	}
	return max
}

// requiredWidth is the column width needed to show the rightmost match on
// every line, so a narrow viewport knows how far it must scroll.
func (s Spanned) requiredWidth() int {
	max := 0
	for i := range s.lines {
		line := s.lineSpans(i)
		for j := len(line) - 1; j >= 0; j-- {
			if line[j].IsMatch {
				w := s.proc.Width(s.rendered[line[0].Start:line[j].End])
				if w > max {
					max = w
				}
				break
			}
		}
	}
	return max
}

// requiredOffset is the column to scroll past so requiredWidth stays
// visible within maxWidth, preferring to keep earlier matches unscrolled
// and reserving a column for the ellipsis indicator when needed.
func (s Spanned) requiredOffset(maxWidth, highlightPadding int) int {
	offset := s.requiredWidth() + highlightPadding - maxWidth
	if offset <= 0 {
		return 0
	}

	isSharp := false
	for i := range s.lines {
		line := s.lineSpans(i)
		for _, sp := range line {
			if sp.IsMatch {
				w := s.proc.Width(s.rendered[line[0].Start:sp.Start])
				if w <= offset {
					offset = w
					isSharp = true
				}
				break
			}
		}
	}

	if !isSharp {
		offset++
	}
	if offset == 1 {
		return 0
	}
	return offset
}

// Draw renders this item into row..row+NumLines()-1 of sink, each line
// clipped to width columns, with selected controlling the row's highlight
// styling and highlightPadding reserving extra columns for match emphasis.
func (s Spanned) Draw(sink cell.Sink, row, width, highlightPadding int, selected bool) {
	fastPath := s.maxLineBytes() <= max0(width-highlightPadding)

	offset := 0
	if !fastPath {
		offset = s.requiredOffset(width, highlightPadding)
	}

	for i := range s.lines {
		s.drawLine(sink, row+i, s.lineSpans(i), width, offset, selected)
	}
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func (s Spanned) drawLine(sink cell.Sink, row int, line []unicode.Span, capacity, offset int, selected bool) {
	col := s.startLine(sink, row, selected)

	if len(line) == 0 || capacity == 0 {
		return
	}

	remaining := capacity
	if offset > 0 {
		remaining--
		col = s.printRune(sink, row, col, ellipsis, false, selected)
	}

	first := line[0]
	init, alignment := unicode.Consume(s.proc, s.textOf(first), offset)
	firstStart := first.Start + init

	if remaining < alignment {
		return
	}
	remaining -= alignment
	for a := 0; a < alignment; a++ {
		col = s.printRune(sink, row, col, ellipsis, false, selected)
	}

	col = s.drawSpanFrom(sink, row, col, firstStart, first.End, first.IsMatch, &remaining, selected)
	for _, sp := range line[1:] {
		if remaining <= 0 {
			break
		}
		col = s.drawSpanFrom(sink, row, col, sp.Start, sp.End, sp.IsMatch, &remaining, selected)
	}
}

// drawSpanFrom prints the text in [start,end) of s.rendered, truncating to
// fit *remaining columns, and returns the column position after printing.
func (s Spanned) drawSpanFrom(sink cell.Sink, row, col, start, end int, isMatch bool, remaining *int, selected bool) int {
	text := s.rendered[start:end]
	leftover, prefix, alignment, fits := unicode.Truncate(s.proc, text, uint16(*remaining))
	if fits {
		*remaining = int(leftover)
		return s.printSpanText(sink, row, col, prefix, isMatch, selected)
	}

	col = s.printSpanText(sink, row, col, prefix, isMatch, selected)
	if alignment > 0 {
		// Truncate left alignment columns unused because the next grapheme
		// is too wide to fit; fill them with the ellipsis indicator.
		for a := 0; a < alignment; a++ {
			col = s.printRune(sink, row, col, ellipsis, false, selected)
		}
	} else {
		// Capacity ran out exactly at a grapheme boundary: backtrack over
		// the last grapheme already printed (possibly from an earlier
		// span, if prefix is empty) and overwrite it with the ellipsis.
		undoWidth := s.proc.LastGraphemeWidth(s.rendered[:start+len(prefix)])
		col -= undoWidth
		for a := 0; a < undoWidth; a++ {
			col = s.printRune(sink, row, col, ellipsis, false, selected)
		}
	}
	*remaining = 0
	return col
}

func (s Spanned) printSpanText(sink cell.Sink, row, col int, text string, isMatch, selected bool) int {
	for _, r := range text {
		col = s.printRune(sink, row, col, r, isMatch, selected)
	}
	return col
}

func (s Spanned) printRune(sink cell.Sink, row, col int, r rune, highlight, selected bool) int {
	style := cell.Style{}
	if selected {
		style.Bold = true
		style.Background = cell.ColorDarkGrey
	}
	if highlight {
		style.Foreground = cell.ColorCyan
	}
	sink.SetCell(col, row, r, style)
	return col + s.proc.Width(string(r))
}

// startLine draws the two-column selection indicator at the start of row
// and returns the column position text should start at.
func (s Spanned) startLine(sink cell.Sink, row int, selected bool) int {
	if selected {
		style := cell.Style{Bold: true, Background: cell.ColorDarkGrey, Foreground: cell.ColorMagenta}
		sink.SetCell(0, row, '▌', style)
		sink.SetCell(1, row, ' ', style)
	} else {
		sink.SetCell(0, row, ' ', cell.Style{})
		sink.SetCell(1, row, ' ', cell.Style{})
	}
	return 2
}
