package unicode

import "bytes"

// Span is an unowned sub-range of a rendered string, tagged with whether it
// falls inside a fuzzy-match highlight.
type Span struct {
	Start, End int
	IsMatch    bool
}

// Truncate attempts to fit input into capacity columns using p. On success
// it returns the unused remaining capacity. On failure it returns the
// maximal grapheme-aligned prefix of input that fits, plus the leftover
// capacity that could not be used because the next grapheme was too wide.
//
// Meaningful even at capacity == 0: a string's Unicode width can be zero
// even when non-empty (e.g. a zero-width space), so capacity 0 doesn't
// trivially mean "nothing fits".
func Truncate(p Processor, input string, capacity uint16) (remaining uint16, prefix string, alignment int, fits bool) {
	width := p.Width(input)
	if int(capacity) >= width {
		return capacity - uint16(width), input, 0, true
	}

	currentLength := 0
	for _, iw := range p.GraphemeIndexWidths(input) {
		nextLength := currentLength + iw.Width
		if nextLength > int(capacity) {
			return 0, input[:iw.Offset], int(capacity) - currentLength, false
		}
		currentLength = nextLength
	}
	return capacity - uint16(currentLength), input, 0, true
}

// Consume walks input grapheme by grapheme until the accumulated width
// reaches offset, returning the byte index of the first grapheme that starts
// at or after column offset and the alignment overshoot introduced by not splitting a
// multi-column grapheme (usually 0, but can be positive for e.g. full-width
// characters).
func Consume(p Processor, input string, offset int) (idx int, alignment int) {
	initialWidth := 0
	for _, iw := range p.GraphemeIndexWidths(input) {
		if initialWidth >= offset {
			return iw.Offset, initialWidth - offset
		}
		initialWidth += iw.Width
	}
	if initialWidth < offset {
		return len(input), 0
	}
	return len(input), initialWidth - offset
}

// SpansFromIndices computes the ordered Span list and the line boundaries
// (as [start,end) index ranges into spans) for a rendered string given its
// matched byte-contiguous-rune index set. indices must be sorted ascending
// rune indices (not byte offsets, matching the external matcher's reported
// match positions).
func SpansFromIndices(p Processor, indices []int, rendered string) (spans []Span, lines []LineRange) {
	graphemeOffsets := p.GraphemeIndexWidths(rendered)

	start := 0
	lineStart, lineEnd := 0, 0

	for left, right := range indexSpans(indices) {
		middle, _ := nthAbs(graphemeOffsets, left)
		var end int
		if e, ok := nthAbs(graphemeOffsets, right+1); ok {
			end = e
		} else {
			end = len(rendered)
		}

		start, lineStart, lineEnd = insertUnmatchedSpans(&spans, rendered, start, middle, &lines, lineStart, lineEnd)

		if middle != end {
			lineEnd++
			spans = append(spans, Span{Start: middle, End: end, IsMatch: true})
		}
		start = end
	}

	_, lineStart, lineEnd = insertUnmatchedSpans(&spans, rendered, start, len(rendered), &lines, lineStart, lineEnd)
	lines = append(lines, LineRange{Start: lineStart, End: lineEnd})
	return spans, lines
}

// LineRange is a [Start,End) index range into a Span slice, denoting one
// screen line's worth of spans.
type LineRange struct {
	Start, End int
}

func nthAbs(offsets []IndexWidth, graphemeIdx int) (int, bool) {
	if graphemeIdx < 0 || graphemeIdx >= len(offsets) {
		return 0, false
	}
	return offsets[graphemeIdx].Offset, true
}

func insertUnmatchedSpans(spans *[]Span, rendered string, start, middle int, lines *[]LineRange, lineStart, lineEnd int) (newStart, newLineStart, newLineEnd int) {
	spanStart := start
	block := rendered[start:middle]

	searchFrom := 0
	for {
		rel := bytes.IndexByte([]byte(block[searchFrom:]), '\n')
		if rel < 0 {
			break
		}
		linebreakOffset := searchFrom + rel
		spanEnd := start + linebreakOffset

		rangeEnd := spanEnd
		if linebreakOffset > 0 && block[linebreakOffset-1] == '\r' {
			rangeEnd--
		}
		if rangeEnd > spanStart {
			lineEnd++
			*spans = append(*spans, Span{Start: spanStart, End: rangeEnd, IsMatch: false})
		}
		*lines = append(*lines, LineRange{Start: lineStart, End: lineEnd})
		lineStart = lineEnd

		spanStart = spanEnd + 1
		searchFrom = linebreakOffset + 1
		if searchFrom > len(block) {
			break
		}
	}

	if spanStart != middle {
		lineEnd++
		*spans = append(*spans, Span{Start: spanStart, End: middle, IsMatch: false})
	}
	return middle, lineStart, lineEnd
}

// indexSpans folds a sorted slice of rune indices into contiguous
// [left,right] inclusive runs, matching the upstream matcher's own
// contiguous-run collapsing of match indices before highlighting.
func indexSpans(indices []int) func(yield func(int, int) bool) {
	return func(yield func(int, int) bool) {
		cursor := 0
		for cursor < len(indices) {
			first := indices[cursor]
			last := first
			for cursor+1 < len(indices) && indices[cursor+1] == last+1 {
				cursor++
				last++
			}
			cursor++
			if !yield(first, last) {
				return
			}
		}
	}
}
