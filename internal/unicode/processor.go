// Package unicode implements the dual ASCII/Unicode column-width engine
// used to lay out item text in terminal cells. Two Processor
// implementations exist: one that assumes a pure-ASCII, carriage-return-free
// string (cheap, byte-counting) and one that falls back to full grapheme
// segmentation and display-width measurement for anything else. Callers
// pick the processor once per string via SelectProcessor and then use it
// consistently, mirroring how nucleo's Utf32Str::Ascii/Unicode split
// determines which path a matched string takes in the original picker.
package unicode

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// Processor abstracts the handful of Unicode operations the layout and span
// packages need. A UnicodeProcessor is not a strict generalization of
// AsciiProcessor: "\r\n" counts as one grapheme under the Unicode path and
// two under the ASCII path, matching the upstream match-engine's own
// ASCII/Unicode split so indices stay consistent between the two.
type Processor interface {
	// Width returns the display width of input, which must be non-empty and
	// free of newlines and carriage returns.
	Width(input string) int
	// GraphemeIndexWidths yields (byteOffset, width) pairs for each
	// grapheme cluster in input, in order.
	GraphemeIndexWidths(input string) []IndexWidth
	// LastGraphemeWidth returns the display width of the final grapheme in
	// a non-empty, newline-free input.
	LastGraphemeWidth(input string) int
}

// IndexWidth pairs a grapheme's starting byte offset with its width.
type IndexWidth struct {
	Offset int
	Width  int
}

// IsUnicodeSafe reports whether input is safe for use with a
// UnicodeProcessor: it contains no carriage return, or it is non-ASCII.
func IsUnicodeSafe(input string) bool {
	return !strings.ContainsRune(input, '\r') || !isASCII(input)
}

// IsASCIISafe reports whether input is safe for use with an AsciiProcessor:
// it is pure ASCII and contains no carriage return.
func IsASCIISafe(input string) bool {
	return isASCII(input) && !strings.ContainsRune(input, '\r')
}

func isASCII(input string) bool {
	for i := 0; i < len(input); i++ {
		if input[i] >= 0x80 {
			return false
		}
	}
	return true
}

// SelectProcessor picks the cheaper ASCII processor when safe, falling back
// to the Unicode processor otherwise.
func SelectProcessor(input string) Processor {
	if IsASCIISafe(input) {
		return AsciiProcessor{}
	}
	return UnicodeProcessor{}
}

// UnicodeProcessor measures width and segments graphemes using full
// Unicode-aware algorithms.
type UnicodeProcessor struct{}

func (UnicodeProcessor) Width(input string) int {
	return runewidth.StringWidth(input)
}

func (UnicodeProcessor) GraphemeIndexWidths(input string) []IndexWidth {
	var out []IndexWidth
	seg := graphemes.NewSegmenter([]byte(input))
	for seg.Next() {
		out = append(out, IndexWidth{Offset: seg.Start(), Width: runewidth.StringWidth(string(seg.Bytes()))})
	}
	return out
}

func (p UnicodeProcessor) LastGraphemeWidth(input string) int {
	widths := p.GraphemeIndexWidths(input)
	if len(widths) == 0 {
		return 0
	}
	last := widths[len(widths)-1]
	return runewidth.StringWidth(input[last.Offset:])
}

// AsciiProcessor treats each byte of input as a single grapheme of width 1,
// valid only when input is pure ASCII and free of carriage returns/newlines.
type AsciiProcessor struct{}

func (AsciiProcessor) Width(input string) int {
	return len(input)
}

func (AsciiProcessor) GraphemeIndexWidths(input string) []IndexWidth {
	out := make([]IndexWidth, len(input))
	for i := range input {
		out[i] = IndexWidth{Offset: i, Width: 1}
	}
	return out
}

func (AsciiProcessor) LastGraphemeWidth(string) int {
	return 1
}
