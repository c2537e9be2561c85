package span

import (
	"testing"

	"github.com/peco-labs/gopicker/internal/cell"
)

type recordSink struct {
	cells map[[2]int]rune
}

func newRecordSink() *recordSink { return &recordSink{cells: map[[2]int]rune{}} }

func (r *recordSink) SetCell(col, row int, ru rune, _ cell.Style) {
	r.cells[[2]int{col, row}] = ru
}

func (r *recordSink) MoveCursor(col, row int) {}

func TestDrawSingleLineNoMatches(t *testing.T) {
	s := New("hello", nil, KeepAll, 0)
	if s.NumLines() != 1 {
		t.Fatalf("NumLines = %d, want 1", s.NumLines())
	}

	sink := newRecordSink()
	s.Draw(sink, 0, 80, 0, false)

	if sink.cells[[2]int{2, 0}] != 'h' {
		t.Fatalf("expected 'h' at column 2, got %q", sink.cells[[2]int{2, 0}])
	}
}

func TestDrawMultiLineItem(t *testing.T) {
	s := New("foo\nbar", nil, KeepAll, 0)
	if s.NumLines() != 2 {
		t.Fatalf("NumLines = %d, want 2", s.NumLines())
	}

	sink := newRecordSink()
	s.Draw(sink, 5, 80, 0, false)

	if sink.cells[[2]int{2, 5}] != 'f' {
		t.Fatalf("expected 'f' at row 5, got %q", sink.cells[[2]int{2, 5}])
	}
	if sink.cells[[2]int{2, 6}] != 'b' {
		t.Fatalf("expected 'b' at row 6, got %q", sink.cells[[2]int{2, 6}])
	}
}

func TestDrawTruncatesNarrowWidth(t *testing.T) {
	s := New("abcdefghij", nil, KeepAll, 0)
	sink := newRecordSink()
	s.Draw(sink, 0, 4, 0, false)

	if _, ok := sink.cells[[2]int{2, 0}]; !ok {
		t.Fatal("expected at least the first column to be drawn")
	}
	if _, ok := sink.cells[[2]int{10, 0}]; ok {
		t.Fatal("did not expect column 10 to be drawn within a 4-wide viewport")
	}
}

func TestKeepHeadLimitsLines(t *testing.T) {
	s := New("a\nb\nc\nd", nil, KeepHead, 2)
	if s.NumLines() != 2 {
		t.Fatalf("NumLines = %d, want 2", s.NumLines())
	}
}

func TestKeepTailLimitsLines(t *testing.T) {
	s := New("a\nb\nc\nd", nil, KeepTail, 2)
	if s.NumLines() != 2 {
		t.Fatalf("NumLines = %d, want 2", s.NumLines())
	}
}
