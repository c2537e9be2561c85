package unicode

import "testing"

func TestConsumeOffset(t *testing.T) {
	cases := []struct {
		input      string
		offset     int
		wantIdx    int
		wantAlign  int
		ascii      bool
	}{
		{"abcdef", 3, 3, 0, true},
		{"abcdef", 0, 0, 0, true},
		{"abcdef", 100, 6, 0, true},
	}
	for _, c := range cases {
		p := Processor(AsciiProcessor{})
		if !c.ascii {
			p = UnicodeProcessor{}
		}
		idx, align := Consume(p, c.input, c.offset)
		if idx != c.wantIdx || align != c.wantAlign {
			t.Errorf("Consume(%q, %d) = (%d, %d), want (%d, %d)", c.input, c.offset, idx, align, c.wantIdx, c.wantAlign)
		}
	}
}

func TestTruncateFitsEntirely(t *testing.T) {
	remaining, prefix, _, fits := Truncate(AsciiProcessor{}, "hello", 10)
	if !fits || remaining != 5 || prefix != "hello" {
		t.Fatalf("got (%d, %q, fits=%v)", remaining, prefix, fits)
	}
}

func TestTruncateOverflows(t *testing.T) {
	_, prefix, _, fits := Truncate(AsciiProcessor{}, "hello world", 5)
	if fits {
		t.Fatal("expected overflow")
	}
	if prefix != "hello" {
		t.Fatalf("prefix = %q, want %q", prefix, "hello")
	}
}

func TestSelectProcessor(t *testing.T) {
	if _, ok := SelectProcessor("plain ascii").(AsciiProcessor); !ok {
		t.Error("expected AsciiProcessor for ascii input")
	}
	if _, ok := SelectProcessor("日本語").(UnicodeProcessor); !ok {
		t.Error("expected UnicodeProcessor for non-ascii input")
	}
	if _, ok := SelectProcessor("has\rcr").(UnicodeProcessor); !ok {
		t.Error("expected UnicodeProcessor for ascii input containing \\r")
	}
}

func TestSpansFromIndicesSingleMatch(t *testing.T) {
	spans, lines := SpansFromIndices(AsciiProcessor{}, []int{1, 2}, "abcdef")
	if len(spans) != 3 {
		t.Fatalf("spans = %v, want 3 entries", spans)
	}
	if spans[0] != (Span{Start: 0, End: 1, IsMatch: false}) {
		t.Errorf("spans[0] = %v", spans[0])
	}
	if spans[1] != (Span{Start: 1, End: 3, IsMatch: true}) {
		t.Errorf("spans[1] = %v", spans[1])
	}
	if spans[2] != (Span{Start: 3, End: 6, IsMatch: false}) {
		t.Errorf("spans[2] = %v", spans[2])
	}
	if len(lines) != 1 || lines[0] != (LineRange{Start: 0, End: 3}) {
		t.Errorf("lines = %v", lines)
	}
}
