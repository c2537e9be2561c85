package prompt

import "testing"

func TestInsertAndBackspace(t *testing.T) {
	p := New(DefaultConfig())
	p.Resize(80)

	for _, ch := range "hello" {
		p.Handle(Event{Kind: Insert, Ch: ch})
	}
	if p.Contents() != "hello" {
		t.Fatalf("contents = %q, want hello", p.Contents())
	}
	if !p.CursorAtEnd() {
		t.Fatal("expected cursor at end after appending")
	}

	p.Handle(Event{Kind: Backspace, N: 2})
	if p.Contents() != "hel" {
		t.Fatalf("contents = %q, want hel", p.Contents())
	}
}

func TestSetPromptMovesCursorToEnd(t *testing.T) {
	p := New(DefaultConfig())
	p.Resize(80)
	p.Handle(Event{Kind: Set, Str: "query"})
	if p.Contents() != "query" || !p.CursorAtEnd() {
		t.Fatalf("contents=%q cursorAtEnd=%v", p.Contents(), p.CursorAtEnd())
	}
}

func TestClearBeforeAndAfter(t *testing.T) {
	p := New(DefaultConfig())
	p.Resize(80)
	p.Handle(Event{Kind: Set, Str: "hello world"})
	p.Handle(Event{Kind: Left, N: 5})
	p.Handle(Event{Kind: ClearAfter})
	if p.Contents() != "hello " {
		t.Fatalf("contents = %q, want %q", p.Contents(), "hello ")
	}

	p.Handle(Event{Kind: Left, N: 3})
	p.Handle(Event{Kind: ClearBefore})
	if p.Contents() != "lo " {
		t.Fatalf("contents = %q, want %q", p.Contents(), "lo ")
	}
}

func TestNormalizeStripsControlAndTabNewline(t *testing.T) {
	p := New(DefaultConfig())
	p.Resize(80)
	p.Handle(Event{Kind: Paste, Str: "a\tb\nc"})
	if p.Contents() != "a b c" {
		t.Fatalf("contents = %q, want %q", p.Contents(), "a b c")
	}
}

func TestViewAtZeroWidth(t *testing.T) {
	p := New(DefaultConfig())
	p.Handle(Event{Kind: Set, Str: "abc"})
	p.Resize(0)
	v, extra := p.View()
	if v != "" || extra != 0 {
		t.Fatalf("View() = (%q, %d), want (\"\", 0)", v, extra)
	}
}
