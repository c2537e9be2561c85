package prompt

import "github.com/mattn/go-runewidth"

// EventKind discriminates Event's payload the way the Rust PromptEvent enum
// discriminates its variants; Go lacks sum types, so Event carries an
// explicit Kind plus whichever of N/Ch/Str is relevant.
type EventKind int

const (
	Left EventKind = iota
	WordLeft
	Right
	WordRight
	ToStart
	ToEnd
	Backspace
	Delete
	BackspaceWord
	ClearBefore
	ClearAfter
	Insert
	Paste
	Set
)

// Event is one prompt-editing instruction.
type Event struct {
	Kind EventKind
	N    int
	Ch   rune
	Str  string
}

// IsCursorMovement reports whether e only moves the cursor without
// mutating contents; used by the lazy coalescer to decide whether
// ToStart/ToEnd may override a buffered movement event.
func (e Event) IsCursorMovement() bool {
	switch e.Kind {
	case Left, WordLeft, Right, WordRight, ToStart, ToEnd:
		return true
	default:
		return false
	}
}

// Status reports what changed after handling one or more Events.
type Status struct {
	NeedsRedraw     bool
	ContentsChanged bool
}

// Merge folds other into the receiver.
func (s Status) Merge(other Status) Status {
	return Status{
		NeedsRedraw:     s.NeedsRedraw || other.NeedsRedraw,
		ContentsChanged: s.ContentsChanged || other.ContentsChanged,
	}
}

// Handle applies e to the prompt and reports what changed.
func (p *Prompt) Handle(e Event) Status {
	contentsChanged := false
	needsRedraw := false

	switch e.Kind {
	case Set:
		p.SetPrompt(e.Str)
		needsRedraw = true
	case Left:
		needsRedraw = p.moveTo(p.stepLeft(e.N), true)
	case WordLeft:
		needsRedraw = p.moveTo(p.stepWordLeft(e.N), true)
	case Right:
		needsRedraw = p.moveTo(p.stepRight(e.N), false)
	case WordRight:
		needsRedraw = p.moveTo(p.stepWordRight(e.N), false)
	case ToStart:
		if p.offset != 0 {
			p.offset = 0
			p.screenOffset = 0
			needsRedraw = true
		}
	case ToEnd:
		if p.offset != len(p.contents) {
			p.moveToEnd()
			needsRedraw = true
		}
	case Insert:
		if nr, w, ok := normalizeChar(e.Ch); ok {
			contentsChanged = true
			p.insertChar(nr, w)
			needsRedraw = true
		}
	case Paste:
		s := normalize(e.Str)
		if s != "" {
			contentsChanged = true
			p.insert(s)
			needsRedraw = true
		}
	case Backspace:
		deleteUntil := p.offset
		if p.moveTo(p.stepLeft(e.N), true) {
			p.contents = p.contents[:p.offset] + p.contents[deleteUntil:]
			contentsChanged, needsRedraw = true, true
		}
	case BackspaceWord:
		deleteUntil := p.offset
		if p.moveTo(p.stepWordLeft(e.N), true) {
			p.contents = p.contents[:p.offset] + p.contents[deleteUntil:]
			contentsChanged, needsRedraw = true, true
		}
	case ClearBefore:
		if p.offset != 0 {
			p.contents = p.contents[p.offset:]
			p.offset = 0
			p.screenOffset = 0
			contentsChanged, needsRedraw = true, true
		}
	case Delete:
		newOffset := p.stepRight(e.N)
		if newOffset != p.offset {
			p.contents = p.contents[:p.offset] + p.contents[newOffset:]
			contentsChanged, needsRedraw = true, true
		}
	case ClearAfter:
		if p.offset != len(p.contents) {
			p.contents = p.contents[:p.offset]
			contentsChanged, needsRedraw = true, true
		}
	}

	return Status{NeedsRedraw: needsRedraw, ContentsChanged: contentsChanged}
}

// moveTo moves the cursor to newOffset (a byte offset computed by one of
// the step* helpers), returning whether the cursor actually moved. left
// indicates whether this is a leftward motion (affects which scroll-window
// adjustment applies).
func (p *Prompt) moveTo(newOffset int, left bool) bool {
	if newOffset == p.offset {
		return false
	}
	var stepWidth int
	if left {
		stepWidth = runewidth.StringWidth(p.contents[newOffset:p.offset])
	} else {
		stepWidth = runewidth.StringWidth(p.contents[p.offset:newOffset])
	}
	p.offset = newOffset
	if left {
		p.leftBy(stepWidth)
	} else {
		p.rightBy(stepWidth)
	}
	return true
}

func (p *Prompt) moveToEnd() {
	maxOffset := uint16(0)
	if p.width > p.padding() {
		maxOffset = p.width - p.padding()
	}
	for _, g := range graphemeList(p.contents[p.offset:]) {
		w := uint16(runewidth.StringWidth(g.text))
		next := p.screenOffset + w
		if next < p.screenOffset {
			next = ^uint16(0)
		}
		p.screenOffset = next
		if p.screenOffset >= maxOffset {
			p.screenOffset = maxOffset
			break
		}
	}
	p.offset = len(p.contents)
}
