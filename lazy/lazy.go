// Package lazy implements per-frame event coalescing: instead of applying
// every keystroke and scroll event to the match list and prompt the moment
// it arrives, the driver buffers same-kind events for one frame and folds
// them together, so a burst of ten "Down" events becomes one
// IncrementSelection(10) call rather than ten individual ones. Ported from
// the original picker's lazy match-list/prompt wrappers.
package lazy

import (
	"github.com/peco-labs/gopicker/matchlist"
	"github.com/peco-labs/gopicker/prompt"
)

// MatchListEventKind distinguishes the three selection-affecting events.
type MatchListEventKind int

const (
	Up MatchListEventKind = iota
	Down
	ResetSelection
)

// MatchListEvent is one selection-change instruction.
type MatchListEvent struct {
	Kind MatchListEventKind
	N    int
}

// MatchList buffers a running selection delta against engine, applying it
// only once Finish is called, so N rapid Up/Down events collapse into a
// single IncrementSelection/DecrementSelection call.
type MatchList struct {
	engine            *matchlist.Engine
	reversed          bool
	bufferedSelection int
}

// NewMatchList starts buffering selection changes for engine from its
// current selection.
func NewMatchList(engine *matchlist.Engine) *MatchList {
	return &MatchList{engine: engine, bufferedSelection: engine.Selection()}
}

// NewReversedMatchList is NewMatchList for a Reversed-mode engine: Finish
// applies the buffered delta through the engine's *Rev selection methods,
// so Up/Down still invert relative to non-reversed mode the way
// MatchListConfig::reversed does in the original picker's draw.rs.
func NewReversedMatchList(engine *matchlist.Engine) *MatchList {
	return &MatchList{engine: engine, reversed: true, bufferedSelection: engine.Selection()}
}

// IsEmpty reports whether the underlying list has no items.
func (l *MatchList) IsEmpty() bool { return l.engine.Total() == 0 }

// Selection returns the buffered (not-yet-applied) selection index.
func (l *MatchList) Selection() int { return l.bufferedSelection }

// Handle folds event into the buffered selection delta.
func (l *MatchList) Handle(event MatchListEvent) {
	switch event.Kind {
	case Up:
		l.bufferedSelection += event.N
		if max := l.engine.Total() - 1; l.bufferedSelection > max {
			l.bufferedSelection = max
		}
	case Down:
		l.bufferedSelection -= event.N
		if l.bufferedSelection < 0 {
			l.bufferedSelection = 0
		}
	case ResetSelection:
		l.bufferedSelection = 0
	}
}

// Finish applies the net buffered selection change to the engine by moving
// it the shortest path from its current position.
func (l *MatchList) Finish() {
	cur := l.engine.Selection()
	if cur < 0 {
		return
	}
	diff := l.bufferedSelection - cur
	switch {
	case diff > 0:
		if l.reversed {
			l.engine.DecrementSelectionRev(diff)
		} else {
			l.engine.DecrementSelection(diff)
		}
	case diff < 0:
		if l.reversed {
			l.engine.IncrementSelectionRev(-diff)
		} else {
			l.engine.IncrementSelection(-diff)
		}
	}
}

// Prompt folds a burst of same-kind prompt events into as few Handle calls
// as possible before they are applied to the underlying prompt.Prompt.
type Prompt struct {
	target   *prompt.Prompt
	buffered *prompt.Event
	status   prompt.Status
}

// NewPrompt starts buffering events for target.
func NewPrompt(target *prompt.Prompt) *Prompt {
	return &Prompt{target: target}
}

// IsEmpty reports whether the prompt currently has no contents.
func (l *Prompt) IsEmpty() bool { return l.target.IsEmpty() }

func (l *Prompt) flush(event prompt.Event) {
	l.status = l.status.Merge(l.target.Handle(event))
}

// swapAndProcess replaces the buffered event with next, then applies the
// event that was previously buffered.
func (l *Prompt) swapAndProcess(next prompt.Event) {
	prev := *l.buffered
	*l.buffered = next
	l.flush(prev)
}

// Handle folds event into whatever is currently buffered, applying the
// previous buffered event first if the two can't be combined.
func (l *Prompt) Handle(event prompt.Event) {
	if l.buffered == nil {
		e := event
		l.buffered = &e
		return
	}
	b := l.buffered

	switch event.Kind {
	case prompt.Left, prompt.WordLeft, prompt.Right, prompt.WordRight,
		prompt.Backspace, prompt.Delete, prompt.BackspaceWord:
		if b.Kind == event.Kind {
			b.N += event.N
		} else {
			l.swapAndProcess(event)
		}
	case prompt.ToStart, prompt.ToEnd:
		if b.IsCursorMovement() {
			*b = event
		} else {
			l.swapAndProcess(event)
		}
	case prompt.ClearBefore:
		if b.Kind == prompt.Backspace || b.Kind == prompt.ClearBefore || b.Kind == prompt.BackspaceWord {
			*b = event
		} else {
			l.swapAndProcess(event)
		}
	case prompt.ClearAfter:
		if b.Kind == prompt.Delete || b.Kind == prompt.ClearAfter {
			*b = event
		} else {
			l.swapAndProcess(event)
		}
	case prompt.Insert:
		switch b.Kind {
		case prompt.Insert:
			*b = prompt.Event{Kind: prompt.Paste, Str: string(b.Ch) + string(event.Ch)}
		case prompt.Paste:
			b.Str = b.Str + string(event.Ch)
		default:
			l.swapAndProcess(event)
		}
	case prompt.Paste:
		switch b.Kind {
		case prompt.Insert:
			*b = prompt.Event{Kind: prompt.Paste, Str: string(b.Ch) + event.Str}
		case prompt.Paste:
			b.Str = b.Str + event.Str
		default:
			l.swapAndProcess(event)
		}
	case prompt.Set:
		// a Set event overwrites any other buffered event since it resets
		// the prompt wholesale.
		*b = event
	}
}

// Finish applies whatever event remains buffered and returns the net
// status across every event folded this frame.
func (l *Prompt) Finish() prompt.Status {
	if l.buffered != nil {
		l.flush(*l.buffered)
	}
	return l.status
}
