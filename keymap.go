package picker

import (
	"github.com/peco-labs/gopicker/internal/keyseq"
)

// Action is a named picker command a key sequence can be bound to, invoked
// against the running driver state by name rather than function value so
// user-supplied keymaps can be described declaratively (e.g. loaded from a
// config file) as the teacher's own keymap.go supports.
type Action int

const (
	ActionNone Action = iota
	ActionAccept
	// ActionQuit cancels the picker with no error, returning None, per
	// Esc/Ctrl-g/Ctrl-q.
	ActionQuit
	// ActionAbort cancels the picker with ErrUserInterrupted, per Ctrl-c.
	ActionAbort
	ActionToggleSelectAndNext
	ActionSelectAll
	ActionSelectNone
	ActionDeselectAll

	ActionCursorLeft
	ActionCursorRight
	ActionCursorWordLeft
	ActionCursorWordRight
	ActionCursorToStart
	ActionCursorToEnd

	ActionDeleteBackward
	ActionDeleteForward
	// ActionDeleteForwardOrQuit deletes the character under the cursor, or
	// quits with no error (like ActionQuit) if the prompt is already empty,
	// per Ctrl-d's QuitIfPromptEmpty binding.
	ActionDeleteForwardOrQuit
	ActionDeleteBackwardWord
	ActionDeleteToStart
	ActionDeleteToEnd

	ActionSelectUp
	ActionSelectDown
	ActionSelectPageUp
	ActionSelectPageDown
	ActionSelectToStart
	ActionSelectToEnd

	// ActionRestart discards the current matcher and match list, handing a
	// fresh Injector to whatever observer is watching via
	// Picker.InjectorObserver, per Ctrl-r.
	ActionRestart
)

func eventToKeyseqKey(e Event) keyseq.Key {
	if e.Kind != EventKey {
		return keyseq.Key{}
	}
	if e.Key == KeyRune {
		return keyseq.Key{Ch: e.Rune}
	}
	kt, mod := pickerKeyToKeyType(e.Key)
	return keyseq.Key{Modifier: mod, Key: kt}
}

func pickerKeyToKeyType(k Key) (keyseq.KeyType, keyseq.ModifierKey) {
	switch k {
	case KeyEnter:
		return keyseq.KeyEnter, keyseq.ModNone
	case KeyEscape:
		return keyseq.KeyEsc, keyseq.ModNone
	case KeyTab:
		return keyseq.KeyTab, keyseq.ModNone
	case KeyBacktab:
		return keyseq.KeyBacktab, keyseq.ModNone
	case KeyBackspace:
		return keyseq.KeyBackspace, keyseq.ModNone
	case KeyDelete:
		return keyseq.KeyDelete, keyseq.ModNone
	case KeyLeft:
		return keyseq.KeyArrowLeft, keyseq.ModNone
	case KeyRight:
		return keyseq.KeyArrowRight, keyseq.ModNone
	case KeyUp:
		return keyseq.KeyArrowUp, keyseq.ModNone
	case KeyDown:
		return keyseq.KeyArrowDown, keyseq.ModNone
	case KeyHome:
		return keyseq.KeyHome, keyseq.ModNone
	case KeyEnd:
		return keyseq.KeyEnd, keyseq.ModNone
	case KeyCtrlA:
		return keyseq.KeyCtrlA, keyseq.ModNone
	case KeyCtrlB:
		return keyseq.KeyCtrlB, keyseq.ModNone
	case KeyCtrlC:
		return keyseq.KeyCtrlC, keyseq.ModNone
	case KeyCtrlD:
		return keyseq.KeyCtrlD, keyseq.ModNone
	case KeyCtrlE:
		return keyseq.KeyCtrlE, keyseq.ModNone
	case KeyCtrlF:
		return keyseq.KeyCtrlF, keyseq.ModNone
	case KeyCtrlG:
		return keyseq.KeyCtrlG, keyseq.ModNone
	case KeyCtrlQ:
		return keyseq.KeyCtrlQ, keyseq.ModNone
	case KeyCtrlR:
		return keyseq.KeyCtrlR, keyseq.ModNone
	case KeyCtrlK:
		return keyseq.KeyCtrlK, keyseq.ModNone
	case KeyCtrlU:
		return keyseq.KeyCtrlU, keyseq.ModNone
	case KeyCtrlW:
		return keyseq.KeyCtrlW, keyseq.ModNone
	case KeyAltB:
		return keyseq.KeyNone, keyseq.ModAlt
	case KeyAltF:
		return keyseq.KeyNone, keyseq.ModAlt
	default:
		return keyseq.KeyNone, keyseq.ModNone
	}
}

// Keymap resolves decoded input events to Actions, buffering multi-key
// sequences (e.g. a leader key) via the internal/keyseq trie the way the
// teacher's own keymap.go resolves termbox key chords to peco actions.
type Keymap struct {
	seq *keyseq.Keyseq
}

// NewKeymap builds a Keymap from the default bindings. An entry of bindings
// keyed by a default binding's name (e.g. "tab", "ctrl-d") replaces that
// binding's Action; names that match no default binding are ignored.
func NewKeymap(bindings map[string]Action) *Keymap {
	seq := keyseq.New()
	for _, b := range defaultBindingList(bindings) {
		seq.Add(b.keys, b.action)
	}
	_ = seq.Compile()
	return &Keymap{seq: seq}
}

type bindingEntry struct {
	keys   keyseq.KeyList
	action Action
}

// defaultBindingList returns the picker's built-in single-key bindings,
// keyed by an opaque sequence name so a caller-supplied overrides map can
// replace any one of them without having to restate the rest.
func defaultBindingList(overrides map[string]Action) []bindingEntry {
	single := func(e Event) keyseq.KeyList { return keyseq.KeyList{eventToKeyseqKey(e)} }

	entries := []struct {
		name   string
		event  Event
		action Action
	}{
		{"enter", Event{Kind: EventKey, Key: KeyEnter}, ActionAccept},
		{"esc", Event{Kind: EventKey, Key: KeyEscape}, ActionQuit},
		{"ctrl-g", Event{Kind: EventKey, Key: KeyCtrlG}, ActionQuit},
		{"ctrl-q", Event{Kind: EventKey, Key: KeyCtrlQ}, ActionQuit},
		{"ctrl-c", Event{Kind: EventKey, Key: KeyCtrlC}, ActionAbort},
		{"ctrl-r", Event{Kind: EventKey, Key: KeyCtrlR}, ActionRestart},
		{"tab", Event{Kind: EventKey, Key: KeyTab}, ActionToggleSelectAndNext},
		{"left", Event{Kind: EventKey, Key: KeyLeft}, ActionCursorLeft},
		{"right", Event{Kind: EventKey, Key: KeyRight}, ActionCursorRight},
		{"ctrl-b", Event{Kind: EventKey, Key: KeyCtrlB}, ActionCursorLeft},
		{"ctrl-f", Event{Kind: EventKey, Key: KeyCtrlF}, ActionCursorRight},
		{"home", Event{Kind: EventKey, Key: KeyHome}, ActionCursorToStart},
		{"end", Event{Kind: EventKey, Key: KeyEnd}, ActionCursorToEnd},
		{"ctrl-a", Event{Kind: EventKey, Key: KeyCtrlA}, ActionCursorToStart},
		{"ctrl-e", Event{Kind: EventKey, Key: KeyCtrlE}, ActionCursorToEnd},
		{"backspace", Event{Kind: EventKey, Key: KeyBackspace}, ActionDeleteBackward},
		{"delete", Event{Kind: EventKey, Key: KeyDelete}, ActionDeleteForward},
		{"ctrl-d", Event{Kind: EventKey, Key: KeyCtrlD}, ActionDeleteForwardOrQuit},
		{"ctrl-w", Event{Kind: EventKey, Key: KeyCtrlW}, ActionDeleteBackwardWord},
		{"ctrl-u", Event{Kind: EventKey, Key: KeyCtrlU}, ActionDeleteToStart},
		{"ctrl-k", Event{Kind: EventKey, Key: KeyCtrlK}, ActionDeleteToEnd},
		{"up", Event{Kind: EventKey, Key: KeyUp}, ActionSelectUp},
		{"down", Event{Kind: EventKey, Key: KeyDown}, ActionSelectDown},
	}

	out := make([]bindingEntry, 0, len(entries))
	for _, e := range entries {
		action := e.action
		if ov, ok := overrides[e.name]; ok {
			action = ov
		}
		out = append(out, bindingEntry{keys: single(e.event), action: action})
	}
	return out
}

// Resolve feeds one decoded event into the sequence matcher, returning the
// bound Action once a full sequence completes. ok is false while a
// multi-key chain is still in progress or the event didn't start one.
func (k *Keymap) Resolve(e Event) (action Action, ok bool) {
	if e.Kind != EventKey {
		return ActionNone, false
	}
	v, err := k.seq.AcceptKey(eventToKeyseqKey(e))
	if err != nil {
		return ActionNone, false
	}
	a, _ := v.(Action)
	return a, true
}
