package picker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeymapResolvesDefaultBindings(t *testing.T) {
	k := NewKeymap(nil)

	a, ok := k.Resolve(Event{Kind: EventKey, Key: KeyEnter})
	require.True(t, ok)
	require.Equal(t, ActionAccept, a)

	a, ok = k.Resolve(Event{Kind: EventKey, Key: KeyEscape})
	require.True(t, ok)
	require.Equal(t, ActionQuit, a)

	a, ok = k.Resolve(Event{Kind: EventKey, Key: KeyCtrlG})
	require.True(t, ok)
	require.Equal(t, ActionQuit, a)

	a, ok = k.Resolve(Event{Kind: EventKey, Key: KeyCtrlQ})
	require.True(t, ok)
	require.Equal(t, ActionQuit, a)

	a, ok = k.Resolve(Event{Kind: EventKey, Key: KeyCtrlC})
	require.True(t, ok)
	require.Equal(t, ActionAbort, a)

	a, ok = k.Resolve(Event{Kind: EventKey, Key: KeyCtrlD})
	require.True(t, ok)
	require.Equal(t, ActionDeleteForwardOrQuit, a)

	a, ok = k.Resolve(Event{Kind: EventKey, Key: KeyDown})
	require.True(t, ok)
	require.Equal(t, ActionSelectDown, a)
}

func TestKeymapOverrideReplacesBinding(t *testing.T) {
	k := NewKeymap(map[string]Action{"tab": ActionNone})

	a, ok := k.Resolve(Event{Kind: EventKey, Key: KeyTab})
	require.True(t, ok)
	require.Equal(t, ActionNone, a)
}

func TestKeymapIgnoresNonKeyEvents(t *testing.T) {
	k := NewKeymap(nil)
	_, ok := k.Resolve(Event{Kind: EventResize, Width: 80, Height: 24})
	require.False(t, ok)
}

func TestKeymapUnboundRuneNotResolved(t *testing.T) {
	k := NewKeymap(nil)
	_, ok := k.Resolve(Event{Kind: EventKey, Key: KeyRune, Rune: 'a'})
	require.False(t, ok)
}
