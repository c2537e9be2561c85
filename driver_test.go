package picker

import (
	"testing"

	"github.com/peco-labs/gopicker/internal/matcher"
	"github.com/peco-labs/gopicker/lazy"
	"github.com/peco-labs/gopicker/prompt"
	"github.com/stretchr/testify/require"
)

func TestDispatchRestartClearsMatcherAndHandsOutFreshInjector(t *testing.T) {
	d := newDriver(DefaultOptions(), RenderFunc[string](func(s *string) string { return *s }))
	old := d.matcher
	a := "alpha"
	d.snapshot = []matcher.Match[string]{{Item: &a, Rendered: a}}
	d.list.Reset(1, d.sizeOf, 80, 24)

	obs := d.InjectorObserver(false)

	var queryChanged bool
	_, done := d.dispatch(ActionRestart, lazy.NewPrompt(d.prompt), lazy.NewMatchList(d.list), &queryChanged)
	require.False(t, done)

	require.NotSame(t, old, d.matcher)
	require.Equal(t, 0, d.matcher.Len())
	require.Equal(t, -1, d.list.Selection())

	inj, ok, disconnected := obs.TryRecv()
	require.True(t, ok)
	require.False(t, disconnected)

	b := "beta"
	inj.Push(b)
	require.Equal(t, 1, d.matcher.Len())
}

func TestInjectorObserverSeedWithInitial(t *testing.T) {
	d := newDriver(DefaultOptions(), RenderFunc[string](func(s *string) string { return *s }))
	obs := d.InjectorObserver(true)

	inj, ok, disconnected := obs.TryRecv()
	require.True(t, ok)
	require.False(t, disconnected)

	a := "alpha"
	inj.Push(a)
	require.Equal(t, 1, d.matcher.Len())
}

func TestMax1ClampsToOne(t *testing.T) {
	require.Equal(t, 1, max1(0))
	require.Equal(t, 1, max1(-5))
	require.Equal(t, 30, max1(30))
}

func TestReverseRows(t *testing.T) {
	require.Equal(t, []uint16{3, 2, 1}, reverseRows([]uint16{1, 2, 3}))
	require.Empty(t, reverseRows(nil))
}

func TestDriverAcceptedSingleSelect(t *testing.T) {
	d := newDriver(DefaultOptions(), RenderFunc[string](func(s *string) string { return *s }))
	a, b := "alpha", "beta"
	d.snapshot = []matcher.Match[string]{
		{Item: &a, Rendered: a},
		{Item: &b, Rendered: b},
	}
	d.list.Reset(2, d.sizeOf, 80, 24)

	items := d.accepted()
	require.Len(t, items, 1)
	require.Equal(t, &a, items[0])
}

func TestDriverAcceptedMultiSelect(t *testing.T) {
	opts := DefaultOptions()
	WithMulti()(&opts)
	d := newDriver(opts, RenderFunc[string](func(s *string) string { return *s }))
	a, b := "alpha", "beta"
	d.snapshot = []matcher.Match[string]{
		{Item: &a, Rendered: a},
		{Item: &b, Rendered: b},
	}

	d.sel.Toggle(0, &a)
	d.sel.Toggle(1, &b)

	items := d.accepted()
	require.Len(t, items, 2)
}

func TestDriverAcceptedEmptySnapshot(t *testing.T) {
	d := newDriver(DefaultOptions(), RenderFunc[string](func(s *string) string { return *s }))
	d.list.Reset(0, d.sizeOf, 80, 24)
	require.Nil(t, d.accepted())
}

func TestDispatchQuitReturnsNoError(t *testing.T) {
	d := newDriver(DefaultOptions(), RenderFunc[string](func(s *string) string { return *s }))
	d.list.Reset(0, d.sizeOf, 80, 24)
	var queryChanged bool
	res, done := d.dispatch(ActionQuit, lazy.NewPrompt(d.prompt), lazy.NewMatchList(d.list), &queryChanged)
	require.True(t, done)
	require.Nil(t, res.err)
	require.Nil(t, res.items)
}

func TestDispatchAbortReturnsUserInterrupted(t *testing.T) {
	d := newDriver(DefaultOptions(), RenderFunc[string](func(s *string) string { return *s }))
	d.list.Reset(0, d.sizeOf, 80, 24)
	var queryChanged bool
	res, done := d.dispatch(ActionAbort, lazy.NewPrompt(d.prompt), lazy.NewMatchList(d.list), &queryChanged)
	require.True(t, done)
	require.Equal(t, ErrUserInterrupted, res.err)
}

func TestDispatchDeleteForwardOrQuitQuitsWhenPromptEmpty(t *testing.T) {
	d := newDriver(DefaultOptions(), RenderFunc[string](func(s *string) string { return *s }))
	d.list.Reset(0, d.sizeOf, 80, 24)
	var queryChanged bool
	res, done := d.dispatch(ActionDeleteForwardOrQuit, lazy.NewPrompt(d.prompt), lazy.NewMatchList(d.list), &queryChanged)
	require.True(t, done)
	require.Nil(t, res.err)
	require.False(t, queryChanged)
}

func TestDispatchDeleteForwardOrQuitDeletesWhenPromptNonEmpty(t *testing.T) {
	d := newDriver(DefaultOptions(), RenderFunc[string](func(s *string) string { return *s }))
	d.list.Reset(0, d.sizeOf, 80, 24)
	d.prompt.Handle(prompt.Event{Kind: prompt.Insert, Ch: 'a'})

	var queryChanged bool
	_, done := d.dispatch(ActionDeleteForwardOrQuit, lazy.NewPrompt(d.prompt), lazy.NewMatchList(d.list), &queryChanged)
	require.False(t, done)
	require.True(t, queryChanged)
}
