package picker

import (
	"context"
	"os"
	"syscall"
	"time"

	"github.com/peco-labs/gopicker/internal/matcher"
	"github.com/peco-labs/gopicker/internal/sighandler"
	"github.com/peco-labs/gopicker/internal/span"
	"github.com/peco-labs/gopicker/lazy"
	"github.com/peco-labs/gopicker/matchlist"
	"github.com/peco-labs/gopicker/observer"
	"github.com/peco-labs/gopicker/prompt"
)

// driver owns one picker session's full runtime: the terminal, the fuzzy
// matcher, the prompt and match-list components, and the keymap that ties
// decoded input to actions against them. Ported from the teacher's Peco
// struct and its Run method (peco.go), restructured around this module's
// own matcher/prompt/matchlist/lazy packages instead of peco's hub-and-spoke
// channel design.
type driver[T any] struct {
	opts     Options
	render   Renderer[T]
	matcher  *matcher.Matcher[T]
	keymap   *Keymap
	term     *Terminal
	prompt   *prompt.Prompt
	list     *matchlist.Engine
	sel      *Selection[T]
	snapshot []matcher.Match[T]

	// restartNotifier/restartObserver form the single-slot channel a Restart
	// event hands a fresh Injector through: InjectorObserver exposes the
	// receive side to callers, dispatch's ActionRestart case pushes into it.
	restartNotifier observer.Notifier[Injector[T]]
	restartObserver observer.Observer[Injector[T]]
}

func matcherConfigFor(opts Options) matcher.Config {
	return matcher.Config{CaseMatching: opts.CaseMatching, Normalization: opts.Normalization}
}

func newDriver[T any](opts Options, render Renderer[T]) *driver[T] {
	m := matcher.New(func(item *T) string { return render.Render(item) }, matcherConfigFor(opts))
	p := prompt.New(opts.PromptConfig)
	if opts.Query != "" {
		p.SetPrompt(opts.Query)
		m.SetQuery(opts.Query)
	}
	notifier, obs := observer.New[Injector[T]]()
	return &driver[T]{
		opts:            opts,
		render:          render,
		matcher:         m,
		keymap:          NewKeymap(nil),
		term:            NewTerminal(),
		prompt:          p,
		list:            matchlist.New(matchlist.Config{Padding: opts.Padding, Reversed: opts.Reversed}),
		sel:             NewSelection[T](),
		restartNotifier: notifier,
		restartObserver: obs,
	}
}

// Injector returns a handle callers use to stream items into the picker
// from any goroutine, before or during Run.
func (d *driver[T]) Injector() Injector[T] {
	return Injector[T]{inner: matcher.NewInjector(d.matcher)}
}

// InjectorObserver returns the receive side of the Restart handoff channel.
// If seedWithInitial is true, the observer is pre-loaded with the driver's
// current Injector, so a producer that only ever calls Recv once (never
// having seen a Restart) still gets a handle to stream into.
func (d *driver[T]) InjectorObserver(seedWithInitial bool) observer.Observer[Injector[T]] {
	if seedWithInitial {
		d.restartNotifier.Push(d.Injector())
	}
	return d.restartObserver
}

// result is what Run settles on: either a single accepted item, a set of
// multi-selected items, or an abort/cancellation reason.
type result[T any] struct {
	items []*T
	err   *PickError
}

func (d *driver[T]) run(ctx context.Context) result[T] {
	if err := d.term.Init(d.opts.Resolve); err != nil {
		return result[T]{err: err.(*PickError)}
	}
	defer d.term.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stopSigHandler := withSighandler(cancel)
	defer stopSigHandler()

	defer d.restartNotifier.Close()

	w, h := d.term.Size()
	d.list.Reset(0, d.sizeOf, uint16(w), uint16(h-1))

	events := d.term.PollEvents(ctx, d.opts.Resolve)

	tick := time.NewTicker(time.Second / time.Duration(max1(d.opts.FrameRate)))
	defer tick.Stop()

	d.redraw()

	for {
		select {
		case <-ctx.Done():
			return result[T]{err: ErrUserInterrupted}

		case e, ok := <-events:
			if !ok {
				return result[T]{err: ErrDisconnected}
			}
			res, done, queryChanged := d.drainAndHandle(ctx, e, events)
			if done {
				return res
			}
			if queryChanged {
				d.resetMatches()
			} else {
				d.syncMatches()
			}
			d.redraw()

		case <-tick.C:
			settled := d.matcher.Tick(d.opts.TickBudget)
			if settled && len(d.matcher.Snapshot()) == len(d.snapshot) {
				continue
			}
			d.syncMatches()
			d.redraw()
		}
	}
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func (d *driver[T]) sizeOf(i int) uint16 {
	if i < 0 || i >= len(d.snapshot) {
		return 1
	}
	m := d.snapshot[i]
	s := span.New(m.Rendered, m.Indices, span.KeepAll, 0)
	if n := s.NumLines(); n > 0 {
		return uint16(n)
	}
	return 1
}

// syncMatches refreshes the cached snapshot and informs the list engine of
// any newly available matches, without disturbing the current selection.
func (d *driver[T]) syncMatches() {
	d.snapshot = d.matcher.Snapshot()
	d.list.UpdateItems(len(d.snapshot), d.sizeOf)
}

func (d *driver[T]) resetMatches() {
	d.snapshot = d.matcher.Snapshot()
	w, h := d.term.Size()
	d.list.Reset(len(d.snapshot), d.sizeOf, uint16(w), uint16(h-1))
}

// drainAndHandle processes e and, without blocking, every event already
// queued on events, folding prompt edits and selection moves through the
// lazy package's coalescers before applying the net change once. This is
// what turns a burst of ten held-down Down presses into a single
// IncrementSelection(10) and a single redraw, per the lazy.Prompt/
// lazy.MatchList fold rules.
func (d *driver[T]) drainAndHandle(ctx context.Context, e Event, events <-chan Event) (res result[T], done bool, queryChanged bool) {
	lp := lazy.NewPrompt(d.prompt)
	var ll *lazy.MatchList
	if d.opts.Reversed {
		ll = lazy.NewReversedMatchList(d.list)
	} else {
		ll = lazy.NewMatchList(d.list)
	}

	apply := func(e Event) bool {
		switch e.Kind {
		case EventResize:
			w, h := d.term.Size()
			d.prompt.Resize(uint16(w))
			d.list.Resize(uint16(w), uint16(h-1))
			return false
		case EventPaste:
			lp.Handle(prompt.Event{Kind: prompt.Paste, Str: e.Text})
			queryChanged = true
			return false
		}

		if a, ok := d.keymap.Resolve(e); ok {
			r, stop := d.dispatch(a, lp, ll, &queryChanged)
			if stop {
				res, done = r, true
			}
			return stop
		}
		if e.Kind == EventKey && e.Key == KeyRune && e.Rune != 0 {
			lp.Handle(prompt.Event{Kind: prompt.Insert, Ch: e.Rune})
			queryChanged = true
		}
		return false
	}

	if apply(e) {
		return res, done, queryChanged
	}
drain:
	for {
		select {
		case next, ok := <-events:
			if !ok {
				break drain
			}
			if apply(next) {
				break drain
			}
		default:
			break drain
		}
	}

	status := lp.Finish()
	ll.Finish()
	if status.ContentsChanged {
		queryChanged = true
	}
	if queryChanged {
		d.matcher.SetQuery(d.prompt.Contents())
	}
	return res, done, queryChanged
}

func (d *driver[T]) dispatch(a Action, lp *lazy.Prompt, ll *lazy.MatchList, queryChanged *bool) (result[T], bool) {
	switch a {
	case ActionQuit:
		return result[T]{}, true
	case ActionAbort:
		return result[T]{err: ErrUserInterrupted}, true
	case ActionAccept:
		return result[T]{items: d.accepted()}, true
	case ActionToggleSelectAndNext:
		if d.opts.Multi {
			if idx := d.list.Selection(); idx >= 0 && idx < len(d.snapshot) {
				d.sel.Toggle(idx, d.snapshot[idx].Item)
			}
			ll.Handle(lazy.MatchListEvent{Kind: lazy.Down, N: 1})
		}
	case ActionCursorLeft:
		lp.Handle(prompt.Event{Kind: prompt.Left, N: 1})
	case ActionCursorRight:
		lp.Handle(prompt.Event{Kind: prompt.Right, N: 1})
	case ActionCursorWordLeft:
		lp.Handle(prompt.Event{Kind: prompt.WordLeft, N: 1})
	case ActionCursorWordRight:
		lp.Handle(prompt.Event{Kind: prompt.WordRight, N: 1})
	case ActionCursorToStart:
		lp.Handle(prompt.Event{Kind: prompt.ToStart})
	case ActionCursorToEnd:
		lp.Handle(prompt.Event{Kind: prompt.ToEnd})
	case ActionDeleteBackward:
		lp.Handle(prompt.Event{Kind: prompt.Backspace, N: 1})
		*queryChanged = true
	case ActionDeleteForward:
		lp.Handle(prompt.Event{Kind: prompt.Delete, N: 1})
		*queryChanged = true
	case ActionDeleteForwardOrQuit:
		if lp.IsEmpty() {
			return result[T]{}, true
		}
		lp.Handle(prompt.Event{Kind: prompt.Delete, N: 1})
		*queryChanged = true
	case ActionDeleteBackwardWord:
		lp.Handle(prompt.Event{Kind: prompt.BackspaceWord, N: 1})
		*queryChanged = true
	case ActionDeleteToStart:
		lp.Handle(prompt.Event{Kind: prompt.ClearBefore})
		*queryChanged = true
	case ActionDeleteToEnd:
		lp.Handle(prompt.Event{Kind: prompt.ClearAfter})
		*queryChanged = true
	case ActionSelectUp:
		ll.Handle(lazy.MatchListEvent{Kind: lazy.Up, N: 1})
	case ActionSelectDown:
		ll.Handle(lazy.MatchListEvent{Kind: lazy.Down, N: 1})
	case ActionRestart:
		d.restart()
	}
	return result[T]{}, false
}

// restart discards the current matcher (and its accumulated items) in
// favor of a fresh one carrying the prompt's current query, resets the
// match-list to empty, and hands a fresh Injector to whatever's listening
// on InjectorObserver, per the Restart event (spec.md §4.8/§4.9).
func (d *driver[T]) restart() {
	d.matcher = matcher.New(func(item *T) string { return d.render.Render(item) }, matcherConfigFor(d.opts))
	d.matcher.SetQuery(d.prompt.Contents())
	d.snapshot = nil
	w, h := d.term.Size()
	d.list.Reset(0, d.sizeOf, uint16(w), uint16(h-1))
	d.restartNotifier.Push(Injector[T]{inner: matcher.NewInjector(d.matcher)})
}

// accepted returns the items Run should return once the user accepts: the
// multi-selection if any items were toggled on, the single highlighted
// item otherwise, or nil if the list is empty.
func (d *driver[T]) accepted() []*T {
	if d.opts.Multi && d.sel.Len() > 0 {
		return d.sel.Items()
	}
	idx := d.list.Selection()
	if idx < 0 || idx >= len(d.snapshot) {
		return nil
	}
	return []*T{d.snapshot[idx].Item}
}

func (d *driver[T]) redraw() {
	w, h := d.term.Size()
	listHeight := h - 1

	row := 0
	above := d.list.VisibleAbove()
	start := d.list.Selection() - len(above)
	for i, rows := range reverseRows(above) {
		d.drawItem(start+i, row, w, false)
		row += int(rows)
	}

	below := d.list.VisibleBelow()
	sel := d.list.Selection()
	for i, rows := range below {
		d.drawItem(sel+i, row, w, i == 0)
		row += int(rows)
	}
	for row < listHeight {
		row++
	}

	promptRow := listHeight
	d.drawPrompt(promptRow, w)
	d.term.Flush()
}

func reverseRows(rows []uint16) []uint16 {
	out := make([]uint16, len(rows))
	for i, r := range rows {
		out[len(rows)-1-i] = r
	}
	return out
}

func (d *driver[T]) drawItem(idx, row, width int, selected bool) {
	if idx < 0 || idx >= len(d.snapshot) {
		return
	}
	m := d.snapshot[idx]
	indices := m.Indices
	if !d.opts.Highlight {
		indices = nil
	}
	s := span.New(m.Rendered, indices, span.KeepAll, 0)
	// Reserve the two-column selection marker plus one guard column before
	// handing span.Draw its content budget, per match_list_width =
	// width.saturating_sub(3) in the original draw routine.
	s.Draw(d.term, row, saturatingSub(width, 3), int(d.opts.HighlightPadding), selected)
}

func saturatingSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}

func (d *driver[T]) drawPrompt(row, width int) {
	text, cursorOffset := d.prompt.View()
	col := 0
	for _, r := range d.opts.Prompt {
		d.term.SetCell(col, row, r, CellStyle{Bold: true})
		col++
	}
	for _, r := range text {
		d.term.SetCell(col, row, r, CellStyle{})
		col++
	}
	d.term.MoveCursor(len(d.opts.Prompt)+int(cursorOffset), row)
}

// withSighandler starts an internal/sighandler.Handler for SIGINT and
// SIGTERM whose SignalReceivedFunc calls cancel, so those signals cancel
// run's context; the returned func stops the handler's loop.
func withSighandler(cancel func()) func() {
	h := sighandler.New(os.Interrupt, syscall.SIGTERM)
	h.SignalReceivedFunc = func(os.Signal) bool {
		cancel()
		return false
	}
	loopCh := make(chan struct{})
	go h.Loop(loopCh)
	return func() { close(loopCh) }
}
