// Package picker implements an interactive, fuzzy-filtering terminal item
// picker: feed it a stream of items of any type, and it draws a scrollable,
// incrementally-narrowing list beneath a query prompt until the user
// accepts one (or, in multi-select mode, a set of them) or cancels.
package picker

import (
	"context"
	"sync"

	"github.com/peco-labs/gopicker/observer"
)

// Picker runs one fuzzy-picking session over items of type T.
type Picker[T any] struct {
	d *driver[T]
}

// New constructs a Picker that renders items with render, applying opts in
// order over DefaultOptions.
func New[T any](render Renderer[T], opts ...Option) *Picker[T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Picker[T]{d: newDriver(o, render)}
}

// Injector returns a handle for streaming items into the picker from any
// goroutine, including before Pick/PickMulti is called.
func (p *Picker[T]) Injector() Injector[T] {
	return p.d.Injector()
}

// InjectorObserver returns an observer that yields a fresh Injector each
// time the user issues the Restart binding (Ctrl-r by default), so a
// producer can abandon an in-flight scan and start over against the
// picker's now-cleared match list. If seedWithInitial is true, the
// observer is pre-loaded with the picker's current Injector, letting a
// producer that calls Recv in a loop until ok is false start without a
// separate call to Injector.
func (p *Picker[T]) InjectorObserver(seedWithInitial bool) observer.Observer[Injector[T]] {
	return p.d.InjectorObserver(seedWithInitial)
}

// Pick runs the picker to completion and returns the single accepted item.
// If Options.Multi was set and the user toggled on more than one item, the
// toggled-on item with the lowest match-list index is returned.
func (p *Picker[T]) Pick(ctx context.Context) (*T, error) {
	res := p.d.run(ctx)
	if res.err != nil {
		return nil, res.err
	}
	if len(res.items) == 0 {
		return nil, nil
	}
	return res.items[0], nil
}

// PickMulti runs the picker to completion and returns every accepted item.
// With Options.Multi unset, this is either zero or one items, matching
// Pick's own result.
func (p *Picker[T]) PickMulti(ctx context.Context) ([]*T, error) {
	res := p.d.run(ctx)
	if res.err != nil {
		return nil, res.err
	}
	return res.items, nil
}

// streamItems pushes items into inj using up to o.Threads worker goroutines,
// each rendering and pushing its own slice, matching the "threads" option's
// documented role as a worker-count hint for exactly this kind of bulk
// producer.
func streamItems[T any](items []T, inj Injector[T], threads int) {
	n := max1(threads)
	if n > len(items) {
		n = max1(len(items))
	}
	if n <= 1 {
		for i := range items {
			inj.Push(items[i])
		}
		return
	}

	chunk := (len(items) + n - 1) / n
	var wg sync.WaitGroup
	for start := 0; start < len(items); start += chunk {
		end := start + chunk
		if end > len(items) {
			end = len(items)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				inj.Push(items[i])
			}
		}(start, end)
	}
	wg.Wait()
}

// Pick is a convenience wrapper that streams items from a slice into a new
// single-select Picker and runs it to completion, for the common case of
// picking from an already-known, static candidate list.
func Pick[T any](ctx context.Context, items []T, render Renderer[T], opts ...Option) (*T, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := &Picker[T]{d: newDriver(o, render)}
	inj := p.Injector()
	go streamItems(items, inj, o.Threads)
	return p.Pick(ctx)
}

// PickMulti is the multi-select counterpart of Pick.
func PickMulti[T any](ctx context.Context, items []T, render Renderer[T], opts ...Option) ([]*T, error) {
	o := DefaultOptions()
	for _, opt := range append(opts, WithMulti()) {
		opt(&o)
	}
	p := &Picker[T]{d: newDriver(o, render)}
	inj := p.Injector()
	go streamItems(items, inj, o.Threads)
	return p.PickMulti(ctx)
}
