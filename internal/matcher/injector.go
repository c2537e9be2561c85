package matcher

// Injector is a cloneable handle that appends items to a Matcher from any
// goroutine. Multiple Injector values may share one Matcher; none of them
// block on the matcher's scan progress.
type Injector[T any] struct {
	m *Matcher[T]
}

// NewInjector returns a handle bound to m.
func NewInjector[T any](m *Matcher[T]) Injector[T] {
	return Injector[T]{m: m}
}

// Push appends item for later matching.
func (inj Injector[T]) Push(item T) {
	inj.m.Push(&item)
}
