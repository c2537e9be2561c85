package picker

import "github.com/peco-labs/gopicker/internal/matcher"

// Injector lets a caller feed items into a running picker from any
// goroutine, for example a directory walker streaming file paths as it
// discovers them rather than blocking until the whole list is known.
type Injector[T any] struct {
	inner matcher.Injector[T]
}

// Push adds item to the picker's candidate list. Safe to call concurrently
// with other Push calls and with the picker's own frame loop.
func (i Injector[T]) Push(item T) {
	i.inner.Push(item)
}
