// Package incremental implements a chunked, resumable accumulation of an
// item-size stream into an ordered collection, bounded by both a total size
// budget and (optionally) a step count budget. A single oversized element is
// never dropped: it is carried across calls as a "partial" remainder and
// drained on subsequent calls before any new element is consumed.
package incremental

// Partial is the result of stepping a size stream with a bound on the size
// returned: size is at most the limit passed to NextPartial, and new
// indicates whether size corresponds to a brand new element (true) or the
// continuation of a previous, oversized one (false).
type Partial struct {
	Size uint16
	New  bool
}

// SizeFunc yields the size of the next element, or ok=false when exhausted.
type SizeFunc func() (size int, ok bool)

// Iterator adapts a SizeFunc so it can be drained in bounded chunks,
// retaining the unconsumed remainder of an oversized element between calls.
type Iterator struct {
	next    SizeFunc
	partial int
}

// NewIterator wraps next for chunked consumption.
func NewIterator(next SizeFunc) *Iterator {
	return &Iterator{next: next}
}

// IsIncomplete reports whether the next call to NextPartial will yield a
// Partial with New == false, i.e. the previously returned element is only
// partially drained.
func (it *Iterator) IsIncomplete() bool {
	return it.partial > 0
}

// NextPartial returns the next Partial bounded by limit, or ok=false when
// the underlying stream is exhausted and nothing remains buffered.
//
// Guarantees: the returned Size is <= limit; the first value returned from a
// freshly constructed Iterator is either !ok, or a Partial with New == true.
func (it *Iterator) NextPartial(limit uint16) (Partial, bool) {
	if it.partial > 0 {
		if it.partial > int(limit) {
			it.partial -= int(limit)
			return Partial{New: false, Size: limit}, true
		}
		ret := uint16(it.partial)
		it.partial = 0
		return Partial{New: false, Size: ret}, true
	}

	size, ok := it.next()
	if !ok {
		return Partial{}, false
	}
	if size > int(limit) {
		it.partial = size - int(limit)
		return Partial{New: true, Size: limit}, true
	}
	return Partial{New: true, Size: uint16(size)}, true
}
