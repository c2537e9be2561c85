// Package matchlist implements the scrollable, variable-row-height list of
// matched items shown above the prompt. It tracks the current selection
// and the rows visible above and below it using the incremental
// size-accumulator from internal/incremental, so that resizing the
// viewport, moving the selection, or receiving newly matched items only
// recomputes the rows that actually changed rather than the whole list,
// following the layout rules from the teacher's layout.go generalized from
// single-line items to the variable-height, above/below buffer model.
package matchlist

import (
	"github.com/peco-labs/gopicker/internal/incremental"
)

// SizeFunc returns the number of screen rows item i occupies.
type SizeFunc func(i int) uint16

// Config tunes the viewport's behavior.
type Config struct {
	// Padding is the minimum number of rows kept visible above and below
	// the selection, except when that would require scrolling past the
	// start or end of the list.
	Padding uint16
	// Reversed makes Reset fill the whole height from the below buffer
	// without reserving padding rows, and is paired with the *Rev selection
	// methods, which invert the selection direction. The engine's buffers
	// and the order in which they are drawn are the same in both modes.
	Reversed bool
}

// Engine is the match-list's layout state: which item is selected, and how
// many screen rows above/below it are currently filled.
type Engine struct {
	cfg Config

	sizeOf SizeFunc
	total  int

	selection int // absolute index into the matched-item list, 0 = first

	width, height uint16

	// above holds the row-heights of items immediately above the
	// selection, ordered nearest-to-farthest; below holds the selection's
	// own height followed by items below it, nearest-to-farthest.
	above, below []uint16

	aboveIter *incremental.Iterator
	belowIter *incremental.Iterator
}

// New constructs an empty engine; call Reset once items are available.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Selection returns the currently selected item's absolute index, or -1 if
// the list is empty.
func (e *Engine) Selection() int {
	if e.total == 0 {
		return -1
	}
	return e.selection
}

// Total returns the number of items the engine currently knows about.
func (e *Engine) Total() int { return e.total }

// VisibleAbove returns the row-heights of items rendered above the
// selection, nearest first.
func (e *Engine) VisibleAbove() []uint16 { return e.above }

// VisibleBelow returns the row-heights of the selection and items below it,
// nearest first (index 0 is the selection's own row height).
func (e *Engine) VisibleBelow() []uint16 { return e.below }

func sum(rows []uint16) uint16 {
	var t uint16
	for _, r := range rows {
		t += r
	}
	return t
}

// rebuildIterators points above/belowIter at the items immediately
// adjacent to the current selection, beyond whatever is already buffered
// in e.above/e.below; callers extend from there.
func (e *Engine) rebuildIterators() {
	belowIdx := e.selection + len(e.below)
	e.belowIter = incremental.NewIterator(func() (int, bool) {
		if belowIdx >= e.total {
			return 0, false
		}
		v := int(e.sizeOf(belowIdx))
		belowIdx++
		return v, true
	})

	aboveIdx := e.selection - 1 - len(e.above)
	e.aboveIter = incremental.NewIterator(func() (int, bool) {
		if aboveIdx < 0 {
			return 0, false
		}
		v := int(e.sizeOf(aboveIdx))
		aboveIdx--
		return v, true
	})
}

// paddingTop returns the minimum rows reserved above the selection for a
// viewport of the given size: min(cfg.Padding, (size-1)/2), so the budget
// never exceeds what a small viewport can actually afford.
func (e *Engine) paddingTop(size uint16) uint16 {
	if size == 0 {
		return 0
	}
	max := (size - 1) / 2
	if e.cfg.Padding < max {
		return e.cfg.Padding
	}
	return max
}

// Reset rebuilds the viewport from scratch against a (possibly new) item
// list, moving the selection to the first item. In Reversed mode the reset
// fills the whole height from the below buffer; non-reversed mode fills
// below with at most height-paddingTop rows. The selection is then the
// first item and nothing lies above it, so the remaining paddingTop rows
// stay empty.
func (e *Engine) Reset(total int, sizeOf SizeFunc, width, height uint16) {
	e.sizeOf = sizeOf
	e.total = total
	e.selection = 0
	e.width, e.height = width, height
	e.above = e.above[:0]
	e.below = e.below[:0]

	if total == 0 {
		e.aboveIter, e.belowIter = nil, nil
		return
	}
	e.rebuildIterators()

	if e.cfg.Reversed {
		e.extendBelow(height)
		return
	}

	got := e.extendBelow(height - e.paddingTop(height))
	if remaining := height - got; remaining > 0 {
		e.extendAbove(remaining)
	}
}

// extendBelow grows the below buffer (selection + rows below it) by at
// most limitSize rows, and returns how much was actually added.
func (e *Engine) extendBelow(limitSize uint16) uint16 {
	var added uint16
	remaining := limitSize
	for remaining > 0 {
		p, ok := e.belowIter.NextPartial(remaining)
		if !ok {
			break
		}
		remaining -= p.Size
		added += p.Size
		if p.New {
			e.below = append(e.below, p.Size)
		} else {
			e.below[len(e.below)-1] += p.Size
		}
	}
	return added
}

func (e *Engine) extendAbove(limitSize uint16) uint16 {
	var added uint16
	remaining := limitSize
	for remaining > 0 {
		p, ok := e.aboveIter.NextPartial(remaining)
		if !ok {
			break
		}
		remaining -= p.Size
		added += p.Size
		if p.New {
			e.above = append(e.above, p.Size)
		} else {
			e.above[len(e.above)-1] += p.Size
		}
	}
	return added
}

// Resize changes the viewport dimensions, growing or shrinking the
// above/below buffers to match, while keeping the selection's row visible.
func (e *Engine) Resize(width, height uint16) {
	e.width = width
	if e.total == 0 {
		e.height = height
		return
	}
	e.rebuildIterators()

	if height > e.height {
		e.growViewport(height - e.height)
	} else if height < e.height {
		e.shrinkViewport(e.height - height)
	}
	e.height = height
}

// growViewport reveals up to extra additional rows, preferring rows below
// the selection first (layout rule 3: new index grows downward before
// upward), falling back to rows above once below is exhausted.
func (e *Engine) growViewport(extra uint16) {
	got := e.extendBelow(extra)
	extra -= got
	if extra > 0 {
		e.extendAbove(extra)
	}
}

// shrinkViewport discards up to excess rows, preferring to trim from the
// bottom of the below buffer first, then from the top of the above buffer,
// per layout rule 4 (delete higher-index elements before lower-index ones).
func (e *Engine) shrinkViewport(excess uint16) {
	for excess > 0 && len(e.below) > 1 {
		last := e.below[len(e.below)-1]
		if last <= excess {
			e.below = e.below[:len(e.below)-1]
			excess -= last
		} else {
			e.below[len(e.below)-1] -= excess
			excess = 0
		}
	}
	for excess > 0 && len(e.above) > 0 {
		last := e.above[len(e.above)-1]
		if last <= excess {
			e.above = e.above[:len(e.above)-1]
			excess -= last
		} else {
			e.above[len(e.above)-1] -= excess
			excess = 0
		}
	}
}

// UpdateItems informs the engine that the underlying matched-item count
// changed (typically growing, as the matcher finds more matches), without
// moving the selection. Existing above/below rows are preserved; only the
// newly available capacity (if the viewport was under-filled) is drawn
// from the item list.
func (e *Engine) UpdateItems(total int, sizeOf SizeFunc) {
	e.sizeOf = sizeOf
	oldTotal := e.total
	e.total = total
	if total == 0 {
		e.Reset(0, sizeOf, e.width, e.height)
		return
	}
	if oldTotal == 0 {
		e.Reset(total, sizeOf, e.width, e.height)
		return
	}
	if e.selection >= total {
		e.selection = total - 1
	}
	e.rebuildIterators()
	filled := sum(e.above) + sum(e.below)
	if filled < e.height {
		e.growViewport(e.height - filled)
	}
}

// IncrementSelection moves the selection up (toward index 0) by n items,
// sliding the viewport only as far as necessary to keep it visible.
func (e *Engine) IncrementSelection(n int) {
	if e.total == 0 || n <= 0 {
		return
	}
	for i := 0; i < n && e.selection > 0; i++ {
		if len(e.above) == 0 {
			e.rebuildIterators()
			e.extendAbove(e.sizeOf(e.selection - 1))
		}
		h := e.above[0]
		e.above = e.above[1:]
		e.below = append([]uint16{h}, e.below...)
		e.selection--
	}
	e.enforcePadding()
}

// DecrementSelection moves the selection down (toward the end) by n items.
func (e *Engine) DecrementSelection(n int) {
	if e.total == 0 || n <= 0 {
		return
	}
	for i := 0; i < n && e.selection < e.total-1; i++ {
		if len(e.below) <= 1 {
			e.rebuildIterators()
			e.extendBelow(e.sizeOf(e.selection + 1))
		}
		h := e.below[0]
		e.below = e.below[1:]
		e.above = append([]uint16{h}, e.above...)
		e.selection++
	}
	e.enforcePadding()
}

// enforcePadding grows the above/below buffers so at least cfg.Padding rows
// are visible on each side of the selection whenever the list is long
// enough to afford it, per the layout priority rules: padding is honored
// except near the very start or end of the list.
func (e *Engine) enforcePadding() {
	if e.cfg.Padding == 0 || e.total == 0 {
		return
	}
	e.rebuildIterators()
	if sum(e.above) < e.cfg.Padding {
		e.extendAbove(e.cfg.Padding - sum(e.above))
	}
	selectionRow := e.below[0]
	if sum(e.below) < e.cfg.Padding+selectionRow {
		e.extendBelow(e.cfg.Padding + selectionRow - sum(e.below))
	}
}
