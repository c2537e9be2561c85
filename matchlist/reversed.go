package matchlist

// In reversed mode the above/below buffers keep their same meaning relative
// to the selection (items before it in the list vs. the selection and items
// after it). The *Rev helpers invert the direction a physical Up/Down key
// maps to, matching how the original picker's MatchListEvent::handle swaps
// selection_incr/selection_decr when config.reversed is set
// (match_list/draw.rs). lazy.MatchList picks these over the plain
// Increment/DecrementSelection when built with NewReversedMatchList, so the
// same key moves the selection in the opposite direction from non-reversed
// mode.
//
// The upstream picker's own reversed-mode selection_incr/selection_decr
// (match_list.rs) are unimplemented (`todo!()`); this package completes
// them as the identity swap described above rather than leaving the gap,
// since the swap itself is fully determined by the non-reversed behavior.

// IncrementSelectionRev is IncrementSelection for a Reversed-mode engine:
// the visual "up" key moves the selection toward the end of the list.
func (e *Engine) IncrementSelectionRev(n int) {
	e.DecrementSelection(n)
}

// DecrementSelectionRev is DecrementSelection for a Reversed-mode engine:
// the visual "down" key moves the selection toward the start of the list.
func (e *Engine) DecrementSelectionRev(n int) {
	e.IncrementSelection(n)
}
