package matchlist

import "testing"

func oneRow(int) uint16 { return 1 }

func TestResetFillsViewport(t *testing.T) {
	e := New(Config{})
	e.Reset(10, oneRow, 80, 4)
	if e.Selection() != 0 {
		t.Fatalf("selection = %d, want 0", e.Selection())
	}
	if got := sum(e.VisibleBelow()) + sum(e.VisibleAbove()); got != 4 {
		t.Fatalf("filled rows = %d, want 4", got)
	}
}

func TestResetReservesPaddingTopWhenNotReversed(t *testing.T) {
	e := New(Config{Padding: 3})
	e.Reset(20, oneRow, 80, 10)
	// paddingTop = min(3, (10-1)/2) = 3, so below gets at most 7 rows; the
	// selection is item 0, so nothing lies above it and 3 rows stay empty.
	if got := sum(e.VisibleBelow()); got != 7 {
		t.Fatalf("below rows = %d, want 7", got)
	}
	if got := sum(e.VisibleAbove()); got != 0 {
		t.Fatalf("above rows = %d, want 0", got)
	}
}

func TestReversedResetFillsOnlyBelow(t *testing.T) {
	e := New(Config{Padding: 3, Reversed: true})
	e.Reset(20, oneRow, 80, 10)
	if got := sum(e.VisibleBelow()); got != 10 {
		t.Fatalf("below rows = %d, want 10", got)
	}
	if got := len(e.VisibleAbove()); got != 0 {
		t.Fatalf("above rows = %d, want 0 for a reversed reset", got)
	}
}

func TestResetEmptyList(t *testing.T) {
	e := New(Config{})
	e.Reset(0, oneRow, 80, 4)
	if e.Selection() != -1 {
		t.Fatalf("selection = %d, want -1 for empty list", e.Selection())
	}
}

func TestDecrementThenIncrementSelection(t *testing.T) {
	e := New(Config{})
	e.Reset(10, oneRow, 80, 4)

	e.DecrementSelection(3)
	if e.Selection() != 3 {
		t.Fatalf("selection = %d, want 3", e.Selection())
	}

	e.IncrementSelection(2)
	if e.Selection() != 1 {
		t.Fatalf("selection = %d, want 1", e.Selection())
	}
}

func TestSelectionClampsAtEnds(t *testing.T) {
	e := New(Config{})
	e.Reset(3, oneRow, 80, 10)

	e.IncrementSelection(5)
	if e.Selection() != 0 {
		t.Fatalf("selection = %d, want 0 (clamped)", e.Selection())
	}

	e.DecrementSelection(5)
	if e.Selection() != 2 {
		t.Fatalf("selection = %d, want 2 (clamped to last item)", e.Selection())
	}
}

func TestResizeSmallerTrimsBelowFirst(t *testing.T) {
	e := New(Config{})
	e.Reset(20, oneRow, 80, 10)
	e.Resize(80, 4)
	if got := sum(e.VisibleAbove()) + sum(e.VisibleBelow()); got != 4 {
		t.Fatalf("filled rows after shrink = %d, want 4", got)
	}
}

func TestResizeLargerGrowsBelowFirst(t *testing.T) {
	e := New(Config{})
	e.Reset(20, oneRow, 80, 4)
	e.Resize(80, 8)
	if got := sum(e.VisibleAbove()) + sum(e.VisibleBelow()); got != 8 {
		t.Fatalf("filled rows after grow = %d, want 8", got)
	}
}

func TestUpdateItemsShrinkToEmptyResetsSelection(t *testing.T) {
	e := New(Config{})
	e.Reset(5, oneRow, 80, 4)
	e.DecrementSelection(3)
	e.UpdateItems(0, oneRow)
	if e.Selection() != -1 {
		t.Fatalf("selection = %d, want -1 after items drop to zero", e.Selection())
	}
}
