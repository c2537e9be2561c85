package incremental

import "testing"

func sliceSizeFunc(sizes []int) SizeFunc {
	i := 0
	return func() (int, bool) {
		if i >= len(sizes) {
			return 0, false
		}
		v := sizes[i]
		i++
		return v, true
	}
}

func TestIteratorNextPartial(t *testing.T) {
	it := NewIterator(sliceSizeFunc([]int{1, 7, 3, 2, 5}))

	assert := func(limit uint16, wantSize uint16, wantNew bool) {
		t.Helper()
		got, ok := it.NextPartial(limit)
		if !ok {
			t.Fatalf("expected a value, got none")
		}
		if got.Size != wantSize || got.New != wantNew {
			t.Fatalf("NextPartial(%d) = %+v, want {Size:%d New:%v}", limit, got, wantSize, wantNew)
		}
	}

	assert(2, 1, true)
	assert(5, 5, true)
	if !it.IsIncomplete() {
		t.Fatal("expected incomplete after partial 7-sized element")
	}
	assert(1, 1, false)
	if !it.IsIncomplete() {
		t.Fatal("expected still incomplete")
	}
	assert(1, 1, false)
	assert(3, 3, true)
	assert(1, 1, true)
	if !it.IsIncomplete() {
		t.Fatal("expected incomplete after partial 2-sized element")
	}
	assert(8, 1, false)
	assert(4, 4, true)
	assert(0, 0, false)
	assert(1, 1, false)
	if _, ok := it.NextPartial(0); ok {
		t.Fatal("expected exhausted iterator to return false")
	}
}

func TestAccumulatorExtendBounded(t *testing.T) {
	var buf []uint16
	acc := NewAccumulator(&buf, sliceSizeFunc([]int{3, 3, 3, 3}))

	added := acc.ExtendBounded(5, 2)
	if added != 5 {
		t.Fatalf("added = %d, want 5", added)
	}
	if len(buf) != 2 || buf[0] != 3 || buf[1] != 2 {
		t.Fatalf("buf = %v, want [3 2] (second element carried partially)", buf)
	}

	added = acc.ExtendBounded(10, 10)
	if added != 7 {
		t.Fatalf("added = %d, want 7 (remaining 1 + 3 + 3)", added)
	}
}

func TestAccumulatorExtendUnboundedStopsAtZero(t *testing.T) {
	var buf []uint16
	acc := NewAccumulator(&buf, sliceSizeFunc(nil))
	if got := acc.ExtendUnbounded(10); got != 0 {
		t.Fatalf("got %d, want 0 on exhausted source", got)
	}
	if len(buf) != 0 {
		t.Fatalf("buf = %v, want empty", buf)
	}
}
