package keyseq

import "testing"

func TestKeyTypeRoundTripsThroughName(t *testing.T) {
	for _, k := range []KeyType{KeyF1, KeyArrowUp, KeyCtrlA, KeyCtrlZ, KeyEnter, KeyEsc} {
		name := ToString(k)
		if name == "" {
			t.Fatalf("KeyType %d has no registered name", k)
		}
		got, ok := ToKeyType(name)
		if !ok {
			t.Fatalf("name %q did not round-trip back to a KeyType", name)
		}
		if got != k {
			t.Fatalf("ToKeyType(%q) = %d, want %d", name, got, k)
		}
	}
}

func TestCtrlKeyNamesAreLowercase(t *testing.T) {
	if ToString(KeyCtrlA) != "C-a" {
		t.Fatalf("ToString(KeyCtrlA) = %q, want \"C-a\"", ToString(KeyCtrlA))
	}
	if ToString(KeyCtrlZ) != "C-z" {
		t.Fatalf("ToString(KeyCtrlZ) = %q, want \"C-z\"", ToString(KeyCtrlZ))
	}
}

func TestUnknownNameNotFound(t *testing.T) {
	if _, ok := ToKeyType("NotAKey"); ok {
		t.Fatal("expected NotAKey to be unregistered")
	}
}
