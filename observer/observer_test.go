package observer

import (
	"testing"
	"time"
)

func TestPushOverwritesPending(t *testing.T) {
	n, o := New[int]()
	n.Push(1)
	n.Push(2)
	v, ok, _ := o.TryRecv()
	if !ok || v != 2 {
		t.Fatalf("got (%d, %v), want (2, true)", v, ok)
	}
}

func TestRecvBlocksUntilPush(t *testing.T) {
	n, o := New[string]()
	done := make(chan string, 1)
	go func() {
		v, ok := o.Recv()
		if !ok {
			done <- "!ok"
			return
		}
		done <- v
	}()

	time.Sleep(10 * time.Millisecond)
	n.Push("hello")

	select {
	case v := <-done:
		if v != "hello" {
			t.Fatalf("got %q, want hello", v)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for Recv")
	}
}

func TestCloseWakesBlockedReceivers(t *testing.T) {
	n, o := New[int]()
	done := make(chan bool, 1)
	go func() {
		_, ok := o.Recv()
		done <- ok
	}()

	time.Sleep(10 * time.Millisecond)
	n.Close()

	select {
	case ok := <-done:
		if ok {
			t.Fatal("expected Recv to report disconnected")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for close to wake receiver")
	}
}

func TestPushAfterCloseFails(t *testing.T) {
	n, _ := New[int]()
	n.Close()
	if n.Push(1) {
		t.Fatal("expected Push after Close to fail")
	}
}
