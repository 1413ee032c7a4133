package history

import "testing"

func TestPushAndCurrent(t *testing.T) {
	h := New()
	if h.Current() != "" {
		t.Fatalf("expected empty current on a fresh history, got %q", h.Current())
	}
	h.Push("#/home")
	h.Push("#/users/7")
	if h.Current() != "#/users/7" || h.Len() != 2 {
		t.Fatalf("unexpected state: current=%q len=%d", h.Current(), h.Len())
	}
}

func TestReplaceDoesNotGrow(t *testing.T) {
	h := New()
	h.Push("#/home")
	h.Replace("#/login")
	if h.Current() != "#/login" || h.Len() != 1 {
		t.Fatalf("expected in-place replace, got current=%q len=%d", h.Current(), h.Len())
	}
}

func TestReplaceOnEmptyEstablishesEntry(t *testing.T) {
	h := New()
	h.Replace("#/home")
	if h.Current() != "#/home" || h.Len() != 1 {
		t.Fatalf("expected first entry established, got current=%q len=%d", h.Current(), h.Len())
	}
}

func TestBackAndForward(t *testing.T) {
	h := New()
	h.Push("#/a")
	h.Push("#/b")
	h.Push("#/c")
	if addr, ok := h.Back(); !ok || addr != "#/b" {
		t.Fatalf("expected back to #/b, got %q ok=%v", addr, ok)
	}
	if addr, ok := h.Forward(); !ok || addr != "#/c" {
		t.Fatalf("expected forward to #/c, got %q ok=%v", addr, ok)
	}
	if _, ok := h.Forward(); ok {
		t.Fatalf("forward at the newest entry must fail")
	}
	h.Back()
	h.Back()
	if _, ok := h.Back(); ok {
		t.Fatalf("back at the oldest entry must fail")
	}
}

func TestPushTruncatesForwardTail(t *testing.T) {
	h := New()
	h.Push("#/a")
	h.Push("#/b")
	h.Push("#/c")
	h.Back()
	h.Push("#/d")
	if h.Current() != "#/d" || h.Len() != 3 {
		t.Fatalf("expected tail truncated, got current=%q len=%d", h.Current(), h.Len())
	}
	if _, ok := h.Forward(); ok {
		t.Fatalf("expected no forward entries after a push")
	}
}
