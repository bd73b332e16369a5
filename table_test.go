package hann

import (
	"errors"
	"testing"
)

func TestNewTableDefaults(t *testing.T) {
	tab, err := NewTable()
	if err != nil {
		t.Fatal(err)
	}

	want := []int{256, 512, 1024, 2048, 4096}

	got := tab.Lengths()
	if len(got) != len(want) {
		t.Fatalf("lengths=%v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lengths=%v, want %v", got, want)
		}
	}

	for _, n := range want {
		if !tab.Cached(n) {
			t.Fatalf("Cached(%d)=false", n)
		}
	}

	if tab.Cached(100) {
		t.Fatal("Cached(100)=true")
	}
}

func TestNewTableCustomLengths(t *testing.T) {
	tab, err := NewTable(32, 16)
	if err != nil {
		t.Fatal(err)
	}

	got := tab.Lengths()
	if len(got) != 2 || got[0] != 16 || got[1] != 32 {
		t.Fatalf("lengths=%v, want [16 32]", got)
	}

	w, err := tab.Window(16)
	if err != nil {
		t.Fatal(err)
	}

	ref := compute(16)
	for i := range w {
		if w[i] != ref[i] {
			t.Fatalf("index %d: cached=%v computed=%v", i, w[i], ref[i])
		}
	}
}

func TestNewTableInvalidLength(t *testing.T) {
	_, err := NewTable(1)
	if !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("err=%v, want ErrInvalidLength", err)
	}
}

func TestTableWindowMiss(t *testing.T) {
	tab, err := NewTable(64)
	if err != nil {
		t.Fatal(err)
	}

	w, err := tab.Window(48)
	if err != nil {
		t.Fatal(err)
	}

	if len(w) != 48 {
		t.Fatalf("len=%d, want 48", len(w))
	}
}

func TestTableSumsConsistent(t *testing.T) {
	tab := DefaultTable()

	for _, n := range tab.Lengths() {
		w, err := tab.Window(n)
		if err != nil {
			t.Fatal(err)
		}

		if got, want := tab.SumSquares(w), sumSquares(w); got != want {
			t.Fatalf("length %d: cached sum %v != direct sum %v", n, got, want)
		}
	}
}

func TestDefaultTableSingleton(t *testing.T) {
	if DefaultTable() != DefaultTable() {
		t.Fatal("DefaultTable returned distinct instances")
	}
}
