package hann

import (
	"fmt"
	"sort"
	"sync"
)

// precomputedLengths are the frame sizes served from the default table.
// Changing the set requires recompilation.
var precomputedLengths = [...]int{256, 512, 1024, 2048, 4096}

// Table holds precomputed Hann windows and their sums of squares for a fixed
// set of lengths. A Table is immutable after construction and safe for
// unsynchronized concurrent reads.
type Table struct {
	windows map[int][]float32
	sums    map[int]float64
}

// NewTable builds a table for the given lengths, or for the default set
// (256, 512, 1024, 2048, 4096) when none are given.
func NewTable(lengths ...int) (*Table, error) {
	if len(lengths) == 0 {
		lengths = precomputedLengths[:]
	}

	t := &Table{
		windows: make(map[int][]float32, len(lengths)),
		sums:    make(map[int]float64, len(lengths)),
	}

	for _, length := range lengths {
		if err := validateLength(length); err != nil {
			return nil, fmt.Errorf("precompute length %d: %w", length, err)
		}

		w := compute(length)
		t.windows[length] = w
		t.sums[length] = sumSquares(w)
	}

	return t, nil
}

// Lengths returns the precomputed lengths in ascending order.
func (t *Table) Lengths() []int {
	out := make([]int, 0, len(t.windows))
	for length := range t.windows {
		out = append(out, length)
	}

	sort.Ints(out)

	return out
}

// Cached reports whether length is served from the table.
func (t *Table) Cached(length int) bool {
	_, ok := t.windows[length]
	return ok
}

// Window returns the Hann window of the given length, copying the cached
// coefficients when length is precomputed and computing them otherwise.
func (t *Table) Window(length int) ([]float32, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}

	if cached, ok := t.windows[length]; ok {
		w := make([]float32, len(cached))
		copy(w, cached)

		return w, nil
	}

	return compute(length), nil
}

// SumSquares returns the sum of squared coefficients, keyed on len(window)
// when that length is precomputed. See the package-level SumSquares for the
// content assumption this implies.
func (t *Table) SumSquares(window []float32) float64 {
	if sum, ok := t.sums[len(window)]; ok {
		return sum
	}

	return sumSquares(window)
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// DefaultTable returns the shared table for the default lengths, building it
// on first use. Construction runs at most once; concurrent first callers all
// observe the same completed table, which is read-only afterwards.
func DefaultTable() *Table {
	defaultOnce.Do(func() {
		t, err := NewTable()
		if err != nil {
			panic("hann: building default table: " + err.Error())
		}
		defaultTable = t
	})

	return defaultTable
}
