package basics

import (
	"sort"
	"sync"
	"testing"
)

func TestParallelRowsSequential(t *testing.T) {
	var seen []int
	ParallelRows(5, false, func(y int) { seen = append(seen, y) })
	want := []int{0, 1, 2, 3, 4}
	if len(seen) != len(want) {
		t.Fatalf("got %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("got %v, want %v", seen, want)
		}
	}
}

func TestParallelRowsCoversEveryRow(t *testing.T) {
	const height = 37
	var mu sync.Mutex
	seen := make([]int, 0, height)
	ParallelRows(height, true, func(y int) {
		mu.Lock()
		seen = append(seen, y)
		mu.Unlock()
	})
	sort.Ints(seen)
	if len(seen) != height {
		t.Fatalf("got %d rows, want %d", len(seen), height)
	}
	for i, y := range seen {
		if y != i {
			t.Fatalf("row %d missing or duplicated: %v", i, seen)
		}
	}
}
