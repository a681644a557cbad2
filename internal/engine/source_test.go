package engine

import (
	"sort"
	"testing"
)

func TestSourceIntnRange(t *testing.T) {
	s := NewSource("seed", "intn")
	for i := 0; i < 1000; i++ {
		n := s.Intn(4)
		if n < 0 || n >= 4 {
			t.Fatalf("Intn(4) out of range: %d", n)
		}
	}
}

func TestSourceIntRange(t *testing.T) {
	s := NewSource("seed", "range")
	for i := 0; i < 1000; i++ {
		n := s.IntRange(200, 1000)
		if n < 200 || n >= 1000 {
			t.Fatalf("IntRange(200, 1000) out of range: %d", n)
		}
	}
}

func TestSourceIntnCoversAllValues(t *testing.T) {
	s := NewSource("seed", "coverage")
	seen := make(map[int]int)
	for i := 0; i < 400; i++ {
		seen[s.Intn(4)]++
	}
	for v := 0; v < 4; v++ {
		if seen[v] == 0 {
			t.Errorf("value %d never drawn in 400 draws", v)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	s := NewSource("seed", "shuffle")
	xs := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	Shuffle(s, xs)

	sorted := append([]int(nil), xs...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i {
			t.Fatalf("shuffle lost or duplicated elements: %v", xs)
		}
	}
}

func TestShuffleDeterministic(t *testing.T) {
	a := NewSource("fixed", "memory").Perm(16)
	b := NewSource("fixed", "memory").Perm(16)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected identical permutations for identical seeds, got %v and %v", a, b)
		}
	}
}

// Every position should receive every value at a roughly equal rate.
func TestShuffleUniformity(t *testing.T) {
	s := NewSource("uniform", "shuffle")
	const n = 4
	const trials = 8000
	var counts [n][n]int
	for trial := 0; trial < trials; trial++ {
		p := s.Perm(n)
		for pos, v := range p {
			counts[pos][v]++
		}
	}

	expected := trials / n
	for pos := 0; pos < n; pos++ {
		for v := 0; v < n; v++ {
			c := counts[pos][v]
			if c < expected*8/10 || c > expected*12/10 {
				t.Errorf("position %d value %d drawn %d times, expected about %d", pos, v, c, expected)
			}
		}
	}
}

func TestPick(t *testing.T) {
	s := NewSource("seed", "pick")
	corners := []int{0, 2, 6, 8}
	for i := 0; i < 100; i++ {
		c := Pick(s, corners)
		if c != 0 && c != 2 && c != 6 && c != 8 {
			t.Fatalf("Pick returned non-member %d", c)
		}
	}
}
