package graph

import (
	"testing"

	"github.com/az-ai-labs/speechlex/tokenizer"
)

func pathKey(path []tokenizer.Edge) string {
	key := ""
	for _, e := range path {
		key += string(rune('0' + e.Length))
	}
	return key
}

func TestEnumerateStaticCountIsPowerOfTwo(t *testing.T) {
	const n = 6
	lattice := buildFullLattice(n)
	paths := EnumerateStatic(lattice, n)

	want := 1 << (n - 1) // 32
	if len(paths) != want {
		t.Fatalf("len(paths) = %d, want %d", len(paths), want)
	}

	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		if pathLength(p) != n {
			t.Fatalf("path %v sums to %d, want %d", p, pathLength(p), n)
		}
		k := pathKey(p)
		if seen[k] {
			t.Fatalf("duplicate path %q", k)
		}
		seen[k] = true
	}
}

func TestEnumerateStaticFirstPathIsGreedyBest(t *testing.T) {
	lattice := buildFullLattice(6)
	paths := EnumerateStatic(lattice, 6)
	if len(paths[0]) != 1 || paths[0][0].Length != 6 {
		t.Fatalf("first path = %v, want the single length-6 edge", paths[0])
	}
}

func TestDynamicEnumeratorAgreesWithStatic(t *testing.T) {
	const n = 6
	lattice := buildFullLattice(n)
	static := EnumerateStatic(lattice, n)

	d := NewDynamicEnumerator(lattice, n)
	defer d.Close()

	var dynamic [][]tokenizer.Edge
	for {
		p, ok := d.Next()
		if !ok {
			break
		}
		dynamic = append(dynamic, p)
	}

	if len(dynamic) != len(static) {
		t.Fatalf("dynamic produced %d paths, static produced %d", len(dynamic), len(static))
	}
	for i := range static {
		if pathKey(static[i]) != pathKey(dynamic[i]) {
			t.Fatalf("path %d differs: static=%q dynamic=%q", i, pathKey(static[i]), pathKey(dynamic[i]))
		}
	}
}

func TestCountMatchesStaticLength(t *testing.T) {
	const n = 5
	lattice := buildFullLattice(n)
	got := Count(lattice, n)
	want := len(EnumerateStatic(lattice, n))
	if got != want {
		t.Fatalf("Count() = %d, want %d", got, want)
	}
	if got != 1<<(n-1) {
		t.Fatalf("Count() = %d, want 2^(n-1) = %d", got, 1<<(n-1))
	}
}

func TestDynamicEnumeratorCloseEarlyDoesNotLeak(t *testing.T) {
	lattice := buildFullLattice(6)
	d := NewDynamicEnumerator(lattice, 6)
	if _, ok := d.Next(); !ok {
		t.Fatal("expected at least one path")
	}
	d.Close()
	d.Close() // must not panic on a second Close
}
