package graph

import (
	"sync"

	"github.com/az-ai-labs/speechlex/tokenizer"
)

// EnumerateStatic precomputes every distinct full path through lattice,
// a query of length n, in best-edge-first depth order: at each
// position the edge tried first is the one sorted first in
// lattice[position] (tokenizer.GenerateGraph already sorts each
// position descending by score), and the inner completions recurse the
// same way. Positions are memoized, since many different prefixes reach
// the same later position and their completions never depend on how
// they got there.
func EnumerateStatic(lattice tokenizer.Lattice, n int) [][]tokenizer.Edge {
	memo := make(map[int][][]tokenizer.Edge)
	return pathsFrom(lattice, n, 0, memo)
}

func pathsFrom(lattice tokenizer.Lattice, n, pos int, memo map[int][][]tokenizer.Edge) [][]tokenizer.Edge {
	if pos == n {
		return [][]tokenizer.Edge{{}}
	}
	if cached, ok := memo[pos]; ok {
		return cached
	}

	var out [][]tokenizer.Edge
	for _, e := range lattice[pos] {
		for _, sub := range pathsFrom(lattice, n, pos+e.Length, memo) {
			path := make([]tokenizer.Edge, 0, len(sub)+1)
			path = append(path, e)
			path = append(path, sub...)
			out = append(out, path)
		}
	}
	memo[pos] = out
	return out
}

// DynamicEnumerator walks the same lattice on demand, one path per Next
// call, instead of building the whole list up front. It produces paths
// in the same order EnumerateStatic does, since both descend lattice[p]
// in the order GenerateGraph left it (best score first).
type DynamicEnumerator struct {
	paths chan []tokenizer.Edge
	done  chan struct{}
	once  sync.Once
}

// NewDynamicEnumerator starts walking lattice in the background; call
// Close when done consuming to let the walking goroutine exit early.
func NewDynamicEnumerator(lattice tokenizer.Lattice, n int) *DynamicEnumerator {
	d := &DynamicEnumerator{
		paths: make(chan []tokenizer.Edge),
		done:  make(chan struct{}),
	}
	go d.run(lattice, n)
	return d
}

func (d *DynamicEnumerator) run(lattice tokenizer.Lattice, n int) {
	defer close(d.paths)

	var walk func(pos int, prefix []tokenizer.Edge) bool
	walk = func(pos int, prefix []tokenizer.Edge) bool {
		if pos == n {
			out := make([]tokenizer.Edge, len(prefix))
			copy(out, prefix)
			select {
			case d.paths <- out:
				return true
			case <-d.done:
				return false
			}
		}
		for _, e := range lattice[pos] {
			select {
			case <-d.done:
				return false
			default:
			}
			if !walk(pos+e.Length, append(prefix, e)) {
				return false
			}
		}
		return true
	}
	walk(0, nil)
}

// Next returns the next path, or ok=false once every path has been
// produced.
func (d *DynamicEnumerator) Next() (path []tokenizer.Edge, ok bool) {
	p, ok := <-d.paths
	return p, ok
}

// Close stops the background walk. Safe to call more than once, and
// safe to skip if Next was drained to completion.
func (d *DynamicEnumerator) Close() {
	d.once.Do(func() { close(d.done) })
}

// Count walks every path without retaining them, returning how many
// distinct full paths the lattice admits.
func Count(lattice tokenizer.Lattice, n int) int {
	e := NewDynamicEnumerator(lattice, n)
	defer e.Close()
	n2 := 0
	for {
		if _, ok := e.Next(); !ok {
			break
		}
		n2++
	}
	return n2
}
