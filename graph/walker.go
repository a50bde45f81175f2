// Package graph walks the lattice a tokenizer builds for one query,
// producing candidate token sequences best-score-first with
// backtracking support for a harness that wants to try the next best
// alternative after a downstream mismatch.
package graph

import "github.com/az-ai-labs/speechlex/tokenizer"

// Walker holds one query's traversal state: left is the path committed
// so far, current is the position it has reached, and right is a
// greedy best-score preview of how the path would complete from current
// if nothing else changed. A Walker is built fresh per query and
// discarded after use; it is not safe for concurrent use by multiple
// goroutines.
type Walker struct {
	lattice tokenizer.Lattice
	n       int

	left      []tokenizer.Edge
	leftStart []int
	leftIdx   []int
	current   int

	right []tokenizer.Edge

	exhausted map[int]map[int]bool

	pendingPos int
	pendingIdx int
}

// New builds a Walker over lattice, a query of length n.
func New(lattice tokenizer.Lattice, n int) *Walker {
	w := &Walker{
		lattice:    lattice,
		n:          n,
		exhausted:  make(map[int]map[int]bool),
		pendingPos: -1,
	}
	w.rebuildRight()
	return w
}

// Current returns the position the committed (left) path has reached.
func (w *Walker) Current() int { return w.current }

// Left returns the edges committed so far, in order from position 0.
func (w *Walker) Left() []tokenizer.Edge { return w.left }

// Right returns the current greedy best-score preview completing the
// path from Current to the end of the query.
func (w *Walker) Right() []tokenizer.Edge { return w.right }

// Path returns the full candidate path at this moment: left followed by
// the greedy preview in right.
func (w *Walker) Path() []tokenizer.Edge {
	out := make([]tokenizer.Edge, 0, len(w.left)+len(w.right))
	out = append(out, w.left...)
	out = append(out, w.right...)
	return out
}

// bestUnexhausted returns the highest-scoring edge at position p that
// has not been marked exhausted, and its index within lattice[p].
func (w *Walker) bestUnexhausted(p int) (idx int, edge tokenizer.Edge, ok bool) {
	edges := w.lattice[p]
	excl := w.exhausted[p]
	for i, e := range edges {
		if excl != nil && excl[i] {
			continue
		}
		return i, e, true
	}
	return 0, tokenizer.Edge{}, false
}

// rebuildRight recomputes the greedy best-score completion from current
// to n, ignoring exhaustion (exhaustion only constrains the committed
// left path's own alternatives, never the speculative preview).
func (w *Walker) rebuildRight() {
	var right []tokenizer.Edge
	pos := w.current
	for pos < w.n {
		edges := w.lattice[pos]
		if len(edges) == 0 {
			break
		}
		e := edges[0]
		right = append(right, e)
		pos += e.Length
	}
	w.right = right
}

// Advance moves one edge forward along the best unexhausted
// continuation from Current. It appends that edge to Left, updates
// Current, and rebuilds the preview in Right. Returns true iff an
// advance occurred (false at the end of the query, or if every edge at
// Current has been exhausted).
func (w *Walker) Advance() bool {
	if w.current >= w.n {
		return false
	}
	idx, edge, ok := w.bestUnexhausted(w.current)
	if !ok {
		return false
	}
	w.left = append(w.left, edge)
	w.leftStart = append(w.leftStart, w.current)
	w.leftIdx = append(w.leftIdx, idx)
	w.current += edge.Length
	w.pendingPos = -1
	w.rebuildRight()
	return true
}

// Retreat undoes the most recent Advance, returning Current to where
// that edge started. If keepEdge is false, the undone edge is staged so
// a following Discard call excludes it from future selection at that
// position. Returns false if there is nothing to retreat (Left is
// empty).
func (w *Walker) Retreat(keepEdge bool) bool {
	n := len(w.left)
	if n == 0 {
		return false
	}
	start := w.leftStart[n-1]
	idx := w.leftIdx[n-1]

	w.left = w.left[:n-1]
	w.leftStart = w.leftStart[:n-1]
	w.leftIdx = w.leftIdx[:n-1]
	w.current = start

	// Positions beyond start were only exhausted relative to the edge
	// just undone. Retreating into start means every position after it
	// is reached fresh (possibly via a different edge once Discard or
	// Advance picks a new one), so stale exhaustion there no longer
	// applies.
	for p := range w.exhausted {
		if p > start {
			delete(w.exhausted, p)
		}
	}

	if keepEdge {
		w.pendingPos = -1
	} else {
		w.pendingPos = start
		w.pendingIdx = idx
	}
	w.rebuildRight()
	return true
}

// Discard marks the edge most recently retreated-from (via
// Retreat(false)) as exhausted at its starting position, then attempts
// to Advance again from there using the next best remaining edge.
// Returns true iff a new completion exists; false means every edge at
// that position is now exhausted and the caller must Retreat further
// back to keep backtracking.
func (w *Walker) Discard() bool {
	if w.pendingPos < 0 {
		return false
	}
	pos, idx := w.pendingPos, w.pendingIdx
	w.pendingPos = -1

	if w.exhausted[pos] == nil {
		w.exhausted[pos] = make(map[int]bool)
	}
	w.exhausted[pos][idx] = true

	return w.Advance()
}

// Complete drives the walker forward with Advance until Current reaches
// the end of the query, committing the greedy preview into Left.
// Returns false if it gets stuck before reaching the end (impossible in
// a well-formed lattice, since every position always carries at least
// the unknown-edge fallback).
func (w *Walker) Complete() bool {
	for w.current < w.n {
		if !w.Advance() {
			return false
		}
	}
	return true
}

// IsComplete reports whether the committed path already spans the whole
// query.
func (w *Walker) IsComplete() bool {
	return w.current >= w.n
}

// CurrentEdgeScore returns the score of the edge most recently advanced
// over, or 0 if Left is empty.
func (w *Walker) CurrentEdgeScore() float64 {
	if len(w.left) == 0 {
		return 0
	}
	return w.left[len(w.left)-1].Score
}
