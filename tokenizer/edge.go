package tokenizer

import "fmt"

// EdgeKind distinguishes the four kinds of lattice edge.
type EdgeKind int

const (
	AliasEdgeKind   EdgeKind = iota // label is an alias id into the tokenizer's index
	NumberEdgeKind                  // label is the numeric value an injector parsed
	TimeEdgeKind                    // label is a time-of-day value an injector parsed
	UnknownEdgeKind                 // label is always -1; one untyped surface term
)

func (k EdgeKind) String() string {
	switch k {
	case AliasEdgeKind:
		return "alias"
	case NumberEdgeKind:
		return "number"
	case TimeEdgeKind:
		return "time"
	case UnknownEdgeKind:
		return "unknown"
	default:
		return fmt.Sprintf("EdgeKind(%d)", int(k))
	}
}

// Edge is a weighted lattice edge. Edges are immutable once built by
// GenerateGraph.
type Edge struct {
	Score  float64
	Length int // positive; the number of query positions this edge spans
	Label  any // alias id, numeric/time value, or -1 for an unknown edge
	Kind   EdgeKind
}

// Lattice is indexed by query position; Lattice[i] holds the edges
// starting at position i, sorted by descending score (ties broken by
// insertion order).
type Lattice [][]Edge

// Len returns the query length this lattice was built over.
func (l Lattice) Len() int {
	return len(l)
}
