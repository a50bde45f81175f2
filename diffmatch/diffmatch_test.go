package diffmatch

import (
	"testing"

	"github.com/az-ai-labs/speechlex/termmodel"
)

func hashesFor(vals ...uint32) []termmodel.Hash {
	out := make([]termmodel.Hash, len(vals))
	for i, v := range vals {
		out[i] = termmodel.Hash(v)
	}
	return out
}

func noneDownstream(termmodel.Hash) bool { return false }
func noneOpaque(termmodel.Hash) bool      { return false }

func TestExactPrefixMatcherFullPrefix(t *testing.T) {
	query := hashesFor(1, 2, 3, 4, 5)
	prefix := hashesFor(1, 2)
	got := ExactPrefixMatcher(query, prefix, noneDownstream, noneOpaque)
	if got.Length() != 2 {
		t.Fatalf("Length() = %d, want 2", got.Length())
	}
	if got.Alignments != 2 {
		t.Fatalf("Alignments = %d, want 2", got.Alignments)
	}
	if got.Cost != 0 {
		t.Fatalf("Cost = %d, want 0", got.Cost)
	}
}

func TestExactPrefixMatcherMismatch(t *testing.T) {
	query := hashesFor(1, 2, 3, 4, 5)
	prefix := hashesFor(1, 2, 4)
	got := ExactPrefixMatcher(query, prefix, noneDownstream, noneOpaque)
	if got.Length() != 0 {
		t.Fatalf("Length() = %d, want 0", got.Length())
	}
}

func TestExactPrefixMatcherWrongStart(t *testing.T) {
	query := hashesFor(1, 2, 3, 4, 5)
	prefix := hashesFor(2)
	got := ExactPrefixMatcher(query, prefix, noneDownstream, noneOpaque)
	if got.Length() != 0 {
		t.Fatalf("Length() = %d, want 0", got.Length())
	}
}

func TestExactPrefixMatcherAliasLongerThanQuery(t *testing.T) {
	query := hashesFor(1, 2, 3, 4, 5)
	prefix := hashesFor(1, 2, 3, 4, 5, 6, 7)
	got := ExactPrefixMatcher(query, prefix, noneDownstream, noneOpaque)
	if got.Length() != 0 {
		t.Fatalf("Length() = %d, want 0", got.Length())
	}
}

func TestApproximateMatcherExact(t *testing.T) {
	query := hashesFor(10, 20, 30)
	prefix := hashesFor(10, 20, 30)
	got := ApproximateMatcher(query, prefix, noneDownstream, noneOpaque)
	if got.Cost != 0 {
		t.Fatalf("Cost = %d, want 0", got.Cost)
	}
	if got.Alignments != 3 {
		t.Fatalf("Alignments = %d, want 3", got.Alignments)
	}
	if got.Length() != 3 {
		t.Fatalf("Length() = %d, want 3", got.Length())
	}
}

func TestApproximateMatcherOneSubstitution(t *testing.T) {
	query := hashesFor(10, 99, 30)
	prefix := hashesFor(10, 20, 30)
	got := ApproximateMatcher(query, prefix, noneDownstream, noneOpaque)
	if got.Cost != 1 {
		t.Fatalf("Cost = %d, want 1", got.Cost)
	}
	if got.Alignments != 2 {
		t.Fatalf("Alignments = %d, want 2", got.Alignments)
	}
}

func TestApproximateMatcherBlockedDownstreamTerm(t *testing.T) {
	query := hashesFor(10, 99, 30)
	prefix := hashesFor(10, 20, 30)
	isDownstream := func(h termmodel.Hash) bool { return h == termmodel.Hash(99) }

	got := ApproximateMatcher(query, prefix, isDownstream, noneOpaque)
	// position 1 (hash 99) belongs to another domain and cannot be
	// edited away, so the alignment cannot extend past the single
	// fingerprint preceding it.
	if got.RightmostA >= 1 {
		t.Fatalf("RightmostA = %d, alignment should not consume the blocked term's position", got.RightmostA)
	}
}

func TestApproximateMatcherNoOverlap(t *testing.T) {
	query := hashesFor(1, 2, 3)
	prefix := hashesFor(99)
	got := ApproximateMatcher(query, prefix, noneDownstream, noneOpaque)
	if got.Alignments != 0 {
		t.Fatalf("Alignments = %d, want 0", got.Alignments)
	}
}

func TestApproximateMatcherEmptyPrefix(t *testing.T) {
	got := ApproximateMatcher(hashesFor(1, 2), nil, noneDownstream, noneOpaque)
	if got.Length() != 0 {
		t.Fatalf("Length() = %d, want 0", got.Length())
	}
}
