// Package diffmatch aligns a query fingerprint suffix against an alias's
// fingerprint sequence and reports alignment statistics (cost, bounds,
// exact-match count) that the tokenizer's scorer turns into an edge
// score.
//
// Two matcher variants are provided: ExactPrefixMatcher, which accepts
// only a literal, unedited prefix match, and ApproximateMatcher, a
// bounded edit-distance alignment restricted so that downstream or
// opaque query terms can only ever participate as exact matches, never
// as the substituted/inserted side of an edit — mirroring the
// delete-variant-bounded search this codebase's spell-checking lineage
// uses to keep fuzzy matching from wandering arbitrarily far from the
// literal text.
package diffmatch

import "github.com/az-ai-labs/speechlex/termmodel"

// Predicate classifies a fingerprint, e.g. "is this hash downstream of
// the alias under consideration" or "is this hash an opaque token".
type Predicate func(termmodel.Hash) bool

// Matcher computes alignment statistics between a query suffix and an
// alias's fingerprint sequence.
type Matcher func(query, prefix []termmodel.Hash, isDownstream, isOpaque Predicate) DiffResults

// DiffResults carries the statistics the scorer needs from one
// query/alias alignment attempt.
type DiffResults struct {
	Match       []termmodel.Hash
	Cost        int
	LeftmostA   int
	RightmostA  int
	Alignments  int
	CommonTerms map[termmodel.Hash]struct{}
}

// Length is the query span this match covers, rightmostA+1. A
// RightmostA of -1 (no match found) yields length 0, signaling to the
// caller that no edge should be emitted for this candidate.
func (d DiffResults) Length() int {
	return d.RightmostA + 1
}

// noMatch is the zero-length failure result every matcher returns when
// it cannot align prefix against query at all.
var noMatch = DiffResults{RightmostA: -1}

// ExactPrefixMatcher succeeds only when prefix is literally, unedited, a
// prefix of query. On success the match spans the whole alias with zero
// cost; on any mismatch (or if prefix is longer than query) it reports
// no match.
func ExactPrefixMatcher(query, prefix []termmodel.Hash, _, _ Predicate) DiffResults {
	if len(prefix) == 0 || len(prefix) > len(query) {
		return noMatch
	}
	for i, h := range prefix {
		if query[i] != h {
			return noMatch
		}
	}

	match := make([]termmodel.Hash, len(prefix))
	copy(match, prefix)
	common := make(map[termmodel.Hash]struct{}, len(prefix))
	for _, h := range prefix {
		common[h] = struct{}{}
	}

	return DiffResults{
		Match:       match,
		Cost:        0,
		LeftmostA:   0,
		RightmostA:  len(prefix) - 1,
		Alignments:  len(prefix),
		CommonTerms: common,
	}
}

// maxWindowSlack bounds how much further than the alias's own length the
// approximate matcher will look into the query before giving up,
// keeping the alignment DP small regardless of total query length.
const maxWindowSlack = 3

const editCost = 1

// ApproximateMatcher aligns prefix against a bounded window at the start
// of query using a Levenshtein-style edit-distance DP (match, add,
// delete, substitute), then reports the alignment ending the cheapest
// way once the whole alias has been consumed. Downstream and opaque
// query terms may only be consumed as exact matches: the add and
// substitute transitions are unavailable at those positions, so a
// misaligned downstream/opaque term terminates the useful alignment
// there rather than being silently edited away.
func ApproximateMatcher(query, prefix []termmodel.Hash, isDownstream, isOpaque Predicate) DiffResults {
	m := len(prefix)
	if m == 0 {
		return noMatch
	}
	window := m + maxWindowSlack
	if window > len(query) {
		window = len(query)
	}
	if window == 0 {
		return noMatch
	}

	blocked := func(h termmodel.Hash) bool {
		return isDownstream(h) || isOpaque(h)
	}

	type step int
	const (
		stepNone step = iota
		stepDiag
		stepAdd
		stepDelete
	)

	const inf = 1 << 30

	dp := make([][]int, window+1)
	back := make([][]step, window+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
		back[i] = make([]step, m+1)
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = j * editCost
		back[0][j] = stepDelete
	}
	for i := 1; i <= window; i++ {
		if blocked(query[i-1]) {
			dp[i][0] = inf
			back[i][0] = stepNone
			continue
		}
		dp[i][0] = dp[i-1][0] + editCost
		back[i][0] = stepAdd
	}

	for i := 1; i <= window; i++ {
		qh := query[i-1]
		qBlocked := blocked(qh)
		for j := 1; j <= m; j++ {
			best := inf
			bestStep := stepNone

			if qh == prefix[j-1] {
				if c := dp[i-1][j-1]; c < best {
					best, bestStep = c, stepDiag
				}
			} else if !qBlocked {
				if c := dp[i-1][j-1] + editCost; c < best {
					best, bestStep = c, stepDiag
				}
			}
			if !qBlocked {
				if c := dp[i-1][j] + editCost; c < best {
					best, bestStep = c, stepAdd
				}
			}
			if c := dp[i][j-1] + editCost; c < best {
				best, bestStep = c, stepDelete
			}

			dp[i][j] = best
			back[i][j] = bestStep
		}
	}

	bestI, bestCost := -1, inf
	for i := 1; i <= window; i++ {
		if dp[i][m] < bestCost {
			bestCost, bestI = dp[i][m], i
		}
	}
	if bestI < 0 {
		return noMatch
	}

	var (
		match      []termmodel.Hash
		common     = make(map[termmodel.Hash]struct{})
		alignments int
		leftmost   = bestI
		rightmost  = -1
	)

	i, j := bestI, m
	for i > 0 || j > 0 {
		switch back[i][j] {
		case stepDiag:
			qh := query[i-1]
			match = append(match, qh)
			if qh == prefix[j-1] {
				alignments++
				common[qh] = struct{}{}
			}
			if i-1 < leftmost {
				leftmost = i - 1
			}
			if i-1 > rightmost {
				rightmost = i - 1
			}
			i--
			j--
		case stepAdd:
			i--
		case stepDelete:
			j--
		default:
			// i == 0 && j == 0
			i, j = 0, 0
		}
	}
	reverse(match)

	if rightmost < 0 {
		return noMatch
	}

	return DiffResults{
		Match:       match,
		Cost:        bestCost,
		LeftmostA:   leftmost,
		RightmostA:  rightmost,
		Alignments:  alignments,
		CommonTerms: common,
	}
}

func reverse(h []termmodel.Hash) {
	for i, j := 0, len(h)-1; i < j; i, j = i+1, j-1 {
		h[i], h[j] = h[j], h[i]
	}
}

// byName maps a catalog-authored matcher name to the Matcher it selects.
var byName = map[string]Matcher{
	"exact":       ExactPrefixMatcher,
	"approximate": ApproximateMatcher,
}

// MatcherByName resolves a catalog's authored matcher name ("exact" or
// "approximate") to a Matcher. ok is false for any other name.
func MatcherByName(name string) (m Matcher, ok bool) {
	m, ok = byName[name]
	return m, ok
}
