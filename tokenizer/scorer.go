package tokenizer

import (
	"math"

	"github.com/az-ai-labs/speechlex/diffmatch"
	"github.com/az-ai-labs/speechlex/termmodel"
)

// scoreFloor is the minimum score a match may keep; anything at or below
// it is clamped to the rejected sentinel -1.
const scoreFloor = 0.01

// rejectedScore marks a candidate the scorer decided not to trust, kept
// in the lattice (deprioritized, never preferred) rather than dropped,
// so a walker always has a completion available.
const rejectedScore = -1

// Breakdown is the scorer's full accounting for one candidate match,
// useful both to build an Edge and, unpacked, to explain a score in a
// diagnostic trace.
type Breakdown struct {
	Score                float64
	Length               int
	MatchFactor          float64
	CommonFactor         float64
	PositionFactor       float64
	LengthFactor         float64
	DownstreamWordFactor float64
	Rejected             bool
}

// score scores a DiffResults against an alias's full prefix length,
// following spec's matchFactor/commonFactor/positionFactor/lengthFactor
// formula. A Breakdown with Length 0 means the caller must not build an
// edge from this candidate at all — it is not the same as a rejected
// (score -1) match, which still spans the matcher's reported length.
func score(dr diffmatch.DiffResults, prefixLen int, isDownstream func(termmodel.Hash) bool) Breakdown {
	length := dr.Length()
	matchLen := len(dr.Match)
	if length == 0 || matchLen == 0 {
		return Breakdown{}
	}

	L := float64(length)
	cost := float64(dr.Cost)

	var matchFactor float64
	if L > cost {
		matchFactor = (L - cost) / L
	} else {
		matchFactor = 1 / (L + cost)
	}

	commonFactor := float64(len(dr.CommonTerms)) / float64(matchLen)
	positionFactor := math.Max(float64(matchLen-dr.LeftmostA), 0) / float64(matchLen)
	lengthFactor := float64(matchLen)

	downstreamCount := 0
	for h := range dr.CommonTerms {
		if isDownstream(h) {
			downstreamCount++
		}
	}
	common := len(dr.CommonTerms)
	var downstreamWordFactor float64
	if common > 0 {
		downstreamWordFactor = float64(common-downstreamCount) / float64(common)
	}

	base := matchFactor * commonFactor * positionFactor * lengthFactor

	b := Breakdown{
		Length:               length,
		MatchFactor:          matchFactor,
		CommonFactor:         commonFactor,
		PositionFactor:       positionFactor,
		LengthFactor:         lengthFactor,
		DownstreamWordFactor: downstreamWordFactor,
	}

	if common > 0 && downstreamCount == common && common != prefixLen {
		b.Score = rejectedScore
		b.Rejected = true
		return b
	}

	if base <= scoreFloor {
		b.Score = rejectedScore
		b.Rejected = true
		return b
	}

	b.Score = base
	return b
}

// neverDownstream reports every fingerprint as not downstream; used to
// score synthetic injector matches, which are never in conflict with
// another domain the way an alias match can be.
func neverDownstream(termmodel.Hash) bool { return false }

// syntheticDiff builds the DiffResults an exact self-match over
// hashes[:length] would produce: cost 0, full coverage, every
// fingerprint counted as common.
func syntheticDiff(hashes []termmodel.Hash, length int) diffmatch.DiffResults {
	match := make([]termmodel.Hash, length)
	copy(match, hashes[:length])
	common := make(map[termmodel.Hash]struct{}, length)
	for _, h := range match {
		common[h] = struct{}{}
	}
	return diffmatch.DiffResults{
		Match:       match,
		Cost:        0,
		LeftmostA:   0,
		RightmostA:  length - 1,
		Alignments:  length,
		CommonTerms: common,
	}
}
