package tokenizer

import (
	"github.com/az-ai-labs/speechlex/numparse"
	"github.com/az-ai-labs/speechlex/termmodel"
	"github.com/az-ai-labs/speechlex/timeparse"
)

// InjectorMatch is one fingerprint-stream injector's recognized prefix:
// a value to carry as the resulting edge's label, and how many
// fingerprints it consumed.
type InjectorMatch struct {
	Label  any
	Length int
}

// Injector recognizes a closed grammar over a fingerprint suffix and
// contributes edges to every lattice position, the same role the number
// parser plays in spec.md generalized to any fixed-vocabulary parser.
// numparse.Parser and timeparse.Parser are each wrapped into one Injector
// (see NewNumberInjector and NewTimeInjector) so the tokenizer's
// lattice construction never changes when a new grammar is added later.
type Injector interface {
	// Inject returns every valid prefix of tail this injector
	// recognizes, shortest first. A tail with no recognizable leading
	// phrase returns nil.
	Inject(tail []termmodel.Hash) []InjectorMatch
	// Kind is the EdgeKind every edge built from this injector's
	// matches should carry.
	Kind() EdgeKind
}

// EmptyInjector contributes no edges. It exists for tests and callers
// that only care about alias and unknown edges.
type EmptyInjector struct{}

func (EmptyInjector) Inject([]termmodel.Hash) []InjectorMatch { return nil }
func (EmptyInjector) Kind() EdgeKind                          { return NumberEdgeKind }

// numberInjector adapts a *numparse.Parser to the Injector interface.
type numberInjector struct {
	p *numparse.Parser
}

// NewNumberInjector wraps p so its cardinal-number matches become
// NumberEdgeKind edges.
func NewNumberInjector(p *numparse.Parser) Injector {
	return numberInjector{p: p}
}

func (n numberInjector) Inject(tail []termmodel.Hash) []InjectorMatch {
	matches := n.p.Parse(tail)
	if len(matches) == 0 {
		return nil
	}
	out := make([]InjectorMatch, len(matches))
	for i, m := range matches {
		out[i] = InjectorMatch{Label: m.Value, Length: m.Length}
	}
	return out
}

func (numberInjector) Kind() EdgeKind { return NumberEdgeKind }

// timeInjector adapts a *timeparse.Parser to the Injector interface.
type timeInjector struct {
	p *timeparse.Parser
}

// NewTimeInjector wraps p so its time-of-day matches become
// TimeEdgeKind edges.
func NewTimeInjector(p *timeparse.Parser) Injector {
	return timeInjector{p: p}
}

func (n timeInjector) Inject(tail []termmodel.Hash) []InjectorMatch {
	matches := n.p.Parse(tail)
	if len(matches) == 0 {
		return nil
	}
	out := make([]InjectorMatch, len(matches))
	for i, m := range matches {
		out[i] = InjectorMatch{Label: m.Value, Length: m.Length}
	}
	return out
}

func (timeInjector) Kind() EdgeKind { return TimeEdgeKind }
