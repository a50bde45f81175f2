// Package tokenizer builds the per-query lattice this system's graph
// walker enumerates: an inverted index over registered alias fingerprints,
// a set of fixed-vocabulary injectors (number phrases, time phrases, ...)
// that contribute synthetic matches at every position, and the scoring
// function that turns a raw alignment into an edge weight.
package tokenizer

import (
	"sort"

	"github.com/az-ai-labs/speechlex/lexicon"
	"github.com/az-ai-labs/speechlex/termmodel"
)

// Tokenizer owns the inverted index built up during ingestion and the
// registered injectors consulted at every lattice position. It is
// read-only after ingestion and safe for concurrent use across queries,
// provided each query builds its own Lattice.
type Tokenizer struct {
	idx       *index
	model     *termmodel.Model
	injectors []Injector
}

// New builds an empty Tokenizer over model, consulting injectors (in
// order) at every lattice position in addition to alias postings.
func New(model *termmodel.Model, injectors ...Injector) *Tokenizer {
	return &Tokenizer{
		idx:       newIndex(),
		model:     model,
		injectors: injectors,
	}
}

// AddItem assigns alias the next dense id and indexes its fingerprints.
// It satisfies lexicon.ItemSink, so a Lexicon's Ingest can hand aliases
// directly to a Tokenizer.
func (t *Tokenizer) AddItem(alias *lexicon.Alias) int {
	return t.idx.addItem(alias)
}

// AliasByID returns the alias registered under id (panics on an
// out-of-range id; callers only ever see ids the index itself assigned).
func (t *Tokenizer) AliasByID(id int) *lexicon.Alias {
	return t.idx.aliases[id]
}

// GenerateGraph builds a Lattice over hashes, the fingerprint stream for
// one query. stems is the parallel stemmed-term stream; its only role
// here is a length sanity check, since surface-text recovery for unknown
// edges is performed by the calling harness using edge length, start
// position, and the original query text, not by the tokenizer itself.
func (t *Tokenizer) GenerateGraph(hashes []termmodel.Hash, stems []string) Lattice {
	if len(stems) != len(hashes) {
		panic("tokenizer: GenerateGraph: hashes and stems have different lengths")
	}
	n := len(hashes)
	if n == 0 {
		return Lattice{}
	}

	lattice := make(Lattice, n)
	for i := 0; i < n; i++ {
		lattice[i] = t.edgesAt(hashes, i)
	}
	return lattice
}

func (t *Tokenizer) edgesAt(hashes []termmodel.Hash, i int) []Edge {
	tail := hashes[i:]
	var edges []Edge

	for _, aliasID := range t.idx.candidates(hashes[i]) {
		alias := t.idx.aliases[aliasID]
		dr := alias.Matcher(tail, alias.Hashes, alias.IsDownstreamTerm, t.model.IsTokenHash)
		b := score(dr, len(alias.Hashes), alias.IsDownstreamTerm)
		if b.Length <= 0 {
			continue
		}
		edges = append(edges, Edge{Score: b.Score, Length: b.Length, Label: aliasID, Kind: AliasEdgeKind})
	}

	for _, inj := range t.injectors {
		for _, m := range inj.Inject(tail) {
			if m.Length <= 0 || m.Length > len(tail) {
				continue
			}
			b := score(syntheticDiff(tail, m.Length), m.Length, neverDownstream)
			if b.Length <= 0 {
				continue
			}
			edges = append(edges, Edge{Score: b.Score, Length: b.Length, Label: m.Label, Kind: inj.Kind()})
		}
	}

	if len(edges) == 0 {
		edges = append(edges, Edge{Score: 0, Length: 1, Label: -1, Kind: UnknownEdgeKind})
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Score > edges[j].Score
	})
	return edges
}

// TokenFromEdge maps an edge to the token it emits: a catalog token
// carrying the winning alias's opaque payload, a number or time token
// carrying the parsed value, or an unknown token for an unmatched
// position.
func (t *Tokenizer) TokenFromEdge(edge Edge) Token {
	switch edge.Kind {
	case AliasEdgeKind:
		id := edge.Label.(int)
		return Token{Kind: CatalogTokenKind, Value: t.idx.aliases[id].Token}
	case NumberEdgeKind:
		return Token{Kind: NumberTokenKind, Value: edge.Label}
	case TimeEdgeKind:
		return Token{Kind: TimeTokenKind, Value: edge.Label}
	default:
		return Token{Kind: UnknownTokenKind, Value: nil}
	}
}
