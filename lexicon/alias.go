package lexicon

import (
	"github.com/az-ai-labs/speechlex/diffmatch"
	"github.com/az-ai-labs/speechlex/termmodel"
)

// AliasSpec is the wire shape a caller supplies to register one alias: an
// opaque token to return on a win, and the surface phrase to index. The
// yaml tags let a catalog file unmarshal directly into this shape.
type AliasSpec struct {
	Token any    `yaml:"token"`
	Text  string `yaml:"text"`
}

// Alias is the fundamental indexed unit: a surface phrase, its stemmed
// fingerprints, the matcher used to align a query against it, and a
// domain-scoped downstream predicate. Aliases are immutable after
// registration.
type Alias struct {
	Token   any
	Text    string
	Terms   []string
	Stemmed []string
	Hashes  []termmodel.Hash
	Matcher diffmatch.Matcher

	isDownstreamTerm func(termmodel.Hash) bool
}

// IsDownstreamTerm reports whether h is, from this alias's domain's
// perspective, owned primarily by another domain (or is numeric/opaque).
// It is unset (always false) until the owning Lexicon's Ingest runs.
func (a *Alias) IsDownstreamTerm(h termmodel.Hash) bool {
	if a.isDownstreamTerm == nil {
		return false
	}
	return a.isDownstreamTerm(h)
}
