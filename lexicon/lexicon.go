// Package lexicon groups aliases into domains, stems and hashes each
// alias through a term model, computes each domain's downstream
// fingerprint set, and hands ingestion-eligible aliases to a tokenizer.
//
// Grounded on this codebase's validate package for the two-layer
// error-reporting convention (package-qualified fmt.Errorf messages) and
// on its general pattern of a read-only-after-construction core built up
// through an explicit registration phase.
package lexicon

import (
	"fmt"
	"strings"

	"github.com/az-ai-labs/speechlex/diffmatch"
	"github.com/az-ai-labs/speechlex/termmodel"
)

// ItemSink receives ingestion-eligible aliases. The tokenizer package
// implements this; lexicon depends only on the interface to avoid an
// import cycle (the tokenizer's postings reference lexicon.Alias).
type ItemSink interface {
	AddItem(alias *Alias) int
}

// vocabProvider is the shape every fingerprint-stream injector exposes
// for downstream-set computation: numparse.Parser and timeparse.Parser
// both satisfy it. Their combined vocabulary plays the role spec.md's
// downstream(D) formula gives to "numeric" — reserved across every
// domain, never any one domain's own term.
type vocabProvider interface {
	OwnHashedTerms() map[termmodel.Hash]struct{}
	AddTermsToSet(set map[string]struct{})
}

// Lexicon owns the term model, the reserved-vocabulary providers (number
// and time parsers), and an ordered list of domains. It is built up
// through AddDomain calls and then finalized by a single Ingest call; it
// is read-only thereafter.
type Lexicon struct {
	model    *termmodel.Model
	vocabs   []vocabProvider
	domains  []*Domain
	byName   map[string]*Domain
	ingested bool
}

// New builds a Lexicon over the given term model and reserved-vocabulary
// providers (typically a *numparse.Parser and a *timeparse.Parser).
func New(model *termmodel.Model, vocabs ...vocabProvider) *Lexicon {
	return &Lexicon{
		model:  model,
		vocabs: vocabs,
		byName: make(map[string]*Domain),
	}
}

// AddDomain registers (or extends) a domain named name with the given
// aliases. Calling AddDomain again with the same name appends to the
// existing domain rather than creating a second one. Per-alias
// registration is an idempotent append: an alias with a token and text
// already present in the domain is silently skipped.
//
// matcher is the diff function every alias in this batch will use when
// the tokenizer scores candidates against it (see diffmatch).
func (lx *Lexicon) AddDomain(name string, specs []AliasSpec, forIngestion bool, matcher diffmatch.Matcher) (*Domain, error) {
	if lx.ingested {
		return nil, fmt.Errorf("lexicon: AddDomain(%q) called after Ingest", name)
	}

	d, ok := lx.byName[name]
	if !ok {
		d = newDomain(name, forIngestion)
		lx.byName[name] = d
		lx.domains = append(lx.domains, d)
	} else if d.ForIngestion != forIngestion {
		return nil, fmt.Errorf("lexicon: domain %q re-registered with a different forIngestion value", name)
	}

	for _, spec := range specs {
		terms := strings.Fields(spec.Text)
		if len(terms) == 0 {
			return nil, fmt.Errorf("lexicon: alias %q in domain %q has no terms", spec.Text, name)
		}

		key := dedupeKey(spec.Token, spec.Text)
		if _, dup := d.seen[key]; dup {
			continue
		}
		d.seen[key] = struct{}{}

		stemmed := make([]string, len(terms))
		hashes := make([]termmodel.Hash, len(terms))
		for i, term := range terms {
			stem := lx.model.Stem(term)
			stemmed[i] = stem
			h := lx.model.HashTerm(stem)
			hashes[i] = h
			d.own[h] = struct{}{}
		}

		d.aliases = append(d.aliases, &Alias{
			Token:   spec.Token,
			Text:    spec.Text,
			Terms:   terms,
			Stemmed: stemmed,
			Hashes:  hashes,
			Matcher: matcher,
		})
	}

	return d, nil
}

func dedupeKey(token any, text string) string {
	return fmt.Sprintf("%v\x00%s", token, text)
}

// Ingest computes every domain's downstream fingerprint set —
// downstream(D) = numeric union (union over D' != D of own(D')) — wires
// each alias's IsDownstreamTerm predicate to its domain's set, then hands
// every alias of every ingestion-eligible domain to sink in registration
// order. Ingest may be called at most once.
func (lx *Lexicon) Ingest(sink ItemSink) error {
	if lx.ingested {
		return fmt.Errorf("lexicon: Ingest called twice")
	}
	lx.ingested = true

	reserved := make(map[termmodel.Hash]struct{})
	for _, v := range lx.vocabs {
		for h := range v.OwnHashedTerms() {
			reserved[h] = struct{}{}
		}
	}

	for _, d := range lx.domains {
		downstream := make(map[termmodel.Hash]struct{}, len(reserved))
		for h := range reserved {
			downstream[h] = struct{}{}
		}
		for _, other := range lx.domains {
			if other == d {
				continue
			}
			for h := range other.own {
				downstream[h] = struct{}{}
			}
		}
		d.downstream = downstream

		for _, a := range d.aliases {
			a.isDownstreamTerm = func(h termmodel.Hash) bool {
				_, ok := downstream[h]
				return ok
			}
		}
	}

	for _, d := range lx.domains {
		if !d.ForIngestion {
			continue
		}
		for _, a := range d.aliases {
			sink.AddItem(a)
		}
	}

	return nil
}

// Domains returns every registered domain in registration order.
func (lx *Lexicon) Domains() []*Domain {
	return lx.domains
}

// Terms returns the union of every alias's original (pre-stem) surface
// terms across every domain, plus every reserved-vocabulary provider's
// own terms. Useful for building exclusion lists elsewhere in the
// pipeline (e.g. a prefilter's article/filler table must not
// accidentally drop a term the lexicon actually matches on).
func (lx *Lexicon) Terms() map[string]struct{} {
	out := make(map[string]struct{})
	for _, d := range lx.domains {
		for _, a := range d.aliases {
			for _, term := range a.Terms {
				out[term] = struct{}{}
			}
		}
	}
	for _, v := range lx.vocabs {
		v.AddTermsToSet(out)
	}
	return out
}
