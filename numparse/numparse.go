// Package numparse recognizes spelled-out English cardinal numbers in a
// stream of term-model fingerprints and reports every valid numeric
// prefix, for injection into a tokenizer's lattice alongside alias
// matches.
//
// The accumulation algorithm (group-then-magnitude) follows the same
// left-to-right accumulator shape used for converting number words to
// integers elsewhere in this codebase's lineage: ones and tens add into
// a 0-999 "group" accumulator, "hundred" multiplies the group in place,
// and every larger magnitude word ("thousand", "million", ...) folds the
// group into a running total and resets it.
package numparse

import "github.com/az-ai-labs/speechlex/termmodel"

// Match is a recognized numeric prefix: the value it spells out, and how
// many fingerprints it consumed.
type Match struct {
	Value  int64
	Length int
}

// Parser recognizes English cardinal-number phrases over a fingerprint
// stream. A Parser is read-only after construction and safe for
// concurrent use.
type Parser struct {
	values map[termmodel.Hash]int64
	neg    termmodel.Hash
	terms  map[string]struct{}
}

// New builds a Parser whose recognized vocabulary is hashed through m.
func New(m *termmodel.Model) *Parser {
	p := &Parser{
		values: make(map[termmodel.Hash]int64, len(cardinalWords)),
		neg:    m.StemAndHash(negativeWord),
		terms:  make(map[string]struct{}, len(cardinalWords)+1),
	}
	for word, val := range cardinalWords {
		p.values[m.StemAndHash(word)] = val
		p.terms[word] = struct{}{}
	}
	p.terms[negativeWord] = struct{}{}
	return p
}

// Parse consumes a prefix of tail matching a cardinal-number phrase and
// returns every prefix length that itself forms a valid number, shortest
// first. It never consumes past the first fingerprint that cannot extend
// the phrase. A tail with no recognizable leading number word returns nil.
func (p *Parser) Parse(tail []termmodel.Hash) []Match {
	if len(tail) == 0 {
		return nil
	}

	offset := 0
	sign := int64(1)
	if tail[0] == p.neg {
		if len(tail) == 1 {
			return nil
		}
		sign = -1
		offset = 1
	}

	var matches []Match
	var current, group int64
	seenAny := false

	for i := offset; i < len(tail); i++ {
		val, ok := p.values[tail[i]]
		if !ok {
			break
		}

		if val == 0 {
			// "zero" only makes sense as the entire phrase.
			if !seenAny {
				matches = append(matches, Match{Value: 0, Length: i + 1})
			}
			break
		}

		switch {
		case val < hundredValue:
			group += val
		case val == hundredValue:
			if group == 0 {
				group = 1
			}
			group *= val
		default:
			if group == 0 {
				group = 1
			}
			current += group * val
			group = 0
		}
		seenAny = true
		matches = append(matches, Match{Value: sign * (current + group), Length: i + 1})
	}

	return matches
}

// OwnHashedTerms returns the fingerprints of every surface term this
// parser might consume.
func (p *Parser) OwnHashedTerms() map[termmodel.Hash]struct{} {
	out := make(map[termmodel.Hash]struct{}, len(p.values)+1)
	for h := range p.values {
		out[h] = struct{}{}
	}
	out[p.neg] = struct{}{}
	return out
}

// AddTermsToSet adds this parser's recognized surface terms to set.
func (p *Parser) AddTermsToSet(set map[string]struct{}) {
	for term := range p.terms {
		set[term] = struct{}{}
	}
}
