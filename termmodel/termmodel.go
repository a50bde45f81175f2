// Package termmodel stems a surface term and maps the stem to a 32-bit
// fingerprint, classifying fingerprints as ordinary, numeric, or opaque.
//
// Stemming uses the Porter (1980) suffix-stripping algorithm
// (github.com/a2800276/porter); hashing uses MurmurHash3 with seed 0
// (github.com/spaolacci/murmur3). Both are deterministic and total: the
// same surface term always stems and hashes to the same value, in the
// same process or a different one.
//
// Model's only mutable state is its set of opaque-token fingerprints,
// which RegisterOpaqueStem extends. Model is safe for concurrent use as
// long as RegisterOpaqueStem is not called while other goroutines are
// using it.
package termmodel

import (
	"strings"

	"github.com/a2800276/porter"
	"github.com/spaolacci/murmur3"
)

// Hash is a 32-bit fingerprint of a stemmed surface term.
type Hash uint32

// numberSentinel is the stem whose fingerprint NumberHash returns: the
// fingerprint the number parser reserves to mark a numeric lattice
// position. This stem can never arise from stemming ordinary English
// text.
const numberSentinel = "\x00numparse-number\x00"

// Model stems and hashes surface terms, and classifies fingerprints.
type Model struct {
	numberHash Hash
	tokenHashes map[Hash]struct{}
}

// New builds a Model. tokenStems names reserved "opaque token" stems
// (already-stemmed form) whose fingerprints must never be altered by
// matching. More stems can be added later via RegisterOpaqueStem.
func New(tokenStems ...string) *Model {
	m := &Model{
		numberHash:  hashTerm(numberSentinel),
		tokenHashes: make(map[Hash]struct{}, len(tokenStems)),
	}
	for _, s := range tokenStems {
		m.tokenHashes[hashTerm(s)] = struct{}{}
	}
	return m
}

// RegisterOpaqueStem marks the fingerprint of an already-stemmed term as
// an opaque token. It is idempotent.
func (m *Model) RegisterOpaqueStem(stem string) {
	m.tokenHashes[hashTerm(stem)] = struct{}{}
}

// Stem reduces a surface term to its base form via the Porter algorithm.
// Stem is deterministic and total: on any error from the underlying
// stemmer (only possible for pathological non-ASCII input) it falls back
// to the lower-cased input unchanged, so callers never need to check an
// error.
//
// Stem("convertible") == "convert"
// Stem("knobby") == "knobbi"
func (m *Model) Stem(term string) string {
	if term == "" {
		return term
	}
	lower := strings.ToLower(term)
	stemmed, err := porter.Stem(lower)
	if err != nil || stemmed == "" {
		return lower
	}
	return stemmed
}

// HashTerm computes the fingerprint of an already-stemmed term.
func (m *Model) HashTerm(stem string) Hash {
	return hashTerm(stem)
}

// StemAndHash stems a surface term and hashes the result in one step.
func (m *Model) StemAndHash(term string) Hash {
	return m.HashTerm(m.Stem(term))
}

// NumberHash returns the reserved fingerprint used by the number parser
// to tag a numeric lattice position. It never collides with the hash of
// a real stemmed English word.
func (m *Model) NumberHash() Hash {
	return m.numberHash
}

// IsNumberHash reports whether h is the reserved numeric fingerprint.
func (m *Model) IsNumberHash(h Hash) bool {
	return h == m.numberHash
}

// IsTokenHash reports whether h has been registered as an opaque token
// fingerprint.
func (m *Model) IsTokenHash(h Hash) bool {
	_, ok := m.tokenHashes[h]
	return ok
}

func hashTerm(stem string) Hash {
	return Hash(murmur3.Sum32WithSeed([]byte(stem), 0))
}
