package tokenizer

import (
	"github.com/az-ai-labs/speechlex/lexicon"
	"github.com/az-ai-labs/speechlex/termmodel"
)

// index is the inverted index: a mapping from fingerprint to a postings
// list of alias ids, a parallel frequency count, and a decoding table
// back to stem text for diagnostics. Alias ids are dense, assigned by
// insertion order.
type index struct {
	aliases  []*lexicon.Alias
	postings map[termmodel.Hash][]int
	freq     map[termmodel.Hash]int
	stemText map[termmodel.Hash]string
}

func newIndex() *index {
	return &index{
		postings: make(map[termmodel.Hash][]int),
		freq:     make(map[termmodel.Hash]int),
		stemText: make(map[termmodel.Hash]string),
	}
}

// addItem assigns alias the next dense id, appends that id to every one
// of its fingerprints' postings lists (once per occurrence, so a
// duplicate fingerprint within one alias is recorded twice), and returns
// the assigned id.
func (idx *index) addItem(alias *lexicon.Alias) int {
	id := len(idx.aliases)
	idx.aliases = append(idx.aliases, alias)

	for i, h := range alias.Hashes {
		idx.postings[h] = append(idx.postings[h], id)
		idx.freq[h]++
		if _, ok := idx.stemText[h]; !ok {
			idx.stemText[h] = alias.Stemmed[i]
		}
	}

	return id
}

// candidates returns the unique alias ids whose postings list contains h,
// in first-seen order.
func (idx *index) candidates(h termmodel.Hash) []int {
	ids := idx.postings[h]
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
