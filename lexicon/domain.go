package lexicon

import "github.com/az-ai-labs/speechlex/termmodel"

// Domain is a set of aliases sharing provenance (a catalog, an intent
// list, a quantifier table). A non-ingestion domain's aliases are never
// indexed by the tokenizer; they exist only to contribute their own
// fingerprint set to every other domain's downstream set.
type Domain struct {
	Name         string
	ForIngestion bool

	aliases []*Alias
	seen    map[string]struct{}
	own     map[termmodel.Hash]struct{}
	downstream map[termmodel.Hash]struct{}
}

func newDomain(name string, forIngestion bool) *Domain {
	return &Domain{
		Name:         name,
		ForIngestion: forIngestion,
		seen:         make(map[string]struct{}),
		own:          make(map[termmodel.Hash]struct{}),
	}
}

// Aliases returns this domain's registered aliases in registration order.
func (d *Domain) Aliases() []*Alias {
	return d.aliases
}

// Own returns the domain's own fingerprint set: the union of every
// registered alias's hashes.
func (d *Domain) Own() map[termmodel.Hash]struct{} {
	return d.own
}

// Downstream returns the domain's downstream fingerprint set, populated
// once the owning Lexicon's Ingest has run; nil before then.
func (d *Domain) Downstream() map[termmodel.Hash]struct{} {
	return d.downstream
}
