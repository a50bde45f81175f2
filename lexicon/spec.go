package lexicon

import (
	"fmt"

	"github.com/az-ai-labs/speechlex/diffmatch"
)

// DomainSpec is the wire shape one catalog-authored domain document
// unmarshals into: a name, whether its aliases are eligible for
// tokenizer ingestion, the matcher its aliases align with, and the
// alias list itself.
type DomainSpec struct {
	Name         string      `yaml:"name"`
	ForIngestion bool        `yaml:"for_ingestion"`
	Matcher      string      `yaml:"matcher"`
	Aliases      []AliasSpec `yaml:"aliases"`
}

// AddDomainSpec resolves spec.Matcher by name and registers the domain,
// exactly as AddDomain would with the matcher resolved by hand. Returns
// an error for an unrecognized matcher name.
func (lx *Lexicon) AddDomainSpec(spec DomainSpec) (*Domain, error) {
	matcher, ok := diffmatch.MatcherByName(spec.Matcher)
	if !ok {
		return nil, fmt.Errorf("lexicon: domain %q: unknown matcher %q", spec.Name, spec.Matcher)
	}
	return lx.AddDomain(spec.Name, spec.Aliases, spec.ForIngestion, matcher)
}
