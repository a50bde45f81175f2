package relevance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Case is one relevance fixture: an input phrase, its expected
// whitespace-split token string, and the priority/suite metadata used
// to group and filter it.
type Case struct {
	Priority int      `yaml:"priority"`
	Suites   []string `yaml:"suites"`
	Input    string   `yaml:"input"`
	Expected string   `yaml:"expected"`
}

// InSuite reports whether c belongs to the named suite. An empty name
// matches every case, so a caller can run the whole file unfiltered.
func (c Case) InSuite(name string) bool {
	if name == "" {
		return true
	}
	for _, s := range c.Suites {
		if s == name {
			return true
		}
	}
	return false
}

// LoadFile reads a YAML document holding a top-level list of Cases, the
// operator-editable analogue of this codebase's compile-time golden
// fixtures.
func LoadFile(path string) ([]Case, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("relevance: %w", err)
	}
	var cases []Case
	if err := yaml.Unmarshal(raw, &cases); err != nil {
		return nil, fmt.Errorf("relevance: parsing %s: %w", path, err)
	}
	return cases, nil
}
