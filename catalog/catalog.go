// Package catalog loads domain/alias definitions authored as YAML
// documents into a Lexicon and Tokenizer pair, and can watch a directory
// for changes to rebuild them without restarting the process.
//
// Grounded on this codebase's own data package (embedded fixture data)
// for the embedded-demo-catalog shape, and on a sibling project's
// embed-plus-yaml.Unmarshal cached loader for the read-once loading
// pattern, generalized here from a single embedded document to a
// directory of operator-supplied files.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/az-ai-labs/speechlex/lexicon"
	"github.com/az-ai-labs/speechlex/numparse"
	"github.com/az-ai-labs/speechlex/termmodel"
	"github.com/az-ai-labs/speechlex/timeparse"
	"github.com/az-ai-labs/speechlex/tokenizer"
)

// snapshot is one fully-ingested lexicon/tokenizer pair. A Catalog swaps
// its current snapshot atomically on reload; a lattice already built
// from an older snapshot keeps working unmodified, since neither the
// Lexicon nor the Tokenizer it was built from is ever mutated in place.
type snapshot struct {
	lexicon   *lexicon.Lexicon
	tokenizer *tokenizer.Tokenizer
}

// Catalog owns the term model and reserved-vocabulary parsers shared
// across reloads, plus the current ingested snapshot. Safe for
// concurrent use: readers call Tokenizer/Lexicon while a Watcher (or a
// direct Reload call) may be swapping in a new snapshot.
type Catalog struct {
	fsys   fs.FS
	model  *termmodel.Model
	nums   *numparse.Parser
	times  *timeparse.Parser
	logger *slog.Logger

	current atomic.Pointer[snapshot]
}

// Load reads every *.yaml/*.yml file directly under dir, each one domain
// document, and ingests them into a fresh Catalog.
func Load(dir string, logger *slog.Logger) (*Catalog, error) {
	return load(os.DirFS(dir), logger)
}

// LoadFS is Load generalized to any fs.FS, so an embedded demo catalog
// (see Demo) and an on-disk directory share one loading path.
func LoadFS(fsys fs.FS, logger *slog.Logger) (*Catalog, error) {
	return load(fsys, logger)
}

func load(fsys fs.FS, logger *slog.Logger) (*Catalog, error) {
	model := termmodel.New()
	nums := numparse.New(model)
	times := timeparse.New(model, nums)
	c := &Catalog{fsys: fsys, model: model, nums: nums, times: times, logger: logger}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads every domain document from the catalog's filesystem,
// builds a fresh Lexicon and Tokenizer, and swaps them in atomically.
// An error leaves the previous snapshot (if any) untouched.
func (c *Catalog) Reload() error {
	specs, err := readDomainSpecs(c.fsys)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	lx := lexicon.New(c.model, c.nums, c.times)
	for _, spec := range specs {
		assignIDs(spec.Aliases)
		if _, err := lx.AddDomainSpec(spec); err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
	}

	tok := tokenizer.New(c.model, tokenizer.NewNumberInjector(c.nums), tokenizer.NewTimeInjector(c.times))
	if err := lx.Ingest(tok); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	c.current.Store(&snapshot{lexicon: lx, tokenizer: tok})
	if c.logger != nil {
		c.logger.Info("catalog loaded", "domains", len(specs))
	}
	return nil
}

// Tokenizer returns the tokenizer from the current snapshot.
func (c *Catalog) Tokenizer() *tokenizer.Tokenizer { return c.current.Load().tokenizer }

// Lexicon returns the lexicon from the current snapshot.
func (c *Catalog) Lexicon() *lexicon.Lexicon { return c.current.Load().lexicon }

// Model returns the term model shared across every reload.
func (c *Catalog) Model() *termmodel.Model { return c.model }

// assignIDs gives every alias missing a Token a stable ad-hoc id, so the
// opaque token payload a catalog hands to the Lexicon is always present
// even for aliases authored without one.
func assignIDs(specs []lexicon.AliasSpec) {
	for i := range specs {
		if specs[i].Token == nil {
			specs[i].Token = uuid.NewString()
		}
	}
}

func readDomainSpecs(fsys fs.FS) ([]lexicon.DomainSpec, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, ErrNoDomains
	}

	specs := make([]lexicon.DomainSpec, 0, len(names))
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		var spec lexicon.DomainSpec
		if err := yaml.Unmarshal(raw, &spec); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		if spec.Name == "" {
			return nil, fmt.Errorf("%s: domain has no name", name)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// ErrNoDomains is returned by readDomainSpecs's callers when a catalog
// directory has no YAML documents at all; kept as a sentinel since an
// empty catalog is a configuration mistake worth a distinct message, not
// a silent no-op ingest.
var ErrNoDomains = errors.New("catalog: no domain documents found")
