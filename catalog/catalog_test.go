package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeDomain(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadBuildsTokenizerFromYAMLDomains(t *testing.T) {
	dir := t.TempDir()
	writeDomain(t, dir, "cars.yaml", `
name: cars
for_ingestion: true
matcher: exact
aliases:
  - token: sku-1
    text: red convertible
`)

	c, err := Load(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Lexicon().Domains()) != 1 {
		t.Fatalf("Domains() len = %d, want 1", len(c.Lexicon().Domains()))
	}
	if c.Tokenizer() == nil {
		t.Fatal("Tokenizer() = nil")
	}
}

func TestLoadAssignsUUIDToAliasWithoutToken(t *testing.T) {
	dir := t.TempDir()
	writeDomain(t, dir, "cars.yaml", `
name: cars
for_ingestion: true
matcher: exact
aliases:
  - text: red convertible
`)

	c, err := Load(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	aliases := c.Lexicon().Domains()[0].Aliases()
	if len(aliases) != 1 {
		t.Fatalf("len(aliases) = %d, want 1", len(aliases))
	}
	token, ok := aliases[0].Token.(string)
	if !ok || token == "" {
		t.Fatalf("Token = %+v, want a non-empty uuid string", aliases[0].Token)
	}
}

func TestLoadRejectsUnknownMatcherName(t *testing.T) {
	dir := t.TempDir()
	writeDomain(t, dir, "cars.yaml", `
name: cars
for_ingestion: true
matcher: fuzzy-deluxe
aliases:
  - text: red convertible
`)

	if _, err := Load(dir, nil); err == nil {
		t.Fatal("Load() = nil error, want an unknown-matcher error")
	}
}

func TestLoadRejectsEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir, nil); err == nil {
		t.Fatal("Load() = nil error, want ErrNoDomains")
	}
}

func TestLoadDemo(t *testing.T) {
	c, err := LoadDemo(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Lexicon().Domains()) < 2 {
		t.Fatalf("demo catalog has %d domains, want at least 2", len(c.Lexicon().Domains()))
	}
}

func TestWatchReloadsOnFileChange(t *testing.T) {
	dir := t.TempDir()
	writeDomain(t, dir, "cars.yaml", `
name: cars
for_ingestion: true
matcher: exact
aliases:
  - token: sku-1
    text: red convertible
`)

	c, err := Load(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	before := c.Tokenizer()

	w, err := Watch(c, dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	writeDomain(t, dir, "cars.yaml", `
name: cars
for_ingestion: true
matcher: exact
aliases:
  - token: sku-1
    text: red convertible
  - token: sku-2
    text: blue sedan
`)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if c.Tokenizer() != before && len(c.Lexicon().Domains()[0].Aliases()) == 2 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("catalog did not reload within the deadline")
}
