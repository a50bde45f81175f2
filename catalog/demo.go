package catalog

import (
	"embed"
	"io/fs"
	"log/slog"
)

// demoFS embeds a small two-domain demo catalog (cars and addons), in
// the same go:embed spirit as this codebase's data package embedding
// fixed dictionary data: a read-only, input-free package default, never
// anything that does its own I/O at package-init time.
//
//go:embed demo/*.yaml
var demoFS embed.FS

// LoadDemo builds a Catalog from the embedded demo catalog, useful for
// the REPL's zero-configuration path and for tests.
func LoadDemo(logger *slog.Logger) (*Catalog, error) {
	sub, err := fs.Sub(demoFS, "demo")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub, logger)
}
