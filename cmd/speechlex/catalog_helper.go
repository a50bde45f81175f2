package main

import (
	"log/slog"

	"github.com/az-ai-labs/speechlex/catalog"
)

// loadCatalog opens the catalog at dir, or the embedded demo catalog if
// dir is empty.
func loadCatalog(dir string, logger *slog.Logger) (*catalog.Catalog, error) {
	if dir == "" {
		return catalog.LoadDemo(logger)
	}
	return catalog.Load(dir, logger)
}
