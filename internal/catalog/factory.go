package catalog

import (
	"log/slog"

	"gorm.io/gorm"
)

// Fetcher retrieves a raw catalog document from a remote service.
type Fetcher interface {
	FetchCatalog() ([]byte, error)
}

// Config selects and locates the catalog data source.
type Config struct {
	Source string // "json", "db", or "http"
	Path   string // JSON file path, used by the json source
}

// FromSource builds a catalog from the configured source. db and fetcher may
// be nil when their source is not selected. Construction never fails: unknown
// sources and unavailable backends degrade to the empty catalog.
func FromSource(cfg Config, db *gorm.DB, fetcher Fetcher, logger *slog.Logger) *Catalog {
	switch cfg.Source {
	case "json", "":
		return LoadFile(cfg.Path, logger)
	case "db":
		if db == nil {
			logger.Error("Catalog source is db but no database is available, using fallback params only")
			return Empty()
		}
		return LoadDB(db, logger)
	case "http":
		if fetcher == nil {
			logger.Error("Catalog source is http but no client is available, using fallback params only")
			return Empty()
		}
		return LoadRemote(fetcher, logger)
	default:
		logger.Error("Unknown catalog source, using fallback params only", "source", cfg.Source)
		return Empty()
	}
}

// LoadRemote fetches and parses a catalog from a remote service, degrading
// to the empty catalog on failure like the other loaders.
func LoadRemote(fetcher Fetcher, logger *slog.Logger) *Catalog {
	raw, err := fetcher.FetchCatalog()
	if err != nil {
		logger.Error("Failed to fetch ship catalog, using fallback params only", "error", err)
		return Empty()
	}

	c, err := Parse(raw)
	if err != nil {
		logger.Error("Failed to parse remote ship catalog, using fallback params only", "error", err)
		return Empty()
	}

	logger.Info("Ship catalog loaded from remote service", "ships", c.Len())
	return c
}
