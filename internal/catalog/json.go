package catalog

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/navsight/gunnery/pkg/core"
)

// LoadFile reads a JSON catalog from disk. The document maps plural class
// names to ship-id -> params objects:
//
//	{"destroyers": {"shimakaze": {"max_speed": 39, "shell_velocity": 850}}}
//
// Loading is best-effort: a missing, unreadable, or malformed file is logged
// and yields the empty catalog so the solver degrades to fallback params
// instead of failing to start.
func LoadFile(path string, logger *slog.Logger) *Catalog {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Failed to read ship catalog, using fallback params only", "path", path, "error", err)
		return Empty()
	}

	c, err := Parse(raw)
	if err != nil {
		logger.Error("Failed to parse ship catalog, using fallback params only", "path", path, "error", err)
		return Empty()
	}

	logger.Info("Ship catalog loaded", "path", path, "ships", c.Len())
	return c
}

// Parse decodes a JSON catalog document.
func Parse(raw []byte) (*Catalog, error) {
	var classes map[string]map[string]core.ShipParams
	if err := json.Unmarshal(raw, &classes); err != nil {
		return nil, err
	}
	return New(classes), nil
}
