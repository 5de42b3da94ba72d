// Package catalog resolves per-ship ballistic parameters from a static data
// source. Resolution is total: every (class, id) pair produces usable params,
// falling through catalog -> class defaults -> generic defaults.
package catalog

import (
	"strings"

	"github.com/navsight/gunnery/internal/ballistics"
	"github.com/navsight/gunnery/pkg/core"
)

// unknownKey substitutes for an empty class or ship identifier.
const unknownKey = "unknown"

// Branch identifies which step of the fallback chain produced the params.
type Branch string

const (
	// BranchCatalog means the ship was found in the loaded data.
	BranchCatalog Branch = "catalog"
	// BranchClassDefault means the class had a fixed fallback record.
	BranchClassDefault Branch = "class_default"
	// BranchGeneric means neither the ship nor its class was recognized.
	BranchGeneric Branch = "generic_default"
)

// Resolution is the outcome of a catalog lookup.
type Resolution struct {
	Params core.ShipParams
	Branch Branch
}

// ShellVelocity returns the resolved muzzle velocity, substituting the global
// default for records that carry none. Catalog entries are returned verbatim
// by Resolve, so a partially-populated record can reach this point.
func (r Resolution) ShellVelocity() float64 {
	if r.Params.ShellVelocity <= 0 {
		return ballistics.DefaultShellVelocity
	}
	return r.Params.ShellVelocity
}

// Catalog is an immutable (class, id) -> params mapping. The zero-entry
// catalog is valid: every lookup then hits the fallback path.
type Catalog struct {
	// classes is keyed by plural class name ("destroyers"), matching the
	// source data layout; ship ids are lowercased on load.
	classes map[string]map[string]core.ShipParams
}

// New builds a catalog from source data keyed by plural class name. All keys
// are normalized to lowercase.
func New(classes map[string]map[string]core.ShipParams) *Catalog {
	c := &Catalog{classes: make(map[string]map[string]core.ShipParams, len(classes))}
	for class, ships := range classes {
		normalized := make(map[string]core.ShipParams, len(ships))
		for id, params := range ships {
			normalized[strings.ToLower(id)] = params
		}
		c.classes[strings.ToLower(class)] = normalized
	}
	return c
}

// Empty returns a catalog with no entries.
func Empty() *Catalog {
	return &Catalog{classes: map[string]map[string]core.ShipParams{}}
}

// Len returns the total number of ship entries across all classes.
func (c *Catalog) Len() int {
	n := 0
	for _, ships := range c.classes {
		n += len(ships)
	}
	return n
}

// Resolve looks up ballistic parameters for a ship. Both keys are
// case-insensitive; empty values are treated as "unknown". Catalog hits are
// returned verbatim, including partially-populated records — callers apply
// field-level defaults via Resolution.ShellVelocity.
func (c *Catalog) Resolve(shipClass, shipID string) Resolution {
	class := strings.ToLower(strings.TrimSpace(shipClass))
	if class == "" {
		class = unknownKey
	}
	id := strings.ToLower(strings.TrimSpace(shipID))
	if id == "" {
		id = unknownKey
	}

	if ships, ok := c.classes[class+"s"]; ok {
		if params, ok := ships[id]; ok {
			return Resolution{Params: params, Branch: BranchCatalog}
		}
	}

	if params, ok := classDefaults[class]; ok {
		return Resolution{Params: params, Branch: BranchClassDefault}
	}
	return Resolution{Params: genericDefault, Branch: BranchGeneric}
}
