// Package geo builds screen-space geometry for the presentation layer. Screen
// pixels are treated as a plain cartesian plane; there is no map projection
// involved.
package geo

import (
	geom "github.com/peterstace/simplefeatures/geom"

	"github.com/navsight/gunnery/pkg/core"
)

// LeadLine builds the overlay segment from the target center to the computed
// aim point.
func LeadLine(from, to core.ScreenPoint) geom.LineString {
	seq := geom.NewSequence([]float64{
		float64(from.X), float64(from.Y),
		float64(to.X), float64(to.Y),
	}, geom.DimXY)
	return geom.NewLineString(seq)
}

// LeadLineWKT renders the lead line as WKT for consumers that take geometry
// as text.
func LeadLineWKT(from, to core.ScreenPoint) string {
	return LeadLine(from, to).AsText()
}
