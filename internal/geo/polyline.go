package geo

import (
	"encoding/json"
	"fmt"

	geom "github.com/peterstace/simplefeatures/geom"
)

// ParsePolyline parses a JSON array of screen coordinates into a
// geom.LineString. The overlay records calibration sweeps in this format.
// Input: "[[x1,y1],[x2,y2],...]"
func ParsePolyline(input string) (geom.LineString, error) {
	var coords [][]float64
	if err := json.Unmarshal([]byte(input), &coords); err != nil {
		return geom.LineString{}, fmt.Errorf("failed to parse polyline JSON: %w", err)
	}

	if len(coords) < 2 {
		return geom.LineString{}, fmt.Errorf("polyline must have at least 2 points, got %d", len(coords))
	}

	flat := make([]float64, 0, len(coords)*2)
	for i, coord := range coords {
		if len(coord) < 2 {
			return geom.LineString{}, fmt.Errorf("coordinate %d has insufficient values", i)
		}
		flat = append(flat, coord[0], coord[1])
	}

	return geom.NewLineString(geom.NewSequence(flat, geom.DimXY)), nil
}

// SweepScale derives a pixels-per-km scale from a recorded calibration sweep:
// the reticle is panned along a run of known length and the traced screen
// polyline is measured against it.
func SweepScale(input string, distanceKm float64) (float64, error) {
	if distanceKm <= 0 {
		return 0, fmt.Errorf("sweep distance must be positive, got %v", distanceKm)
	}

	ls, err := ParsePolyline(input)
	if err != nil {
		return 0, err
	}

	length := ls.Length()
	if length == 0 {
		return 0, fmt.Errorf("sweep polyline has zero length")
	}

	return length / distanceKm, nil
}
