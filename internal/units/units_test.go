package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnotsToMetersPerSecond(t *testing.T) {
	tests := []struct {
		name  string
		knots float64
		want  float64
	}{
		{"zero", 0, 0},
		{"one knot", 1, 0.5144},
		{"typical destroyer speed", 25, 12.86},
		{"full broadside cruiser", 32, 16.4608},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, KnotsToMetersPerSecond(tt.knots), 1e-9)
		})
	}
}

func TestMetersPerSecondToKnots_RoundTrips(t *testing.T) {
	assert.InDelta(t, 25.0, MetersPerSecondToKnots(KnotsToMetersPerSecond(25.0)), 1e-9)
}

func TestKilometersToMeters(t *testing.T) {
	assert.Equal(t, 8500.0, KilometersToMeters(8.5))
	assert.Equal(t, 0.0, KilometersToMeters(0))
}
