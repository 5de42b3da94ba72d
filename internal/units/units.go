// Package units provides shared conversion constants for speeds and distances.
package units

// Conversion constants. Catalog speeds and recognized telemetry arrive in
// knots and kilometers; all ballistic math runs in meters and seconds.
const (
	MetersPerSecondPerKnot = 0.5144
	MetersPerKilometer     = 1000.0
)

// KnotsToMetersPerSecond converts a speed in knots to m/s.
func KnotsToMetersPerSecond(knots float64) float64 {
	return knots * MetersPerSecondPerKnot
}

// MetersPerSecondToKnots converts a speed in m/s to knots.
func MetersPerSecondToKnots(ms float64) float64 {
	return ms / MetersPerSecondPerKnot
}

// KilometersToMeters converts a distance in km to meters.
func KilometersToMeters(km float64) float64 {
	return km * MetersPerKilometer
}
