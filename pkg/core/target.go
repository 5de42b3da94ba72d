// pkg/core/target.go
package core

// Recognized ship classes. Anything else resolves to the generic defaults.
const (
	ClassDestroyer  = "destroyer"
	ClassCruiser    = "cruiser"
	ClassBattleship = "battleship"
	ClassCarrier    = "carrier"
)

// TargetObservation is a single-frame snapshot of one target, assembled from
// the detector and recognized telemetry text. Observations carry no identity
// across frames: each frame builds a fresh one and discards it after solving.
type TargetObservation struct {
	DistanceKm float64 // > 0
	SpeedKnots float64 // >= 0
	BearingDeg float64 // 0 = bow-on (closing or opening), 90 = full broadside
	ShipClass  string
	ShipID     string
}
