// pkg/core/params.go
package core

// ShipParams holds the per-ship values used by the fire-control solver.
// MaxSpeed and Acceleration describe the hull and are carried for catalog
// completeness; only ShellVelocity feeds the ballistic math.
type ShipParams struct {
	MaxSpeed      float64 `json:"max_speed"`      // knots
	Acceleration  float64 `json:"acceleration"`   // knots/s
	ShellVelocity float64 `json:"shell_velocity"` // m/s, muzzle velocity
}
