// pkg/core/solution.go
package core

// AimSolution is the lead correction for one observation, in screen pixels.
// OffsetY is negative for targets moving up-screen because the physical model
// is y-up while screen y grows downward.
type AimSolution struct {
	LeadPixels float64 `json:"leadPixels"`
	OffsetX    float64 `json:"offsetX"`
	OffsetY    float64 `json:"offsetY"`
}
