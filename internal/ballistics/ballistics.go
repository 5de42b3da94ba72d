// Package ballistics implements the closed-form trajectory approximations
// behind the solver: time of flight, lateral lead, and gravity drop.
//
// The model is deliberately simple. Time of flight adds a first-order
// gravity-drop term to the flat-fire time rather than solving the full
// parabolic arc, and drop applies 0.5*g*t^2 on top of that already
// gravity-adjusted time. Both shortcuts match the calibrated in-game output
// and are kept as-is; changing either shifts every downstream pixel value.
package ballistics

import (
	"math"

	"github.com/navsight/gunnery/internal/units"
)

const (
	// Gravity is the vertical acceleration applied to shells, m/s^2.
	Gravity = 9.8

	// DefaultShellVelocity is the muzzle velocity assumed when a catalog
	// record carries none, m/s.
	DefaultShellVelocity = 800.0
)

// TimeOfFlight returns the shell travel time in seconds for a target at
// distanceKm, fired at shellVelocity m/s.
//
//	t = d/v + g*d^2 / (2*v^2)
//
// Callers guarantee shellVelocity > 0 and distanceKm >= 0.
func TimeOfFlight(distanceKm, shellVelocity float64) float64 {
	d := units.KilometersToMeters(distanceKm)
	return d/shellVelocity + (Gravity*d*d)/(2*shellVelocity*shellVelocity)
}

// EffectiveSpeed returns the component of target speed perpendicular to the
// line of fire, in m/s. Bearing 0 or 180 degrees (moving straight toward or
// away) contributes nothing; 90 degrees (full broadside) contributes all of it.
func EffectiveSpeed(speedKnots, bearingDeg float64) float64 {
	return units.KnotsToMetersPerSecond(speedKnots) * math.Sin(bearingDeg*math.Pi/180)
}

// LeadMeters returns the lateral distance the target covers during shell
// flight, in meters.
func LeadMeters(distanceKm, speedKnots, bearingDeg, shellVelocity float64) float64 {
	return EffectiveSpeed(speedKnots, bearingDeg) * TimeOfFlight(distanceKm, shellVelocity)
}

// DropMeters returns the free-fall drop accumulated over the time of flight,
// in meters.
func DropMeters(distanceKm, shellVelocity float64) float64 {
	tof := TimeOfFlight(distanceKm, shellVelocity)
	return 0.5 * Gravity * tof * tof
}

// OffsetComponents decomposes a lead distance in pixels into screen-axis
// offsets. Y is negated: the physical model is y-up, the screen is y-down.
func OffsetComponents(leadPixels, bearingDeg float64) (dx, dy float64) {
	rad := bearingDeg * math.Pi / 180
	return leadPixels * math.Sin(rad), -leadPixels * math.Cos(rad)
}

// Calibration maps physical distances at the target to screen pixels. The
// scale is inversely proportional to target distance, which approximates the
// perspective foreshortening of the fixed game camera without real projective
// geometry. Values are per-display tunables surfaced through configuration.
type Calibration struct {
	// PixelsPerKm is how many pixels one kilometer of lateral distance
	// spans when the target sits at ReferenceKm.
	PixelsPerKm float64

	// PixelsPer100m is how many pixels 100 m of vertical drop spans when
	// the target sits at ReferenceKm.
	PixelsPer100m float64

	// ReferenceKm is the distance the two scales are calibrated at.
	ReferenceKm float64
}

// DefaultCalibration matches the stock 1920x1080 game UI.
var DefaultCalibration = Calibration{
	PixelsPerKm:   100,
	PixelsPer100m: 10,
	ReferenceKm:   10,
}

// LeadPixels converts a lateral lead in meters to screen pixels for a target
// at distanceKm. Callers guarantee distanceKm > 0.
func (c Calibration) LeadPixels(leadMeters, distanceKm float64) float64 {
	perKm := c.PixelsPerKm * (c.ReferenceKm / distanceKm)
	return leadMeters / units.MetersPerKilometer * perKm
}

// DropPixels converts a vertical drop in meters to screen pixels for a target
// at distanceKm. Callers guarantee distanceKm > 0.
func (c Calibration) DropPixels(dropMeters, distanceKm float64) float64 {
	per100m := c.PixelsPer100m * (c.ReferenceKm / distanceKm)
	return dropMeters / 100 * per100m
}
