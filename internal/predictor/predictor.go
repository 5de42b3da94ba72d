// Package predictor ties catalog resolution and ballistics into per-frame aim
// solutions. A Predictor is immutable after construction and safe to call
// from any number of frame loops concurrently; nothing in the hot path
// mutates shared state beyond metric counters.
package predictor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/navsight/gunnery/internal/ballistics"
	"github.com/navsight/gunnery/internal/catalog"
	"github.com/navsight/gunnery/internal/smoothing"
	"github.com/navsight/gunnery/pkg/core"
)

// Precondition violations. The upstream design left zero distance and zero
// shell velocity as undefined division-by-zero behavior; here they are typed
// errors so a caller can drop the frame instead of aiming at NaN.
var (
	ErrInvalidDistance      = errors.New("target distance must be positive")
	ErrInvalidShellVelocity = errors.New("shell velocity must be positive")
)

// Dependencies holds everything a Predictor needs.
type Dependencies struct {
	Catalog     *catalog.Catalog
	Calibration ballistics.Calibration // zero value selects the default
	Logger      *slog.Logger
	Smoother    *smoothing.Window // nil = stateless per-frame mode (baseline)
}

// Predictor computes aim solutions for target observations.
type Predictor struct {
	catalog  *catalog.Catalog
	calib    ballistics.Calibration
	logger   *slog.Logger
	smoother *smoothing.Window

	solves    metric.Int64Counter
	fallbacks metric.Int64Counter
	duration  metric.Float64Histogram

	// plain counters mirrored for the status monitor
	solveCount    atomic.Uint64
	fallbackCount atomic.Uint64
}

// Stats is a point-in-time snapshot of solver activity.
type Stats struct {
	Solves    uint64
	Fallbacks uint64
}

// New creates a Predictor. Uses the global OTel meter for metrics (no-op if
// not configured).
func New(deps Dependencies) (*Predictor, error) {
	if deps.Catalog == nil {
		deps.Catalog = catalog.Empty()
	}
	if deps.Calibration == (ballistics.Calibration{}) {
		deps.Calibration = ballistics.DefaultCalibration
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	p := &Predictor{
		catalog:  deps.Catalog,
		calib:    deps.Calibration,
		logger:   deps.Logger,
		smoother: deps.Smoother,
	}

	m := meter()
	var err error

	p.solves, err = m.Int64Counter(
		"predictor.solves",
		metric.WithDescription("Total aim solutions computed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating solve counter: %w", err)
	}

	p.fallbacks, err = m.Int64Counter(
		"predictor.fallbacks",
		metric.WithDescription("Solutions computed from fallback ship params"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fallback counter: %w", err)
	}

	p.duration, err = m.Float64Histogram(
		"predictor.solve.duration",
		metric.WithDescription("Time spent computing one solution"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	return p, nil
}

// Solution is the full output for one observation. Aim carries the lead
// correction only; DropPixels is informational for the overlay and is not
// folded into AimPoint, matching the calibrated in-game behavior.
type Solution struct {
	Aim          core.AimSolution
	AimPoint     core.ScreenPoint
	Resolution   catalog.Resolution
	TimeOfFlight float64 // seconds
	DropPixels   float64
}

// Lead computes the lateral lead correction for one observation.
func (p *Predictor) Lead(obs core.TargetObservation) (core.AimSolution, error) {
	sol, _, err := p.lead(obs)
	return sol, err
}

func (p *Predictor) lead(obs core.TargetObservation) (core.AimSolution, catalog.Resolution, error) {
	start := time.Now()

	res := p.catalog.Resolve(obs.ShipClass, obs.ShipID)
	if obs.DistanceKm <= 0 {
		return core.AimSolution{}, res, fmt.Errorf("observation of %q: %w", obs.ShipID, ErrInvalidDistance)
	}

	v := res.ShellVelocity()
	leadMeters := ballistics.LeadMeters(obs.DistanceKm, obs.SpeedKnots, obs.BearingDeg, v)
	leadPixels := p.calib.LeadPixels(leadMeters, obs.DistanceKm)
	dx, dy := ballistics.OffsetComponents(leadPixels, obs.BearingDeg)

	if p.smoother != nil {
		dx, dy = p.smoother.Apply(dx, dy)
	}

	p.record(res.Branch, time.Since(start))

	return core.AimSolution{LeadPixels: leadPixels, OffsetX: dx, OffsetY: dy}, res, nil
}

// Drop computes the vertical drop compensation in pixels. The result is
// overlay information; it is not part of the aim point.
func (p *Predictor) Drop(distanceKm, shellVelocity float64) (float64, error) {
	if distanceKm <= 0 {
		return 0, ErrInvalidDistance
	}
	if shellVelocity <= 0 {
		return 0, ErrInvalidShellVelocity
	}
	return p.calib.DropPixels(ballistics.DropMeters(distanceKm, shellVelocity), distanceKm), nil
}

// AimPoint computes the final clamped screen point for an observation,
// offsetting the detected target center by the lead correction.
func (p *Predictor) AimPoint(center core.ScreenPoint, obs core.TargetObservation, screen core.ScreenSize) (core.ScreenPoint, error) {
	sol, err := p.Lead(obs)
	if err != nil {
		return core.ScreenPoint{}, err
	}
	return screen.Clamp(core.ScreenPoint{
		X: center.X + int(math.Round(sol.OffsetX)),
		Y: center.Y + int(math.Round(sol.OffsetY)),
	}), nil
}

// Solve computes the complete solution for one frame: lead, aim point, drop,
// flight time, and which resolution branch supplied the ship params.
func (p *Predictor) Solve(center core.ScreenPoint, obs core.TargetObservation, screen core.ScreenSize) (Solution, error) {
	sol, res, err := p.lead(obs)
	if err != nil {
		return Solution{}, err
	}

	v := res.ShellVelocity()
	drop, err := p.Drop(obs.DistanceKm, v)
	if err != nil {
		return Solution{}, err
	}

	return Solution{
		Aim: sol,
		AimPoint: screen.Clamp(core.ScreenPoint{
			X: center.X + int(math.Round(sol.OffsetX)),
			Y: center.Y + int(math.Round(sol.OffsetY)),
		}),
		Resolution:   res,
		TimeOfFlight: ballistics.TimeOfFlight(obs.DistanceKm, v),
		DropPixels:   drop,
	}, nil
}

// Stats returns cumulative solver counters for the status monitor.
func (p *Predictor) Stats() Stats {
	return Stats{
		Solves:    p.solveCount.Load(),
		Fallbacks: p.fallbackCount.Load(),
	}
}

func (p *Predictor) record(branch catalog.Branch, elapsed time.Duration) {
	ctx := context.Background()
	attrs := metric.WithAttributes(attribute.String("branch", string(branch)))

	p.solves.Add(ctx, 1, attrs)
	p.solveCount.Add(1)
	if branch != catalog.BranchCatalog {
		p.fallbacks.Add(ctx, 1, attrs)
		p.fallbackCount.Add(1)
	}
	p.duration.Record(ctx, elapsed.Seconds())
}
