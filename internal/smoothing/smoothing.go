// Package smoothing provides an optional sliding-window filter for aim
// offsets. The baseline solver mode is stateless per-frame re-detection; a
// smoother only exists for deployments where detector jitter makes the raw
// aim marker shake.
package smoothing

import (
	"sync"

	"gonum.org/v1/gonum/stat"
)

// Window smooths successive offset pairs with a windowed mean. Safe for use
// from a single frame loop; the mutex exists so a hotkey handler can Reset
// concurrently.
type Window struct {
	mu   sync.Mutex
	size int
	xs   []float64
	ys   []float64
}

// NewWindow creates a smoother averaging over the last size offsets.
// Size values below 1 are treated as 1, which is a pass-through.
func NewWindow(size int) *Window {
	if size < 1 {
		size = 1
	}
	return &Window{size: size}
}

// Apply records the offsets and returns the smoothed pair.
func (w *Window) Apply(dx, dy float64) (float64, float64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.xs = append(w.xs, dx)
	w.ys = append(w.ys, dy)
	if len(w.xs) > w.size {
		w.xs = w.xs[1:]
		w.ys = w.ys[1:]
	}
	return stat.Mean(w.xs, nil), stat.Mean(w.ys, nil)
}

// Reset drops the window, e.g. when the operator switches targets.
func (w *Window) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.xs = w.xs[:0]
	w.ys = w.ys[:0]
}
