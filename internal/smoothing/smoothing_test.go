package smoothing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow_SingleSampleIsPassThrough(t *testing.T) {
	w := NewWindow(4)
	dx, dy := w.Apply(10, -5)
	assert.Equal(t, 10.0, dx)
	assert.Equal(t, -5.0, dy)
}

func TestWindow_AveragesWithinWindow(t *testing.T) {
	w := NewWindow(3)
	w.Apply(0, 0)
	w.Apply(10, 20)
	dx, dy := w.Apply(20, 40)
	assert.InDelta(t, 10, dx, 1e-9)
	assert.InDelta(t, 20, dy, 1e-9)
}

func TestWindow_EvictsOldSamples(t *testing.T) {
	w := NewWindow(2)
	w.Apply(100, 100)
	w.Apply(10, 10)
	dx, dy := w.Apply(20, 20)
	assert.InDelta(t, 15, dx, 1e-9)
	assert.InDelta(t, 15, dy, 1e-9)
}

func TestWindow_Reset(t *testing.T) {
	w := NewWindow(3)
	w.Apply(100, 100)
	w.Reset()
	dx, dy := w.Apply(4, 6)
	assert.Equal(t, 4.0, dx)
	assert.Equal(t, 6.0, dy)
}

func TestNewWindow_ClampsSize(t *testing.T) {
	w := NewWindow(0)
	w.Apply(1, 1)
	dx, _ := w.Apply(3, 3)
	assert.Equal(t, 3.0, dx)
}
