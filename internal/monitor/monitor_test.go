package monitor

import (
	"testing"
	"time"

	"github.com/navsight/gunnery/internal/logging"
	"github.com/navsight/gunnery/internal/predictor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *predictor.Predictor) {
	t.Helper()
	p, err := predictor.New(predictor.Dependencies{})
	require.NoError(t, err)

	s := NewService(Dependencies{
		Predictor:  p,
		LogManager: logging.NewSlogManager(),
		Interval:   10 * time.Millisecond,
	})
	return s, p
}

func TestStatusJSON(t *testing.T) {
	s, _ := newTestService(t)
	out := s.StatusJSON()
	assert.Contains(t, out, `"Solves": 0`)
	assert.Contains(t, out, `"Fallbacks": 0`)
}

func TestStartStop(t *testing.T) {
	s, _ := newTestService(t)

	require.NoError(t, s.Start())
	assert.True(t, s.IsRunning())

	// second start is a no-op
	require.NoError(t, s.Start())

	s.Stop()
	assert.Eventually(t, func() bool {
		return !s.IsRunning()
	}, time.Second, 10*time.Millisecond)
}
