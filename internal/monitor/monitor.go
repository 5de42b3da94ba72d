package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/navsight/gunnery/internal/influx"
	"github.com/navsight/gunnery/internal/logging"
	"github.com/navsight/gunnery/internal/predictor"
)

// Dependencies holds all dependencies for the monitor service
type Dependencies struct {
	Predictor  *predictor.Predictor
	LogManager *logging.SlogManager
	Influx     *influx.Manager
	Interval   time.Duration
}

// Service periodically snapshots solver counters and ships the deltas
// to InfluxDB (or its backup file) and the structured log.
type Service struct {
	deps      Dependencies
	isRunning bool
	mu        sync.RWMutex
	stopChan  chan struct{}

	last predictor.Stats
}

// NewService creates a new monitor service
func NewService(deps Dependencies) *Service {
	if deps.Interval <= 0 {
		deps.Interval = time.Second
	}
	return &Service{
		deps:     deps,
		stopChan: make(chan struct{}),
	}
}

// IsRunning returns whether the status monitor is running
func (s *Service) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// StatusJSON returns the current cumulative counters as indented JSON.
func (s *Service) StatusJSON() string {
	stats := s.deps.Predictor.Stats()
	out, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": "%s"}`, err)
	}
	return string(out)
}

// Start starts the status monitor goroutine
func (s *Service) Start() error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.stopChan = make(chan struct{})
	s.last = s.deps.Predictor.Stats()
	s.mu.Unlock()

	go func() {
		defer func() {
			s.mu.Lock()
			s.isRunning = false
			s.mu.Unlock()
		}()

		logger := s.deps.LogManager.Logger()
		logger.Debug("Starting status monitor goroutine", "function", "startStatusMonitor")

		ticker := time.NewTicker(s.deps.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stopChan:
				return
			case now := <-ticker.C:
				stats := s.deps.Predictor.Stats()

				s.mu.Lock()
				solves := stats.Solves - s.last.Solves
				fallbacks := stats.Fallbacks - s.last.Fallbacks
				s.last = stats
				s.mu.Unlock()

				if solves == 0 {
					continue
				}

				logger.Debug("Solver interval",
					"solves", solves,
					"fallbacks", fallbacks,
				)

				if s.deps.Influx != nil {
					point := influx.SolverPoint(solves, fallbacks, now)
					err := s.deps.Influx.WritePoint(context.Background(), influx.SolverBucket, point)
					if err != nil {
						logger.Error("Error writing solver point", "error", err)
					}
				}
			}
		}
	}()

	return nil
}

// Stop stops the status monitor
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		close(s.stopChan)
	}
}
