// Package parser converts free-form recognized telemetry text into solver
// inputs. It is pure string -> struct conversion with only a logger
// dependency; image handling lives entirely in the recognition collaborator.
package parser

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Sentinel errors for fields the recognized text did not yield. A frame with
// either error is skipped upstream rather than solved with invented values.
var (
	ErrNoDistance = errors.New("no distance found in recognized text")
	ErrNoSpeed    = errors.New("no speed found in recognized text")
	ErrNoGridRef  = errors.New("no grid reference found in recognized text")
)

// Parser converts recognized text into observations.
type Parser struct {
	logger *slog.Logger
}

// New creates a parser with only a logger dependency.
func New(logger *slog.Logger) *Parser {
	return &Parser{logger: logger}
}

// parseRecognizedFloat parses a number captured from recognized text.
// Recognition output occasionally carries a trailing dot ("12." km), so the
// capture is trimmed before conversion.
func parseRecognizedFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSuffix(s, "."), 64)
}
