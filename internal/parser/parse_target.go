package parser

import (
	"regexp"
	"strings"

	"github.com/navsight/gunnery/internal/util"
	"github.com/navsight/gunnery/pkg/core"
)

// Patterns matching the game's target readout: "11.4 km", "25 kn".
var (
	distancePattern = regexp.MustCompile(`(\d+\.?\d*)\s*km`)
	speedPattern    = regexp.MustCompile(`(\d+\.?\d*)\s*kn`)
)

// shipClasses are the class words scanned for in the readout, in match
// priority order.
var shipClasses = []string{
	core.ClassDestroyer,
	core.ClassCruiser,
	core.ClassBattleship,
	core.ClassCarrier,
}

// ParseTargetInfo extracts a target observation from the recognized text of
// the target info readout. Distance and speed are required; a missing value
// returns ErrNoDistance or ErrNoSpeed and the frame should be skipped.
//
// Ship class and name are best-effort: when no class word appears the
// observation defaults to an unknown cruiser, which downstream resolution
// turns into the cruiser fallback params. BearingDeg is left zero — bearing
// comes from detector geometry, not from text.
func (p *Parser) ParseTargetInfo(text string) (core.TargetObservation, error) {
	obs := core.TargetObservation{
		ShipClass: core.ClassCruiser,
		ShipID:    "unknown",
	}

	m := distancePattern.FindStringSubmatch(text)
	if m == nil {
		return obs, ErrNoDistance
	}
	distance, err := parseRecognizedFloat(m[1])
	if err != nil {
		p.logger.Debug("Unparseable distance in recognized text", "capture", m[1], "error", err)
		return obs, ErrNoDistance
	}
	obs.DistanceKm = distance

	m = speedPattern.FindStringSubmatch(text)
	if m == nil {
		return obs, ErrNoSpeed
	}
	speed, err := parseRecognizedFloat(m[1])
	if err != nil {
		p.logger.Debug("Unparseable speed in recognized text", "capture", m[1], "error", err)
		return obs, ErrNoSpeed
	}
	obs.SpeedKnots = speed

	// The class word and ship name share a line in the readout. Recognized
	// lines sometimes arrive quoted from the capture pipeline.
	for _, line := range strings.Split(text, "\n") {
		line = util.TrimQuotes(strings.TrimSpace(line))
		for _, class := range shipClasses {
			if util.ContainsFold(line, class) {
				obs.ShipClass = class
				if name := util.CollapseSpaces(line); name != "" {
					obs.ShipID = name
				}
				break
			}
		}
	}

	return obs, nil
}
