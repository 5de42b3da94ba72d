package parser

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navsight/gunnery/pkg/core"
)

func newTestParser() *Parser {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestParseTargetInfo(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name         string
		text         string
		wantDistance float64
		wantSpeed    float64
		wantClass    string
		wantID       string
	}{
		{
			name:         "full readout",
			text:         "Destroyer Shimakaze\n11.4 km\n32 kn",
			wantDistance: 11.4,
			wantSpeed:    32,
			wantClass:    core.ClassDestroyer,
			wantID:       "Destroyer Shimakaze",
		},
		{
			name:         "single line with knots suffix",
			text:         "Battleship Yamato 18.2 km 21.5 knots",
			wantDistance: 18.2,
			wantSpeed:    21.5,
			wantClass:    core.ClassBattleship,
			wantID:       "Battleship Yamato 18.2 km 21.5 knots",
		},
		{
			name:         "no class word defaults to unknown cruiser",
			text:         "8.5 km\n25 kn",
			wantDistance: 8.5,
			wantSpeed:    25,
			wantClass:    core.ClassCruiser,
			wantID:       "unknown",
		},
		{
			name:         "ragged recognition spacing",
			text:         "Cruiser   Mogami\n9.9   km\n30  kn",
			wantDistance: 9.9,
			wantSpeed:    30,
			wantClass:    core.ClassCruiser,
			wantID:       "Cruiser Mogami",
		},
		{
			name:         "quoted capture lines",
			text:         "\"Destroyer Fletcher\"\n7.2 km\n28 kn",
			wantDistance: 7.2,
			wantSpeed:    28,
			wantClass:    core.ClassDestroyer,
			wantID:       "Destroyer Fletcher",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs, err := p.ParseTargetInfo(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDistance, obs.DistanceKm)
			assert.Equal(t, tt.wantSpeed, obs.SpeedKnots)
			assert.Equal(t, tt.wantClass, obs.ShipClass)
			assert.Equal(t, tt.wantID, obs.ShipID)
			assert.Zero(t, obs.BearingDeg)
		})
	}
}

func TestParseTargetInfo_MissingFields(t *testing.T) {
	p := newTestParser()

	_, err := p.ParseTargetInfo("Destroyer Shimakaze\n32 kn")
	assert.ErrorIs(t, err, ErrNoDistance)

	_, err = p.ParseTargetInfo("Destroyer Shimakaze\n11.4 km")
	assert.ErrorIs(t, err, ErrNoSpeed)

	_, err = p.ParseTargetInfo("")
	assert.ErrorIs(t, err, ErrNoDistance)
}

func TestParseTargetInfo_TrailingDot(t *testing.T) {
	p := newTestParser()

	obs, err := p.ParseTargetInfo("12. km 25. kn")
	require.NoError(t, err)
	assert.Equal(t, 12.0, obs.DistanceKm)
	assert.Equal(t, 25.0, obs.SpeedKnots)
}

func TestParseGridRef(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name    string
		text    string
		want    GridRef
		wantErr bool
	}{
		{"simple", "A7", GridRef{Column: "A", Row: 7}, false},
		{"two digit row", "D10", GridRef{Column: "D", Row: 10}, false},
		{"spaced", "J 3", GridRef{Column: "J", Row: 3}, false},
		{"embedded in noise", "pos: C4 --", GridRef{Column: "C", Row: 4}, false},
		{"column out of range", "K7", GridRef{}, true},
		{"empty", "", GridRef{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := p.ParseGridRef(tt.text)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoGridRef)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ref)
		})
	}
}
