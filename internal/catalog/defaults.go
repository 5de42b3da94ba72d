package catalog

import "github.com/navsight/gunnery/pkg/core"

// classDefaults are the fixed fallback records for recognized classes,
// returned when the loaded data has no entry for a ship.
var classDefaults = map[string]core.ShipParams{
	core.ClassDestroyer:  {MaxSpeed: 35.0, Acceleration: 2.0, ShellVelocity: 800},
	core.ClassCruiser:    {MaxSpeed: 32.0, Acceleration: 1.8, ShellVelocity: 850},
	core.ClassBattleship: {MaxSpeed: 28.0, Acceleration: 1.3, ShellVelocity: 800},
}

// genericDefault covers unrecognized or missing classes.
var genericDefault = core.ShipParams{MaxSpeed: 30.0, Acceleration: 1.5, ShellVelocity: 800}
