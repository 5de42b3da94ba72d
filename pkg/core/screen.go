// pkg/core/screen.go
package core

// ScreenPoint is a pixel coordinate on the active display.
type ScreenPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ScreenSize is the active display resolution.
type ScreenSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Clamp saturates p to [0, Width] x [0, Height]. Out-of-range points are
// pulled to the nearest edge, never rejected.
func (s ScreenSize) Clamp(p ScreenPoint) ScreenPoint {
	if p.X < 0 {
		p.X = 0
	} else if p.X > s.Width {
		p.X = s.Width
	}
	if p.Y < 0 {
		p.Y = 0
	} else if p.Y > s.Height {
		p.Y = s.Height
	}
	return p
}
