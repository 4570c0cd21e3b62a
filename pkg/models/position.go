package models

// Position is a point in percentage-of-map coordinates. Both axes live
// in [0,100]; simulated drift keeps icons inside a [10,90] margin so
// they stay visible on rendered maps.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Map coordinate bounds.
const (
	MapMin = 0.0
	MapMax = 100.0

	// DriftMin and DriftMax bound positions driven by simulated drift.
	DriftMin = 10.0
	DriftMax = 90.0

	// Crowd density bounds for the simulated density metric.
	DensityMin = 30.0
	DensityMax = 95.0
)

// Clamp restricts v to the [lo, hi] range.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampPercent restricts v to the full [0,100] map range.
func ClampPercent(v float64) float64 {
	return Clamp(v, MapMin, MapMax)
}

// Clamped returns the position restricted to [0,100] on both axes.
func (p Position) Clamped() Position {
	return Position{X: ClampPercent(p.X), Y: ClampPercent(p.Y)}
}

// Drifted returns the position moved by (dx, dy) and clamped to the
// [10,90] drift margin on both axes.
func (p Position) Drifted(dx, dy float64) Position {
	return Position{
		X: Clamp(p.X+dx, DriftMin, DriftMax),
		Y: Clamp(p.Y+dy, DriftMin, DriftMax),
	}
}
