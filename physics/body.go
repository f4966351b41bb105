package physics

import (
	"github.com/lixenwraith/ricochet/vmath"
)

// Body is the owned kinematic state of a moving circle
// Stages receive it by pointer and mutate it in place
type Body struct {
	Position vmath.Vec2
	Velocity vmath.Vec2 // Displacement per tick
	Radius   float64
}

// Wall is a static line segment; ID is diagnostic only
type Wall struct {
	ID         int
	Start, End vmath.Vec2
}

// Direction returns End - Start
func (w Wall) Direction() vmath.Vec2 {
	return vmath.V2Sub(w.End, w.Start)
}

// Normal returns the unit normal, direction rotated 90° counter-clockwise
// Sense follows endpoint order and is not canonicalized: swapping Start and End flips it
// Zero vector for a degenerate wall
func (w Wall) Normal() vmath.Vec2 {
	return vmath.V2Normalize(vmath.V2Perpendicular(w.Direction()))
}

// IsDegenerate reports coincident endpoints
func (w Wall) IsDegenerate() bool {
	return w.Start == w.End
}
