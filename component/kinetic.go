package component

import (
	"github.com/lixenwraith/ricochet/vmath"
)

// PositionComponent is the world-space center of a moving body
type PositionComponent struct {
	Position vmath.Vec2
}

// VelocityComponent is displacement per tick (time step folded in)
type VelocityComponent struct {
	Velocity vmath.Vec2
}

// RadiusComponent is the collision radius of a circular body, always positive
type RadiusComponent struct {
	Radius float64
}
