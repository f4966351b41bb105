package physics

import (
	"github.com/lixenwraith/ricochet/vmath"
)

// Advance moves the body by its velocity, P' = P + V
// No bounds checks; collision correction runs after this in the same tick
func Advance(b *Body) {
	b.Position = vmath.V2Add(b.Position, b.Velocity)
}

// PreviousPosition returns the position before the last Advance, P - V
func PreviousPosition(b *Body) vmath.Vec2 {
	return vmath.V2Sub(b.Position, b.Velocity)
}
