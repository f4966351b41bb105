package component

import (
	"github.com/lixenwraith/ricochet/vmath"
)

// WallComponent marks an entity as a static wall segment
// Immutable after creation; WallID is used only in diagnostics
type WallComponent struct {
	Start, End vmath.Vec2
	WallID     int
}
