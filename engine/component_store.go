package engine

import (
	"github.com/lixenwraith/ricochet/component"
)

// ComponentStore provides cached pointers to typed component stores
// Initialized once per world; pointers remain valid for the world lifetime
type ComponentStore struct {
	// Body
	Position *Store[component.PositionComponent]
	Velocity *Store[component.VelocityComponent]
	Radius   *Store[component.RadiusComponent]

	// Static geometry
	Wall *Store[component.WallComponent]
}

// newComponentStore allocates every store of the world
func newComponentStore() ComponentStore {
	return ComponentStore{
		Position: NewStore[component.PositionComponent](),
		Velocity: NewStore[component.VelocityComponent](),
		Radius:   NewStore[component.RadiusComponent](),
		Wall:     NewStore[component.WallComponent](),
	}
}

// stores lists all stores for uniform lifecycle operations
func (cs ComponentStore) stores() []AnyStore {
	return []AnyStore{cs.Position, cs.Velocity, cs.Radius, cs.Wall}
}
