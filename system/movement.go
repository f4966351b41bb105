package system

import (
	"sync/atomic"

	"github.com/lixenwraith/ricochet/constant"
	"github.com/lixenwraith/ricochet/engine"
	"github.com/lixenwraith/ricochet/physics"
)

// MovementSystem advances every entity with position and velocity by one step
type MovementSystem struct {
	engine.SystemBase

	statMoved atomic.Int64
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(world *engine.World) *MovementSystem {
	return &MovementSystem{
		SystemBase: engine.NewSystemBase(world),
	}
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return constant.PriorityMovement
}

// Moved returns how many entities were advanced in the last tick
func (s *MovementSystem) Moved() int64 {
	return s.statMoved.Load()
}

func (s *MovementSystem) Update() {
	entities := s.World.Query().
		With(s.Component.Position).
		With(s.Component.Velocity).
		Execute()

	for _, e := range entities {
		pos := s.Component.Position.Ref(e)
		vel := s.Component.Velocity.Ref(e)
		if pos == nil || vel == nil {
			continue
		}

		body := physics.Body{Position: pos.Position, Velocity: vel.Velocity}
		physics.Advance(&body)
		pos.Position = body.Position
	}

	s.statMoved.Store(int64(len(entities)))
}
