package system

import (
	"sync/atomic"

	"github.com/lixenwraith/ricochet/constant"
	"github.com/lixenwraith/ricochet/engine"
	"github.com/lixenwraith/ricochet/physics"
)

// CollisionSystem sweeps every moving body against every wall, in wall creation order
// Hits within a tick resolve sequentially: later walls see the corrected state
type CollisionSystem struct {
	engine.SystemBase

	profile physics.CollisionProfile
	sink    CollisionSink

	tick      uint64
	statHits  atomic.Int64
	statTotal atomic.Int64

	walls []physics.Wall // Reused per tick
}

// NewCollisionSystem creates a collision system; nil sink discards diagnostics
func NewCollisionSystem(world *engine.World, profile physics.CollisionProfile, sink CollisionSink) *CollisionSystem {
	if sink == nil {
		sink = NopSink{}
	}
	return &CollisionSystem{
		SystemBase: engine.NewSystemBase(world),
		profile:    profile,
		sink:       sink,
		walls:      make([]physics.Wall, 0, 8),
	}
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return constant.PriorityCollision
}

// LastHits returns hits resolved in the last tick
func (s *CollisionSystem) LastHits() int64 {
	return s.statHits.Load()
}

// TotalHits returns hits resolved since creation
func (s *CollisionSystem) TotalHits() int64 {
	return s.statTotal.Load()
}

func (s *CollisionSystem) Update() {
	s.tick++
	s.collectWalls()

	bodies := s.World.Query().
		With(s.Component.Position).
		With(s.Component.Velocity).
		With(s.Component.Radius).
		Execute()

	var hits int64
	for _, e := range bodies {
		pos := s.Component.Position.Ref(e)
		vel := s.Component.Velocity.Ref(e)
		rad := s.Component.Radius.Ref(e)
		if pos == nil || vel == nil || rad == nil {
			continue
		}

		body := physics.Body{Position: pos.Position, Velocity: vel.Velocity, Radius: rad.Radius}
		hits += int64(physics.CollideAll(&body, s.walls, s.profile, func(i int, o physics.Outcome) {
			s.sink.OnCollision(CollisionEvent{
				Tick:     s.tick,
				Entity:   e,
				WallID:   s.walls[i].ID,
				Tier:     o.Tier,
				Position: body.Position,
				Velocity: body.Velocity,
				Normal:   o.Normal,
			})
		}))

		pos.Position = body.Position
		vel.Velocity = body.Velocity
	}

	s.statHits.Store(hits)
	s.statTotal.Add(hits)
}

// collectWalls snapshots wall components in enumeration order
func (s *CollisionSystem) collectWalls() {
	s.walls = s.walls[:0]
	for _, e := range s.World.Query().With(s.Component.Wall).Execute() {
		wc, ok := s.Component.Wall.Get(e)
		if !ok {
			continue
		}
		s.walls = append(s.walls, physics.Wall{ID: wc.WallID, Start: wc.Start, End: wc.End})
	}
}
