// Package simulation owns one world built from a scene and advances it a tick at a time
package simulation

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/ricochet/core"
	"github.com/lixenwraith/ricochet/engine"
	"github.com/lixenwraith/ricochet/physics"
	"github.com/lixenwraith/ricochet/scene"
	"github.com/lixenwraith/ricochet/system"
	"github.com/lixenwraith/ricochet/vmath"
)

// Simulation is the tick pipeline: movement stage then collision stage
// Read accessors are safe to call from another goroutine between ticks
type Simulation struct {
	name    string
	world   *engine.World
	body    core.Entity
	profile physics.CollisionProfile
	logger  *log.Logger

	movement  *system.MovementSystem
	collision *system.CollisionSystem

	ticks atomic.Uint64
}

type options struct {
	profile *physics.CollisionProfile
	sink    system.CollisionSink
	logger  *log.Logger
}

// Option configures a Simulation at construction
type Option func(*options)

// WithProfile overrides the scene's collision profile
func WithProfile(p physics.CollisionProfile) Option {
	return func(o *options) {
		o.profile = &p
	}
}

// WithSink receives one event per resolved collision
func WithSink(sink system.CollisionSink) Option {
	return func(o *options) {
		o.sink = sink
	}
}

// WithLogger sets the lifecycle logger; collisions are reported through the sink only
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New validates the scene and profile, populates a world and registers the systems
// All configuration errors surface here, before any tick
func New(sc scene.Scene, opts ...Option) (*Simulation, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	profile := sc.CollisionProfile()
	if o.profile != nil {
		profile = *o.profile
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}

	world := engine.NewWorld()
	body, err := sc.Populate(world)
	if err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}

	s := &Simulation{
		name:      sc.Name,
		world:     world,
		body:      body,
		profile:   profile,
		logger:    o.logger,
		movement:  system.NewMovementSystem(world),
		collision: system.NewCollisionSystem(world, profile, o.sink),
	}
	world.AddSystem(s.movement)
	world.AddSystem(s.collision)

	s.logger.Info("simulation ready",
		"scene", sc.Name,
		"walls", len(sc.Walls),
		"body", body,
		"radius", sc.Body.Radius,
	)
	return s, nil
}

// AdvanceOneTick runs one full tick under the world update lock
func (s *Simulation) AdvanceOneTick() {
	s.world.Update()
	s.ticks.Add(1)
}

// BodyPosition returns the body's position as of the last completed tick
func (s *Simulation) BodyPosition() vmath.Vec2 {
	return s.Body().Position
}

// BodyVelocity returns the body's velocity as of the last completed tick
func (s *Simulation) BodyVelocity() vmath.Vec2 {
	return s.Body().Velocity
}

// Body returns a snapshot of the body state
func (s *Simulation) Body() physics.Body {
	var b physics.Body
	s.world.RunSafe(func() {
		cs := s.world.Components
		if p, ok := cs.Position.Get(s.body); ok {
			b.Position = p.Position
		}
		if v, ok := cs.Velocity.Get(s.body); ok {
			b.Velocity = v.Velocity
		}
		if r, ok := cs.Radius.Get(s.body); ok {
			b.Radius = r.Radius
		}
	})
	return b
}

// Walls returns the walls in enumeration order
func (s *Simulation) Walls() []physics.Wall {
	var walls []physics.Wall
	s.world.RunSafe(func() {
		cs := s.world.Components
		for _, e := range s.world.Query().With(cs.Wall).Execute() {
			wc, ok := cs.Wall.Get(e)
			if !ok {
				continue
			}
			walls = append(walls, physics.Wall{ID: wc.WallID, Start: wc.Start, End: wc.End})
		}
	})
	return walls
}

// Ticks returns completed ticks
func (s *Simulation) Ticks() uint64 {
	return s.ticks.Load()
}

// Hits returns collisions resolved since construction
func (s *Simulation) Hits() int64 {
	return s.collision.TotalHits()
}

// Name returns the scene name
func (s *Simulation) Name() string {
	return s.name
}

// Profile returns the active collision profile
func (s *Simulation) Profile() physics.CollisionProfile {
	return s.profile
}
