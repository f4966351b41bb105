// Package scene holds construction-time descriptions of the body and walls
// and turns them into ECS entities
package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/ricochet/component"
	"github.com/lixenwraith/ricochet/core"
	"github.com/lixenwraith/ricochet/engine"
	"github.com/lixenwraith/ricochet/physics"
	"github.com/lixenwraith/ricochet/vmath"
)

// Configuration errors, fatal at scene setup
var (
	ErrDegenerateWall    = errors.New("wall endpoints coincide")
	ErrNonPositiveRadius = errors.New("radius must be positive")
	ErrNonFinite         = errors.New("value is not finite")
)

// Point is an (x, y) pair, written as a two-element sequence in scene files
type Point [2]float64

// Vec converts to vmath.Vec2
func (p Point) Vec() vmath.Vec2 {
	return vmath.V2(p[0], p[1])
}

// BodySpec describes the moving body
type BodySpec struct {
	Position Point   `yaml:"position"`
	Velocity Point   `yaml:"velocity"` // Displacement per tick
	Radius   float64 `yaml:"radius"`
}

// WallSpec describes one wall segment; endpoint order fixes the normal sense
type WallSpec struct {
	ID    int   `yaml:"id"`
	Start Point `yaml:"start"`
	End   Point `yaml:"end"`
}

// Scene is the complete initial description supplied before the first tick
type Scene struct {
	Name    string                    `yaml:"name,omitempty"`
	Profile *physics.CollisionProfile `yaml:"profile,omitempty"`
	Body    BodySpec                  `yaml:"body"`
	Walls   []WallSpec                `yaml:"walls"`
}

// Validate checks every construction invariant and reports all violations joined
func (s Scene) Validate() error {
	var errs []error

	if !finite(s.Body.Position[:]...) {
		errs = append(errs, fmt.Errorf("body position %v: %w", s.Body.Position, ErrNonFinite))
	}
	if !finite(s.Body.Velocity[:]...) {
		errs = append(errs, fmt.Errorf("body velocity %v: %w", s.Body.Velocity, ErrNonFinite))
	}
	if !finite(s.Body.Radius) {
		errs = append(errs, fmt.Errorf("body radius %v: %w", s.Body.Radius, ErrNonFinite))
	} else if s.Body.Radius <= 0 {
		errs = append(errs, fmt.Errorf("body radius %v: %w", s.Body.Radius, ErrNonPositiveRadius))
	}

	for i, w := range s.Walls {
		if !finite(w.Start[0], w.Start[1], w.End[0], w.End[1]) {
			errs = append(errs, fmt.Errorf("wall %d (#%d): %w", w.ID, i, ErrNonFinite))
			continue
		}
		if w.Start == w.End {
			errs = append(errs, fmt.Errorf("wall %d (#%d) at %v: %w", w.ID, i, w.Start, ErrDegenerateWall))
		}
	}

	if s.Profile != nil {
		if err := s.Profile.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// CollisionProfile returns the scene's profile or the default
func (s Scene) CollisionProfile() physics.CollisionProfile {
	if s.Profile != nil {
		return *s.Profile
	}
	return physics.DefaultProfile
}

// Populate validates the scene and creates wall entities in order, then the body
// Returns the body entity; nothing is created on validation failure
func (s Scene) Populate(w *engine.World) (core.Entity, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	cs := w.Components
	for _, wall := range s.Walls {
		engine.With(w.NewEntity(), cs.Wall, component.WallComponent{
			Start:  wall.Start.Vec(),
			End:    wall.End.Vec(),
			WallID: wall.ID,
		}).Build()
	}

	body := engine.With(
		engine.With(
			engine.With(w.NewEntity(), cs.Position, component.PositionComponent{Position: s.Body.Position.Vec()}),
			cs.Velocity, component.VelocityComponent{Velocity: s.Body.Velocity.Vec()},
		),
		cs.Radius, component.RadiusComponent{Radius: s.Body.Radius},
	).Build()

	return body, nil
}

// Box returns four walls around the rectangle [min, max], ids starting at firstID
// Corner order (min.x,min.y) -> (min.x,max.y) -> (max.x,max.y) -> (max.x,min.y) gives
// normals pointing away from the interior
func Box(firstID int, min, max Point) []WallSpec {
	corners := []Point{
		{min[0], min[1]},
		{min[0], max[1]},
		{max[0], max[1]},
		{max[0], min[1]},
	}
	walls := make([]WallSpec, len(corners))
	for i := range corners {
		walls[i] = WallSpec{
			ID:    firstID + i,
			Start: corners[i],
			End:   corners[(i+1)%len(corners)],
		}
	}
	return walls
}

// Default is a 10x10 box with the ball in the center moving diagonally
func Default() Scene {
	return Scene{
		Name:  "box",
		Body:  BodySpec{Position: Point{5, 5}, Velocity: Point{0.1, 0.1}, Radius: 0.5},
		Walls: Box(1, Point{0, 0}, Point{10, 10}),
	}
}

// Window is the 200x200 box at offset 100 with a larger, faster ball
func Window() Scene {
	return Scene{
		Name:  "window",
		Body:  BodySpec{Position: Point{150, 150}, Velocity: Point{6, 1}, Radius: 15},
		Walls: Box(1, Point{100, 100}, Point{300, 300}),
	}
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
