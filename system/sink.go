package system

//go:generate go tool mockgen -destination=./mocks/sink_mock.go -package=mocks . CollisionSink

import (
	"github.com/charmbracelet/log"

	"github.com/lixenwraith/ricochet/core"
	"github.com/lixenwraith/ricochet/physics"
	"github.com/lixenwraith/ricochet/vmath"
)

// CollisionEvent describes one resolved body/wall hit
// Observability only; nothing downstream depends on it
type CollisionEvent struct {
	Tick     uint64
	Entity   core.Entity
	WallID   int
	Tier     physics.Tier
	Position vmath.Vec2 // After resolution
	Velocity vmath.Vec2 // After reflection
	Normal   vmath.Vec2
}

// CollisionSink receives collision diagnostics, called synchronously inside the tick
type CollisionSink interface {
	OnCollision(ev CollisionEvent)
}

// SinkFunc adapts a function to CollisionSink
type SinkFunc func(ev CollisionEvent)

func (f SinkFunc) OnCollision(ev CollisionEvent) { f(ev) }

// NopSink discards all events
type NopSink struct{}

func (NopSink) OnCollision(CollisionEvent) {}

// MultiSink fans out to every non-nil sink in order
type MultiSink []CollisionSink

func (m MultiSink) OnCollision(ev CollisionEvent) {
	for _, s := range m {
		if s != nil {
			s.OnCollision(ev)
		}
	}
}

// LogSink writes one structured line per hit
type LogSink struct {
	Logger *log.Logger
}

// NewLogSink creates a sink writing at debug level to logger
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{Logger: logger}
}

func (s *LogSink) OnCollision(ev CollisionEvent) {
	if s.Logger == nil {
		return
	}
	s.Logger.Debug("collision detected",
		"wall", ev.WallID,
		"tier", ev.Tier,
		"tick", ev.Tick,
		"entity", ev.Entity,
		"x", ev.Position.X,
		"y", ev.Position.Y,
		"vx", ev.Velocity.X,
		"vy", ev.Velocity.Y,
	)
}
