// Package audio plays a short click for each resolved collision
package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ricochet/physics"
	"github.com/lixenwraith/ricochet/system"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// BounceSink is a CollisionSink that sounds a sine click per hit
// Without an initialized speaker it only counts events
type BounceSink struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	config      Config

	lastPlay time.Time
	now      func() time.Time

	statPlayed  atomic.Int64
	statDropped atomic.Int64
}

// NewBounceSink creates a sink; call Initialize to attach the speaker
func NewBounceSink(cfg Config) *BounceSink {
	return &BounceSink{
		mixer:  &beep.Mixer{},
		config: cfg,
		now:    time.Now,
	}
}

// Initialize opens the speaker; failure leaves the sink silent
func (bs *BounceSink) Initialize() error {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if bs.initialized || !bs.config.Enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(bs.mixer)
	bs.initialized = true
	return nil
}

// Cleanup stops playback and closes the speaker
func (bs *BounceSink) Cleanup() {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if !bs.initialized {
		return
	}

	speaker.Lock()
	bs.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	bs.initialized = false
}

// OnCollision plays a click pitched by detection tier, rate limited by Cooldown
func (bs *BounceSink) OnCollision(ev system.CollisionEvent) {
	if !bs.config.Enabled {
		return
	}

	bs.mu.Lock()
	defer bs.mu.Unlock()

	now := bs.now()
	if !bs.lastPlay.IsZero() && now.Sub(bs.lastPlay) < bs.config.Cooldown {
		bs.statDropped.Add(1)
		return
	}
	bs.lastPlay = now
	bs.statPlayed.Add(1)

	if !bs.initialized {
		return
	}

	sine, err := generators.SineTone(sampleRate, toneFrequency(ev.Tier))
	if err != nil {
		return
	}
	click := &effects.Gain{
		Streamer: beep.Take(sampleRate.N(bs.config.Duration), sine),
		Gain:     bs.config.Volume - 1,
	}

	speaker.Lock()
	bs.mixer.Add(click)
	speaker.Unlock()
}

// Played returns clicks accepted past the cooldown
func (bs *BounceSink) Played() int64 {
	return bs.statPlayed.Load()
}

// Dropped returns clicks suppressed by the cooldown
func (bs *BounceSink) Dropped() int64 {
	return bs.statDropped.Load()
}

// toneFrequency maps detection tier to pitch in Hz
func toneFrequency(tier physics.Tier) float64 {
	switch tier {
	case physics.TierOverlap:
		return 440
	case physics.TierImpact:
		return 660
	case physics.TierSweep:
		return 880
	default:
		return 330
	}
}

var _ system.CollisionSink = (*BounceSink)(nil)
