package audio

import (
	"testing"
	"time"

	"github.com/lixenwraith/ricochet/physics"
	"github.com/lixenwraith/ricochet/system"
)

func TestBounceSink_Cooldown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cooldown = 100 * time.Millisecond
	bs := NewBounceSink(cfg)

	clock := time.Unix(0, 0)
	bs.now = func() time.Time { return clock }

	steps := []struct {
		advance time.Duration
		played  int64
		dropped int64
	}{
		{0, 1, 0},
		{50 * time.Millisecond, 1, 1},
		{40 * time.Millisecond, 1, 2},
		{20 * time.Millisecond, 2, 2},
		{100 * time.Millisecond, 3, 2},
	}

	for i, s := range steps {
		clock = clock.Add(s.advance)
		bs.OnCollision(system.CollisionEvent{Tier: physics.TierOverlap})
		if bs.Played() != s.played || bs.Dropped() != s.dropped {
			t.Errorf("Step %d: expected played=%d dropped=%d, got %d/%d",
				i, s.played, s.dropped, bs.Played(), bs.Dropped())
		}
	}
}

func TestBounceSink_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	bs := NewBounceSink(cfg)

	if err := bs.Initialize(); err != nil {
		t.Fatalf("Expected disabled initialize to succeed, got %v", err)
	}
	bs.OnCollision(system.CollisionEvent{})
	if bs.Played() != 0 || bs.Dropped() != 0 {
		t.Errorf("Expected no activity when disabled, got %d/%d", bs.Played(), bs.Dropped())
	}
	bs.Cleanup()
}

func TestToneFrequency(t *testing.T) {
	tests := []struct {
		tier physics.Tier
		want float64
	}{
		{physics.TierOverlap, 440},
		{physics.TierImpact, 660},
		{physics.TierSweep, 880},
		{physics.TierNone, 330},
	}
	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			if got := toneFrequency(tt.tier); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("RICOCHET_AUDIO_ENABLED", "false")
	t.Setenv("RICOCHET_AUDIO_VOLUME", "150")
	t.Setenv("RICOCHET_AUDIO_COOLDOWN", "250ms")

	cfg := LoadConfig()
	if cfg.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.Volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", cfg.Volume)
	}
	if cfg.Cooldown != 250*time.Millisecond {
		t.Errorf("Expected 250ms cooldown, got %v", cfg.Cooldown)
	}
}

func TestLoadConfig_IgnoresGarbage(t *testing.T) {
	t.Setenv("RICOCHET_AUDIO_ENABLED", "maybe")
	t.Setenv("RICOCHET_AUDIO_VOLUME", "loud")
	t.Setenv("RICOCHET_AUDIO_COOLDOWN", "-5s")

	cfg := LoadConfig()
	def := DefaultConfig()
	if cfg != def {
		t.Errorf("Expected defaults %+v, got %+v", def, cfg)
	}
}
