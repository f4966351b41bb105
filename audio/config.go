package audio

import (
	"os"
	"strconv"
	"time"
)

// Config controls the bounce click
type Config struct {
	Enabled  bool
	Volume   float64       // 0.0 - 1.0
	Duration time.Duration // Click length
	Cooldown time.Duration // Minimum gap between clicks
}

// DefaultConfig returns the standard click settings
func DefaultConfig() Config {
	return Config{
		Enabled:  true,
		Volume:   0.5,
		Duration: 50 * time.Millisecond,
		Cooldown: 80 * time.Millisecond,
	}
}

// LoadConfig reads overrides from environment variables
func LoadConfig() Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("RICOCHET_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv("RICOCHET_AUDIO_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = float64(val) / 100.0
			if cfg.Volume < 0 {
				cfg.Volume = 0
			}
			if cfg.Volume > 1 {
				cfg.Volume = 1
			}
		}
	}

	if cooldown := os.Getenv("RICOCHET_AUDIO_COOLDOWN"); cooldown != "" {
		if val, err := time.ParseDuration(cooldown); err == nil && val >= 0 {
			cfg.Cooldown = val
		}
	}

	return cfg
}
