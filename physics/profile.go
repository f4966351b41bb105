package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/ricochet/constant"
	"gopkg.in/yaml.v3"
)

// ErrInvalidProfile reports an unusable collision profile
var ErrInvalidProfile = errors.New("invalid collision profile")

// CollisionProfile holds the empirically tuned resolution constants
// Profiles are plain values; DefaultProfile matches the reference behavior
type CollisionProfile struct {
	SweepOffsetFactor float64 `yaml:"sweep_offset_factor"` // Radius multiple backed off a tier C hit
	NudgeDivisor      float64 `yaml:"nudge_divisor"`       // Post-bounce push is radius / NudgeDivisor
	ParallelEpsilon   float64 `yaml:"parallel_epsilon"`    // Tier C determinant threshold
}

// DefaultProfile is the standard resolution profile
var DefaultProfile = CollisionProfile{
	SweepOffsetFactor: constant.CollisionSweepOffsetFactor,
	NudgeDivisor:      constant.CollisionNudgeDivisor,
	ParallelEpsilon:   constant.CollisionParallelEpsilon,
}

// Validate rejects profiles that would produce NaN or divide by zero
func (p CollisionProfile) Validate() error {
	if !(p.SweepOffsetFactor >= 0) || math.IsInf(p.SweepOffsetFactor, 0) {
		return fmt.Errorf("%w: sweep offset factor %v", ErrInvalidProfile, p.SweepOffsetFactor)
	}
	if !(p.NudgeDivisor > 0) || math.IsInf(p.NudgeDivisor, 0) {
		return fmt.Errorf("%w: nudge divisor %v", ErrInvalidProfile, p.NudgeDivisor)
	}
	if !(p.ParallelEpsilon >= 0) || math.IsInf(p.ParallelEpsilon, 0) {
		return fmt.Errorf("%w: parallel epsilon %v", ErrInvalidProfile, p.ParallelEpsilon)
	}
	return nil
}

// UnmarshalYAML fills keys absent from the document with DefaultProfile values
func (p *CollisionProfile) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: expected mapping", ErrInvalidProfile, node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		switch key := node.Content[i].Value; key {
		case "sweep_offset_factor", "nudge_divisor", "parallel_epsilon":
		default:
			return fmt.Errorf("%w: line %d: unknown key %q", ErrInvalidProfile, node.Content[i].Line, key)
		}
	}

	type plain CollisionProfile
	v := plain(DefaultProfile)
	if err := node.Decode(&v); err != nil {
		return err
	}
	*p = CollisionProfile(v)
	return nil
}
