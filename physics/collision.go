package physics

import (
	"math"

	"github.com/lixenwraith/ricochet/vmath"
)

// Tier identifies which detection test produced a hit
type Tier uint8

const (
	TierNone Tier = iota
	// TierOverlap: body already within radius of the wall's infinite line
	TierOverlap
	// TierImpact: time of impact along the normal falls inside this tick
	TierImpact
	// TierSweep: travelled path crosses the finite wall segment
	TierSweep
)

func (t Tier) String() string {
	switch t {
	case TierOverlap:
		return "overlap"
	case TierImpact:
		return "impact"
	case TierSweep:
		return "sweep"
	default:
		return "none"
	}
}

// Outcome is the transient result of one body/wall test
type Outcome struct {
	Hit    bool
	Tier   Tier
	Point  vmath.Vec2 // Corrected body center
	Normal vmath.Vec2 // Wall unit normal, sense not canonicalized
	T      float64    // Fraction of this tick's displacement at contact (0 for overlap)
}

// Detect runs the three-tier swept test of an already advanced body against one wall
// The pre-advance position is Position - Velocity and the displacement is Velocity
// Tiers are tried in order, each covering the previous one's blind spot:
//   - overlap: |dot(P0 - Start, N)| - r <= 0, measured against the infinite line, not clamped to the segment
//   - impact: moving along -N with t = penetration / -dot(D, N) in [0, 1]
//   - sweep: path segment P0 -> P1 crosses the wall segment; hit backed off by r * SweepOffsetFactor
func Detect(b Body, w Wall, profile CollisionProfile) Outcome {
	n := w.Normal()
	prev := PreviousPosition(&b)
	disp := b.Velocity

	penetration := math.Abs(vmath.PointLineDistance(prev, w.Start, n)) - b.Radius
	if penetration <= 0 {
		return Outcome{Hit: true, Tier: TierOverlap, Point: prev, Normal: n}
	}

	movement := vmath.V2Dot(disp, n)
	if movement < 0 {
		t := penetration / -movement
		if t >= 0 && t <= 1 {
			return Outcome{
				Hit:    true,
				Tier:   TierImpact,
				Point:  vmath.V2Add(prev, vmath.V2Scale(disp, t)),
				Normal: n,
				T:      t,
			}
		}
	}

	if t, _, ok := vmath.SegmentIntersect(prev, disp, w.Start, w.Direction(), profile.ParallelEpsilon); ok {
		contact := vmath.V2Add(prev, vmath.V2Scale(disp, t))
		backoff := vmath.V2Scale(vmath.V2Normalize(b.Velocity), b.Radius*profile.SweepOffsetFactor)
		return Outcome{
			Hit:    true,
			Tier:   TierSweep,
			Point:  vmath.V2Sub(contact, backoff),
			Normal: n,
			T:      t,
		}
	}

	return Outcome{Normal: n}
}

// Resolve applies a hit: move to the corrected point, reflect velocity
// V' = V - 2(V.N)N, then push along V' by r / NudgeDivisor
// No-op for a miss
func Resolve(b *Body, o Outcome, profile CollisionProfile) {
	if !o.Hit {
		return
	}
	b.Position = o.Point
	b.Velocity = vmath.V2Reflect(b.Velocity, o.Normal)

	nudge := vmath.V2Scale(vmath.V2Normalize(b.Velocity), b.Radius/profile.NudgeDivisor)
	b.Position = vmath.V2Add(b.Position, nudge)
}

// Collide detects and resolves one wall in place, returning the outcome
func Collide(b *Body, w Wall, profile CollisionProfile) Outcome {
	o := Detect(*b, w, profile)
	Resolve(b, o, profile)
	return o
}

// CollideAll tests walls sequentially in order; each wall sees the state corrected by earlier hits
// onHit is called after each resolved hit with the wall index and outcome; may be nil
// Returns the number of hits
func CollideAll(b *Body, walls []Wall, profile CollisionProfile, onHit func(i int, o Outcome)) int {
	hits := 0
	for i, w := range walls {
		o := Collide(b, w, profile)
		if !o.Hit {
			continue
		}
		hits++
		if onHit != nil {
			onHit(i, o)
		}
	}
	return hits
}

// Step is one full tick for a single body: movement stage then collision stage
func Step(b *Body, walls []Wall, profile CollisionProfile, onHit func(i int, o Outcome)) int {
	Advance(b)
	return CollideAll(b, walls, profile, onHit)
}
