package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/ricochet/vmath"
)

const eps = 1e-9

// Horizontal wall at y=10; normal (0,1)
var topWall = Wall{ID: 2, Start: vmath.V2(0, 10), End: vmath.V2(10, 10)}

// Same wall, endpoints reversed; normal (0,-1)
var topWallReversed = Wall{ID: 2, Start: vmath.V2(10, 10), End: vmath.V2(0, 10)}

// advanced returns a body whose pre-advance position is prev
func advanced(prev, vel vmath.Vec2, radius float64) Body {
	return Body{Position: vmath.V2Add(prev, vel), Velocity: vel, Radius: radius}
}

func TestWall_Normal(t *testing.T) {
	n := topWall.Normal()
	if !vmath.V2ApproxEqual(n, vmath.V2(0, 1), eps) {
		t.Errorf("Expected (0,1), got %v", n)
	}

	// Endpoint order decides the sense
	nr := topWallReversed.Normal()
	if !vmath.V2ApproxEqual(nr, vmath.V2(0, -1), eps) {
		t.Errorf("Expected (0,-1) for reversed wall, got %v", nr)
	}

	if !(Wall{Start: vmath.V2(1, 1), End: vmath.V2(1, 1)}).IsDegenerate() {
		t.Error("Expected coincident endpoints to be degenerate")
	}
}

func TestDetect_OverlapFiresRegardlessOfVelocity(t *testing.T) {
	prev := vmath.V2(5, 9.7) // 0.3 from the line, radius 0.5
	velocities := []vmath.Vec2{
		vmath.V2(0, 0),
		vmath.V2(0, 1),
		vmath.V2(0, -1),
		vmath.V2(3, 0),
		vmath.V2(-2, 5),
	}

	for _, wall := range []Wall{topWall, topWallReversed} {
		for _, v := range velocities {
			b := advanced(prev, v, 0.5)
			o := Detect(b, wall, DefaultProfile)
			if !o.Hit || o.Tier != TierOverlap {
				t.Errorf("v=%v normal=%v: expected overlap hit, got %+v", v, wall.Normal(), o)
				continue
			}
			if !vmath.V2ApproxEqual(o.Point, prev, eps) {
				t.Errorf("v=%v: expected hit at pre-advance position %v, got %v", v, prev, o.Point)
			}
		}
	}
}

func TestDetect_OverlapUsesInfiniteLine(t *testing.T) {
	// Far beyond the segment's x extent, still within radius of its line
	b := advanced(vmath.V2(50, 9.8), vmath.V2(0, 0), 0.5)
	o := Detect(b, topWall, DefaultProfile)
	if !o.Hit || o.Tier != TierOverlap {
		t.Errorf("Expected overlap against the infinite line, got %+v", o)
	}
}

func TestDetect_OverlapTouching(t *testing.T) {
	// Exactly tangent: penetration 0 counts as a hit
	b := advanced(vmath.V2(5, 9.5), vmath.V2(0, 0), 0.5)
	o := Detect(b, topWall, DefaultProfile)
	if o.Tier != TierOverlap {
		t.Errorf("Expected tangent body to overlap, got %+v", o)
	}
}

func TestDetect_ImpactTier(t *testing.T) {
	// Reversed wall: normal (0,-1), upward motion projects negative
	b := advanced(vmath.V2(5, 9), vmath.V2(0, 1), 0.5)
	o := Detect(b, topWallReversed, DefaultProfile)

	if !o.Hit || o.Tier != TierImpact {
		t.Fatalf("Expected impact hit, got %+v", o)
	}
	if math.Abs(o.T-0.5) > eps {
		t.Errorf("Expected t=0.5, got %v", o.T)
	}
	if !vmath.V2ApproxEqual(o.Point, vmath.V2(5, 9.5), eps) {
		t.Errorf("Expected contact at (5,9.5), got %v", o.Point)
	}
}

func TestDetect_ImpactOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		prev vmath.Vec2
		vel  vmath.Vec2
	}{
		// t = 4.5 / 1
		{"too_far", vmath.V2(5, 5), vmath.V2(0, 1)},
		// movement projection positive
		{"moving_away", vmath.V2(5, 9), vmath.V2(0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Detect(advanced(tt.prev, tt.vel, 0.5), topWallReversed, DefaultProfile)
			if o.Hit {
				t.Errorf("Expected no hit, got %+v", o)
			}
		})
	}
}

func TestDetect_TierPrecedence(t *testing.T) {
	t.Run("overlap_before_impact", func(t *testing.T) {
		// Overlapping and approaching within the tick; overlap wins
		o := Detect(advanced(vmath.V2(5, 9.6), vmath.V2(0, 1), 0.5), topWallReversed, DefaultProfile)
		if o.Tier != TierOverlap {
			t.Errorf("Expected overlap, got %v", o.Tier)
		}
	})

	t.Run("impact_before_sweep", func(t *testing.T) {
		// Path crosses the segment and t is in range; impact wins
		o := Detect(advanced(vmath.V2(5, 9), vmath.V2(0, 2), 0.5), topWallReversed, DefaultProfile)
		if o.Tier != TierImpact {
			t.Errorf("Expected impact, got %v", o.Tier)
		}
		if math.Abs(o.T-0.25) > eps {
			t.Errorf("Expected t=0.25, got %v", o.T)
		}
	})
}

func TestDetect_SweepTier(t *testing.T) {
	// Fast body (|v| = 2 > 2r = 0.6) crossing the wall in one tick
	// Normal (0,1) points along the motion, so impact cannot fire; overlap misses (0.7 clearance)
	b := advanced(vmath.V2(5, 9), vmath.V2(0, 2), 0.3)

	o := Detect(b, topWall, DefaultProfile)
	if !o.Hit || o.Tier != TierSweep {
		t.Fatalf("Expected sweep hit, got %+v", o)
	}
	if math.Abs(o.T-0.5) > eps {
		t.Errorf("Expected crossing at t=0.5, got %v", o.T)
	}

	wantY := 10 - 0.3*1.1
	if !vmath.V2ApproxEqual(o.Point, vmath.V2(5, wantY), eps) {
		t.Errorf("Expected point (5,%v), got %v", wantY, o.Point)
	}

	Resolve(&b, o, DefaultProfile)

	clearance := 10 - b.Position.Y
	if clearance <= 0 {
		t.Fatalf("Body ended on or past the wall, y=%v", b.Position.Y)
	}
	if clearance < b.Radius || clearance > 1.5*b.Radius {
		t.Errorf("Expected clearance about one radius, got %v", clearance)
	}
	if !vmath.V2ApproxEqual(b.Velocity, vmath.V2(0, -2), eps) {
		t.Errorf("Expected velocity (0,-2), got %v", b.Velocity)
	}
}

func TestDetect_SweepMissesBeyondEndpoint(t *testing.T) {
	b := advanced(vmath.V2(12, 9), vmath.V2(0, 2), 0.3)
	if o := Detect(b, topWall, DefaultProfile); o.Hit {
		t.Errorf("Expected path beyond the segment end to miss, got %+v", o)
	}
}

func TestDetect_SweepCustomOffset(t *testing.T) {
	profile := DefaultProfile
	profile.SweepOffsetFactor = 2

	o := Detect(advanced(vmath.V2(5, 9), vmath.V2(0, 2), 0.3), topWall, profile)
	if !vmath.V2ApproxEqual(o.Point, vmath.V2(5, 9.4), eps) {
		t.Errorf("Expected point (5,9.4), got %v", o.Point)
	}
}

func TestStep_ParallelMotionNeverCollides(t *testing.T) {
	b := Body{Position: vmath.V2(0, 8), Velocity: vmath.V2(0.1, 0), Radius: 0.5}
	walls := []Wall{topWall, topWallReversed}

	for tick := 1; tick <= 500; tick++ {
		if hits := Step(&b, walls, DefaultProfile, nil); hits != 0 {
			t.Fatalf("Tick %d: unexpected collision at %v", tick, b.Position)
		}
	}
	if b.Velocity != vmath.V2(0.1, 0) {
		t.Errorf("Velocity changed without collision: %v", b.Velocity)
	}
}

func TestResolve_HeadOnReflection(t *testing.T) {
	velocities := []vmath.Vec2{
		vmath.V2(0, 0.3),
		vmath.V2(0.2, 0.3),
		vmath.V2(-0.1, 0.05),
		vmath.V2(0, 1),
	}

	for _, v := range velocities {
		b := advanced(vmath.V2(5, 9.6), v, 0.5)
		o := Collide(&b, topWall, DefaultProfile)
		if !o.Hit {
			t.Fatalf("v=%v: expected hit", v)
		}
		if math.Abs(b.Velocity.Y+v.Y) > eps {
			t.Errorf("v=%v: normal component must flip, got %v", v, b.Velocity)
		}
		if math.Abs(b.Velocity.X-v.X) > eps {
			t.Errorf("v=%v: tangential component must be kept, got %v", v, b.Velocity)
		}
	}
}

func TestResolve_ReflectTwiceRestoresVelocity(t *testing.T) {
	walls := []Wall{
		topWall,
		topWallReversed,
		{ID: 9, Start: vmath.V2(0, 0), End: vmath.V2(3, 7)},
	}
	v := vmath.V2(0.4, -1.3)

	for _, w := range walls {
		n := w.Normal()
		twice := vmath.V2Reflect(vmath.V2Reflect(v, n), n)
		if !vmath.V2ApproxEqual(twice, v, eps) {
			t.Errorf("Wall %v: expected %v, got %v", w, v, twice)
		}
	}
}

func TestResolve_Nudge(t *testing.T) {
	b := advanced(vmath.V2(5, 9.6), vmath.V2(0, 0.2), 0.5)
	Collide(&b, topWall, DefaultProfile)

	// Back to pre-advance position, then r/10 along the new velocity (0,-1)
	want := vmath.V2(5, 9.6-0.05)
	if !vmath.V2ApproxEqual(b.Position, want, eps) {
		t.Errorf("Expected %v, got %v", want, b.Position)
	}
}

func TestResolve_BodyAtRest(t *testing.T) {
	b := Body{Position: vmath.V2(5, 9.8), Velocity: vmath.V2(0, 0), Radius: 0.5}
	o := Collide(&b, topWall, DefaultProfile)

	if o.Tier != TierOverlap {
		t.Fatalf("Expected overlap, got %v", o.Tier)
	}
	if b.Velocity != (vmath.Vec2{}) {
		t.Errorf("Expected velocity to stay zero, got %v", b.Velocity)
	}
	if !vmath.V2IsFinite(b.Position) || b.Position != vmath.V2(5, 9.8) {
		t.Errorf("Expected position unchanged, got %v", b.Position)
	}
}

func TestResolve_MissIsNoop(t *testing.T) {
	b := Body{Position: vmath.V2(1, 1), Velocity: vmath.V2(1, 0), Radius: 0.5}
	before := b
	Resolve(&b, Outcome{}, DefaultProfile)
	if b != before {
		t.Errorf("Expected unchanged body, got %+v", b)
	}
}

func TestCollideAll_CornerDoubleBounce(t *testing.T) {
	// 10x10 box, endpoints as in the default scene
	walls := []Wall{
		{ID: 1, Start: vmath.V2(0, 0), End: vmath.V2(0, 10)},
		{ID: 2, Start: vmath.V2(0, 10), End: vmath.V2(10, 10)},
		{ID: 3, Start: vmath.V2(10, 10), End: vmath.V2(10, 0)},
		{ID: 4, Start: vmath.V2(10, 0), End: vmath.V2(0, 0)},
	}
	b := Body{Position: vmath.V2(9.7, 9.7), Velocity: vmath.V2(0.1, 0.1), Radius: 0.5}

	var hitIDs []int
	hits := CollideAll(&b, walls, DefaultProfile, func(i int, o Outcome) {
		hitIDs = append(hitIDs, walls[i].ID)
		if o.Tier != TierOverlap {
			t.Errorf("Wall %d: expected overlap, got %v", walls[i].ID, o.Tier)
		}
	})

	if hits != 2 || len(hitIDs) != 2 || hitIDs[0] != 2 || hitIDs[1] != 3 {
		t.Fatalf("Expected hits on walls [2 3], got %v", hitIDs)
	}
	if !vmath.V2ApproxEqual(b.Velocity, vmath.V2(-0.1, -0.1), eps) {
		t.Errorf("Expected both components flipped, got %v", b.Velocity)
	}
	if b.Position.X >= 10 || b.Position.Y >= 10 {
		t.Errorf("Body left the box: %v", b.Position)
	}
}

func TestCollisionProfile_Validate(t *testing.T) {
	if err := DefaultProfile.Validate(); err != nil {
		t.Fatalf("Default profile invalid: %v", err)
	}

	bad := []CollisionProfile{
		{SweepOffsetFactor: 1.1, NudgeDivisor: 0, ParallelEpsilon: 1e-9},
		{SweepOffsetFactor: -1, NudgeDivisor: 10, ParallelEpsilon: 1e-9},
		{SweepOffsetFactor: 1.1, NudgeDivisor: 10, ParallelEpsilon: math.NaN()},
		{SweepOffsetFactor: math.Inf(1), NudgeDivisor: 10, ParallelEpsilon: 1e-9},
	}
	for i, p := range bad {
		if err := p.Validate(); !errors.Is(err, ErrInvalidProfile) {
			t.Errorf("Case %d: expected ErrInvalidProfile, got %v", i, err)
		}
	}
}

func TestTier_String(t *testing.T) {
	names := map[Tier]string{TierNone: "none", TierOverlap: "overlap", TierImpact: "impact", TierSweep: "sweep"}
	for tier, want := range names {
		if tier.String() != want {
			t.Errorf("Expected %s, got %s", want, tier.String())
		}
	}
}
