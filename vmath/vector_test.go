package vmath

import (
	"math"
	"testing"
)

const testEps = 1e-12

func TestV2Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"axis_x", V2(10, 0), V2(1, 0)},
		{"axis_y_negative", V2(0, -4), V2(0, -1)},
		{"diagonal", V2(3, 4), V2(0.6, 0.8)},
		{"zero", V2(0, 0), V2(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := V2Normalize(tt.in)
			if !V2ApproxEqual(got, tt.want, testEps) {
				t.Errorf("V2Normalize(%v) = %v, expected %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestV2Perpendicular(t *testing.T) {
	p := V2Perpendicular(V2(10, 0))
	if p.X != 0 || p.Y != 10 {
		t.Errorf("Expected (0,10), got %v", p)
	}
	if V2Dot(p, V2(10, 0)) != 0 {
		t.Error("Perpendicular must be orthogonal to input")
	}

	// Reversed direction flips the perpendicular
	q := V2Perpendicular(V2(-10, 0))
	if q.Y != -10 {
		t.Errorf("Expected y=-10 for reversed direction, got %v", q)
	}
}

func TestV2Reflect(t *testing.T) {
	n := V2(0, 1)
	v := V2(0.3, -2)

	r := V2Reflect(v, n)
	if !V2ApproxEqual(r, V2(0.3, 2), testEps) {
		t.Errorf("Expected (0.3,2), got %v", r)
	}

	// Reflecting twice returns the original vector
	rr := V2Reflect(r, n)
	if !V2ApproxEqual(rr, v, testEps) {
		t.Errorf("Double reflection: expected %v, got %v", v, rr)
	}

	// Normal sense does not affect the result
	if !V2ApproxEqual(V2Reflect(v, V2(0, -1)), r, testEps) {
		t.Error("Reflection must not depend on normal sign")
	}

	// Magnitude preserved off an oblique normal
	diag := V2Normalize(V2(1, 1))
	ro := V2Reflect(V2(2, -1), diag)
	if math.Abs(V2Mag(ro)-V2Mag(V2(2, -1))) > testEps {
		t.Errorf("Reflection changed magnitude: %v", ro)
	}
}

func TestV2Cross(t *testing.T) {
	if c := V2Cross(V2(1, 0), V2(0, 1)); c != 1 {
		t.Errorf("Expected 1, got %v", c)
	}
	if c := V2Cross(V2(2, 2), V2(4, 4)); c != 0 {
		t.Errorf("Parallel vectors: expected 0, got %v", c)
	}
}

func TestV2IsFinite(t *testing.T) {
	if !V2IsFinite(V2(1, -1)) {
		t.Error("Expected finite")
	}
	if V2IsFinite(V2(math.NaN(), 0)) {
		t.Error("NaN must not be finite")
	}
	if V2IsFinite(V2(0, math.Inf(-1))) {
		t.Error("Inf must not be finite")
	}
}
