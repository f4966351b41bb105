package vmath

import "math"

// SegmentIntersect tests segment p->p+r against segment q->q+s
// Returns parameters t (along r) and u (along s), both in [0,1] on intersection
// Parallel and near-parallel pairs (|cross(r, s)| < eps) report no intersection,
// collinear overlap included
func SegmentIntersect(p, r, q, s Vec2, eps float64) (t, u float64, ok bool) {
	det := V2Cross(r, s)
	if math.Abs(det) < eps {
		return 0, 0, false
	}

	qp := V2Sub(q, p)
	t = V2Cross(qp, s) / det
	u = V2Cross(qp, r) / det

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return 0, 0, false
	}
	return t, u, true
}

// PointLineDistance returns the signed distance of point from the infinite line
// through origin with unit normal n
func PointLineDistance(point, origin, n Vec2) float64 {
	return V2Dot(V2Sub(point, origin), n)
}
