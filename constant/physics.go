package constant

// Collision resolution
const (
	// CollisionSweepOffsetFactor scales the radius when backing a sweep hit off the wall
	// Slightly above 1 so the body ends clear of the wall instead of tangent
	CollisionSweepOffsetFactor = 1.1

	// CollisionNudgeDivisor divides the radius to get the post-bounce push along the new velocity
	CollisionNudgeDivisor = 10.0

	// CollisionParallelEpsilon is the determinant magnitude below which path and wall are parallel
	CollisionParallelEpsilon = 1e-9
)
