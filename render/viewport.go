package render

import (
	"math"

	"github.com/lixenwraith/ricochet/vmath"
)

// cellAspect is terminal cell height over width
const cellAspect = 2.0

// Viewport maps world coordinates onto a cell rectangle, preserving aspect
// World y grows upward, screen rows grow downward
type Viewport struct {
	min, max vmath.Vec2
	originX  int
	originY  int
	width    int
	height   int
	scale    float64 // Cells per world unit, horizontal
	offsetX  float64
	offsetY  float64
}

// NewViewport fits the world rectangle [min, max] into width x height cells at (originX, originY)
func NewViewport(min, max vmath.Vec2, originX, originY, width, height int) Viewport {
	v := Viewport{min: min, max: max, originX: originX, originY: originY, width: width, height: height}

	spanX := max.X - min.X
	spanY := max.Y - min.Y
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}
	if width <= 1 || height <= 1 {
		return v
	}

	sx := float64(width-1) / spanX
	sy := float64(height-1) * cellAspect / spanY
	v.scale = math.Min(sx, sy)

	v.offsetX = (float64(width-1) - spanX*v.scale) / 2
	v.offsetY = (float64(height-1) - spanY*v.scale/cellAspect) / 2
	return v
}

// ToCell converts a world point to a cell coordinate
func (v Viewport) ToCell(p vmath.Vec2) (int, int) {
	fx := (p.X-v.min.X)*v.scale + v.offsetX
	fy := (v.max.Y-p.Y)*v.scale/cellAspect + v.offsetY
	return v.originX + int(math.Round(fx)), v.originY + int(math.Round(fy))
}

// Contains reports whether a cell lies inside the viewport rectangle
func (v Viewport) Contains(x, y int) bool {
	return x >= v.originX && x < v.originX+v.width && y >= v.originY && y < v.originY+v.height
}

// Scale returns cells per world unit along x
func (v Viewport) Scale() float64 {
	return v.scale
}
