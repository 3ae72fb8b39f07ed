// Package physics holds the small amount of spatial querying the viewer needs
// to pick blocks under the crosshair.
package physics

import (
	"math"

	"voxelview/internal/profiling"
	"voxelview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 8.0
)

// RaycastResult stores the result of a raycast operation
type RaycastResult struct {
	HitPosition      [3]int
	AdjacentPosition [3]int // last cell the ray crossed before the hit
	Distance         float32
	Hit              bool
}

// Raycast walks the unit cells crossed by the ray start+t*direction and
// returns the first solid block with minDist <= t <= maxDist. Block (x,y,z)
// occupies [x,x+1) on each axis. direction must be normalized.
func Raycast(start, direction mgl32.Vec3, minDist, maxDist float32, grid world.Reader) RaycastResult {
	defer profiling.Track("physics.Raycast")()

	var cell, step [3]int
	var tMax, tDelta [3]float64
	for i := 0; i < 3; i++ {
		p, d := float64(start[i]), float64(direction[i])
		cell[i] = int(math.Floor(p))
		switch {
		case d > 0:
			step[i] = 1
			tDelta[i] = 1 / d
			tMax[i] = (float64(cell[i]+1) - p) / d
		case d < 0:
			step[i] = -1
			tDelta[i] = -1 / d
			tMax[i] = (p - float64(cell[i])) / -d
		default:
			tDelta[i] = math.Inf(1)
			tMax[i] = math.Inf(1)
		}
	}

	prev := cell
	t := 0.0
	for t <= float64(maxDist) {
		if t >= float64(minDist) && grid.Get(cell[0], cell[1], cell[2]).IsSolid() {
			return RaycastResult{
				HitPosition:      cell,
				AdjacentPosition: prev,
				Distance:         float32(t),
				Hit:              true,
			}
		}
		axis := 0
		if tMax[1] < tMax[axis] {
			axis = 1
		}
		if tMax[2] < tMax[axis] {
			axis = 2
		}
		prev = cell
		cell[axis] += step[axis]
		t = tMax[axis]
		tMax[axis] += tDelta[axis]
	}
	return RaycastResult{}
}
