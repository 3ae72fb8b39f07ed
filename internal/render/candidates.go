package render

import (
	"math"

	"voxelview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// ChunksInRadius appends to dst every section coordinate within radius
// sections of the section holding pos (a sphere in section space) and
// returns the resulting slice.
func ChunksInRadius(pos mgl32.Vec3, sectionSize, radius int, dst []world.ChunkCoord) []world.ChunkCoord {
	center := world.ChunkCoordOf(
		int(math.Floor(float64(pos.X()))),
		int(math.Floor(float64(pos.Y()))),
		int(math.Floor(float64(pos.Z()))),
		sectionSize,
	)
	r2 := radius * radius
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			for dz := -radius; dz <= radius; dz++ {
				if dx*dx+dy*dy+dz*dz > r2 {
					continue
				}
				dst = append(dst, center.Add(dx, dy, dz))
			}
		}
	}
	return dst
}

// ClampY drops coordinates whose section lies entirely outside the block
// rows [minY, maxY], keeping the relative order of the rest.
func ClampY(coords []world.ChunkCoord, sectionSize, minY, maxY int) []world.ChunkCoord {
	lo := world.FloorDiv(minY, sectionSize)
	hi := world.FloorDiv(maxY, sectionSize)
	out := coords[:0]
	for _, c := range coords {
		if c.Y >= lo && c.Y <= hi {
			out = append(out, c)
		}
	}
	return out
}
