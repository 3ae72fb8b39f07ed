package meshing

import (
	"voxelview/internal/graphics"
	"voxelview/internal/world"
)

// VertexStride is number of float32 per vertex (pos.xyz + normal.xyz + color.rgb)
const VertexStride = 9

// CubeFormat is the vertex layout produced by CubeMesher.
var CubeFormat = graphics.VertexFormat{Attributes: []graphics.Attribute{
	{Name: "position", Size: 3},
	{Name: "normal", Size: 3},
	{Name: "color", Size: 3},
}}

type cubeFace struct {
	face    world.BlockFace
	corners [4][3]float32 // counter-clockwise seen from outside
}

var cubeFaces = [6]cubeFace{
	{world.FaceEast, [4][3]float32{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}},
	{world.FaceWest, [4][3]float32{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}},
	{world.FaceTop, [4][3]float32{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}}},
	{world.FaceBottom, [4][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}},
	{world.FaceNorth, [4][3]float32{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}},
	{world.FaceSouth, [4][3]float32{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}},
}

// CubeMesher emits one unit cube per non-air block, skipping faces hidden by
// a solid neighbour or by a neighbour of the same type. Neighbours are read
// from the grid, so faces on section borders are culled against the
// adjacent section.
type CubeMesher struct{}

// MeshBlock appends the visible faces of block b at (x, y, z) as quads.
func (CubeMesher) MeshBlock(b world.BlockType, x, y, z int, grid world.Reader, out *Buffer) error {
	if b == world.BlockTypeAir {
		return nil
	}
	r, g, bl := world.BlockColor(b)
	fx, fy, fz := float32(x), float32(y), float32(z)
	for _, f := range cubeFaces {
		nx, ny, nz := f.face.Normal()
		nb := grid.Get(x+nx, y+ny, z+nz)
		if nb.IsSolid() || nb == b {
			continue
		}
		for _, c := range f.corners {
			out.Append(
				fx+c[0], fy+c[1], fz+c[2],
				float32(nx), float32(ny), float32(nz),
				r, g, bl,
			)
		}
	}
	return nil
}
