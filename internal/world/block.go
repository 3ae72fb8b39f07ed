package world

import (
	"image/color"

	"golang.org/x/image/colornames"
)

type BlockType uint16

const (
	BlockTypeAir BlockType = iota
	BlockTypeGrass
	BlockTypeDirt
	BlockTypeStone
	BlockTypeBedrock
	BlockTypeSand
	BlockTypeWater
)

// IsSolid reports whether the block occludes its neighbours' faces.
func (b BlockType) IsSolid() bool {
	return b != BlockTypeAir && b != BlockTypeWater
}

func (b BlockType) String() string {
	switch b {
	case BlockTypeAir:
		return "air"
	case BlockTypeGrass:
		return "grass"
	case BlockTypeDirt:
		return "dirt"
	case BlockTypeStone:
		return "stone"
	case BlockTypeBedrock:
		return "bedrock"
	case BlockTypeSand:
		return "sand"
	case BlockTypeWater:
		return "water"
	default:
		return "unknown"
	}
}

// BlockFace identifies a face of a block
type BlockFace int

const (
	FaceNorth BlockFace = iota // +Z
	FaceSouth                  // -Z
	FaceEast                   // +X
	FaceWest                   // -X
	FaceTop                    // +Y
	FaceBottom                 // -Y
)

// Normal returns the unit offset pointing out of the face.
func (f BlockFace) Normal() (int, int, int) {
	switch f {
	case FaceNorth:
		return 0, 0, 1
	case FaceSouth:
		return 0, 0, -1
	case FaceEast:
		return 1, 0, 0
	case FaceWest:
		return -1, 0, 0
	case FaceTop:
		return 0, 1, 0
	default:
		return 0, -1, 0
	}
}

var blockColors = map[BlockType]color.RGBA{
	BlockTypeGrass:   colornames.Forestgreen,
	BlockTypeDirt:    colornames.Sienna,
	BlockTypeStone:   colornames.Slategray,
	BlockTypeBedrock: colornames.Dimgray,
	BlockTypeSand:    colornames.Khaki,
	BlockTypeWater:   colornames.Steelblue,
}

// BlockColor returns the base color of a block as normalized RGB.
func BlockColor(b BlockType) (r, g, bl float32) {
	c, ok := blockColors[b]
	if !ok {
		c = colornames.Magenta
	}
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}
