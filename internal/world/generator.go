package world

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// Generator handles terrain generation logic.
type Generator struct {
	noise       opensimplex.Noise
	scale       float64
	baseHeight  int
	amp         float64
	octaves     int
	persistence float64
	lacunarity  float64
	seaLevel    int
}

// NewGenerator creates a new generator with default settings.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		noise:       opensimplex.NewNormalized(seed),
		scale:       1.0 / 64.0,
		baseHeight:  8,
		amp:         24,
		octaves:     4,
		persistence: 0.5,
		lacunarity:  2.0,
		seaLevel:    10,
	}
}

// HeightAt computes world surface height (block Y) at world X,Z.
func (g *Generator) HeightAt(worldX, worldZ int) int {
	x := float64(worldX) * g.scale
	z := float64(worldZ) * g.scale

	var sum, norm float64
	amp, freq := 1.0, 1.0
	for range g.octaves {
		sum += g.noise.Eval2(x*freq, z*freq) * amp
		norm += amp
		amp *= g.persistence
		freq *= g.lacunarity
	}
	height := float64(g.baseHeight) + (sum/norm)*g.amp
	if height < 0 {
		height = 0
	}
	return int(math.Floor(height))
}

// Populate fills the block columns x0..x1, z0..z1 (inclusive) of s.
func (g *Generator) Populate(s *Store, x0, z0, x1, z1 int) {
	for x := x0; x <= x1; x++ {
		for z := z0; z <= z1; z++ {
			g.populateColumn(s, x, z)
		}
	}
}

func (g *Generator) populateColumn(s *Store, x, z int) {
	height := g.HeightAt(x, z)
	for y := 0; y <= height; y++ {
		switch {
		case y == 0:
			s.Set(x, y, z, BlockTypeBedrock)
		case y < height-3:
			s.Set(x, y, z, BlockTypeStone)
		case y < height:
			s.Set(x, y, z, BlockTypeDirt)
		case height <= g.seaLevel:
			s.Set(x, y, z, BlockTypeSand)
		default:
			s.Set(x, y, z, BlockTypeGrass)
		}
	}
	for y := height + 1; y <= g.seaLevel; y++ {
		s.Set(x, y, z, BlockTypeWater)
	}
}
