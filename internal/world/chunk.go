package world

const (
	// Storage chunk edge length. Independent of the renderer's section size.
	ChunkSize   = 16
	ChunkVolume = ChunkSize * ChunkSize * ChunkSize
)

// ChunkCoord addresses a cube of blocks by floor-dividing block coordinates
// by an edge length. It is a plain value and safe to use as a map key.
type ChunkCoord struct {
	X, Y, Z int
}

// ChunkCoordOf returns the coordinate of the chunk of edge length size holding block (x, y, z).
func ChunkCoordOf(x, y, z, size int) ChunkCoord {
	return ChunkCoord{X: FloorDiv(x, size), Y: FloorDiv(y, size), Z: FloorDiv(z, size)}
}

// Add returns c offset by (dx, dy, dz) chunks.
func (c ChunkCoord) Add(dx, dy, dz int) ChunkCoord {
	return ChunkCoord{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}
}

// FloorDiv divides rounding towards negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns the non-negative remainder matching FloorDiv.
func FloorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// Chunk holds a ChunkSize^3 cube of blocks. Storage is allocated on the
// first non-air write.
type Chunk struct {
	Coord  ChunkCoord
	blocks []BlockType
	filled int
}

// NewChunk creates an empty chunk at the specified chunk coordinates
func NewChunk(coord ChunkCoord) *Chunk {
	return &Chunk{Coord: coord}
}

// indexInChunk converts local coordinates (x, y, z) → flat index
func indexInChunk(x, y, z int) int {
	return (y*ChunkSize+z)*ChunkSize + x
}

// GetBlock returns the block type at the specified local coordinates
func (c *Chunk) GetBlock(x, y, z int) BlockType {
	if x < 0 || x >= ChunkSize || y < 0 || y >= ChunkSize || z < 0 || z >= ChunkSize {
		return BlockTypeAir
	}
	if c.blocks == nil {
		return BlockTypeAir
	}
	return c.blocks[indexInChunk(x, y, z)]
}

// SetBlock sets the block type at the specified local coordinates and
// returns the previous value.
func (c *Chunk) SetBlock(x, y, z int, b BlockType) BlockType {
	if x < 0 || x >= ChunkSize || y < 0 || y >= ChunkSize || z < 0 || z >= ChunkSize {
		return BlockTypeAir
	}
	if c.blocks == nil {
		if b == BlockTypeAir {
			return BlockTypeAir
		}
		c.blocks = make([]BlockType, ChunkVolume)
	}

	idx := indexInChunk(x, y, z)
	old := c.blocks[idx]
	if old == b {
		return old
	}
	c.blocks[idx] = b
	switch {
	case old == BlockTypeAir:
		c.filled++
	case b == BlockTypeAir:
		c.filled--
	}
	// release storage once the chunk is all air again
	if c.filled == 0 {
		c.blocks = nil
	}
	return old
}

// IsEmpty reports whether every block in the chunk is air.
func (c *Chunk) IsEmpty() bool {
	return c.filled == 0
}
