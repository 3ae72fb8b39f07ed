package render

import (
	"errors"
	"fmt"
	"log"

	"voxelview/internal/graphics"
)

// IndexPattern is a run of indices referencing Vertices vertices, repeated
// once per primitive.
type IndexPattern struct {
	Indices  []uint32
	Vertices int
}

// QuadPattern draws a 4-vertex quad as two triangles.
var QuadPattern = IndexPattern{Indices: []uint32{0, 1, 2, 0, 2, 3}, Vertices: 4}

// Validate rejects patterns that would index outside their own repetition.
func (p IndexPattern) Validate() error {
	if len(p.Indices) == 0 {
		return errors.New("index pattern is empty")
	}
	if p.Vertices <= 0 {
		return fmt.Errorf("index pattern references %d vertices", p.Vertices)
	}
	for _, idx := range p.Indices {
		if int(idx) >= p.Vertices {
			return fmt.Errorf("index %d out of range for %d vertices per repetition", idx, p.Vertices)
		}
	}
	return nil
}

// IndexPatternBuffer is a single index buffer holding a repeating pattern,
// shared by every section's draw call. Its capacity only grows.
type IndexPatternBuffer struct {
	pattern  IndexPattern
	buf      graphics.IndexBuffer
	capacity int
}

// NewIndexPatternBuffer allocates an empty shared buffer for pattern.
func NewIndexPatternBuffer(backend graphics.Backend, pattern IndexPattern) (*IndexPatternBuffer, error) {
	if err := pattern.Validate(); err != nil {
		return nil, err
	}
	buf, err := backend.NewIndexBuffer()
	if err != nil {
		return nil, fmt.Errorf("allocate index buffer: %w", err)
	}
	return &IndexPatternBuffer{pattern: pattern, buf: buf}, nil
}

// EnsureCapacity grows the buffer to hold at least k repetitions.
// Repetition i is offset by i*Vertices.
func (b *IndexPatternBuffer) EnsureCapacity(k int) error {
	if k <= b.capacity {
		return nil
	}
	p := b.pattern
	n := k * len(p.Indices)
	data := make([]uint32, n)
	for i := 0; i < k; i++ {
		base := uint32(i * p.Vertices)
		off := i * len(p.Indices)
		for j, idx := range p.Indices {
			data[off+j] = base + idx
		}
	}
	if err := b.buf.Upload(data); err != nil {
		return fmt.Errorf("upload %d index repetitions: %w", k, err)
	}
	b.capacity = k
	log.Printf("index pattern buffer grew to %d repetitions (%d indices)", k, n)
	return nil
}

// Capacity returns the number of pattern repetitions currently stored.
func (b *IndexPatternBuffer) Capacity() int {
	return b.capacity
}

// Pattern returns the repeated pattern.
func (b *IndexPatternBuffer) Pattern() IndexPattern {
	return b.pattern
}

// Buffer returns the backend index buffer.
func (b *IndexPatternBuffer) Buffer() graphics.IndexBuffer {
	return b.buf
}

// Close releases the backend buffer.
func (b *IndexPatternBuffer) Close() error {
	b.capacity = 0
	return b.buf.Close()
}
