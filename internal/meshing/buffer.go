package meshing

import (
	"fmt"

	"voxelview/internal/graphics"
)

// Buffer accumulates interleaved float32 vertex data for one section.
// Geometry is appended as whole quads of four vertices; indices are never
// produced here.
type Buffer struct {
	stride int
	data   []float32
}

// NewBuffer creates an empty buffer for the given vertex layout.
func NewBuffer(format graphics.VertexFormat) *Buffer {
	return &Buffer{
		stride: format.Stride(),
		data:   make([]float32, 0, 4096),
	}
}

// Reset empties the buffer, keeping its capacity.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}

// Append adds raw vertex floats. Callers are responsible for appending whole vertices.
func (b *Buffer) Append(values ...float32) {
	b.data = append(b.data, values...)
}

// Floats returns the accumulated data. The slice is only valid until the next Reset.
func (b *Buffer) Floats() []float32 {
	return b.data
}

// VertexCount returns the number of complete vertices in the buffer.
func (b *Buffer) VertexCount() int {
	if b.stride == 0 {
		return 0
	}
	return len(b.data) / b.stride
}

// QuadCount returns the number of complete quads in the buffer.
func (b *Buffer) QuadCount() int {
	return b.VertexCount() / 4
}

// Check reports data that is not a whole number of quads.
func (b *Buffer) Check() error {
	if b.stride == 0 || len(b.data)%b.stride != 0 {
		return fmt.Errorf("vertex data of %d floats is not a multiple of stride %d", len(b.data), b.stride)
	}
	if n := b.VertexCount(); n%4 != 0 {
		return fmt.Errorf("%d vertices do not form whole quads", n)
	}
	return nil
}
