package graphics

import (
	"errors"
	"fmt"
)

// Attribute describes one float32 vertex attribute.
type Attribute struct {
	Name string
	Size int // components, 1..4
}

// VertexFormat describes an interleaved float32 vertex layout.
type VertexFormat struct {
	Attributes []Attribute
}

// Stride returns the number of float32 values per vertex.
func (f VertexFormat) Stride() int {
	n := 0
	for _, a := range f.Attributes {
		n += a.Size
	}
	return n
}

// Validate reports layout errors that would make vertex data unreadable.
func (f VertexFormat) Validate() error {
	if len(f.Attributes) == 0 {
		return errors.New("vertex format has no attributes")
	}
	for i, a := range f.Attributes {
		if a.Size < 1 || a.Size > 4 {
			return fmt.Errorf("vertex attribute %d (%q) has invalid size %d", i, a.Name, a.Size)
		}
	}
	return nil
}

// VertexBuffer is a GPU-resident vertex array. Close releases it.
type VertexBuffer interface {
	Upload(data []float32) error
	Close() error
}

// IndexBuffer is a GPU-resident index array. Close releases it.
type IndexBuffer interface {
	Upload(indices []uint32) error
	Close() error
}

// Backend is the set of GPU capabilities the renderers need. Any
// implementation is substitutable.
type Backend interface {
	NewVertexBuffer(format VertexFormat) (VertexBuffer, error)
	NewIndexBuffer() (IndexBuffer, error)
	// DrawIndexed draws count indices of ib as triangles, reading vertices from vb.
	DrawIndexed(vb VertexBuffer, ib IndexBuffer, count int) error
}
