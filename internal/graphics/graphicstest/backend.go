// Package graphicstest provides an in-memory graphics.Backend that records
// every call, for tests that must run without a GPU context.
package graphicstest

import (
	"errors"
	"fmt"

	"voxelview/internal/graphics"
)

// ErrReleased is returned when a released buffer is used again.
var ErrReleased = errors.New("graphicstest: buffer already released")

// VertexBuffer records uploads into a CPU slice.
type VertexBuffer struct {
	ID      int
	Format  graphics.VertexFormat
	Data    []float32
	Uploads int
	Closes  int

	backend *Backend
}

func (v *VertexBuffer) Upload(data []float32) error {
	v.backend.calls++
	if v.Closes > 0 {
		return ErrReleased
	}
	if v.backend.UploadErr != nil {
		return v.backend.UploadErr
	}
	v.Data = append(v.Data[:0], data...)
	v.Uploads++
	return nil
}

func (v *VertexBuffer) Close() error {
	v.backend.calls++
	v.Closes++
	if v.Closes > 1 {
		return fmt.Errorf("vertex buffer %d: %w", v.ID, ErrReleased)
	}
	return nil
}

// VertexCount returns the number of whole vertices uploaded last.
func (v *VertexBuffer) VertexCount() int {
	stride := v.Format.Stride()
	if stride == 0 {
		return 0
	}
	return len(v.Data) / stride
}

// IndexBuffer records uploads into a CPU slice.
type IndexBuffer struct {
	ID      int
	Data    []uint32
	Uploads int
	Closes  int

	backend *Backend
}

func (i *IndexBuffer) Upload(indices []uint32) error {
	i.backend.calls++
	if i.Closes > 0 {
		return ErrReleased
	}
	if i.backend.IndexUploadErr != nil {
		return i.backend.IndexUploadErr
	}
	i.Data = append(i.Data[:0], indices...)
	i.Uploads++
	return nil
}

func (i *IndexBuffer) Close() error {
	i.backend.calls++
	i.Closes++
	if i.Closes > 1 {
		return fmt.Errorf("index buffer %d: %w", i.ID, ErrReleased)
	}
	return nil
}

// Draw is one recorded DrawIndexed call.
type Draw struct {
	Vertex *VertexBuffer
	Index  *IndexBuffer
	Count  int
}

// Backend is a recording graphics.Backend. Set the error fields to inject failures.
type Backend struct {
	VertexBuffers []*VertexBuffer
	IndexBuffers  []*IndexBuffer
	Draws         []Draw

	AllocErr       error // returned by NewVertexBuffer
	UploadErr      error // returned by VertexBuffer.Upload
	IndexUploadErr error // returned by IndexBuffer.Upload

	calls int
}

// New returns an empty recording backend.
func New() *Backend {
	return &Backend{}
}

func (b *Backend) NewVertexBuffer(format graphics.VertexFormat) (graphics.VertexBuffer, error) {
	b.calls++
	if b.AllocErr != nil {
		return nil, b.AllocErr
	}
	vb := &VertexBuffer{ID: len(b.VertexBuffers) + 1, Format: format, backend: b}
	b.VertexBuffers = append(b.VertexBuffers, vb)
	return vb, nil
}

func (b *Backend) NewIndexBuffer() (graphics.IndexBuffer, error) {
	b.calls++
	ib := &IndexBuffer{ID: len(b.IndexBuffers) + 1, backend: b}
	b.IndexBuffers = append(b.IndexBuffers, ib)
	return ib, nil
}

func (b *Backend) DrawIndexed(vb graphics.VertexBuffer, ib graphics.IndexBuffer, count int) error {
	b.calls++
	v, ok := vb.(*VertexBuffer)
	if !ok {
		return fmt.Errorf("graphicstest: foreign vertex buffer %T", vb)
	}
	i, ok := ib.(*IndexBuffer)
	if !ok {
		return fmt.Errorf("graphicstest: foreign index buffer %T", ib)
	}
	if v.Closes > 0 || i.Closes > 0 {
		return ErrReleased
	}
	if count > len(i.Data) {
		return fmt.Errorf("graphicstest: draw of %d indices exceeds index buffer of %d", count, len(i.Data))
	}
	b.Draws = append(b.Draws, Draw{Vertex: v, Index: i, Count: count})
	return nil
}

// Calls returns the number of backend and buffer calls made so far.
func (b *Backend) Calls() int {
	return b.calls
}

// ResetDraws forgets recorded draw calls.
func (b *Backend) ResetDraws() {
	b.Draws = b.Draws[:0]
}

// Live returns the number of vertex buffers not yet released.
func (b *Backend) Live() int {
	n := 0
	for _, vb := range b.VertexBuffers {
		if vb.Closes == 0 {
			n++
		}
	}
	return n
}
