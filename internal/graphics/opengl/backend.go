// Package opengl implements graphics.Backend on an OpenGL 4.1 core context.
// Every call must happen on the thread owning the current context.
package opengl

import (
	"errors"
	"fmt"

	"voxelview/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var errReleased = errors.New("opengl: buffer already released")

// Backend issues draw calls against the current context.
type Backend struct{}

// New returns a backend. gl.Init must already have succeeded.
func New() *Backend {
	return &Backend{}
}

type vertexBuffer struct {
	vao    uint32
	vbo    uint32
	format graphics.VertexFormat
}

type indexBuffer struct {
	ebo uint32
}

func glError(label string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error %s: 0x%x", label, code)
	}
	return nil
}

// NewVertexBuffer creates a VAO/VBO pair with the attribute layout of format
// bound to locations 0..n-1.
func (b *Backend) NewVertexBuffer(format graphics.VertexFormat) (graphics.VertexBuffer, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	v := &vertexBuffer{format: format}
	gl.GenVertexArrays(1, &v.vao)
	gl.BindVertexArray(v.vao)
	gl.GenBuffers(1, &v.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.vbo)

	stride := int32(format.Stride() * 4)
	offset := 0
	for i, a := range format.Attributes {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointerWithOffset(uint32(i), int32(a.Size), gl.FLOAT, false, stride, uintptr(offset*4))
		offset += a.Size
	}
	gl.BindVertexArray(0)

	if err := glError("NewVertexBuffer"); err != nil {
		v.release()
		return nil, err
	}
	return v, nil
}

func (v *vertexBuffer) Upload(data []float32) error {
	if v.vbo == 0 {
		return errReleased
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, v.vbo)
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.DYNAMIC_DRAW)
	}
	return glError("VertexBuffer.Upload")
}

func (v *vertexBuffer) Close() error {
	if v.vbo == 0 {
		return errReleased
	}
	v.release()
	return glError("VertexBuffer.Close")
}

func (v *vertexBuffer) release() {
	if v.vao != 0 {
		gl.DeleteVertexArrays(1, &v.vao)
		v.vao = 0
	}
	if v.vbo != 0 {
		gl.DeleteBuffers(1, &v.vbo)
		v.vbo = 0
	}
}

func (b *Backend) NewIndexBuffer() (graphics.IndexBuffer, error) {
	i := &indexBuffer{}
	gl.GenBuffers(1, &i.ebo)
	if err := glError("NewIndexBuffer"); err != nil {
		gl.DeleteBuffers(1, &i.ebo)
		return nil, err
	}
	return i, nil
}

func (i *indexBuffer) Upload(indices []uint32) error {
	if i.ebo == 0 {
		return errReleased
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, i.ebo)
	if len(indices) == 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}
	return glError("IndexBuffer.Upload")
}

func (i *indexBuffer) Close() error {
	if i.ebo == 0 {
		return errReleased
	}
	gl.DeleteBuffers(1, &i.ebo)
	i.ebo = 0
	return glError("IndexBuffer.Close")
}

// DrawIndexed binds vb's VAO, attaches ib as its element array and draws
// count indices as triangles.
func (b *Backend) DrawIndexed(vb graphics.VertexBuffer, ib graphics.IndexBuffer, count int) error {
	v, ok := vb.(*vertexBuffer)
	if !ok {
		return fmt.Errorf("opengl: foreign vertex buffer %T", vb)
	}
	i, ok := ib.(*indexBuffer)
	if !ok {
		return fmt.Errorf("opengl: foreign index buffer %T", ib)
	}
	if v.vao == 0 || i.ebo == 0 {
		return errReleased
	}
	gl.BindVertexArray(v.vao)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, i.ebo)
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	return glError("DrawIndexed")
}
