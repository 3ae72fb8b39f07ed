package render

import (
	"voxelview/internal/graphics"
)

// section is the cached mesh of one chunk.
type section struct {
	vb           graphics.VertexBuffer
	elementCount int
	dirty        bool
}

// newSection returns an entry that has never been meshed.
func newSection(vb graphics.VertexBuffer) *section {
	return &section{vb: vb, dirty: true}
}

// SectionInfo is a read-only view of a cached section.
type SectionInfo struct {
	ElementCount int
	Dirty        bool
}
