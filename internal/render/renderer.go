// Package render turns a block grid into per-section GPU meshes, keeps them
// up to date as blocks change and draws the sections relevant to the camera.
//
// All methods must be called from the rendering thread. Nothing here locks.
package render

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"time"

	"voxelview/internal/graphics"
	"voxelview/internal/meshing"
	"voxelview/internal/profiling"
	"voxelview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrClosed             = errors.New("render: renderer closed")
	ErrInvalidSectionSize = errors.New("render: section size must be at least 1")
	ErrNilBackend         = errors.New("render: nil graphics backend")
	ErrNilMesher          = errors.New("render: nil mesher")
)

// Mesher produces the geometry of one block. It appends whole quads of four
// vertices to out and must not retain grid or out after returning.
type Mesher interface {
	MeshBlock(b world.BlockType, x, y, z int, grid world.Reader, out *meshing.Buffer) error
}

// MesherFunc adapts a function to Mesher.
type MesherFunc func(b world.BlockType, x, y, z int, grid world.Reader, out *meshing.Buffer) error

func (f MesherFunc) MeshBlock(b world.BlockType, x, y, z int, grid world.Reader, out *meshing.Buffer) error {
	return f(b, x, y, z, grid, out)
}

// Options configure a LevelRenderer. They are fixed for its lifetime.
type Options struct {
	// SectionSize is the edge length S of a section in blocks.
	SectionSize int
	// NeighborRule controls dirty propagation across section borders.
	NeighborRule NeighborRule
	// MaxRemeshTime bounds remeshing per frame. It is checked only after a
	// section finishes, so at least one dirty section is remeshed per frame.
	// A negative value disables the budget.
	MaxRemeshTime time.Duration
	// Format is the vertex layout the mesher writes.
	Format graphics.VertexFormat
	// CullMargin inflates section boxes, in blocks, before frustum tests.
	CullMargin float32
}

// FrameStats describes the last RenderSections call.
type FrameStats struct {
	Candidates int
	Evicted    int
	Visible    int
	Remeshed   int
	Dirty      int // visible sections still waiting for a remesh
	Drawn      int
	RemeshTime time.Duration
}

// LevelRenderer caches one mesh per section of the attached level.
type LevelRenderer struct {
	backend graphics.Backend
	mesher  Mesher
	opts    Options
	indices *IndexPatternBuffer
	level   *levelData
	closed  bool

	out        *meshing.Buffer
	candidates map[world.ChunkCoord]struct{}
	visible    []world.ChunkCoord
	stats      FrameStats
}

// New validates opts and allocates the shared index buffer.
func New(backend graphics.Backend, mesher Mesher, opts Options) (*LevelRenderer, error) {
	if backend == nil {
		return nil, ErrNilBackend
	}
	if mesher == nil {
		return nil, ErrNilMesher
	}
	if opts.SectionSize < 1 {
		return nil, ErrInvalidSectionSize
	}
	if !opts.NeighborRule.valid() {
		return nil, fmt.Errorf("render: invalid neighbor rule %v", opts.NeighborRule)
	}
	if err := opts.Format.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	indices, err := NewIndexPatternBuffer(backend, QuadPattern)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return &LevelRenderer{
		backend:    backend,
		mesher:     mesher,
		opts:       opts,
		indices:    indices,
		out:        meshing.NewBuffer(opts.Format),
		candidates: make(map[world.ChunkCoord]struct{}),
	}, nil
}

// SetLevel attaches level, releasing every section of the previously
// attached one. Attaching the current level again is a no-op; nil detaches.
func (r *LevelRenderer) SetLevel(level Level) error {
	if r.closed {
		return ErrClosed
	}
	if r.level != nil && sameLevel(r.level.level, level) {
		return nil
	}
	if r.level == nil && level == nil {
		return nil
	}
	var err error
	if r.level != nil {
		err = r.level.close()
		r.level = nil
	}
	if level != nil {
		r.level = newLevelData(level, r.opts.SectionSize, r.opts.NeighborRule)
	}
	return err
}

// sameLevel reports whether a and b are the same attached level. Levels
// whose dynamic type is not comparable are never considered the same.
func sameLevel(a, b Level) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// Level returns the attached level, or nil.
func (r *LevelRenderer) Level() Level {
	if r.level == nil {
		return nil
	}
	return r.level.level
}

// RenderSections draws the candidate sections that intersect the
// view-projection frustum, nearest first, after remeshing dirty ones within
// the time budget. Cached sections outside candidates are released.
func (r *LevelRenderer) RenderSections(camera mgl32.Vec3, viewProj mgl32.Mat4, candidates []world.ChunkCoord) error {
	if r.closed {
		return ErrClosed
	}
	r.stats = FrameStats{}
	if r.level == nil {
		return nil
	}

	if err := r.evict(candidates); err != nil {
		return err
	}
	r.cull(viewProj)
	r.sortFrontToBack(camera)
	if err := r.remesh(); err != nil {
		return err
	}
	return r.draw()
}

// evict releases every cached section not in candidates.
func (r *LevelRenderer) evict(candidates []world.ChunkCoord) error {
	defer profiling.Track("render.evict")()
	clear(r.candidates)
	for _, c := range candidates {
		r.candidates[c] = struct{}{}
	}
	r.stats.Candidates = len(r.candidates)

	var errs []error
	for c, s := range r.level.sections {
		if _, ok := r.candidates[c]; ok {
			continue
		}
		if err := r.level.evict(c, s); err != nil {
			errs = append(errs, err)
		}
		r.stats.Evicted++
	}
	return errors.Join(errs...)
}

// cull collects the candidates whose section box intersects the frustum.
func (r *LevelRenderer) cull(viewProj mgl32.Mat4) {
	defer profiling.Track("render.cull")()
	frustum := graphics.NewFrustum(viewProj, r.opts.CullMargin)
	size := float32(r.opts.SectionSize)

	r.visible = r.visible[:0]
	for c := range r.candidates {
		min := mgl32.Vec3{float32(c.X) * size, float32(c.Y) * size, float32(c.Z) * size}
		max := min.Add(mgl32.Vec3{size, size, size})
		if frustum.IntersectsAABB(min, max) {
			r.visible = append(r.visible, c)
		}
	}
	r.stats.Visible = len(r.visible)
}

// sortFrontToBack orders visible sections by squared distance from camera to
// section center. Ties are broken by coordinate so the order is stable.
func (r *LevelRenderer) sortFrontToBack(camera mgl32.Vec3) {
	defer profiling.Track("render.sort")()
	size := float32(r.opts.SectionSize)
	half := size / 2
	dist := func(c world.ChunkCoord) float32 {
		center := mgl32.Vec3{float32(c.X)*size + half, float32(c.Y)*size + half, float32(c.Z)*size + half}
		d := center.Sub(camera)
		return d.Dot(d)
	}
	sort.Slice(r.visible, func(i, j int) bool {
		di, dj := dist(r.visible[i]), dist(r.visible[j])
		if di != dj {
			return di < dj
		}
		a, b := r.visible[i], r.visible[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})
}

// remesh rebuilds dirty visible sections, nearest first, until the budget
// is spent. A section that has started is always finished.
func (r *LevelRenderer) remesh() error {
	defer profiling.Track("render.remesh")()
	start := time.Now()
	budget := r.opts.MaxRemeshTime
	defer func() { r.stats.RemeshTime = time.Since(start) }()

	for i, c := range r.visible {
		s, ok := r.level.sections[c]
		if !ok {
			vb, err := r.backend.NewVertexBuffer(r.opts.Format)
			if err != nil {
				return fmt.Errorf("allocate section %v: %w", c, err)
			}
			s = newSection(vb)
			r.level.sections[c] = s
		}
		if !s.dirty {
			continue
		}
		if err := r.remeshSection(c, s); err != nil {
			r.stats.Dirty = r.countDirty(r.visible[i:])
			return err
		}
		r.stats.Remeshed++
		if budget >= 0 && time.Since(start) >= budget {
			r.stats.Dirty = r.countDirty(r.visible[i+1:])
			return nil
		}
	}
	return nil
}

// remeshSection runs the mesher over every block of c (y, then z, then x)
// and uploads the result. On error s is left dirty and unchanged.
func (r *LevelRenderer) remeshSection(c world.ChunkCoord, s *section) error {
	size := r.opts.SectionSize
	grid := r.level.level
	bx, by, bz := c.X*size, c.Y*size, c.Z*size

	out := r.out
	out.Reset()
	for y := by; y < by+size; y++ {
		for z := bz; z < bz+size; z++ {
			for x := bx; x < bx+size; x++ {
				if err := r.mesher.MeshBlock(grid.Get(x, y, z), x, y, z, grid, out); err != nil {
					return fmt.Errorf("mesh block (%d,%d,%d) of section %v: %w", x, y, z, c, err)
				}
			}
		}
	}
	if err := out.Check(); err != nil {
		return fmt.Errorf("mesh section %v: %w", c, err)
	}

	// grow indices first so a failure leaves the previous mesh in place
	faces := out.QuadCount()
	if err := r.indices.EnsureCapacity(faces); err != nil {
		return fmt.Errorf("mesh section %v: %w", c, err)
	}
	if err := s.vb.Upload(out.Floats()); err != nil {
		return fmt.Errorf("upload section %v: %w", c, err)
	}
	s.elementCount = faces * len(r.indices.Pattern().Indices)
	s.dirty = false
	return nil
}

func (r *LevelRenderer) countDirty(coords []world.ChunkCoord) int {
	n := 0
	for _, c := range coords {
		if s, ok := r.level.sections[c]; !ok || s.dirty {
			n++
		}
	}
	return n
}

// draw issues one indexed draw per visible section with geometry, in sorted order.
func (r *LevelRenderer) draw() error {
	defer profiling.Track("render.draw")()
	ib := r.indices.Buffer()
	for _, c := range r.visible {
		s, ok := r.level.sections[c]
		if !ok || s.elementCount == 0 {
			continue
		}
		if err := r.backend.DrawIndexed(s.vb, ib, s.elementCount); err != nil {
			return fmt.Errorf("draw section %v: %w", c, err)
		}
		r.stats.Drawn++
	}
	return nil
}

// Stats returns counters for the last RenderSections call.
func (r *LevelRenderer) Stats() FrameStats {
	return r.stats
}

// Section reports the cached state of c.
func (r *LevelRenderer) Section(c world.ChunkCoord) (SectionInfo, bool) {
	if r.level == nil {
		return SectionInfo{}, false
	}
	s, ok := r.level.sections[c]
	if !ok {
		return SectionInfo{}, false
	}
	return SectionInfo{ElementCount: s.elementCount, Dirty: s.dirty}, true
}

// SectionCount returns the number of cached sections.
func (r *LevelRenderer) SectionCount() int {
	if r.level == nil {
		return 0
	}
	return len(r.level.sections)
}

// IndexCapacity returns the shared index buffer capacity in quads.
func (r *LevelRenderer) IndexCapacity() int {
	return r.indices.Capacity()
}

// Close detaches the level and releases the shared index buffer. It is safe
// to call more than once.
func (r *LevelRenderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	var errs []error
	if r.level != nil {
		errs = append(errs, r.level.close())
		r.level = nil
	}
	errs = append(errs, r.indices.Close())
	return errors.Join(errs...)
}
