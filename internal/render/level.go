package render

import (
	"errors"
	"fmt"

	"voxelview/internal/world"
)

// Level is the block grid a LevelRenderer draws. The renderer subscribes to
// it while attached and never writes to it.
type Level interface {
	world.Reader
	Subscribe(l world.Listener)
	Unsubscribe(l world.Listener)
}

// levelData owns the section cache of one attached level and keeps it in
// step with block changes.
type levelData struct {
	level    Level
	size     int
	rule     NeighborRule
	sections map[world.ChunkCoord]*section
}

func newLevelData(level Level, size int, rule NeighborRule) *levelData {
	l := &levelData{
		level:    level,
		size:     size,
		rule:     rule,
		sections: make(map[world.ChunkCoord]*section),
	}
	level.Subscribe(l)
	return l
}

// boundaryOffsets returns the section offsets along one axis that share the
// block's boundary: always 0, plus -1 at the min edge and +1 at the max edge.
// With size 1 a block touches both edges.
func boundaryOffsets(local, size int) ([3]int, int) {
	offs := [3]int{0}
	n := 1
	if local == 0 {
		offs[n] = -1
		n++
	}
	if local == size-1 {
		offs[n] = 1
		n++
	}
	return offs, n
}

// BlockChanged marks the section holding (x, y, z) dirty, together with
// every existing neighbour sharing the block's face, edge or corner as
// allowed by the rule.
func (l *levelData) BlockChanged(x, y, z int, _, _ world.BlockType) {
	c := world.ChunkCoordOf(x, y, z, l.size)
	xs, nx := boundaryOffsets(world.FloorMod(x, l.size), l.size)
	ys, ny := boundaryOffsets(world.FloorMod(y, l.size), l.size)
	zs, nz := boundaryOffsets(world.FloorMod(z, l.size), l.size)

	for _, dx := range xs[:nx] {
		for _, dy := range ys[:ny] {
			for _, dz := range zs[:nz] {
				switch axes := abs(dx) + abs(dy) + abs(dz); {
				case axes == 2 && !l.rule.Edges():
					continue
				case axes == 3 && !l.rule.Vertices():
					continue
				}
				l.markDirty(c.Add(dx, dy, dz))
			}
		}
	}
}

// markDirty flags an existing section. Unknown coordinates are left alone;
// they are meshed from scratch when first created.
func (l *levelData) markDirty(c world.ChunkCoord) {
	if s, ok := l.sections[c]; ok {
		s.dirty = true
	}
}

// evict releases s and drops it from the cache.
func (l *levelData) evict(c world.ChunkCoord, s *section) error {
	delete(l.sections, c)
	if err := s.vb.Close(); err != nil {
		return fmt.Errorf("release section %v: %w", c, err)
	}
	return nil
}

// close unsubscribes and releases every section exactly once.
func (l *levelData) close() error {
	l.level.Unsubscribe(l)
	var errs []error
	for c, s := range l.sections {
		if err := l.evict(c, s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
