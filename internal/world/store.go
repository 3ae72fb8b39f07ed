package world

import (
	"sync"
)

// Reader gives read-only access to blocks by world coordinate.
type Reader interface {
	Get(x, y, z int) BlockType
}

// Listener is notified of every block change in a Store.
type Listener interface {
	BlockChanged(x, y, z int, prev, next BlockType)
}

// Store is a sparse, unbounded block grid built from ChunkSize^3 chunks.
// Listeners are called synchronously from Set, after the store lock is
// released, and only when the stored value actually changes.
type Store struct {
	mu        sync.RWMutex
	chunks    map[ChunkCoord]*Chunk
	listeners []Listener
}

// NewStore creates an empty (all air) store.
func NewStore() *Store {
	return &Store{
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// Get returns the block type at the specified world coordinates.
func (s *Store) Get(x, y, z int) BlockType {
	coord := ChunkCoordOf(x, y, z, ChunkSize)
	s.mu.RLock()
	defer s.mu.RUnlock()
	ch := s.chunks[coord]
	if ch == nil {
		return BlockTypeAir
	}
	return ch.GetBlock(FloorMod(x, ChunkSize), FloorMod(y, ChunkSize), FloorMod(z, ChunkSize))
}

// Set stores b at the specified world coordinates and returns the previous block.
func (s *Store) Set(x, y, z int, b BlockType) BlockType {
	coord := ChunkCoordOf(x, y, z, ChunkSize)

	s.mu.Lock()
	ch := s.chunks[coord]
	if ch == nil {
		if b == BlockTypeAir {
			s.mu.Unlock()
			return BlockTypeAir
		}
		ch = NewChunk(coord)
		s.chunks[coord] = ch
	}
	prev := ch.SetBlock(FloorMod(x, ChunkSize), FloorMod(y, ChunkSize), FloorMod(z, ChunkSize), b)
	if ch.IsEmpty() {
		delete(s.chunks, coord)
	}
	var listeners []Listener
	if prev != b {
		listeners = append(listeners, s.listeners...)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l.BlockChanged(x, y, z, prev, b)
	}
	return prev
}

// Subscribe registers l for change notifications. Subscribing the same
// listener twice has no effect.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.listeners {
		if existing == l {
			return
		}
	}
	s.listeners = append(s.listeners, l)
}

// Unsubscribe removes l. Unknown listeners are ignored.
func (s *Store) Unsubscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.listeners {
		if existing == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of subscribed listeners.
func (s *Store) ListenerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

// ChunkCount returns the number of storage chunks holding at least one non-air block.
func (s *Store) ChunkCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}

// Fill sets every block in the inclusive box [min, max] to b.
func (s *Store) Fill(x0, y0, z0, x1, y1, z1 int, b BlockType) {
	for y := y0; y <= y1; y++ {
		for z := z0; z <= z1; z++ {
			for x := x0; x <= x1; x++ {
				s.Set(x, y, z, b)
			}
		}
	}
}
