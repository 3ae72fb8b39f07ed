package world

import "testing"

type recordingListener struct {
	events [][5]int
}

func (r *recordingListener) BlockChanged(x, y, z int, prev, next BlockType) {
	r.events = append(r.events, [5]int{x, y, z, int(prev), int(next)})
}

func TestFloorDivMod(t *testing.T) {
	cases := []struct{ a, b, div, mod int }{
		{0, 16, 0, 0},
		{15, 16, 0, 15},
		{16, 16, 1, 0},
		{-1, 16, -1, 15},
		{-16, 16, -1, 0},
		{-17, 16, -2, 15},
		{5, 1, 5, 0},
		{-5, 1, -5, 0},
	}
	for _, c := range cases {
		if got := FloorDiv(c.a, c.b); got != c.div {
			t.Errorf("FloorDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.div)
		}
		if got := FloorMod(c.a, c.b); got != c.mod {
			t.Errorf("FloorMod(%d,%d) = %d, want %d", c.a, c.b, got, c.mod)
		}
	}
}

func TestChunkCoordOf(t *testing.T) {
	got := ChunkCoordOf(16, -1, 31, 16)
	want := ChunkCoord{1, -1, 1}
	if got != want {
		t.Fatalf("ChunkCoordOf = %v, want %v", got, want)
	}
}

func TestStoreSetReturnsPrevious(t *testing.T) {
	s := NewStore()
	if prev := s.Set(-3, 70, 5, BlockTypeStone); prev != BlockTypeAir {
		t.Fatalf("first Set returned %v, want air", prev)
	}
	if prev := s.Set(-3, 70, 5, BlockTypeDirt); prev != BlockTypeStone {
		t.Fatalf("second Set returned %v, want stone", prev)
	}
	if b := s.Get(-3, 70, 5); b != BlockTypeDirt {
		t.Fatalf("Get = %v, want dirt", b)
	}
	if s.Get(-3, 71, 5) != BlockTypeAir {
		t.Fatalf("neighbouring block should be air")
	}
}

func TestStoreReleasesEmptyChunks(t *testing.T) {
	s := NewStore()
	s.Set(1, 1, 1, BlockTypeStone)
	if n := s.ChunkCount(); n != 1 {
		t.Fatalf("ChunkCount = %d, want 1", n)
	}
	s.Set(1, 1, 1, BlockTypeAir)
	if n := s.ChunkCount(); n != 0 {
		t.Fatalf("ChunkCount after clearing = %d, want 0", n)
	}
}

func TestStoreNotifiesListeners(t *testing.T) {
	s := NewStore()
	l := &recordingListener{}
	s.Subscribe(l)
	s.Subscribe(l)
	if n := s.ListenerCount(); n != 1 {
		t.Fatalf("ListenerCount = %d, want 1", n)
	}

	s.Set(16, 0, 0, BlockTypeGrass)
	s.Set(16, 0, 0, BlockTypeGrass) // unchanged, no event
	s.Set(16, 0, 0, BlockTypeAir)

	if len(l.events) != 2 {
		t.Fatalf("got %d events, want 2: %v", len(l.events), l.events)
	}
	if l.events[0] != [5]int{16, 0, 0, int(BlockTypeAir), int(BlockTypeGrass)} {
		t.Errorf("unexpected first event %v", l.events[0])
	}
	if l.events[1] != [5]int{16, 0, 0, int(BlockTypeGrass), int(BlockTypeAir)} {
		t.Errorf("unexpected second event %v", l.events[1])
	}

	s.Unsubscribe(l)
	s.Set(0, 0, 0, BlockTypeStone)
	if len(l.events) != 2 {
		t.Fatalf("listener called after Unsubscribe")
	}
}

func TestStoreListenerMayReadStore(t *testing.T) {
	s := NewStore()
	var seen BlockType
	s.Subscribe(&funcListener{fn: func(x, y, z int, _, _ BlockType) {
		seen = s.Get(x, y, z)
	}})
	s.Set(2, 2, 2, BlockTypeSand)
	if seen != BlockTypeSand {
		t.Fatalf("listener observed %v, want sand", seen)
	}
}

type funcListener struct {
	fn func(x, y, z int, prev, next BlockType)
}

func (f *funcListener) BlockChanged(x, y, z int, prev, next BlockType) { f.fn(x, y, z, prev, next) }
