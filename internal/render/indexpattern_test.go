package render

import (
	"testing"

	"voxelview/internal/graphics/graphicstest"
)

func TestEnsureCapacityGrowsOnly(t *testing.T) {
	backend := graphicstest.New()
	b, err := NewIndexPatternBuffer(backend, QuadPattern)
	if err != nil {
		t.Fatal(err)
	}
	ib := backend.IndexBuffers[0]

	if err := b.EnsureCapacity(5); err != nil {
		t.Fatal(err)
	}
	if b.Capacity() != 5 || ib.Uploads != 1 {
		t.Fatalf("after 5: capacity %d, uploads %d", b.Capacity(), ib.Uploads)
	}

	if err := b.EnsureCapacity(3); err != nil {
		t.Fatal(err)
	}
	if b.Capacity() != 5 || ib.Uploads != 1 {
		t.Fatalf("after 3: capacity %d, uploads %d; want 5, 1", b.Capacity(), ib.Uploads)
	}

	if err := b.EnsureCapacity(7); err != nil {
		t.Fatal(err)
	}
	if b.Capacity() != 7 || ib.Uploads != 2 {
		t.Fatalf("after 7: capacity %d, uploads %d; want 7, 2", b.Capacity(), ib.Uploads)
	}
	if len(ib.Data) != 7*6 {
		t.Fatalf("index count = %d, want 42", len(ib.Data))
	}
}

func TestEnsureCapacityZeroIsNoop(t *testing.T) {
	backend := graphicstest.New()
	b, err := NewIndexPatternBuffer(backend, QuadPattern)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.EnsureCapacity(0); err != nil {
		t.Fatal(err)
	}
	if backend.IndexBuffers[0].Uploads != 0 {
		t.Fatalf("EnsureCapacity(0) uploaded data")
	}
}

func TestPatternRepetitionsAreOffset(t *testing.T) {
	backend := graphicstest.New()
	b, err := NewIndexPatternBuffer(backend, QuadPattern)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.EnsureCapacity(3); err != nil {
		t.Fatal(err)
	}
	want := []uint32{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7, 8, 9, 10, 8, 10, 11}
	got := backend.IndexBuffers[0].Data
	if len(got) != len(want) {
		t.Fatalf("indices = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("indices = %v, want %v", got, want)
		}
	}
}

func TestCustomPattern(t *testing.T) {
	backend := graphicstest.New()
	tri := IndexPattern{Indices: []uint32{0, 2, 1}, Vertices: 3}
	b, err := NewIndexPatternBuffer(backend, tri)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.EnsureCapacity(2); err != nil {
		t.Fatal(err)
	}
	got := backend.IndexBuffers[0].Data
	want := []uint32{0, 2, 1, 3, 5, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("indices = %v, want %v", got, want)
		}
	}
}

func TestInvalidPatterns(t *testing.T) {
	for _, p := range []IndexPattern{
		{},
		{Indices: []uint32{0, 1, 2}, Vertices: 0},
		{Indices: []uint32{0, 1, 4}, Vertices: 4},
	} {
		if _, err := NewIndexPatternBuffer(graphicstest.New(), p); err == nil {
			t.Errorf("pattern %+v accepted", p)
		}
	}
}
