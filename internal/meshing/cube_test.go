package meshing

import (
	"testing"

	"voxelview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func meshBox(s *world.Store, x0, y0, z0, x1, y1, z1 int) *Buffer {
	out := NewBuffer(CubeFormat)
	m := CubeMesher{}
	for y := y0; y <= y1; y++ {
		for z := z0; z <= z1; z++ {
			for x := x0; x <= x1; x++ {
				if err := m.MeshBlock(s.Get(x, y, z), x, y, z, s, out); err != nil {
					panic(err)
				}
			}
		}
	}
	return out
}

func TestSingleBlockMesh(t *testing.T) {
	s := world.NewStore()
	s.Set(0, 0, 0, world.BlockTypeGrass)
	out := meshBox(s, 0, 0, 0, 0, 0, 0)
	if out.QuadCount() != 6 {
		t.Fatalf("single block: got %d quads, want 6", out.QuadCount())
	}
	if err := out.Check(); err != nil {
		t.Fatalf("single block: %v", err)
	}
}

func TestAirProducesNothing(t *testing.T) {
	s := world.NewStore()
	out := meshBox(s, 0, 0, 0, 3, 3, 3)
	if out.VertexCount() != 0 {
		t.Fatalf("air: got %d vertices, want 0", out.VertexCount())
	}
}

func TestTwoBlocksTouchingCullSharedFace(t *testing.T) {
	s := world.NewStore()
	s.Set(0, 0, 0, world.BlockTypeStone)
	s.Set(1, 0, 0, world.BlockTypeStone)
	out := meshBox(s, 0, 0, 0, 1, 0, 0)
	if out.QuadCount() != 10 {
		t.Fatalf("two touching blocks: got %d quads, want 10", out.QuadCount())
	}
}

func TestCrossChunkFaceCulling(t *testing.T) {
	s := world.NewStore()
	// Block at the +X edge of section (0,0,0) and its neighbour in section (1,0,0)
	s.Set(15, 0, 0, world.BlockTypeGrass)
	s.Set(16, 0, 0, world.BlockTypeGrass)
	out := meshBox(s, 0, 0, 0, 15, 15, 15)
	if out.QuadCount() != 5 {
		t.Fatalf("cross-chunk culling: got %d quads, want 5", out.QuadCount())
	}
}

func TestWaterHidesOnlyAgainstSolidOrWater(t *testing.T) {
	s := world.NewStore()
	s.Set(0, 0, 0, world.BlockTypeWater)
	s.Set(1, 0, 0, world.BlockTypeWater)
	s.Set(0, 1, 0, world.BlockTypeStone)
	out := meshBox(s, 0, 0, 0, 0, 0, 0)
	// east face hidden by water, top face hidden by stone
	if out.QuadCount() != 4 {
		t.Fatalf("water block: got %d quads, want 4", out.QuadCount())
	}
}

// TestQuadWinding checks that every emitted quad is counter-clockwise when
// seen from the side its normal points to.
func TestQuadWinding(t *testing.T) {
	s := world.NewStore()
	s.Set(5, 5, 5, world.BlockTypeDirt)
	out := meshBox(s, 5, 5, 5, 5, 5, 5)
	data := out.Floats()
	vertex := func(i int) mgl32.Vec3 {
		o := i * VertexStride
		return mgl32.Vec3{data[o], data[o+1], data[o+2]}
	}
	for q := 0; q < out.QuadCount(); q++ {
		v0, v1, v2 := vertex(q*4), vertex(q*4+1), vertex(q*4+2)
		o := q * 4 * VertexStride
		normal := mgl32.Vec3{data[o+3], data[o+4], data[o+5]}
		n := v1.Sub(v0).Cross(v2.Sub(v0))
		if n.Dot(normal) <= 0 {
			t.Errorf("quad %d winds against its normal %v", q, normal)
		}
	}
}

func TestBufferCheckRejectsPartialQuads(t *testing.T) {
	out := NewBuffer(CubeFormat)
	out.Append(make([]float32, VertexStride*3)...)
	if err := out.Check(); err == nil {
		t.Errorf("three vertices accepted as whole quads")
	}
	out.Reset()
	out.Append(1, 2, 3)
	if err := out.Check(); err == nil {
		t.Errorf("partial vertex accepted")
	}
	out.Reset()
	if err := out.Check(); err != nil {
		t.Errorf("empty buffer rejected: %v", err)
	}
}

func BenchmarkCubeMesherFullSurface(b *testing.B) {
	s := world.NewStore()
	s.Fill(0, 0, 0, 15, 0, 15, world.BlockTypeGrass)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = meshBox(s, 0, 0, 0, 15, 15, 15)
	}
}
