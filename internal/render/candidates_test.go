package render

import (
	"testing"

	"voxelview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func TestChunksInRadius(t *testing.T) {
	tests := []struct {
		name   string
		pos    mgl32.Vec3
		radius int
		want   int
		center world.ChunkCoord
	}{
		{"zero radius", mgl32.Vec3{5, 5, 5}, 0, 1, world.ChunkCoord{X: 0, Y: 0, Z: 0}},
		{"radius one", mgl32.Vec3{5, 5, 5}, 1, 7, world.ChunkCoord{X: 0, Y: 0, Z: 0}},
		{"radius two", mgl32.Vec3{5, 5, 5}, 2, 33, world.ChunkCoord{X: 0, Y: 0, Z: 0}},
		{"negative position", mgl32.Vec3{-0.5, -16, -17}, 1, 7, world.ChunkCoord{X: -1, Y: -1, Z: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChunksInRadius(tt.pos, 16, tt.radius, nil)
			if len(got) != tt.want {
				t.Fatalf("got %d coords, want %d", len(got), tt.want)
			}
			seen := make(map[world.ChunkCoord]bool)
			for _, c := range got {
				if seen[c] {
					t.Fatalf("duplicate coord %v", c)
				}
				seen[c] = true
			}
			if !seen[tt.center] {
				t.Fatalf("center %v missing from %v", tt.center, got)
			}
		})
	}
}

func TestChunksInRadiusAppends(t *testing.T) {
	dst := []world.ChunkCoord{{X: 9, Y: 9, Z: 9}}
	got := ChunksInRadius(mgl32.Vec3{}, 16, 0, dst)
	if len(got) != 2 || got[0] != (world.ChunkCoord{X: 9, Y: 9, Z: 9}) || got[1] != (world.ChunkCoord{}) {
		t.Fatalf("got %v", got)
	}
}

func TestClampY(t *testing.T) {
	coords := []world.ChunkCoord{{X: 0, Y: -1, Z: 0}, {X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 2, Z: 0}, {X: 2, Y: 4, Z: 2}}
	got := ClampY(coords, 16, 0, 47)
	want := []world.ChunkCoord{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 2, Z: 0}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
