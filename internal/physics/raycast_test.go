package physics_test

import (
	"testing"

	"voxelview/internal/physics"
	"voxelview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRaycast(t *testing.T) {
	w := world.NewStore()
	w.Set(5, 0, 0, world.BlockTypeStone)

	start := mgl32.Vec3{0.5, 0.5, 0.5}
	dir := mgl32.Vec3{1, 0, 0}
	minDist := float32(0.1)
	maxDist := float32(10.0)

	result := physics.Raycast(start, dir, minDist, maxDist, w)
	if !result.Hit {
		t.Fatalf("Expected hit, got miss")
	}
	if result.HitPosition != [3]int{5, 0, 0} {
		t.Errorf("Expected hit at {5,0,0}, got %v", result.HitPosition)
	}
	if result.AdjacentPosition != [3]int{4, 0, 0} {
		t.Errorf("Expected adjacent at {4,0,0}, got %v", result.AdjacentPosition)
	}
	// x=5 face is 4.5 away
	if result.Distance < 4.49 || result.Distance > 4.51 {
		t.Errorf("Expected distance 4.5, got %f", result.Distance)
	}

	if r := physics.Raycast(start, dir, minDist, 4.0, w); r.Hit {
		t.Errorf("Expected miss due to maxDist, got hit at %v", r.HitPosition)
	}
	if r := physics.Raycast(start, mgl32.Vec3{0, 1, 0}, minDist, maxDist, w); r.Hit {
		t.Errorf("Expected miss, got hit")
	}

	w.Set(2, 2, 2, world.BlockTypeStone)
	diag := physics.Raycast(start, mgl32.Vec3{1, 1, 1}.Normalize(), minDist, maxDist, w)
	if !diag.Hit || diag.HitPosition != [3]int{2, 2, 2} {
		t.Errorf("Expected hit at {2,2,2}, got %+v", diag)
	}
}

func TestRaycastNegativeDirection(t *testing.T) {
	w := world.NewStore()
	w.Set(-3, 4, 0, world.BlockTypeDirt)

	r := physics.Raycast(mgl32.Vec3{0.5, 4.5, 0.5}, mgl32.Vec3{-1, 0, 0}, physics.MinReachDistance, physics.MaxReachDistance, w)
	if !r.Hit || r.HitPosition != [3]int{-3, 4, 0} || r.AdjacentPosition != [3]int{-2, 4, 0} {
		t.Fatalf("got %+v", r)
	}
}

func TestRaycastPassesThroughWater(t *testing.T) {
	w := world.NewStore()
	w.Fill(0, 0, 0, 0, 3, 0, world.BlockTypeWater)
	w.Set(0, -1, 0, world.BlockTypeSand)

	r := physics.Raycast(mgl32.Vec3{0.5, 5.5, 0.5}, mgl32.Vec3{0, -1, 0}, physics.MinReachDistance, physics.MaxReachDistance, w)
	if !r.Hit || r.HitPosition != [3]int{0, -1, 0} {
		t.Fatalf("got %+v, want sand under the water", r)
	}
}
