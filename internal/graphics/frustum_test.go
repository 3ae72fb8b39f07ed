package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func lookingDownNegativeZ() Frustum {
	c := NewCamera(800, 800)
	return NewFrustum(c.ViewProjection(), 1)
}

func TestFrustumAcceptsBoxInFront(t *testing.T) {
	f := lookingDownNegativeZ()
	if !f.IntersectsAABB(mgl32.Vec3{0, 0, -80}, mgl32.Vec3{16, 16, -64}) {
		t.Fatalf("box in front of the camera was culled")
	}
}

func TestFrustumRejectsBoxBehind(t *testing.T) {
	f := lookingDownNegativeZ()
	if f.IntersectsAABB(mgl32.Vec3{0, 0, 64}, mgl32.Vec3{16, 16, 80}) {
		t.Fatalf("box behind the camera was not culled")
	}
}

func TestFrustumRejectsBoxOutsideSides(t *testing.T) {
	f := lookingDownNegativeZ()
	if f.IntersectsAABB(mgl32.Vec3{1000, 0, -80}, mgl32.Vec3{1016, 16, -64}) {
		t.Errorf("box far to the right was not culled")
	}
	if f.IntersectsAABB(mgl32.Vec3{0, 0, -3016}, mgl32.Vec3{16, 16, -3000}) {
		t.Errorf("box beyond the far plane was not culled")
	}
}

func TestFrustumAcceptsBoxContainingCamera(t *testing.T) {
	f := lookingDownNegativeZ()
	if !f.IntersectsAABB(mgl32.Vec3{-8, -8, -8}, mgl32.Vec3{8, 8, 8}) {
		t.Fatalf("box around the camera was culled")
	}
}

func TestFrustumOrthoSeesEverythingInside(t *testing.T) {
	f := NewFrustum(mgl32.Ortho(-100, 100, -100, 100, -100, 100), 1)
	if !f.IntersectsAABB(mgl32.Vec3{16, 16, 16}, mgl32.Vec3{32, 32, 32}) {
		t.Errorf("box inside ortho volume was culled")
	}
	if f.IntersectsAABB(mgl32.Vec3{200, 0, 0}, mgl32.Vec3{216, 16, 16}) {
		t.Errorf("box outside ortho volume was not culled")
	}
}

func TestFrustumMarginIsPerFrustum(t *testing.T) {
	clip := mgl32.Ortho(-100, 100, -100, 100, -100, 100)
	min, max := mgl32.Vec3{100.5, 0, 0}, mgl32.Vec3{116, 16, 16}
	if NewFrustum(clip, 0).IntersectsAABB(min, max) {
		t.Errorf("box outside the volume passed without a margin")
	}
	if !NewFrustum(clip, 1).IntersectsAABB(min, max) {
		t.Errorf("box within the margin was culled")
	}
}

func TestCameraFrontAndRight(t *testing.T) {
	c := NewCamera(4, 3)
	if !c.Front().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("default front = %v, want -Z", c.Front())
	}
	if !c.Right().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("default right = %v, want +X", c.Right())
	}
	c.Rotate(90, 200)
	if c.Pitch != 89 {
		t.Errorf("pitch not clamped: %v", c.Pitch)
	}
}

func TestVertexFormatValidate(t *testing.T) {
	f := VertexFormat{Attributes: []Attribute{{"position", 3}, {"normal", 3}}}
	if err := f.Validate(); err != nil {
		t.Fatalf("valid format rejected: %v", err)
	}
	if f.Stride() != 6 {
		t.Errorf("Stride = %d, want 6", f.Stride())
	}
	if err := (VertexFormat{}).Validate(); err == nil {
		t.Errorf("empty format accepted")
	}
	if err := (VertexFormat{Attributes: []Attribute{{"bad", 5}}}).Validate(); err == nil {
		t.Errorf("oversized attribute accepted")
	}
}
