package softgl

import (
	"math"
	"testing"
)

func TestMat4MulIdentity(t *testing.T) {
	a := Mat4Identity()
	b := Mat4Translate(V3(1, 2, 3))
	got := Mat4Mul(a, b)
	if got != b {
		t.Fatalf("identity*a mismatch")
	}
	got2 := Mat4Mul(b, a)
	if got2 != b {
		t.Fatalf("a*identity mismatch")
	}
}

func TestLookAtNotIdentity(t *testing.T) {
	m := Mat4LookAt(V3(0, 0, 3), V3(0, 0, 0), V3(0, 1, 0))
	if m == Mat4Identity() {
		t.Fatalf("lookAt unexpectedly identity")
	}
}

func TestRotateZQuarterTurn(t *testing.T) {
	got := Mat4RotateZ(math.Pi / 2).MulPoint(V3(1, 0, 0))
	if !near(got, V3(0, 1, 0), 1e-6) {
		t.Fatalf("rotateZ(90°)·x = %+v, want +y", got)
	}
}

func TestMeshModelAppliesScaleThenRotationThenTranslation(t *testing.T) {
	m := NewMesh("m", nil, nil)
	m.SetScale(2)
	m.Rotation.Base.Z = math.Pi / 4
	m.Rotation.Transient.Z = math.Pi / 4
	m.Position = V3(10, 0, 0)

	got := m.Model().MulPoint(V3(1, 0, 0))
	if !near(got, V3(10, 2, 0), 1e-5) {
		t.Fatalf("model·x = %+v, want (10,2,0)", got)
	}
}

func TestCameraWorldPositionFollowsParent(t *testing.T) {
	rig := &Group{Position: V3(0.1, -0.2, 0)}
	cam := NewPerspectiveCamera(35, 1, 0.1, 100)
	cam.Position = V3(0, -3, 5)
	cam.Parent = rig

	if got := cam.WorldPosition(); !near(got, V3(0.1, -3.2, 5), 1e-6) {
		t.Fatalf("world position = %+v", got)
	}
}

func near(a, b Vec3, eps float32) bool {
	return absF32(a.X-b.X) < eps && absF32(a.Y-b.Y) < eps && absF32(a.Z-b.Z) < eps
}
