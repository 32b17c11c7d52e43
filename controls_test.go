package pandagl

import (
	"math"
	"testing"
)

func TestOrbitApplyPlacesCamera(t *testing.T) {
	c := OrbitController{Target: V3(1, 2, 3), Radius: 5}
	var cam Camera
	c.Apply(&cam)

	if want := V3(1, 2, 8); !vec3Near(cam.Position, want, eps) {
		t.Errorf("Position = %v, want %v", cam.Position, want)
	}
	if cam.Target != V3(1, 2, 3) {
		t.Errorf("Target = %v, want controller target", cam.Target)
	}
	if cam.Up != V3(0, 1, 0) {
		t.Errorf("Up = %v, want +Y default", cam.Up)
	}
}

func TestOrbitApplyKeepsExplicitUp(t *testing.T) {
	c := OrbitController{Radius: 3}
	cam := Camera{Up: V3(0, 0, 1)}
	c.Apply(&cam)
	if cam.Up != V3(0, 0, 1) {
		t.Fatalf("Up = %v, want caller's up kept", cam.Up)
	}
}

// Yaw and pitch move the camera on a sphere: the distance to the target
// stays the radius.
func TestOrbitApplyPreservesDistance(t *testing.T) {
	c := OrbitController{Yaw: 0.7, Pitch: 0.3, Radius: 4}
	var cam Camera
	c.Apply(&cam)

	d := Len(cam.Position.Sub(cam.Target))
	if math.Abs(float64(d-4)) > 1e-3 {
		t.Fatalf("camera distance = %v, want 4", d)
	}
}

func TestOrbitApplyDefaultRadius(t *testing.T) {
	var c OrbitController
	var cam Camera
	c.Apply(&cam)

	d := Len(cam.Position.Sub(cam.Target))
	if math.Abs(float64(d-3)) > 1e-3 {
		t.Fatalf("camera distance = %v, want default 3", d)
	}
}

func TestOrbitZoomClamps(t *testing.T) {
	c := OrbitController{Radius: 5, MinRadius: 2, MaxRadius: 12}

	c.Zoom(-100)
	if c.Radius != 2 {
		t.Errorf("Radius after zoom in = %v, want clamped 2", c.Radius)
	}
	c.Zoom(100)
	if c.Radius != 12 {
		t.Errorf("Radius after zoom out = %v, want clamped 12", c.Radius)
	}
}

func TestOrbitRotateAccumulates(t *testing.T) {
	var c OrbitController
	c.Rotate(0.1, 0.2)
	c.Rotate(0.1, 0.2)

	if c.Yaw != 0.2 || c.Pitch != 0.4 {
		t.Fatalf("Yaw/Pitch = %v/%v, want 0.2/0.4", c.Yaw, c.Pitch)
	}
}

func TestOrbitApplyNilCamera(t *testing.T) {
	c := OrbitController{Radius: 3}
	c.Apply(nil) // must not panic
}
