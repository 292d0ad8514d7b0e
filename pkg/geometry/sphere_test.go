package geometry

import (
	"math"
	"testing"

	"github.com/kaelstrom/go-pathtracer/pkg/core"
)

func mustSphere(t *testing.T, center core.Vec3, radius float64) *Sphere {
	t.Helper()
	s, err := NewSphere(center, radius, nil)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	return s
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1.0)
	ray, _ := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if _, isHit := sphere.Hit(ray, 0.001, 1000.0); isHit {
		t.Error("expected miss")
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name        string
		origin, dir core.Vec3
		wantT       float64
		wantFront   bool
		wantNormal  core.Vec3
	}{
		{
			name:       "front face hit",
			origin:     core.NewVec3(0, 0, 2),
			dir:        core.NewVec3(0, 0, -1),
			wantT:      1.0,
			wantFront:  true,
			wantNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:       "back face hit",
			origin:     core.NewVec3(0, 0, 0),
			dir:        core.NewVec3(0, 0, 1),
			wantT:      1.0,
			wantFront:  false,
			wantNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray, _ := core.NewRay(tt.origin, tt.dir)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
			if !isHit {
				t.Fatal("expected hit")
			}
			if math.Abs(hit.T-tt.wantT) > 1e-9 {
				t.Errorf("T = %v, want %v", hit.T, tt.wantT)
			}
			if hit.FrontFace != tt.wantFront {
				t.Errorf("FrontFace = %v, want %v", hit.FrontFace, tt.wantFront)
			}
			if hit.Normal != tt.wantNormal {
				t.Errorf("Normal = %v, want %v", hit.Normal, tt.wantNormal)
			}
			if math.Abs(hit.Normal.Length()-1) > 1e-9 {
				t.Errorf("normal is not unit length: %v", hit.Normal.Length())
			}
		})
	}
}

func TestSphere_NegativeRadius_InvertsNormal(t *testing.T) {
	hollow := mustSphere(t, core.NewVec3(0, 0, 0), -1.0)
	ray, _ := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := hollow.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("expected hit")
	}
	// A positive-radius sphere's outward normal at this point is (0,0,1);
	// the negative radius inverts it to (0,0,-1), so the incoming ray is
	// classified as a back-face hit. The stored normal still opposes the
	// ray, so it is (0,0,1).
	if hit.FrontFace {
		t.Error("FrontFace = true, want false for an inverted outward normal")
	}
	if hit.Normal != core.NewVec3(0, 0, 1) {
		t.Errorf("Normal = %v, want (0,0,1)", hit.Normal)
	}
}

func TestNewSphere_RejectsZeroRadius(t *testing.T) {
	if _, err := NewSphere(core.NewVec3(0, 0, 0), 0, nil); err == nil {
		t.Error("expected error for zero radius")
	}
}

func TestSphere_IntervalBounds(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1.0)
	ray, _ := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Hit is at t=1; tightening tMax below it should miss.
	if _, isHit := sphere.Hit(ray, 0.001, 0.5); isHit {
		t.Error("expected miss when tMax excludes the hit")
	}
	// tMin above the near root (t=1) excludes it; the far root at t=3 is
	// returned instead.
	hit, isHit := sphere.Hit(ray, 1.5, 1000.0)
	if !isHit {
		t.Fatal("expected the far root when tMin excludes the near one")
	}
	if math.Abs(hit.T-3) > 1e-9 {
		t.Errorf("T = %v, want 3 (far root)", hit.T)
	}
}
