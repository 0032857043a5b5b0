package zigzag

import (
	"testing"

	"github.com/vovakirdan/zigzag/internal/config"
	"github.com/vovakirdan/zigzag/internal/core"
)

func TestSphereQueuedAdvanceAppliesOnNextStep(t *testing.T) {
	cfg := config.DefaultZigzagConfig()
	s := NewSphere(&cfg)

	s.QueueAdvance()
	if s.Direction() != DirForward {
		t.Fatal("queued change must not apply before the next step")
	}
	if s.Target() != DirRight {
		t.Fatal("target should be the next direction in the cycle")
	}

	dt := 0.1
	speed := s.Speed
	s.Step(&cfg, dt)

	if s.Direction() != DirRight {
		t.Errorf("direction = %v, expected +X after the step", s.Direction())
	}
	want := core.V3(speed*dt, cfg.Sphere.Radius, 0)
	if !nearVec(s.Position, want) {
		t.Errorf("position = %+v, expected %+v", s.Position, want)
	}
	if !nearVec(s.Velocity, core.V3(speed, 0, 0)) {
		t.Errorf("velocity = %+v, expected %g along +X", s.Velocity, speed)
	}
}

func TestSphereSpeedGrowsAndCaps(t *testing.T) {
	tests := []struct {
		name string
		max  float64
		want float64
	}{
		{"uncapped", 0, 6 + 0.0125*10},
		{"capped", 6.05, 6.05},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultZigzagConfig()
			cfg.Sphere.MaxSpeed = tc.max
			s := NewSphere(&cfg)
			for i := 0; i < 100; i++ {
				s.Step(&cfg, 0.1)
			}
			if !near(s.Speed, tc.want) {
				t.Errorf("speed = %g, expected %g", s.Speed, tc.want)
			}
		})
	}
}

func TestSphereFallStopsBelowRemoval(t *testing.T) {
	cfg := config.DefaultZigzagConfig()
	s := NewSphere(&cfg)
	s.Velocity = core.V3(0, 0, -6)

	s.Fall(&cfg, 0.1)
	if s.Position.Y >= cfg.Sphere.Radius {
		t.Error("sphere should start dropping")
	}
	if s.Position.Z >= 0 {
		t.Error("sphere should keep its horizontal momentum")
	}

	for i := 0; i < 1000; i++ {
		s.Fall(&cfg, 0.1)
	}
	frozen := s.Position
	s.Fall(&cfg, 0.1)
	if s.Position != frozen {
		t.Error("sphere below the removal height should stop updating")
	}
	if frozen.Y >= cfg.Level.RemovalY {
		t.Errorf("sphere stopped at y=%g, above the removal height", frozen.Y)
	}
}

func TestCameraFollow(t *testing.T) {
	cfg := config.DefaultZigzagConfig()
	cam := Follow(core.V3(1, 0.26, -2), cfg.Camera)

	want := core.V3(1-19.05, 0.26+12, -2+15)
	if !nearVec(cam.Position, want) {
		t.Errorf("camera at %+v, expected %+v", cam.Position, want)
	}
	if cam.Target != core.V3(1, 0.26, -2) {
		t.Error("camera should look at the sphere")
	}
}
