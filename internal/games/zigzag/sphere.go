package zigzag

import (
	"github.com/vovakirdan/zigzag/internal/config"
	"github.com/vovakirdan/zigzag/internal/core"
)

// Sphere is the player body.
// A direction change is queued on target and copied into current at the
// start of the next Step, never in the middle of one.
type Sphere struct {
	Position core.Vec3
	Velocity core.Vec3
	Speed    float64

	current Direction
	target  Direction
}

// NewSphere places a sphere at rest on top of the origin tile.
func NewSphere(cfg *config.ZigzagConfig) Sphere {
	return Sphere{
		Position: core.V3(0, cfg.Sphere.Radius, 0),
		Speed:    cfg.Sphere.InitialSpeed,
		current:  DirForward,
		target:   DirForward,
	}
}

// Direction returns the direction of the last step.
func (s *Sphere) Direction() Direction {
	return s.current
}

// Target returns the direction the next step will take.
func (s *Sphere) Target() Direction {
	return s.target
}

// QueueAdvance moves the target to the next direction in the cycle.
func (s *Sphere) QueueAdvance() {
	s.target = s.target.Next()
}

// Step advances the sphere along its direction and accelerates it.
func (s *Sphere) Step(cfg *config.ZigzagConfig, dt float64) {
	s.current = s.target

	move := s.current.Vec().Scale(s.Speed * dt)
	s.Position = s.Position.Add(move)
	if dt > 0 {
		s.Velocity = move.Scale(1 / dt)
	}

	s.Speed += cfg.Sphere.SpeedIncrement * dt
	if cfg.Sphere.MaxSpeed > 0 {
		s.Speed = core.ClampF(s.Speed, 0, cfg.Sphere.MaxSpeed)
	}
}

// Fall integrates free fall from the sphere's last velocity. The sphere stops
// updating once it is below the removal height.
func (s *Sphere) Fall(cfg *config.ZigzagConfig, dt float64) {
	if s.Position.Y < cfg.Level.RemovalY {
		return
	}
	s.Velocity.Y -= cfg.Physics.Gravity * dt
	s.Position = s.Position.AddScaled(s.Velocity, dt)
}
