package zigzag

import (
	"github.com/vovakirdan/zigzag/internal/config"
	"github.com/vovakirdan/zigzag/internal/core"
)

// Camera is a placement for the rendering side.
type Camera struct {
	Position core.Vec3
	Target   core.Vec3
}

// Follow places the camera at fixed offsets from the sphere, looking at it.
func Follow(sphere core.Vec3, offsets config.CameraConfig) Camera {
	return Camera{
		Position: core.V3(sphere.X-offsets.OffsetX, sphere.Y+offsets.OffsetY, sphere.Z+offsets.OffsetZ),
		Target:   sphere,
	}
}
