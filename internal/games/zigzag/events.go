package zigzag

import "github.com/vovakirdan/zigzag/internal/core"

// FloatingScoreLabel is the text shown when a gem is collected.
const FloatingScoreLabel = "+1"

// FloatingScore is a transient "points gained" marker.
// The renderer calls Complete once its animation finishes; the controller
// then forgets the event.
type FloatingScore struct {
	ID       int
	Position core.Vec3
	Label    string

	done func()
}

// Complete reports that the renderer is finished with the event.
// Calling it more than once, or after a restart, has no effect.
func (f FloatingScore) Complete() {
	if f.done != nil {
		f.done()
	}
}
