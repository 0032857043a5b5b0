package core

// Action is a decoded input command. Pointer and keyboard events are mapped to
// an Action once at the platform boundary, so the simulation never sees raw
// device events.
type Action int

const (
	ActionNone             Action = iota
	ActionAdvanceDirection        // Click, Space, Enter - turn the sphere
	ActionStartOrRestart          // Click, Space, Enter outside of play
	ActionToggleSound             // M
	ActionTogglePerf              // P
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAdvanceDirection:
		return "AdvanceDirection"
	case ActionStartOrRestart:
		return "StartOrRestart"
	case ActionToggleSound:
		return "ToggleSound"
	case ActionTogglePerf:
		return "TogglePerf"
	default:
		return "Unknown"
	}
}

// InputFrame buffers the actions requested between two simulation ticks.
// Actions are kept in arrival order; two taps in one frame are two turns.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make([]Action, 0, 4)}
}

// Push appends an action. ActionNone is ignored.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was requested this frame.
func (f InputFrame) Has(a Action) bool {
	for _, x := range f.Actions {
		if x == a {
			return true
		}
	}
	return false
}

// Len returns the number of buffered actions.
func (f InputFrame) Len() int {
	return len(f.Actions)
}

// Clear drops all buffered actions, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Drain returns the buffered actions and clears the frame.
// The returned slice is a copy and safe to retain.
func (f *InputFrame) Drain() []Action {
	if len(f.Actions) == 0 {
		return nil
	}
	out := make([]Action, len(f.Actions))
	copy(out, f.Actions)
	f.Clear()
	return out
}
