package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings return "" and
// leave the loaded config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// presetScale holds multipliers applied on top of the loaded config.
type presetScale struct {
	speed     float64
	increment float64
	fallDelay float64
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {speed: 0.8, increment: 0.5, fallDelay: 1.5},
	DifficultyNormal: {speed: 1, increment: 1, fallDelay: 1},
	DifficultyHard:   {speed: 1.25, increment: 2, fallDelay: 0.6},
}

// ApplyZigzagPreset modifies the config based on a difficulty preset.
// Fixed keeps the starting speed and disables acceleration.
func ApplyZigzagPreset(cfg *ZigzagConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Sphere.SpeedIncrement = 0
		return
	}
	scale, ok := presetScales[preset]
	if !ok {
		return
	}
	cfg.Sphere.InitialSpeed *= scale.speed
	cfg.Sphere.MaxSpeed *= scale.speed
	cfg.Sphere.SpeedIncrement *= scale.increment
	cfg.Level.FallDelay *= scale.fallDelay
}
