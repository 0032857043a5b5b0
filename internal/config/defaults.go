package config

import (
	_ "embed"
)

//go:embed defaults/zigzag.yaml
var defaultZigzagYAML []byte

// DefaultZigzagConfig returns the built-in configuration.
// It mirrors defaults/zigzag.yaml and is the last fallback when no YAML parses.
func DefaultZigzagConfig() ZigzagConfig {
	return ZigzagConfig{
		Level: LevelConfig{
			TileSize:       1.35,
			TileDepth:      4,
			PlatformWidth:  8,
			PlatformLength: 8,
			Lookahead:      40,
			FallDelay:      0.75,
			RemovalY:       -40,
			MaxDivergence:  3,
		},
		Sphere: SphereConfig{
			Radius:         0.26,
			InitialSpeed:   6,
			SpeedIncrement: 0.0125,
			MaxSpeed:       0, // uncapped
		},
		Gems: GemConfig{
			Radius:           0.35,
			SpawnProbability: 0.2,
			Points:           1,
			FallFactor:       0.9,
		},
		Physics: PhysicsConfig{
			Gravity: 16,
		},
		Camera: CameraConfig{
			OffsetX: 19.05,
			OffsetY: 12,
			OffsetZ: 15,
		},
		Scoring: ScoringConfig{
			TapPoints: 1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultZigzagYAML
}
