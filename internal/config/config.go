// Package config provides YAML-based configuration loading and difficulty
// presets for the zigzag runner.
package config

import "fmt"

// ZigzagConfig holds every numeric constant of the simulation.
// It is supplied once when a game is created and never mutated during a run.
type ZigzagConfig struct {
	Level   LevelConfig   `yaml:"level" json:"level" jsonschema:"description=Tile path geometry and timing"`
	Sphere  SphereConfig  `yaml:"sphere" json:"sphere" jsonschema:"description=Player sphere kinematics"`
	Gems    GemConfig     `yaml:"gems" json:"gems" jsonschema:"description=Collectible gems"`
	Physics PhysicsConfig `yaml:"physics" json:"physics"`
	Camera  CameraConfig  `yaml:"camera" json:"camera" jsonschema:"description=Fixed camera offsets from the sphere"`
	Scoring ScoringConfig `yaml:"scoring" json:"scoring"`
}

// LevelConfig defines the tile grid and path generation.
type LevelConfig struct {
	TileSize       float64 `yaml:"tile_size" json:"tile_size" jsonschema:"exclusiveMinimum=0,description=Length and width of a tile"`
	TileDepth      float64 `yaml:"tile_depth" json:"tile_depth" jsonschema:"exclusiveMinimum=0,description=Height of a tile"`
	PlatformWidth  int     `yaml:"platform_width" json:"platform_width" jsonschema:"minimum=1"`
	PlatformLength int     `yaml:"platform_length" json:"platform_length" jsonschema:"minimum=1"`
	Lookahead      float64 `yaml:"lookahead" json:"lookahead" jsonschema:"exclusiveMinimum=0,description=Minimum sphere-to-frontier distance"`
	FallDelay      float64 `yaml:"fall_delay" json:"fall_delay" jsonschema:"minimum=0,description=Seconds without contact before a tile falls"`
	RemovalY       float64 `yaml:"removal_y" json:"removal_y" jsonschema:"description=Objects below this height are removed"`
	MaxDivergence  int     `yaml:"max_divergence" json:"max_divergence" jsonschema:"minimum=1"`
}

// SphereConfig defines the player sphere.
type SphereConfig struct {
	Radius         float64 `yaml:"radius" json:"radius" jsonschema:"exclusiveMinimum=0"`
	InitialSpeed   float64 `yaml:"initial_speed" json:"initial_speed" jsonschema:"minimum=0"`
	SpeedIncrement float64 `yaml:"speed_increment" json:"speed_increment" jsonschema:"minimum=0,description=Speed gained per second of play"`
	MaxSpeed       float64 `yaml:"max_speed" json:"max_speed" jsonschema:"minimum=0,description=Speed cap; 0 disables the cap"`
}

// GemConfig defines gem spawning and scoring.
type GemConfig struct {
	Radius           float64 `yaml:"radius" json:"radius" jsonschema:"exclusiveMinimum=0"`
	SpawnProbability float64 `yaml:"spawn_probability" json:"spawn_probability" jsonschema:"minimum=0,maximum=1"`
	Points           int     `yaml:"points" json:"points" jsonschema:"minimum=0"`
	FallFactor       float64 `yaml:"fall_factor" json:"fall_factor" jsonschema:"minimum=0,description=Fraction of gravity applied to gems on falling tiles"`
}

// Height returns the vertical extent of the gem above its anchor.
func (g GemConfig) Height() float64 {
	return g.Radius * 1.5
}

// PhysicsConfig defines world physics.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity" json:"gravity" jsonschema:"exclusiveMinimum=0"`
}

// CameraConfig defines the camera offsets relative to the sphere.
type CameraConfig struct {
	OffsetX float64 `yaml:"offset_x" json:"offset_x"`
	OffsetY float64 `yaml:"offset_y" json:"offset_y"`
	OffsetZ float64 `yaml:"offset_z" json:"offset_z"`
}

// ScoringConfig defines points awarded outside of gem pickup.
type ScoringConfig struct {
	TapPoints int `yaml:"tap_points" json:"tap_points" jsonschema:"minimum=0,description=Points per honored direction change"`
}

// PlatformTileCount returns the number of tiles in the initial platform batch.
func (c ZigzagConfig) PlatformTileCount() int {
	return c.Level.PlatformWidth * c.Level.PlatformLength
}

// GemHeightOffset returns the gem's height above its tile center.
func (c ZigzagConfig) GemHeightOffset() float64 {
	return c.Level.TileDepth/2 + c.Gems.Height()
}

// Validate reports the first configuration value that would make the
// simulation ill-formed.
func (c ZigzagConfig) Validate() error {
	switch {
	case c.Level.TileSize <= 0:
		return fmt.Errorf("config: level.tile_size must be positive, got %g", c.Level.TileSize)
	case c.Level.TileDepth <= 0:
		return fmt.Errorf("config: level.tile_depth must be positive, got %g", c.Level.TileDepth)
	case c.Level.PlatformWidth < 1 || c.Level.PlatformLength < 1:
		return fmt.Errorf("config: platform must be at least 1x1, got %dx%d",
			c.Level.PlatformWidth, c.Level.PlatformLength)
	case c.Level.Lookahead <= 0:
		return fmt.Errorf("config: level.lookahead must be positive, got %g", c.Level.Lookahead)
	case c.Level.FallDelay < 0:
		return fmt.Errorf("config: level.fall_delay must not be negative, got %g", c.Level.FallDelay)
	case c.Level.MaxDivergence < 1:
		return fmt.Errorf("config: level.max_divergence must be at least 1, got %d", c.Level.MaxDivergence)
	case c.Sphere.Radius <= 0:
		return fmt.Errorf("config: sphere.radius must be positive, got %g", c.Sphere.Radius)
	case c.Sphere.InitialSpeed < 0 || c.Sphere.SpeedIncrement < 0 || c.Sphere.MaxSpeed < 0:
		return fmt.Errorf("config: sphere speeds must not be negative")
	case c.Sphere.MaxSpeed > 0 && c.Sphere.MaxSpeed < c.Sphere.InitialSpeed:
		return fmt.Errorf("config: sphere.max_speed %g is below sphere.initial_speed %g",
			c.Sphere.MaxSpeed, c.Sphere.InitialSpeed)
	case c.Gems.Radius <= 0:
		return fmt.Errorf("config: gems.radius must be positive, got %g", c.Gems.Radius)
	case c.Gems.SpawnProbability < 0 || c.Gems.SpawnProbability > 1:
		return fmt.Errorf("config: gems.spawn_probability must be within [0, 1], got %g", c.Gems.SpawnProbability)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("config: physics.gravity must be positive, got %g", c.Physics.Gravity)
	}
	return nil
}
