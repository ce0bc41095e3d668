package motion

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrInvalidConfig       = errors.New("motion: invalid config")
	ErrMissingCollaborator = errors.New("motion: missing collaborator")
)

// Default tuning, matching the values the controller shipped with.
const (
	DefaultMovementSpeed        float32 = 3
	DefaultRotationSpeed        float32 = 135
	DefaultInitialJumpVelocity  float32 = 100
	DefaultTerminalFallVelocity float32 = -200
	DefaultGravity              float32 = -9.81
	DefaultMaxJumps                     = 2
	DefaultProbeDistance        float32 = 0.15
)

// Config is the immutable per-entity tuning of a Controller.
type Config struct {
	MovementSpeed float32
	// RotationSpeed is in degrees per second.
	RotationSpeed       float32
	InitialJumpVelocity float32
	// TerminalFallVelocity is the most negative vertical velocity reachable by falling.
	TerminalFallVelocity float32
	Gravity              float32
	MaxJumps             int
	ProbeDistance        float32
	GroundCategory       Category
	// Probes lists entity-relative ray origins per direction. An empty list
	// means the direction is never blocked.
	Probes [DirectionCount][]mgl32.Vec3
}

func DefaultConfig() Config {
	return Config{
		MovementSpeed:        DefaultMovementSpeed,
		RotationSpeed:        DefaultRotationSpeed,
		InitialJumpVelocity:  DefaultInitialJumpVelocity,
		TerminalFallVelocity: DefaultTerminalFallVelocity,
		Gravity:              DefaultGravity,
		MaxJumps:             DefaultMaxJumps,
		ProbeDistance:        DefaultProbeDistance,
	}
}

func (c Config) Validate() error {
	for _, f := range []struct {
		name  string
		value float32
	}{
		{"movement speed", c.MovementSpeed},
		{"rotation speed", c.RotationSpeed},
		{"initial jump velocity", c.InitialJumpVelocity},
		{"terminal fall velocity", c.TerminalFallVelocity},
		{"gravity", c.Gravity},
		{"probe distance", c.ProbeDistance},
	} {
		if math.IsNaN(float64(f.value)) || math.IsInf(float64(f.value), 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidConfig, f.name)
		}
	}

	switch {
	case c.MovementSpeed < 0:
		return fmt.Errorf("%w: movement speed %v is negative", ErrInvalidConfig, c.MovementSpeed)
	case c.RotationSpeed < 0:
		return fmt.Errorf("%w: rotation speed %v is negative", ErrInvalidConfig, c.RotationSpeed)
	case c.InitialJumpVelocity < 0:
		return fmt.Errorf("%w: initial jump velocity %v is negative", ErrInvalidConfig, c.InitialJumpVelocity)
	case c.TerminalFallVelocity > 0:
		return fmt.Errorf("%w: terminal fall velocity %v must not be positive", ErrInvalidConfig, c.TerminalFallVelocity)
	case c.Gravity > 0:
		return fmt.Errorf("%w: gravity %v must not be positive", ErrInvalidConfig, c.Gravity)
	case c.MaxJumps < 0:
		return fmt.Errorf("%w: max jumps %d is negative", ErrInvalidConfig, c.MaxJumps)
	case c.ProbeDistance <= 0:
		return fmt.Errorf("%w: probe distance %v must be positive", ErrInvalidConfig, c.ProbeDistance)
	}
	return nil
}
