package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/skyhop/shared/movement"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is wrapped by every tuning validation failure.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning is the YAML schema for gameplay overrides. Keys left out of the
// file keep their current values.
type Tuning struct {
	Movement movement.Tuning `yaml:"movement"`
	Player   PlayerConfig    `yaml:"player"`
	Physics  PhysicsConfig   `yaml:"physics"`
}

// CurrentTuning snapshots the live globals.
func CurrentTuning() Tuning {
	return Tuning{
		Movement: Movement,
		Player:   Player,
		Physics:  Physics,
	}
}

// ApplyTuning replaces the live globals.
func ApplyTuning(t Tuning) {
	Movement = t.Movement
	Player = t.Player
	Physics = t.Physics
}

// ParseTuning overlays data onto base and validates the result.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// LoadTuning reads a tuning file on top of the current globals.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CurrentTuning(), fmt.Errorf("read tuning %s: %w", path, err)
	}
	return ParseTuning(data, CurrentTuning())
}

// ReloadTuning parses data on top of the live globals and applies it. It
// must run on the goroutine that owns the globals; a bad file leaves them
// untouched.
func ReloadTuning(data []byte) (Tuning, error) {
	t, err := ParseTuning(data, CurrentTuning())
	if err != nil {
		return t, err
	}
	ApplyTuning(t)
	return t, nil
}

func (t Tuning) Validate() error {
	m := t.Movement
	switch {
	case m.Jump.BaseJumpForce <= 0:
		return fmt.Errorf("%w: base_jump_force must be positive", ErrInvalidTuning)
	case m.Limits.CoyoteMs < 0 || m.Limits.JumpBufferMs < 0 || m.Limits.WallCoyoteMs < 0:
		return fmt.Errorf("%w: grace windows must not be negative", ErrInvalidTuning)
	case m.Limits.MaxWallJumps < 0:
		return fmt.Errorf("%w: max_wall_jumps must not be negative", ErrInvalidTuning)
	case m.Jump.SideThreshold < 0 || m.Jump.SideThreshold >= 1:
		return fmt.Errorf("%w: side_threshold must be in [0,1)", ErrInvalidTuning)
	case t.Physics.CellSize <= 0:
		return fmt.Errorf("%w: cell_size must be positive", ErrInvalidTuning)
	case t.Player.CollisionWidth <= 0 || t.Player.CollisionHeight <= 0:
		return fmt.Errorf("%w: player collision size must be positive", ErrInvalidTuning)
	}
	return nil
}
