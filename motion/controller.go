// Package motion resolves player input and environment probes into
// position and orientation updates, one fixed tick at a time.
package motion

import (
	"fmt"
	"math"
)

// State is the per-entity motion state owned by a Controller.
type State struct {
	VerticalVelocity float32
	JumpsRemaining   int
	Phase            Phase
	Permissions      Permissions
	Grounded         bool
}

// Controller advances one character. It is not safe for concurrent use;
// the host calls Tick once per simulation frame.
type Controller struct {
	cfg   Config
	env   Env
	state State
}

func NewController(cfg Config, env Env) (*Controller, error) {
	return NewControllerFrom(cfg, env, State{JumpsRemaining: cfg.MaxJumps, Phase: Grounded})
}

// NewControllerFrom builds a controller that continues from prev, e.g. after
// the configuration was reloaded. JumpsRemaining is clamped to the new
// MaxJumps.
func NewControllerFrom(cfg Config, env Env, prev State) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if env.Input == nil {
		return nil, fmt.Errorf("%w: input", ErrMissingCollaborator)
	}
	if env.Prober == nil {
		return nil, fmt.Errorf("%w: prober", ErrMissingCollaborator)
	}
	if env.Transform == nil {
		return nil, fmt.Errorf("%w: transform", ErrMissingCollaborator)
	}
	if env.Logger == nil {
		env.Logger = nopLogger{}
	}

	prev.JumpsRemaining = max(0, min(prev.JumpsRemaining, cfg.MaxJumps))
	if prev.Phase < Grounded || prev.Phase > Descending {
		prev.Phase = Descending
	}

	return &Controller{cfg: cfg, env: env, state: prev}, nil
}

func (c *Controller) Config() Config { return c.cfg }
func (c *Controller) State() State   { return c.state }
func (c *Controller) Env() Env       { return c.env }

func (c *Controller) IsGrounded() bool { return c.state.Grounded }

func (c *Controller) CanJump() bool { return c.state.JumpsRemaining > 0 }

// Tick advances the controller by dt seconds. Non-positive or non-finite
// dt values are ignored.
func (c *Controller) Tick(dt float32) {
	if dt <= 0 || math.IsNaN(float64(dt)) || math.IsInf(float64(dt), 0) {
		return
	}

	c.triggerJump()
	c.scan()
	c.integrateVertical(dt)
	c.integrateHorizontal(dt)
	c.integrateRotation(dt)
}

func (c *Controller) setPhase(p Phase) {
	if c.state.Phase == p {
		return
	}
	c.env.Logger.Debugf("motion: phase %s -> %s (vy=%.3f jumps=%d)", c.state.Phase, p, c.state.VerticalVelocity, c.state.JumpsRemaining)
	c.state.Phase = p
}
