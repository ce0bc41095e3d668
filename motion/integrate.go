package motion

import "github.com/go-gl/mathgl/mgl32"

// integrateVertical runs exactly one branch, chosen by the phase on entry.
func (c *Controller) integrateVertical(dt float32) {
	switch c.state.Phase {
	case Ascending:
		c.displaceVertically(c.state.VerticalVelocity * dt)
		c.state.VerticalVelocity += c.cfg.Gravity * dt
		if c.state.VerticalVelocity <= 0 {
			c.setPhase(Descending)
		}

	case Descending:
		terminal := c.cfg.TerminalFallVelocity
		c.displaceVertically(c.state.VerticalVelocity * dt)
		if c.state.VerticalVelocity <= terminal {
			return
		}
		c.state.VerticalVelocity += c.cfg.Gravity * dt
		if c.state.VerticalVelocity < terminal {
			c.state.VerticalVelocity = terminal
		}
	}
}

func (c *Controller) displaceVertically(dy float32) {
	if dy == 0 {
		return
	}
	c.env.Transform.SetPosition(c.env.Transform.Position().Add(WorldUp.Mul(dy)))
}

// integrateHorizontal nudges the position directly; there is no horizontal
// velocity. Opposite inputs on the same axis cancel.
func (c *Controller) integrateHorizontal(dt float32) {
	step := c.cfg.MovementSpeed * dt
	var local mgl32.Vec2 // x: right, y: forward

	if c.moving(Forward, MoveForward) {
		local[1] += step
	}
	if c.moving(Backward, MoveBackward) {
		local[1] -= step
	}
	if c.moving(Left, MoveLeft) {
		local[0] -= step
	}
	if c.moving(Right, MoveRight) {
		local[0] += step
	}

	if local[0] == 0 && local[1] == 0 {
		return
	}

	basis := c.env.Transform.Basis()
	delta := basis.Right.Mul(local[0]).Add(basis.Forward.Mul(local[1]))
	c.env.Transform.SetPosition(c.env.Transform.Position().Add(delta))
}

func (c *Controller) moving(d Direction, a Action) bool {
	return c.state.Permissions.Allowed(d) && c.env.Input.IsHeld(a)
}

// integrateRotation applies yaw only; pitch and roll are written back untouched.
func (c *Controller) integrateRotation(dt float32) {
	left := c.env.Input.IsHeld(TurnLeft)
	right := c.env.Input.IsHeld(TurnRight)
	if !left && !right {
		return
	}

	o := c.env.Transform.Orientation()
	if left {
		o.Yaw += c.cfg.RotationSpeed * dt
	}
	if right {
		o.Yaw -= c.cfg.RotationSpeed * dt
	}
	o.Yaw = NormalizeDegrees(o.Yaw)
	c.env.Transform.SetOrientation(o)
}
