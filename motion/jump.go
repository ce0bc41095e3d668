package motion

// triggerJump consumes the jump edge. A jump is allowed mid-air as long as
// a charge remains.
func (c *Controller) triggerJump() {
	if !c.CanJump() {
		return
	}
	if !c.env.Input.WasPressed(Jump) {
		return
	}

	c.state.JumpsRemaining--
	c.state.VerticalVelocity = c.cfg.InitialJumpVelocity
	c.setPhase(Ascending)
}
