package motion

// scan probes all six directions from the pre-movement pose. Results are
// consumed by the integrators in the same tick.
func (c *Controller) scan() {
	pos := c.env.Transform.Position()
	orientation := c.env.Transform.Orientation()
	rot := orientation.Quat()
	basis := c.env.Transform.Basis()

	probe := func(d Direction, accept func(Hit) bool) bool {
		dir := d.Vector(basis)
		for _, offset := range c.cfg.Probes[d] {
			origin := pos.Add(rot.Rotate(offset))
			hit, ok := c.env.Prober.Cast(origin, dir, c.cfg.ProbeDistance)
			if !ok {
				continue
			}
			if accept == nil || accept(hit) {
				return true
			}
		}
		return false
	}

	c.scanCeiling(probe)
	c.scanGround(probe)

	for d := Forward; d <= Right; d++ {
		c.state.Permissions[d] = !probe(d, nil)
	}
}

type probeFunc func(d Direction, accept func(Hit) bool) bool

func (c *Controller) scanCeiling(probe probeFunc) {
	if c.state.Phase == Descending {
		return
	}
	if !probe(Up, nil) {
		return
	}
	c.state.VerticalVelocity = 0
	c.setPhase(Descending)
}

func (c *Controller) scanGround(probe probeFunc) {
	if c.state.Phase == Ascending {
		return
	}

	ground := c.cfg.GroundCategory
	c.state.Grounded = false
	if !probe(Down, func(h Hit) bool { return h.Category == ground }) {
		c.setPhase(Descending)
		return
	}

	c.state.Grounded = true
	c.state.JumpsRemaining = c.cfg.MaxJumps
	c.state.VerticalVelocity = 0
	c.setPhase(Grounded)
}
