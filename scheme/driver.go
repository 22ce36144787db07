package scheme

// DriftFunc advances the simulation by a signed drift segment at the
// given shell.
type DriftFunc func(shell int, a float64) error

// KickFunc applies an acceleration-weighted (and optionally jerk-weighted)
// velocity kick at the given shell.
type KickFunc func(shell int, y, v float64) error

// Driver sequences a scheme's drift/kick coefficients around caller
// supplied DriftFunc/KickFunc callbacks. It holds no state of its own —
// every method is a pure function of its arguments — so a single Driver
// value is reused across every shell depth of a step.
type Driver struct{}

// NewDriver returns a ready-to-use Driver.
func NewDriver() *Driver {
	return &Driver{}
}

// Preprocessor applies the scheme's one-time corrector kick, if any, before
// the first Step of a (re-)synchronized run. Schemes with Processor==0 (the
// un-processed LF/LF4/LF6/LF8 kernels) make this a no-op.
func (d *Driver) Preprocessor(dt float64, shell int, id SchemeID, drift DriftFunc, kick KickFunc) error {
	c := CoeffsFor(id)
	if c.Processor == 0 {
		return nil
	}
	return kick(shell, dt*c.Processor, 0)
}

// Postprocessor undoes Preprocessor's corrector, bringing positions and
// velocities back to a canonical (unprocessed) state. Applying Preprocessor
// then Postprocessor with no intervening Step is therefore a no-op.
func (d *Driver) Postprocessor(dt float64, shell int, id SchemeID, drift DriftFunc, kick KickFunc) error {
	c := CoeffsFor(id)
	if c.Processor == 0 {
		return nil
	}
	return kick(shell, -dt*c.Processor, 0)
}

// Step runs one full pass of the scheme's alternating drift/kick
// coefficients, scaled by dt and the caller-supplied dCoeff/kCoeff (extra
// multipliers on every drift and kick; the callers in this module pass 1
// and carry the segment's sign and sub-step count in dt).
func (d *Driver) Step(dt, dCoeff, kCoeff float64, shell int, id SchemeID, drift DriftFunc, kick KickFunc) error {
	c := CoeffsFor(id)
	for i, dc := range c.Drift {
		if err := drift(shell, dt*dCoeff*dc); err != nil {
			return err
		}
		if i < len(c.Kick) {
			if err := kick(shell, dt*kCoeff*c.Kick[i], 0); err != nil {
				return err
			}
		}
	}
	return nil
}
