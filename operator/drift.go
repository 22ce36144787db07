package operator

// Drift advances shell s by signed segment a: it predicts shell s+1's
// membership, advances every particle this shell owns in each of its
// three roles, and then either recurses into shell s+1 (if prediction
// populated it) or advances the simulation clock directly.
func Drift(ctx *Context, s int, a float64) error {
	if ctx.Interrupted != nil && ctx.Interrupted() {
		return ErrInterrupted
	}

	if err := ctx.Engine.Predict(ctx.State, s, a); err != nil {
		return err
	}

	advanceOwned(ctx, s, a)

	if s+1 >= ctx.Engine.Smax {
		ctx.State.T += a
		return nil
	}

	next := &ctx.Engine.Maps[s+1]
	if len(next.Dominant) == 0 && len(next.Encounter) == 0 {
		ctx.State.T += a
		return nil
	}

	if s+1 > ctx.ShellsUsed {
		ctx.ShellsUsed = s + 1
	}

	id := ctx.Phi1
	n := ctx.N1
	if s == 0 {
		n = ctx.N0
	}
	if n <= 0 {
		n = 1
	}
	sub := a / float64(n)

	driftFn := func(shellIdx int, segment float64) error { return Drift(ctx, shellIdx, segment) }
	kickFn := func(shellIdx int, y, v float64) error { return Kick(ctx, shellIdx, y, v) }

	if err := ctx.Driver.Preprocessor(sub, s+1, id, driftFn, kickFn); err != nil {
		return err
	}
	for k := 0; k < n; k++ {
		if err := ctx.Driver.Step(sub, 1, 1, s+1, id, driftFn, kickFn); err != nil {
			return err
		}
	}
	return ctx.Driver.Postprocessor(sub, s+1, id, driftFn, kickFn)
}

// advanceOwned applies the per-role owning-shell inclusion rule: a
// particle is drifted by shell s exactly once, in whichever role it
// currently belongs to at depth s.
func advanceOwned(ctx *Context, s int, a float64) {
	eng := ctx.Engine
	m := &eng.Maps[s]

	for _, i := range m.Dominant {
		if eng.InShellDominant[i] == s {
			driftParticle(ctx, i, a)
		}
	}
	for _, i := range m.Subdominant {
		if eng.InShellSubdominant[i] == s && eng.InShellEncounter[i] <= s {
			driftParticle(ctx, i, a)
		}
	}
	for _, i := range m.Encounter {
		if eng.InShellSubdominant[i] < s && eng.InShellEncounter[i] == s {
			driftParticle(ctx, i, a)
		}
	}
}

func driftParticle(ctx *Context, i int, a float64) {
	p := &ctx.State.Particles[i]
	p.Pos = p.Pos.DriftedBy(a, p.Vel)
	ctx.Engine.TDrifted[i] += a
}
