package operator

// Kick applies a velocity update at shell s weighted by y (and, if v is
// non-zero, a jerk correction weighted by v): it asks the gravity routine
// to recompute accelerations for this shell's pairing, then advances the
// velocity of every particle this shell owns.
//
// At shell 0 the subdominant role is skipped entirely: every non-dominant
// particle already belongs to the shell-0 encounter map, so kicking it
// again via the subdominant map would double-count the same acceleration.
// At shell s>0 a subdominant particle is kicked only if it has not already
// been kicked this step via a deeper encounter-role membership
// (inshell_encounter[i] < s).
func Kick(ctx *Context, s int, y, v float64) error {
	eng := ctx.Engine
	m := &eng.Maps[s]

	if err := ctx.Gravity.UpdateAcceleration(ctx.State, s, m, ctx.Policy); err != nil {
		return err
	}
	if v != 0 {
		if err := ctx.Gravity.ApplyJerk(ctx.State, v); err != nil {
			return err
		}
	}

	for _, i := range m.Dominant {
		kickParticle(ctx, i, y)
	}
	for _, i := range m.Encounter {
		kickParticle(ctx, i, y)
	}
	if s > 0 {
		for _, i := range m.Subdominant {
			if eng.InShellEncounter[i] < s {
				kickParticle(ctx, i, y)
			}
		}
	}
	return nil
}

func kickParticle(ctx *Context, i int, y float64) {
	p := &ctx.State.Particles[i]
	p.Vel = p.Vel.Add(p.Acc.Scale(y))
}
