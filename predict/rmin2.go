package predict

import "github.com/katalvlaran/mercurana/body"

// RMin2 returns the minimum squared distance between p1 and p2 over a
// linear drift of signed duration dt, assuming both particles move at
// their current velocity for the whole segment.
//
// It evaluates r² at τ=0, r² at τ=|dt|, and — only if the analytic
// extremum τ* falls inside [0,|dt|] — r² at τ*, returning the smallest of
// the candidates. The sign of dt is absorbed into the relative velocity so
// that a negative dt (backward drift) is handled consistently.
func RMin2(p1, p2 body.Particle, dt float64) float64 {
	sign := 1.0
	if dt < 0 {
		sign = -1.0
	}
	absDt := dt
	if absDt < 0 {
		absDt = -absDt
	}

	dx := p1.Pos.Sub(p2.Pos)
	r1 := dx.Norm2()

	dv := p1.Vel.Sub(p2.Vel).Scale(sign)
	dx2 := dx.Add(dv.Scale(absDt))
	r2 := dx2.Norm2()

	rmin2 := r1
	if r2 < rmin2 {
		rmin2 = r2
	}

	denom := dv.Norm2()
	if denom > 0 {
		tClosest := -dx.Dot(dv) / denom
		frac := tClosest / absDt
		if frac >= 0 && frac <= 1 {
			dx3 := dx.Add(dv.Scale(tClosest))
			r3 := dx3.Norm2()
			if r3 < rmin2 {
				rmin2 = r3
			}
		}
	}

	return rmin2
}

// RMin2Drifted is RMin2, but p2 is first advanced by p2Drift along its own
// velocity. This lets the shell engine compare two particles that sit at
// different t_drifted values by bringing p2 up to p1's drift time before
// evaluating the closest approach (spec §4.3's "drifted" variant).
func RMin2Drifted(p1, p2 body.Particle, dt, p2Drift float64) float64 {
	p2Drifted := p2
	p2Drifted.Pos = p2.Pos.DriftedBy(p2Drift, p2.Vel)
	return RMin2(p1, p2Drifted, dt)
}
