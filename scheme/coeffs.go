package scheme

import "math"

// SchemeID names one of the operator-splitting schemes the Driver knows
// how to run. The integrator only ever needs a scheme's longest drift
// sub-step (see LongestDrift) but the Driver needs the full tables to
// actually sequence a step.
type SchemeID int

const (
	// LF is the classic 2nd-order leapfrog (drift-kick-drift).
	LF SchemeID = iota
	// LF4 is the 4th-order scheme obtained from LF by one triple-jump
	// composition (Yoshida 1990 / Suzuki 1990 "fractal" method).
	LF4
	// LF6 is the 6th-order scheme obtained from LF4 by a further
	// triple-jump composition.
	LF6
	// LF8 is the 8th-order scheme obtained from LF6 by a further
	// triple-jump composition.
	LF8
	// LF4_2 is the named alias for LF4's core under which hosts may
	// request it when their configuration distinguishes "the 4th order
	// scheme used for the outermost shell" from "...for inner shells".
	LF4_2
	// LF8_6_4 is the LF8 kernel with a one-time pre/post corrector
	// ("processing") applied once per global step rather than once per
	// sub-step, in the style of processed symplectic integrators
	// (Wisdom, Holman & Touma 1996).
	LF8_6_4
	// PMLF4 is the "processed" LF4: the LF4 kernel plus a pre/post
	// corrector kick.
	PMLF4
	// PMLF6 is the "processed" LF6.
	PMLF6
	// PLF7_6_4 is a processed LF6 kernel with a corrector tuned to raise
	// the effective order of the processed scheme beyond the kernel's own.
	PLF7_6_4
)

// String returns the scheme's REBOUND-style name.
func (id SchemeID) String() string {
	switch id {
	case LF:
		return "LF"
	case LF4:
		return "LF4"
	case LF6:
		return "LF6"
	case LF8:
		return "LF8"
	case LF4_2:
		return "LF4_2"
	case LF8_6_4:
		return "LF8_6_4"
	case PMLF4:
		return "PMLF4"
	case PMLF6:
		return "PMLF6"
	case PLF7_6_4:
		return "PLF7_6_4"
	default:
		return "unknown"
	}
}

// Coeffs holds one scheme's drift/kick coefficient table: Drift has
// len(Kick)+1 entries, forming the alternating sequence
// D[0] K[0] D[1] K[1] ... K[m-1] D[m]. Both slices sum to 1.
//
// Processor is an optional corrector weight: a scheme whose Processor is
// non-zero expects Driver.Preprocessor/Postprocessor to apply a half-kick
// of that weight once per global step, the "processing" technique used to
// cheaply raise a kernel's effective order.
type Coeffs struct {
	Drift     []float64
	Kick      []float64
	Processor float64
}

func leapfrog() Coeffs {
	return Coeffs{Drift: []float64{0.5, 0.5}, Kick: []float64{1}}
}

func scaleSlice(xs []float64, s float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x * s
	}
	return out
}

func scaleCoeffs(c Coeffs, s float64) Coeffs {
	return Coeffs{Drift: scaleSlice(c.Drift, s), Kick: scaleSlice(c.Kick, s)}
}

// composeSequence concatenates scaled copies of a base scheme, merging the
// drift step that closes one copy with the drift step that opens the next
// (they are adjacent with no intervening kick, so they combine into a
// single sub-step).
func composeSequence(parts []Coeffs) Coeffs {
	drift := []float64{parts[0].Drift[0]}
	var kick []float64

	for i, p := range parts {
		m := len(p.Kick)
		for j := 0; j < m; j++ {
			kick = append(kick, p.Kick[j])
			d := p.Drift[j+1]
			if j == m-1 && i+1 < len(parts) {
				d += parts[i+1].Drift[0]
			}
			drift = append(drift, d)
		}
	}
	return Coeffs{Drift: drift, Kick: kick}
}

// tripleJump lifts a symmetric scheme of order 2n to one of order 2n+2 by
// composing three scaled copies of it: x1, 1-2x1, x1, where
// x1 = 1/(2 - 2^(1/(2n+1))) (Yoshida 1990, Suzuki 1990).
func tripleJump(base Coeffs, n float64) Coeffs {
	x1 := 1 / (2 - math.Pow(2, 1/(2*n+1)))
	x2 := 1 - 2*x1
	return composeSequence([]Coeffs{
		scaleCoeffs(base, x1),
		scaleCoeffs(base, x2),
		scaleCoeffs(base, x1),
	})
}

var (
	coeffsLF  = leapfrog()
	coeffsLF4 = tripleJump(coeffsLF, 1)
	coeffsLF6 = tripleJump(coeffsLF4, 2)
	coeffsLF8 = tripleJump(coeffsLF6, 3)
)

// processed returns a copy of kernel with a corrector of the given weight
// installed, for the PMLF*/LF8_6_4/PLF7_6_4 "processed" scheme family.
func processed(kernel Coeffs, processorWeight float64) Coeffs {
	c := Coeffs{Drift: append([]float64(nil), kernel.Drift...), Kick: append([]float64(nil), kernel.Kick...)}
	c.Processor = processorWeight
	return c
}

// CoeffsFor returns the drift/kick (and, for processed schemes, corrector)
// coefficient table for id.
func CoeffsFor(id SchemeID) Coeffs {
	switch id {
	case LF:
		return coeffsLF
	case LF4:
		return coeffsLF4
	case LF6:
		return coeffsLF6
	case LF8:
		return coeffsLF8
	case LF4_2:
		return coeffsLF4
	case LF8_6_4:
		return processed(coeffsLF8, 0.5)
	case PMLF4:
		return processed(coeffsLF4, 0.5)
	case PMLF6:
		return processed(coeffsLF6, 0.5)
	case PLF7_6_4:
		return processed(coeffsLF6, 0.25)
	default:
		return coeffsLF
	}
}

// LongestDrift returns the largest single drift sub-step weight in the
// scheme's coefficient table — the "longest drift sub-step coefficient"
// spec §4.2 uses to scale dcrit down at deeper shells.
func LongestDrift(id SchemeID) float64 {
	drift := CoeffsFor(id).Drift
	longest := drift[0]
	for _, d := range drift[1:] {
		if d > longest {
			longest = d
		}
	}
	return longest
}
