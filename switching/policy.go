package switching

import "math"

// Func evaluates the switching function (or its derivative) at distance d
// for the shell boundary [ri, ro].
type Func func(d, ri, ro float64) float64

// Policy pairs a switching function with its derivative. The core never
// calls L and DLDR with mismatched endpoints; hosts installing a custom
// Policy are responsible for that consistency themselves.
type Policy struct {
	L    Func
	DLDR Func
}

// f is the one-sided bump exp(-1/x), zero for x<=0.
func f(x float64) float64 {
	if x < 0 {
		return 0
	}
	return math.Exp(-1 / x)
}

// dfdy is the derivative of f.
func dfdy(x float64) float64 {
	if x < 0 {
		return 0
	}
	return math.Exp(-1/x) / (x * x)
}

// lInfinity is the default C∞ switching function:
// y=(d-ri)/(ro-ri); L=0 for y<=0, L=1 for y>=1, L=f(y)/(f(y)+f(1-y)) between.
func lInfinity(d, ri, ro float64) float64 {
	y := (d - ri) / (ro - ri)
	switch {
	case y <= 0:
		return 0
	case y >= 1:
		return 1
	default:
		return f(y) / (f(y) + f(1-y))
	}
}

// dlInfinity is dL/dd for lInfinity, continuous everywhere and zero
// outside (ri, ro).
func dlInfinity(d, ri, ro float64) float64 {
	y := (d - ri) / (ro - ri)
	dydr := 1 / (ro - ri)
	switch {
	case y <= 0:
		return 0
	case y >= 1:
		return 0
	default:
		fy := f(y)
		f1y := f(1 - y)
		denom := fy + f1y
		return dydr * (dfdy(y)/denom - fy/(denom*denom)*(dfdy(y)-dfdy(1-y)))
	}
}

// Default returns the canonical C∞ switching policy used by MERCURANA
// unless a host installs its own via integrator.WithSwitchingPolicy.
func Default() Policy {
	return Policy{L: lInfinity, DLDR: dlInfinity}
}

// Polynomial returns a finite-order smoothstep switching policy: degree 3
// is the classic Hermite smoothstep (3y²-2y³), degree 5 is the smoother
// quintic (6y⁵-15y⁴+10y³). Both vanish at the endpoints along with their
// first derivative; unlike Default they are not infinitely differentiable,
// but they are cheaper to evaluate. degree values other than 3 and 5 fall
// back to the quintic.
func Polynomial(degree int) Policy {
	switch degree {
	case 3:
		return Policy{L: smoothstep3, DLDR: dsmoothstep3}
	default:
		return Policy{L: smoothstep5, DLDR: dsmoothstep5}
	}
}

func clampUnit(y float64) (float64, bool, bool) {
	if y < 0 {
		return 0, true, false
	}
	if y > 1 {
		return 1, false, true
	}
	return y, false, false
}

func smoothstep3(d, ri, ro float64) float64 {
	y := (d - ri) / (ro - ri)
	v, lo, hi := clampUnit(y)
	if lo {
		return 0
	}
	if hi {
		return 1
	}
	return v * v * (3 - 2*v)
}

func dsmoothstep3(d, ri, ro float64) float64 {
	y := (d - ri) / (ro - ri)
	dydr := 1 / (ro - ri)
	v, lo, hi := clampUnit(y)
	if lo || hi {
		return 0
	}
	return dydr * 6 * v * (1 - v)
}

func smoothstep5(d, ri, ro float64) float64 {
	y := (d - ri) / (ro - ri)
	v, lo, hi := clampUnit(y)
	if lo {
		return 0
	}
	if hi {
		return 1
	}
	return v * v * v * (v*(v*6-15) + 10)
}

func dsmoothstep5(d, ri, ro float64) float64 {
	y := (d - ri) / (ro - ri)
	dydr := 1 / (ro - ri)
	v, lo, hi := clampUnit(y)
	if lo || hi {
		return 0
	}
	return dydr * 30 * v * v * (v - 1) * (v - 1)
}
