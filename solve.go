/*
Copyright © 2018 the Reactor authors.
This file is part of Reactor.

Reactor is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Reactor is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Reactor.  If not, see <http://www.gnu.org/licenses/>.
*/

package reactor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// SolverParams bounds the iterative parts of the engine. The bracket
// endpoints matter near the edges of the conversion range: a
// BracketMax closer to 1 admits higher conversions but steepens the
// plug-flow integrand near reagent exhaustion, and requests for
// conversions outside the bracket fail with a ConvergenceError rather
// than running forever.
type SolverParams struct {
	// BracketMin and BracketMax bound the open conversion interval
	// searched by the root-found input modes.
	BracketMin, BracketMax float64

	// RootTol is the absolute tolerance on the located conversion.
	RootTol float64

	// MaxIter caps the root-finder iteration count.
	MaxIter int

	// QuadTol is the relative tolerance for plug-flow quadrature.
	QuadTol float64

	// QuadMaxDoublings caps how many times the quadrature node count
	// may be doubled while chasing QuadTol.
	QuadMaxDoublings int
}

// DefaultCSTRParams returns the solver settings used for stirred-tank
// queries when none are given.
func DefaultCSTRParams() SolverParams {
	return SolverParams{
		BracketMin:       1.e-6,
		BracketMax:       0.999,
		RootTol:          1.e-10,
		MaxIter:          100,
		QuadTol:          1.e-8,
		QuadMaxDoublings: 12,
	}
}

// DefaultPFRParams returns the solver settings used for plug-flow
// queries when none are given. The bracket reaches closer to complete
// conversion than the stirred-tank default because the integral design
// equation stays better conditioned there than the algebraic one.
func DefaultPFRParams() SolverParams {
	p := DefaultCSTRParams()
	p.BracketMax = 0.99999
	return p
}

const machineEpsilon = 2.220446049250313e-16

// brent locates a root of f within [a, b] using Brent's method:
// inverse quadratic interpolation where it helps, bisection where it
// does not. f may fail (for example with a NegativeConcentrationError
// at an infeasible trial conversion); its error aborts the search.
func brent(f func(float64) (float64, error), a, b float64, p SolverParams) (float64, error) {
	fa, err := f(a)
	if err != nil {
		return 0, err
	}
	fb, err := f(b)
	if err != nil {
		return 0, err
	}
	if (fa > 0) == (fb > 0) {
		return 0, &ConvergenceError{Msg: fmt.Sprintf(
			"no sign change over the bracket [%g, %g]", a, b)}
	}
	c, fc := a, fa
	d := b - a
	e := d
	for i := 0; i < p.MaxIter; i++ {
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol := 2*machineEpsilon*math.Abs(b) + 0.5*p.RootTol
		m := 0.5 * (c - b)
		if math.Abs(m) <= tol || fb == 0 {
			return b, nil
		}
		if math.Abs(e) < tol || math.Abs(fa) <= math.Abs(fb) {
			// Interpolation is not trustworthy here; bisect.
			d = m
			e = m
		} else {
			s := fb / fa
			var pp, q float64
			if a == c {
				pp = 2 * m * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				pp = s * (2*m*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if pp > 0 {
				q = -q
			} else {
				pp = -pp
			}
			if 2*pp < math.Min(3*m*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = pp / q
			} else {
				d = m
				e = m
			}
		}
		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else if m > 0 {
			b += tol
		} else {
			b -= tol
		}
		fb, err = f(b)
		if err != nil {
			return 0, err
		}
	}
	return 0, &ConvergenceError{Msg: fmt.Sprintf(
		"no convergence within %d iterations", p.MaxIter)}
}

// integrate computes ∫f over [a, b] by Gauss–Legendre quadrature,
// doubling the node count until two successive estimates agree to
// within the relative tolerance. The integrand may fail; its error
// aborts the integration.
func integrate(f func(float64) (float64, error), a, b float64, p SolverParams) (float64, error) {
	if b == a {
		return 0, nil
	}
	var ferr error
	g := func(x float64) float64 {
		if ferr != nil {
			return 0
		}
		v, err := f(x)
		if err != nil {
			ferr = err
			return 0
		}
		return v
	}
	// The single-goroutine evaluation below is deliberate: the error
	// capture in g is not safe for concurrent use.
	prev := quad.Fixed(g, a, b, 8, nil, 1)
	if ferr != nil {
		return 0, ferr
	}
	n := 16
	for i := 0; i < p.QuadMaxDoublings; i++ {
		cur := quad.Fixed(g, a, b, n, nil, 1)
		if ferr != nil {
			return 0, ferr
		}
		if math.Abs(cur-prev) <= p.QuadTol*math.Max(1, math.Abs(cur)) {
			return cur, nil
		}
		prev = cur
		n *= 2
	}
	return 0, &IntegrationError{Msg: fmt.Sprintf(
		"no convergence to relative tolerance %g over [%g, %g] after %d node doublings",
		p.QuadTol, a, b, p.QuadMaxDoublings)}
}
