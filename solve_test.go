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
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestBrent(t *testing.T) {
	p := DefaultCSTRParams()
	f := func(x float64) (float64, error) { return x*x - 4, nil }
	root, err := brent(f, 0, 5, p)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbsOrRel(root, 2, 1.e-9, 1.e-9) {
		t.Errorf("root = %g, want 2", root)
	}

	g := func(x float64) (float64, error) { return math.Cos(x) - x, nil }
	root, err = brent(g, 0, 1, p)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbsOrRel(root, 0.7390851332151607, 1.e-9, 1.e-9) {
		t.Errorf("root = %g, want 0.7390851332151607", root)
	}
}

func TestBrentNoSignChange(t *testing.T) {
	p := DefaultCSTRParams()
	f := func(x float64) (float64, error) { return x*x - 4, nil }
	if _, err := brent(f, 3, 5, p); err == nil {
		t.Error("expected an error for a bracket without a sign change")
	} else if _, ok := err.(*ConvergenceError); !ok {
		t.Errorf("got %T (%v), want *ConvergenceError", err, err)
	}
}

func TestBrentPropagatesError(t *testing.T) {
	p := DefaultCSTRParams()
	fail := errors.New("objective failed")
	f := func(x float64) (float64, error) {
		if x > 0.5 {
			return 0, fail
		}
		return x - 0.4, nil
	}
	if _, err := brent(f, 0, 1, p); err != fail {
		t.Errorf("got %v, want the objective's own error", err)
	}
}

func TestIntegrate(t *testing.T) {
	p := DefaultCSTRParams()
	f := func(x float64) (float64, error) { return x * x, nil }
	got, err := integrate(f, 0, 1, p)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbsOrRel(got, 1./3., 1.e-10, 1.e-10) {
		t.Errorf("∫x² over [0,1] = %g, want 1/3", got)
	}

	// A degenerate interval integrates to zero without touching f.
	got, err = integrate(func(x float64) (float64, error) {
		return 0, errors.New("must not be called")
	}, 0.3, 0.3, p)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("empty interval integral = %g, want 0", got)
	}
}

func TestIntegratePropagatesError(t *testing.T) {
	p := DefaultCSTRParams()
	fail := errors.New("integrand failed")
	f := func(x float64) (float64, error) { return 0, fail }
	if _, err := integrate(f, 0, 1, p); err != fail {
		t.Errorf("got %v, want the integrand's own error", err)
	}
}

func TestDefaultParams(t *testing.T) {
	c := DefaultCSTRParams()
	p := DefaultPFRParams()
	if c.BracketMax >= p.BracketMax {
		t.Errorf("plug-flow bracket max %g should exceed stirred-tank %g",
			p.BracketMax, c.BracketMax)
	}
	if c.BracketMin != p.BracketMin {
		t.Errorf("bracket minima differ: %g vs %g", c.BracketMin, p.BracketMin)
	}
}
