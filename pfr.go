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

	"github.com/ctessum/unit"
)

// PFR solves the plug-flow design equation
// V = (R+1)·F_A0·∫ dX/(|ν_lim|·r(X)) for one reaction system,
// optionally with recycle.
type PFR struct {
	System *System

	// Recycle is the ratio R of recycled to fresh outlet flow. It
	// shifts the integration lower bound to R/(R+1)·X. Zero means a
	// once-through reactor.
	Recycle float64

	// Params overrides the default solver settings when non-zero.
	Params SolverParams
}

func (r *PFR) params() SolverParams {
	if r.Params == (SolverParams{}) {
		return DefaultPFRParams()
	}
	return r.Params
}

// integrand returns the inverse-rate integrand
// g(X) = 1/(|ν_lim|·r(X)) [m³·s/mol].
func (r *PFR) integrand(f *feedState) func(float64) (float64, error) {
	return func(X float64) (float64, error) {
		st, err := r.System.evaluate(f, X)
		if err != nil {
			return 0, err
		}
		return 1 / st.limRate.Value(), nil
	}
}

// designVolume integrates the design equation up to conversion X and
// returns the required volume magnitude [m³].
func (r *PFR) designVolume(f *feedState, X float64, p SolverParams) (float64, error) {
	lo := r.Recycle / (r.Recycle + 1) * X
	integral, err := integrate(r.integrand(f), lo, X, p)
	if err != nil {
		return 0, err
	}
	return (r.Recycle + 1) * f.limMolarFlow.Value() * integral, nil
}

// VolumeFromConversion sizes the reactor for a target conversion of
// the limiting reagent by numerical integration of the inverse rate.
func (r *PFR) VolumeFromConversion(X float64) (*Result, error) {
	if r.Recycle < 0 {
		return nil, &DomainError{Msg: fmt.Sprintf(
			"recycle ratio %g is negative", r.Recycle)}
	}
	f, err := r.System.feed()
	if err != nil {
		return nil, err
	}
	if X <= 0 || X >= 1 {
		return nil, &DomainError{Msg: fmt.Sprintf(
			"conversion %g is outside the open interval (0, 1)", X)}
	}
	v, err := r.designVolume(f, X, r.params())
	if err != nil {
		return nil, err
	}
	if v <= 0 {
		return nil, &DomainError{Msg: fmt.Sprintf(
			"computed volume %g m³ is not positive", v)}
	}
	st, err := r.System.evaluate(f, X)
	if err != nil {
		return nil, err
	}
	return r.System.result(f, X, st, unit.New(v, unit.Meter3)), nil
}

// ConversionFromVolume finds the conversion reached in a reactor of
// the given volume [m³]: the root of (R+1)·F_A0·∫g − V over the
// conversion bracket.
func (r *PFR) ConversionFromVolume(V *unit.Unit) (*Result, error) {
	if r.Recycle < 0 {
		return nil, &DomainError{Msg: fmt.Sprintf(
			"recycle ratio %g is negative", r.Recycle)}
	}
	f, err := r.System.feed()
	if err != nil {
		return nil, err
	}
	return r.conversionFromVolume(f, V)
}

// ConversionFromResidenceTime converts the residence time τ [s] to a
// volume V = Q_tot·τ and solves for conversion.
func (r *PFR) ConversionFromResidenceTime(tau *unit.Unit) (*Result, error) {
	if r.Recycle < 0 {
		return nil, &DomainError{Msg: fmt.Sprintf(
			"recycle ratio %g is negative", r.Recycle)}
	}
	f, err := r.System.feed()
	if err != nil {
		return nil, err
	}
	if tau == nil {
		return nil, &InputError{Msg: "no residence time given"}
	}
	if err := tau.Check(unit.Second); err != nil {
		return nil, &UnitMismatchError{
			Have: tau.Dimensions().String(), Want: unit.Second.String()}
	}
	if tau.Value() <= 0 {
		return nil, &DomainError{Msg: fmt.Sprintf(
			"residence time %v is not positive", tau)}
	}
	return r.conversionFromVolume(f, unit.Mul(f.totalFlow, tau))
}

func (r *PFR) conversionFromVolume(f *feedState, V *unit.Unit) (*Result, error) {
	if V == nil {
		return nil, &InputError{Msg: "no reactor volume given"}
	}
	if err := V.Check(unit.Meter3); err != nil {
		return nil, &UnitMismatchError{
			Have: V.Dimensions().String(), Want: unit.Meter3.String()}
	}
	if V.Value() <= 0 {
		return nil, &DomainError{Msg: fmt.Sprintf(
			"reactor volume %v is not positive", V)}
	}
	p := r.params()
	// The objective is the integral design equation normalized by the
	// target volume, which keeps it well scaled for any reactor size.
	obj := func(X float64) (float64, error) {
		v, err := r.designVolume(f, X, p)
		if err != nil {
			return 0, err
		}
		return (v - V.Value()) / V.Value(), nil
	}
	X, err := brent(obj, p.BracketMin, p.BracketMax, p)
	if err != nil {
		return nil, err
	}
	st, err := r.System.evaluate(f, X)
	if err != nil {
		return nil, err
	}
	return r.System.result(f, X, st, V.Clone()), nil
}
