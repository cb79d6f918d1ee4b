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

// CSTR solves the continuous stirred-tank design equation
// V = F_A0·X/(|ν_lim|·r(X)) for one reaction system.
type CSTR struct {
	System *System

	// Params overrides the default solver settings when non-zero.
	Params SolverParams
}

func (r *CSTR) params() SolverParams {
	if r.Params == (SolverParams{}) {
		return DefaultCSTRParams()
	}
	return r.Params
}

// VolumeFromConversion sizes the reactor for a target conversion of
// the limiting reagent. This mode is closed-form: the rate is
// evaluated once at X and no iteration is needed.
func (r *CSTR) VolumeFromConversion(X float64) (*Result, error) {
	f, err := r.System.feed()
	if err != nil {
		return nil, err
	}
	if X <= 0 || X >= 1 {
		return nil, &DomainError{Msg: fmt.Sprintf(
			"conversion %g is outside the open interval (0, 1)", X)}
	}
	st, err := r.System.evaluate(f, X)
	if err != nil {
		return nil, err
	}
	xU := unit.New(X, unit.Dimless)
	V := unit.Div(unit.Mul(f.limMolarFlow, xU), st.limRate) // m³
	if V.Value() <= 0 {
		return nil, &DomainError{Msg: fmt.Sprintf(
			"computed volume %v is not positive", V)}
	}
	return r.System.result(f, X, st, V), nil
}

// ConversionFromVolume finds the conversion reached in a reactor of
// the given volume [m³] by root-finding the design equation over the
// conversion bracket.
func (r *CSTR) ConversionFromVolume(V *unit.Unit) (*Result, error) {
	f, err := r.System.feed()
	if err != nil {
		return nil, err
	}
	return r.conversionFromVolume(f, V)
}

// ConversionFromResidenceTime converts the residence time τ [s] to a
// volume V = Q_tot·τ and solves for conversion.
func (r *CSTR) ConversionFromResidenceTime(tau *unit.Unit) (*Result, error) {
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

func (r *CSTR) conversionFromVolume(f *feedState, V *unit.Unit) (*Result, error) {
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
	// f(X) = |ν_lim|·r(X)·V/F_A0 − X: the conversion the design
	// equation predicts for this volume, minus the trial value.
	obj := func(X float64) (float64, error) {
		st, err := r.System.evaluate(f, X)
		if err != nil {
			return 0, err
		}
		xCalc := unit.Div(unit.Mul(st.limRate, V), f.limMolarFlow)
		if err := xCalc.Check(unit.Dimless); err != nil {
			return 0, &UnitMismatchError{
				Have: xCalc.Dimensions().String(), Want: "dimensionless"}
		}
		return xCalc.Value() - X, nil
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
