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

	"github.com/ctessum/unit"
)

// ConstantDimensions returns the derived dimension vector of the rate
// constant: the dimensions that make k·∏Cᵢ^nᵢ reduce to mol/m³/s. For
// a total reaction order Σn = o this is mole^(1−o)·m^(3o−3)·s⁻¹.
// ok is false when the total order is not an integer; fractional
// exponents have no representation in the dimension system, and
// ConstantUnits should be used for display instead.
func (k KineticLaw) ConstantDimensions() (unit.Dimensions, bool) {
	o := k.totalOrder()
	if o != math.Trunc(o) || math.IsNaN(o) {
		return nil, false
	}
	n := int(o)
	d := unit.Dimensions{unit.TimeDim: -1}
	if n != 1 {
		d[MoleDim] = 1 - n
		d[unit.LengthDim] = 3 * (n - 1)
	}
	return d, true
}

// ConstantUnits formats the derived unit of the rate constant,
// including fractional exponents when the total order is not integral.
func (k KineticLaw) ConstantUnits() string {
	if d, ok := k.ConstantDimensions(); ok {
		return d.String()
	}
	o := k.totalOrder()
	return fmt.Sprintf("mole^%g m^%g s^-1", 1-o, 3*o-3)
}

func (k KineticLaw) totalOrder() float64 {
	var o float64
	for _, n := range k.Orders {
		o += n
	}
	return o
}

// concentrations maps a trial conversion X of the limiting reagent to
// the per-component outlet concentrations [mol/m³], all divided by the
// dilution factor:
//
//   - limiting reactant: C₀·(1−X)
//   - other reactants: conversion scaled by the stoichiometric ratio
//     to the limiting reagent and capped at full consumption, so a
//     reactant in stoichiometric excess never goes negative
//   - products: C₀ + (ν/|ν_lim|)·C_A0·X
//   - inerts (ν = 0): C₀
func (s *System) concentrations(f *feedState, X, dilution float64) ([]*unit.Unit, error) {
	absLim := math.Abs(s.Coefficients[f.lim])
	out := make([]*unit.Unit, len(s.Components))
	for i := range s.Components {
		coef := s.Coefficients[i]
		var v float64
		switch {
		case coef < 0 && i == f.lim:
			v = f.mixedConc[i].Value() * (1 - X) / dilution
		case coef < 0:
			Xi := X / (math.Abs(coef) / absLim)
			if Xi > 1 {
				Xi = 1
			}
			v = f.mixedConc[i].Value() * (1 - Xi) / dilution
		case coef > 0:
			v = (f.mixedConc[i].Value() + coef/absLim*f.limConc.Value()*X) / dilution
		default: // inert
			v = f.mixedConc[i].Value() / dilution
		}
		if v < 0 {
			return nil, &NegativeConcentrationError{
				Component: s.Components[i].Name, Conversion: X}
		}
		out[i] = unit.New(v, MolePerMeter3)
	}
	return out, nil
}

// rate evaluates r = k·∏Cᵢ^nᵢ [mol/m³/s] at the given outlet
// concentrations. Terms with a zero order are skipped, matching the
// convention that C⁰ = 1 even for a zero concentration.
func (s *System) rate(conc []*unit.Unit, X float64) (*unit.Unit, error) {
	prod := 1.0
	for i, n := range s.Kinetics.Orders {
		if n == 0 {
			continue
		}
		if err := conc[i].Check(MolePerMeter3); err != nil {
			return nil, &UnitMismatchError{
				Have: conc[i].Dimensions().String(),
				Want: MolePerMeter3.String()}
		}
		prod *= math.Pow(conc[i].Value(), n)
	}
	r := s.Kinetics.RateConstant * prod
	if r == 0 {
		return nil, &ZeroRateError{Conversion: X}
	}
	return unit.New(r, MolePerMeter3PerSecond), nil
}

// evalState is the engine state at one trial conversion.
type evalState struct {
	dilution float64
	conc     []*unit.Unit
	rate     *unit.Unit // r [mol/m³/s]
	limRate  *unit.Unit // |ν_lim|·r, consumption rate of the limiting reagent
}

// evaluate computes the outlet state of the system at trial conversion
// X: dilution factor, outlet concentrations, and reaction rate.
func (s *System) evaluate(f *feedState, X float64) (*evalState, error) {
	pt, err := s.conditionRatio()
	if err != nil {
		return nil, err
	}
	d := dilutionFactor(s.expansionCoefficient(f.lim), pt, X)
	conc, err := s.concentrations(f, X, d)
	if err != nil {
		return nil, err
	}
	r, err := s.rate(conc, X)
	if err != nil {
		return nil, err
	}
	absLim := unit.New(math.Abs(s.Coefficients[f.lim]), unit.Dimless)
	return &evalState{
		dilution: d,
		conc:     conc,
		rate:     r,
		limRate:  unit.Mul(absLim, r),
	}, nil
}
