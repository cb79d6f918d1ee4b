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

// Phase identifies the phase of a feed component.
type Phase string

// The supported feed phases. All components in one system must share
// the same phase.
const (
	Liquid  Phase = "liquid"
	Gaseous Phase = "gaseous"
)

// Component is one species in the feed stream.
type Component struct {
	Name  string
	Phase Phase

	// FlowRate is the inlet volumetric flow [m³/s].
	FlowRate *unit.Unit

	// Concentration is the inlet molar concentration [mol/m³].
	Concentration *unit.Unit
}

// OperatingConditions give the inlet and reactor temperature and
// pressure. They enter the calculation only through the ideal-gas
// correction P₀·T/(P·T₀) applied to the dilution factor.
type OperatingConditions struct {
	InitialTemperature *unit.Unit // T₀ [K]
	InitialPressure    *unit.Unit // P₀ [Pa]
	FinalTemperature   *unit.Unit // T [K]
	FinalPressure      *unit.Unit // P [Pa]
}

// KineticLaw is a power-law rate expression r = k·∏Cᵢ^nᵢ with one
// reaction order per component. RateConstant is a bare magnitude; its
// physical dimension is derived from Orders so that the rate always
// resolves to mol/m³/s (see ConstantDimensions).
type KineticLaw struct {
	RateConstant float64
	Orders       []float64
}

// System describes one reaction over a feed stream. It is an immutable
// value object: solvers read it but never modify it, so a System may
// be shared between concurrent queries.
type System struct {
	Components []Component

	// Coefficients are the stoichiometric coefficients aligned with
	// Components: negative for reactants, positive for products.
	Coefficients []float64

	Kinetics   KineticLaw
	Conditions OperatingConditions
}

// Validate checks the system for structural problems: mismatched
// lengths, missing or mis-dimensioned quantities, and mixed-phase
// feeds.
func (s *System) Validate() error {
	if len(s.Components) == 0 {
		return &InputError{Msg: "the feed stream has no components"}
	}
	if len(s.Coefficients) != len(s.Components) {
		return &InvalidStoichiometryError{Msg: fmt.Sprintf(
			"%d coefficients for %d components",
			len(s.Coefficients), len(s.Components))}
	}
	if len(s.Kinetics.Orders) != len(s.Components) {
		return &InputError{Msg: fmt.Sprintf(
			"%d reaction orders for %d components",
			len(s.Kinetics.Orders), len(s.Components))}
	}
	if math.IsNaN(s.Kinetics.RateConstant) {
		return &InputError{Msg: "the rate constant is not a number"}
	}
	var qTot float64
	for i, c := range s.Components {
		if c.Phase != Liquid && c.Phase != Gaseous {
			return &InputError{Msg: fmt.Sprintf(
				"component %s has unknown phase %q", c.Name, c.Phase)}
		}
		if c.Phase != s.Components[0].Phase {
			return &PhaseMismatchError{Component: c.Name}
		}
		if c.FlowRate == nil || c.Concentration == nil {
			return &InputError{Msg: fmt.Sprintf(
				"component %s is missing its inlet flow or concentration", c.Name)}
		}
		if err := c.FlowRate.Check(unit.Meter3PerSecond); err != nil {
			return &UnitMismatchError{
				Have: c.FlowRate.Dimensions().String(),
				Want: unit.Meter3PerSecond.String()}
		}
		if err := c.Concentration.Check(MolePerMeter3); err != nil {
			return &UnitMismatchError{
				Have: c.Concentration.Dimensions().String(),
				Want: MolePerMeter3.String()}
		}
		if c.FlowRate.Value() < 0 || c.Concentration.Value() < 0 {
			return &InputError{Msg: fmt.Sprintf(
				"component %s has a negative inlet flow or concentration", c.Name)}
		}
		if math.IsNaN(s.Coefficients[i]) || math.IsNaN(s.Kinetics.Orders[i]) {
			return &InputError{Msg: fmt.Sprintf(
				"component %s has a non-numeric coefficient or reaction order", c.Name)}
		}
		qTot += c.FlowRate.Value()
	}
	if qTot <= 0 {
		return &InputError{Msg: "the total inlet volumetric flow must be positive"}
	}
	return s.Conditions.validate()
}

func (oc *OperatingConditions) validate() error {
	temps := []*unit.Unit{oc.InitialTemperature, oc.FinalTemperature}
	press := []*unit.Unit{oc.InitialPressure, oc.FinalPressure}
	for _, t := range temps {
		if t == nil {
			return &InputError{Msg: "operating conditions are missing a temperature"}
		}
		if err := t.Check(unit.Kelvin); err != nil {
			return &UnitMismatchError{Have: t.Dimensions().String(),
				Want: unit.Kelvin.String()}
		}
		if t.Value() <= 0 {
			return &InputError{Msg: "temperatures must be positive"}
		}
	}
	for _, p := range press {
		if p == nil {
			return &InputError{Msg: "operating conditions are missing a pressure"}
		}
		if err := p.Check(unit.Pascal); err != nil {
			return &UnitMismatchError{Have: p.Dimensions().String(),
				Want: unit.Pascal.String()}
		}
		if p.Value() <= 0 {
			return &InputError{Msg: "pressures must be positive"}
		}
	}
	return nil
}

// LimitingReagent returns the index of the kinetically controlling
// reactant: the one whose stoichiometrically scaled inlet molar rate
// F·C/|ν| is smallest. Ties are broken by input order.
func (s *System) LimitingReagent() (int, error) {
	if len(s.Coefficients) != len(s.Components) {
		return 0, &InvalidStoichiometryError{Msg: fmt.Sprintf(
			"%d coefficients for %d components",
			len(s.Coefficients), len(s.Components))}
	}
	lim := -1
	min := math.Inf(1)
	for i, c := range s.Components {
		coef := s.Coefficients[i]
		if coef == 0 {
			return 0, &InvalidStoichiometryError{Msg: fmt.Sprintf(
				"coefficient for component %s is zero", c.Name)}
		}
		if coef >= 0 {
			continue
		}
		molarRate := unit.Mul(c.FlowRate, c.Concentration) // mol/s
		ratio := molarRate.Value() / math.Abs(coef)
		if ratio < min {
			min = ratio
			lim = i
		}
	}
	if lim < 0 {
		return 0, &NoLimitingReagentError{}
	}
	return lim, nil
}

// feedState holds the quantities derived from the feed stream before
// any reaction takes place. It is computed once per query.
type feedState struct {
	lim          int          // index of the limiting reagent
	molarFlow    []*unit.Unit // F₀ᵢ [mol/s]
	totalFlow    *unit.Unit   // Q_tot [m³/s]
	mixedConc    []*unit.Unit // C₀ᵢ = F₀ᵢ/Q_tot [mol/m³], after mixing
	limMolarFlow *unit.Unit   // F_A0 [mol/s]
	limConc      *unit.Unit   // C_A0 [mol/m³]
}

func (s *System) feed() (*feedState, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	lim, err := s.LimitingReagent()
	if err != nil {
		return nil, err
	}
	f := &feedState{
		lim:       lim,
		molarFlow: make([]*unit.Unit, len(s.Components)),
		mixedConc: make([]*unit.Unit, len(s.Components)),
		totalFlow: unit.New(0, unit.Meter3PerSecond),
	}
	for _, c := range s.Components {
		f.totalFlow.Add(c.FlowRate)
	}
	for i, c := range s.Components {
		f.molarFlow[i] = unit.Mul(c.FlowRate, c.Concentration)
		f.mixedConc[i] = unit.Div(f.molarFlow[i], f.totalFlow)
	}
	f.limMolarFlow = f.molarFlow[lim]
	f.limConc = f.mixedConc[lim]
	return f, nil
}
