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
	"math"

	"github.com/ctessum/unit"
)

// expansionCoefficient returns ε, the fractional change in volumetric
// flow at full conversion of the limiting reagent:
// ε = (Σν₊ − Σ|ν₋|)/|ν_lim|. Liquids are treated as incompressible,
// so ε is zero for an all-liquid feed.
func (s *System) expansionCoefficient(lim int) float64 {
	if s.Components[0].Phase != Gaseous {
		return 0
	}
	var prod, reag float64
	for _, coef := range s.Coefficients {
		if coef > 0 {
			prod += coef
		} else {
			reag -= coef
		}
	}
	return (prod - reag) / math.Abs(s.Coefficients[lim])
}

// conditionRatio returns the ideal-gas-law style correction
// P₀·T/(P·T₀) for the change in temperature and pressure between the
// inlet and the reactor.
func (s *System) conditionRatio() (float64, error) {
	c := s.Conditions
	r := unit.Div(
		unit.Mul(c.InitialPressure, c.FinalTemperature),
		unit.Mul(c.FinalPressure, c.InitialTemperature))
	if err := r.Check(unit.Dimless); err != nil {
		return 0, &UnitMismatchError{
			Have: r.Dimensions().String(), Want: "dimensionless"}
	}
	return r.Value(), nil
}

// dilutionFactor combines the volumetric expansion at conversion X
// with the operating-condition correction. Every outlet concentration
// is divided by this factor. The same form is evaluated at every trial
// conversion for both reactor types.
func dilutionFactor(eps, ptRatio, X float64) float64 {
	return (1 + eps*X) * ptRatio
}
