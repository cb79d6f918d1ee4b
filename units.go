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

// MoleDim is the dimension representing amount of substance.
// The unit library reserves the "mol" symbol, so it is registered
// here as "mole".
var MoleDim unit.Dimension

func init() {
	MoleDim = unit.NewDimension("mole")
}

// Dimension vectors for the quantities handled by the engine.
// Magnitudes are always SI: mol, m, s, K, Pa.
var (
	// Mole is an amount of substance.
	Mole = unit.Dimensions{MoleDim: 1}
	// MolePerSecond is a molar flow rate.
	MolePerSecond = unit.Dimensions{
		MoleDim:      1,
		unit.TimeDim: -1}
	// MolePerMeter3 is a molar concentration.
	MolePerMeter3 = unit.Dimensions{
		MoleDim:        1,
		unit.LengthDim: -3}
	// MolePerMeter3PerSecond is a volumetric reaction rate.
	MolePerMeter3PerSecond = unit.Dimensions{
		MoleDim:        1,
		unit.LengthDim: -3,
		unit.TimeDim:   -1}
)

// VolumetricFlow converts a volumetric flow rate in the given units
// to SI [m³/s]. An empty unit label means the value is already SI.
func VolumetricFlow(val float64, units string) (*unit.Unit, error) {
	switch units {
	case "", "m3/s", "m³/s":
		return unit.New(val, unit.Meter3PerSecond), nil
	case "m3/min", "m³/min":
		return unit.New(val/60, unit.Meter3PerSecond), nil
	case "m3/h", "m³/h":
		return unit.New(val/3600, unit.Meter3PerSecond), nil
	case "L/s", "l/s":
		return unit.New(val*1.e-3, unit.Meter3PerSecond), nil
	case "L/min", "l/min":
		return unit.New(val*1.e-3/60, unit.Meter3PerSecond), nil
	case "L/h", "l/h":
		return unit.New(val*1.e-3/3600, unit.Meter3PerSecond), nil
	default:
		return nil, &InputError{Msg: fmt.Sprintf("unknown volumetric flow unit %q", units)}
	}
}

// Concentration converts a molar concentration in the given units to
// SI [mol/m³].
func Concentration(val float64, units string) (*unit.Unit, error) {
	switch units {
	case "", "mol/m3", "mol/m³":
		return unit.New(val, MolePerMeter3), nil
	case "mol/L", "mol/l", "kmol/m3", "kmol/m³":
		return unit.New(val*1.e3, MolePerMeter3), nil
	case "mol/mL", "mol/ml":
		return unit.New(val*1.e6, MolePerMeter3), nil
	default:
		return nil, &InputError{Msg: fmt.Sprintf("unknown concentration unit %q", units)}
	}
}

// Volume converts a volume in the given units to SI [m³].
func Volume(val float64, units string) (*unit.Unit, error) {
	switch units {
	case "", "m3", "m³":
		return unit.New(val, unit.Meter3), nil
	case "L", "l":
		return unit.New(val*1.e-3, unit.Meter3), nil
	case "mL", "ml":
		return unit.New(val*1.e-6, unit.Meter3), nil
	default:
		return nil, &InputError{Msg: fmt.Sprintf("unknown volume unit %q", units)}
	}
}

// Duration converts a time span in the given units to SI [s].
func Duration(val float64, units string) (*unit.Unit, error) {
	switch units {
	case "", "s":
		return unit.New(val, unit.Second), nil
	case "min":
		return unit.New(val*60, unit.Second), nil
	case "h":
		return unit.New(val*3600, unit.Second), nil
	default:
		return nil, &InputError{Msg: fmt.Sprintf("unknown time unit %q", units)}
	}
}

// Pressure converts a pressure in the given units to SI [Pa].
func Pressure(val float64, units string) (*unit.Unit, error) {
	switch units {
	case "", "Pa":
		return unit.New(val, unit.Pascal), nil
	case "kPa":
		return unit.New(val*1.e3, unit.Pascal), nil
	case "MPa":
		return unit.New(val*1.e6, unit.Pascal), nil
	case "bar":
		return unit.New(val*1.e5, unit.Pascal), nil
	case "atm":
		return unit.New(val*101325, unit.Pascal), nil
	case "mmHg":
		return unit.New(val*133.322387415, unit.Pascal), nil
	case "psi":
		return unit.New(val*6894.757293168, unit.Pascal), nil
	case "kgf/cm2", "kgf/cm²":
		return unit.New(val*98066.5, unit.Pascal), nil
	default:
		return nil, &InputError{Msg: fmt.Sprintf("unknown pressure unit %q", units)}
	}
}

// Temperature converts a temperature in the given units to SI [K].
// Celsius and Fahrenheit are affine scales, so they are converted here
// at the boundary and never carried through the arithmetic.
func Temperature(val float64, units string) (*unit.Unit, error) {
	switch units {
	case "", "K":
		return unit.New(val, unit.Kelvin), nil
	case "C", "°C":
		return unit.New(val+273.15, unit.Kelvin), nil
	case "F", "°F":
		return unit.New((val+459.67)*5./9., unit.Kelvin), nil
	default:
		return nil, &InputError{Msg: fmt.Sprintf("unknown temperature unit %q", units)}
	}
}
