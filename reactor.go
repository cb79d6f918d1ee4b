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

// ReactorType selects the reactor model.
type ReactorType string

// The supported reactor models.
const (
	TypeCSTR ReactorType = "CSTR"
	TypePFR  ReactorType = "PFR"
)

// InputMode selects which of conversion, volume, and residence time is
// known; the other two are calculated.
type InputMode string

// The supported input modes.
const (
	InputConversion    InputMode = "conversion"
	InputVolume        InputMode = "volume"
	InputResidenceTime InputMode = "residence_time"
)

// Modes lists the input modes supported by both reactor models.
func Modes() []InputMode {
	return []InputMode{InputConversion, InputVolume, InputResidenceTime}
}

// Query is one reactor sizing or performance request. Exactly one of
// the known-value fields is read, selected by Mode.
type Query struct {
	Reactor ReactorType
	Mode    InputMode

	// Conversion is the target conversion of the limiting reagent
	// (Mode == InputConversion).
	Conversion float64

	// Volume is the reactor volume [m³] (Mode == InputVolume).
	Volume *unit.Unit

	// ResidenceTime is the reactor residence time [s]
	// (Mode == InputResidenceTime).
	ResidenceTime *unit.Unit

	// Recycle is the recycle ratio, used by plug-flow queries only.
	Recycle float64

	// Params overrides the default solver settings when non-zero.
	Params SolverParams
}

// Solve runs the query against the reaction system and returns the
// full outlet state. Failures are typed: see the error definitions in
// this package.
func Solve(s *System, q Query) (*Result, error) {
	switch q.Reactor {
	case TypeCSTR:
		r := &CSTR{System: s, Params: q.Params}
		switch q.Mode {
		case InputConversion:
			return r.VolumeFromConversion(q.Conversion)
		case InputVolume:
			return r.ConversionFromVolume(q.Volume)
		case InputResidenceTime:
			return r.ConversionFromResidenceTime(q.ResidenceTime)
		}
	case TypePFR:
		r := &PFR{System: s, Recycle: q.Recycle, Params: q.Params}
		switch q.Mode {
		case InputConversion:
			return r.VolumeFromConversion(q.Conversion)
		case InputVolume:
			return r.ConversionFromVolume(q.Volume)
		case InputResidenceTime:
			return r.ConversionFromResidenceTime(q.ResidenceTime)
		}
	}
	return nil, &InputError{Msg: fmt.Sprintf(
		"unknown reactor type %q or input mode %q", q.Reactor, q.Mode)}
}

// Result is the full steady-state outlet description produced by every
// input mode of both reactor models.
type Result struct {
	// Conversion of the limiting reagent, in (0, 1).
	Conversion float64

	// Volume is the reactor volume [m³].
	Volume *unit.Unit

	// ResidenceTime is V/Q_tot [s].
	ResidenceTime *unit.Unit

	// Rate is the reaction rate at the outlet conversion [mol/m³/s].
	Rate *unit.Unit

	// OutletConcentrations maps component name to outlet
	// concentration [mol/m³].
	OutletConcentrations map[string]*unit.Unit

	// DilutionFactor is the combined correction
	// (1+ε·X)·P₀·T/(P·T₀) at the outlet conversion; every outlet
	// concentration has been divided by it.
	DilutionFactor float64

	// ExpansionCoefficient is ε, the fractional volumetric expansion
	// at full conversion; zero for all-liquid feeds.
	ExpansionCoefficient float64

	// LimitingReagent names the kinetically controlling reactant.
	LimitingReagent string

	// LimitingInletMolarRate is F_A0 [mol/s].
	LimitingInletMolarRate *unit.Unit

	// OutletFlow is the total volumetric flow [m³/s] before the
	// dilution correction; multiply by DilutionFactor for the
	// expanded flow.
	OutletFlow *unit.Unit
}

func (s *System) result(f *feedState, X float64, st *evalState, V *unit.Unit) *Result {
	out := make(map[string]*unit.Unit, len(s.Components))
	for i, c := range s.Components {
		out[c.Name] = st.conc[i]
	}
	return &Result{
		Conversion:             X,
		Volume:                 V,
		ResidenceTime:          unit.Div(V, f.totalFlow),
		Rate:                   st.rate,
		OutletConcentrations:   out,
		DilutionFactor:         st.dilution,
		ExpansionCoefficient:   s.expansionCoefficient(f.lim),
		LimitingReagent:        s.Components[f.lim].Name,
		LimitingInletMolarRate: f.limMolarFlow,
		OutletFlow:             f.totalFlow,
	}
}

// Measurement pairs a magnitude with an explicit unit label for
// serialized output.
type Measurement struct {
	Value float64 `json:"value"`
	Units string  `json:"units"`
}

// Report is the serializable form of a Result: every numeric field
// carries its SI unit tag.
type Report struct {
	Conversion             float64                `json:"conversion"`
	Volume                 Measurement            `json:"volume"`
	ResidenceTime          Measurement            `json:"residence_time"`
	ReactionRate           Measurement            `json:"reaction_rate"`
	OutletConcentrations   map[string]Measurement `json:"outlet_concentrations"`
	DilutionFactor         float64                `json:"dilution_factor"`
	ExpansionCoefficient   float64                `json:"expansion_coefficient"`
	LimitingReagent        string                 `json:"limiting_reagent"`
	LimitingInletMolarRate Measurement            `json:"limiting_reagent_inlet_molar_rate"`
	OutletFlow             Measurement            `json:"outlet_volumetric_flow"`
}

// Report converts the result to its serializable form.
func (r *Result) Report() *Report {
	conc := make(map[string]Measurement, len(r.OutletConcentrations))
	for name, c := range r.OutletConcentrations {
		conc[name] = Measurement{Value: c.Value(), Units: "mol/m³"}
	}
	return &Report{
		Conversion:             r.Conversion,
		Volume:                 Measurement{Value: r.Volume.Value(), Units: "m³"},
		ResidenceTime:          Measurement{Value: r.ResidenceTime.Value(), Units: "s"},
		ReactionRate:           Measurement{Value: r.Rate.Value(), Units: "mol/m³/s"},
		OutletConcentrations:   conc,
		DilutionFactor:         r.DilutionFactor,
		ExpansionCoefficient:   r.ExpansionCoefficient,
		LimitingReagent:        r.LimitingReagent,
		LimitingInletMolarRate: Measurement{Value: r.LimitingInletMolarRate.Value(), Units: "mol/s"},
		OutletFlow:             Measurement{Value: r.OutletFlow.Value(), Units: "m³/s"},
	}
}
