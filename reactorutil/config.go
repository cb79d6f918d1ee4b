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

package reactorutil

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/ctessum/reactor"
)

// Quantity is a magnitude with a unit label, as it appears in the
// configuration file. An empty label means the value is already SI.
type Quantity struct {
	Value float64
	Units string
}

// ComponentConfig describes one feed component in the configuration
// file.
type ComponentConfig struct {
	// Name identifies the species, for example "A" or "ethanol".
	Name string

	// Phase is either "liquid" or "gaseous". All components must share
	// the same phase.
	Phase string

	// FlowRate is the inlet volumetric flow of this component.
	// Accepted units include m3/s, m3/min, m3/h, L/s, L/min, and L/h.
	FlowRate Quantity

	// Concentration is the inlet molar concentration of this component.
	// Accepted units include mol/m3, mol/L, and mol/mL.
	Concentration Quantity
}

// KineticsConfig describes the power-law rate expression
// r = k·∏Cᵢ^nᵢ.
type KineticsConfig struct {
	// RateConstant is the magnitude of k; its physical dimension is
	// derived from the reaction orders.
	RateConstant float64

	// Orders are the reaction orders, aligned with the component list.
	Orders []float64
}

// ConditionsConfig gives the inlet and reactor temperature and
// pressure. Accepted temperature units are K, C, and F; accepted
// pressure units include Pa, kPa, MPa, bar, atm, mmHg, psi, and
// kgf/cm2.
type ConditionsConfig struct {
	InitialTemperature Quantity
	InitialPressure    Quantity
	FinalTemperature   Quantity
	FinalPressure      Quantity
}

// QueryConfig selects the reactor model and the known value.
type QueryConfig struct {
	// Reactor is either "CSTR" or "PFR".
	Reactor string

	// Mode is one of "conversion", "volume", and "residence_time"; it
	// selects which of the three fields below is the known value.
	Mode string

	// Conversion is the target conversion of the limiting reagent.
	Conversion float64

	// Volume is the reactor volume. Accepted units include m3, L,
	// and mL.
	Volume Quantity

	// ResidenceTime is the reactor residence time. Accepted units are
	// s, min, and h.
	ResidenceTime Quantity

	// Recycle is the recycle ratio for plug-flow runs. Zero means a
	// once-through reactor.
	Recycle float64
}

// SweepConfig controls the volume-vs-conversion comparison curve
// produced by the sweep command.
type SweepConfig struct {
	// MaxConversion is the upper end of the conversion grid; the grid
	// always starts at 0.01.
	MaxConversion float64

	// Points is the number of grid points.
	Points int

	// CurveFile is the path where the curve is written as CSV. It can
	// include environment variables.
	CurveFile string

	// PlotFile is the path where the curve is rendered as a PNG image.
	// It can include environment variables. If PlotFile is left blank,
	// no image is written.
	PlotFile string
}

// ConfigData holds a complete reactor design request.
type ConfigData struct {
	// Components are the species in the feed stream.
	Components []ComponentConfig

	// Coefficients are the stoichiometric coefficients aligned with
	// Components: negative for reactants, positive for products.
	Coefficients []float64

	// Kinetics is the power-law rate expression.
	Kinetics KineticsConfig

	// Conditions are the operating temperatures and pressures.
	Conditions ConditionsConfig

	// Query selects the reactor model and the known value.
	Query QueryConfig

	// Sweep controls the sweep command.
	Sweep SweepConfig

	// OutputFile is the path where the run command writes its JSON
	// result. It can include environment variables. If OutputFile is
	// left blank, the result is written to standard output.
	OutputFile string
}

// ReadConfigFile reads and parses a TOML configuration file.
func ReadConfigFile(filename string) (config *ConfigData, err error) {
	var (
		file  *os.File
		bytes []byte
	)
	file, err = os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("the configuration file you have specified, %v, does not "+
			"appear to exist. Please check the file name and location and "+
			"try again.\n", filename)
	}
	reader := bufio.NewReader(file)
	bytes, err = ioutil.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("problem reading configuration file: %v", err)
	}

	config = new(ConfigData)
	_, err = toml.Decode(string(bytes), config)
	if err != nil {
		return nil, fmt.Errorf(
			"there has been an error parsing the configuration file: %v\n", err)
	}

	config.OutputFile = os.ExpandEnv(config.OutputFile)
	config.Sweep.CurveFile = os.ExpandEnv(config.Sweep.CurveFile)
	config.Sweep.PlotFile = os.ExpandEnv(config.Sweep.PlotFile)

	if len(config.Components) == 0 {
		return nil, fmt.Errorf("there are no components in the configuration file. " +
			"Please fill in the Components section and try again.")
	}
	if len(config.Coefficients) != len(config.Components) {
		return nil, fmt.Errorf("there are %d stoichiometric coefficients for %d "+
			"components. Please give exactly one coefficient per component, "+
			"negative for reactants and positive for products.",
			len(config.Coefficients), len(config.Components))
	}
	if len(config.Kinetics.Orders) != len(config.Components) {
		return nil, fmt.Errorf("there are %d reaction orders for %d components. "+
			"Please give exactly one order per component in the Kinetics section.",
			len(config.Kinetics.Orders), len(config.Components))
	}
	return
}

// System builds the reaction system from the configuration, converting
// every quantity to SI units at this boundary.
func (c *ConfigData) System() (*reactor.System, error) {
	s := &reactor.System{
		Coefficients: c.Coefficients,
		Kinetics: reactor.KineticLaw{
			RateConstant: c.Kinetics.RateConstant,
			Orders:       c.Kinetics.Orders,
		},
	}
	for _, cc := range c.Components {
		flow, err := reactor.VolumetricFlow(cc.FlowRate.Value, cc.FlowRate.Units)
		if err != nil {
			return nil, fmt.Errorf("component %s: %v", cc.Name, err)
		}
		conc, err := reactor.Concentration(cc.Concentration.Value, cc.Concentration.Units)
		if err != nil {
			return nil, fmt.Errorf("component %s: %v", cc.Name, err)
		}
		s.Components = append(s.Components, reactor.Component{
			Name:          cc.Name,
			Phase:         reactor.Phase(cc.Phase),
			FlowRate:      flow,
			Concentration: conc,
		})
	}
	var err error
	s.Conditions.InitialTemperature, err = reactor.Temperature(
		c.Conditions.InitialTemperature.Value, c.Conditions.InitialTemperature.Units)
	if err != nil {
		return nil, fmt.Errorf("initial temperature: %v", err)
	}
	s.Conditions.FinalTemperature, err = reactor.Temperature(
		c.Conditions.FinalTemperature.Value, c.Conditions.FinalTemperature.Units)
	if err != nil {
		return nil, fmt.Errorf("final temperature: %v", err)
	}
	s.Conditions.InitialPressure, err = reactor.Pressure(
		c.Conditions.InitialPressure.Value, c.Conditions.InitialPressure.Units)
	if err != nil {
		return nil, fmt.Errorf("initial pressure: %v", err)
	}
	s.Conditions.FinalPressure, err = reactor.Pressure(
		c.Conditions.FinalPressure.Value, c.Conditions.FinalPressure.Units)
	if err != nil {
		return nil, fmt.Errorf("final pressure: %v", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ReactorQuery builds the solver query from the configuration.
func (c *ConfigData) ReactorQuery() (reactor.Query, error) {
	q := reactor.Query{
		Reactor: reactor.ReactorType(c.Query.Reactor),
		Mode:    reactor.InputMode(c.Query.Mode),
		Recycle: c.Query.Recycle,
	}
	switch q.Reactor {
	case reactor.TypeCSTR, reactor.TypePFR:
	default:
		return q, fmt.Errorf("the Reactor variable in the configuration file "+
			"needs to be set to either CSTR or PFR, but is currently set to `%s`",
			c.Query.Reactor)
	}
	var err error
	switch q.Mode {
	case reactor.InputConversion:
		q.Conversion = c.Query.Conversion
	case reactor.InputVolume:
		q.Volume, err = reactor.Volume(c.Query.Volume.Value, c.Query.Volume.Units)
		if err != nil {
			return q, fmt.Errorf("reactor volume: %v", err)
		}
	case reactor.InputResidenceTime:
		q.ResidenceTime, err = reactor.Duration(
			c.Query.ResidenceTime.Value, c.Query.ResidenceTime.Units)
		if err != nil {
			return q, fmt.Errorf("residence time: %v", err)
		}
	default:
		return q, fmt.Errorf("the Mode variable in the configuration file needs "+
			"to be set to conversion, volume, or residence_time, but is "+
			"currently set to `%s`", c.Query.Mode)
	}
	return q, nil
}
