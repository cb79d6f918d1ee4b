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

import "fmt"

// InputError indicates a missing, malformed, or mismatched-length
// request field.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return "reactor: " + e.Msg }

// PhaseMismatchError indicates a feed stream that mixes liquid and
// gaseous components. The engine requires a homogeneous-phase feed.
type PhaseMismatchError struct {
	Component string
}

func (e *PhaseMismatchError) Error() string {
	return fmt.Sprintf("reactor: component %s does not match the phase of "+
		"the rest of the feed; use only liquid or only gaseous components",
		e.Component)
}

// NoLimitingReagentError indicates a stoichiometry with no reactant
// (no negative coefficient).
type NoLimitingReagentError struct{}

func (e *NoLimitingReagentError) Error() string {
	return "reactor: no limiting reagent: the stoichiometry defines no reactant"
}

// InvalidStoichiometryError indicates stoichiometric coefficients that
// cannot be interpreted: a zero coefficient or a length that does not
// match the component list.
type InvalidStoichiometryError struct {
	Msg string
}

func (e *InvalidStoichiometryError) Error() string {
	return "reactor: invalid stoichiometry: " + e.Msg
}

// NegativeConcentrationError indicates an infeasible trial conversion,
// typically one too large for the feed composition.
type NegativeConcentrationError struct {
	Component  string
	Conversion float64
}

func (e *NegativeConcentrationError) Error() string {
	return fmt.Sprintf("reactor: conversion %g gives a negative outlet "+
		"concentration for component %s", e.Conversion, e.Component)
}

// ZeroRateError indicates degenerate kinetics: the rate expression
// evaluates to exactly zero, so no finite reactor can be sized.
type ZeroRateError struct {
	Conversion float64
}

func (e *ZeroRateError) Error() string {
	return fmt.Sprintf("reactor: the reaction rate is zero at conversion %g",
		e.Conversion)
}

// UnitMismatchError indicates a quantity whose physical dimension does
// not reduce to what the calculation requires.
type UnitMismatchError struct {
	Have, Want string
}

func (e *UnitMismatchError) Error() string {
	return fmt.Sprintf("reactor: unit mismatch: have %s, want %s", e.Have, e.Want)
}

// ConvergenceError indicates that the bracketed root finder could not
// locate a conversion: either the design equation has no sign change
// over the search bracket, or the iteration cap was reached.
type ConvergenceError struct {
	Msg string
}

func (e *ConvergenceError) Error() string {
	return "reactor: failed to converge to a valid conversion: " + e.Msg
}

// IntegrationError indicates that the plug-flow quadrature did not
// reach the requested tolerance.
type IntegrationError struct {
	Msg string
}

func (e *IntegrationError) Error() string {
	return "reactor: quadrature failed: " + e.Msg
}

// DomainError indicates a requested known value outside the physically
// valid range, for example a conversion of 1 or a negative volume.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string { return "reactor: " + e.Msg }
