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

// Package reactor implements steady-state sizing and performance
// calculations for isothermal chemical reactors.
//
// Two ideal reactor models are included: the continuous stirred-tank
// reactor (CSTR) and the plug-flow reactor (PFR, optionally with
// recycle). For each model, any one of the target conversion, the
// reactor volume, or the residence time may be given and the others
// are calculated, together with the full outlet state: reaction rate,
// per-component outlet concentrations, and the gas-phase dilution
// factor.
//
// The reaction is described by a single power-law rate expression
// r = k·∏Cᵢ^nᵢ over a homogeneous-phase feed stream. All physical
// quantities are carried as github.com/ctessum/unit values so that
// dimensionally inconsistent arithmetic fails instead of silently
// producing wrong magnitudes.
//
// All operations are synchronous pure functions over immutable inputs;
// independent queries may run concurrently without coordination.
package reactor

// Version gives the version number of this library.
const Version = "0.1.0"
