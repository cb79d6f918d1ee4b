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

import "testing"

func TestSweep(t *testing.T) {
	points, err := Sweep(liquidSystem(), 0, 0.95, 20, SolverParams{})
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 20 {
		t.Fatalf("got %d points, want 20", len(points))
	}
	if points[0].Conversion != 0.01 || points[19].Conversion != 0.95 {
		t.Errorf("grid spans [%g, %g], want [0.01, 0.95]",
			points[0].Conversion, points[19].Conversion)
	}
	for i, pt := range points {
		if pt.CSTRVolume <= 0 || pt.PFRVolume <= 0 {
			t.Fatalf("point %d has a non-positive volume: %+v", i, pt)
		}
		if pt.PFRVolume >= pt.CSTRVolume {
			t.Errorf("X = %g: plug-flow volume %g not below stirred-tank %g",
				pt.Conversion, pt.PFRVolume, pt.CSTRVolume)
		}
		if i > 0 {
			if pt.CSTRVolume <= points[i-1].CSTRVolume ||
				pt.PFRVolume <= points[i-1].PFRVolume {
				t.Errorf("X = %g: volumes did not increase with conversion",
					pt.Conversion)
			}
		}
	}
}

func TestSweepBadInputs(t *testing.T) {
	if _, err := Sweep(liquidSystem(), 0, 0.95, 1, SolverParams{}); err == nil {
		t.Error("expected an error for a single-point sweep")
	}
	if _, err := Sweep(liquidSystem(), 0, 1, 20, SolverParams{}); err == nil {
		t.Error("expected an error for a sweep reaching complete conversion")
	}
	s := liquidSystem()
	s.Coefficients = []float64{1, 1}
	if _, err := Sweep(s, 0, 0.95, 20, SolverParams{}); err == nil {
		t.Error("expected the solver error to surface from the sweep")
	}
}
