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
	"bytes"
	"testing"
)

func TestPlotCurve(t *testing.T) {
	points, err := Sweep(liquidSystem(), 0, 0.9, 10, SolverParams{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := PlotCurve(points, &buf); err != nil {
		t.Fatal(err)
	}
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if buf.Len() < len(png) || !bytes.Equal(buf.Bytes()[:len(png)], png) {
		t.Error("output does not start with the PNG signature")
	}
}

func TestPlotCurveEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := PlotCurve(nil, &buf); err == nil {
		t.Error("expected an error for an empty curve")
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written on failure")
	}
}
