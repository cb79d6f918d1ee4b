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
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotCurve renders the sizing comparison curve as a PNG image and
// writes it to w.
func PlotCurve(points []CurvePoint, w io.Writer) error {
	if len(points) == 0 {
		return &InputError{Msg: "no curve points to plot"}
	}
	p, err := plot.New()
	if err != nil {
		return fmt.Errorf("creating plot: %v", err)
	}
	p.Title.Text = "Reactor volume vs. conversion"
	p.X.Label.Text = "Conversion of limiting reagent"
	p.Y.Label.Text = "Volume (m³)"

	cstr := make(plotter.XYs, len(points))
	pfr := make(plotter.XYs, len(points))
	for i, pt := range points {
		cstr[i].X, cstr[i].Y = pt.Conversion, pt.CSTRVolume
		pfr[i].X, pfr[i].Y = pt.Conversion, pt.PFRVolume
	}
	if err := plotutil.AddLinePoints(p, "CSTR", cstr, "PFR", pfr); err != nil {
		return fmt.Errorf("adding curves to plot: %v", err)
	}

	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("rendering plot: %v", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("writing plot: %v", err)
	}
	return nil
}
