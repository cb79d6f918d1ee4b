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
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// CurvePoint is one sample of the sizing comparison curve: the volumes
// a stirred tank and a plug-flow reactor need to reach the same
// conversion on the same feed.
type CurvePoint struct {
	Conversion float64
	CSTRVolume float64 // [m³]
	PFRVolume  float64 // [m³]
}

// Sweep sizes both reactor types over a grid of n conversions from
// 0.01 to maxX and returns the comparison curve. Grid points are
// independent, so they are solved in parallel.
func Sweep(s *System, recycle, maxX float64, n int, params SolverParams) ([]CurvePoint, error) {
	if n < 2 {
		return nil, &InputError{Msg: fmt.Sprintf(
			"a conversion sweep needs at least 2 points, not %d", n)}
	}
	if maxX <= 0.01 || maxX >= 1 {
		return nil, &DomainError{Msg: fmt.Sprintf(
			"sweep upper conversion %g is outside the open interval (0.01, 1)", maxX)}
	}
	grid := floats.Span(make([]float64, n), 0.01, maxX)
	points := make([]CurvePoint, n)
	errs := make([]error, n)

	nprocs := runtime.GOMAXPROCS(0)
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for proc := 0; proc < nprocs; proc++ {
		go func(proc int) {
			defer wg.Done()
			cstr := &CSTR{System: s, Params: params}
			pfr := &PFR{System: s, Recycle: recycle, Params: params}
			for i := proc; i < n; i += nprocs {
				X := grid[i]
				cRes, err := cstr.VolumeFromConversion(X)
				if err != nil {
					errs[i] = err
					continue
				}
				pRes, err := pfr.VolumeFromConversion(X)
				if err != nil {
					errs[i] = err
					continue
				}
				points[i] = CurvePoint{
					Conversion: X,
					CSTRVolume: cRes.Volume.Value(),
					PFRVolume:  pRes.Volume.Value(),
				}
			}
		}(proc)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return points, nil
}
