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
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/ctessum/reactor"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Compare reactor volumes over a range of conversions",
	Long: "Size both reactor types over a grid of conversions and write the " +
		"comparison curve as CSV, and optionally as a PNG plot. The grid is " +
		"controlled by the Sweep section of the configuration file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunSweep(Config)
	},
}

// RunSweep sizes both reactor types over the configured conversion
// grid and writes the curve to Config.Sweep.CurveFile as CSV and, if
// Config.Sweep.PlotFile is set, as a PNG image.
func RunSweep(config *ConfigData) error {
	if config.Sweep.CurveFile == "" {
		return fmt.Errorf("you need to specify a curve file in the " +
			"configuration file (for example: CurveFile = \"curve.csv\" in " +
			"the Sweep section)")
	}
	s, err := config.System()
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"points":        config.Sweep.Points,
		"maxConversion": config.Sweep.MaxConversion,
	}).Info("sweeping conversions")

	points, err := reactor.Sweep(s, config.Query.Recycle,
		config.Sweep.MaxConversion, config.Sweep.Points, reactor.SolverParams{})
	if err != nil {
		return err
	}

	if err := writeCurve(config.Sweep.CurveFile, points); err != nil {
		return err
	}
	logger.WithField("file", config.Sweep.CurveFile).Info("curve written")

	if config.Sweep.PlotFile != "" {
		f, err := os.Create(config.Sweep.PlotFile)
		if err != nil {
			return fmt.Errorf("problem creating the plot file: %v", err)
		}
		defer f.Close()
		if err := reactor.PlotCurve(points, f); err != nil {
			return err
		}
		logger.WithField("file", config.Sweep.PlotFile).Info("plot written")
	}
	return nil
}

func writeCurve(filename string, points []reactor.CurvePoint) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("problem creating the curve file: %v", err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write([]string{"conversion", "cstr_volume_m3", "pfr_volume_m3"}); err != nil {
		return err
	}
	for _, pt := range points {
		err := w.Write([]string{
			strconv.FormatFloat(pt.Conversion, 'g', -1, 64),
			strconv.FormatFloat(pt.CSTRVolume, 'g', -1, 64),
			strconv.FormatFloat(pt.PFRVolume, 'g', -1, 64),
		})
		if err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
