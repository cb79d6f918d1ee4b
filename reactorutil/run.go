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
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/ctessum/reactor"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Solve the configured reactor query",
	Long: "Solve the design equation for the reactor, mode, and known value " +
		"given in the Query section of the configuration file, and write the " +
		"result as JSON.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(Config)
	},
}

// Run solves the configured query and writes the result as indented
// JSON, to Config.OutputFile if set and to standard output otherwise.
func Run(config *ConfigData) error {
	s, err := config.System()
	if err != nil {
		return err
	}
	q, err := config.ReactorQuery()
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"reactor": q.Reactor,
		"mode":    q.Mode,
	}).Info("solving design equation")

	res, err := reactor.Solve(s, q)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(res.Report(), "", "  ")
	if err != nil {
		return fmt.Errorf("problem encoding the result: %v", err)
	}
	b = append(b, '\n')

	if config.OutputFile == "" {
		_, err = os.Stdout.Write(b)
		return err
	}
	if err := ioutil.WriteFile(config.OutputFile, b, 0644); err != nil {
		return fmt.Errorf("problem writing the output file: %v", err)
	}
	logger.WithField("file", config.OutputFile).Info("result written")
	return nil
}
