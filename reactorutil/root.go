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

// Package reactorutil holds the configuration and command-line
// interface for the reactor design engine.
package reactorutil

import (
	"fmt"
	"time"

	"github.com/ctessum/reactor"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile string

	// Config holds the global configuration data.
	Config *ConfigData

	logger *logrus.Logger
)

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableSorting:  true,
	})

	RootCmd.AddCommand(versionCmd)
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(sweepCmd)

	RootCmd.PersistentFlags().StringVar(&configFile, "config", "./reactor.toml",
		"configuration file location")
}

// RootCmd is the main command.
var RootCmd = &cobra.Command{
	Use:   "reactor",
	Short: "A steady-state chemical reactor design calculator.",
	Long: `A design-equation engine for continuous stirred-tank and plug-flow
reactors with power-law kinetics. The reaction system is described in a
TOML configuration file; see the package documentation for the format.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return Startup(configFile)
	},
}

// Startup reads the configuration file.
func Startup(configFile string) error {
	var err error
	Config, err = ReadConfigFile(configFile)
	if err != nil {
		return err
	}
	logger.WithField("config", configFile).Info("configuration loaded")
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Reactor",

	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Reactor v%s\n", reactor.Version)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}
