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

// Command reactor is a command-line interface for the steady-state
// reactor design engine.
package main

import (
	"fmt"
	"os"

	"github.com/ctessum/reactor/reactorutil"
)

func main() {
	if err := reactorutil.RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
