// This file is part of Gopherduino.
//
// Gopherduino is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherduino is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherduino.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

func (md *Modes) help() {
	if md.Output == nil {
		return
	}

	var numFlags int
	md.flags.VisitAll(func(_ *flag.Flag) { numFlags++ })

	banner := md.Path()

	if numFlags == 0 && len(md.subModes) == 0 {
		if banner != "" {
			fmt.Fprintf(md.Output, "No help available for %s\n", banner)
		} else {
			io.WriteString(md.Output, "No help available\n")
		}
		return
	}

	if banner != "" {
		fmt.Fprintf(md.Output, "Usage for %s mode:\n", banner)
	} else {
		io.WriteString(md.Output, "Usage:\n")
	}

	if numFlags > 0 {
		md.flags.SetOutput(md.Output)
		md.flags.PrintDefaults()
		md.flags.SetOutput(&md.discard)
	}

	if len(md.subModes) > 0 {
		if numFlags > 0 {
			io.WriteString(md.Output, "\n")
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.additionalHelp)
	}
}
