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

// Package terminal puts the controlling terminal into a raw mode suitable for
// use as a serial console. Key presses are passed to the emulated USART
// without waiting for a newline and without being echoed.
//
// Output processing and signal generation are left enabled so that newlines
// from the program are displayed correctly and so that ctrl-c still
// interrupts the emulation.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Sentinel error patterns.
const (
	NotATerminal  = "terminal: %s is not a terminal"
	TerminalError = "terminal: %v"
)

// IsTerminal returns true if the file is a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
