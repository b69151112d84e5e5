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

//go:build !linux

package terminal

import (
	"os"

	"golang.org/x/term"

	"github.com/gopherduino/gopherduino/curated"
)

// Terminal is a terminal that has been put into raw mode.
type Terminal struct {
	f     *os.File
	state *term.State
}

// RawMode puts the terminal into raw mode. Restore() should be called to put
// the terminal back into its original mode.
//
// On this platform output processing is not left enabled.
func RawMode(f *os.File) (*Terminal, error) {
	if !IsTerminal(f) {
		return nil, curated.Errorf(NotATerminal, f.Name())
	}

	state, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	return &Terminal{f: f, state: state}, nil
}

// Restore the terminal to the mode it was in before RawMode() was called.
func (t *Terminal) Restore() error {
	if err := term.Restore(int(t.f.Fd()), t.state); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}
