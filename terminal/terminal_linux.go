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

//go:build linux

package terminal

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/gopherduino/gopherduino/curated"
	"github.com/gopherduino/gopherduino/logger"
)

// Terminal is a terminal that has been put into raw mode.
type Terminal struct {
	f *os.File

	canAttr unix.Termios
	rawAttr unix.Termios
}

// RawMode puts the terminal into raw mode. Restore() should be called to put
// the terminal back into its original mode.
func RawMode(f *os.File) (*Terminal, error) {
	if !IsTerminal(f) {
		return nil, curated.Errorf(NotATerminal, f.Name())
	}

	attr, err := unix.IoctlGetTermios(int(f.Fd()), unix.TCGETS)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	t := &Terminal{
		f:       f,
		canAttr: *attr,
		rawAttr: *attr,
	}

	termios.Cfmakeraw(&t.rawAttr)
	t.rawAttr.Oflag |= unix.OPOST
	t.rawAttr.Lflag |= unix.ISIG

	if err := unix.IoctlSetTermios(int(f.Fd()), unix.TCSETS, &t.rawAttr); err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	logger.Logf(logger.Allow, "terminal", "%s in raw mode", f.Name())

	return t, nil
}

// Restore the terminal to the mode it was in before RawMode() was called.
func (t *Terminal) Restore() error {
	if err := unix.IoctlSetTermios(int(t.f.Fd()), unix.TCSETS, &t.canAttr); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}
