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

// Package hardware is the base package for the ATmega328P emulation. The Board
// type ties together the CPU, the data space, the program store and the on-chip
// peripherals.
//
// A Board is ready to use as soon as it has been created. The host loads a
// program, resets the board and then calls Step() repeatedly. Step() returns
// at every poll boundary or when the program halts:
//
//	board := hardware.NewBoard(os.Stdout)
//	err := board.LoadProgram(data)
//	board.Reset()
//	for {
//		state, err := board.Step()
//		if err != nil || state == cpu.Halted {
//			break
//		}
//	}
//
// The Run() function wraps this loop with a check function that is called
// between steps.
//
// The Board implements the peripherals.Host interface, which is how the
// peripherals attach to the data space and raise interrupts.
package hardware
