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

// Package peripherals defines how the on-chip peripherals of the ATmega328P
// attach to the rest of the board.
//
// A peripheral registers callbacks for its registers in the data space with
// the Host and may register a function to be called at every poll boundary.
// Peripherals raise interrupts through the Host and never call into the CPU
// directly.
//
// The peripherals themselves are in the sub-packages ports, eeprom, usart and
// timer.
package peripherals

import (
	"github.com/gopherduino/gopherduino/hardware/memory/bus"
)

// Host is the board as seen by a peripheral.
type Host interface {
	bus.IOBus

	// RegisterPoll adds a function to be called at every poll boundary
	RegisterPoll(f func())

	// Raise an interrupt vector
	Raise(vector int)

	// Cycles returns the number of CPU cycles since reset
	Cycles() uint64
}

// PinNotifier is implemented by types that want to know when the output level
// of a pin has changed.
type PinNotifier interface {
	OutPin(pin int, level bool)
}
