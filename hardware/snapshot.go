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

package hardware

import (
	"github.com/gopherduino/gopherduino/hardware/memory/addresses"
)

// State is a copy of the visible state of the board. It is produced by the
// Snapshot() function and is intended for display, such as the memviz output
// of the command line tool. It can not be used to restore the board.
type State struct {
	// program counter as a byte address
	PC     uint16
	SP     uint16
	Status string

	Registers [addresses.NumRegisters]uint8

	Cycles     uint64
	State      string
	Interrupts string

	LastInstruction string

	Peripherals PeripheralState
}

// PeripheralState is the summary of each of the peripherals.
type PeripheralState struct {
	Ports  string
	EEPROM string
	USART  string
	Timer  string
}

// Snapshot the state of the board.
func (b *Board) Snapshot() *State {
	s := &State{
		PC:              b.CPU.PC << 1,
		SP:              b.CPU.SP.Value(),
		Status:          b.CPU.Status.String(),
		Cycles:          b.CPU.Cycles,
		State:           b.CPU.State.String(),
		Interrupts:      b.CPU.Interrupts.String(),
		LastInstruction: b.CPU.LastResult.String(),
		Peripherals: PeripheralState{
			Ports:  b.Ports.String(),
			EEPROM: b.EEPROM.String(),
			USART:  b.USART.String(),
			Timer:  b.Timer.String(),
		},
	}
	copy(s.Registers[:], b.Mem.Data[addresses.RegisterFile:])
	return s
}
