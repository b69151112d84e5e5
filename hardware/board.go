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
	"fmt"
	"io"

	"github.com/gopherduino/gopherduino/hardware/cpu"
	"github.com/gopherduino/gopherduino/hardware/memory"
	"github.com/gopherduino/gopherduino/hardware/memory/bus"
	"github.com/gopherduino/gopherduino/hardware/peripherals/eeprom"
	"github.com/gopherduino/gopherduino/hardware/peripherals/ports"
	"github.com/gopherduino/gopherduino/hardware/peripherals/timer"
	"github.com/gopherduino/gopherduino/hardware/peripherals/usart"
	"github.com/gopherduino/gopherduino/logger"
)

// PinCallback is called when the output level of a pin changes.
type PinCallback func(pin int, level bool)

// Board is the ATmega328P and its peripherals.
type Board struct {
	Mem     *memory.Memory
	Program *memory.Program
	CPU     *cpu.CPU

	Ports  *ports.Ports
	EEPROM *eeprom.EEPROM
	USART  *usart.USART
	Timer  *timer.Timer

	pinCallbacks [ports.NumPins]PinCallback
}

// NewBoard creates a new Board and everything associated with the hardware.
// Bytes written to the serial port by the program are sent to serialOut,
// which can be nil.
//
// The board is reset before returning.
func NewBoard(serialOut io.Writer) *Board {
	b := &Board{
		Mem:     memory.NewMemory(),
		Program: memory.NewProgram(),
	}

	b.CPU = cpu.NewCPU(b.Mem, b.Program)

	// the order of creation is the order in which the poll functions are
	// called
	b.EEPROM = eeprom.NewEEPROM(b)
	b.Ports = ports.NewPorts(b, b)
	b.Timer = timer.NewTimer(b)
	b.USART = usart.NewUSART(b, serialOut)

	b.Reset()

	return b
}

func (b *Board) String() string {
	return b.CPU.String()
}

// LoadProgram loads a program image into the program store. The board
// should be reset before the program is run.
func (b *Board) LoadProgram(data []uint8) error {
	err := b.Program.Load(data)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	logger.Logf(logger.Allow, "board", "program of %d bytes loaded", len(data))
	return nil
}

// LoadEEPROM loads an image into the non-volatile memory.
func (b *Board) LoadEEPROM(data []uint8) error {
	err := b.EEPROM.Load(data)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	return nil
}

// Reset the board. The CPU is reset and the peripheral registers are returned
// to their initial values. The data space, the program store and the contents
// of the EEPROM are not changed.
func (b *Board) Reset() {
	b.CPU.Reset()
	b.Ports.Reset()
	b.EEPROM.Reset()
	b.Timer.Reset()
	b.USART.Reset()
}

// Step runs the program until the next poll boundary or until the CPU halts.
func (b *Board) Step() (cpu.State, error) {
	return b.CPU.Run()
}

// Cycles implements the peripherals.Host interface.
func (b *Board) Cycles() uint64 {
	return b.CPU.Cycles
}

// RegisterIO implements the peripherals.Host interface.
func (b *Board) RegisterIO(address uint16, read bus.ReadFunc, write bus.WriteFunc) {
	b.Mem.RegisterIO(address, read, write)
}

// RegisterPoll implements the peripherals.Host interface.
func (b *Board) RegisterPoll(f func()) {
	b.CPU.RegisterPoll(f)
}

// Raise implements the peripherals.Host interface.
func (b *Board) Raise(vector int) {
	b.CPU.Interrupts.Raise(vector)
}

// SetPin sets the externally driven level of a pin.
func (b *Board) SetPin(pin int, level bool) {
	b.Ports.SetPin(pin, level)
}

// Pin returns the level of a pin.
func (b *Board) Pin(pin int) bool {
	return b.Ports.Pin(pin)
}

// AttachPinCallback registers a function to be called whenever the output
// level of the pin changes. Only one function can be attached to a pin.
// Attaching a second function, or a pin number out of range, is a programming
// error and will cause a panic.
func (b *Board) AttachPinCallback(pin int, f PinCallback) {
	if pin < 0 || pin >= ports.NumPins {
		panic(fmt.Sprintf("board: pin %d is out of range", pin))
	}
	if b.pinCallbacks[pin] != nil {
		panic(fmt.Sprintf("board: pin %d already has a callback", pin))
	}
	b.pinCallbacks[pin] = f
}

// OutPin implements the peripherals.PinNotifier interface.
func (b *Board) OutPin(pin int, level bool) {
	if f := b.pinCallbacks[pin]; f != nil {
		f(pin, level)
	}
}
