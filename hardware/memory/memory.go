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

package memory

import (
	"fmt"

	"github.com/gopherduino/gopherduino/curated"
	"github.com/gopherduino/gopherduino/hardware/memory/addresses"
	"github.com/gopherduino/gopherduino/hardware/memory/bus"
)

// Sentinel error patterns.
const (
	AddressOutOfRange = "memory: address out of range (%#04x)"
)

type ioRegister struct {
	read  bus.ReadFunc
	write bus.WriteFunc
}

// Memory is the data space of the microcontroller. It implements the
// bus.CPUBus, bus.IOBus and bus.DebugBus interfaces.
type Memory struct {
	// the backing bytes of the data space. the register views in the
	// cpu/registers package operate on this slice directly
	Data []uint8

	// sparse map of registered I/O addresses
	io map[uint16]ioRegister

	// called after every bus write to the status register
	statusWatcher func(prev uint8, next uint8)
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{
		Data: make([]uint8, addresses.DataSize),
		io:   make(map[uint16]ioRegister),
	}
}

func (mem *Memory) String() string {
	return fmt.Sprintf("data space: %d bytes, %d I/O registers", len(mem.Data), len(mem.io))
}

// Clear the data space. Registered callbacks are not affected.
func (mem *Memory) Clear() {
	clear(mem.Data)
}

// RegisterIO binds a pair of callbacks to an I/O address. Either callback may
// be nil. Registering the same address twice is a programming error and will
// cause a panic, as will an address outside of the I/O range.
func (mem *Memory) RegisterIO(address uint16, read bus.ReadFunc, write bus.WriteFunc) {
	if address >= addresses.IOLimit {
		panic(fmt.Sprintf("memory: cannot register I/O callbacks for address %#04x", address))
	}
	if _, ok := mem.io[address]; ok {
		panic(fmt.Sprintf("memory: I/O address %#04x registered twice", address))
	}
	mem.io[address] = ioRegister{read: read, write: write}
}

// IsRegistered returns true if callbacks have been registered for the address.
func (mem *Memory) IsRegistered(address uint16) bool {
	_, ok := mem.io[address]
	return ok
}

// WatchStatus sets the function to be called after every bus write to the
// status register. The function receives the previous and the new value.
func (mem *Memory) WatchStatus(f func(prev uint8, next uint8)) {
	mem.statusWatcher = f
}

// Read implements the bus.CPUBus interface.
func (mem *Memory) Read(address uint16) uint8 {
	if address < addresses.IOLimit {
		if r, ok := mem.io[address]; ok && r.read != nil {
			return r.read(address)
		}
	}
	if int(address) >= len(mem.Data) {
		return 0
	}
	return mem.Data[address]
}

// Write implements the bus.CPUBus interface.
func (mem *Memory) Write(address uint16, data uint8) {
	if address < addresses.IOLimit {
		if r, ok := mem.io[address]; ok && r.write != nil {
			r.write(address, data)
		}

		if address == addresses.SREG {
			prev := mem.Data[address]
			mem.Data[address] = data
			if mem.statusWatcher != nil {
				mem.statusWatcher(prev, data)
			}
			return
		}
	}
	if int(address) >= len(mem.Data) {
		return
	}
	mem.Data[address] = data
}

// Peek implements the bus.DebugBus interface.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	if int(address) >= len(mem.Data) {
		return 0, curated.Errorf(AddressOutOfRange, address)
	}
	return mem.Data[address], nil
}

// Poke implements the bus.DebugBus interface.
func (mem *Memory) Poke(address uint16, value uint8) error {
	if int(address) >= len(mem.Data) {
		return curated.Errorf(AddressOutOfRange, address)
	}
	mem.Data[address] = value
	return nil
}
