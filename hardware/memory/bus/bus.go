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

// Package bus defines the memory bus concept. The CPU accesses the data space
// through the CPUBus interface only. Peripherals attach to the low 256
// addresses of the bus with a pair of callbacks.
//
// The DebugBus interface is for meta-operations outside of the normal
// operation of the machine. Peek and Poke never trigger peripheral callbacks.
package bus

// ReadFunc is called when the CPU reads from a registered address. The
// returned value is the result of the read.
type ReadFunc func(address uint16) uint8

// WriteFunc is called when the CPU writes to a registered address. The value
// is committed to the backing byte after the function returns.
type WriteFunc func(address uint16, data uint8)

// CPUBus defines the operations for the memory system when accessed from the
// CPU.
type CPUBus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// IOBus defines the registration of peripheral callbacks.
type IOBus interface {
	RegisterIO(address uint16, read ReadFunc, write WriteFunc)
}

// DebugBus defines the meta-operations for the memory system.
type DebugBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}
