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

package registers

import (
	"fmt"

	"github.com/gopherduino/gopherduino/hardware/memory/addresses"
)

// StackPointer is a view of the 16-bit stack pointer.
type StackPointer struct {
	data []uint8
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer type.
func NewStackPointer(data []uint8) StackPointer {
	return StackPointer{data: data}
}

// Label returns the canonical name for the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%04x", sp.Value())
}

// Value returns the current value of the stack pointer.
func (sp StackPointer) Value() uint16 {
	return uint16(sp.data[addresses.SPL]) | uint16(sp.data[addresses.SPH])<<8
}

// Load a value into the stack pointer.
func (sp StackPointer) Load(v uint16) {
	sp.data[addresses.SPL] = uint8(v)
	sp.data[addresses.SPH] = uint8(v >> 8)
}

// Add a signed amount to the stack pointer. The stack pointer wraps around
// at the 16-bit boundary.
func (sp StackPointer) Add(n int) {
	sp.Load(sp.Value() + uint16(n))
}
