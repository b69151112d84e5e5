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
	"github.com/gopherduino/gopherduino/hardware/memory/addresses"
)

// Flag is the bit number of a flag in the status register.
type Flag uint8

// List of valid Flag values.
const (
	Carry Flag = iota
	Zero
	Negative
	Overflow
	Sign
	HalfCarry
	Test
	Interrupt
)

// flag names in bit order
const flagNames = "CZNVSHTI"

// Mask returns the bit mask for the flag.
func (f Flag) Mask() uint8 {
	return 0x01 << f
}

func (f Flag) String() string {
	return flagNames[f : f+1]
}

// Status is a view of the status register.
type Status struct {
	data []uint8
}

// NewStatus is the preferred method of initialisation for the Status type.
func NewStatus(data []uint8) Status {
	return Status{data: data}
}

// Label returns the canonical name for the status register.
func (sr Status) Label() string {
	return "SREG"
}

// String returns the flags with the most significant bit first. Set flags are
// upper case.
func (sr Status) String() string {
	v := sr.Value()
	b := make([]byte, 8)
	for i := range 8 {
		f := Flag(7 - i)
		c := flagNames[f]
		if v&f.Mask() == 0 {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return string(b)
}

// Value returns the status register as an 8-bit value.
func (sr Status) Value() uint8 {
	return sr.data[addresses.SREG]
}

// Load an 8-bit value into the status register.
func (sr Status) Load(v uint8) {
	sr.data[addresses.SREG] = v
}

// Get the state of a single flag.
func (sr Status) Get(f Flag) bool {
	return sr.data[addresses.SREG]&f.Mask() != 0
}

// Set the state of a single flag.
func (sr Status) Set(f Flag, v bool) {
	if v {
		sr.data[addresses.SREG] |= f.Mask()
	} else {
		sr.data[addresses.SREG] &^= f.Mask()
	}
}

// Merge replaces the flags selected by the mask with the corresponding bits
// of the value. Flags outside of the mask are unchanged.
func (sr Status) Merge(mask uint8, v uint8) {
	sr.data[addresses.SREG] = sr.data[addresses.SREG]&^mask | v&mask
}
