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
)

// ProgramSize is the capacity of the program store in words.
const ProgramSize = 0x10000

// Sentinel error patterns.
const (
	ProgramTooLarge = "program: image too large (%d bytes)"
)

// Program is the program store. Instructions are 16-bit little-endian words
// and the program counter is a word address.
type Program struct {
	Words [ProgramSize]uint16

	// number of bytes in the most recently loaded image
	Length int
}

// NewProgram is the preferred method of initialisation for the Program type.
func NewProgram() *Program {
	return &Program{}
}

func (p *Program) String() string {
	return fmt.Sprintf("program: %d bytes", p.Length)
}

// Load a program image into the store. The store is cleared before loading.
// An image with an odd number of bytes is padded with zero.
func (p *Program) Load(data []uint8) error {
	if len(data) > ProgramSize*2 {
		return curated.Errorf(ProgramTooLarge, len(data))
	}

	clear(p.Words[:])
	for i := 0; i < len(data); i += 2 {
		w := uint16(data[i])
		if i+1 < len(data) {
			w |= uint16(data[i+1]) << 8
		}
		p.Words[i>>1] = w
	}
	p.Length = len(data)

	return nil
}

// Byte returns the byte at the byte address. Used by the LPM instruction. Even
// addresses are the low byte of a word.
func (p *Program) Byte(address uint16) uint8 {
	w := p.Words[address>>1]
	if address&0x01 == 0x01 {
		return uint8(w >> 8)
	}
	return uint8(w)
}
