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
	"strings"

	"github.com/gopherduino/gopherduino/hardware/memory/addresses"
)

// Register file numbers of the index register pairs.
const (
	W = int(addresses.W)
	X = int(addresses.X)
	Y = int(addresses.Y)
	Z = int(addresses.Z)
)

// File is a view of the 32 general purpose registers.
type File struct {
	data []uint8
}

// NewFile is the preferred method of initialisation for the File type. The
// data slice is the data space of the microcontroller.
func NewFile(data []uint8) File {
	return File{data: data[addresses.RegisterFile : addresses.RegisterFile+addresses.NumRegisters]}
}

func (f File) String() string {
	s := strings.Builder{}
	for r := range addresses.NumRegisters {
		if r > 0 {
			if r%8 == 0 {
				s.WriteRune('\n')
			} else {
				s.WriteRune(' ')
			}
		}
		s.WriteString(fmt.Sprintf("r%-2d=%02x", r, f.data[r]))
	}
	return s.String()
}

// Get the value of register r.
func (f File) Get(r int) uint8 {
	return f.data[r]
}

// Set the value of register r.
func (f File) Set(r int, v uint8) {
	f.data[r] = v
}

// Pair returns the 16-bit value of the register pair beginning at register r.
// Register r is the low byte.
func (f File) Pair(r int) uint16 {
	return uint16(f.data[r]) | uint16(f.data[r+1])<<8
}

// SetPair sets the 16-bit value of the register pair beginning at register r.
func (f File) SetPair(r int, v uint16) {
	f.data[r] = uint8(v)
	f.data[r+1] = uint8(v >> 8)
}
