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

package cpu

import (
	"fmt"

	"github.com/gopherduino/gopherduino/hardware/cpu/instructions"
)

// Result records the most recently executed instruction.
type Result struct {
	// word address of the instruction
	Address uint16

	Opcode instructions.Opcode

	// second word of double word instructions
	Next uint16

	Defn *instructions.Definition

	// cycles taken by the instruction, including any extra cycles for taken
	// branches and skips
	Cycles int
}

func (r Result) String() string {
	if r.Defn == nil {
		return "no instruction"
	}
	return fmt.Sprintf("%04x: %s", r.Address<<1, r.Defn.Format(r.Opcode, r.Next, r.Address))
}
