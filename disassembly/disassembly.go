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

package disassembly

import (
	"fmt"

	"github.com/gopherduino/gopherduino/hardware/cpu/instructions"
	"github.com/gopherduino/gopherduino/hardware/memory"
)

// Entry is a disassembled instruction.
type Entry struct {
	// byte address of the instruction
	Address uint16

	// the instruction words. one or two words depending on the instruction
	Words []uint16

	Defn *instructions.Definition

	// string representations of the instruction
	Bytecode string
	Mnemonic string
	Operands string
}

func (e *Entry) String() string {
	if e.Operands == "" {
		return e.Mnemonic
	}
	return fmt.Sprintf("%s %s", e.Mnemonic, e.Operands)
}

// Disassembly is the listing of a program.
type Disassembly struct {
	Entries []*Entry
}

// FromProgram disassembles the program from address zero up to the length of
// the most recently loaded image.
func FromProgram(program *memory.Program) *Disassembly {
	return FromWords(program.Words[:(program.Length+1)/2])
}

// FromWords disassembles a sequence of instruction words. The first word is
// at address zero.
func FromWords(words []uint16) *Disassembly {
	dsm := &Disassembly{}
	tbl := instructions.GetTable()

	for i := 0; i < len(words); {
		op := instructions.Opcode(words[i])
		defn := tbl.Lookup(op)

		e := &Entry{
			Address: uint16(i << 1),
			Defn:    defn,
		}

		var next uint16
		if defn.DoubleWord && i+1 < len(words) {
			next = words[i+1]
			e.Words = words[i : i+2]
		} else {
			e.Words = words[i : i+1]
		}

		for j, w := range e.Words {
			if j > 0 {
				e.Bytecode += " "
			}
			e.Bytecode += fmt.Sprintf("%04x", w)
		}

		e.Mnemonic = defn.Mnemonic
		e.Operands = operands(defn.Format(op, next, uint16(i)), defn.Mnemonic)

		dsm.Entries = append(dsm.Entries, e)
		i += len(e.Words)
	}

	return dsm
}

// the operand part of a formatted instruction
func operands(s string, mnemonic string) string {
	if len(s) <= len(mnemonic) {
		return ""
	}
	return s[len(mnemonic)+1:]
}
