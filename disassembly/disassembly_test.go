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

package disassembly_test

import (
	"testing"

	"github.com/gopherduino/gopherduino/disassembly"
	"github.com/gopherduino/gopherduino/hardware/memory"
	"github.com/gopherduino/gopherduino/test"
)

func TestFromWords(t *testing.T) {
	dsm := disassembly.FromWords([]uint16{
		0xe402,         // LDI r16, 0x42
		0x940e, 0x0010, // CALL 0x0020
		0x9a25, // SBI DDRB, 5
		0xcfff, // halt
	})

	test.DemandEquality(t, len(dsm.Entries), 4)
	test.ExpectEquality(t, dsm.Entries[0].String(), "LDI r16, 0x42")
	test.ExpectEquality(t, dsm.Entries[1].Address, uint16(0x0002))
	test.ExpectEquality(t, dsm.Entries[1].Bytecode, "940e 0010")
	test.ExpectEquality(t, dsm.Entries[1].Operands, "0x00020")
	test.ExpectEquality(t, dsm.Entries[2].Address, uint16(0x0006))
	test.ExpectEquality(t, dsm.Entries[2].String(), "SBI DDRB, 5")
	test.ExpectEquality(t, dsm.Entries[3].String(), "HALT")
}

func TestTruncatedDoubleWord(t *testing.T) {
	dsm := disassembly.FromWords([]uint16{0x940c})
	test.DemandEquality(t, len(dsm.Entries), 1)
	test.ExpectEquality(t, dsm.Entries[0].Mnemonic, "JMP")
	test.ExpectEquality(t, dsm.Entries[0].Bytecode, "940c")
}

func TestWrite(t *testing.T) {
	program := memory.NewProgram()
	test.DemandSuccess(t, program.Load([]uint8{0x02, 0xe4, 0x00, 0x00, 0xff, 0xcf}))

	dsm := disassembly.FromProgram(program)
	test.DemandEquality(t, len(dsm.Entries), 3)

	w := &test.Writer{}
	test.DemandSuccess(t, dsm.Write(w, disassembly.WriteAttr{}))
	test.ExpectEquality(t, w.String(), "0000: LDI    r16, 0x42\n0002: NOP\n0004: HALT\n")

	w.Clear()
	test.DemandSuccess(t, dsm.Write(w, disassembly.WriteAttr{ByteCode: true}))
	test.ExpectEquality(t, w.String(), "0000: e402      LDI    r16, 0x42\n0002: 0000      NOP\n0004: cfff      HALT\n")
}
