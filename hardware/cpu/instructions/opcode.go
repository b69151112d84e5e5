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

package instructions

// Opcode is a 16-bit instruction word. The methods of Opcode decode the
// operand fields of the instruction word. Which methods are meaningful
// depends on the instruction.
type Opcode uint16

// Rd is the 5-bit destination register field (ddddd at bits 4 to 8).
func (op Opcode) Rd() int {
	return int(op>>4) & 0x1f
}

// Rr is the 5-bit source register field (r at bit 9, rrrr at bits 0 to 3).
func (op Opcode) Rr() int {
	return int(op&0x0f) | int(op>>5)&0x10
}

// RdHigh is the 4-bit destination register field of the immediate
// instructions. The register is in the range r16 to r31.
func (op Opcode) RdHigh() int {
	return 16 + int(op>>4)&0x0f
}

// RrHigh is the 4-bit source register field of MULS. The register is in the
// range r16 to r31.
func (op Opcode) RrHigh() int {
	return 16 + int(op&0x0f)
}

// RdMul is the 3-bit destination register field of MULSU and FMUL. The
// register is in the range r16 to r23.
func (op Opcode) RdMul() int {
	return 16 + int(op>>4)&0x07
}

// RrMul is the 3-bit source register field of MULSU and FMUL. The register is
// in the range r16 to r23.
func (op Opcode) RrMul() int {
	return 16 + int(op&0x07)
}

// PairD is the destination register pair of MOVW.
func (op Opcode) PairD() int {
	return int(op>>4) & 0x0f << 1
}

// PairR is the source register pair of MOVW.
func (op Opcode) PairR() int {
	return int(op&0x0f) << 1
}

// PairW is the register pair of ADIW and SBIW. One of r24, r26, r28 or r30.
func (op Opcode) PairW() int {
	return 24 + int(op>>4)&0x03<<1
}

// K8 is the 8-bit immediate value.
func (op Opcode) K8() uint8 {
	return uint8(op&0x0f) | uint8(op>>4)&0xf0
}

// K6 is the 6-bit immediate value of ADIW and SBIW.
func (op Opcode) K6() uint16 {
	return uint16(op&0x0f) | uint16(op>>2)&0x30
}

// K4 is the 4-bit round number of DES.
func (op Opcode) K4() uint8 {
	return uint8(op>>4) & 0x0f
}

// IO6 is the 6-bit I/O address of IN and OUT.
func (op Opcode) IO6() uint8 {
	return uint8(op&0x0f) | uint8(op>>5)&0x30
}

// IO5 is the 5-bit I/O address of CBI, SBI, SBIC and SBIS.
func (op Opcode) IO5() uint8 {
	return uint8(op>>3) & 0x1f
}

// Bit is the 3-bit bit number.
func (op Opcode) Bit() uint8 {
	return uint8(op & 0x07)
}

// StatusBit is the status register bit number of BSET and BCLR.
func (op Opcode) StatusBit() uint8 {
	return uint8(op>>4) & 0x07
}

// Branch is the signed 7-bit word offset of BRBS and BRBC.
func (op Opcode) Branch() int {
	k := int(op>>3) & 0x7f
	if k&0x40 == 0x40 {
		k -= 0x80
	}
	return k
}

// Relative is the signed 12-bit word offset of RJMP and RCALL.
func (op Opcode) Relative() int {
	k := int(op & 0x0fff)
	if k&0x0800 == 0x0800 {
		k -= 0x1000
	}
	return k
}

// LongHigh returns bits 16 to 21 of the 22-bit address of JMP and CALL. The
// low bits of the address are in the next instruction word.
func (op Opcode) LongHigh() uint32 {
	return (uint32(op&0x01) | uint32(op>>3)&0x3e) << 16
}

// Displacement is the 6-bit displacement of LDD and STD.
func (op Opcode) Displacement() uint16 {
	return uint16(op&0x07) | uint16(op>>7)&0x18 | uint16(op>>8)&0x20
}
