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

import (
	"fmt"
	"strings"

	"github.com/gopherduino/gopherduino/hardware/memory/addresses"
)

// Format returns the instruction in assembler notation. The next argument is
// the word following the instruction and is only used by double word
// instructions. The address argument is the word address of the instruction
// and is used to calculate the destination of relative jumps.
//
// Program addresses are shown as byte addresses, as is the convention of the
// assembler.
//
// Operand tokens in the Operands field of the definition:
//
//	{d} {r}      5-bit register
//	{dh} {rh}    4-bit register (r16 to r31)
//	{dm} {rm}    3-bit register (r16 to r23)
//	{D} {R}      register pair of MOVW
//	{w}          register pair of ADIW and SBIW
//	{K} {K6}     8-bit and 6-bit immediate value
//	{K4}         DES round
//	{A} {a}      6-bit and 5-bit I/O address
//	{b} {s}      bit number and status register bit number
//	{k7} {k12}   relative branch and jump destinations
//	{k22}        absolute jump destination
//	{k16}        data space address (in the next word)
//	{q}          displacement
func (defn *Definition) Format(op Opcode, next uint16, address uint16) string {
	if defn.Operands == "" {
		return defn.Mnemonic
	}

	s := strings.Builder{}
	s.WriteString(defn.Mnemonic)
	s.WriteRune(' ')

	t := defn.Operands
	for {
		i := strings.IndexRune(t, '{')
		if i == -1 {
			s.WriteString(t)
			break // for loop
		}
		j := strings.IndexRune(t[i:], '}')
		if j == -1 {
			s.WriteString(t)
			break // for loop
		}
		s.WriteString(t[:i])
		s.WriteString(operand(t[i+1:i+j], op, next, address))
		t = t[i+j+1:]
	}

	return s.String()
}

func register(r int) string {
	return fmt.Sprintf("r%d", r)
}

func pair(r int) string {
	return fmt.Sprintf("r%d:r%d", r+1, r)
}

func io(a uint8) string {
	if s, ok := addresses.IOSymbol(a); ok {
		return s
	}
	return fmt.Sprintf("0x%02x", a)
}

func operand(token string, op Opcode, next uint16, address uint16) string {
	switch token {
	case "d":
		return register(op.Rd())
	case "r":
		return register(op.Rr())
	case "dh":
		return register(op.RdHigh())
	case "rh":
		return register(op.RrHigh())
	case "dm":
		return register(op.RdMul())
	case "rm":
		return register(op.RrMul())
	case "D":
		return pair(op.PairD())
	case "R":
		return pair(op.PairR())
	case "w":
		return pair(op.PairW())
	case "K":
		return fmt.Sprintf("0x%02x", op.K8())
	case "K6":
		return fmt.Sprintf("0x%02x", op.K6())
	case "K4":
		return fmt.Sprintf("%d", op.K4())
	case "A":
		return io(op.IO6())
	case "a":
		return io(op.IO5())
	case "b":
		return fmt.Sprintf("%d", op.Bit())
	case "s":
		return fmt.Sprintf("%d", op.StatusBit())
	case "k7":
		return fmt.Sprintf("0x%04x", uint16(int(address)+1+op.Branch())<<1)
	case "k12":
		return fmt.Sprintf("0x%04x", uint16(int(address)+1+op.Relative())<<1)
	case "k22":
		return fmt.Sprintf("0x%05x", (op.LongHigh()|uint32(next))<<1)
	case "k16":
		if s, ok := addresses.Symbols[next]; ok {
			return s
		}
		return fmt.Sprintf("0x%04x", next)
	case "q":
		return fmt.Sprintf("%d", op.Displacement())
	}
	return "{" + token + "}"
}
