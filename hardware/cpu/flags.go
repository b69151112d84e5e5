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
	"github.com/gopherduino/gopherduino/hardware/cpu/registers"
)

// flag masks
var (
	maskC = registers.Carry.Mask()
	maskZ = registers.Zero.Mask()
	maskN = registers.Negative.Mask()
	maskV = registers.Overflow.Mask()
	maskS = registers.Sign.Mask()
	maskH = registers.HalfCarry.Mask()
	maskT = registers.Test.Mask()

	maskArith = maskH | maskS | maskV | maskN | maskZ | maskC
	maskLogic = maskS | maskV | maskN | maskZ
	maskShift = maskS | maskV | maskN | maskZ | maskC
	maskWord  = maskS | maskV | maskN | maskZ | maskC
)

func flag(f registers.Flag, v bool) uint8 {
	if v {
		return f.Mask()
	}
	return 0
}

// nzs returns the negative, zero and sign flags for an 8-bit result. the sign
// flag depends on the overflow flag
func nzs(x uint8, v bool) uint8 {
	n := x&0x80 == 0x80
	return flag(registers.Negative, n) | flag(registers.Zero, x == 0) |
		flag(registers.Overflow, v) | flag(registers.Sign, n != v)
}

// flagsAdd sets the flags for the addition of d and r with the result x
func (mc *CPU) flagsAdd(d, r, x uint8) {
	c := d&r | r&^x | ^x&d
	v := d&r&^x | ^d&^r&x
	mc.Status.Merge(maskArith, nzs(x, v&0x80 == 0x80)|
		flag(registers.HalfCarry, c&0x08 == 0x08)|
		flag(registers.Carry, c&0x80 == 0x80))
}

// flagsSub sets the flags for the subtraction of r from d with the result x.
// for a chained subtraction the zero flag can only remain set
func (mc *CPU) flagsSub(d, r, x uint8, chain bool) {
	b := ^d&r | r&x | x&^d
	v := d&^r&^x | ^d&r&x
	f := nzs(x, v&0x80 == 0x80) |
		flag(registers.HalfCarry, b&0x08 == 0x08) |
		flag(registers.Carry, b&0x80 == 0x80)
	if chain && !mc.Status.Get(registers.Zero) {
		f &^= maskZ
	}
	mc.Status.Merge(maskArith, f)
}

// flagsLogic sets the flags for the logical operations. overflow is cleared
func (mc *CPU) flagsLogic(x uint8) {
	mc.Status.Merge(maskLogic, nzs(x, false))
}

// flagsShift sets the flags for the right shift instructions. c is the bit
// shifted out of the register
func (mc *CPU) flagsShift(x uint8, c bool) {
	n := x&0x80 == 0x80
	mc.Status.Merge(maskShift, nzs(x, n != c)|flag(registers.Carry, c))
}

// flagsWord sets the flags for ADIW and SBIW
func (mc *CPU) flagsWord(x uint16, v bool, c bool) {
	n := x&0x8000 == 0x8000
	mc.Status.Merge(maskWord, flag(registers.Negative, n)|flag(registers.Zero, x == 0)|
		flag(registers.Overflow, v)|flag(registers.Sign, n != v)|flag(registers.Carry, c))
}

// flagsMultiply sets the flags for the multiply instructions
func (mc *CPU) flagsMultiply(x uint16) {
	mc.Status.Merge(maskZ|maskC, flag(registers.Zero, x == 0)|flag(registers.Carry, x&0x8000 == 0x8000))
}
