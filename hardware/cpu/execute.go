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

	"github.com/gopherduino/gopherduino/curated"
	"github.com/gopherduino/gopherduino/hardware/cpu/instructions"
	"github.com/gopherduino/gopherduino/hardware/cpu/registers"
	"github.com/gopherduino/gopherduino/hardware/memory/addresses"
)

// ExecuteInstruction fetches and executes a single instruction. Does nothing
// if the CPU has halted.
func (mc *CPU) ExecuteInstruction() error {
	if mc.State == Halted {
		return nil
	}

	address := mc.PC
	op := instructions.Opcode(mc.program.Words[mc.PC])
	defn := mc.table.Lookup(op)

	if defn.Unimplemented {
		return curated.Errorf(UnimplementedInstruction, defn.Mnemonic, address<<1)
	}

	mc.PC++
	startCycles := mc.Cycles
	mc.Cycles += uint64(defn.Cycles)

	mc.LastResult = Result{
		Address: address,
		Opcode:  op,
		Defn:    defn,
	}
	if defn.DoubleWord {
		mc.LastResult.Next = mc.program.Words[mc.PC]
	}

	switch defn.Operator {
	case instructions.Halt:
		mc.halt()

	case instructions.NOP:

	// arithmetic
	case instructions.ADD:
		d, r := mc.R.Get(op.Rd()), mc.R.Get(op.Rr())
		x := d + r
		mc.R.Set(op.Rd(), x)
		mc.flagsAdd(d, r, x)

	case instructions.ADC:
		d, r := mc.R.Get(op.Rd()), mc.R.Get(op.Rr())
		x := d + r + mc.carry()
		mc.R.Set(op.Rd(), x)
		mc.flagsAdd(d, r, x)

	case instructions.SUB:
		d, r := mc.R.Get(op.Rd()), mc.R.Get(op.Rr())
		x := d - r
		mc.R.Set(op.Rd(), x)
		mc.flagsSub(d, r, x, false)

	case instructions.SUBI:
		d, k := mc.R.Get(op.RdHigh()), op.K8()
		x := d - k
		mc.R.Set(op.RdHigh(), x)
		mc.flagsSub(d, k, x, false)

	case instructions.SBC:
		d, r := mc.R.Get(op.Rd()), mc.R.Get(op.Rr())
		x := d - r - mc.carry()
		mc.R.Set(op.Rd(), x)
		mc.flagsSub(d, r, x, true)

	case instructions.SBCI:
		d, k := mc.R.Get(op.RdHigh()), op.K8()
		x := d - k - mc.carry()
		mc.R.Set(op.RdHigh(), x)
		mc.flagsSub(d, k, x, true)

	case instructions.CP:
		d, r := mc.R.Get(op.Rd()), mc.R.Get(op.Rr())
		mc.flagsSub(d, r, d-r, false)

	case instructions.CPC:
		d, r := mc.R.Get(op.Rd()), mc.R.Get(op.Rr())
		mc.flagsSub(d, r, d-r-mc.carry(), true)

	case instructions.CPI:
		d, k := mc.R.Get(op.RdHigh()), op.K8()
		mc.flagsSub(d, k, d-k, false)

	case instructions.ADIW:
		d := mc.R.Pair(op.PairW())
		x := d + op.K6()
		mc.R.SetPair(op.PairW(), x)
		mc.flagsWord(x, d&0x8000 == 0 && x&0x8000 == 0x8000, x&0x8000 == 0 && d&0x8000 == 0x8000)

	case instructions.SBIW:
		d := mc.R.Pair(op.PairW())
		x := d - op.K6()
		mc.R.SetPair(op.PairW(), x)
		mc.flagsWord(x, d&0x8000 == 0x8000 && x&0x8000 == 0, x&0x8000 == 0x8000 && d&0x8000 == 0)

	case instructions.INC:
		x := mc.R.Get(op.Rd()) + 1
		mc.R.Set(op.Rd(), x)
		mc.Status.Merge(maskLogic, nzs(x, x == 0x80))

	case instructions.DEC:
		x := mc.R.Get(op.Rd()) - 1
		mc.R.Set(op.Rd(), x)
		mc.Status.Merge(maskLogic, nzs(x, x == 0x7f))

	case instructions.NEG:
		d := mc.R.Get(op.Rd())
		x := -d
		mc.R.Set(op.Rd(), x)
		mc.Status.Merge(maskArith, nzs(x, x == 0x80)|
			flag(registers.HalfCarry, (x|d)&0x08 == 0x08)|
			flag(registers.Carry, x != 0))

	case instructions.COM:
		x := ^mc.R.Get(op.Rd())
		mc.R.Set(op.Rd(), x)
		mc.Status.Merge(maskLogic|maskC, nzs(x, false)|maskC)

	case instructions.MUL:
		x := uint16(mc.R.Get(op.Rd())) * uint16(mc.R.Get(op.Rr()))
		mc.R.SetPair(0, x)
		mc.flagsMultiply(x)

	case instructions.MULS:
		x := uint16(int16(int8(mc.R.Get(op.RdHigh()))) * int16(int8(mc.R.Get(op.RrHigh()))))
		mc.R.SetPair(0, x)
		mc.flagsMultiply(x)

	case instructions.MULSU:
		x := uint16(int16(int8(mc.R.Get(op.RdMul()))) * int16(mc.R.Get(op.RrMul())))
		mc.R.SetPair(0, x)
		mc.flagsMultiply(x)

	// logic
	case instructions.AND:
		x := mc.R.Get(op.Rd()) & mc.R.Get(op.Rr())
		mc.R.Set(op.Rd(), x)
		mc.flagsLogic(x)

	case instructions.ANDI:
		x := mc.R.Get(op.RdHigh()) & op.K8()
		mc.R.Set(op.RdHigh(), x)
		mc.flagsLogic(x)

	case instructions.OR:
		x := mc.R.Get(op.Rd()) | mc.R.Get(op.Rr())
		mc.R.Set(op.Rd(), x)
		mc.flagsLogic(x)

	case instructions.ORI:
		x := mc.R.Get(op.RdHigh()) | op.K8()
		mc.R.Set(op.RdHigh(), x)
		mc.flagsLogic(x)

	case instructions.EOR:
		x := mc.R.Get(op.Rd()) ^ mc.R.Get(op.Rr())
		mc.R.Set(op.Rd(), x)
		mc.flagsLogic(x)

	// shifts and bits
	case instructions.LSR:
		d := mc.R.Get(op.Rd())
		x := d >> 1
		mc.R.Set(op.Rd(), x)
		mc.flagsShift(x, d&0x01 == 0x01)

	case instructions.ASR:
		d := mc.R.Get(op.Rd())
		x := d>>1 | d&0x80
		mc.R.Set(op.Rd(), x)
		mc.flagsShift(x, d&0x01 == 0x01)

	case instructions.ROR:
		d := mc.R.Get(op.Rd())
		x := d>>1 | mc.carry()<<7
		mc.R.Set(op.Rd(), x)
		mc.flagsShift(x, d&0x01 == 0x01)

	case instructions.SWAP:
		d := mc.R.Get(op.Rd())
		mc.R.Set(op.Rd(), d<<4|d>>4)

	case instructions.BSET:
		mc.writeStatus(mc.Status.Value() | 0x01<<op.StatusBit())

	case instructions.BCLR:
		mc.writeStatus(mc.Status.Value() &^ (0x01 << op.StatusBit()))

	case instructions.BST:
		mc.Status.Set(registers.Test, mc.R.Get(op.Rd())&(0x01<<op.Bit()) != 0)

	case instructions.BLD:
		d := mc.R.Get(op.Rd()) &^ (0x01 << op.Bit())
		if mc.Status.Get(registers.Test) {
			d |= 0x01 << op.Bit()
		}
		mc.R.Set(op.Rd(), d)

	case instructions.SBI:
		a := addresses.IOBase + uint16(op.IO5())
		if addresses.IsToggle(a) {
			mc.mem.Write(a, 0x01<<op.Bit())
		} else {
			mc.mem.Write(a, mc.mem.Read(a)|0x01<<op.Bit())
		}

	case instructions.CBI:
		a := addresses.IOBase + uint16(op.IO5())
		if addresses.IsToggle(a) {
			mc.mem.Write(a, 0x00)
		} else {
			mc.mem.Write(a, mc.mem.Read(a)&^(0x01<<op.Bit()))
		}

	// flow
	case instructions.RJMP:
		mc.PC = uint16(int(mc.PC) + op.Relative())

	case instructions.JMP:
		mc.PC = uint16(op.LongHigh() | uint32(mc.program.Words[mc.PC]))

	case instructions.IJMP:
		mc.PC = mc.R.Pair(registers.Z)

	case instructions.RCALL:
		mc.pushPC(mc.PC)
		mc.PC = uint16(int(mc.PC) + op.Relative())

	case instructions.CALL:
		k := uint16(op.LongHigh() | uint32(mc.program.Words[mc.PC]))
		mc.pushPC(mc.PC + 1)
		mc.PC = k

	case instructions.ICALL:
		mc.pushPC(mc.PC)
		mc.PC = mc.R.Pair(registers.Z)

	case instructions.RET:
		mc.PC = mc.popPC()

	case instructions.RETI:
		mc.PC = mc.popPC()
		mc.writeStatus(mc.Status.Value() | registers.Interrupt.Mask())

	case instructions.BRBS:
		if mc.Status.Value()&(0x01<<op.Bit()) != 0 {
			mc.PC = uint16(int(mc.PC) + op.Branch())
			mc.Cycles++
		}

	case instructions.BRBC:
		if mc.Status.Value()&(0x01<<op.Bit()) == 0 {
			mc.PC = uint16(int(mc.PC) + op.Branch())
			mc.Cycles++
		}

	case instructions.CPSE:
		if mc.R.Get(op.Rd()) == mc.R.Get(op.Rr()) {
			mc.skip()
		}

	case instructions.SBRC:
		if mc.R.Get(op.Rd())&(0x01<<op.Bit()) == 0 {
			mc.skip()
		}

	case instructions.SBRS:
		if mc.R.Get(op.Rd())&(0x01<<op.Bit()) != 0 {
			mc.skip()
		}

	case instructions.SBIC:
		if mc.mem.Read(addresses.IOBase+uint16(op.IO5()))&(0x01<<op.Bit()) == 0 {
			mc.skip()
		}

	case instructions.SBIS:
		if mc.mem.Read(addresses.IOBase+uint16(op.IO5()))&(0x01<<op.Bit()) != 0 {
			mc.skip()
		}

	// data transfer
	case instructions.MOV:
		mc.R.Set(op.Rd(), mc.R.Get(op.Rr()))

	case instructions.MOVW:
		mc.R.SetPair(op.PairD(), mc.R.Pair(op.PairR()))

	case instructions.LDI:
		mc.R.Set(op.RdHigh(), op.K8())

	case instructions.LDS:
		mc.R.Set(op.Rd(), mc.mem.Read(mc.program.Words[mc.PC]))
		mc.PC++

	case instructions.STS:
		a := mc.program.Words[mc.PC]
		mc.PC++
		mc.mem.Write(a, mc.R.Get(op.Rd()))

	case instructions.LDX, instructions.LDY, instructions.LDZ:
		mc.R.Set(op.Rd(), mc.mem.Read(mc.R.Pair(pointer(defn.Operator))))

	case instructions.LDXInc, instructions.LDYInc, instructions.LDZInc:
		p := pointer(defn.Operator)
		a := mc.R.Pair(p)
		mc.R.Set(op.Rd(), mc.mem.Read(a))
		mc.R.SetPair(p, a+1)

	case instructions.LDXDec, instructions.LDYDec, instructions.LDZDec:
		p := pointer(defn.Operator)
		a := mc.R.Pair(p) - 1
		mc.R.SetPair(p, a)
		mc.R.Set(op.Rd(), mc.mem.Read(a))

	case instructions.LDDY, instructions.LDDZ:
		a := mc.R.Pair(pointer(defn.Operator)) + op.Displacement()
		mc.R.Set(op.Rd(), mc.mem.Read(a))

	case instructions.STX, instructions.STY, instructions.STZ:
		mc.mem.Write(mc.R.Pair(pointer(defn.Operator)), mc.R.Get(op.Rd()))

	case instructions.STXInc, instructions.STYInc, instructions.STZInc:
		p := pointer(defn.Operator)
		a := mc.R.Pair(p)
		mc.mem.Write(a, mc.R.Get(op.Rd()))
		mc.R.SetPair(p, a+1)

	case instructions.STXDec, instructions.STYDec, instructions.STZDec:
		p := pointer(defn.Operator)
		a := mc.R.Pair(p) - 1
		mc.R.SetPair(p, a)
		mc.mem.Write(a, mc.R.Get(op.Rd()))

	case instructions.STDY, instructions.STDZ:
		a := mc.R.Pair(pointer(defn.Operator)) + op.Displacement()
		mc.mem.Write(a, mc.R.Get(op.Rd()))

	case instructions.LPM, instructions.ELPM:
		mc.R.Set(0, mc.program.Byte(mc.R.Pair(registers.Z)))

	case instructions.LPMRd:
		mc.R.Set(op.Rd(), mc.program.Byte(mc.R.Pair(registers.Z)))

	case instructions.LPMRdInc:
		z := mc.R.Pair(registers.Z)
		mc.R.Set(op.Rd(), mc.program.Byte(z))
		mc.R.SetPair(registers.Z, z+1)

	case instructions.IN:
		mc.R.Set(op.Rd(), mc.mem.Read(addresses.IOBase+uint16(op.IO6())))

	case instructions.OUT:
		mc.mem.Write(addresses.IOBase+uint16(op.IO6()), mc.R.Get(op.Rd()))

	case instructions.PUSH:
		mc.push(mc.R.Get(op.Rd()))

	case instructions.POP:
		mc.R.Set(op.Rd(), mc.pop())

	default:
		// every operator in the table that is not marked as unimplemented
		// should be handled above
		panic(fmt.Sprintf("cpu: no handler for %s", defn.Mnemonic))
	}

	mc.LastResult.Cycles = int(mc.Cycles - startCycles)

	if mc.Trace != nil {
		mc.trace()
	}

	return nil
}

// carry returns the carry flag as a value for arithmetic
func (mc *CPU) carry() uint8 {
	return mc.Status.Value() & maskC
}

// pointer returns the index register used by the indirect load and store
// instructions
func pointer(o instructions.Operator) int {
	switch o {
	case instructions.LDX, instructions.LDXInc, instructions.LDXDec,
		instructions.STX, instructions.STXInc, instructions.STXDec:
		return registers.X
	case instructions.LDY, instructions.LDYInc, instructions.LDYDec, instructions.LDDY,
		instructions.STY, instructions.STYInc, instructions.STYDec, instructions.STDY:
		return registers.Y
	}
	return registers.Z
}

func (mc *CPU) trace() {
	fmt.Fprintf(mc.Trace, "%-32s %s SP=%s cycles=%d\n", mc.LastResult, mc.Status, mc.SP, mc.Cycles)
}
