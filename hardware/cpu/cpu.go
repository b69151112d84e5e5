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
	"io"

	"github.com/gopherduino/gopherduino/hardware/cpu/instructions"
	"github.com/gopherduino/gopherduino/hardware/cpu/registers"
	"github.com/gopherduino/gopherduino/hardware/interrupts"
	"github.com/gopherduino/gopherduino/hardware/memory"
	"github.com/gopherduino/gopherduino/hardware/memory/addresses"
	"github.com/gopherduino/gopherduino/logger"
)

// PollInterval is the number of cycles between poll boundaries.
const PollInterval = 10000

// Sentinel error patterns.
const (
	UnimplementedInstruction = "cpu: unimplemented instruction: %s (at %#04x)"
)

// State of the CPU.
type State int

// List of valid State values.
const (
	Running State = iota
	Halted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	}
	return "unknown state"
}

// CPU implements the AVR CPU.
type CPU struct {
	// program counter. a word address in the program store
	PC uint16

	R      registers.File
	SP     registers.StackPointer
	Status registers.Status

	Interrupts *interrupts.Controller

	mem     *memory.Memory
	program *memory.Program
	table   *instructions.Table

	// elapsed cycles since reset and the cycle count at the previous poll
	// boundary
	Cycles   uint64
	lastPoll uint64

	State State

	polls []func()

	// the most recently executed instruction
	LastResult Result

	// if Trace is not nil a line is written to it for every instruction
	Trace io.Writer
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// should be reset before use.
func NewCPU(mem *memory.Memory, program *memory.Program) *CPU {
	mc := &CPU{
		R:       registers.NewFile(mem.Data),
		SP:      registers.NewStackPointer(mem.Data),
		Status:  registers.NewStatus(mem.Data),
		mem:     mem,
		program: program,
		table:   instructions.GetTable(),
	}
	mc.Interrupts = interrupts.NewController(mc)

	// writes to the status register can release pending interrupts
	mem.WatchStatus(mc.Interrupts.StatusChanged)

	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%04x %s=%s %s=%s cycles=%d %s",
		mc.PC<<1, mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status,
		mc.Cycles, mc.State)
}

// Reset the CPU. The program counter is set to the reset vector and the stack
// pointer is set to the top of the data space. The status register is
// cleared and pending interrupts are forgotten.
func (mc *CPU) Reset() {
	mc.PC = 0
	mc.SP.Load(addresses.RAMEnd)
	mc.Status.Load(0)
	mc.Cycles = 0
	mc.lastPoll = 0
	mc.State = Running
	mc.LastResult = Result{}
	mc.Interrupts.Reset()
}

// RegisterPoll adds a function to be called at every poll boundary. Functions
// are called in the order they were registered.
func (mc *CPU) RegisterPoll(f func()) {
	mc.polls = append(mc.polls, f)
}

// InterruptsEnabled implements the interrupts.Target interface.
func (mc *CPU) InterruptsEnabled() bool {
	return mc.Status.Get(registers.Interrupt)
}

// Vector implements the interrupts.Target interface.
func (mc *CPU) Vector(address uint16) {
	mc.pushPC(mc.PC)
	mc.Status.Set(registers.Interrupt, false)
	mc.PC = address
}

// Run instructions until the next poll boundary or until the CPU halts.
// Returns the state of the CPU. If the CPU is already halted Run() returns
// immediately.
func (mc *CPU) Run() (State, error) {
	for mc.State == Running {
		err := mc.ExecuteInstruction()
		if err != nil {
			return mc.State, err
		}

		if mc.Cycles-mc.lastPoll > PollInterval {
			for _, f := range mc.polls {
				f()
			}
			mc.lastPoll = mc.Cycles
			break // for loop
		}
	}

	return mc.State, nil
}

// stack operations. the stack grows downwards and the stack pointer points to
// the next free byte
func (mc *CPU) push(v uint8) {
	sp := mc.SP.Value()
	mc.mem.Write(sp, v)
	mc.SP.Load(sp - 1)
}

func (mc *CPU) pop() uint8 {
	sp := mc.SP.Value() + 1
	mc.SP.Load(sp)
	return mc.mem.Read(sp)
}

// the return address is pushed high byte first
func (mc *CPU) pushPC(pc uint16) {
	mc.push(uint8(pc >> 8))
	mc.push(uint8(pc))
}

func (mc *CPU) popPC() uint16 {
	lo := mc.pop()
	hi := mc.pop()
	return uint16(hi)<<8 | uint16(lo)
}

// writeStatus writes the status register through the memory bus so that
// setting the global interrupt flag releases pending interrupts
func (mc *CPU) writeStatus(v uint8) {
	mc.mem.Write(addresses.SREG, v)
}

// skip the next instruction. double word instructions take an extra cycle to
// skip
func (mc *CPU) skip() {
	if mc.table.IsDoubleWord(instructions.Opcode(mc.program.Words[mc.PC])) {
		mc.PC++
		mc.Cycles++
	}
	mc.PC++
	mc.Cycles++
}

func (mc *CPU) halt() {
	mc.State = Halted
	logger.Logf(logger.Allow, "cpu", "halted at %#04x after %d cycles", (mc.PC-1)<<1, mc.Cycles)
}
