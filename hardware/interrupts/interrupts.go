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

// Package interrupts implements the interrupt controller of the
// microcontroller.
//
// Interrupt vectors are numbered from one. Vector one is the reset vector at
// program address zero and vector n is at program address (n-1)*2. Each entry
// of the vector table is two words long, room enough for a JMP instruction.
//
// An interrupt raised while the global interrupt flag is set is delivered
// immediately. Otherwise the interrupt is pending until the global interrupt
// flag is next set. Pending interrupts are delivered one at a time, lowest
// vector first.
package interrupts

import (
	"fmt"
	"strings"

	"github.com/gopherduino/gopherduino/hardware/cpu/registers"
	"github.com/gopherduino/gopherduino/logger"
)

// Vector numbers of the ATmega328P.
const (
	Reset      = 1
	Int0       = 2
	Int1       = 3
	Timer0Comp = 15
	Timer0Ovf  = 17
	USARTRx    = 19
	USARTUDRE  = 20
	USARTTx    = 21
	EEReady    = 23

	// the highest vector number
	NumVectors = 26
)

// Address returns the program address of the vector.
func Address(vector int) uint16 {
	return uint16(vector-1) * 2
}

// Target is the CPU as seen by the interrupt controller.
type Target interface {
	// InterruptsEnabled returns the state of the global interrupt flag
	InterruptsEnabled() bool

	// Vector pushes the program counter, clears the global interrupt flag
	// and jumps to the address
	Vector(address uint16)
}

// State of the interrupt controller.
type State int

// List of valid State values.
const (
	Idle State = iota
	Pending
	Delivering
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Delivering:
		return "delivering"
	}
	return "unknown state"
}

// Controller is the interrupt controller.
type Controller struct {
	target Target

	pending    [NumVectors + 1]bool
	numPending int

	delivering bool

	// logging of interrupt delivery is off by default. it is very noisy
	Verbose logger.Verbosity
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController(target Target) *Controller {
	return &Controller{target: target}
}

func (ic *Controller) String() string {
	s := strings.Builder{}
	s.WriteString(ic.State().String())
	if ic.numPending > 0 {
		s.WriteString(fmt.Sprintf(" %v", ic.Pending()))
	}
	return s.String()
}

// Reset the controller. Pending interrupts are forgotten.
func (ic *Controller) Reset() {
	clear(ic.pending[:])
	ic.numPending = 0
	ic.delivering = false
}

// State returns the current state of the controller.
func (ic *Controller) State() State {
	if ic.delivering {
		return Delivering
	}
	if ic.numPending > 0 {
		return Pending
	}
	return Idle
}

// Pending returns the list of pending vectors, lowest first.
func (ic *Controller) Pending() []int {
	p := make([]int, 0, ic.numPending)
	for v := 1; v <= NumVectors; v++ {
		if ic.pending[v] {
			p = append(p, v)
		}
	}
	return p
}

// Raise an interrupt. Raising an interrupt that is already pending has no
// further effect. A vector outside of the range 1 to NumVectors is a
// programming error and will cause a panic.
func (ic *Controller) Raise(vector int) {
	if vector < 1 || vector > NumVectors {
		panic(fmt.Sprintf("interrupts: vector %d is out of range", vector))
	}

	if ic.target.InterruptsEnabled() {
		ic.deliver(vector)
		return
	}

	if !ic.pending[vector] {
		ic.pending[vector] = true
		ic.numPending++
	}
}

// StatusChanged should be called after a write to the status register. If the
// global interrupt flag has been set and there are pending interrupts then
// the lowest pending vector is delivered.
func (ic *Controller) StatusChanged(prev uint8, next uint8) {
	if ic.numPending == 0 {
		return
	}

	mask := registers.Interrupt.Mask()
	if prev&mask == mask || next&mask != mask {
		return
	}

	for v := 1; v <= NumVectors; v++ {
		if ic.pending[v] {
			ic.pending[v] = false
			ic.numPending--
			ic.deliver(v)
			return
		}
	}
}

func (ic *Controller) deliver(vector int) {
	ic.delivering = true
	defer func() {
		ic.delivering = false
	}()

	logger.Logf(&ic.Verbose, "interrupts", "delivering vector %d", vector)
	ic.target.Vector(Address(vector))
}
