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

package interrupts_test

import (
	"testing"

	"github.com/gopherduino/gopherduino/hardware/interrupts"
	"github.com/gopherduino/gopherduino/test"
)

// mockCPU records the vectors delivered to it
type mockCPU struct {
	enabled   bool
	delivered []uint16
	ic        *interrupts.Controller
	state     interrupts.State
}

func (m *mockCPU) InterruptsEnabled() bool {
	return m.enabled
}

func (m *mockCPU) Vector(address uint16) {
	m.state = m.ic.State()
	m.enabled = false
	m.delivered = append(m.delivered, address)
}

// enable sets the global interrupt flag in the same way as a write to the
// status register
func (m *mockCPU) enable() {
	prev := uint8(0x00)
	if m.enabled {
		prev = 0x80
	}
	m.enabled = true
	m.ic.StatusChanged(prev, 0x80)
}

func newMock() *mockCPU {
	m := &mockCPU{}
	m.ic = interrupts.NewController(m)
	return m
}

func TestVectorAddress(t *testing.T) {
	test.ExpectEquality(t, interrupts.Address(interrupts.Reset), uint16(0x0000))
	test.ExpectEquality(t, interrupts.Address(interrupts.Timer0Ovf), uint16(0x0020))
	test.ExpectEquality(t, interrupts.Address(interrupts.USARTRx), uint16(0x0024))
}

func TestImmediateDelivery(t *testing.T) {
	m := newMock()
	m.enabled = true

	m.ic.Raise(interrupts.Timer0Ovf)
	test.DemandEquality(t, len(m.delivered), 1)
	test.ExpectEquality(t, m.delivered[0], uint16(0x0020))
	test.ExpectEquality(t, m.state, interrupts.Delivering)
	test.ExpectEquality(t, m.ic.State(), interrupts.Idle)
	test.ExpectFailure(t, m.enabled)
}

func TestPriority(t *testing.T) {
	m := newMock()

	m.ic.Raise(interrupts.USARTRx)
	m.ic.Raise(interrupts.Timer0Ovf)
	m.ic.Raise(interrupts.EEReady)
	m.ic.Raise(interrupts.USARTRx)
	test.ExpectEquality(t, len(m.delivered), 0)
	test.ExpectEquality(t, m.ic.State(), interrupts.Pending)
	test.ExpectEquality(t, len(m.ic.Pending()), 3)
	test.ExpectEquality(t, m.ic.String(), "pending [17 19 23]")

	// lowest vector first, one at a time
	m.enable()
	test.DemandEquality(t, len(m.delivered), 1)
	test.ExpectEquality(t, m.delivered[0], interrupts.Address(interrupts.Timer0Ovf))
	test.ExpectEquality(t, len(m.ic.Pending()), 2)

	m.enable()
	test.DemandEquality(t, len(m.delivered), 2)
	test.ExpectEquality(t, m.delivered[1], interrupts.Address(interrupts.USARTRx))

	m.enable()
	test.DemandEquality(t, len(m.delivered), 3)
	test.ExpectEquality(t, m.delivered[2], interrupts.Address(interrupts.EEReady))
	test.ExpectEquality(t, m.ic.State(), interrupts.Idle)

	// nothing pending
	m.enable()
	test.ExpectEquality(t, len(m.delivered), 3)
}

func TestNoTransition(t *testing.T) {
	m := newMock()
	m.ic.Raise(interrupts.Int0)

	// the flag was already set so there is no transition
	m.ic.StatusChanged(0x80, 0x80)
	test.ExpectEquality(t, len(m.delivered), 0)

	// the flag is still clear
	m.ic.StatusChanged(0x00, 0x01)
	test.ExpectEquality(t, len(m.delivered), 0)

	m.ic.Reset()
	test.ExpectEquality(t, m.ic.State(), interrupts.Idle)
	m.enable()
	test.ExpectEquality(t, len(m.delivered), 0)
}

func TestVectorRange(t *testing.T) {
	m := newMock()
	test.ExpectPanic(t, func() { m.ic.Raise(0) })
	test.ExpectPanic(t, func() { m.ic.Raise(interrupts.NumVectors + 1) })
}
