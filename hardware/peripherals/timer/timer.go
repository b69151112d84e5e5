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

// Package timer implements the overflow interrupt source of TIMER0.
//
// The counter is derived from the CPU cycle count with a fixed prescaler of
// 64. The overflow interrupt is raised at every poll boundary when enabled in
// TIMSK0, rather than at the moment the counter overflows. This is enough for
// programs that use the timer to keep time, such as the Arduino millis()
// function.
package timer

import (
	"fmt"

	"github.com/gopherduino/gopherduino/hardware/interrupts"
	"github.com/gopherduino/gopherduino/hardware/memory/addresses"
	"github.com/gopherduino/gopherduino/hardware/peripherals"
)

// Prescaler is the number of CPU cycles for every tick of the counter.
const Prescaler = 64

// Bits in the TIMSK0 register.
const (
	TOIE0  = 0x01
	OCIE0A = 0x02
	OCIE0B = 0x04
)

// Timer implements TIMER0.
type Timer struct {
	host peripherals.Host

	timsk uint8
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(host peripherals.Host) *Timer {
	tmr := &Timer{
		host: host,
	}

	host.RegisterIO(addresses.TCNT0, tmr.readTCNT, nil)
	host.RegisterIO(addresses.TIMSK0, tmr.readTIMSK, tmr.writeTIMSK)
	host.RegisterPoll(tmr.poll)

	return tmr
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("TCNT0=%02x TIMSK0=%02x", tmr.readTCNT(addresses.TCNT0), tmr.timsk)
}

// Reset the timer registers.
func (tmr *Timer) Reset() {
	tmr.timsk = 0
}

func (tmr *Timer) poll() {
	if tmr.timsk&TOIE0 == TOIE0 {
		tmr.host.Raise(interrupts.Timer0Ovf)
	}
}

func (tmr *Timer) readTCNT(_ uint16) uint8 {
	return uint8(tmr.host.Cycles() / Prescaler)
}

func (tmr *Timer) readTIMSK(_ uint16) uint8 {
	return tmr.timsk
}

func (tmr *Timer) writeTIMSK(_ uint16, data uint8) {
	tmr.timsk = data
}
