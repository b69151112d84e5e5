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

package timer_test

import (
	"testing"

	"github.com/gopherduino/gopherduino/hardware/interrupts"
	"github.com/gopherduino/gopherduino/hardware/memory/addresses"
	"github.com/gopherduino/gopherduino/hardware/peripherals/mock"
	"github.com/gopherduino/gopherduino/hardware/peripherals/timer"
	"github.com/gopherduino/gopherduino/test"
)

func TestCounter(t *testing.T) {
	host := mock.NewHost()
	timer.NewTimer(host)

	test.ExpectEquality(t, host.Read(addresses.TCNT0), uint8(0))
	host.Cycle = 63
	test.ExpectEquality(t, host.Read(addresses.TCNT0), uint8(0))
	host.Cycle = 64
	test.ExpectEquality(t, host.Read(addresses.TCNT0), uint8(1))
	host.Cycle = 256 * timer.Prescaler
	test.ExpectEquality(t, host.Read(addresses.TCNT0), uint8(0))
	host.Cycle = 300 * timer.Prescaler
	test.ExpectEquality(t, host.Read(addresses.TCNT0), uint8(44))
}

func TestOverflowInterrupt(t *testing.T) {
	host := mock.NewHost()
	tmr := timer.NewTimer(host)

	host.Poll()
	test.ExpectEquality(t, len(host.Raised), 0)

	host.Write(addresses.TIMSK0, timer.TOIE0)
	test.ExpectEquality(t, host.Read(addresses.TIMSK0), uint8(timer.TOIE0))
	host.Poll()
	test.ExpectEquality(t, len(host.Raised), 1)
	test.ExpectEquality(t, host.Raised[0], interrupts.Timer0Ovf)

	tmr.Reset()
	host.ClearRaised()
	host.Poll()
	test.ExpectEquality(t, len(host.Raised), 0)
}
