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

package ports_test

import (
	"testing"

	"github.com/gopherduino/gopherduino/hardware/memory/addresses"
	"github.com/gopherduino/gopherduino/hardware/peripherals/mock"
	"github.com/gopherduino/gopherduino/hardware/peripherals/ports"
	"github.com/gopherduino/gopherduino/test"
)

func TestInputs(t *testing.T) {
	host := mock.NewHost()
	p := ports.NewPorts(host, host)

	p.SetPin(3, true)
	p.SetPin(9, true)
	p.SetPin(23, true)
	test.ExpectEquality(t, host.Read(addresses.PINB), uint8(0x08))
	test.ExpectEquality(t, host.Read(addresses.PINC), uint8(0x02))
	test.ExpectEquality(t, host.Read(addresses.PIND), uint8(0x80))
	test.ExpectSuccess(t, p.Pin(9))

	p.SetPin(9, false)
	test.ExpectEquality(t, host.Read(addresses.PINC), uint8(0x00))
	test.ExpectFailure(t, p.Pin(9))

	// no output changes
	test.ExpectEquality(t, len(host.Changes), 0)
}

func TestOutputs(t *testing.T) {
	host := mock.NewHost()
	p := ports.NewPorts(host, host)

	// setting the port register while the pins are inputs changes nothing
	host.Write(addresses.PORTB, 0x20)
	test.ExpectEquality(t, len(host.Changes), 0)
	test.ExpectFailure(t, p.Pin(5))

	// making the pin an output reveals the port value
	host.Write(addresses.DDRB, 0xff)
	test.ExpectEquality(t, len(host.Changes), 1)
	test.ExpectEquality(t, host.Changes[0], "5=true")
	test.ExpectSuccess(t, p.Pin(5))
	test.ExpectEquality(t, host.Read(addresses.PINB), uint8(0x20))
	test.ExpectEquality(t, host.Read(addresses.DDRB), uint8(0xff))
	test.ExpectEquality(t, host.Read(addresses.PORTB), uint8(0x20))

	// inputs on output pins are masked
	p.SetPin(0, true)
	test.ExpectEquality(t, host.Read(addresses.PINB), uint8(0x20))

	// changes are reported highest bit first
	host.ClearRaised()
	host.Write(addresses.PORTB, 0x81)
	test.ExpectEquality(t, len(host.Changes), 3)
	test.ExpectEquality(t, host.Changes[0], "7=true")
	test.ExpectEquality(t, host.Changes[1], "5=false")
	test.ExpectEquality(t, host.Changes[2], "0=true")

	// writing the same value again is not a change
	host.ClearRaised()
	host.Write(addresses.PORTB, 0x81)
	test.ExpectEquality(t, len(host.Changes), 0)
}

func TestToggle(t *testing.T) {
	host := mock.NewHost()
	p := ports.NewPorts(host, host)

	host.Write(addresses.DDRD, 0x01)
	host.Write(addresses.PIND, 0x01)
	test.ExpectSuccess(t, p.Pin(16))
	test.ExpectEquality(t, host.Read(addresses.PORTD), uint8(0x01))

	host.Write(addresses.PIND, 0x01)
	test.ExpectFailure(t, p.Pin(16))
	test.ExpectEquality(t, host.Read(addresses.PORTD), uint8(0x00))

	test.ExpectEquality(t, len(host.Changes), 2)
	test.ExpectEquality(t, host.Changes[0], "16=true")
	test.ExpectEquality(t, host.Changes[1], "16=false")
}

func TestReset(t *testing.T) {
	host := mock.NewHost()
	p := ports.NewPorts(host, nil)

	host.Write(addresses.DDRC, 0xff)
	host.Write(addresses.PORTC, 0xff)
	p.SetPin(8, true)
	p.Reset()
	test.ExpectEquality(t, host.Read(addresses.DDRC), uint8(0x00))
	test.ExpectEquality(t, host.Read(addresses.PORTC), uint8(0x00))
	test.ExpectSuccess(t, p.Pin(8))
}

func TestPinRange(t *testing.T) {
	host := mock.NewHost()
	p := ports.NewPorts(host, nil)

	test.ExpectPanic(t, func() { p.SetPin(ports.NumPins, true) })
	test.ExpectPanic(t, func() { p.Pin(-1) })
}
