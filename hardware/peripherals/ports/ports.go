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

// Package ports implements the three digital I/O ports (B, C and D) of the
// ATmega328P.
//
// Each port has three registers. The PIN register reads the level of the
// pins, the DDR register selects the direction of each pin and the PORT
// register holds the output value. The pins are numbered from zero, starting
// with bit 0 of port B:
//
//	PORTB  0 to 7
//	PORTC  8 to 15
//	PORTD 16 to 23
package ports

import (
	"fmt"
	"strings"

	"github.com/gopherduino/gopherduino/hardware/memory/addresses"
	"github.com/gopherduino/gopherduino/hardware/peripherals"
	"github.com/gopherduino/gopherduino/logger"
)

// NumPorts is the number of ports.
const NumPorts = 3

// NumPins is the number of pins across all ports.
const NumPins = NumPorts * 8

var portNames = [NumPorts]string{"B", "C", "D"}

// the address of the PIN register of each port. the DDR and PORT registers
// follow in that order
var pinAddresses = [NumPorts]uint16{addresses.PINB, addresses.PINC, addresses.PIND}

// Ports implements the I/O ports.
type Ports struct {
	notify peripherals.PinNotifier

	// the externally driven level of the pins
	pin [NumPorts]uint8

	ddr  [NumPorts]uint8
	port [NumPorts]uint8

	// logging of pin changes is off by default
	Verbose logger.Verbosity
}

// NewPorts is the preferred method of initialisation for the Ports type. The
// notify argument can be nil.
func NewPorts(host peripherals.Host, notify peripherals.PinNotifier) *Ports {
	p := &Ports{
		notify: notify,
	}

	for i := range NumPorts {
		a := pinAddresses[i]
		host.RegisterIO(a, p.readPin(i), p.writePin(i))
		host.RegisterIO(a+1, p.readDDR(i), p.writeDDR(i))
		host.RegisterIO(a+2, p.readPort(i), p.writePort(i))
	}

	return p
}

func (p *Ports) String() string {
	s := strings.Builder{}
	for i := range NumPorts {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%s: pin=%08b ddr=%08b port=%08b", portNames[i], p.pin[i], p.ddr[i], p.port[i]))
	}
	return s.String()
}

// Reset sets all pins to inputs with the output latch cleared. The externally
// driven levels are not changed.
func (p *Ports) Reset() {
	clear(p.ddr[:])
	clear(p.port[:])
}

func split(pin int) (int, uint8) {
	if pin < 0 || pin >= NumPins {
		panic(fmt.Sprintf("ports: pin %d is out of range", pin))
	}
	return pin / 8, 0x01 << (pin % 8)
}

// SetPin sets the externally driven level of a pin. The level is only visible
// to the program if the pin is configured as an input. A pin number outside of
// the range 0 to NumPins-1 will cause a panic.
func (p *Ports) SetPin(pin int, level bool) {
	i, m := split(pin)
	if level {
		p.pin[i] |= m
	} else {
		p.pin[i] &^= m
	}
}

// Pin returns the level of a pin as it would be seen by reading the PIN
// register. A pin number outside of the range 0 to NumPins-1 will cause a
// panic.
func (p *Ports) Pin(pin int) bool {
	i, m := split(pin)
	return p.level(i)&m == m
}

// the value of the PIN register
func (p *Ports) level(i int) uint8 {
	return p.pin[i]&^p.ddr[i] | p.port[i]&p.ddr[i]
}

// the output value of the port
func (p *Ports) output(i int) uint8 {
	return p.port[i] & p.ddr[i]
}

// update the port and direction registers and report any change in output
// level. highest bit first
func (p *Ports) update(i int, ddr uint8, port uint8) {
	prev := p.output(i)
	p.ddr[i] = ddr
	p.port[i] = port
	next := p.output(i)

	changed := prev ^ next
	if changed == 0 {
		return
	}

	for b := 7; b >= 0; b-- {
		m := uint8(0x01) << b
		if changed&m == 0 {
			continue
		}
		pin := i*8 + b
		level := next&m == m
		logger.Logf(&p.Verbose, "ports", "pin %d (P%s%d) is %v", pin, portNames[i], b, level)
		if p.notify != nil {
			p.notify.OutPin(pin, level)
		}
	}
}

func (p *Ports) readPin(i int) func(uint16) uint8 {
	return func(_ uint16) uint8 {
		return p.level(i)
	}
}

// writing a one to a bit in the PIN register toggles the bit in the PORT
// register
func (p *Ports) writePin(i int) func(uint16, uint8) {
	return func(_ uint16, data uint8) {
		p.update(i, p.ddr[i], p.port[i]^data)
	}
}

func (p *Ports) readDDR(i int) func(uint16) uint8 {
	return func(_ uint16) uint8 {
		return p.ddr[i]
	}
}

func (p *Ports) writeDDR(i int) func(uint16, uint8) {
	return func(_ uint16, data uint8) {
		p.update(i, data, p.port[i])
	}
}

func (p *Ports) readPort(i int) func(uint16) uint8 {
	return func(_ uint16) uint8 {
		return p.port[i]
	}
}

func (p *Ports) writePort(i int) func(uint16, uint8) {
	return func(_ uint16, data uint8) {
		p.update(i, p.ddr[i], data)
	}
}
