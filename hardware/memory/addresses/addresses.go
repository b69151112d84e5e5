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

// Package addresses is the data space map of the ATmega328P. The byte offsets
// of the register file, the index registers, the stack pointer and the status
// register are a fixed contract: guest programs address them directly.
package addresses

// Layout of the data space.
const (
	// general purpose registers r0 to r31
	RegisterFile = uint16(0x00)
	NumRegisters = 32

	// index registers are little-endian pairs in the register file. W is the
	// pair used by ADIW and SBIW when the pair field is zero
	W = uint16(0x18)
	X = uint16(0x1a)
	Y = uint16(0x1c)
	Z = uint16(0x1e)

	// I/O register zero. the IN and OUT instructions address the I/O space
	// relative to this address
	IOBase = uint16(0x20)

	// stack pointer (little-endian) and status register
	SPL  = uint16(0x5d)
	SPH  = uint16(0x5e)
	SREG = uint16(0x5f)

	// addresses below IOLimit are routed through the I/O bus
	IOLimit = uint16(0x100)

	// capacity of the data space. the stack pointer is initialised to the
	// last address
	DataSize = 0x900
	RAMEnd   = uint16(DataSize - 1)
)

// Peripheral registers in the data space.
const (
	PINB  = uint16(0x23)
	DDRB  = uint16(0x24)
	PORTB = uint16(0x25)
	PINC  = uint16(0x26)
	DDRC  = uint16(0x27)
	PORTC = uint16(0x28)
	PIND  = uint16(0x29)
	DDRD  = uint16(0x2a)
	PORTD = uint16(0x2b)

	TIFR0 = uint16(0x35)

	EECR  = uint16(0x3f)
	EEDR  = uint16(0x40)
	EEARL = uint16(0x41)
	EEARH = uint16(0x42)

	TCCR0A = uint16(0x44)
	TCCR0B = uint16(0x45)
	TCNT0  = uint16(0x46)

	TIMSK0 = uint16(0x6e)

	UCSR0A = uint16(0xc0)
	UCSR0B = uint16(0xc1)
	UCSR0C = uint16(0xc2)
	UBRR0L = uint16(0xc4)
	UBRR0H = uint16(0xc5)
	UDR0   = uint16(0xc6)
)

// Symbols lists the canonical names of the data space addresses that have
// them. Used when annotating traces and disassembly. The map is not used
// during emulation.
var Symbols = map[uint16]string{
	PINB:   "PINB",
	DDRB:   "DDRB",
	PORTB:  "PORTB",
	PINC:   "PINC",
	DDRC:   "DDRC",
	PORTC:  "PORTC",
	PIND:   "PIND",
	DDRD:   "DDRD",
	PORTD:  "PORTD",
	TIFR0:  "TIFR0",
	EECR:   "EECR",
	EEDR:   "EEDR",
	EEARL:  "EEARL",
	EEARH:  "EEARH",
	TCCR0A: "TCCR0A",
	TCCR0B: "TCCR0B",
	TCNT0:  "TCNT0",
	SPL:    "SPL",
	SPH:    "SPH",
	SREG:   "SREG",
	TIMSK0: "TIMSK0",
	UCSR0A: "UCSR0A",
	UCSR0B: "UCSR0B",
	UCSR0C: "UCSR0C",
	UBRR0L: "UBRR0L",
	UBRR0H: "UBRR0H",
	UDR0:   "UDR0",
}

// IsToggle returns true if writing a one to a bit of the register toggles a
// bit elsewhere rather than being stored. SBI and CBI only write the addressed
// bit to these registers.
func IsToggle(address uint16) bool {
	switch address {
	case PINB, PINC, PIND:
		return true
	}
	return false
}

// IOSymbol returns the name of the I/O register as addressed by the IN and
// OUT instructions. ie. the address is relative to IOBase.
func IOSymbol(a uint8) (string, bool) {
	s, ok := Symbols[IOBase+uint16(a)]
	return s, ok
}
