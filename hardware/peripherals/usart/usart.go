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

// Package usart implements USART0 of the ATmega328P as a byte stream.
//
// Bytes written to UDR0 by the program are sent to the output writer
// immediately. Bytes for the program are queued with Receive() or by
// attaching an io.Reader with AttachInput(). A queued byte is made available
// to the program at the next poll boundary. Baud rate and frame format
// settings are stored but have no effect.
package usart

import (
	"fmt"
	"io"

	"github.com/gopherduino/gopherduino/hardware/interrupts"
	"github.com/gopherduino/gopherduino/hardware/memory/addresses"
	"github.com/gopherduino/gopherduino/hardware/peripherals"
	"github.com/gopherduino/gopherduino/logger"
)

// Bits in the UCSR0A register.
const (
	UDRE = 0x20
	TXC  = 0x40
	RXC  = 0x80
)

// Bits in the UCSR0B register.
const (
	UDRIE = 0x20
	TXCIE = 0x40
	RXCIE = 0x80
)

// the number of bytes that can be queued for the program
const inputQueueLen = 256

// USART implements the serial port.
type USART struct {
	host peripherals.Host

	output io.Writer

	// bytes waiting to be seen by the program
	input chan uint8

	ucsra uint8
	ucsrb uint8
	ucsrc uint8
	ubrrl uint8
	ubrrh uint8

	// the most recently received byte. valid if RXC is set
	udr uint8
}

// NewUSART is the preferred method of initialisation for the USART type. The
// output writer can be nil, in which case output is discarded.
func NewUSART(host peripherals.Host, output io.Writer) *USART {
	if output == nil {
		output = io.Discard
	}

	u := &USART{
		host:   host,
		output: output,
		input:  make(chan uint8, inputQueueLen),
	}

	host.RegisterIO(addresses.UCSR0A, u.readUCSRA, u.writeUCSRA)
	host.RegisterIO(addresses.UCSR0B, func(_ uint16) uint8 { return u.ucsrb }, func(_ uint16, data uint8) { u.ucsrb = data })
	host.RegisterIO(addresses.UCSR0C, func(_ uint16) uint8 { return u.ucsrc }, func(_ uint16, data uint8) { u.ucsrc = data })
	host.RegisterIO(addresses.UBRR0L, func(_ uint16) uint8 { return u.ubrrl }, func(_ uint16, data uint8) { u.ubrrl = data })
	host.RegisterIO(addresses.UBRR0H, func(_ uint16) uint8 { return u.ubrrh }, func(_ uint16, data uint8) { u.ubrrh = data })
	host.RegisterIO(addresses.UDR0, u.readUDR, u.writeUDR)
	host.RegisterPoll(u.poll)

	return u
}

func (u *USART) String() string {
	return fmt.Sprintf("UCSR0A=%02x UCSR0B=%02x queued=%d", u.readUCSRA(addresses.UCSR0A), u.ucsrb, len(u.input))
}

// Reset the USART registers. Queued input is not discarded.
func (u *USART) Reset() {
	u.ucsra = 0
	u.ucsrb = 0
	u.ucsrc = 0
	u.ubrrl = 0
	u.ubrrh = 0
	u.udr = 0
}

// Receive queues a byte for the program. Returns false if the queue is full
// and the byte has been dropped. Safe to call from any goroutine.
func (u *USART) Receive(b uint8) bool {
	select {
	case u.input <- b:
		return true
	default:
		logger.Logf(logger.Allow, "usart", "input queue full. dropping %#02x", b)
		return false
	}
}

// AttachInput starts a goroutine that queues every byte read from r. The
// goroutine ends when the reader returns an error (including io.EOF). Unlike
// Receive(), bytes are never dropped. The goroutine waits for space in the
// queue.
func (u *USART) AttachInput(r io.Reader) {
	go func() {
		b := make([]byte, 1)
		for {
			n, err := r.Read(b)
			if n > 0 {
				u.input <- b[0]
			}
			if err != nil {
				if err != io.EOF {
					logger.Logf(logger.Allow, "usart", "input: %v", err)
				}
				return
			}
		}
	}()
}

func (u *USART) poll() {
	if u.ucsra&RXC == 0 {
		select {
		case b := <-u.input:
			u.udr = b
			u.ucsra |= RXC
			if u.ucsrb&RXCIE == RXCIE {
				u.host.Raise(interrupts.USARTRx)
			}
		default:
		}
	}

	if u.ucsrb&UDRIE == UDRIE {
		u.host.Raise(interrupts.USARTUDRE)
	}
}

// the data register is always empty
func (u *USART) readUCSRA(_ uint16) uint8 {
	return u.ucsra | UDRE
}

// the TXC bit is cleared by writing a one to it. other bits are read-only
func (u *USART) writeUCSRA(_ uint16, data uint8) {
	u.ucsra &^= data & TXC
}

func (u *USART) readUDR(_ uint16) uint8 {
	if u.ucsra&RXC == 0 {
		return 0
	}
	u.ucsra &^= RXC
	return u.udr
}

func (u *USART) writeUDR(_ uint16, data uint8) {
	_, err := u.output.Write([]byte{data})
	if err != nil {
		logger.Logf(logger.Allow, "usart", "output: %v", err)
	}
	u.ucsra |= TXC
}
