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

package memory_test

import (
	"testing"

	"github.com/gopherduino/gopherduino/curated"
	"github.com/gopherduino/gopherduino/hardware/memory"
	"github.com/gopherduino/gopherduino/hardware/memory/addresses"
	"github.com/gopherduino/gopherduino/test"
)

func TestPassThrough(t *testing.T) {
	mem := memory.NewMemory()

	// unregistered I/O address
	mem.Write(0x30, 0xa5)
	test.ExpectEquality(t, mem.Read(0x30), uint8(0xa5))

	// RAM
	mem.Write(0x0100, 0x5a)
	test.ExpectEquality(t, mem.Read(0x0100), uint8(0x5a))
	mem.Write(addresses.RAMEnd, 0x01)
	test.ExpectEquality(t, mem.Read(addresses.RAMEnd), uint8(0x01))
}

func TestBeyondDataSpace(t *testing.T) {
	mem := memory.NewMemory()
	mem.Write(addresses.RAMEnd+1, 0xff)
	test.ExpectEquality(t, mem.Read(addresses.RAMEnd+1), uint8(0x00))
	test.ExpectEquality(t, mem.Read(0xffff), uint8(0x00))

	_, err := mem.Peek(0xffff)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfRange))
	err = mem.Poke(0xffff, 0x00)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfRange))
}

func TestCallbacks(t *testing.T) {
	mem := memory.NewMemory()

	var written []uint8
	mem.RegisterIO(0x40,
		func(address uint16) uint8 {
			return 0x99
		},
		func(address uint16, data uint8) {
			test.ExpectEquality(t, address, uint16(0x40))
			written = append(written, data)
		})

	mem.Write(0x40, 0x12)
	mem.Write(0x40, 0x34)
	test.ExpectEquality(t, len(written), 2)
	test.ExpectEquality(t, written[1], uint8(0x34))

	// the read callback overrides the stored byte but the stored byte is
	// still updated
	test.ExpectEquality(t, mem.Read(0x40), uint8(0x99))
	v, err := mem.Peek(0x40)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x34))

	// write only registration. reads see the stored byte
	mem.RegisterIO(0x41, nil, func(address uint16, data uint8) {})
	mem.Write(0x41, 0x77)
	test.ExpectEquality(t, mem.Read(0x41), uint8(0x77))
	test.ExpectSuccess(t, mem.IsRegistered(0x41))
	test.ExpectFailure(t, mem.IsRegistered(0x42))
}

func TestDoubleRegistration(t *testing.T) {
	mem := memory.NewMemory()
	mem.RegisterIO(0x23, nil, nil)
	test.ExpectPanic(t, func() {
		mem.RegisterIO(0x23, nil, nil)
	})
	test.ExpectPanic(t, func() {
		mem.RegisterIO(0x100, nil, nil)
	})
}

func TestStatusWatcher(t *testing.T) {
	mem := memory.NewMemory()

	var calls int
	var prev, next uint8
	mem.WatchStatus(func(p uint8, n uint8) {
		calls++
		prev = p
		next = n
	})

	mem.Write(addresses.SREG, 0x80)
	test.ExpectEquality(t, calls, 1)
	test.ExpectEquality(t, prev, uint8(0x00))
	test.ExpectEquality(t, next, uint8(0x80))
	test.ExpectEquality(t, mem.Read(addresses.SREG), uint8(0x80))

	// pokes are not bus writes
	mem.Poke(addresses.SREG, 0x00)
	test.ExpectEquality(t, calls, 1)
}

func TestProgram(t *testing.T) {
	p := memory.NewProgram()
	test.DemandSuccess(t, p.Load([]uint8{0x0f, 0xe4, 0xff, 0xcf, 0x12}))
	test.ExpectEquality(t, p.Words[0], uint16(0xe40f))
	test.ExpectEquality(t, p.Words[1], uint16(0xcfff))
	test.ExpectEquality(t, p.Words[2], uint16(0x0012))
	test.ExpectEquality(t, p.Words[3], uint16(0x0000))
	test.ExpectEquality(t, p.Length, 5)

	test.ExpectEquality(t, p.Byte(0), uint8(0x0f))
	test.ExpectEquality(t, p.Byte(1), uint8(0xe4))
	test.ExpectEquality(t, p.Byte(3), uint8(0xcf))

	// loading clears the previous image
	test.DemandSuccess(t, p.Load([]uint8{0x01}))
	test.ExpectEquality(t, p.Words[1], uint16(0x0000))

	err := p.Load(make([]uint8, memory.ProgramSize*2+1))
	test.ExpectSuccess(t, curated.Is(err, memory.ProgramTooLarge))
}
