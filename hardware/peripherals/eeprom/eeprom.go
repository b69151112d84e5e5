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

// Package eeprom implements the 1KiB non-volatile memory of the ATmega328P
// and its control registers.
//
// A read is requested by setting the address in EEAR and then writing the
// EERE bit of EECR. The data is then available in EEDR. A write is requested
// by setting the address and EEDR and then writing the EEPE bit of EECR. The
// EEPM bits of EECR select how the data is committed.
//
// Reads and writes complete immediately. If EERIE is set then the EE_READY
// interrupt is raised at every poll boundary.
//
// The contents of the EEPROM survive a reset. Load() and Save() move the
// contents to and from a file.
package eeprom

import (
	"fmt"
	"io"

	"github.com/gopherduino/gopherduino/curated"
	"github.com/gopherduino/gopherduino/hardware/interrupts"
	"github.com/gopherduino/gopherduino/hardware/memory/addresses"
	"github.com/gopherduino/gopherduino/hardware/peripherals"
	"github.com/gopherduino/gopherduino/logger"
)

// Size of the EEPROM in bytes.
const Size = 1024

// Bits in the EECR register.
const (
	EERE  = 0x01
	EEPE  = 0x02
	EEMPE = 0x04
	EERIE = 0x08
	EEPM0 = 0x10
	EEPM1 = 0x20

	eepm = EEPM0 | EEPM1
)

// Sentinel error patterns.
const (
	ImageTooLarge = "eeprom: image too large (%d bytes)"
	SaveError     = "eeprom: save: %v"
)

// EEPROM implements the non-volatile memory.
type EEPROM struct {
	host peripherals.Host

	// amend Data only through commit() and Load()
	Data [Size]uint8

	// whether Data has changed since the last call to Load() or Save()
	changed bool

	eecr uint8
	eedr uint8
	eear uint16

	// logging of read and write commands is off by default
	Verbose logger.Verbosity
}

// NewEEPROM is the preferred method of initialisation for the EEPROM type.
// The contents of the EEPROM are initialised to 0xff.
func NewEEPROM(host peripherals.Host) *EEPROM {
	ee := &EEPROM{
		host: host,
	}

	for i := range ee.Data {
		ee.Data[i] = 0xff
	}

	host.RegisterIO(addresses.EECR, ee.readEECR, ee.writeEECR)
	host.RegisterIO(addresses.EEDR, ee.readEEDR, ee.writeEEDR)
	host.RegisterIO(addresses.EEARL, ee.readEEARL, ee.writeEEARL)
	host.RegisterIO(addresses.EEARH, ee.readEEARH, ee.writeEEARH)
	host.RegisterPoll(ee.poll)

	return ee
}

func (ee *EEPROM) String() string {
	return fmt.Sprintf("EECR=%02x EEDR=%02x EEAR=%03x", ee.eecr, ee.eedr, ee.eear)
}

// Reset the control registers. The contents of the EEPROM are not changed.
func (ee *EEPROM) Reset() {
	ee.eecr = 0
	ee.eedr = 0
	ee.eear = 0
}

// Load data into the EEPROM. Data shorter than the EEPROM fills it from
// address zero and the remainder is left unchanged.
func (ee *EEPROM) Load(data []uint8) error {
	if len(data) > Size {
		return curated.Errorf(ImageTooLarge, len(data))
	}
	copy(ee.Data[:], data)
	ee.changed = false
	logger.Logf(logger.Allow, "eeprom", "loaded %d bytes", len(data))
	return nil
}

// Save the entire contents of the EEPROM to the writer.
func (ee *EEPROM) Save(w io.Writer) error {
	n, err := w.Write(ee.Data[:])
	if err != nil {
		return curated.Errorf(SaveError, err)
	}
	if n != Size {
		return curated.Errorf(SaveError, io.ErrShortWrite)
	}
	ee.changed = false
	logger.Logf(logger.Allow, "eeprom", "saved %d bytes", n)
	return nil
}

// Changed returns true if the contents of the EEPROM have been written to by
// the program since the last Load() or Save().
func (ee *EEPROM) Changed() bool {
	return ee.changed
}

func (ee *EEPROM) poll() {
	if ee.eecr&EERIE == EERIE {
		ee.host.Raise(interrupts.EEReady)
	}
}

// the read and write strobes always read back as zero
func (ee *EEPROM) readEECR(_ uint16) uint8 {
	return ee.eecr &^ (EERE | EEPE)
}

func (ee *EEPROM) writeEECR(_ uint16, data uint8) {
	ee.eecr = data

	if data&EERE == EERE {
		ee.eedr = ee.Data[ee.eear]
		logger.Logf(&ee.Verbose, "eeprom", "read %02x from %03x", ee.eedr, ee.eear)
	}

	if data&EEPE == EEPE {
		ee.commit()
	}
}

// commit EEDR to the addressed byte according to the programming mode
func (ee *EEPROM) commit() {
	v := ee.Data[ee.eear]

	switch ee.eecr & eepm {
	case 0:
		// erase and write
		v = ee.eedr
	case EEPM0:
		// erase only
		v = 0xff
	case EEPM1:
		// write only. bits can only be cleared
		v &= ee.eedr
	default:
		// reserved mode
		return
	}

	if ee.Data[ee.eear] != v {
		ee.Data[ee.eear] = v
		ee.changed = true
	}

	logger.Logf(&ee.Verbose, "eeprom", "wrote %02x to %03x", v, ee.eear)
}

func (ee *EEPROM) readEEDR(_ uint16) uint8 {
	return ee.eedr
}

func (ee *EEPROM) writeEEDR(_ uint16, data uint8) {
	ee.eedr = data
}

func (ee *EEPROM) readEEARL(_ uint16) uint8 {
	return uint8(ee.eear)
}

func (ee *EEPROM) writeEEARL(_ uint16, data uint8) {
	ee.eear = (ee.eear&0xff00 | uint16(data)) & (Size - 1)
}

func (ee *EEPROM) readEEARH(_ uint16) uint8 {
	return uint8(ee.eear >> 8)
}

func (ee *EEPROM) writeEEARH(_ uint16, data uint8) {
	ee.eear = (ee.eear&0x00ff | uint16(data)<<8) & (Size - 1)
}
