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

// Package imageloader reads program and EEPROM images from files.
//
// Two formats are supported. Intel hex files are ASCII records of the form:
//
//	:LLAAAATTDD...CC
//
// where LL is the number of data bytes, AAAA is the address of the first
// byte, TT is the record type and CC is the checksum. Record type 00 is data
// and record type 01 is the end of the file. Other record types are not
// supported. The sum of all bytes in a record, including the checksum, must be
// zero.
//
// A file is treated as a hex file if the first line is a well formed record.
// Otherwise the file is loaded as raw binary data.
//
// The simplest use of the package:
//
//	img, err := imageloader.Load("blink.hex", memory.ProgramSize*2)
//	if err != nil {
//		return err
//	}
//	err = board.LoadProgram(img.Data)
package imageloader
