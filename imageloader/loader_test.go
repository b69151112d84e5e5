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

package imageloader_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopherduino/gopherduino/curated"
	"github.com/gopherduino/gopherduino/imageloader"
	"github.com/gopherduino/gopherduino/test"
)

// record creates a hex record with a correct checksum
func record(address uint16, typ uint8, data ...uint8) string {
	b := []uint8{uint8(len(data)), uint8(address >> 8), uint8(address), typ}
	b = append(b, data...)
	var sum uint8
	s := strings.Builder{}
	s.WriteRune(':')
	for _, v := range b {
		s.WriteString(fmt.Sprintf("%02X", v))
		sum += v
	}
	s.WriteString(fmt.Sprintf("%02X\n", -sum))
	return s.String()
}

func TestRecordHelper(t *testing.T) {
	test.ExpectEquality(t, record(0x0000, 0x00, 0x02, 0xe4), ":0200000002E418\n")
	test.ExpectEquality(t, record(0x0000, 0x01), ":00000001FF\n")
}

func TestHex(t *testing.T) {
	data := ":0200000002E418\r\n:02000200FFCF2E\r\n:00000001FF\r\n"

	img, err := imageloader.Parse([]uint8(data), 1024)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Format, imageloader.Hex)
	test.ExpectEquality(t, len(img.Data), 4)
	test.ExpectEquality(t, img.Data[0], uint8(0x02))
	test.ExpectEquality(t, img.Data[1], uint8(0xe4))
	test.ExpectEquality(t, img.Data[2], uint8(0xff))
	test.ExpectEquality(t, img.Data[3], uint8(0xcf))
}

func TestRoundTrip(t *testing.T) {
	original := map[uint16][]uint8{
		0x0010: {0x01, 0x02, 0x03, 0x04},
		0x0100: {0xaa, 0xbb},
		0x0003: {0x7f},
	}

	s := strings.Builder{}
	for a, d := range original {
		s.WriteString(record(a, 0x00, d...))
	}
	s.WriteString(record(0, 0x01))

	img, err := imageloader.Parse([]uint8(s.String()), 1024)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(img.Data), 0x0102)

	written := make(map[int]bool)
	for a, d := range original {
		for i, v := range d {
			test.ExpectEquality(t, img.Data[int(a)+i], v)
			written[int(a)+i] = true
		}
	}

	// everything else is zero
	for i, v := range img.Data {
		if !written[i] {
			test.ExpectEquality(t, v, uint8(0), i)
		}
	}
}

func TestEndOfFile(t *testing.T) {
	// records after the end of file record are ignored
	data := record(0, 0x00, 0x11) + record(0, 0x01) + record(0x10, 0x00, 0x22)
	img, err := imageloader.Parse([]uint8(data), 1024)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(img.Data), 1)
}

func TestMalformed(t *testing.T) {
	var err error

	// bad checksum
	_, err = imageloader.Parse([]uint8(":0200000002E419\n"), 1024)
	test.ExpectSuccess(t, curated.Is(err, imageloader.BadChecksum))

	// unsupported record type
	_, err = imageloader.Parse([]uint8(record(0, 0x00, 0x01)+record(0, 0x04, 0x00, 0x00)), 1024)
	test.ExpectSuccess(t, curated.Is(err, imageloader.UnsupportedType))

	// a bad record after a good first line
	_, err = imageloader.Parse([]uint8(record(0, 0x00, 0x01)+":02000000\n"), 1024)
	test.ExpectSuccess(t, curated.Is(err, imageloader.MalformedRecord))

	_, err = imageloader.Parse([]uint8(record(0, 0x00, 0x01)+"0200000002E418\n"), 1024)
	test.ExpectSuccess(t, curated.Is(err, imageloader.MalformedRecord))

	// too large for the buffer
	_, err = imageloader.Parse([]uint8(record(0x0400, 0x00, 0x01)), 1024)
	test.ExpectSuccess(t, curated.Is(err, imageloader.ImageTooLarge))
}

func TestBinary(t *testing.T) {
	// first line is not a well formed record so the data is loaded as is
	data := []uint8{':', '0', '2', 0x00, 0x01, '\n', 0xff}
	img, err := imageloader.Parse(data, 1024)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Format, imageloader.Binary)
	test.ExpectEquality(t, string(img.Data), string(data))

	// the length of the first line does not match the length field
	img, err = imageloader.Parse([]uint8(":0200000002E4\n"), 1024)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Format, imageloader.Binary)

	_, err = imageloader.Parse(make([]uint8, 1025), 1024)
	test.ExpectSuccess(t, curated.Is(err, imageloader.ImageTooLarge))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	fn := filepath.Join(dir, "prog.hex")
	test.DemandSuccess(t, os.WriteFile(fn, []uint8(":0200000002E418\n:00000001FF\n"), 0o644))

	img, err := imageloader.Load(fn, 1024)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.ShortName(), "prog.hex")
	test.ExpectEquality(t, img.Format, imageloader.Hex)
	test.ExpectEquality(t, len(img.Hash), 40)

	_, err = imageloader.Load(filepath.Join(dir, "missing.hex"), 1024)
	test.ExpectSuccess(t, curated.Is(err, imageloader.FileError))
}
