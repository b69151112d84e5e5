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

package imageloader

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/gopherduino/gopherduino/curated"
)

// record types
const (
	recordData = 0x00
	recordEOF  = 0x01
)

// the length of a record with no data bytes. the colon, the length, the
// address, the type and the checksum
const recordOverhead = 11

// firstLine returns the first line of data without the line ending
func firstLine(data []uint8) string {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		data = data[:i]
	}
	return strings.TrimRight(string(data), "\r")
}

// isHex returns true if the first line of data is a hex record whose length
// matches the length field.
func isHex(data []uint8) bool {
	s := firstLine(data)
	if len(s) < 3 || s[0] != ':' {
		return false
	}
	n, err := hex.DecodeString(s[1:3])
	if err != nil {
		return false
	}
	return len(s) == recordOverhead+2*int(n[0])
}

// parseHex places the data records in buf. Returns one more than the highest
// address written to.
func parseHex(data []uint8, buf []uint8) (int, error) {
	var end int

	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++

		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue // for loop
		}
		if s[0] != ':' || len(s) < recordOverhead || len(s)%2 != 1 {
			return 0, curated.Errorf(MalformedRecord, line)
		}

		rec, err := hex.DecodeString(s[1:])
		if err != nil {
			return 0, curated.Errorf(MalformedRecord, line)
		}

		n := int(rec[0])
		if len(rec) != n+5 {
			return 0, curated.Errorf(MalformedRecord, line)
		}

		var sum uint8
		for _, b := range rec {
			sum += b
		}
		if sum != 0 {
			return 0, curated.Errorf(BadChecksum, line)
		}

		address := int(rec[1])<<8 | int(rec[2])

		switch rec[3] {
		case recordData:
			if address+n > len(buf) {
				return 0, curated.Errorf(ImageTooLarge, len(buf))
			}
			copy(buf[address:], rec[4:4+n])
			end = max(end, address+n)
		case recordEOF:
			return end, nil
		default:
			return 0, curated.Errorf(UnsupportedType, line, rec[3])
		}
	}

	if err := scanner.Err(); err != nil {
		return 0, curated.Errorf(FileError, err)
	}

	return end, nil
}
