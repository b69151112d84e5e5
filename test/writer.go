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

package test

// Writer captures output so that it can be compared with an expected string.
type Writer struct {
	buffer []byte
}

// Write implements the io.Writer interface.
func (w *Writer) Write(p []byte) (n int, err error) {
	w.buffer = append(w.buffer, p...)
	return len(p), nil
}

// Clear empties the buffer.
func (w *Writer) Clear() {
	w.buffer = w.buffer[:0]
}

// Compare buffered output with the expected string.
func (w *Writer) Compare(s string) bool {
	return s == string(w.buffer)
}

// Bytes returns the buffered output. The slice is only valid until the next
// write.
func (w *Writer) Bytes() []byte {
	return w.buffer
}

func (w *Writer) String() string {
	return string(w.buffer)
}
