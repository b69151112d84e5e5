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

// Package memory implements the two memories of the microcontroller. The
// Memory type is the data space: the register file, the I/O registers and the
// internal RAM, all accessed through the same bus. The Program type is the
// program store.
//
// Addresses below addresses.IOLimit are I/O addresses. A peripheral can
// register a pair of callbacks for an I/O address with RegisterIO(). Reads
// from a registered address return the result of the read callback. Writes
// to a registered address call the write callback and then store the value in
// the backing byte. Addresses without callbacks are plain storage.
//
// Addresses beyond the capacity of the data space read as zero and writes to
// them are ignored. There is no error for a guest program accessing memory
// that does not exist.
package memory
