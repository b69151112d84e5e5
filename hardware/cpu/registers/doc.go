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

// Package registers implements views of the CPU registers. The registers of
// the microcontroller are not separate from memory. They occupy fixed
// addresses in the data space and guest programs can access them with
// ordinary loads and stores.
//
// Each type in this package is a view of the data space byte slice. A view
// does not own any state and reading a register always reflects the most
// recent write, whichever route the write took. The offsets of each register
// are defined in the memory/addresses package.
//
// Writes through a view do not go through the memory bus and so do not
// trigger peripheral callbacks or the status register watcher.
package registers
