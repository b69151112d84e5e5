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

// Package disassembly produces a listing of a program image.
//
// Every word in the image is decoded with the same instruction table that the
// CPU uses. Double-word instructions consume the word that follows them. The
// listing is linear, not flow based, so data embedded in the program will be
// listed as instructions.
//
// For example:
//
//	dsm := disassembly.FromProgram(board.Program)
//	err := dsm.Write(os.Stdout, disassembly.WriteAttr{ByteCode: true})
package disassembly
