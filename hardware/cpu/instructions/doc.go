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

// Package instructions defines the instruction set of the CPU. Each
// instruction is described by a Definition, the most important part of which
// is the bit pattern of the instruction word.
//
// A bit pattern is a string of sixteen characters, most significant bit
// first. The characters '0' and '1' must match the instruction word. Any
// other character is part of an operand field. For example, the pattern for
// LDI is:
//
//	1110KKKKddddKKKK
//
// The Table type maps every possible instruction word to a definition. Some
// patterns are refinements of other patterns. For example, LD Rd, Y is the
// case of LDD Rd, Y+q where q is zero. When building the table, definitions
// with more fixed bits are matched first. Two definitions with the same
// number of fixed bits must never match the same word. The halt sentinel,
// RJMP with an offset of -1, is matched in this way too: all sixteen bits of
// its pattern are fixed.
//
// Words that match no definition are mapped to a definition with the
// Undefined operator.
package instructions
