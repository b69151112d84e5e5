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

// Package cpu emulates the AVR CPU of the ATmega328P.
//
// The CPU fetches instructions from the program store and accesses the data
// space through the memory bus. The general purpose registers, the stack
// pointer and the status register are views of the data space. See the
// registers package.
//
// ExecuteInstruction() executes a single instruction. Run() executes
// instructions until the next poll boundary, or until the CPU halts. At a
// poll boundary every registered poll function is called, once, and Run()
// returns. Poll boundaries occur when more than PollInterval cycles have
// elapsed since the previous boundary. Peripherals use the poll functions to
// do work that is not a direct result of a bus access, such as raising
// interrupts.
//
// The CPU halts when it executes the sentinel RJMP .-1 instruction that
// compilers place at the end of a program. A halted CPU stays halted until it
// is reset.
//
// Some rare instructions are not emulated. Executing one of these, or an
// instruction word that is not defined by the instruction set, results in an
// error with the UnimplementedInstruction pattern. The error is the end of
// emulation for the program.
package cpu
