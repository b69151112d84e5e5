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

// Package test bundles helper functions that remove common boilerplate from
// tests written with the standard testing package.
//
// The Expect functions report a failed expectation with t.Errorf() and allow
// the test to continue. The Demand functions report with t.Fatalf() and
// should be used when the value is needed by the remainder of the test.
//
// Success and failure values are interpreted by type. A bool is successful
// when it is true. An error is successful when it is nil. An untyped nil is a
// success value.
//
// Every function accepts optional tags. The tags are prepended to the failure
// message and are useful for identifying the iteration of a table driven test.
//
// The Writer and RingWriter types implement io.Writer and are used to capture
// output for comparison.
package test
