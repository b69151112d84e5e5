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

// Package curated is a helper package for the plain Go error type. Curated
// errors are created with Errorf(), which takes a formatting pattern and
// placeholder values in the same way as fmt.Errorf().
//
// The pattern identifies the error. Patterns that need to be checked by other
// packages should be stored as a const string in the package that raises the
// error. For example, the cpu package exports:
//
//	const UnimplementedInstruction = "cpu: unimplemented instruction: %s"
//
// which a caller checks with:
//
//	if curated.Is(err, cpu.UnimplementedInstruction) {
//		...
//	}
//
// Has() is similar but checks if the pattern occurs anywhere in the error
// chain. A curated error placed in the values of another curated error is
// part of the chain:
//
//	e := curated.Errorf(imageloader.BadChecksum, 3)
//	f := curated.Errorf("board: %v", e)
//
//	curated.Is(f, imageloader.BadChecksum)   // false
//	curated.Has(f, imageloader.BadChecksum)  // true
//
// Curated errors also implement Unwrap() so errors.Is() and errors.As() from
// the standard library work with any error placed in the values.
//
// The Error() function removes duplicate adjacent parts of the message, where
// parts are separated by ": ". This means a function can wrap an error with a
// prefix without worrying if the inner error already has the same prefix:
//
//	board: board: program too large
//
// is normalised to:
//
//	board: program too large
package curated
