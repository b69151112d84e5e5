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

// Package statsview is an optional package that will only be built when the
// statsview build tag is present. Without the tag, Available() returns false
// and Launch() does nothing.
//
// The stats server offers runtime statistics of the running emulation and logs
// the emulated clock speed, which is useful when profiling long running
// sketches. After launch, graphical statistics will be viewable at:
//
//	localhost:12800/debug/statsview
//
// And the standard Go pprof statistics at:
//
//	localhost:12800/debug/pprof/
package statsview

// Address of the stats server.
const Address = "localhost:12800"

const url = "/debug/statsview"
