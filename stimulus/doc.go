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

// Package stimulus drives the pins and the serial port of the board from a Lua
// script.
//
// The script is run once when it is loaded. It can define a global function
// called poll(), which will be called every time the board returns to the
// host. The following functions are available to the script:
//
//	set_pin(n, level)  set the external level of pin n
//	get_pin(n)         returns the level of pin n
//	cycles()           returns the number of CPU cycles since reset
//	log(msg)           write a message to the log
//	serial(str)        queue the bytes of str for the serial port
//
// For example, the following script holds pin 2 high for the first million
// cycles:
//
//	set_pin(2, true)
//	function poll()
//		if cycles() > 1000000 then
//			set_pin(2, false)
//		end
//	end
package stimulus
