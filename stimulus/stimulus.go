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

package stimulus

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/gopherduino/gopherduino/curated"
	"github.com/gopherduino/gopherduino/hardware/peripherals/ports"
	"github.com/gopherduino/gopherduino/logger"
)

// Sentinel error patterns.
const (
	ScriptError = "stimulus: %v"
)

// Board is the board as seen by a script.
type Board interface {
	SetPin(pin int, level bool)
	Pin(pin int) bool
	Cycles() uint64
}

// Serial receives bytes queued by a script.
type Serial interface {
	Receive(b uint8) bool
}

// the name of the optional function called by Poll()
const pollFunction = "poll"

// Stimulus is a running Lua script.
type Stimulus struct {
	L *lua.LState

	board  Board
	serial Serial
}

// NewStimulus is the preferred method of initialisation for the Stimulus type.
// The serial argument can be nil, in which case the serial() function in the
// script does nothing.
func NewStimulus(board Board, serial Serial) *Stimulus {
	stm := &Stimulus{
		L:      lua.NewState(),
		board:  board,
		serial: serial,
	}

	stm.L.SetGlobal("set_pin", stm.L.NewFunction(stm.setPin))
	stm.L.SetGlobal("get_pin", stm.L.NewFunction(stm.getPin))
	stm.L.SetGlobal("cycles", stm.L.NewFunction(stm.cycles))
	stm.L.SetGlobal("log", stm.L.NewFunction(stm.log))
	stm.L.SetGlobal("serial", stm.L.NewFunction(stm.queueSerial))

	return stm
}

// Close the Lua state. The Stimulus can not be used after Close() has been
// called.
func (stm *Stimulus) Close() {
	stm.L.Close()
}

// LoadFile runs the script in the named file.
func (stm *Stimulus) LoadFile(filename string) error {
	if err := stm.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	logger.Logf(logger.Allow, "stimulus", "loaded %s", filename)
	return nil
}

// LoadString runs the script in the string.
func (stm *Stimulus) LoadString(script string) error {
	if err := stm.L.DoString(script); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// Poll calls the poll() function of the script, if it has one.
func (stm *Stimulus) Poll() error {
	fn, ok := stm.L.GetGlobal(pollFunction).(*lua.LFunction)
	if !ok {
		return nil
	}

	err := stm.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	})
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}

	return nil
}

func (stm *Stimulus) checkPin(L *lua.LState) int {
	pin := L.CheckInt(1)
	if pin < 0 || pin >= ports.NumPins {
		L.ArgError(1, "pin out of range")
	}
	return pin
}

func (stm *Stimulus) setPin(L *lua.LState) int {
	pin := stm.checkPin(L)
	stm.board.SetPin(pin, L.ToBool(2))
	return 0
}

func (stm *Stimulus) getPin(L *lua.LState) int {
	pin := stm.checkPin(L)
	L.Push(lua.LBool(stm.board.Pin(pin)))
	return 1
}

func (stm *Stimulus) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(stm.board.Cycles()))
	return 1
}

func (stm *Stimulus) log(L *lua.LState) int {
	logger.Log(logger.Allow, "stimulus", L.CheckString(1))
	return 0
}

func (stm *Stimulus) queueSerial(L *lua.LState) int {
	s := L.CheckString(1)
	if stm.serial == nil {
		return 0
	}
	for i := 0; i < len(s); i++ {
		stm.serial.Receive(s[i])
	}
	return 0
}
