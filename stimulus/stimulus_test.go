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

package stimulus_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherduino/gopherduino/curated"
	"github.com/gopherduino/gopherduino/stimulus"
	"github.com/gopherduino/gopherduino/test"
)

type mockBoard struct {
	pins   [24]bool
	cycles uint64
}

func (b *mockBoard) SetPin(pin int, level bool) {
	b.pins[pin] = level
}

func (b *mockBoard) Pin(pin int) bool {
	return b.pins[pin]
}

func (b *mockBoard) Cycles() uint64 {
	return b.cycles
}

type mockSerial struct {
	received []uint8
}

func (s *mockSerial) Receive(b uint8) bool {
	s.received = append(s.received, b)
	return true
}

func TestPins(t *testing.T) {
	board := &mockBoard{}
	stm := stimulus.NewStimulus(board, nil)
	defer stm.Close()

	test.DemandSuccess(t, stm.LoadString(`
		set_pin(2, true)
		set_pin(23, get_pin(2))
	`))
	test.ExpectSuccess(t, board.pins[2])
	test.ExpectSuccess(t, board.pins[23])

	err := stm.LoadString(`set_pin(24, true)`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, stimulus.ScriptError))
}

func TestPoll(t *testing.T) {
	board := &mockBoard{}
	stm := stimulus.NewStimulus(board, nil)
	defer stm.Close()

	// no poll function
	test.ExpectSuccess(t, stm.Poll())

	test.DemandSuccess(t, stm.LoadString(`
		function poll()
			if cycles() > 1000 then
				set_pin(5, true)
			end
		end
	`))

	board.cycles = 500
	test.ExpectSuccess(t, stm.Poll())
	test.ExpectFailure(t, board.pins[5])

	board.cycles = 1500
	test.ExpectSuccess(t, stm.Poll())
	test.ExpectSuccess(t, board.pins[5])
}

func TestPollError(t *testing.T) {
	stm := stimulus.NewStimulus(&mockBoard{}, nil)
	defer stm.Close()

	test.DemandSuccess(t, stm.LoadString(`
		function poll()
			error("stop")
		end
	`))
	err := stm.Poll()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, stimulus.ScriptError))
}

func TestSerial(t *testing.T) {
	serial := &mockSerial{}
	stm := stimulus.NewStimulus(&mockBoard{}, serial)
	defer stm.Close()

	test.DemandSuccess(t, stm.LoadString(`serial("hi\n")`))
	test.ExpectEquality(t, string(serial.received), "hi\n")

	// log does not fail
	test.ExpectSuccess(t, stm.LoadString(`log("message")`))
}

func TestLoadFile(t *testing.T) {
	board := &mockBoard{}
	stm := stimulus.NewStimulus(board, nil)
	defer stm.Close()

	fn := filepath.Join(t.TempDir(), "stimulus.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []uint8("set_pin(7, true)\n"), 0o644))
	test.DemandSuccess(t, stm.LoadFile(fn))
	test.ExpectSuccess(t, board.pins[7])

	err := stm.LoadFile(filepath.Join(t.TempDir(), "missing.lua"))
	test.ExpectSuccess(t, curated.Is(err, stimulus.ScriptError))
}
