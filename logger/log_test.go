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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/gopherduino/gopherduino/logger"
	"github.com/gopherduino/gopherduino/test"
)

func TestTail(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	test.ExpectFailure(t, log.Write(w))
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "cpu", "halted")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "cpu: halted\n")

	w.Reset()
	log.Log(logger.Allow, "usart", "rx overrun")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "cpu: halted\nusart: rx overrun\n")

	// too many, exact and fewer
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "cpu: halted\nusart: rx overrun\n")
	w.Reset()
	log.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "cpu: halted\nusart: rx overrun\n")
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "usart: rx overrun\n")
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "timer", "overflow")
	log.Log(logger.Allow, "timer", "overflow")
	log.Log(logger.Allow, "timer", "overflow")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "timer: overflow (repeat x3)\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

func TestRecent(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "a: 1\n")

	w.Reset()
	log.Log(logger.Allow, "b", "2")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "b: 2\n")

	w.Reset()
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "board", "reset")
	log.SetEcho(w, true)
	test.ExpectEquality(t, w.String(), "board: reset\n")

	log.Logf(logger.Allow, "board", "loaded %d bytes", 16)
	test.ExpectEquality(t, w.String(), "board: reset\nboard: loaded 16 bytes\n")

	log.SetEcho(nil, false)
	log.Log(logger.Allow, "board", "quiet")
	test.ExpectEquality(t, w.String(), "board: reset\nboard: loaded 16 bytes\n")
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	var verbose logger.Verbosity

	log.Log(&verbose, "tag", "not logged")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	verbose = true
	log.Log(&verbose, "tag", "logged")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: logged\n")
}

type stringer struct{}

func (stringer) String() string {
	return "stringer"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("error detail"))
	log.Log(logger.Allow, "tag", stringer{})
	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: error detail\ntag: stringer\ntag: 100\n")
}
