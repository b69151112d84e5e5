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

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopherduino/gopherduino/test"
)

// writeProgram writes the instruction words to a raw binary file
func writeProgram(t *testing.T, words ...uint16) string {
	t.Helper()
	data := make([]uint8, 0, len(words)*2)
	for _, w := range words {
		data = append(data, uint8(w), uint8(w>>8))
	}
	filename := filepath.Join(t.TempDir(), "program.bin")
	test.DemandSuccess(t, os.WriteFile(filename, data, 0o644))
	return filename
}

type testStreams struct {
	output test.Writer
	errors test.Writer
}

func (s *testStreams) launch(args ...string) int {
	return launch(context.Background(), args, streams{
		input:  strings.NewReader(""),
		output: &s.output,
		errors: &s.errors,
	})
}

// LDI r16, 'A'; STS UDR0, r16; HALT
var serialProgram = []uint16{0xe401, 0x9300, 0x00c6, 0xcfff}

func TestRun(t *testing.T) {
	var s testStreams
	filename := writeProgram(t, serialProgram...)

	test.ExpectEquality(t, s.launch(filename), exitOK)
	test.ExpectSuccess(t, s.output.Compare("A"))

	s.output.Clear()
	test.ExpectEquality(t, s.launch("RUN", filename), exitOK)
	test.ExpectSuccess(t, s.output.Compare("A"))
}

func TestRunTrace(t *testing.T) {
	var s testStreams
	filename := writeProgram(t, serialProgram...)

	test.ExpectEquality(t, s.launch("RUN", "-trace", filename), exitOK)
	test.ExpectSuccess(t, strings.Contains(s.errors.String(), "LDI"))
	test.ExpectSuccess(t, strings.Contains(s.errors.String(), "STS"))
}

func TestExitValues(t *testing.T) {
	var s testStreams

	// SLEEP
	filename := writeProgram(t, 0x9588)
	test.ExpectEquality(t, s.launch(filename), exitUnimplemented)
	test.ExpectSuccess(t, strings.Contains(s.errors.String(), "SLEEP"))

	filename = filepath.Join(t.TempDir(), "missing.hex")
	test.ExpectEquality(t, s.launch(filename), exitLoad)

	test.ExpectEquality(t, s.launch("RUN"), exitError)
	test.ExpectEquality(t, s.launch("-nosuchflag"), exitError)
	test.ExpectEquality(t, s.launch("-help"), exitOK)
}

func TestMaxCycles(t *testing.T) {
	var s testStreams

	// NOP; RJMP .-4
	filename := writeProgram(t, 0x0000, 0xcffe)
	test.ExpectEquality(t, s.launch("-maxcycles", "1000", filename), exitOK)
}

func TestLuaStimulus(t *testing.T) {
	var s testStreams

	script := filepath.Join(t.TempDir(), "stimulus.lua")
	test.DemandSuccess(t, os.WriteFile(script, []byte(`
		function poll()
			if cycles() > 20000 then
				error("stop")
			end
		end
	`), 0o644))

	// NOP; RJMP .-4
	filename := writeProgram(t, 0x0000, 0xcffe)
	test.ExpectEquality(t, s.launch("-lua", script, filename), exitError)
	test.ExpectSuccess(t, strings.Contains(s.errors.String(), "stop"))

	test.ExpectEquality(t, s.launch("-lua", filepath.Join(t.TempDir(), "missing.lua"), filename), exitLoad)
}

func TestEEPROMFlags(t *testing.T) {
	var s testStreams
	filename := writeProgram(t, serialProgram...)

	test.ExpectEquality(t, s.launch("-save-eeprom", filename), exitError)

	// the program does not write to the EEPROM so the file is not created
	eeprom := filepath.Join(t.TempDir(), "eeprom.bin")
	test.ExpectEquality(t, s.launch("-eeprom", eeprom, "-save-eeprom", filename), exitOK)
	_, err := os.Stat(eeprom)
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, s.launch("-eeprom", eeprom, filename), exitLoad)
}

func TestMemviz(t *testing.T) {
	var s testStreams
	filename := writeProgram(t, serialProgram...)

	dot := filepath.Join(t.TempDir(), "state.dot")
	test.ExpectEquality(t, s.launch("-memviz", dot, filename), exitOK)

	data, err := os.ReadFile(dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))
}

func TestDisasm(t *testing.T) {
	var s testStreams
	filename := writeProgram(t, serialProgram...)

	test.ExpectEquality(t, s.launch("DISASM", filename), exitOK)

	lines := strings.Split(strings.TrimSpace(s.output.String()), "\n")
	test.ExpectEquality(t, len(lines), 3)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "0000:"))
	test.ExpectSuccess(t, strings.Contains(lines[1], "STS"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[2], "0006:"))
	test.ExpectSuccess(t, strings.Contains(lines[2], "HALT"))

	s.output.Clear()
	test.ExpectEquality(t, s.launch("DISASM", "-bytes", filename), exitOK)
	test.ExpectSuccess(t, strings.Contains(s.output.String(), "9300 00c6"))
}
