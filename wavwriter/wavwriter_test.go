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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/gopherduino/gopherduino/test"
	"github.com/gopherduino/gopherduino/wavwriter"
)

type clock struct {
	cycles uint64
}

func (c *clock) Cycles() uint64 {
	return c.cycles
}

func TestRecording(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "pin.wav")
	clk := &clock{}
	ww := wavwriter.New(fn, clk, 5)

	// one second in total. the level changes every quarter of a second
	quarter := uint64(wavwriter.CPUFrequency / 4)
	for i := range 4 {
		clk.cycles = uint64(i) * quarter
		ww.OutPin(5, i%2 == 0)

		// other pins are ignored
		ww.OutPin(6, true)
	}
	clk.cycles = 4 * quarter

	test.DemandSuccess(t, ww.Close())
	test.ExpectEquality(t, ww.NumSamples(), wavwriter.SampleFreq)

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, dec.SampleRate, uint32(wavwriter.SampleFreq))
	test.ExpectEquality(t, dec.NumChans, uint16(1))
	test.ExpectEquality(t, dec.BitDepth, uint16(8))

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), wavwriter.SampleFreq)

	// the first and second quarters are at different levels
	test.ExpectInequality(t, buf.Data[0], buf.Data[wavwriter.SampleFreq/2-1])
	test.ExpectEquality(t, buf.Data[0], buf.Data[wavwriter.SampleFreq/2])
}

func TestBadFilename(t *testing.T) {
	ww := wavwriter.New(filepath.Join(t.TempDir(), "missing", "pin.wav"), &clock{}, 0)
	test.ExpectFailure(t, ww.Close())
}
