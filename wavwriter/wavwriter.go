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

// Package wavwriter records the level of an output pin as a WAV file. This is
// useful for programs that produce sound by toggling a pin.
//
// Samples are buffered in memory in their entirety and written to disk when
// the recording ends. It is therefore probably only suitable for short
// recordings.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/gopherduino/gopherduino/curated"
	"github.com/gopherduino/gopherduino/logger"
)

// CPUFrequency is the clock speed of the emulated board, in Hz.
const CPUFrequency = 16000000

// SampleFreq is the sample rate of the WAV file.
const SampleFreq = 44100

// sample values for the two pin levels. 8-bit WAV data is unsigned
const (
	sampleLow  = 0x40
	sampleHigh = 0xc0
)

// Sentinel error patterns.
const (
	WavWriterError = "wavwriter: %v"
)

// Clock is the source of the cycle count used to time level changes.
type Clock interface {
	Cycles() uint64
}

// WavWriter records the level of a single pin.
type WavWriter struct {
	filename string
	clock    Clock
	pin      int

	level  bool
	buffer []int
}

// New is the preferred method of initialisation for the WavWriter type. The
// pin argument is the pin that is to be recorded.
func New(filename string, clock Clock, pin int) *WavWriter {
	return &WavWriter{
		filename: filename,
		clock:    clock,
		pin:      pin,
	}
}

func (ww *WavWriter) String() string {
	return fmt.Sprintf("pin %d to %s", ww.pin, ww.filename)
}

// the sample number for the current cycle count
func (ww *WavWriter) sampleNum() int {
	return int(ww.clock.Cycles() * SampleFreq / CPUFrequency)
}

// fill the buffer with the current level up to the current cycle
func (ww *WavWriter) fill() {
	v := sampleLow
	if ww.level {
		v = sampleHigh
	}
	for n := ww.sampleNum(); len(ww.buffer) < n; {
		ww.buffer = append(ww.buffer, v)
	}
}

// OutPin records a change of level. Changes to other pins are ignored. The
// function signature matches hardware.PinCallback.
func (ww *WavWriter) OutPin(pin int, level bool) {
	if pin != ww.pin {
		return
	}
	ww.fill()
	ww.level = level
}

// NumSamples returns the number of samples recorded so far.
func (ww *WavWriter) NumSamples() int {
	return len(ww.buffer)
}

// Close ends the recording and writes the WAV file.
func (ww *WavWriter) Close() (rerr error) {
	ww.fill()

	f, err := os.Create(ww.filename)
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WavWriterError, err)
		}
	}()

	enc := wav.NewEncoder(f, SampleFreq, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleFreq,
		},
		Data:           ww.buffer,
		SourceBitDepth: 8,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(WavWriterError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	logger.Logf(logger.Allow, "wavwriter", "wrote %d samples to %s", len(ww.buffer), ww.filename)

	return nil
}
