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

package statsview

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Stats about the emulation. Update() is called by the emulation goroutine and
// the values are read by the stats server.
type Stats struct {
	cycles atomic.Uint64
	start  time.Time
}

// NewStats is the preferred method of initialisation for the Stats type.
func NewStats() *Stats {
	return &Stats{start: time.Now()}
}

// Update the cycle count of the emulation.
func (st *Stats) Update(cycles uint64) {
	st.cycles.Store(cycles)
}

// Cycles returns the most recent cycle count.
func (st *Stats) Cycles() uint64 {
	return st.cycles.Load()
}

// Speed returns the emulated clock speed in MHz for the elapsed time.
func (st *Stats) Speed(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(st.Cycles()) / elapsed.Seconds() / 1000000
}

func (st *Stats) String() string {
	return fmt.Sprintf("%d cycles (%.2fMHz)", st.Cycles(), st.Speed(time.Since(st.start)))
}
