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

// Package mock implements a peripherals.Host for testing peripherals in
// isolation from the CPU.
package mock

import (
	"fmt"

	"github.com/gopherduino/gopherduino/hardware/memory"
)

// Host implements the peripherals.Host interface. Memory is a real data space
// so reads and writes from the test are routed through the registered
// callbacks in the same way as reads and writes from the CPU.
type Host struct {
	*memory.Memory

	polls []func()

	// vectors raised since the last call to ClearRaised(), in order
	Raised []int

	// value returned by Cycles()
	Cycle uint64

	// pin changes reported through OutPin(), in order
	Changes []string
}

// NewHost is the preferred method of initialisation for the Host type.
func NewHost() *Host {
	return &Host{
		Memory: memory.NewMemory(),
	}
}

// RegisterPoll implements the peripherals.Host interface.
func (h *Host) RegisterPoll(f func()) {
	h.polls = append(h.polls, f)
}

// Raise implements the peripherals.Host interface.
func (h *Host) Raise(vector int) {
	h.Raised = append(h.Raised, vector)
}

// Cycles implements the peripherals.Host interface.
func (h *Host) Cycles() uint64 {
	return h.Cycle
}

// OutPin implements the peripherals.PinNotifier interface.
func (h *Host) OutPin(pin int, level bool) {
	h.Changes = append(h.Changes, fmt.Sprintf("%d=%v", pin, level))
}

// Poll calls every registered poll function as would happen at a poll
// boundary.
func (h *Host) Poll() {
	for _, f := range h.polls {
		f()
	}
}

// ClearRaised forgets the list of raised vectors and pin changes.
func (h *Host) ClearRaised() {
	h.Raised = h.Raised[:0]
	h.Changes = h.Changes[:0]
}
