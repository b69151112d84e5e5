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

package hardware

import (
	"context"

	"github.com/gopherduino/gopherduino/hardware/cpu"
)

// Run steps the board until the program halts, an error occurs or the
// context is cancelled. The continueCheck function is called after every step
// and can end the run by returning false or an error. A nil continueCheck
// means the run ends only when the program halts.
//
// Returns the state of the CPU at the end of the run.
func (b *Board) Run(ctx context.Context, continueCheck func() (bool, error)) (cpu.State, error) {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		state, err := b.Step()
		if err != nil {
			return state, err
		}
		if state == cpu.Halted {
			return state, nil
		}

		select {
		case <-ctx.Done():
			return state, nil
		default:
		}

		ok, err := continueCheck()
		if err != nil {
			return state, err
		}
		if !ok {
			return state, nil
		}
	}
}
