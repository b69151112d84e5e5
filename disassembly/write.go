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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
}

// the width of the bytecode column. two words and a space
const bytecodeWidth = 9

// the width of the mnemonic column
const mnemonicWidth = 6

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single Entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("%04x:", e.Address))
	if attr.ByteCode {
		s.WriteString(fmt.Sprintf(" %-*s", bytecodeWidth, e.Bytecode))
	}
	s.WriteString(fmt.Sprintf(" %-*s", mnemonicWidth, e.Mnemonic))
	if e.Operands != "" {
		s.WriteString(" ")
		s.WriteString(e.Operands)
	}

	_, err := fmt.Fprintln(output, strings.TrimRight(s.String(), " "))
	if err != nil {
		return fmt.Errorf("disassembly: %w", err)
	}
	return nil
}
