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

package instructions

import (
	"fmt"
	"slices"
	"sync"
)

// Table maps every instruction word to its definition. Entries are never nil.
type Table [0x10000]*Definition

// Lookup returns the definition for the instruction word.
func (tab *Table) Lookup(op Opcode) *Definition {
	return tab[op]
}

// IsDoubleWord returns true if the instruction word is the first word of a
// two word instruction. Used by the skip instructions to decide how far to
// skip.
func (tab *Table) IsDoubleWord(op Opcode) bool {
	return tab[op].DoubleWord
}

var table *Table
var tableOnce sync.Once

// GetTable returns the instruction table for the Definitions list. The table
// is built on first use and is shared.
func GetTable() *Table {
	tableOnce.Do(func() {
		var err error
		table, err = NewTable(Definitions)
		if err != nil {
			panic(err)
		}
	})
	return table
}

// NewTable builds a table from a list of definitions. An error is returned if
// two definitions with the same number of fixed bits match the same word.
func NewTable(defns []Definition) (*Table, error) {
	// definitions are compiled into a copy so that the list is not modified
	ordered := make([]*Definition, len(defns))
	for i := range defns {
		d := defns[i]
		if err := d.compile(); err != nil {
			return nil, err
		}
		ordered[i] = &d
	}

	// most specific definition first. the sort is stable so the order of
	// definitions with the same specificity is the order in the list, but
	// that order is never significant because those definitions may not
	// overlap
	slices.SortStableFunc(ordered, func(a, b *Definition) int {
		return b.Specificity() - a.Specificity()
	})

	for i, a := range ordered {
		for _, b := range ordered[i+1:] {
			if a.Specificity() != b.Specificity() {
				break // for loop
			}
			if overlaps(a, b) {
				return nil, fmt.Errorf("instructions: %s and %s patterns overlap (%s and %s)",
					a.Mnemonic, b.Mnemonic, a.Pattern, b.Pattern)
			}
		}
	}

	tab := &Table{}
	for w := range len(tab) {
		tab[w] = &undefined
		for _, d := range ordered {
			if d.Matches(Opcode(w)) {
				tab[w] = d
				break // for loop
			}
		}
	}

	return tab, nil
}

// overlaps returns true if there is a word that matches both definitions
func overlaps(a, b *Definition) bool {
	return (a.value^b.value)&(a.mask&b.mask) == 0
}
