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
	"math/bits"
)

// Operator identifies the operation performed by an instruction. The CPU
// dispatches on the Operator of the definition found for an instruction word.
type Operator int

// List of valid Operator values.
const (
	Undefined Operator = iota
	Halt

	ADC
	ADD
	ADIW
	AND
	ANDI
	ASR
	BCLR
	BLD
	BRBC
	BRBS
	BREAK
	BSET
	BST
	CALL
	CBI
	COM
	CP
	CPC
	CPI
	CPSE
	DEC
	DES
	EICALL
	EIJMP
	ELPM
	ELPMRd
	ELPMRdInc
	EOR
	FMUL
	FMULS
	FMULSU
	ICALL
	IJMP
	IN
	INC
	JMP
	LDX
	LDXInc
	LDXDec
	LDY
	LDYInc
	LDYDec
	LDDY
	LDZ
	LDZInc
	LDZDec
	LDDZ
	LDI
	LDS
	LPM
	LPMRd
	LPMRdInc
	LSR
	MOV
	MOVW
	MUL
	MULS
	MULSU
	NEG
	NOP
	OR
	ORI
	OUT
	POP
	PUSH
	RCALL
	RET
	RETI
	RJMP
	ROR
	SBC
	SBCI
	SBI
	SBIC
	SBIS
	SBIW
	SBRC
	SBRS
	SLEEP
	SPM
	SPMZInc
	STX
	STXInc
	STXDec
	STY
	STYInc
	STYDec
	STDY
	STZ
	STZInc
	STZDec
	STDZ
	STS
	SUB
	SUBI
	SWAP
	WDR

	numOperators
)

// Definition defines each instruction in the instruction set.
type Definition struct {
	Operator Operator
	Mnemonic string

	// bit pattern of the instruction word. see package documentation
	Pattern string

	// operand syntax used by the disassembler. tokens in braces are replaced
	// by the decoded operand. see the disassembly package for the list of
	// tokens
	Operands string

	// base number of cycles. branches and skips take additional cycles
	// depending on the outcome
	Cycles int

	// the instruction is followed by a second word
	DoubleWord bool

	// the instruction exists but is not emulated
	Unimplemented bool

	mask  uint16
	value uint16
}

func (defn Definition) String() string {
	if defn.Operands == "" {
		return defn.Mnemonic
	}
	return fmt.Sprintf("%s %s", defn.Mnemonic, defn.Operands)
}

// Matches returns true if the instruction word matches the bit pattern.
func (defn Definition) Matches(op Opcode) bool {
	return uint16(op)&defn.mask == defn.value
}

// Specificity is the number of fixed bits in the bit pattern.
func (defn Definition) Specificity() int {
	return bits.OnesCount16(defn.mask)
}

// Words returns the number of program words occupied by the instruction.
func (defn Definition) Words() int {
	if defn.DoubleWord {
		return 2
	}
	return 1
}

// compile the pattern into a mask and value
func (defn *Definition) compile() error {
	if len(defn.Pattern) != 16 {
		return fmt.Errorf("instructions: %s: pattern must be 16 characters", defn.Mnemonic)
	}
	defn.mask = 0
	defn.value = 0
	for i, c := range defn.Pattern {
		b := uint16(0x8000) >> i
		switch c {
		case '0':
			defn.mask |= b
		case '1':
			defn.mask |= b
			defn.value |= b
		}
	}
	return nil
}

// undefined is the definition for words that match no pattern
var undefined = Definition{
	Operator:      Undefined,
	Mnemonic:      "UNDEFINED",
	Cycles:        1,
	Unimplemented: true,
}

// Definitions lists every instruction in the instruction set.
var Definitions = []Definition{
	// the infinite self-branch (RJMP .-1) emitted at the end of a program
	{Operator: Halt, Mnemonic: "HALT", Pattern: "1100111111111111"},

	// arithmetic and logic
	{Operator: ADD, Mnemonic: "ADD", Pattern: "000011rdddddrrrr", Operands: "{d}, {r}", Cycles: 1},
	{Operator: ADC, Mnemonic: "ADC", Pattern: "000111rdddddrrrr", Operands: "{d}, {r}", Cycles: 1},
	{Operator: ADIW, Mnemonic: "ADIW", Pattern: "10010110KKddKKKK", Operands: "{w}, {K6}", Cycles: 2},
	{Operator: SUB, Mnemonic: "SUB", Pattern: "000110rdddddrrrr", Operands: "{d}, {r}", Cycles: 1},
	{Operator: SUBI, Mnemonic: "SUBI", Pattern: "0101KKKKddddKKKK", Operands: "{dh}, {K}", Cycles: 1},
	{Operator: SBC, Mnemonic: "SBC", Pattern: "000010rdddddrrrr", Operands: "{d}, {r}", Cycles: 1},
	{Operator: SBCI, Mnemonic: "SBCI", Pattern: "0100KKKKddddKKKK", Operands: "{dh}, {K}", Cycles: 1},
	{Operator: SBIW, Mnemonic: "SBIW", Pattern: "10010111KKddKKKK", Operands: "{w}, {K6}", Cycles: 2},
	{Operator: AND, Mnemonic: "AND", Pattern: "001000rdddddrrrr", Operands: "{d}, {r}", Cycles: 1},
	{Operator: ANDI, Mnemonic: "ANDI", Pattern: "0111KKKKddddKKKK", Operands: "{dh}, {K}", Cycles: 1},
	{Operator: OR, Mnemonic: "OR", Pattern: "001010rdddddrrrr", Operands: "{d}, {r}", Cycles: 1},
	{Operator: ORI, Mnemonic: "ORI", Pattern: "0110KKKKddddKKKK", Operands: "{dh}, {K}", Cycles: 1},
	{Operator: EOR, Mnemonic: "EOR", Pattern: "001001rdddddrrrr", Operands: "{d}, {r}", Cycles: 1},
	{Operator: COM, Mnemonic: "COM", Pattern: "1001010ddddd0000", Operands: "{d}", Cycles: 1},
	{Operator: NEG, Mnemonic: "NEG", Pattern: "1001010ddddd0001", Operands: "{d}", Cycles: 1},
	{Operator: INC, Mnemonic: "INC", Pattern: "1001010ddddd0011", Operands: "{d}", Cycles: 1},
	{Operator: DEC, Mnemonic: "DEC", Pattern: "1001010ddddd1010", Operands: "{d}", Cycles: 1},
	{Operator: MUL, Mnemonic: "MUL", Pattern: "100111rdddddrrrr", Operands: "{d}, {r}", Cycles: 2},
	{Operator: MULS, Mnemonic: "MULS", Pattern: "00000010ddddrrrr", Operands: "{dh}, {rh}", Cycles: 2},
	{Operator: MULSU, Mnemonic: "MULSU", Pattern: "000000110ddd0rrr", Operands: "{dm}, {rm}", Cycles: 2},
	{Operator: FMUL, Mnemonic: "FMUL", Pattern: "000000110ddd1rrr", Operands: "{dm}, {rm}", Cycles: 2, Unimplemented: true},
	{Operator: FMULS, Mnemonic: "FMULS", Pattern: "000000111ddd0rrr", Operands: "{dm}, {rm}", Cycles: 2, Unimplemented: true},
	{Operator: FMULSU, Mnemonic: "FMULSU", Pattern: "000000111ddd1rrr", Operands: "{dm}, {rm}", Cycles: 2, Unimplemented: true},
	{Operator: DES, Mnemonic: "DES", Pattern: "10010100KKKK1011", Operands: "{K4}", Cycles: 1, Unimplemented: true},

	// compare
	{Operator: CP, Mnemonic: "CP", Pattern: "000101rdddddrrrr", Operands: "{d}, {r}", Cycles: 1},
	{Operator: CPC, Mnemonic: "CPC", Pattern: "000001rdddddrrrr", Operands: "{d}, {r}", Cycles: 1},
	{Operator: CPI, Mnemonic: "CPI", Pattern: "0011KKKKddddKKKK", Operands: "{dh}, {K}", Cycles: 1},

	// flow
	{Operator: RJMP, Mnemonic: "RJMP", Pattern: "1100kkkkkkkkkkkk", Operands: "{k12}", Cycles: 2},
	{Operator: IJMP, Mnemonic: "IJMP", Pattern: "1001010000001001", Cycles: 2},
	{Operator: EIJMP, Mnemonic: "EIJMP", Pattern: "1001010000011001", Cycles: 2, Unimplemented: true},
	{Operator: JMP, Mnemonic: "JMP", Pattern: "1001010kkkkk110k", Operands: "{k22}", Cycles: 3, DoubleWord: true},
	{Operator: RCALL, Mnemonic: "RCALL", Pattern: "1101kkkkkkkkkkkk", Operands: "{k12}", Cycles: 3},
	{Operator: ICALL, Mnemonic: "ICALL", Pattern: "1001010100001001", Cycles: 3},
	{Operator: EICALL, Mnemonic: "EICALL", Pattern: "1001010100011001", Cycles: 4, Unimplemented: true},
	{Operator: CALL, Mnemonic: "CALL", Pattern: "1001010kkkkk111k", Operands: "{k22}", Cycles: 4, DoubleWord: true},
	{Operator: RET, Mnemonic: "RET", Pattern: "1001010100001000", Cycles: 4},
	{Operator: RETI, Mnemonic: "RETI", Pattern: "1001010100011000", Cycles: 4},
	{Operator: CPSE, Mnemonic: "CPSE", Pattern: "000100rdddddrrrr", Operands: "{d}, {r}", Cycles: 1},
	{Operator: SBRC, Mnemonic: "SBRC", Pattern: "1111110ddddd0bbb", Operands: "{d}, {b}", Cycles: 1},
	{Operator: SBRS, Mnemonic: "SBRS", Pattern: "1111111ddddd0bbb", Operands: "{d}, {b}", Cycles: 1},
	{Operator: SBIC, Mnemonic: "SBIC", Pattern: "10011001AAAAAbbb", Operands: "{a}, {b}", Cycles: 1},
	{Operator: SBIS, Mnemonic: "SBIS", Pattern: "10011011AAAAAbbb", Operands: "{a}, {b}", Cycles: 1},
	{Operator: BRBS, Mnemonic: "BRBS", Pattern: "111100kkkkkkksss", Operands: "{b}, {k7}", Cycles: 1},
	{Operator: BRBC, Mnemonic: "BRBC", Pattern: "111101kkkkkkksss", Operands: "{b}, {k7}", Cycles: 1},

	// bits
	{Operator: SBI, Mnemonic: "SBI", Pattern: "10011010AAAAAbbb", Operands: "{a}, {b}", Cycles: 2},
	{Operator: CBI, Mnemonic: "CBI", Pattern: "10011000AAAAAbbb", Operands: "{a}, {b}", Cycles: 2},
	{Operator: LSR, Mnemonic: "LSR", Pattern: "1001010ddddd0110", Operands: "{d}", Cycles: 1},
	{Operator: ROR, Mnemonic: "ROR", Pattern: "1001010ddddd0111", Operands: "{d}", Cycles: 1},
	{Operator: ASR, Mnemonic: "ASR", Pattern: "1001010ddddd0101", Operands: "{d}", Cycles: 1},
	{Operator: SWAP, Mnemonic: "SWAP", Pattern: "1001010ddddd0010", Operands: "{d}", Cycles: 1},
	{Operator: BSET, Mnemonic: "BSET", Pattern: "100101000sss1000", Operands: "{s}", Cycles: 1},
	{Operator: BCLR, Mnemonic: "BCLR", Pattern: "100101001sss1000", Operands: "{s}", Cycles: 1},
	{Operator: BST, Mnemonic: "BST", Pattern: "1111101ddddd0bbb", Operands: "{d}, {b}", Cycles: 1},
	{Operator: BLD, Mnemonic: "BLD", Pattern: "1111100ddddd0bbb", Operands: "{d}, {b}", Cycles: 1},

	// data transfer
	{Operator: MOV, Mnemonic: "MOV", Pattern: "001011rdddddrrrr", Operands: "{d}, {r}", Cycles: 1},
	{Operator: MOVW, Mnemonic: "MOVW", Pattern: "00000001ddddrrrr", Operands: "{D}, {R}", Cycles: 1},
	{Operator: LDI, Mnemonic: "LDI", Pattern: "1110KKKKddddKKKK", Operands: "{dh}, {K}", Cycles: 1},
	{Operator: LDX, Mnemonic: "LD", Pattern: "1001000ddddd1100", Operands: "{d}, X", Cycles: 2},
	{Operator: LDXInc, Mnemonic: "LD", Pattern: "1001000ddddd1101", Operands: "{d}, X+", Cycles: 2},
	{Operator: LDXDec, Mnemonic: "LD", Pattern: "1001000ddddd1110", Operands: "{d}, -X", Cycles: 2},
	{Operator: LDY, Mnemonic: "LD", Pattern: "1000000ddddd1000", Operands: "{d}, Y", Cycles: 2},
	{Operator: LDYInc, Mnemonic: "LD", Pattern: "1001000ddddd1001", Operands: "{d}, Y+", Cycles: 2},
	{Operator: LDYDec, Mnemonic: "LD", Pattern: "1001000ddddd1010", Operands: "{d}, -Y", Cycles: 2},
	{Operator: LDDY, Mnemonic: "LDD", Pattern: "10q0qq0ddddd1qqq", Operands: "{d}, Y+{q}", Cycles: 2},
	{Operator: LDZ, Mnemonic: "LD", Pattern: "1000000ddddd0000", Operands: "{d}, Z", Cycles: 2},
	{Operator: LDZInc, Mnemonic: "LD", Pattern: "1001000ddddd0001", Operands: "{d}, Z+", Cycles: 2},
	{Operator: LDZDec, Mnemonic: "LD", Pattern: "1001000ddddd0010", Operands: "{d}, -Z", Cycles: 2},
	{Operator: LDDZ, Mnemonic: "LDD", Pattern: "10q0qq0ddddd0qqq", Operands: "{d}, Z+{q}", Cycles: 2},
	{Operator: LDS, Mnemonic: "LDS", Pattern: "1001000ddddd0000", Operands: "{d}, {k16}", Cycles: 2, DoubleWord: true},
	{Operator: STX, Mnemonic: "ST", Pattern: "1001001ddddd1100", Operands: "X, {d}", Cycles: 2},
	{Operator: STXInc, Mnemonic: "ST", Pattern: "1001001ddddd1101", Operands: "X+, {d}", Cycles: 2},
	{Operator: STXDec, Mnemonic: "ST", Pattern: "1001001ddddd1110", Operands: "-X, {d}", Cycles: 2},
	{Operator: STY, Mnemonic: "ST", Pattern: "1000001ddddd1000", Operands: "Y, {d}", Cycles: 2},
	{Operator: STYInc, Mnemonic: "ST", Pattern: "1001001ddddd1001", Operands: "Y+, {d}", Cycles: 2},
	{Operator: STYDec, Mnemonic: "ST", Pattern: "1001001ddddd1010", Operands: "-Y, {d}", Cycles: 2},
	{Operator: STDY, Mnemonic: "STD", Pattern: "10q0qq1ddddd1qqq", Operands: "Y+{q}, {d}", Cycles: 2},
	{Operator: STZ, Mnemonic: "ST", Pattern: "1000001ddddd0000", Operands: "Z, {d}", Cycles: 2},
	{Operator: STZInc, Mnemonic: "ST", Pattern: "1001001ddddd0001", Operands: "Z+, {d}", Cycles: 2},
	{Operator: STZDec, Mnemonic: "ST", Pattern: "1001001ddddd0010", Operands: "-Z, {d}", Cycles: 2},
	{Operator: STDZ, Mnemonic: "STD", Pattern: "10q0qq1ddddd0qqq", Operands: "Z+{q}, {d}", Cycles: 2},
	{Operator: STS, Mnemonic: "STS", Pattern: "1001001ddddd0000", Operands: "{k16}, {d}", Cycles: 2, DoubleWord: true},
	{Operator: LPM, Mnemonic: "LPM", Pattern: "1001010111001000", Cycles: 3},
	{Operator: LPMRd, Mnemonic: "LPM", Pattern: "1001000ddddd0100", Operands: "{d}, Z", Cycles: 3},
	{Operator: LPMRdInc, Mnemonic: "LPM", Pattern: "1001000ddddd0101", Operands: "{d}, Z+", Cycles: 3},
	{Operator: ELPM, Mnemonic: "ELPM", Pattern: "1001010111011000", Cycles: 3},
	{Operator: ELPMRd, Mnemonic: "ELPM", Pattern: "1001000ddddd0110", Operands: "{d}, Z", Cycles: 3, Unimplemented: true},
	{Operator: ELPMRdInc, Mnemonic: "ELPM", Pattern: "1001000ddddd0111", Operands: "{d}, Z+", Cycles: 3, Unimplemented: true},
	{Operator: SPM, Mnemonic: "SPM", Pattern: "1001010111101000", Cycles: 1, Unimplemented: true},
	{Operator: SPMZInc, Mnemonic: "SPM", Pattern: "1001010111111000", Operands: "Z+", Cycles: 1, Unimplemented: true},
	{Operator: IN, Mnemonic: "IN", Pattern: "10110AAdddddAAAA", Operands: "{d}, {A}", Cycles: 1},
	{Operator: OUT, Mnemonic: "OUT", Pattern: "10111AAdddddAAAA", Operands: "{A}, {d}", Cycles: 1},
	{Operator: PUSH, Mnemonic: "PUSH", Pattern: "1001001ddddd1111", Operands: "{d}", Cycles: 2},
	{Operator: POP, Mnemonic: "POP", Pattern: "1001000ddddd1111", Operands: "{d}", Cycles: 2},

	// mcu control
	{Operator: NOP, Mnemonic: "NOP", Pattern: "0000000000000000", Cycles: 1},
	{Operator: SLEEP, Mnemonic: "SLEEP", Pattern: "1001010110001000", Cycles: 1, Unimplemented: true},
	{Operator: WDR, Mnemonic: "WDR", Pattern: "1001010110101000", Cycles: 1, Unimplemented: true},
	{Operator: BREAK, Mnemonic: "BREAK", Pattern: "1001010110011000", Cycles: 1, Unimplemented: true},
}
