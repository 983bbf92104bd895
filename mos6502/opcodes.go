// Package mos6502 implements the MOS Technologies 6502 processor used by
// the NES, including the documented undocumented opcode set.
// https://en.wikipedia.org/wiki/MOS_Technology_6502
package mos6502

import "fmt"

// AddrMode identifies how an instruction's operand address is resolved.
type AddrMode uint8

const (
	Implied AddrMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
)

var modeNames = map[AddrMode]string{
	Implied: "IMPLIED", Accumulator: "ACCUMULATOR", Immediate: "IMMEDIATE",
	ZeroPage: "ZERO_PAGE", ZeroPageX: "ZERO_PAGE_X", ZeroPageY: "ZERO_PAGE_Y",
	Relative: "RELATIVE", Absolute: "ABSOLUTE", AbsoluteX: "ABSOLUTE_X",
	AbsoluteY: "ABSOLUTE_Y", Indirect: "INDIRECT", IndirectX: "INDIRECT_X",
	IndirectY: "INDIRECT_Y",
}

func (m AddrMode) String() string {
	return modeNames[m]
}

// opcode is an immutable description of a single byte-code entry: its
// mnemonic, instruction length (including the opcode byte itself), base
// cycle count, and addressing mode. pagePenalty marks the read-only
// instructions that take +1 cycle when AbsoluteX/AbsoluteY/IndirectY
// addressing crosses a page boundary; stores and RMW instructions never
// carry the penalty.
type opcode struct {
	name        string
	mode        AddrMode
	len         uint8
	cycles      uint8
	pagePenalty bool
	exec        func(c *CPU, mode AddrMode, addr uint16, pageCrossed bool)
}

func (o opcode) String() string {
	return fmt.Sprintf("{%s, %s}", o.name, o.mode)
}

// opcodes is the 256-entry table, populated once by init(). Slots left at
// the zero value (name == "") are unknown opcodes; Step() faults on them.
var opcodes [256]opcode

// entry registers an opcode table row. Duplicate registration for a byte
// that's already defined is a programming error and panics at init time.
func entry(b uint8, name string, mode AddrMode, length, cycles uint8, pagePenalty bool, fn func(c *CPU, mode AddrMode, addr uint16, pageCrossed bool)) {
	if opcodes[b].name != "" {
		panic(fmt.Sprintf("opcode 0x%02X already registered as %s", b, opcodes[b].name))
	}
	opcodes[b] = opcode{name: name, mode: mode, len: length, cycles: cycles, pagePenalty: pagePenalty, exec: fn}
}

func init() {
	registerOfficial()
	registerUndocumented()
}

// registerOfficial installs the 151 official 6502 opcodes.
func registerOfficial() {
	entry(0x69, "ADC", Immediate, 2, 2, false, (*CPU).opADC)
	entry(0x65, "ADC", ZeroPage, 2, 3, false, (*CPU).opADC)
	entry(0x75, "ADC", ZeroPageX, 2, 4, false, (*CPU).opADC)
	entry(0x6D, "ADC", Absolute, 3, 4, false, (*CPU).opADC)
	entry(0x7D, "ADC", AbsoluteX, 3, 4, true, (*CPU).opADC)
	entry(0x79, "ADC", AbsoluteY, 3, 4, true, (*CPU).opADC)
	entry(0x61, "ADC", IndirectX, 2, 6, false, (*CPU).opADC)
	entry(0x71, "ADC", IndirectY, 2, 5, true, (*CPU).opADC)

	entry(0x29, "AND", Immediate, 2, 2, false, (*CPU).opAND)
	entry(0x25, "AND", ZeroPage, 2, 3, false, (*CPU).opAND)
	entry(0x35, "AND", ZeroPageX, 2, 4, false, (*CPU).opAND)
	entry(0x2D, "AND", Absolute, 3, 4, false, (*CPU).opAND)
	entry(0x3D, "AND", AbsoluteX, 3, 4, true, (*CPU).opAND)
	entry(0x39, "AND", AbsoluteY, 3, 4, true, (*CPU).opAND)
	entry(0x21, "AND", IndirectX, 2, 6, false, (*CPU).opAND)
	entry(0x31, "AND", IndirectY, 2, 5, true, (*CPU).opAND)

	entry(0x0A, "ASL", Accumulator, 1, 2, false, (*CPU).opASL)
	entry(0x06, "ASL", ZeroPage, 2, 5, false, (*CPU).opASL)
	entry(0x16, "ASL", ZeroPageX, 2, 6, false, (*CPU).opASL)
	entry(0x0E, "ASL", Absolute, 3, 6, false, (*CPU).opASL)
	entry(0x1E, "ASL", AbsoluteX, 3, 7, false, (*CPU).opASL)

	entry(0x90, "BCC", Relative, 2, 2, false, (*CPU).opBCC)
	entry(0xB0, "BCS", Relative, 2, 2, false, (*CPU).opBCS)
	entry(0xF0, "BEQ", Relative, 2, 2, false, (*CPU).opBEQ)
	entry(0x30, "BMI", Relative, 2, 2, false, (*CPU).opBMI)
	entry(0xD0, "BNE", Relative, 2, 2, false, (*CPU).opBNE)
	entry(0x10, "BPL", Relative, 2, 2, false, (*CPU).opBPL)
	entry(0x50, "BVC", Relative, 2, 2, false, (*CPU).opBVC)
	entry(0x70, "BVS", Relative, 2, 2, false, (*CPU).opBVS)

	entry(0x24, "BIT", ZeroPage, 2, 3, false, (*CPU).opBIT)
	entry(0x2C, "BIT", Absolute, 3, 4, false, (*CPU).opBIT)

	entry(0x00, "BRK", Implied, 1, 7, false, (*CPU).opBRK)

	entry(0x18, "CLC", Implied, 1, 2, false, (*CPU).opCLC)
	entry(0xD8, "CLD", Implied, 1, 2, false, (*CPU).opCLD)
	entry(0x58, "CLI", Implied, 1, 2, false, (*CPU).opCLI)
	entry(0xB8, "CLV", Implied, 1, 2, false, (*CPU).opCLV)

	entry(0xC9, "CMP", Immediate, 2, 2, false, (*CPU).opCMP)
	entry(0xC5, "CMP", ZeroPage, 2, 3, false, (*CPU).opCMP)
	entry(0xD5, "CMP", ZeroPageX, 2, 4, false, (*CPU).opCMP)
	entry(0xCD, "CMP", Absolute, 3, 4, false, (*CPU).opCMP)
	entry(0xDD, "CMP", AbsoluteX, 3, 4, true, (*CPU).opCMP)
	entry(0xD9, "CMP", AbsoluteY, 3, 4, true, (*CPU).opCMP)
	entry(0xC1, "CMP", IndirectX, 2, 6, false, (*CPU).opCMP)
	entry(0xD1, "CMP", IndirectY, 2, 5, true, (*CPU).opCMP)

	entry(0xE0, "CPX", Immediate, 2, 2, false, (*CPU).opCPX)
	entry(0xE4, "CPX", ZeroPage, 2, 3, false, (*CPU).opCPX)
	entry(0xEC, "CPX", Absolute, 3, 4, false, (*CPU).opCPX)

	entry(0xC0, "CPY", Immediate, 2, 2, false, (*CPU).opCPY)
	entry(0xC4, "CPY", ZeroPage, 2, 3, false, (*CPU).opCPY)
	entry(0xCC, "CPY", Absolute, 3, 4, false, (*CPU).opCPY)

	entry(0xC6, "DEC", ZeroPage, 2, 5, false, (*CPU).opDEC)
	entry(0xD6, "DEC", ZeroPageX, 2, 6, false, (*CPU).opDEC)
	entry(0xCE, "DEC", Absolute, 3, 6, false, (*CPU).opDEC)
	entry(0xDE, "DEC", AbsoluteX, 3, 7, false, (*CPU).opDEC)

	entry(0xCA, "DEX", Implied, 1, 2, false, (*CPU).opDEX)
	entry(0x88, "DEY", Implied, 1, 2, false, (*CPU).opDEY)

	entry(0x49, "EOR", Immediate, 2, 2, false, (*CPU).opEOR)
	entry(0x45, "EOR", ZeroPage, 2, 3, false, (*CPU).opEOR)
	entry(0x55, "EOR", ZeroPageX, 2, 4, false, (*CPU).opEOR)
	entry(0x4D, "EOR", Absolute, 3, 4, false, (*CPU).opEOR)
	entry(0x5D, "EOR", AbsoluteX, 3, 4, true, (*CPU).opEOR)
	entry(0x59, "EOR", AbsoluteY, 3, 4, true, (*CPU).opEOR)
	entry(0x41, "EOR", IndirectX, 2, 6, false, (*CPU).opEOR)
	entry(0x51, "EOR", IndirectY, 2, 5, true, (*CPU).opEOR)

	entry(0xE6, "INC", ZeroPage, 2, 5, false, (*CPU).opINC)
	entry(0xF6, "INC", ZeroPageX, 2, 6, false, (*CPU).opINC)
	entry(0xEE, "INC", Absolute, 3, 6, false, (*CPU).opINC)
	entry(0xFE, "INC", AbsoluteX, 3, 7, false, (*CPU).opINC)

	entry(0xE8, "INX", Implied, 1, 2, false, (*CPU).opINX)
	entry(0xC8, "INY", Implied, 1, 2, false, (*CPU).opINY)

	entry(0x4C, "JMP", Absolute, 3, 3, false, (*CPU).opJMP)
	entry(0x6C, "JMP", Indirect, 3, 5, false, (*CPU).opJMP)
	entry(0x20, "JSR", Absolute, 3, 6, false, (*CPU).opJSR)

	entry(0xA9, "LDA", Immediate, 2, 2, false, (*CPU).opLDA)
	entry(0xA5, "LDA", ZeroPage, 2, 3, false, (*CPU).opLDA)
	entry(0xB5, "LDA", ZeroPageX, 2, 4, false, (*CPU).opLDA)
	entry(0xAD, "LDA", Absolute, 3, 4, false, (*CPU).opLDA)
	entry(0xBD, "LDA", AbsoluteX, 3, 4, true, (*CPU).opLDA)
	entry(0xB9, "LDA", AbsoluteY, 3, 4, true, (*CPU).opLDA)
	entry(0xA1, "LDA", IndirectX, 2, 6, false, (*CPU).opLDA)
	entry(0xB1, "LDA", IndirectY, 2, 5, true, (*CPU).opLDA)

	entry(0xA2, "LDX", Immediate, 2, 2, false, (*CPU).opLDX)
	entry(0xA6, "LDX", ZeroPage, 2, 3, false, (*CPU).opLDX)
	entry(0xB6, "LDX", ZeroPageY, 2, 4, false, (*CPU).opLDX)
	entry(0xAE, "LDX", Absolute, 3, 4, false, (*CPU).opLDX)
	entry(0xBE, "LDX", AbsoluteY, 3, 4, true, (*CPU).opLDX)

	entry(0xA0, "LDY", Immediate, 2, 2, false, (*CPU).opLDY)
	entry(0xA4, "LDY", ZeroPage, 2, 3, false, (*CPU).opLDY)
	entry(0xB4, "LDY", ZeroPageX, 2, 4, false, (*CPU).opLDY)
	entry(0xAC, "LDY", Absolute, 3, 4, false, (*CPU).opLDY)
	entry(0xBC, "LDY", AbsoluteX, 3, 4, true, (*CPU).opLDY)

	entry(0x4A, "LSR", Accumulator, 1, 2, false, (*CPU).opLSR)
	entry(0x46, "LSR", ZeroPage, 2, 5, false, (*CPU).opLSR)
	entry(0x56, "LSR", ZeroPageX, 2, 6, false, (*CPU).opLSR)
	entry(0x4E, "LSR", Absolute, 3, 6, false, (*CPU).opLSR)
	entry(0x5E, "LSR", AbsoluteX, 3, 7, false, (*CPU).opLSR)

	entry(0xEA, "NOP", Implied, 1, 2, false, (*CPU).opNOP)

	entry(0x09, "ORA", Immediate, 2, 2, false, (*CPU).opORA)
	entry(0x05, "ORA", ZeroPage, 2, 3, false, (*CPU).opORA)
	entry(0x15, "ORA", ZeroPageX, 2, 4, false, (*CPU).opORA)
	entry(0x0D, "ORA", Absolute, 3, 4, false, (*CPU).opORA)
	entry(0x1D, "ORA", AbsoluteX, 3, 4, true, (*CPU).opORA)
	entry(0x19, "ORA", AbsoluteY, 3, 4, true, (*CPU).opORA)
	entry(0x01, "ORA", IndirectX, 2, 6, false, (*CPU).opORA)
	entry(0x11, "ORA", IndirectY, 2, 5, true, (*CPU).opORA)

	entry(0x48, "PHA", Implied, 1, 3, false, (*CPU).opPHA)
	entry(0x08, "PHP", Implied, 1, 3, false, (*CPU).opPHP)
	entry(0x68, "PLA", Implied, 1, 4, false, (*CPU).opPLA)
	entry(0x28, "PLP", Implied, 1, 4, false, (*CPU).opPLP)

	entry(0x2A, "ROL", Accumulator, 1, 2, false, (*CPU).opROL)
	entry(0x26, "ROL", ZeroPage, 2, 5, false, (*CPU).opROL)
	entry(0x36, "ROL", ZeroPageX, 2, 6, false, (*CPU).opROL)
	entry(0x2E, "ROL", Absolute, 3, 6, false, (*CPU).opROL)
	entry(0x3E, "ROL", AbsoluteX, 3, 7, false, (*CPU).opROL)

	entry(0x6A, "ROR", Accumulator, 1, 2, false, (*CPU).opROR)
	entry(0x66, "ROR", ZeroPage, 2, 5, false, (*CPU).opROR)
	entry(0x76, "ROR", ZeroPageX, 2, 6, false, (*CPU).opROR)
	entry(0x6E, "ROR", Absolute, 3, 6, false, (*CPU).opROR)
	entry(0x7E, "ROR", AbsoluteX, 3, 7, false, (*CPU).opROR)

	entry(0x40, "RTI", Implied, 1, 6, false, (*CPU).opRTI)
	entry(0x60, "RTS", Implied, 1, 6, false, (*CPU).opRTS)

	entry(0xE9, "SBC", Immediate, 2, 2, false, (*CPU).opSBC)
	entry(0xE5, "SBC", ZeroPage, 2, 3, false, (*CPU).opSBC)
	entry(0xF5, "SBC", ZeroPageX, 2, 4, false, (*CPU).opSBC)
	entry(0xED, "SBC", Absolute, 3, 4, false, (*CPU).opSBC)
	entry(0xFD, "SBC", AbsoluteX, 3, 4, true, (*CPU).opSBC)
	entry(0xF9, "SBC", AbsoluteY, 3, 4, true, (*CPU).opSBC)
	entry(0xE1, "SBC", IndirectX, 2, 6, false, (*CPU).opSBC)
	entry(0xF1, "SBC", IndirectY, 2, 5, true, (*CPU).opSBC)

	entry(0x38, "SEC", Implied, 1, 2, false, (*CPU).opSEC)
	entry(0xF8, "SED", Implied, 1, 2, false, (*CPU).opSED)
	entry(0x78, "SEI", Implied, 1, 2, false, (*CPU).opSEI)

	entry(0x85, "STA", ZeroPage, 2, 3, false, (*CPU).opSTA)
	entry(0x95, "STA", ZeroPageX, 2, 4, false, (*CPU).opSTA)
	entry(0x8D, "STA", Absolute, 3, 4, false, (*CPU).opSTA)
	entry(0x9D, "STA", AbsoluteX, 3, 5, false, (*CPU).opSTA)
	entry(0x99, "STA", AbsoluteY, 3, 5, false, (*CPU).opSTA)
	entry(0x81, "STA", IndirectX, 2, 6, false, (*CPU).opSTA)
	entry(0x91, "STA", IndirectY, 2, 6, false, (*CPU).opSTA)

	entry(0x86, "STX", ZeroPage, 2, 3, false, (*CPU).opSTX)
	entry(0x96, "STX", ZeroPageY, 2, 4, false, (*CPU).opSTX)
	entry(0x8E, "STX", Absolute, 3, 4, false, (*CPU).opSTX)

	entry(0x84, "STY", ZeroPage, 2, 3, false, (*CPU).opSTY)
	entry(0x94, "STY", ZeroPageX, 2, 4, false, (*CPU).opSTY)
	entry(0x8C, "STY", Absolute, 3, 4, false, (*CPU).opSTY)

	entry(0xAA, "TAX", Implied, 1, 2, false, (*CPU).opTAX)
	entry(0xA8, "TAY", Implied, 1, 2, false, (*CPU).opTAY)
	entry(0xBA, "TSX", Implied, 1, 2, false, (*CPU).opTSX)
	entry(0x8A, "TXA", Implied, 1, 2, false, (*CPU).opTXA)
	entry(0x9A, "TXS", Implied, 1, 2, false, (*CPU).opTXS)
	entry(0x98, "TYA", Implied, 1, 2, false, (*CPU).opTYA)
}

// registerUndocumented installs the documented undocumented opcodes: the
// combination instructions (LAX, SAX, DCP, ISC, SLO, RLA, SRE, RRA), the
// unstable immediate-mode combos (ANC, ALR, ARR, AXS, LXA, XAA, LAS, TAS,
// AHX, SHX, SHY), the extra NOP encodings, the SBC alias at 0xEB, and the
// KIL/JAM opcodes that halt the CPU.
func registerUndocumented() {
	// SLO: ASL then ORA
	entry(0x07, "SLO", ZeroPage, 2, 5, false, (*CPU).opSLO)
	entry(0x17, "SLO", ZeroPageX, 2, 6, false, (*CPU).opSLO)
	entry(0x0F, "SLO", Absolute, 3, 6, false, (*CPU).opSLO)
	entry(0x1F, "SLO", AbsoluteX, 3, 7, false, (*CPU).opSLO)
	entry(0x1B, "SLO", AbsoluteY, 3, 7, false, (*CPU).opSLO)
	entry(0x03, "SLO", IndirectX, 2, 8, false, (*CPU).opSLO)
	entry(0x13, "SLO", IndirectY, 2, 8, false, (*CPU).opSLO)

	// RLA: ROL then AND
	entry(0x27, "RLA", ZeroPage, 2, 5, false, (*CPU).opRLA)
	entry(0x37, "RLA", ZeroPageX, 2, 6, false, (*CPU).opRLA)
	entry(0x2F, "RLA", Absolute, 3, 6, false, (*CPU).opRLA)
	entry(0x3F, "RLA", AbsoluteX, 3, 7, false, (*CPU).opRLA)
	entry(0x3B, "RLA", AbsoluteY, 3, 7, false, (*CPU).opRLA)
	entry(0x23, "RLA", IndirectX, 2, 8, false, (*CPU).opRLA)
	entry(0x33, "RLA", IndirectY, 2, 8, false, (*CPU).opRLA)

	// SRE: LSR then EOR
	entry(0x47, "SRE", ZeroPage, 2, 5, false, (*CPU).opSRE)
	entry(0x57, "SRE", ZeroPageX, 2, 6, false, (*CPU).opSRE)
	entry(0x4F, "SRE", Absolute, 3, 6, false, (*CPU).opSRE)
	entry(0x5F, "SRE", AbsoluteX, 3, 7, false, (*CPU).opSRE)
	entry(0x5B, "SRE", AbsoluteY, 3, 7, false, (*CPU).opSRE)
	entry(0x43, "SRE", IndirectX, 2, 8, false, (*CPU).opSRE)
	entry(0x53, "SRE", IndirectY, 2, 8, false, (*CPU).opSRE)

	// RRA: ROR then ADC
	entry(0x67, "RRA", ZeroPage, 2, 5, false, (*CPU).opRRA)
	entry(0x77, "RRA", ZeroPageX, 2, 6, false, (*CPU).opRRA)
	entry(0x6F, "RRA", Absolute, 3, 6, false, (*CPU).opRRA)
	entry(0x7F, "RRA", AbsoluteX, 3, 7, false, (*CPU).opRRA)
	entry(0x7B, "RRA", AbsoluteY, 3, 7, false, (*CPU).opRRA)
	entry(0x63, "RRA", IndirectX, 2, 8, false, (*CPU).opRRA)
	entry(0x73, "RRA", IndirectY, 2, 8, false, (*CPU).opRRA)

	// SAX: store A&X
	entry(0x87, "SAX", ZeroPage, 2, 3, false, (*CPU).opSAX)
	entry(0x97, "SAX", ZeroPageY, 2, 4, false, (*CPU).opSAX)
	entry(0x8F, "SAX", Absolute, 3, 4, false, (*CPU).opSAX)
	entry(0x83, "SAX", IndirectX, 2, 6, false, (*CPU).opSAX)

	// LAX: load A and X together
	entry(0xA7, "LAX", ZeroPage, 2, 3, false, (*CPU).opLAX)
	entry(0xB7, "LAX", ZeroPageY, 2, 4, false, (*CPU).opLAX)
	entry(0xAF, "LAX", Absolute, 3, 4, false, (*CPU).opLAX)
	entry(0xBF, "LAX", AbsoluteY, 3, 4, true, (*CPU).opLAX)
	entry(0xA3, "LAX", IndirectX, 2, 6, false, (*CPU).opLAX)
	entry(0xB3, "LAX", IndirectY, 2, 5, true, (*CPU).opLAX)

	// DCP: DEC then CMP
	entry(0xC7, "DCP", ZeroPage, 2, 5, false, (*CPU).opDCP)
	entry(0xD7, "DCP", ZeroPageX, 2, 6, false, (*CPU).opDCP)
	entry(0xCF, "DCP", Absolute, 3, 6, false, (*CPU).opDCP)
	entry(0xDF, "DCP", AbsoluteX, 3, 7, false, (*CPU).opDCP)
	entry(0xDB, "DCP", AbsoluteY, 3, 7, false, (*CPU).opDCP)
	entry(0xC3, "DCP", IndirectX, 2, 8, false, (*CPU).opDCP)
	entry(0xD3, "DCP", IndirectY, 2, 8, false, (*CPU).opDCP)

	// ISC: INC then SBC
	entry(0xE7, "ISC", ZeroPage, 2, 5, false, (*CPU).opISC)
	entry(0xF7, "ISC", ZeroPageX, 2, 6, false, (*CPU).opISC)
	entry(0xEF, "ISC", Absolute, 3, 6, false, (*CPU).opISC)
	entry(0xFF, "ISC", AbsoluteX, 3, 7, false, (*CPU).opISC)
	entry(0xFB, "ISC", AbsoluteY, 3, 7, false, (*CPU).opISC)
	entry(0xE3, "ISC", IndirectX, 2, 8, false, (*CPU).opISC)
	entry(0xF3, "ISC", IndirectY, 2, 8, false, (*CPU).opISC)

	// Unstable/rare immediate-mode combination opcodes
	entry(0x0B, "ANC", Immediate, 2, 2, false, (*CPU).opANC)
	entry(0x2B, "ANC", Immediate, 2, 2, false, (*CPU).opANC)
	entry(0x4B, "ALR", Immediate, 2, 2, false, (*CPU).opALR)
	entry(0x6B, "ARR", Immediate, 2, 2, false, (*CPU).opARR)
	entry(0xCB, "AXS", Immediate, 2, 2, false, (*CPU).opAXS)
	entry(0xEB, "SBC", Immediate, 2, 2, false, (*CPU).opSBC) // documented alias
	entry(0xAB, "LXA", Immediate, 2, 2, false, (*CPU).opLXA)
	entry(0x8B, "XAA", Immediate, 2, 2, false, (*CPU).opXAA)
	entry(0xBB, "LAS", AbsoluteY, 3, 4, true, (*CPU).opLAS)
	entry(0x9B, "TAS", AbsoluteY, 3, 5, false, (*CPU).opTAS)
	entry(0x93, "AHX", IndirectY, 2, 6, false, (*CPU).opAHX)
	entry(0x9F, "AHX", AbsoluteY, 3, 5, false, (*CPU).opAHX)
	entry(0x9E, "SHX", AbsoluteY, 3, 5, false, (*CPU).opSHX)
	entry(0x9C, "SHY", AbsoluteX, 3, 5, false, (*CPU).opSHY)

	// Extra NOP encodings; all read their operand for cycle accounting
	// and touch no state.
	for _, b := range []uint8{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		entry(b, "NOP", Implied, 1, 2, false, (*CPU).opNOP)
	}
	for _, b := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		entry(b, "NOP", Immediate, 2, 2, false, (*CPU).opNOP)
	}
	for _, b := range []uint8{0x04, 0x44, 0x64} {
		entry(b, "NOP", ZeroPage, 2, 3, false, (*CPU).opNOP)
	}
	for _, b := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		entry(b, "NOP", ZeroPageX, 2, 4, false, (*CPU).opNOP)
	}
	entry(0x0C, "NOP", Absolute, 3, 4, false, (*CPU).opNOP)
	for _, b := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		entry(b, "NOP", AbsoluteX, 3, 4, true, (*CPU).opNOP)
	}

	// KIL/JAM: fatal, the CPU halts and never fetches another opcode.
	for _, b := range []uint8{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2} {
		entry(b, "KIL", Implied, 1, 2, false, (*CPU).opKIL)
	}
}
