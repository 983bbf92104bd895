package mos6502

import "testing"

const memSize = 0x10000

// mem is a flat 64K RAM used only by these tests; the real bus does
// address decoding, mirroring, and mapper dispatch.
type mem struct {
	data [memSize]uint8
}

func newMem() *mem { return &mem{} }

func (m *mem) Read(addr uint16) uint8     { return m.data[addr] }
func (m *mem) Write(addr uint16, v uint8) { m.data[addr] = v }

// memInit sets the reset vector before a CPU is constructed over m; pass
// nil for c, it's accepted only to keep call sites self-documenting about
// ordering (set the vector, then New(m) performs the actual reset read).
func memInit(c *CPU, m *mem, resetVal uint16) {
	m.data[vectorReset] = uint8(resetVal)
	m.data[vectorReset+1] = uint8(resetVal >> 8)
}

func load(m *mem, addr uint16, bytes ...uint8) {
	for i, b := range bytes {
		m.data[addr+uint16(i)] = b
	}
}

func TestResetVector(t *testing.T) {
	m := newMem()
	memInit(nil, m, 0xC000)
	c := New(m)
	if c.PC != 0xC000 {
		t.Fatalf("PC after reset = 0x%04X, want 0xC000", c.PC)
	}
	if c.SP != 0xFD {
		t.Fatalf("SP after reset = 0x%02X, want 0xFD", c.SP)
	}
	if c.P != FlagUnused|FlagIRQ {
		t.Fatalf("P after reset = 0x%02X, want 0x%02X", c.P, FlagUnused|FlagIRQ)
	}
}

func TestLDAFlagsAndCycles(t *testing.T) {
	cases := []struct {
		name       string
		val        uint8
		wantZero   bool
		wantNeg    bool
		wantCycles int
	}{
		{"zero", 0x00, true, false, 2},
		{"positive", 0x42, false, false, 2},
		{"negative", 0x80, false, true, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newMem()
			memInit(nil, m, 0x8000)
			c := New(m)
			load(m, 0x8000, 0xA9, tc.val) // LDA #imm
			cycles := c.Step()
			if c.A != tc.val {
				t.Errorf("A = 0x%02X, want 0x%02X", c.A, tc.val)
			}
			if c.flag(FlagZero) != tc.wantZero {
				t.Errorf("Z = %v, want %v", c.flag(FlagZero), tc.wantZero)
			}
			if c.flag(FlagNegative) != tc.wantNeg {
				t.Errorf("N = %v, want %v", c.flag(FlagNegative), tc.wantNeg)
			}
			if cycles != tc.wantCycles {
				t.Errorf("cycles = %d, want %d", cycles, tc.wantCycles)
			}
		})
	}
}

func TestADCCarryAndOverflow(t *testing.T) {
	cases := []struct {
		name          string
		a, operand    uint8
		carryIn       bool
		wantA         uint8
		wantCarry     bool
		wantOverflow  bool
	}{
		{"no carry no overflow", 0x10, 0x20, false, 0x30, false, false},
		{"unsigned carry out", 0xFF, 0x02, false, 0x01, true, false},
		{"signed overflow positive", 0x7F, 0x01, false, 0x80, false, true},
		{"signed overflow negative", 0x80, 0xFF, false, 0x7F, true, true},
		{"carry in propagates", 0x00, 0x00, true, 0x01, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newMem()
			memInit(nil, m, 0x8000)
			c := New(m)
			c.A = tc.a
			c.setFlag(FlagCarry, tc.carryIn)
			load(m, 0x8000, 0x69, tc.operand) // ADC #imm
			c.Step()
			if c.A != tc.wantA {
				t.Errorf("A = 0x%02X, want 0x%02X", c.A, tc.wantA)
			}
			if c.flag(FlagCarry) != tc.wantCarry {
				t.Errorf("C = %v, want %v", c.flag(FlagCarry), tc.wantCarry)
			}
			if c.flag(FlagOverflow) != tc.wantOverflow {
				t.Errorf("V = %v, want %v", c.flag(FlagOverflow), tc.wantOverflow)
			}
		})
	}
}

// TestSBCMatchesADCOfComplement checks the spec invariant that
// SBC(a, m, c) behaves exactly like ADC(a, ^m, c) across a spread of
// inputs, since SBC is implemented as addWithOverflow(^operand).
func TestSBCMatchesADCOfComplement(t *testing.T) {
	inputs := []uint8{0x00, 0x01, 0x7F, 0x80, 0xFF, 0x10, 0xF0}
	for _, a := range inputs {
		for _, operand := range inputs {
			for _, carryIn := range []bool{true, false} {
				mSbc := newMem()
				memInit(nil, mSbc, 0x8000)
				sbc := New(mSbc)
				sbc.A = a
				sbc.setFlag(FlagCarry, carryIn)
				load(mSbc, 0x8000, 0xE9, operand) // SBC #imm
				sbc.Step()

				mAdc := newMem()
				memInit(nil, mAdc, 0x8000)
				adc := New(mAdc)
				adc.A = a
				adc.setFlag(FlagCarry, carryIn)
				load(mAdc, 0x8000, 0x69, ^operand) // ADC #(^imm)
				adc.Step()

				if sbc.A != adc.A || sbc.P != adc.P {
					t.Fatalf("SBC(%#x,%#x,c=%v)=A:%#x,P:%#x != ADC-complement A:%#x,P:%#x",
						a, operand, carryIn, sbc.A, sbc.P, adc.A, adc.P)
				}
			}
		}
	}
}

func TestPHPSetsBreakAndUnused_PLPRestoresUnusedOnly(t *testing.T) {
	m := newMem()
	memInit(nil, m, 0x8000)
	c := New(m)
	c.P = FlagCarry | FlagZero // Break/Unused both clear to start
	load(m, 0x8000, 0x08, 0x28) // PHP; PLP
	c.Step()
	pushed := m.Read(stackBase + uint16(c.SP) + 1)
	if pushed&FlagBreak == 0 || pushed&FlagUnused == 0 {
		t.Fatalf("pushed status 0x%02X missing Break|Unused", pushed)
	}
	c.Step()
	if c.P&FlagUnused == 0 {
		t.Fatalf("P after PLP = 0x%02X, Unused must always read as 1", c.P)
	}
	if c.P&FlagCarry == 0 || c.P&FlagZero == 0 {
		t.Fatalf("PLP lost flags that were pushed: P=0x%02X", c.P)
	}
}

func TestStackWraparound(t *testing.T) {
	m := newMem()
	memInit(nil, m, 0x8000)
	c := New(m)
	c.SP = 0x00
	c.push(0xAB)
	if c.SP != 0xFF {
		t.Fatalf("SP after push at 0x00 = 0x%02X, want 0xFF (wrapped)", c.SP)
	}
	if got := c.pop(); got != 0xAB {
		t.Fatalf("pop after wraparound = 0x%02X, want 0xAB", got)
	}
}

// TestIndirectJMPPageWrapBug reproduces the documented 6502 defect: JMP
// ($xxFF) fetches its high byte from $xx00, not from the next page.
func TestIndirectJMPPageWrapBug(t *testing.T) {
	m := newMem()
	memInit(nil, m, 0x8000)
	c := New(m)
	load(m, 0x8000, 0x6C, 0xFF, 0x02) // JMP ($02FF)
	m.data[0x02FF] = 0x34
	m.data[0x0200] = 0x12 // should be read, not 0x0300
	m.data[0x0300] = 0xFF
	c.Step()
	if c.PC != 0x1234 {
		t.Fatalf("PC after JMP ($02FF) = 0x%04X, want 0x1234 (page-wrap bug)", c.PC)
	}
}

func TestBranchCyclePenalties(t *testing.T) {
	cases := []struct {
		name       string
		pc         uint16
		offset     uint8
		wantTaken  bool
		wantCycles int
	}{
		{"not taken", 0x8000, 0x10, false, 2},
		{"taken same page", 0x8000, 0x10, true, 3},
		{"taken crosses page", 0x80F0, 0x20, true, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newMem()
			memInit(nil, m, tc.pc)
			c := New(m)
			c.setFlag(FlagZero, tc.wantTaken) // BEQ: taken iff Z set
			load(m, tc.pc, 0xF0, tc.offset)    // BEQ offset
			cycles := c.Step()
			if cycles != tc.wantCycles {
				t.Errorf("cycles = %d, want %d", cycles, tc.wantCycles)
			}
		})
	}
}

func TestKILOpcodeHalts(t *testing.T) {
	m := newMem()
	memInit(nil, m, 0x8000)
	c := New(m)
	load(m, 0x8000, 0x02) // KIL
	c.Step()
	if !c.Halted() {
		t.Fatalf("CPU did not halt on KIL opcode")
	}
	if cycles := c.Step(); cycles != 0 {
		t.Fatalf("Step() after halt returned %d cycles, want 0", cycles)
	}
}

func TestNMITakesSevenCyclesAndVectorsCorrectly(t *testing.T) {
	m := newMem()
	m.data[vectorNMI] = 0x00
	m.data[vectorNMI+1] = 0x90
	memInit(nil, m, 0x8000)
	c := New(m)
	c.TriggerNMI()
	cycles := c.Step()
	if cycles != 7 {
		t.Fatalf("NMI service cycles = %d, want 7", cycles)
	}
	if c.PC != 0x9000 {
		t.Fatalf("PC after NMI = 0x%04X, want 0x9000", c.PC)
	}
	if !c.flag(FlagIRQ) {
		t.Fatalf("I flag not set after NMI service")
	}
}

func TestIRQIgnoredWhenInterruptDisableSet(t *testing.T) {
	m := newMem()
	memInit(nil, m, 0x8000)
	c := New(m)
	c.setFlag(FlagIRQ, true)
	c.SetIRQ(true)
	load(m, 0x8000, 0xEA) // NOP
	cycles := c.Step()
	if cycles != 2 {
		t.Fatalf("IRQ serviced despite I flag set: cycles = %d, want 2 (NOP)", cycles)
	}
}

func TestDCPCombinesDecAndCompare(t *testing.T) {
	m := newMem()
	memInit(nil, m, 0x8000)
	c := New(m)
	c.A = 0x10
	load(m, 0x8000, 0xC7, 0x10) // DCP $10
	m.data[0x0010] = 0x11
	c.Step()
	if m.data[0x0010] != 0x10 {
		t.Fatalf("DCP did not decrement memory: got 0x%02X, want 0x10", m.data[0x0010])
	}
	if !c.flag(FlagZero) {
		t.Fatalf("DCP comparison flags wrong: A(0x10) == decremented mem(0x10) should set Z")
	}
}
