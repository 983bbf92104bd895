package mos6502

// Status flag bit positions in the P register.
const (
	FlagCarry     uint8 = 1 << 0
	FlagZero      uint8 = 1 << 1
	FlagIRQ       uint8 = 1 << 2
	FlagDecimal   uint8 = 1 << 3
	FlagBreak     uint8 = 1 << 4
	FlagUnused    uint8 = 1 << 5
	FlagOverflow  uint8 = 1 << 6
	FlagNegative  uint8 = 1 << 7
)

const (
	vectorNMI   uint16 = 0xFFFA
	vectorReset uint16 = 0xFFFC
	vectorIRQ   uint16 = 0xFFFE
	stackBase   uint16 = 0x0100
)

// Memory is the bus contract the CPU reads and writes through. The CPU
// never owns RAM directly; a bus.Bus satisfies this.
type Memory interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

// CPU is a cycle-counting 6502 interpreter. It has no notion of PPU/APU
// timing; the clock coordinator drives those off the cycle count Step
// returns.
type CPU struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16
	P       uint8

	mem Memory

	halted     bool
	haltReason string

	nmiLine  bool // edge-triggered: set by TriggerNMI, consumed on Step
	irqLine  bool // level-triggered: held by SetIRQ until cleared

	cycles uint64 // lifetime cycle counter, for diagnostics/tests
}

// New constructs a CPU wired to the given memory and performs a reset.
func New(mem Memory) *CPU {
	c := &CPU{mem: mem}
	c.Reset()
	return c
}

// Reset puts the CPU in its post-power-on state: SP = 0xFD, P = Unused|IRQ
// disabled, PC loaded from the reset vector.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.P = FlagUnused | FlagIRQ
	c.PC = c.read16(vectorReset)
	c.halted = false
	c.haltReason = ""
	c.nmiLine = false
	c.irqLine = false
}

// Halted reports whether the CPU has faulted on a KIL opcode or an
// unassigned opcode byte and will no longer fetch instructions.
func (c *CPU) Halted() bool { return c.halted }

// HaltReason describes why Halted is true; empty when it isn't.
func (c *CPU) HaltReason() string { return c.haltReason }

// TriggerNMI latches a non-maskable interrupt, serviced at the start of
// the next Step call.
func (c *CPU) TriggerNMI() { c.nmiLine = true }

// SetIRQ raises or lowers the level-triggered interrupt request line. The
// bus holds this high for as long as a device (e.g. the APU frame
// counter or DMC) wants service; the CPU only honors it when I (FlagIRQ)
// is clear.
func (c *CPU) SetIRQ(asserted bool) { c.irqLine = asserted }

// Cycles returns the lifetime CPU cycle count, useful for tests asserting
// on cycle conservation.
func (c *CPU) Cycles() uint64 { return c.cycles }

// Step services any pending interrupt, then fetches, decodes and executes
// one instruction, returning the number of CPU cycles it consumed. If the
// CPU is halted, Step is a no-op and returns 0.
func (c *CPU) Step() int {
	if c.halted {
		return 0
	}

	if c.nmiLine {
		c.nmiLine = false
		c.serviceInterrupt(vectorNMI, false)
		c.cycles += 7
		return 7
	}
	if c.irqLine && c.P&FlagIRQ == 0 {
		c.serviceInterrupt(vectorIRQ, false)
		c.cycles += 7
		return 7
	}

	opByte := c.mem.Read(c.PC)
	op := opcodes[opByte]
	if op.name == "" {
		c.halted = true
		c.haltReason = "unassigned opcode"
		return 0
	}

	startPC := c.PC
	addr, pageCrossed := c.resolveOperand(op.mode)
	c.PC += uint16(op.len)

	before := c.cycles
	op.exec(c, op.mode, addr, pageCrossed)

	// Taken branches add their extra cycles to c.cycles in branch().
	cycles := int(op.cycles) + int(c.cycles-before)
	if op.pagePenalty && pageCrossed {
		cycles++
	}
	if op.name == "KIL" {
		c.halted = true
		c.haltReason = "KIL opcode"
	}
	_ = startPC
	c.cycles = before + uint64(cycles)
	return cycles
}

// serviceInterrupt pushes PC and P (with the given break bit) and jumps
// to the handler at vector. Used for NMI, IRQ, and BRK.
func (c *CPU) serviceInterrupt(vector uint16, brk bool) {
	c.push16(c.PC)
	status := c.P | FlagUnused
	if brk {
		status |= FlagBreak
	} else {
		status &^= FlagBreak
	}
	c.push(status)
	c.P |= FlagIRQ
	c.PC = c.read16(vector)
}

// resolveOperand computes the effective address for mode, along with
// whether a page boundary was crossed by indexed addressing (used for the
// +1 cycle penalty on eligible read instructions). Accumulator and
// Implied modes return addr == 0, unused by their instructions.
func (c *CPU) resolveOperand(mode AddrMode) (addr uint16, pageCrossed bool) {
	switch mode {
	case Implied, Accumulator:
		return 0, false
	case Immediate:
		return c.PC + 1, false
	case ZeroPage:
		return uint16(c.mem.Read(c.PC + 1)), false
	case ZeroPageX:
		return uint16(c.mem.Read(c.PC+1) + c.X), false
	case ZeroPageY:
		return uint16(c.mem.Read(c.PC+1) + c.Y), false
	case Relative:
		offset := int8(c.mem.Read(c.PC + 1))
		base := c.PC + 2
		target := uint16(int32(base) + int32(offset))
		return target, pagesDiffer(base, target)
	case Absolute:
		return c.read16(c.PC + 1), false
	case AbsoluteX:
		base := c.read16(c.PC + 1)
		target := base + uint16(c.X)
		return target, pagesDiffer(base, target)
	case AbsoluteY:
		base := c.read16(c.PC + 1)
		target := base + uint16(c.Y)
		return target, pagesDiffer(base, target)
	case Indirect:
		ptr := c.read16(c.PC + 1)
		return c.read16Bugged(ptr), false
	case IndirectX:
		zp := c.mem.Read(c.PC+1) + c.X
		return c.read16ZeroPage(zp), false
	case IndirectY:
		zp := c.mem.Read(c.PC + 1)
		base := c.read16ZeroPage(zp)
		target := base + uint16(c.Y)
		return target, pagesDiffer(base, target)
	default:
		return 0, false
	}
}

func pagesDiffer(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

func (c *CPU) read16(addr uint16) uint16 {
	lo := uint16(c.mem.Read(addr))
	hi := uint16(c.mem.Read(addr + 1))
	return lo | hi<<8
}

// read16Bugged reproduces the original 6502's JMP (Indirect) page-wrap
// defect: if the low byte of the pointer is 0xFF, the high byte is
// fetched from the start of the same page instead of the next page.
func (c *CPU) read16Bugged(addr uint16) uint16 {
	lo := uint16(c.mem.Read(addr))
	var hiAddr uint16
	if addr&0x00FF == 0x00FF {
		hiAddr = addr & 0xFF00
	} else {
		hiAddr = addr + 1
	}
	hi := uint16(c.mem.Read(hiAddr))
	return lo | hi<<8
}

// read16ZeroPage reads a 16-bit pointer stored at a zero-page address,
// wrapping within page zero rather than crossing into page one.
func (c *CPU) read16ZeroPage(zpAddr uint8) uint16 {
	lo := uint16(c.mem.Read(uint16(zpAddr)))
	hi := uint16(c.mem.Read(uint16(zpAddr + 1)))
	return lo | hi<<8
}

func (c *CPU) push(val uint8) {
	c.mem.Write(stackBase+uint16(c.SP), val)
	c.SP--
}

func (c *CPU) pop() uint8 {
	c.SP++
	return c.mem.Read(stackBase + uint16(c.SP))
}

func (c *CPU) push16(val uint16) {
	c.push(uint8(val >> 8))
	c.push(uint8(val))
}

func (c *CPU) pop16() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return lo | hi<<8
}

func (c *CPU) setZN(val uint8) {
	if val == 0 {
		c.P |= FlagZero
	} else {
		c.P &^= FlagZero
	}
	if val&0x80 != 0 {
		c.P |= FlagNegative
	} else {
		c.P &^= FlagNegative
	}
}

func (c *CPU) setFlag(flag uint8, set bool) {
	if set {
		c.P |= flag
	} else {
		c.P &^= flag
	}
}

func (c *CPU) flag(flag uint8) bool { return c.P&flag != 0 }

// operand reads the byte at addr for modes that have one; Accumulator
// mode instructions don't call this and read c.A instead.
func (c *CPU) operand(addr uint16) uint8 { return c.mem.Read(addr) }

// branch jumps to addr and accounts for the extra cycles a taken branch
// costs: +1 always, +1 more if the branch crosses a page.
func (c *CPU) branch(addr uint16, pageCrossed bool) {
	c.cycles++
	if pageCrossed {
		c.cycles++
	}
	c.PC = addr
}

// addWithOverflow implements the shared ADC/SBC addition formula: result,
// carry, and signed overflow are all derived from the same 9-bit sum.
func (c *CPU) addWithOverflow(operand uint8) {
	carryIn := uint16(0)
	if c.flag(FlagCarry) {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(operand) + carryIn
	result := uint8(sum)

	overflow := (c.A^operand)&0x80 == 0 && (c.A^result)&0x80 != 0
	c.setFlag(FlagCarry, sum > 0xFF)
	c.setFlag(FlagOverflow, overflow)
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) compare(reg, val uint8) {
	c.setFlag(FlagCarry, reg >= val)
	c.setZN(reg - val)
}

// --- Official instructions -------------------------------------------------

func (c *CPU) opADC(mode AddrMode, addr uint16, pageCrossed bool) {
	c.addWithOverflow(c.operand(addr))
}

func (c *CPU) opSBC(mode AddrMode, addr uint16, pageCrossed bool) {
	c.addWithOverflow(^c.operand(addr))
}

func (c *CPU) opAND(mode AddrMode, addr uint16, pageCrossed bool) {
	c.A &= c.operand(addr)
	c.setZN(c.A)
}

func (c *CPU) opORA(mode AddrMode, addr uint16, pageCrossed bool) {
	c.A |= c.operand(addr)
	c.setZN(c.A)
}

func (c *CPU) opEOR(mode AddrMode, addr uint16, pageCrossed bool) {
	c.A ^= c.operand(addr)
	c.setZN(c.A)
}

func (c *CPU) opASL(mode AddrMode, addr uint16, pageCrossed bool) {
	if mode == Accumulator {
		c.setFlag(FlagCarry, c.A&0x80 != 0)
		c.A <<= 1
		c.setZN(c.A)
		return
	}
	val := c.operand(addr)
	c.setFlag(FlagCarry, val&0x80 != 0)
	val <<= 1
	c.mem.Write(addr, val)
	c.setZN(val)
}

func (c *CPU) opLSR(mode AddrMode, addr uint16, pageCrossed bool) {
	if mode == Accumulator {
		c.setFlag(FlagCarry, c.A&0x01 != 0)
		c.A >>= 1
		c.setZN(c.A)
		return
	}
	val := c.operand(addr)
	c.setFlag(FlagCarry, val&0x01 != 0)
	val >>= 1
	c.mem.Write(addr, val)
	c.setZN(val)
}

func (c *CPU) opROL(mode AddrMode, addr uint16, pageCrossed bool) {
	carryIn := uint8(0)
	if c.flag(FlagCarry) {
		carryIn = 1
	}
	if mode == Accumulator {
		c.setFlag(FlagCarry, c.A&0x80 != 0)
		c.A = c.A<<1 | carryIn
		c.setZN(c.A)
		return
	}
	val := c.operand(addr)
	c.setFlag(FlagCarry, val&0x80 != 0)
	val = val<<1 | carryIn
	c.mem.Write(addr, val)
	c.setZN(val)
}

func (c *CPU) opROR(mode AddrMode, addr uint16, pageCrossed bool) {
	carryIn := uint8(0)
	if c.flag(FlagCarry) {
		carryIn = 0x80
	}
	if mode == Accumulator {
		c.setFlag(FlagCarry, c.A&0x01 != 0)
		c.A = c.A>>1 | carryIn
		c.setZN(c.A)
		return
	}
	val := c.operand(addr)
	c.setFlag(FlagCarry, val&0x01 != 0)
	val = val>>1 | carryIn
	c.mem.Write(addr, val)
	c.setZN(val)
}

func (c *CPU) opBCC(mode AddrMode, addr uint16, pageCrossed bool) {
	if !c.flag(FlagCarry) {
		c.branch(addr, pageCrossed)
	}
}
func (c *CPU) opBCS(mode AddrMode, addr uint16, pageCrossed bool) {
	if c.flag(FlagCarry) {
		c.branch(addr, pageCrossed)
	}
}
func (c *CPU) opBEQ(mode AddrMode, addr uint16, pageCrossed bool) {
	if c.flag(FlagZero) {
		c.branch(addr, pageCrossed)
	}
}
func (c *CPU) opBNE(mode AddrMode, addr uint16, pageCrossed bool) {
	if !c.flag(FlagZero) {
		c.branch(addr, pageCrossed)
	}
}
func (c *CPU) opBMI(mode AddrMode, addr uint16, pageCrossed bool) {
	if c.flag(FlagNegative) {
		c.branch(addr, pageCrossed)
	}
}
func (c *CPU) opBPL(mode AddrMode, addr uint16, pageCrossed bool) {
	if !c.flag(FlagNegative) {
		c.branch(addr, pageCrossed)
	}
}
func (c *CPU) opBVC(mode AddrMode, addr uint16, pageCrossed bool) {
	if !c.flag(FlagOverflow) {
		c.branch(addr, pageCrossed)
	}
}
func (c *CPU) opBVS(mode AddrMode, addr uint16, pageCrossed bool) {
	if c.flag(FlagOverflow) {
		c.branch(addr, pageCrossed)
	}
}

func (c *CPU) opBIT(mode AddrMode, addr uint16, pageCrossed bool) {
	val := c.operand(addr)
	c.setFlag(FlagZero, c.A&val == 0)
	c.setFlag(FlagOverflow, val&0x40 != 0)
	c.setFlag(FlagNegative, val&0x80 != 0)
}

func (c *CPU) opBRK(mode AddrMode, addr uint16, pageCrossed bool) {
	c.PC++ // BRK pushes PC+1 (a padding byte follows the opcode)
	c.serviceInterrupt(vectorIRQ, true)
}

func (c *CPU) opCLC(mode AddrMode, addr uint16, pageCrossed bool) { c.setFlag(FlagCarry, false) }
func (c *CPU) opCLD(mode AddrMode, addr uint16, pageCrossed bool) { c.setFlag(FlagDecimal, false) }
func (c *CPU) opCLI(mode AddrMode, addr uint16, pageCrossed bool) { c.setFlag(FlagIRQ, false) }
func (c *CPU) opCLV(mode AddrMode, addr uint16, pageCrossed bool) { c.setFlag(FlagOverflow, false) }
func (c *CPU) opSEC(mode AddrMode, addr uint16, pageCrossed bool) { c.setFlag(FlagCarry, true) }
func (c *CPU) opSED(mode AddrMode, addr uint16, pageCrossed bool) { c.setFlag(FlagDecimal, true) }
func (c *CPU) opSEI(mode AddrMode, addr uint16, pageCrossed bool) { c.setFlag(FlagIRQ, true) }

func (c *CPU) opCMP(mode AddrMode, addr uint16, pageCrossed bool) { c.compare(c.A, c.operand(addr)) }
func (c *CPU) opCPX(mode AddrMode, addr uint16, pageCrossed bool) { c.compare(c.X, c.operand(addr)) }
func (c *CPU) opCPY(mode AddrMode, addr uint16, pageCrossed bool) { c.compare(c.Y, c.operand(addr)) }

func (c *CPU) opDEC(mode AddrMode, addr uint16, pageCrossed bool) {
	val := c.operand(addr) - 1
	c.mem.Write(addr, val)
	c.setZN(val)
}
func (c *CPU) opINC(mode AddrMode, addr uint16, pageCrossed bool) {
	val := c.operand(addr) + 1
	c.mem.Write(addr, val)
	c.setZN(val)
}
func (c *CPU) opDEX(mode AddrMode, addr uint16, pageCrossed bool) { c.X--; c.setZN(c.X) }
func (c *CPU) opDEY(mode AddrMode, addr uint16, pageCrossed bool) { c.Y--; c.setZN(c.Y) }
func (c *CPU) opINX(mode AddrMode, addr uint16, pageCrossed bool) { c.X++; c.setZN(c.X) }
func (c *CPU) opINY(mode AddrMode, addr uint16, pageCrossed bool) { c.Y++; c.setZN(c.Y) }

func (c *CPU) opJMP(mode AddrMode, addr uint16, pageCrossed bool) { c.PC = addr }
func (c *CPU) opJSR(mode AddrMode, addr uint16, pageCrossed bool) {
	c.push16(c.PC - 1)
	c.PC = addr
}
func (c *CPU) opRTS(mode AddrMode, addr uint16, pageCrossed bool) { c.PC = c.pop16() + 1 }
func (c *CPU) opRTI(mode AddrMode, addr uint16, pageCrossed bool) {
	c.P = c.pop()&^FlagBreak | FlagUnused
	c.PC = c.pop16()
}

func (c *CPU) opLDA(mode AddrMode, addr uint16, pageCrossed bool) {
	c.A = c.operand(addr)
	c.setZN(c.A)
}
func (c *CPU) opLDX(mode AddrMode, addr uint16, pageCrossed bool) {
	c.X = c.operand(addr)
	c.setZN(c.X)
}
func (c *CPU) opLDY(mode AddrMode, addr uint16, pageCrossed bool) {
	c.Y = c.operand(addr)
	c.setZN(c.Y)
}
func (c *CPU) opSTA(mode AddrMode, addr uint16, pageCrossed bool) { c.mem.Write(addr, c.A) }
func (c *CPU) opSTX(mode AddrMode, addr uint16, pageCrossed bool) { c.mem.Write(addr, c.X) }
func (c *CPU) opSTY(mode AddrMode, addr uint16, pageCrossed bool) { c.mem.Write(addr, c.Y) }

func (c *CPU) opTAX(mode AddrMode, addr uint16, pageCrossed bool) { c.X = c.A; c.setZN(c.X) }
func (c *CPU) opTAY(mode AddrMode, addr uint16, pageCrossed bool) { c.Y = c.A; c.setZN(c.Y) }
func (c *CPU) opTXA(mode AddrMode, addr uint16, pageCrossed bool) { c.A = c.X; c.setZN(c.A) }
func (c *CPU) opTYA(mode AddrMode, addr uint16, pageCrossed bool) { c.A = c.Y; c.setZN(c.A) }
func (c *CPU) opTSX(mode AddrMode, addr uint16, pageCrossed bool) { c.X = c.SP; c.setZN(c.X) }
func (c *CPU) opTXS(mode AddrMode, addr uint16, pageCrossed bool) { c.SP = c.X } // no flags

func (c *CPU) opPHA(mode AddrMode, addr uint16, pageCrossed bool) { c.push(c.A) }
func (c *CPU) opPHP(mode AddrMode, addr uint16, pageCrossed bool) {
	c.push(c.P | FlagBreak | FlagUnused)
}
func (c *CPU) opPLA(mode AddrMode, addr uint16, pageCrossed bool) {
	c.A = c.pop()
	c.setZN(c.A)
}
func (c *CPU) opPLP(mode AddrMode, addr uint16, pageCrossed bool) {
	c.P = c.pop()&^FlagBreak | FlagUnused
}

func (c *CPU) opNOP(mode AddrMode, addr uint16, pageCrossed bool) {}

func (c *CPU) opKIL(mode AddrMode, addr uint16, pageCrossed bool) {}

// --- Undocumented combination instructions ---------------------------------

func (c *CPU) opSLO(mode AddrMode, addr uint16, pageCrossed bool) {
	val := c.operand(addr)
	c.setFlag(FlagCarry, val&0x80 != 0)
	val <<= 1
	c.mem.Write(addr, val)
	c.A |= val
	c.setZN(c.A)
}

func (c *CPU) opRLA(mode AddrMode, addr uint16, pageCrossed bool) {
	carryIn := uint8(0)
	if c.flag(FlagCarry) {
		carryIn = 1
	}
	val := c.operand(addr)
	c.setFlag(FlagCarry, val&0x80 != 0)
	val = val<<1 | carryIn
	c.mem.Write(addr, val)
	c.A &= val
	c.setZN(c.A)
}

func (c *CPU) opSRE(mode AddrMode, addr uint16, pageCrossed bool) {
	val := c.operand(addr)
	c.setFlag(FlagCarry, val&0x01 != 0)
	val >>= 1
	c.mem.Write(addr, val)
	c.A ^= val
	c.setZN(c.A)
}

func (c *CPU) opRRA(mode AddrMode, addr uint16, pageCrossed bool) {
	carryIn := uint8(0)
	if c.flag(FlagCarry) {
		carryIn = 0x80
	}
	val := c.operand(addr)
	c.setFlag(FlagCarry, val&0x01 != 0)
	val = val>>1 | carryIn
	c.mem.Write(addr, val)
	c.addWithOverflow(val)
}

func (c *CPU) opSAX(mode AddrMode, addr uint16, pageCrossed bool) {
	c.mem.Write(addr, c.A&c.X)
}

func (c *CPU) opLAX(mode AddrMode, addr uint16, pageCrossed bool) {
	val := c.operand(addr)
	c.A = val
	c.X = val
	c.setZN(val)
}

func (c *CPU) opDCP(mode AddrMode, addr uint16, pageCrossed bool) {
	val := c.operand(addr) - 1
	c.mem.Write(addr, val)
	c.compare(c.A, val)
}

func (c *CPU) opISC(mode AddrMode, addr uint16, pageCrossed bool) {
	val := c.operand(addr) + 1
	c.mem.Write(addr, val)
	c.addWithOverflow(^val)
}

func (c *CPU) opANC(mode AddrMode, addr uint16, pageCrossed bool) {
	c.A &= c.operand(addr)
	c.setZN(c.A)
	c.setFlag(FlagCarry, c.A&0x80 != 0)
}

func (c *CPU) opALR(mode AddrMode, addr uint16, pageCrossed bool) {
	c.A &= c.operand(addr)
	c.setFlag(FlagCarry, c.A&0x01 != 0)
	c.A >>= 1
	c.setZN(c.A)
}

func (c *CPU) opARR(mode AddrMode, addr uint16, pageCrossed bool) {
	c.A &= c.operand(addr)
	carryIn := uint8(0)
	if c.flag(FlagCarry) {
		carryIn = 0x80
	}
	c.A = c.A>>1 | carryIn
	c.setZN(c.A)
	c.setFlag(FlagCarry, c.A&0x40 != 0)
	c.setFlag(FlagOverflow, (c.A>>6)&1^(c.A>>5)&1 != 0)
}

func (c *CPU) opAXS(mode AddrMode, addr uint16, pageCrossed bool) {
	val := c.operand(addr)
	result := (c.A & c.X) - val
	c.setFlag(FlagCarry, c.A&c.X >= val)
	c.X = result
	c.setZN(c.X)
}

func (c *CPU) opLXA(mode AddrMode, addr uint16, pageCrossed bool) {
	val := c.operand(addr)
	c.A = val
	c.X = val
	c.setZN(val)
}

func (c *CPU) opXAA(mode AddrMode, addr uint16, pageCrossed bool) {
	c.A = c.X & c.operand(addr)
	c.setZN(c.A)
}

func (c *CPU) opLAS(mode AddrMode, addr uint16, pageCrossed bool) {
	val := c.operand(addr) & c.SP
	c.A = val
	c.X = val
	c.SP = val
	c.setZN(val)
}

func (c *CPU) opTAS(mode AddrMode, addr uint16, pageCrossed bool) {
	c.SP = c.A & c.X
	high := uint8(addr>>8) + 1
	c.mem.Write(addr, c.SP&high)
}

func (c *CPU) opAHX(mode AddrMode, addr uint16, pageCrossed bool) {
	high := uint8(addr>>8) + 1
	c.mem.Write(addr, c.A&c.X&high)
}

func (c *CPU) opSHX(mode AddrMode, addr uint16, pageCrossed bool) {
	high := uint8(addr>>8) + 1
	c.mem.Write(addr, c.X&high)
}

func (c *CPU) opSHY(mode AddrMode, addr uint16, pageCrossed bool) {
	high := uint8(addr>>8) + 1
	c.mem.Write(addr, c.Y&high)
}
