// Package bus wires the CPU, PPU, APU, cartridge mapper, and controllers
// into the single 16-bit CPU address space and drives their relative
// clock rates.
package bus

import (
	"github.com/nescore/nescore/apu"
	"github.com/nescore/nescore/mappers"
	"github.com/nescore/nescore/ppu"
)

const ramSize = 0x0800

// Controller abstracts the two front-panel controller ports so bus
// doesn't need to know whether input comes from a real keyboard (via
// ebiten, wired in console) or from a test fixture.
type Controller interface {
	Write(val uint8)
	Read() uint8
}

// Bus implements mos6502.Memory: it is the CPU's entire view of the
// machine, and owns the PPU and APU it drives every cycle.
type Bus struct {
	ram [ramSize]uint8

	mapper mappers.Mapper
	ppu    *ppu.PPU
	apu    *apu.APU

	controller1, controller2 Controller

	nmiRequested bool

	dmaPage    uint8
	dmaPending bool
}

// New constructs a Bus for the given cartridge mapper. PPU and APU are
// created here so Bus can hand the PPU a ChrRead/TriggerNMI adapter over
// the mapper without exposing either collaborator's concrete type.
func New(m mappers.Mapper, sampleRate int) *Bus {
	b := &Bus{mapper: m}
	b.ppu = ppu.New(mapperChrBus{m})
	b.ppu.MirrorMode = m.MirroringMode()
	b.apu = apu.New(sampleRate)
	return b
}

// PPU and APU expose the underlying devices for console to read frames
// and audio samples from.
func (b *Bus) PPU() *ppu.PPU { return b.ppu }
func (b *Bus) APU() *apu.APU { return b.apu }

func (b *Bus) SetControllers(c1, c2 Controller) {
	b.controller1, b.controller2 = c1, c2
}

// Read implements mos6502.Memory.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram[addr%ramSize]
	case addr < 0x4000:
		return b.ppu.ReadReg(0x2000 + addr%8)
	case addr == 0x4015:
		return b.apu.ReadStatus()
	case addr == 0x4016:
		if b.controller1 != nil {
			return b.controller1.Read()
		}
		return 0
	case addr == 0x4017:
		if b.controller2 != nil {
			return b.controller2.Read()
		}
		return 0
	case addr >= 0x6000 && addr < 0x8000:
		return b.mapper.ReadBaseRAM(addr - 0x6000)
	case addr >= 0x8000:
		return b.mapper.PrgRead(addr - 0x8000)
	default:
		return 0
	}
}

// Write implements mos6502.Memory.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		b.ram[addr%ramSize] = val
	case addr < 0x4000:
		b.ppu.WriteReg(0x2000+addr%8, val)
	case addr < 0x4014:
		b.apu.WriteRegister(addr, val)
	case addr == 0x4014:
		b.dmaPage = val
		b.dmaPending = true
	case addr == 0x4015:
		b.apu.WriteRegister(addr, val)
	case addr == 0x4016:
		if b.controller1 != nil {
			b.controller1.Write(val)
		}
		if b.controller2 != nil {
			b.controller2.Write(val)
		}
	case addr == 0x4017:
		b.apu.WriteRegister(addr, val)
	case addr >= 0x6000 && addr < 0x8000:
		b.mapper.WriteBaseRAM(addr-0x6000, val)
	case addr >= 0x8000:
		b.mapper.PrgWrite(addr-0x8000, val)
	}
}

// Tick advances the PPU and APU by the number of CPU cycles the CPU just
// spent, services any pending OAM DMA, and forwards DMC sample requests
// and PPU NMI edges to their consumers. cycles comes straight out of
// mos6502.CPU.Step()'s return value. It returns the total CPU-cycle-
// equivalent time that actually elapsed, including any DMA stall, so a
// caller pacing real-time playback can account for it.
func (b *Bus) Tick(cycles int) int {
	b.advance(cycles)
	total := cycles
	if b.dmaPending {
		stall := 513
		if total%2 != 0 {
			stall++
		}
		b.runOAMDMA()
		b.dmaPending = false
		b.advance(stall)
		total += stall
	}
	return total
}

func (b *Bus) advance(cpuCycles int) {
	for i := 0; i < cpuCycles; i++ {
		b.ppu.Tick(3)
		b.apu.Clock()
		if addr, need := b.apu.NextDMCFetchAddr(); need {
			b.apu.ProvideDMCData(b.Read(addr))
		}
		if b.ppu.PollNMI() {
			b.nmiRequested = true
		}
	}
}

// PollNMI reports and clears an NMI raised by the PPU since the last
// poll, for the clock coordinator to forward to the CPU.
func (b *Bus) PollNMI() bool {
	fired := b.nmiRequested
	b.nmiRequested = false
	return fired
}

// FrameIRQ and DMCIRQ report whether the APU's frame sequencer or DMC
// channel currently want to assert IRQ; the clock coordinator ORs these
// together to drive mos6502.CPU.SetIRQ.
func (b *Bus) FrameIRQ() bool { return b.apu.FrameIRQ() }
func (b *Bus) DMCIRQ() bool   { return b.apu.DMCIRQ() }

// runOAMDMA copies 256 bytes from $XX00-$XXFF (XX = dmaPage) into OAM,
// the real hardware behavior of a $4014 write. The CPU is halted for
// 513 or 514 cycles during this in real hardware; Tick accounts for that
// by advancing the PPU and APU through the stall cycles and including
// them in its return value, which console.Console.runFrame adds to the
// cycles spent.
func (b *Bus) runOAMDMA() {
	base := uint16(b.dmaPage) << 8
	for i := 0; i < 256; i++ {
		b.ppu.WriteOAMByte(b.Read(base + uint16(i)))
	}
}

// mapperChrBus adapts a single-address mappers.Mapper.ChrRead into the
// range-read ppu.Bus needs for tile/sprite pattern fetches.
type mapperChrBus struct {
	m mappers.Mapper
}

func (a mapperChrBus) ChrRead(start, end uint16) []uint8 {
	out := make([]uint8, 0, end-start+1)
	for addr := start; addr <= end; addr++ {
		out = append(out, a.m.ChrRead(addr))
	}
	return out
}

func (a mapperChrBus) TriggerNMI() {
	// NMI is delivered to the CPU through Bus.PollNMI/Bus.Tick instead of
	// directly here, since this adapter has no reference back to the CPU;
	// the PPU sets its own nmiOutputPin latch alongside this call, and
	// advance reads that latch through PPU.PollNMI.
}
