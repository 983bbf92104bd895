package apu

// cpuClockHz is the NTSC NES CPU clock rate, used to derive the
// cycles-per-sample ratio for a given output sample rate.
const cpuClockHz = 1789773

// APU is the NES's audio processing unit: five channels, a shared frame
// sequencer, a mixer, and sample-rate-driven output collection. Clock is
// driven once per CPU cycle by the bus, matching the CPU:APU 1:1 ratio.
type APU struct {
	Pulse1   *PulseChannel
	Pulse2   *PulseChannel
	Triangle *TriangleChannel
	Noise    *NoiseChannel
	DMC      *DMCChannel

	frame frameCounter

	cycle uint64 // total Clock calls (CPU cycles); its parity gates the every-other-cycle timers

	cyclesPerSample float64
	sampleAccum     float64 // Clock calls not yet turned into a collected sample
}

// New constructs an APU that collects output samples at sampleRate Hz.
func New(sampleRate int) *APU {
	a := &APU{
		Pulse1:   newPulseChannel(true),
		Pulse2:   newPulseChannel(false),
		Triangle: &TriangleChannel{},
		Noise:    newNoiseChannel(),
		DMC:      &DMCChannel{},
	}
	a.cyclesPerSample = cpuClockHz / float64(sampleRate)
	return a
}

// WriteRegister dispatches a CPU write to the APU's memory-mapped
// registers, $4000-$4013 plus $4015 and $4017.
func (a *APU) WriteRegister(addr uint16, val uint8) {
	switch addr {
	case 0x4000:
		a.Pulse1.writeControl(val)
	case 0x4001:
		a.Pulse1.writeSweep(val)
	case 0x4002:
		a.Pulse1.writeTimerLow(val)
	case 0x4003:
		a.Pulse1.writeTimerHighAndLength(val)

	case 0x4004:
		a.Pulse2.writeControl(val)
	case 0x4005:
		a.Pulse2.writeSweep(val)
	case 0x4006:
		a.Pulse2.writeTimerLow(val)
	case 0x4007:
		a.Pulse2.writeTimerHighAndLength(val)

	case 0x4008:
		a.Triangle.writeControl(val)
	case 0x400A:
		a.Triangle.writeTimerLow(val)
	case 0x400B:
		a.Triangle.writeTimerHighAndLength(val)

	case 0x400C:
		a.Noise.writeControl(val)
	case 0x400E:
		a.Noise.writePeriod(val)
	case 0x400F:
		a.Noise.writeLength(val)

	case 0x4010:
		a.DMC.writeControl(val)
	case 0x4011:
		a.DMC.writeDirectLoad(val)
	case 0x4012:
		a.DMC.writeSampleAddress(val)
	case 0x4013:
		a.DMC.writeSampleLength(val)

	case 0x4015:
		a.writeStatus(val)
	case 0x4017:
		a.frame.writeControl(val, a.clockQuarterAndHalf)
	}
}

func (a *APU) writeStatus(val uint8) {
	a.Pulse1.setEnabled(val&0x01 != 0)
	a.Pulse2.setEnabled(val&0x02 != 0)
	a.Triangle.setEnabled(val&0x04 != 0)
	a.Noise.setEnabled(val&0x08 != 0)
	a.DMC.setEnabled(val&0x10 != 0)
	a.DMC.ClearIRQ()
}

// ReadStatus implements the $4015 read: channel active bits, plus the
// frame and DMC IRQ flags. Reading $4015 clears the frame IRQ flag (but
// never the DMC IRQ flag, which clears only on a $4015 write or a $4010
// write with the IRQ-enable bit clear).
func (a *APU) ReadStatus() uint8 {
	var v uint8
	if a.Pulse1.lengthCounter > 0 {
		v |= 0x01
	}
	if a.Pulse2.lengthCounter > 0 {
		v |= 0x02
	}
	if a.Triangle.lengthCounter > 0 {
		v |= 0x04
	}
	if a.Noise.lengthCounter > 0 {
		v |= 0x08
	}
	if a.DMC.active() {
		v |= 0x10
	}
	if a.frame.irqPending {
		v |= 0x40
	}
	if a.DMC.IRQ() {
		v |= 0x80
	}
	a.frame.irqPending = false
	return v
}

// FrameIRQ reports whether the frame sequencer currently wants an IRQ
// serviced; the bus ORs this with DMC.IRQ() onto the CPU's IRQ line.
func (a *APU) FrameIRQ() bool { return a.frame.irqPending }

// DMCIRQ reports whether the DMC channel currently wants an IRQ serviced.
func (a *APU) DMCIRQ() bool { return a.DMC.IRQ() }

func (a *APU) clockQuarterAndHalf() {
	a.clockEnvelopesAndLinear()
	a.clockLengthsAndSweeps()
}

func (a *APU) clockEnvelopesAndLinear() {
	a.Pulse1.clockEnvelope()
	a.Pulse2.clockEnvelope()
	a.Noise.clockEnvelope()
	a.Triangle.clockLinear()
}

func (a *APU) clockLengthsAndSweeps() {
	a.Pulse1.clockLength()
	a.Pulse1.clockSweep()
	a.Pulse2.clockLength()
	a.Pulse2.clockSweep()
	a.Triangle.clockLength()
	a.Noise.clockLength()
}

// Clock advances the APU by one CPU cycle: the triangle's timer ticks
// every cycle, the others every other cycle, and the frame sequencer
// ticks every cycle (it counts CPU cycles directly).
func (a *APU) Clock() {
	a.cycle++
	a.sampleAccum++

	a.Triangle.clockTimer()
	if a.cycle%2 == 0 {
		a.Pulse1.clockTimer()
		a.Pulse2.clockTimer()
		a.Noise.clockTimer()
		a.DMC.clockTimer()
	}

	clocks := a.frame.clock()
	if clocks.quarter {
		a.clockEnvelopesAndLinear()
	}
	if clocks.half {
		a.clockLengthsAndSweeps()
	}
}

// NextDMCFetchAddr reports the address the DMC channel wants serviced, if
// any; the bus calls this after every Clock and, if ok, performs the PRG
// read and calls ProvideDMCData.
func (a *APU) NextDMCFetchAddr() (addr uint16, ok bool) {
	return a.DMC.NextFetchAddr()
}

// ProvideDMCData delivers a byte fetched from the address NextDMCFetchAddr
// returned.
func (a *APU) ProvideDMCData(val uint8) {
	a.DMC.ProvideData(val)
}

// mix computes one output sample from the five channel outputs using the
// linear approximation: 0.00752*(pulse1+pulse2) + 0.00851*triangle +
// 0.00494*noise + 0.00335*dmc.
func mix(pulse1, pulse2, triangle, noise, dmc uint8) float32 {
	pulseOut := 0.00752 * float64(pulse1+pulse2)
	tndOut := 0.00851*float64(triangle) + 0.00494*float64(noise) + 0.00335*float64(dmc)
	return float32(pulseOut + tndOut)
}

// CollectSample reports whether enough Clock calls (CPU cycles) have elapsed to emit
// another output sample at the configured sample rate, returning the
// mixed sample when ok is true.
func (a *APU) CollectSample() (sample float32, ok bool) {
	if a.sampleAccum < a.cyclesPerSample {
		return 0, false
	}
	a.sampleAccum -= a.cyclesPerSample
	return mix(a.Pulse1.Output(), a.Pulse2.Output(), a.Triangle.Output(), a.Noise.Output(), a.DMC.Output()), true
}
