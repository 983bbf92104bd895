// Package console ties the CPU, bus, PPU and APU into a single runnable
// machine: an ebiten.Game that drives emulation on its own goroutine and
// lets ebiten own the window/render/audio loop on the main thread.
package console

import (
	"context"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/nescore/nescore/bus"
	"github.com/nescore/nescore/mappers"
	"github.com/nescore/nescore/mos6502"
)

const sampleRate = 44100

// Console is the top-level emulator: a CPU stepping against a Bus, with
// an ebiten-backed display and audio player.
type Console struct {
	cpu *mos6502.CPU
	bus *bus.Bus

	p1, p2 *padController

	img         *ebiten.Image
	audioCtx    *audio.Context
	audioPlayer *audio.Player
	audioStream *sampleStream
}

// New constructs a Console for the given cartridge mapper.
func New(m mappers.Mapper) *Console {
	b := bus.New(m, sampleRate)
	c := &Console{
		bus: b,
		p1:  newPadController(player1Keys),
		p2:  newPadController(player2Keys),
		img: ebiten.NewImage(256, 240),
	}
	b.SetControllers(c.p1, c.p2)
	c.cpu = mos6502.New(b)

	c.audioCtx = audio.NewContext(sampleRate)
	c.audioStream = &sampleStream{apu: b.APU()}
	player, err := c.audioCtx.NewPlayer(c.audioStream)
	if err == nil {
		c.audioPlayer = player
		c.audioPlayer.Play()
	}
	return c
}

// SetMuted silences audio output without stopping emulation.
func (c *Console) SetMuted(m bool) { c.audioStream.muted = m }

// Run drives the CPU/bus clock coordinator until ctx is canceled. It
// runs on its own goroutine; ebiten.RunGame owns the render/input loop
// on the main thread and reads frames/state Console already produced.
func (c *Console) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / 60) // coarse pacing; Step()/Tick() do the real cycle accounting
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.runFrame()
		}
	}
}

// runFrame advances emulation by roughly one NTSC video frame's worth of
// CPU cycles (~29780.5 cycles at 1.789773MHz / 60.0988fps), stopping
// early if the CPU halts.
func (c *Console) runFrame() {
	const cyclesPerFrame = 29781
	spent := 0
	for spent < cyclesPerFrame {
		if c.cpu.Halted() {
			return
		}
		c.cpu.SetIRQ(c.bus.FrameIRQ() || c.bus.DMCIRQ())
		if c.bus.PollNMI() {
			c.cpu.TriggerNMI()
		}
		cycles := c.cpu.Step()
		spent += c.bus.Tick(cycles)
	}
}

// Update implements ebiten.Game. Emulation itself runs on Run's
// goroutine; Update only samples input state, matching the split the
// teacher's bus/controller code already used between ebiten's input
// polling and the emulation clock.
func (c *Console) Update() error {
	c.p1.poll()
	c.p2.poll()
	return nil
}

// Draw implements ebiten.Game, copying the PPU's pixel buffer into the
// ebiten image ebiten composites to the window.
func (c *Console) Draw(screen *ebiten.Image) {
	w, h := c.bus.PPU().Resolution()
	px := c.bus.PPU().Frame()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, rgba := range px {
		img.SetRGBA(i%w, i/w, rgba)
	}
	c.img.WritePixels(img.Pix)
	screen.DrawImage(c.img, nil)
}

// Layout implements ebiten.Game.
func (c *Console) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 256, 240
}
