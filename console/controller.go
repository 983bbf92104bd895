package console

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Buttons, as bits:
// 0 - A
// 1 - B
// 2 - Select
// 3 - Start
// 4 - Up
// 5 - Down
// 6 - Left
// 7 - Right

var player1Keys = []ebiten.Key{
	ebiten.KeyZ,     // A
	ebiten.KeyX,     // B
	ebiten.KeySpace, // Select
	ebiten.KeyEnter, // Start
	ebiten.KeyUp,
	ebiten.KeyDown,
	ebiten.KeyLeft,
	ebiten.KeyRight,
}

// player2Keys is empty by default; a second physical controller isn't
// wired to any keys, but padController still exists so $4017 reads
// behave like a permanently-disconnected pad rather than a bus error.
var player2Keys = []ebiten.Key{}

// padController implements bus.Controller with ebiten keyboard polling,
// matching real controller shift-register behavior: a strobe write
// rewinds the shift position over the button state last sampled (by poll,
// or by Read while strobe is high), then each read shifts one bit out.
type padController struct {
	keys    []ebiten.Key
	strobe  bool
	buttons uint8
	idx     uint8
}

func newPadController(keys []ebiten.Key) *padController {
	return &padController{keys: keys}
}

func (c *padController) Write(val uint8) {
	c.strobe = val&0x01 != 0
	if c.strobe {
		c.idx = 0
	}
}

func (c *padController) Read() uint8 {
	if c.strobe {
		c.sample()
	}
	if c.idx > 7 {
		return 1
	}
	ret := (c.buttons >> c.idx) & 1
	c.idx++
	return ret
}

// poll samples button state once per ebiten Update tick; Read also
// samples while strobe is held high, matching real hardware's
// continuous-latch behavior during strobe.
func (c *padController) poll() {
	c.sample()
}

func (c *padController) sample() {
	var buttons uint8
	for i, key := range c.keys {
		if ebiten.IsKeyPressed(key) {
			buttons |= 1 << i
		}
	}
	c.buttons = buttons
}
