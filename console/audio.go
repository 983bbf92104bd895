package console

import (
	"encoding/binary"

	"github.com/nescore/nescore/apu"
)

// sampleStream adapts apu.APU.CollectSample's float32 mono samples into
// the little-endian 16-bit stereo PCM stream ebiten/v2/audio.Player
// reads from.
type sampleStream struct {
	apu   *apu.APU
	muted bool
}

// Read implements io.Reader. ebiten's audio player calls this from its
// own mixing goroutine, pulling samples the emulation goroutine has
// already produced via apu.Clock(); CollectSample's internal
// accumulator is what paces 44.1kHz output against the NES's much
// faster CPU clock, so Read just drains whatever's ready.
func (s *sampleStream) Read(p []byte) (int, error) {
	n := 0
	for n+4 <= len(p) {
		sample, ok := s.apu.CollectSample()
		if !ok {
			break
		}
		v := int16(sample * 32767)
		if s.muted {
			v = 0
		}
		binary.LittleEndian.PutUint16(p[n:], uint16(v))
		binary.LittleEndian.PutUint16(p[n+2:], uint16(v))
		n += 4
	}
	return n, nil
}
