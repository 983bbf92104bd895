package console

import (
	"testing"

	"github.com/nescore/nescore/apu"
)

func TestSampleStreamEmitsStereoFramesFromEveryCollectedSample(t *testing.T) {
	// cyclesPerSample == 1 when sampleRate equals the CPU clock, so the
	// one APU.Clock below makes exactly one sample ready.
	a := apu.New(1789773)
	a.Clock()
	s := &sampleStream{apu: a}

	buf := make([]byte, 16) // room for 4 stereo frames
	n, err := s.Read(buf)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if n == 0 || n%4 != 0 {
		t.Fatalf("Read returned %d bytes, want a positive multiple of 4", n)
	}
}

func TestSampleStreamMutedProducesSilence(t *testing.T) {
	a := apu.New(1789773)
	a.WriteRegister(0x4000, 0xBF) // pulse1: constant volume, max
	a.WriteRegister(0x4003, 0x08) // length-counter load; ignored, $4015 has not enabled pulse 1
	a.Clock()

	s := &sampleStream{apu: a, muted: true}
	buf := make([]byte, 4)
	n, err := s.Read(buf)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if n != 4 {
		t.Fatalf("Read returned %d bytes, want 4", n)
	}
	if buf[0] != 0 || buf[1] != 0 || buf[2] != 0 || buf[3] != 0 {
		t.Errorf("muted stream produced non-silent bytes: %v", buf)
	}
}
