package mappers

import (
	"os"
	"testing"

	"github.com/nescore/nescore/nesrom"
)

func newTestMapper0() *mapper0 {
	return &mapper0{
		baseMapper: newBaseMapper(0, "NROM"),
		chrRAM:     make([]uint8, CHR_BANK_SIZE),
	}
}

// romWithPRG builds an NROM cartridge with prgBanks 16KB PRG banks whose
// PRG data starts with the given bytes (the rest zero-filled), with no
// CHR-ROM.
func romWithPRG(t *testing.T, prgBanks int, lead []byte) *nesrom.ROM {
	t.Helper()
	prg := make([]byte, prgBanks*0x4000)
	copy(prg, lead)
	return romFromBytes(t, prgBanks, 0, prg, nil)
}

// romFromBytes writes a minimal iNES file with the given PRG/CHR payload
// and parses it back through nesrom.New, since ROM's fields are
// unexported and only constructible that way.
func romFromBytes(t *testing.T, prgBanks, chrBanks int, prg, chr []byte) *nesrom.ROM {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "mapper0-*.nes")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()

	header := []byte{0x4E, 0x45, 0x53, 0x1A, byte(prgBanks), byte(chrBanks), 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := f.Write(header); err != nil {
		t.Fatalf("write header: %v", err)
	}
	if _, err := f.Write(prg); err != nil {
		t.Fatalf("write prg: %v", err)
	}
	if _, err := f.Write(chr); err != nil {
		t.Fatalf("write chr: %v", err)
	}

	rom, err := nesrom.New(f.Name())
	if err != nil {
		t.Fatalf("nesrom.New: %v", err)
	}
	return rom
}

func TestMapper0MirrorsSixteenKBPRGAcrossBothBanks(t *testing.T) {
	m := newTestMapper0()
	m.rom = romWithPRG(t, 1, []byte{0xAB})
	if got := m.PrgRead(0x0000); got != 0xAB {
		t.Errorf("PrgRead(0x0000) = 0x%02X, want 0xAB", got)
	}
	if got := m.PrgRead(0x4000); got != 0xAB {
		t.Errorf("PrgRead(0x4000) = 0x%02X, want 0xAB (mirrored 16KB bank)", got)
	}
}

func TestMapper0UsesFullThirtyTwoKBWithTwoPRGBanks(t *testing.T) {
	m := newTestMapper0()
	prg := make([]byte, 0x8000)
	prg[0] = 0x11
	prg[0x4000] = 0x22
	m.rom = romFromBytes(t, 2, 0, prg, nil)
	if got := m.PrgRead(0x0000); got != 0x11 {
		t.Errorf("PrgRead(0x0000) = 0x%02X, want 0x11", got)
	}
	if got := m.PrgRead(0x4000); got != 0x22 {
		t.Errorf("PrgRead(0x4000) = 0x%02X, want 0x22 (second bank, not mirrored)", got)
	}
}

func TestMapper0FallsBackToCHRRAMWhenCartShipsNone(t *testing.T) {
	m := newTestMapper0()
	m.rom = romFromBytes(t, 1, 0, make([]byte, 0x4000), nil)
	m.ChrWrite(0x0010, 0x42)
	if got := m.ChrRead(0x0010); got != 0x42 {
		t.Errorf("ChrRead after ChrWrite = 0x%02X, want 0x42 (CHR-RAM)", got)
	}
}

func TestMapper0CHRROMIsReadOnly(t *testing.T) {
	m := newTestMapper0()
	chr := make([]byte, 0x2000)
	chr[5] = 0x77
	m.rom = romFromBytes(t, 1, 1, make([]byte, 0x4000), chr)
	m.ChrWrite(5, 0x99) // should be a no-op: this cart has real CHR-ROM
	if got := m.ChrRead(5); got != 0x77 {
		t.Errorf("ChrRead(5) after write to CHR-ROM = 0x%02X, want unchanged 0x77", got)
	}
}
