package mappers

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nescore/emu/log"
	"nescore/hw/hwdefs"
	"nescore/ines"
)

// testCart returns a cartridge whose PRG bytes hold their 8KB bank number and
// CHR bytes hold their 1KB bank number.
func testCart(mapper uint16, prgsz, chrsz int) *ines.Cartridge {
	cart := &ines.Cartridge{
		Mapper:     mapper,
		PRG:        make([]byte, prgsz),
		PRGUnits:   prgsz / 0x4000,
		CHRUnits:   chrsz / 0x2000,
		PRGRAMSize: 0x2000,
		Mirroring:  hwdefs.Vertical,
	}
	for i := range cart.PRG {
		cart.PRG[i] = uint8(i / 0x2000)
	}
	if chrsz > 0 {
		cart.CHR = make([]byte, chrsz)
		for i := range cart.CHR {
			cart.CHR[i] = uint8(i / 0x400)
		}
	} else {
		cart.CHRRAMSize = 0x2000
	}
	return cart
}

func mustNew(t *testing.T, cart *ines.Cartridge) Mapper {
	t.Helper()
	m, err := New(cart, log.ModLog{})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

// prgBanks returns the 8KB PRG banks mapped at $8000, $A000, $C000, $E000.
func prgBanks(m Mapper) [4]uint8 {
	return [4]uint8{m.CPUPeek(0x8000, 0), m.CPUPeek(0xA000, 0), m.CPUPeek(0xC000, 0), m.CPUPeek(0xFFFF, 0)}
}

// chrBanks returns the 1KB CHR banks mapped in the PPU pattern tables.
func chrBanks(m Mapper) [8]uint8 {
	var banks [8]uint8
	for i := range banks {
		banks[i] = m.PPURead(uint16(i) * 0x400)
	}
	return banks
}

func TestNew(t *testing.T) {
	tests := []struct {
		mapper uint16
		chrsz  int
		name   string
	}{
		{0, 0x2000, "NROM"},
		{1, 0x2000, "MMC1"},
		{2, 0, "UNROM"},
		{3, 0x8000, "CNROM"},
		{4, 0x8000, "MMC3"},
		{7, 0, "AOROM"},
		{11, 0x8000, "ColorDreams"},
		{34, 0, "BNROM"},
		{34, 0x4000, "NINA-001"},
		{66, 0x8000, "GxROM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustNew(t, testCart(tt.mapper, 0x10000, tt.chrsz))
			if m.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", m.Name(), tt.name)
			}
		})
	}

	_, err := New(testCart(254, 0x8000, 0x2000), log.ModLog{})
	var uerr *UnsupportedMapperError
	if !errors.As(err, &uerr) {
		t.Fatalf("New(254) error = %v, want *UnsupportedMapperError", err)
	}
	if uerr.ID != 254 {
		t.Errorf("UnsupportedMapperError.ID = %d", uerr.ID)
	}
}

func TestNROM(t *testing.T) {
	m := mustNew(t, testCart(0, 0x4000, 0x2000))
	// 16KB PRG is mirrored.
	if got, want := prgBanks(m), [4]uint8{0, 1, 0, 1}; got != want {
		t.Errorf("PRG banks = %v, want %v", got, want)
	}

	// PRG RAM.
	m.CPUWrite(0x6000, 0x42)
	if got := m.CPURead(0x6000, 0); got != 0x42 {
		t.Errorf("PRG RAM = %02x, want 42", got)
	}

	// Writes to ROM are ignored.
	m.CPUWrite(0x8000, 0xFF)
	m.PPUWrite(0x0000, 0xFF)
	if m.CPURead(0x8000, 0) != 0 || m.PPURead(0x0000) != 0 {
		t.Errorf("ROM was modified")
	}
}

func TestCHRRAM(t *testing.T) {
	m := mustNew(t, testCart(2, 0x8000, 0))
	m.PPUWrite(0x1234, 0x99)
	if got := m.PPURead(0x1234); got != 0x99 {
		t.Errorf("CHR RAM = %02x, want 99", got)
	}
}

func TestUxROM(t *testing.T) {
	m := mustNew(t, testCart(2, 0x20000, 0)) // 8 16KB banks
	if got, want := prgBanks(m), [4]uint8{0, 1, 14, 15}; got != want {
		t.Errorf("PRG banks = %v, want %v", got, want)
	}
	m.CPUWrite(0x8000, 3)
	if got, want := prgBanks(m), [4]uint8{6, 7, 14, 15}; got != want {
		t.Errorf("PRG banks = %v, want %v", got, want)
	}
	// Bank numbers wrap around.
	m.CPUWrite(0xFFFF, 9)
	if got, want := prgBanks(m), [4]uint8{2, 3, 14, 15}; got != want {
		t.Errorf("PRG banks = %v, want %v", got, want)
	}
}

func TestBusConflicts(t *testing.T) {
	cart := testCart(2, 0x20000, 0)
	cart.SubMapper = 2
	m := mustNew(t, cart)

	// $C000 holds 14 (0b1110), ANDed with 3 gives bank 2.
	m.CPUWrite(0xC000, 3)
	if got, want := prgBanks(m), [4]uint8{4, 5, 14, 15}; got != want {
		t.Errorf("PRG banks = %v, want %v", got, want)
	}
}

func TestCNROM(t *testing.T) {
	m := mustNew(t, testCart(3, 0x8000, 0x8000))
	m.CPUWrite(0x8000, 2)
	if got, want := chrBanks(m), [8]uint8{16, 17, 18, 19, 20, 21, 22, 23}; got != want {
		t.Errorf("CHR banks = %v, want %v", got, want)
	}
}

func TestAxROM(t *testing.T) {
	m := mustNew(t, testCart(7, 0x20000, 0))
	if m.Mirroring() != hwdefs.SingleScreen0 {
		t.Errorf("mirroring = %v", m.Mirroring())
	}
	m.CPUWrite(0x8000, 0x13)
	if got, want := prgBanks(m), [4]uint8{12, 13, 14, 15}; got != want {
		t.Errorf("PRG banks = %v, want %v", got, want)
	}
	if m.Mirroring() != hwdefs.SingleScreen1 {
		t.Errorf("mirroring = %v, want single-screen-1", m.Mirroring())
	}
}

func TestColorDreams(t *testing.T) {
	cart := testCart(11, 0x10000, 0x8000)
	cart.PRG[0x7FFF] = 0xFF // avoid bus conflicts when writing at $FFFF
	m := mustNew(t, cart)

	m.CPUWrite(0xFFFF, 0x21)
	if got, want := prgBanks(m), [4]uint8{4, 5, 6, 7}; got != want {
		t.Errorf("PRG banks = %v, want %v", got, want)
	}
	if got, want := chrBanks(m), [8]uint8{16, 17, 18, 19, 20, 21, 22, 23}; got != want {
		t.Errorf("CHR banks = %v, want %v", got, want)
	}

	// Bus conflicts: $8000 now holds 4, ANDed with 0x33.
	m.CPUWrite(0x8000, 0x33)
	if got, want := chrBanks(m), [8]uint8{0, 1, 2, 3, 4, 5, 6, 7}; got != want {
		t.Errorf("CHR banks = %v, want %v", got, want)
	}
	if got, want := prgBanks(m), [4]uint8{0, 1, 2, 3}; got != want {
		t.Errorf("PRG banks = %v, want %v", got, want)
	}
}

func TestGxROM(t *testing.T) {
	m := mustNew(t, testCart(66, 0x20000, 0x8000))
	m.CPUWrite(0x8000, 0x21)
	if got, want := prgBanks(m), [4]uint8{8, 9, 10, 11}; got != want {
		t.Errorf("PRG banks = %v, want %v", got, want)
	}
	if got, want := chrBanks(m), [8]uint8{8, 9, 10, 11, 12, 13, 14, 15}; got != want {
		t.Errorf("CHR banks = %v, want %v", got, want)
	}
}

func TestBNROM(t *testing.T) {
	m := mustNew(t, testCart(34, 0x20000, 0))
	m.CPUWrite(0x8000, 2)
	if got, want := prgBanks(m), [4]uint8{8, 9, 10, 11}; got != want {
		t.Errorf("PRG banks = %v, want %v", got, want)
	}
}

func TestNINA001(t *testing.T) {
	m := mustNew(t, testCart(34, 0x10000, 0x10000))
	m.CPUWrite(0x7FFD, 1)
	m.CPUWrite(0x7FFE, 3)
	m.CPUWrite(0x7FFF, 7)
	if got, want := prgBanks(m), [4]uint8{4, 5, 6, 7}; got != want {
		t.Errorf("PRG banks = %v, want %v", got, want)
	}
	if got, want := chrBanks(m), [8]uint8{12, 13, 14, 15, 28, 29, 30, 31}; got != want {
		t.Errorf("CHR banks = %v, want %v", got, want)
	}
	// Registers are backed by RAM.
	if got := m.CPURead(0x7FFF, 0); got != 7 {
		t.Errorf("RAM at $7FFF = %d, want 7", got)
	}
}

// mmc1Write writes val to the MMC1 serial port, one bit per write, with CPU
// cycles in between.
func mmc1Write(m Mapper, addr uint16, val uint8) {
	for i := range 5 {
		m.CPUWrite(addr, (val>>i)&1)
		m.Tick()
		m.Tick()
	}
}

func TestMMC1(t *testing.T) {
	m := mustNew(t, testCart(1, 0x40000, 0x20000)) // 16 16KB PRG banks, 32 4KB CHR banks

	// Power-on: 16KB mode, last bank fixed at $C000.
	if got, want := prgBanks(m), [4]uint8{0, 1, 30, 31}; got != want {
		t.Errorf("PRG banks = %v, want %v", got, want)
	}

	mmc1Write(m, 0xE000, 5)
	if got, want := prgBanks(m), [4]uint8{10, 11, 30, 31}; got != want {
		t.Errorf("PRG banks = %v, want %v", got, want)
	}

	// Control: vertical, PRG mode 2 (first bank fixed), 4KB CHR mode.
	mmc1Write(m, 0x8000, 0b1_10_10)
	if m.Mirroring() != hwdefs.Vertical {
		t.Errorf("mirroring = %v, want vertical", m.Mirroring())
	}
	if got, want := prgBanks(m), [4]uint8{0, 1, 10, 11}; got != want {
		t.Errorf("PRG banks = %v, want %v", got, want)
	}

	mmc1Write(m, 0xA000, 3)
	mmc1Write(m, 0xC000, 8)
	if got, want := chrBanks(m), [8]uint8{12, 13, 14, 15, 32, 33, 34, 35}; got != want {
		t.Errorf("CHR banks = %v, want %v", got, want)
	}

	// Reset bit sets PRG mode 3.
	m.CPUWrite(0x8000, 0x80)
	m.Tick()
	m.Tick()
	if got, want := prgBanks(m), [4]uint8{10, 11, 30, 31}; got != want {
		t.Errorf("PRG banks after reset bit = %v, want %v", got, want)
	}
}

func TestMMC1ConsecutiveWrites(t *testing.T) {
	m := mustNew(t, testCart(1, 0x40000, 0x20000))

	// A read-modify-write instruction writes twice on consecutive cycles,
	// only the first write is taken into account.
	for i := range 5 {
		m.CPUWrite(0xE000, 1)
		m.Tick()
		if i != 4 {
			m.CPUWrite(0xE000, 0)
		}
		m.Tick()
		m.Tick()
	}
	if got, want := prgBanks(m), [4]uint8{30, 31, 30, 31}; got != want {
		t.Errorf("PRG banks = %v, want %v", got, want)
	}
}

func TestMMC1PRGRAMDisable(t *testing.T) {
	m := mustNew(t, testCart(1, 0x40000, 0x20000))
	m.CPUWrite(0x6000, 0x12)
	mmc1Write(m, 0xE000, 0x10)
	if got := m.CPURead(0x6000, 0xA5); got != 0xA5 {
		t.Errorf("disabled PRG RAM read = %02x, want open bus a5", got)
	}
	mmc1Write(m, 0xE000, 0x00)
	if got := m.CPURead(0x6000, 0); got != 0x12 {
		t.Errorf("PRG RAM read = %02x, want 12", got)
	}
}

func TestMMC3Banks(t *testing.T) {
	m := mustNew(t, testCart(4, 0x20000, 0x20000)) // 16 8KB PRG banks, 128 1KB CHR banks

	m.CPUWrite(0x8000, 6)
	m.CPUWrite(0x8001, 3)
	m.CPUWrite(0x8000, 7)
	m.CPUWrite(0x8001, 5)
	if got, want := prgBanks(m), [4]uint8{3, 5, 14, 15}; got != want {
		t.Errorf("PRG banks = %v, want %v", got, want)
	}

	// PRG mode 1 swaps $8000 and $C000.
	m.CPUWrite(0x8000, 0x40)
	if got, want := prgBanks(m), [4]uint8{14, 5, 3, 15}; got != want {
		t.Errorf("PRG banks = %v, want %v", got, want)
	}

	for r, v := range []uint8{8, 11, 20, 21, 22, 23} {
		m.CPUWrite(0x8000, uint8(r))
		m.CPUWrite(0x8001, v)
	}
	if got, want := chrBanks(m), [8]uint8{8, 9, 10, 11, 20, 21, 22, 23}; got != want {
		t.Errorf("CHR banks = %v, want %v", got, want)
	}
	m.CPUWrite(0x8000, 0x80)
	if got, want := chrBanks(m), [8]uint8{20, 21, 22, 23, 8, 9, 10, 11}; got != want {
		t.Errorf("inverted CHR banks = %v, want %v", got, want)
	}

	m.CPUWrite(0xA000, 1)
	if m.Mirroring() != hwdefs.Horizontal {
		t.Errorf("mirroring = %v, want horizontal", m.Mirroring())
	}

	// PRG RAM protect.
	m.CPUWrite(0xA001, 0x80)
	m.CPUWrite(0x6000, 0x34)
	m.CPUWrite(0xA001, 0xC0)
	m.CPUWrite(0x6000, 0x56)
	if got := m.CPURead(0x6000, 0); got != 0x34 {
		t.Errorf("PRG RAM = %02x, want 34", got)
	}
}

// mmc3Scanline emulates the PPU fetches of a rendered scanline, with
// background patterns at $0000 and sprite patterns at $1000.
func mmc3Scanline(m Mapper) {
	// 341 dots = ~113 CPU cycles. Background fetches.
	for range 85 {
		m.PPURead(0x0000)
		m.Tick()
	}
	// Sprite fetches, A12 goes low for less than 3 CPU cycles between
	// each sprite.
	for range 8 {
		m.PPURead(0x1000)
		m.Tick()
		m.PPURead(0x1008)
		m.Tick()
		m.PPURead(0x0FF0) // garbage fetch
		m.Tick()
	}
	for range 4 {
		m.PPURead(0x0000)
		m.Tick()
	}
}

func TestMMC3IRQ(t *testing.T) {
	m := mustNew(t, testCart(4, 0x20000, 0x20000))

	m.CPUWrite(0xC000, 3) // latch
	m.CPUWrite(0xC001, 0) // reload
	m.CPUWrite(0xE001, 0) // enable

	var irqs []int
	for line := range 10 {
		mmc3Scanline(m)
		if m.IRQ() {
			irqs = append(irqs, line)
			m.CPUWrite(0xE000, 0) // acknowledge
			m.CPUWrite(0xE001, 0)
		}
	}

	// Reload at line 0, then 3, 2, 1, 0 -> IRQ at line 3, then reload to 3.
	want := []int{3, 7}
	if diff := cmp.Diff(want, irqs); diff != "" {
		t.Errorf("IRQ lines mismatch (-want +got):\n%s", diff)
	}

	// Disabled IRQs don't assert the line.
	m.CPUWrite(0xE000, 0)
	for range 10 {
		mmc3Scanline(m)
		if m.IRQ() {
			t.Fatalf("IRQ asserted while disabled")
		}
	}
}

func TestSaveRAM(t *testing.T) {
	cart := testCart(1, 0x40000, 0)
	cart.Battery = true
	cart.PRGNVRAMSize = 0x2000
	m := mustNew(t, cart)

	m.LoadRAM(KindPRG, []byte{1, 2, 3})
	if got := m.CPURead(0x6001, 0); got != 2 {
		t.Errorf("loaded PRG RAM[1] = %d, want 2", got)
	}

	m.CPUWrite(0x6003, 4)
	ram := m.SaveRAM()
	if len(ram) != 1 || len(ram[KindPRG]) != 0x2000 {
		t.Fatalf("SaveRAM() = %d kinds", len(ram))
	}
	if diff := cmp.Diff([]byte{1, 2, 3, 4}, ram[KindPRG][:4]); diff != "" {
		t.Errorf("SaveRAM() mismatch (-want +got):\n%s", diff)
	}

	// SaveRAM returns a copy.
	ram[KindPRG][0] = 0xFF
	if got := m.CPURead(0x6000, 0); got != 1 {
		t.Errorf("SaveRAM() shares memory with the mapper")
	}

	// Without battery there's nothing to save.
	if ram := mustNew(t, testCart(0, 0x8000, 0x2000)).SaveRAM(); ram != nil {
		t.Errorf("SaveRAM() without battery = %v", ram)
	}
}

func TestSaveRAMBatteryPart(t *testing.T) {
	// 8KB of PRG RAM, of which the first 2KB are battery-backed.
	cart := testCart(0, 0x8000, 0)
	cart.Battery = true
	cart.PRGRAMSize = 0x2000
	cart.PRGNVRAMSize = 0x800
	cart.CHRRAMSize = 0x2000
	cart.CHRNVRAMSize = 0x400
	m := mustNew(t, cart)

	m.CPUWrite(0x6000, 0x11)
	m.CPUWrite(0x67FF, 0x22)
	m.CPUWrite(0x6800, 0x33) // not battery-backed
	m.PPUWrite(0x0000, 0x44)

	ram := m.SaveRAM()
	prg, chr := ram[KindPRG], ram[KindCHR]
	if len(prg) != 0x800 || len(chr) != 0x400 {
		t.Fatalf("saved %d bytes of PRG RAM and %d bytes of CHR RAM, want 2048 and 1024", len(prg), len(chr))
	}
	if prg[0] != 0x11 || prg[0x7FF] != 0x22 || chr[0] != 0x44 {
		t.Errorf("saved PRG RAM [%02x ... %02x], CHR RAM [%02x ...]", prg[0], prg[0x7FF], chr[0])
	}
}

func TestSmallROMs(t *testing.T) {
	tests := []struct {
		name         string
		prgsz, chrsz int
	}{
		{"4KB PRG 512B CHR", 0x1000, 0x200},
		{"12KB PRG 1536B CHR", 0x3000, 0x600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := testCart(0, tt.prgsz, 0)
			for i := range cart.PRG {
				cart.PRG[i] = uint8(i)
			}
			cart.CHR = make([]byte, tt.chrsz)
			for i := range cart.CHR {
				cart.CHR[i] = uint8(i >> 1)
			}
			m := mustNew(t, cart)

			// Every address is readable. The ROM sizes are multiples of 512
			// bytes so, as the ROMs repeat, each byte reads as its address.
			for addr := 0x8000; addr <= 0xFFFF; addr++ {
				if got := m.CPURead(uint16(addr), 0); got != uint8(addr) {
					t.Fatalf("CPURead($%04X) = %02x, want %02x", addr, got, uint8(addr))
				}
			}
			for addr := 0x0000; addr < 0x2000; addr++ {
				if got := m.PPURead(uint16(addr)); got != uint8(addr>>1) {
					t.Fatalf("PPURead($%04X) = %02x, want %02x", addr, got, uint8(addr>>1))
				}
			}
		})
	}
}

func TestCPUOpenBus(t *testing.T) {
	cart := testCart(0, 0x8000, 0x2000)
	cart.PRGRAMSize = 0
	m := mustNew(t, cart)

	for _, addr := range []uint16{0x4020, 0x5000, 0x5FFF, 0x6000, 0x7FFF} {
		if got := m.CPURead(addr, 0x5A); got != 0x5A {
			t.Errorf("CPURead($%04X) = %02x, want open bus 5a", addr, got)
		}
		if got := m.CPUPeek(addr, 0x5A); got != 0x5A {
			t.Errorf("CPUPeek($%04X) = %02x, want open bus 5a", addr, got)
		}
	}
}

func TestHardReset(t *testing.T) {
	m := mustNew(t, testCart(2, 0x20000, 0))
	m.CPUWrite(0x8000, 3)

	m.Reset(hwdefs.SoftReset)
	if got, want := prgBanks(m), [4]uint8{6, 7, 14, 15}; got != want {
		t.Errorf("PRG banks after soft reset = %v, want %v", got, want)
	}

	m.Reset(hwdefs.HardReset)
	if got, want := prgBanks(m), [4]uint8{0, 1, 14, 15}; got != want {
		t.Errorf("PRG banks after hard reset = %v, want %v", got, want)
	}
}
