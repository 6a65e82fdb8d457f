package ppu

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"nescore/emu/log"
	"nescore/hw/hwdefs"
)

type testBus struct {
	chr       [0x2000]uint8
	mirroring hwdefs.Mirroring
}

func (b *testBus) PPURead(addr uint16) uint8       { return b.chr[addr&0x1FFF] }
func (b *testBus) PPUWrite(addr uint16, val uint8) { b.chr[addr&0x1FFF] = val }
func (b *testBus) Mirroring() hwdefs.Mirroring     { return b.mirroring }

func newTestPPU(region hwdefs.Region) (*PPU, *testBus) {
	bus := &testBus{mirroring: hwdefs.Horizontal}
	return New(bus, hwdefs.Params(region), log.ModLog{}), bus
}

// tickUntil ticks the PPU until cond is true and returns the number of
// executed dots.
func tickUntil(tb testing.TB, p *PPU, cond func() bool) int {
	tb.Helper()
	const maxDots = 341 * 312 * 4
	for n := range maxDots {
		if cond() {
			return n
		}
		p.Tick()
	}
	tb.Fatalf("condition not reached after %d dots", maxDots)
	return 0
}

func TestPPUScroll(t *testing.T) {
	ppu, _ := newTestPPU(hwdefs.NTSC)

	ppu.t = 0x7fff

	// Write to PPUCTRL
	ppu.WriteReg(0x2000, 0)
	if got := (ppu.t >> 10) & 0b11; got != 0b00 {
		t.Errorf("t.nametable = 0b%02b, want 0b00", got)
	}

	// Read from PPUSTATUS
	_ = ppu.ReadReg(0x2002)
	if ppu.w {
		t.Errorf("w = %t, want false", ppu.w)
	}

	// First write to PPUSCROLL
	ppu.WriteReg(0x2005, 0b01111_101)
	if got := ppu.t & 0b11111; got != 0b01111 {
		t.Errorf("t.coarsex = 0b%05b, want 0b01111", got)
	}
	if ppu.x != 0b101 {
		t.Errorf("finex = 0b%03b, want 0b101", ppu.x)
	}
	if !ppu.w {
		t.Errorf("w = %t, want true", ppu.w)
	}

	// Second write to PPUSCROLL
	ppu.WriteReg(0x2005, 0b01_011_110)
	if got := (ppu.t >> 5) & 0b11111; got != 0b01011 {
		t.Errorf("t.coarsey = 0b%05b, want 0b01011", got)
	}
	if got := (ppu.t >> 12) & 0b111; got != 0b110 {
		t.Errorf("t.finey = 0b%03b, want 0b110", got)
	}
	if ppu.w {
		t.Errorf("w = %t, want false", ppu.w)
	}

	// First write to PPUADDR, bit 14 of t gets set to zero
	ppu.WriteReg(0x2006, 0b00_111101)
	if ppu.t != 0b0111101_01101111 {
		t.Errorf("t = %015b, want 0b0111101_01101111", ppu.t)
	}

	// Second write to PPUADDR
	ppu.WriteReg(0x2006, 0b11110000)
	if ppu.t != 0b0111101_11110000 {
		t.Errorf("t = %015b, want 0b0111101_11110000", ppu.t)
	}
	// After t is updated, contents of t copied into v
	if ppu.t != ppu.v {
		t.Errorf("v != t")
	}
}

func setAddr(p *PPU, addr uint16) {
	p.WriteReg(0x2006, uint8(addr>>8))
	p.WriteReg(0x2006, uint8(addr))
}

func TestPPUDATA(t *testing.T) {
	ppu, bus := newTestPPU(hwdefs.NTSC)

	setAddr(ppu, 0x2400)
	for _, v := range []uint8{0x11, 0x22, 0x33} {
		ppu.WriteReg(0x2007, v)
	}

	// Reads are delayed by one.
	setAddr(ppu, 0x2400)
	var got []uint8
	for range 4 {
		got = append(got, ppu.ReadReg(0x2007))
	}
	if diff := cmp.Diff([]uint8{0x00, 0x11, 0x22, 0x33}, got); diff != "" {
		t.Errorf("PPUDATA reads mismatch (-want +got):\n%s", diff)
	}

	// Increment by 32.
	ppu.WriteReg(0x2000, 1<<vramIncr)
	setAddr(ppu, 0x2000)
	ppu.WriteReg(0x2007, 0xAA)
	ppu.WriteReg(0x2007, 0xBB)
	if ppu.v != 0x2040 {
		t.Errorf("v = $%04X, want $2040", ppu.v)
	}
	if ppu.nametables[0][0x20] != 0xBB {
		t.Errorf("nametable[$20] = $%02X, want $BB", ppu.nametables[0][0x20])
	}

	// Pattern tables are on the cartridge.
	ppu.WriteReg(0x2000, 0)
	setAddr(ppu, 0x1234)
	ppu.WriteReg(0x2007, 0x5A)
	if bus.chr[0x1234] != 0x5A {
		t.Errorf("chr[$1234] = $%02X, want $5A", bus.chr[0x1234])
	}

	// Palette reads are not buffered.
	setAddr(ppu, 0x3F01)
	ppu.WriteReg(0x2007, 0x2C)
	setAddr(ppu, 0x3F01)
	if got := ppu.ReadReg(0x2007) & 0x3F; got != 0x2C {
		t.Errorf("palette read = $%02X, want $2C", got)
	}
}

func TestPaletteMirrors(t *testing.T) {
	ppu, _ := newTestPPU(hwdefs.NTSC)

	for _, addr := range []uint16{0x3F10, 0x3F14, 0x3F18, 0x3F1C} {
		setAddr(ppu, addr)
		ppu.WriteReg(0x2007, uint8(addr))

		if got := ppu.readPalette(addr - 0x10); got != uint8(addr)&0x3F {
			t.Errorf("palette[$%04X] = $%02X, want $%02X", addr-0x10, got, uint8(addr)&0x3F)
		}
	}

	// Upper mirrors of the palette.
	setAddr(ppu, 0x3FE5)
	ppu.WriteReg(0x2007, 0x17)
	if got := ppu.palette[5]; got != 0x17 {
		t.Errorf("palette[5] = $%02X, want $17", got)
	}
}

func TestNametableMirroring(t *testing.T) {
	tests := []struct {
		mirroring hwdefs.Mirroring
		// address aliased with $2000
		alias, distinct uint16
	}{
		{hwdefs.Horizontal, 0x2400, 0x2800},
		{hwdefs.Vertical, 0x2800, 0x2400},
		{hwdefs.SingleScreen0, 0x2C00, 0x0000},
		{hwdefs.FourScreen, 0x3000, 0x2C00},
	}
	for _, tt := range tests {
		t.Run(tt.mirroring.String(), func(t *testing.T) {
			ppu, bus := newTestPPU(hwdefs.NTSC)
			bus.mirroring = tt.mirroring

			setAddr(ppu, 0x2005)
			ppu.WriteReg(0x2007, 0x42)

			if got := *ppu.nametable(tt.alias + 5); got != 0x42 {
				t.Errorf("$%04X = $%02X, want $42", tt.alias+5, got)
			}
			if tt.distinct != 0 {
				if got := *ppu.nametable(tt.distinct + 5); got != 0 {
					t.Errorf("$%04X = $%02X, want $00", tt.distinct+5, got)
				}
			}
		})
	}
}

func TestOAMDATA(t *testing.T) {
	ppu, _ := newTestPPU(hwdefs.NTSC)

	ppu.WriteReg(0x2003, 0x10)
	for _, v := range []uint8{0x20, 0x01, 0xFF, 0x30} {
		ppu.WriteReg(0x2004, v)
	}
	if diff := cmp.Diff([]uint8{0x20, 0x01, 0xFF, 0x30}, ppu.oam[0x10:0x14]); diff != "" {
		t.Errorf("OAM mismatch (-want +got):\n%s", diff)
	}

	// Bits 2-4 of the attribute byte are not implemented.
	ppu.WriteReg(0x2003, 0x12)
	if got := ppu.ReadReg(0x2004); got != 0xE3 {
		t.Errorf("OAMDATA = $%02X, want $E3", got)
	}

	ppu.WriteReg(0x2003, 0xFF)
	ppu.WriteOAM(0x99)
	if ppu.oam[0xFF] != 0x99 || ppu.oamAddr != 0 {
		t.Errorf("WriteOAM: oam[$FF] = $%02X, OAMADDR = $%02X", ppu.oam[0xFF], ppu.oamAddr)
	}
}

func TestOpenBus(t *testing.T) {
	ppu, _ := newTestPPU(hwdefs.NTSC)

	ppu.WriteReg(0x2003, 0xAB)
	// Write-only registers return the last written value.
	if got := ppu.ReadReg(0x2000); got != 0xAB {
		t.Errorf("PPUCTRL read = $%02X, want $AB", got)
	}
	if got := ppu.ReadReg(0x3FF9); got != 0xAB {
		t.Errorf("PPUMASK mirror read = $%02X, want $AB", got)
	}
	// Low 5 bits of PPUSTATUS.
	if got := ppu.ReadReg(0x2002) & 0x1F; got != 0x0B {
		t.Errorf("PPUSTATUS low bits = $%02X, want $0B", got)
	}

	// Not refreshed for long, the bits decay.
	ppu.frameCount += openBusDecayFrames + 1
	if got := ppu.ReadReg(0x2001); got != 0 {
		t.Errorf("decayed open bus = $%02X, want $00", got)
	}
}

func TestVBlankNMI(t *testing.T) {
	ppu, _ := newTestPPU(hwdefs.NTSC)
	ppu.WriteReg(0x2000, 1<<nmi)

	tickUntil(t, ppu, func() bool { return ppu.statusBit(vblank) })
	if sl, dot := ppu.Position(); sl != 241 || dot != 2 {
		t.Errorf("vblank set at %d,%d, want 241,2", sl, dot)
	}
	if !ppu.NMILine() {
		t.Fatal("NMI line should be asserted")
	}

	// Toggling NMI generation during vblank toggles the line.
	ppu.WriteReg(0x2000, 0)
	if ppu.NMILine() {
		t.Fatal("NMI line should be released")
	}
	ppu.WriteReg(0x2000, 1<<nmi)
	if !ppu.NMILine() {
		t.Fatal("NMI line should be asserted again")
	}

	// Reading PPUSTATUS clears vblank.
	if got := ppu.ReadReg(0x2002); got&0x80 == 0 {
		t.Errorf("PPUSTATUS = $%02X, vblank bit not set", got)
	}
	if ppu.NMILine() || ppu.statusBit(vblank) {
		t.Errorf("vblank not cleared by PPUSTATUS read")
	}

	// vblank is also cleared on the pre-render line.
	tickUntil(t, ppu, func() bool { return ppu.statusBit(vblank) })
	tickUntil(t, ppu, func() bool { return !ppu.statusBit(vblank) })
	if sl, dot := ppu.Position(); sl != -1 || dot != 2 {
		t.Errorf("vblank cleared at %d,%d, want -1,2", sl, dot)
	}
}

func TestVBlankSuppression(t *testing.T) {
	ppu, _ := newTestPPU(hwdefs.NTSC)
	ppu.WriteReg(0x2000, 1<<nmi)

	tickUntil(t, ppu, func() bool { return ppu.Scanline == 241 && ppu.Dot == 0 })
	ppu.ReadReg(0x2002)

	frame := ppu.FrameCount()
	tickUntil(t, ppu, func() bool { return ppu.FrameCount() != frame })
	if ppu.statusBit(vblank) || ppu.NMILine() {
		t.Errorf("vblank should have been suppressed")
	}
}

func TestFrameTiming(t *testing.T) {
	tests := []struct {
		name    string
		region  hwdefs.Region
		mask    uint8
		lengths []int
	}{
		{"ntsc/rendering", hwdefs.NTSC, 0x18, []int{341*262 - 1, 341 * 262, 341*262 - 1}},
		{"ntsc/no-rendering", hwdefs.NTSC, 0x00, []int{341 * 262, 341 * 262, 341 * 262}},
		{"pal/rendering", hwdefs.PAL, 0x18, []int{341 * 312, 341 * 312, 341 * 312}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ppu, _ := newTestPPU(tt.region)
			ppu.WriteReg(0x2001, tt.mask)

			tickUntil(t, ppu, func() bool { return ppu.FrameCount() == 1 })

			var lengths []int
			for i := range tt.lengths {
				n := tickUntil(t, ppu, func() bool { return ppu.FrameCount() == uint64(i+2) })
				lengths = append(lengths, n)
			}
			if diff := cmp.Diff(tt.lengths, lengths); diff != "" {
				t.Errorf("frame lengths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// setupSolidBackground fills all nametables with a tile whose pixels all
// have color 1, rendered as $21.
func setupSolidBackground(p *PPU, bus *testBus) {
	for i := range 8 {
		bus.chr[0x10+i] = 0xFF // tile 1, plane 0
	}
	for i := range p.nametables {
		for j := range 0x3C0 {
			p.nametables[i][j] = 1
		}
	}
	p.palette[0] = 0x0F
	p.palette[1] = 0x21

	for i := range p.oam {
		p.oam[i] = 0xFF
	}
}

func TestBackgroundRendering(t *testing.T) {
	ppu, bus := newTestPPU(hwdefs.NTSC)
	setupSolidBackground(ppu, bus)
	ppu.WriteReg(0x2001, 1<<showBg|1<<leftmostBg)

	tickUntil(t, ppu, func() bool { return ppu.FrameCount() == 2 })

	frame := ppu.Frame()
	for y := range hwdefs.ScreenHeight {
		for x := range hwdefs.ScreenWidth {
			if got := frame.At(x, y); got != 0x21 {
				t.Fatalf("pixel (%d,%d) = $%02X, want $21", x, y, got)
			}
		}
	}

	// Hiding the leftmost column shows the backdrop there.
	ppu.WriteReg(0x2001, 1<<showBg)
	tickUntil(t, ppu, func() bool { return ppu.FrameCount() == 3 })
	frame = ppu.Frame()
	if got := frame.At(3, 100); got != 0x0F {
		t.Errorf("pixel (3,100) = $%02X, want $0F", got)
	}
	if got := frame.At(8, 100); got != 0x21 {
		t.Errorf("pixel (8,100) = $%02X, want $21", got)
	}

	// Greyscale.
	ppu.WriteReg(0x2001, 1<<showBg|1<<leftmostBg|1<<greyscale)
	tickUntil(t, ppu, func() bool { return ppu.FrameCount() == 4 })
	if got := ppu.Frame().At(100, 100); got != 0x20 {
		t.Errorf("greyscale pixel = $%02X, want $20", got)
	}
}

func TestSprite0Hit(t *testing.T) {
	ppu, bus := newTestPPU(hwdefs.NTSC)
	setupSolidBackground(ppu, bus)
	copy(ppu.oam[:4], []uint8{50, 1, 0, 60}) // y, tile, attributes, x
	ppu.WriteReg(0x2001, 1<<showBg|1<<showSprites|1<<leftmostBg|1<<leftmostSprites)

	tickUntil(t, ppu, func() bool { return ppu.statusBit(sprite0Hit) })

	// The sprite is displayed one line below its Y coordinate, pixel 60 is
	// output at dot 61.
	if sl, dot := ppu.Position(); sl != 51 || dot != 62 {
		t.Errorf("sprite 0 hit at %d,%d, want 51,62", sl, dot)
	}

	tickUntil(t, ppu, func() bool { return !ppu.statusBit(sprite0Hit) })
	if sl, dot := ppu.Position(); sl != -1 || dot != 2 {
		t.Errorf("sprite 0 hit cleared at %d,%d, want -1,2", sl, dot)
	}
}

func TestSpriteOverflow(t *testing.T) {
	for _, tt := range []struct {
		nsprites int
		want     bool
	}{
		{8, false},
		{9, true},
	} {
		ppu, bus := newTestPPU(hwdefs.NTSC)
		setupSolidBackground(ppu, bus)
		for i := range tt.nsprites {
			copy(ppu.oam[i*4:], []uint8{100, 0, 0, uint8(i * 8)})
		}
		ppu.WriteReg(0x2001, 1<<showBg|1<<showSprites)

		tickUntil(t, ppu, func() bool { return ppu.Scanline == 102 })
		if got := ppu.statusBit(spriteOverflow); got != tt.want {
			t.Errorf("%d sprites: overflow = %t, want %t", tt.nsprites, got, tt.want)
		}
	}
}

func TestSpriteRendering(t *testing.T) {
	ppu, bus := newTestPPU(hwdefs.NTSC)
	// Tile 2: left half color 3.
	for i := range 8 {
		bus.chr[0x20+i] = 0xF0
		bus.chr[0x28+i] = 0xF0
	}
	for i := range ppu.oam {
		ppu.oam[i] = 0xFF
	}
	ppu.palette[0] = 0x0F
	ppu.palette[0x17] = 0x16 // sprite palette 1, color 3

	// sprite 0 flipped horizontally, with palette 1.
	copy(ppu.oam[:4], []uint8{20, 2, 0x41, 100})
	ppu.WriteReg(0x2001, 1<<showSprites|1<<leftmostSprites)

	tickUntil(t, ppu, func() bool { return ppu.FrameCount() == 2 })
	frame := ppu.Frame()

	for x := 100; x < 108; x++ {
		want := uint8(0x0F)
		if x >= 104 {
			want = 0x16
		}
		for y := 21; y < 29; y++ {
			if got := frame.At(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = $%02X, want $%02X", x, y, got, want)
			}
		}
	}
	if got := frame.At(104, 20); got != 0x0F {
		t.Errorf("pixel above the sprite = $%02X, want $0F", got)
	}
	if ppu.statusBit(sprite0Hit) {
		t.Errorf("sprite 0 hit without background")
	}
}

func TestFrameRGBA(t *testing.T) {
	var f Frame
	f.Pixels[8*256+3] = 0x21

	img := f.RGBA(true)
	if b := img.Bounds(); b.Dx() != 256 || b.Dy() != 224 {
		t.Fatalf("clipped image size = %v, want 256x224", b)
	}
	if got := img.RGBAAt(3, 0); got != Palette[0x21] {
		t.Errorf("pixel = %v, want %v", got, Palette[0x21])
	}
	if got := f.RGBA(false).RGBAAt(3, 8); got != Palette[0x21] {
		t.Errorf("pixel = %v, want %v", got, Palette[0x21])
	}
}
