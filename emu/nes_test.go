package emu

import (
	"context"
	"testing"

	"nescore/hw/hwdefs"
)

func TestOpenBus(t *testing.T) {
	c := newTestConsole(t, Options{})
	if err := c.InsertCartridge(context.Background(), buildROM(t, nil, romOpts{})); err != nil {
		t.Fatal(err)
	}
	nes := c.Hardware()
	nes.RAM()[0x10] = 0xFF

	tests := []struct {
		addr uint16
		want uint8
	}{
		{0x4000, 0xFF}, // write-only
		{0x4014, 0xFF}, // write-only
		{0x4016, 0xE0}, // controller bit 0, upper bits from the bus
		{0x4018, 0xFF}, // disabled test registers
		{0x401F, 0xFF},
		{0x4020, 0xFF}, // cartridge space without any chip
		{0x5000, 0xFF},
	}
	for _, tt := range tests {
		// Leave $FF on the data bus.
		nes.Read8(0x0010)
		if got := nes.Read8(tt.addr); got != tt.want {
			t.Errorf("Read8($%04X) = $%02X, want $%02X", tt.addr, got, tt.want)
		}
	}

	// RAM is mirrored 4 times.
	nes.Write8(0x1803, 0x42)
	if got := nes.RAM()[0x003]; got != 0x42 {
		t.Errorf("RAM[$003] = $%02X after writing $1803", got)
	}
}

func TestFrameTiming(t *testing.T) {
	tests := []struct {
		region string
		want   float64 // CPU cycles per frame
	}{
		{"ntsc", 341 * 262 / 3.0},
		{"pal", 341 * 312 / 3.2},
	}
	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.General.RegionOverride = tt.region
			c := newTestConsole(t, Options{Config: cfg})
			if err := c.InsertCartridge(context.Background(), buildROM(t, nil, romOpts{})); err != nil {
				t.Fatal(err)
			}
			nes := c.Hardware()

			runFrames(t, c, 1)
			start := nes.CPU.Cycles
			const nframes = 10
			runFrames(t, c, nframes)
			got := float64(nes.CPU.Cycles - start)

			// A frame ends within the instruction that reached vblank.
			want := tt.want * nframes
			if got < want-8 || got > want+8 {
				t.Errorf("%d frames took %.0f CPU cycles, want about %.0f", nframes, got, want)
			}
		})
	}
}

func TestRegionParams(t *testing.T) {
	for _, tt := range []struct {
		cart, override string
		want           hwdefs.Region
	}{
		{"ntsc", "", hwdefs.NTSC},
		{"pal", "", hwdefs.PAL},
		{"ntsc", "pal", hwdefs.PAL},
		{"pal", "ntsc", hwdefs.NTSC},
	} {
		cart, err := hwdefs.ParseRegion(tt.cart)
		if err != nil {
			t.Fatal(err)
		}
		cfg := DefaultConfig()
		cfg.General.RegionOverride = tt.override
		if got := cfg.Region(cart); got != tt.want {
			t.Errorf("cart %s, override %q: region %s, want %s", tt.cart, tt.override, got, tt.want)
		}
	}
}

func TestFrameClipping(t *testing.T) {
	for _, tt := range []struct {
		name       string
		pal        bool
		wantHeight int
	}{
		{"ntsc", false, hwdefs.ScreenHeight - 16},
		{"pal", true, hwdefs.ScreenHeight},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestConsole(t, Options{})
			if err := c.InsertCartridge(context.Background(), buildROM(t, nil, romOpts{pal: tt.pal})); err != nil {
				t.Fatal(err)
			}
			runFrames(t, c, 1)

			// One palette index per line, to check which lines are kept.
			frame := *c.Frame()
			for i := range frame.Pixels {
				frame.Pixels[i] = uint8(i/hwdefs.ScreenWidth) & 0x3F
			}

			params := c.Hardware().Params()
			img := frame.RGBA(params.ClipTopBottom)
			if got := img.Bounds().Dy(); got != tt.wantHeight {
				t.Fatalf("image height = %d, want %d", got, tt.wantHeight)
			}

			full, clipped := frame.RGBA(false), frame.RGBA(true)
			if full.Bounds().Dy() != hwdefs.ScreenHeight || clipped.Bounds().Dy() != hwdefs.ScreenHeight-16 {
				t.Fatalf("got heights %d (full) and %d (clipped)", full.Bounds().Dy(), clipped.Bounds().Dy())
			}
			for y := range clipped.Bounds().Dy() {
				if got, want := clipped.RGBAAt(0, y), full.RGBAAt(0, y+8); got != want {
					t.Fatalf("clipped line %d = %v, want line %d = %v", y, got, y+8, want)
				}
			}
		})
	}
}

func TestStepClocksEveryCycle(t *testing.T) {
	c := newTestConsole(t, Options{})
	if err := c.InsertCartridge(context.Background(), buildROM(t, nil, romOpts{})); err != nil {
		t.Fatal(err)
	}
	nes := c.Hardware()

	dots := func() int {
		line, dot := nes.PPU.Position()
		return line*341 + dot
	}

	// The first instructions are CLI (2 cycles), LDA #imm (2 cycles) and
	// STA zp (3 cycles).
	for _, cycles := range []int64{2, 2, 3} {
		cpu0, dots0 := nes.CPU.Cycles, dots()
		if err := c.Step(); err != nil {
			t.Fatal(err)
		}
		if got := nes.CPU.Cycles - cpu0; got != cycles {
			t.Errorf("instruction at cycle %d took %d cycles, want %d", cpu0, got, cycles)
		}
		if got := dots() - dots0; got != int(cycles)*3 {
			t.Errorf("instruction at cycle %d ran %d PPU dots, want %d", cpu0, got, cycles*3)
		}
	}
}
