package emu

import (
	"bytes"
	"context"
	"testing"

	"nescore/hw/ppu"
	"nescore/ines"
)

// Addresses of the interrupt handlers of the test program.
const (
	nmiHandler = 0xC100
	irqHandler = 0xC200
)

// Zero page counters incremented by the test program.
const (
	loopCounter = 0x10
	irqCounter  = 0x11
	nmiCounter  = 0x12
)

type romOpts struct {
	mapper  uint8
	battery bool
	pal     bool
}

// buildROM assembles an NROM-like image running prologue then:
//
//	     CLI
//	     LDA #$00
//	     STA $10
//	loop INC $10
//	     JMP loop
//
// The NMI handler increments $12, the IRQ handler increments $11 and
// acknowledges the frame counter interrupt by reading $4015.
func buildROM(t *testing.T, prologue []byte, opts romOpts) *ines.Cartridge {
	t.Helper()

	prg := make([]byte, 0x4000)
	pc := 0
	emit := func(b ...byte) {
		pc += copy(prg[pc:], b)
	}

	emit(prologue...)
	emit(0x58)              // CLI
	emit(0xA9, 0x00)        // LDA #$00
	emit(0x85, loopCounter) // STA $10
	loop := 0xC000 + pc
	emit(0xE6, loopCounter)                 // INC $10
	emit(0x4C, uint8(loop), uint8(loop>>8)) // JMP loop

	copy(prg[nmiHandler-0xC000:], []byte{
		0xE6, nmiCounter, // INC $12
		0x40,             // RTI
	})
	copy(prg[irqHandler-0xC000:], []byte{
		0xE6, irqCounter, // INC $11
		0xAD, 0x15, 0x40, // LDA $4015
		0x40,             // RTI
	})

	// Vectors.
	copy(prg[0x3FFA:], []byte{
		nmiHandler & 0xFF, nmiHandler >> 8,
		0x00, 0xC0,
		irqHandler & 0xFF, irqHandler >> 8,
	})

	hdr := []byte{'N', 'E', 'S', 0x1A, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	hdr[6] = opts.mapper << 4
	hdr[7] = opts.mapper & 0xF0
	if opts.battery {
		hdr[6] |= 0x02
	}
	if opts.pal {
		hdr[9] = 0x01
	}

	var buf bytes.Buffer
	buf.Write(hdr)
	buf.Write(prg)
	buf.Write(make([]byte, 0x2000)) // CHR

	cart, err := ines.Decode(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	return cart
}

func newTestConsole(t *testing.T, opts Options) *Console {
	t.Helper()
	if opts.Config == (Config{}) {
		opts.Config = DefaultConfig()
	}
	c, err := NewConsole(opts)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func runFrames(t *testing.T, c *Console, n int) {
	t.Helper()
	for range n {
		if err := c.RunFrame(context.Background()); err != nil {
			t.Fatal(err)
		}
	}
}

type frameCounter struct {
	frames []uint64
	err    error
}

func (fc *frameCounter) WriteFrame(f *ppu.Frame) error {
	fc.frames = append(fc.frames, f.Number)
	return fc.err
}

type sampleCounter struct {
	calls   int
	samples int
}

func (sc *sampleCounter) WriteSamples(s []int16) error {
	sc.calls++
	sc.samples += len(s)
	return nil
}
