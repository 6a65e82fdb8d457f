// Package ppu implements the 2C02 (NTSC) and 2C07 (PAL) picture processing
// units, dot by dot.
//
// The PPU accesses the pattern tables through the Bus, which forwards to the
// cartridge. Nametable RAM, OAM and palette RAM are internal. The PPU drives
// the CPU NMI input, the system clock reads its level with NMILine after each
// CPU cycle.
package ppu

import (
	"nescore/emu/log"
	"nescore/hw/hwdefs"
)

const (
	NumDots = 341 // Number of PPU dots per scanline.

	postRenderLine = 240
)

// Bus gives access to the cartridge side of the PPU address space.
type Bus interface {
	PPURead(addr uint16) uint8 // $0000-$1FFF
	PPUWrite(addr uint16, val uint8)

	// Mirroring is queried on every nametable access, as mappers can change
	// it at any time.
	Mirroring() hwdefs.Mirroring
}

type PPU struct {
	bus    Bus
	log    log.ModLog
	region hwdefs.Region

	// Position in the frame. The pre-render line is the last one, it is
	// reported as -1 by Position.
	Scanline int
	Dot      int

	preRenderLine  int
	vblankLine     int
	masterClock    uint64
	masterDivider  uint64
	frameCount     uint64
	oddFrame       bool
	suppressVBlank bool
	ignoreWrites   bool // after a reset, until the end of vblank

	ctrl    uint8 // $2000
	mask    uint8 // $2001
	status  uint8 // $2002
	oamAddr uint8 // $2003

	// Loopy registers.
	v, t uint16
	x    uint8
	w    bool

	readBuf uint8 // PPUDATA read buffer

	// Open bus latch, each bit decays independently.
	openBus      uint8
	openBusStamp [8]uint64

	oam        [256]uint8
	palette    [32]uint8
	nametables [4][0x400]uint8

	bg      background
	sprites spriteUnit

	frames [2]Frame
	back   int // index of the frame being drawn
}

// New creates a PPU running with the timings of region params.
func New(bus Bus, params hwdefs.RegionParams, lg log.ModLog) *PPU {
	p := &PPU{
		bus:           bus,
		log:           lg,
		region:        params.Region,
		preRenderLine: params.Scanlines - 1,
		vblankLine:    params.VBlankScanline,
		masterDivider: params.PPUDivider,
	}
	p.palette = powerUpPalette
	p.Reset(hwdefs.HardReset)
	return p
}

// Reset reinitializes the PPU registers. Memories are left untouched. After a
// soft reset, writes to PPUCTRL, PPUMASK, PPUSCROLL and PPUADDR are ignored
// until the end of the next vblank.
func (p *PPU) Reset(soft bool) {
	p.ctrl = 0
	p.mask = 0
	p.w = false
	p.t = 0
	p.x = 0
	p.readBuf = 0
	p.oddFrame = false
	p.suppressVBlank = false
	p.ignoreWrites = soft

	if !soft {
		p.status = 0
		p.oamAddr = 0
		p.v = 0
		p.openBus = 0
		p.masterClock = 0
		p.Scanline = 0
		p.Dot = 0
	}

	p.bg = background{}
	p.sprites = spriteUnit{}

	p.log.InfoZ("reset").Bool("soft", soft).End()
}

// Run executes dots until the PPU master clock reaches runTo.
func (p *PPU) Run(runTo uint64) {
	for p.masterClock+p.masterDivider <= runTo {
		p.Tick()
		p.masterClock += p.masterDivider
	}
}

// Position returns the current scanline, -1 for the pre-render line, and dot.
func (p *PPU) Position() (scanline, dot int) {
	if p.Scanline == p.preRenderLine {
		return -1, p.Dot
	}
	return p.Scanline, p.Dot
}

// NMILine reports the level of the NMI output, which is high when vblank
// has started and NMI generation is enabled in PPUCTRL.
func (p *PPU) NMILine() bool {
	return p.ctrlBit(nmi) && p.statusBit(vblank)
}

// FrameCount returns the number of frames completed since power-up.
func (p *PPU) FrameCount() uint64 {
	return p.frameCount
}

// Frame returns the last completed frame. It's overwritten 2 frames later.
func (p *PPU) Frame() *Frame {
	return &p.frames[p.back^1]
}

func (p *PPU) renderingEnabled() bool {
	return p.maskBit(showBg) || p.maskBit(showSprites)
}

// Tick executes one PPU dot.
func (p *PPU) Tick() {
	switch {
	case p.Scanline < postRenderLine:
		p.renderDot(false)
	case p.Scanline == p.vblankLine:
		if p.Dot == 1 {
			p.startVBlank()
		}
	case p.Scanline == p.preRenderLine:
		if p.Dot == 1 {
			// Clear vblank, sprite0Hit and spriteOverflow
			const mask = 1<<vblank | 1<<sprite0Hit | 1<<spriteOverflow
			p.status &^= mask
			p.ignoreWrites = false
		}
		p.renderDot(true)
	}

	p.advance()
}

func (p *PPU) startVBlank() {
	if !p.suppressVBlank {
		p.status |= 1 << vblank
		p.log.DebugZ("vblank").Uint64("frame", p.frameCount).Bool("nmi", p.ctrlBit(nmi)).End()
	}
	p.suppressVBlank = false

	f := &p.frames[p.back]
	f.Emphasis = p.mask >> highlightRed
	f.Number = p.frameCount
	p.back ^= 1
	p.frameCount++
	p.oddFrame = !p.oddFrame
}

func (p *PPU) advance() {
	// On NTSC, the last dot of the pre-render line is skipped on odd frames
	// when rendering is enabled.
	if p.Scanline == p.preRenderLine && p.Dot == 339 && p.oddFrame &&
		p.region == hwdefs.NTSC && p.renderingEnabled() {
		p.Dot = 340
	}

	p.Dot++
	if p.Dot < NumDots {
		return
	}
	p.Dot = 0
	p.Scanline++
	if p.Scanline > p.preRenderLine {
		p.Scanline = 0
	}
}

// powerUpPalette is the content of the palette RAM at power-up, as observed
// on a real console.
var powerUpPalette = [32]uint8{
	0x09, 0x01, 0x00, 0x01, 0x00, 0x02, 0x02, 0x0D, 0x08, 0x10, 0x08, 0x24, 0x00, 0x00, 0x04, 0x2C,
	0x09, 0x01, 0x34, 0x03, 0x00, 0x04, 0x00, 0x14, 0x08, 0x3A, 0x00, 0x02, 0x00, 0x20, 0x2C, 0x08,
}
