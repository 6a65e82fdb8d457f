package ppu

import "nescore/hw/hwio"

const (
	// PPUCTRL bits
	// $2000

	// Nametable selection mask
	// (0 = $2000; 1 = $2400; 2 = $2800; 3 = $2C00)
	ntselect = 0b11

	// VRAM address increment per CPU read/write of PPUDATA
	// (0: +1 i.e. horizontal; 1: +32 i.e. vertical)
	vramIncr = 2

	// Sprite pattern table address for 8x8 sprites
	// (0: $0000; 1: $1000; ignored in 8x16 mode)
	spriteAddr = 3

	// Background pattern table address (0: $0000; 1: $1000)
	backgroundAddr = 4

	// Sprite size (0: 8x8 pixels; 1: 8x16 pixels)
	spriteSize = 5

	// Generate an NMI at the start of the
	// vertical blanking interval (0: off; 1: on)
	nmi = 7
)

const (
	// PPUMASK bits
	// $2001

	// Greyscale
	// (0: normal color, 1: produce a greyscale display)
	greyscale = 0

	// Show background in leftmost 8 pixels of screen
	leftmostBg = 1

	// Show sprites in leftmost 8 pixels of screen
	leftmostSprites = 2

	showBg      = 3
	showSprites = 4

	// Emphasis bits, red, green then blue (swapped on PAL).
	highlightRed = 5
)

const (
	// PPUSTATUS bits
	// $2002

	// Sprite overflow. Set during sprite evaluation when more than 8 sprites
	// are found on a scanline, cleared at dot 1 of the pre-render line.
	spriteOverflow = 5

	// Sprite 0 Hit. Set when a nonzero pixel of sprite 0 overlaps a nonzero
	// background pixel; cleared at dot 1 of the pre-render line.
	sprite0Hit = 6

	// Vertical blank has started. Set at dot 1 of line 241; cleared after
	// reading $2002 and at dot 1 of the pre-render line.
	vblank = 7
)

// Bits of the open bus latch decay to 0 when they haven't been refreshed for
// this number of frames (around 600ms).
const openBusDecayFrames = 36

func (p *PPU) ctrlBit(n uint) bool   { return hwio.GetBit8(p.ctrl, n) }
func (p *PPU) maskBit(n uint) bool   { return hwio.GetBit8(p.mask, n) }
func (p *PPU) statusBit(n uint) bool { return hwio.GetBit8(p.status, n) }

// ReadReg reads the register at addr ($2000-$3FFF, mirrored every 8 bytes).
func (p *PPU) ReadReg(addr uint16) uint8 {
	p.decayOpenBus()

	switch addr & 0x7 {
	case 2: // PPUSTATUS
		val := p.status&0xE0 | p.openBus&0x1F
		p.refreshOpenBus(val, 0xE0)

		p.status &^= 1 << vblank
		p.w = false
		if p.Scanline == p.vblankLine && p.Dot == 0 {
			// Reading one dot before vblank starts prevents it.
			p.suppressVBlank = true
		}
		return val

	case 4: // OAMDATA
		val := p.oam[p.oamAddr]
		if p.oamAddr&0x03 == 2 {
			// Unimplemented bits of the attribute byte.
			val &= 0xE3
		}
		p.refreshOpenBus(val, 0xFF)
		return val

	case 7: // PPUDATA
		addr := p.v & 0x3FFF
		var val uint8
		if addr >= 0x3F00 {
			// Palette reads are immediate, the upper 2 bits come from the
			// open bus. The buffer gets the nametable byte underneath.
			val = p.readPalette(addr)
			if p.maskBit(greyscale) {
				val &= 0x30
			}
			val |= p.openBus & 0xC0
			p.readBuf = p.readVRAM(addr - 0x1000)
			p.refreshOpenBus(val, 0x3F)
		} else {
			val = p.readBuf
			p.readBuf = p.readVRAM(addr)
			p.refreshOpenBus(val, 0xFF)
		}
		p.incVRAMAddr()
		return val
	}

	// Write-only registers.
	return p.openBus
}

// PeekReg returns the value ReadReg would return, without side effects.
func (p *PPU) PeekReg(addr uint16) uint8 {
	switch addr & 0x7 {
	case 2:
		return p.status&0xE0 | p.openBus&0x1F
	case 4:
		return p.oam[p.oamAddr]
	case 7:
		if p.v&0x3FFF >= 0x3F00 {
			return p.readPalette(p.v&0x3FFF) | p.openBus&0xC0
		}
		return p.readBuf
	}
	return p.openBus
}

// WriteReg writes the register at addr ($2000-$3FFF, mirrored every 8 bytes).
func (p *PPU) WriteReg(addr uint16, val uint8) {
	p.refreshOpenBus(val, 0xFF)

	switch addr & 0x7 {
	case 0:
		if p.ignoreWrites {
			return
		}
		p.writeCTRL(val)
	case 1:
		if p.ignoreWrites {
			return
		}
		p.log.DebugZ("Write to PPUMASK").Hex8("val", val).End()
		p.mask = val
	case 2:
		// Read-only.
	case 3:
		p.oamAddr = val
	case 4:
		p.writeOAMData(val)
	case 5:
		if p.ignoreWrites {
			return
		}
		p.writeSCROLL(val)
	case 6:
		if p.ignoreWrites {
			return
		}
		p.writeADDR(val)
	case 7:
		p.writeDATA(val)
	}
}

// PPUCTRL: $2000
func (p *PPU) writeCTRL(val uint8) {
	p.log.DebugZ("Write to PPUCTRL").Hex8("val", val).End()

	// By toggling the nmi bit during vblank without reading PPUSTATUS, a
	// program can cause multiple NMIs to be generated. This follows from
	// NMILine being computed from both bits.
	p.ctrl = val

	// Transfer the nametable bits.
	p.t &^= ntselect << 10
	p.t |= (uint16(val) & ntselect) << 10
}

// OAMDATA: $2004
func (p *PPU) writeOAMData(val uint8) {
	if p.renderingEnabled() && (p.Scanline < postRenderLine || p.Scanline == p.preRenderLine) {
		// Writes during rendering don't modify OAM, but increment the high 6
		// bits of OAMADDR.
		p.oamAddr += 4
		return
	}
	p.oam[p.oamAddr] = val
	p.oamAddr++
}

// WriteOAM writes one byte to OAM at OAMADDR, this is how OAM DMA transfers
// reach the PPU.
func (p *PPU) WriteOAM(val uint8) {
	p.writeOAMData(val)
}

// PPUSCROLL: $2005
func (p *PPU) writeSCROLL(val uint8) {
	p.log.DebugZ("Write to PPUSCROLL").Hex8("val", val).Bool("second", p.w).End()

	if !p.w { // first write
		p.x = val & 0b111
		p.t &^= 0b1_1111
		p.t |= uint16(val >> 3)
	} else { // second write
		p.t &^= 0b0111_0011_1110_0000
		p.t |= uint16(val&0b111) << 12
		p.t |= uint16(val&0b1111_1000) << 2
	}

	p.w = !p.w
}

// To read/write VRAM from CPU, PPUADDR is set to the address of the operation.
// It's a 16-bit register so 2 writes are necessary.
// PPUADDR: $2006
func (p *PPU) writeADDR(val uint8) {
	if !p.w { // first write
		p.t &^= 0b0111_1111_0000_0000
		p.t |= uint16(val&0b11_1111) << 8 // bit 14 is cleared
	} else { // second write
		p.t &^= 0xff
		p.t |= uint16(val)
		p.v = p.t
		p.log.DebugZ("VRAM address").Hex16("v", p.v).End()
	}

	p.w = !p.w
}

// PPUDATA: $2007
func (p *PPU) writeDATA(val uint8) {
	addr := p.v & 0x3FFF
	p.writeVRAM(addr, val)
	p.incVRAMAddr()

	p.log.DebugZ("VRAM write").
		Hex16("addr", addr).
		Hex8("val", val).
		End()
}

// After each access to PPUDATA, the VRAM address is incremented. During
// rendering, both coarse X and Y are incremented instead.
func (p *PPU) incVRAMAddr() {
	if p.renderingEnabled() && (p.Scanline < postRenderLine || p.Scanline == p.preRenderLine) {
		p.incCoarseX()
		p.incY()
		return
	}

	if p.ctrlBit(vramIncr) {
		p.v += 32
	} else {
		p.v++
	}
	p.v &= 0x7FFF
}

func (p *PPU) refreshOpenBus(val, mask uint8) {
	for i := range 8 {
		if mask&(1<<i) != 0 {
			p.openBusStamp[i] = p.frameCount
		}
	}
	p.openBus = p.openBus&^mask | val&mask
}

func (p *PPU) decayOpenBus() {
	for i := range 8 {
		if p.frameCount-p.openBusStamp[i] > openBusDecayFrames {
			p.openBus &^= 1 << i
		}
	}
}

/* internal address space */

func (p *PPU) readVRAM(addr uint16) uint8 {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		return p.bus.PPURead(addr)
	case addr < 0x3F00:
		return *p.nametable(addr)
	default:
		return p.readPalette(addr)
	}
}

func (p *PPU) writeVRAM(addr uint16, val uint8) {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		p.bus.PPUWrite(addr, val)
	case addr < 0x3F00:
		*p.nametable(addr) = val
	default:
		p.palette[paletteIndex(addr)] = val & 0x3F
	}
}

// nametable returns the byte backing addr ($2000-$3EFF) given the current
// mirroring.
func (p *PPU) nametable(addr uint16) *uint8 {
	areas := p.bus.Mirroring().Areas()
	logical := (addr >> 10) & 0x3
	return &p.nametables[areas[logical]][addr&0x3FF]
}

func (p *PPU) readPalette(addr uint16) uint8 {
	return p.palette[paletteIndex(addr)]
}

// $3F10/$3F14/$3F18/$3F1C mirror $3F00/$3F04/$3F08/$3F0C.
func paletteIndex(addr uint16) uint16 {
	idx := addr & 0x1F
	if idx&0x13 == 0x10 {
		idx &^= 0x10
	}
	return idx
}
