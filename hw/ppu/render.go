package ppu

// background holds the tile fetch latches and shift registers.
type background struct {
	ntByte, atByte    uint8
	lowTile, highTile uint8

	patternLo, patternHi uint16
	attrLo, attrHi       uint16
}

const maxSprites = 8

// spriteUnit holds the 8 sprites of the current scanline, as selected by
// evaluation on the previous line.
type spriteUnit struct {
	count   int
	ids     [maxSprites]uint8 // OAM index
	x       [maxSprites]uint8
	attr    [maxSprites]uint8
	rows    [maxSprites]uint8 // row of the sprite pattern to fetch
	tiles   [maxSprites]uint8
	lo, hi  [maxSprites]uint8 // pattern bits, already flipped
	visible int               // sprites found on the line being fetched
	next    [maxSprites]uint8 // OAM index of the sprites for the next line
	nextRow [maxSprites]uint8
}

// renderDot executes a visible or pre-render dot. The fetch pipeline
// follows the real PPU closely enough for mapper IRQ counters relying on
// the pattern table address lines.
func (p *PPU) renderDot(pre bool) {
	dot := p.Dot
	rendering := p.renderingEnabled()

	if rendering {
		if (dot >= 2 && dot < 258) || (dot >= 321 && dot < 338) {
			p.shiftBackground()

			switch (dot - 1) % 8 {
			case 0:
				p.loadShifters()
				p.bg.ntByte = p.readVRAM(0x2000 | p.v&0x0FFF)
			case 2:
				p.fetchAttribute()
			case 4:
				p.bg.lowTile = p.readVRAM(p.bgPatternAddr())
			case 6:
				p.bg.highTile = p.readVRAM(p.bgPatternAddr() + 8)
			case 7:
				p.incCoarseX()
			}
		}

		switch {
		case dot == 256:
			p.incY()
		case dot == 257:
			p.loadShifters()
			p.copyX()
			p.evaluateSprites(pre)
			p.fetchSprite(0)
		case dot > 257 && dot <= 320:
			p.fetchSprite(dot - 257)
		case dot == 338 || dot == 340:
			// Unused nametable fetches.
			p.bg.ntByte = p.readVRAM(0x2000 | p.v&0x0FFF)
		}

		if pre && dot >= 280 && dot <= 304 {
			p.copyY()
		}
	}

	if !pre && dot >= 1 && dot <= 256 {
		p.renderPixel(dot-1, rendering)
	}
}

func (p *PPU) bgPatternAddr() uint16 {
	base := uint16(0)
	if p.ctrlBit(backgroundAddr) {
		base = 0x1000
	}
	return base + uint16(p.bg.ntByte)<<4 + (p.v>>12)&0x7
}

func (p *PPU) fetchAttribute() {
	addr := 0x23C0 | (p.v & 0x0C00) | ((p.v >> 4) & 0x38) | ((p.v >> 2) & 0x07)
	at := p.readVRAM(addr)
	if p.v&0x40 != 0 {
		at >>= 4
	}
	if p.v&0x02 != 0 {
		at >>= 2
	}
	p.bg.atByte = at & 0x03
}

func (p *PPU) loadShifters() {
	bg := &p.bg
	bg.patternLo = bg.patternLo&0xFF00 | uint16(bg.lowTile)
	bg.patternHi = bg.patternHi&0xFF00 | uint16(bg.highTile)
	bg.attrLo = bg.attrLo&0xFF00 | uint16(bg.atByte&1)*0xFF
	bg.attrHi = bg.attrHi&0xFF00 | uint16(bg.atByte>>1)*0xFF
}

func (p *PPU) shiftBackground() {
	p.bg.patternLo <<= 1
	p.bg.patternHi <<= 1
	p.bg.attrLo <<= 1
	p.bg.attrHi <<= 1
}

/* loopy scrolling */

func (p *PPU) incCoarseX() {
	if p.v&0x001F == 31 {
		p.v &^= 0x001F
		p.v ^= 0x0400 // switch horizontal nametable
	} else {
		p.v++
	}
}

func (p *PPU) incY() {
	if p.v&0x7000 != 0x7000 {
		p.v += 0x1000 // fine Y
		return
	}

	p.v &^= 0x7000
	y := (p.v & 0x03E0) >> 5
	switch y {
	case 29:
		y = 0
		p.v ^= 0x0800 // switch vertical nametable
	case 31:
		y = 0
	default:
		y++
	}
	p.v = p.v&^0x03E0 | y<<5
}

func (p *PPU) copyX() {
	p.v = p.v&0xFBE0 | p.t&0x041F
}

func (p *PPU) copyY() {
	p.v = p.v&0x841F | p.t&0x7BE0
}

/* sprites */

func (p *PPU) spriteHeight() int {
	if p.ctrlBit(spriteSize) {
		return 16
	}
	return 8
}

// evaluateSprites selects the first 8 sprites in OAM order which are in range
// of the next scanline. No sprites are ever in range on the line following
// the pre-render line.
func (p *PPU) evaluateSprites(pre bool) {
	sp := &p.sprites
	sp.visible = 0
	if pre {
		return
	}

	h := p.spriteHeight()
	for i := range 64 {
		y := int(p.oam[i*4])
		row := p.Scanline - y
		if row < 0 || row >= h {
			continue
		}
		if sp.visible == maxSprites {
			p.status |= 1 << spriteOverflow
			break
		}
		sp.next[sp.visible] = uint8(i)
		sp.nextRow[sp.visible] = uint8(row)
		sp.visible++
	}
}

// fetchSprite runs the sprite fetches of dots 257-320, 8 dots per sprite
// slot. Empty slots fetch tile $FF.
func (p *PPU) fetchSprite(n int) {
	slot, step := n/8, n%8
	if slot >= maxSprites {
		return
	}
	sp := &p.sprites

	switch step {
	case 0:
		// New sprites become current for the next line.
		if slot == 0 {
			sp.count = sp.visible
		}
		if slot < sp.visible {
			i := int(sp.next[slot])
			sp.ids[slot] = uint8(i)
			sp.tiles[slot] = p.oam[i*4+1]
			sp.attr[slot] = p.oam[i*4+2]
			sp.x[slot] = p.oam[i*4+3]
			sp.rows[slot] = sp.nextRow[slot]
		} else {
			sp.tiles[slot] = 0xFF
			sp.attr[slot] = 0
			sp.rows[slot] = 0
		}
	case 4:
		sp.lo[slot] = p.fetchSpritePattern(slot, 0)
	case 6:
		sp.hi[slot] = p.fetchSpritePattern(slot, 8)
	}
}

func (p *PPU) fetchSpritePattern(slot int, plane uint16) uint8 {
	sp := &p.sprites
	tile := uint16(sp.tiles[slot])
	row := uint16(sp.rows[slot])
	attr := sp.attr[slot]
	h := uint16(p.spriteHeight())

	if attr&0x80 != 0 { // vertical flip
		row = h - 1 - row
	}

	var addr uint16
	if h == 16 {
		table := (tile & 1) * 0x1000
		tile &^= 1
		if row >= 8 {
			tile++
			row -= 8
		}
		addr = table + tile<<4 + row
	} else {
		var table uint16
		if p.ctrlBit(spriteAddr) {
			table = 0x1000
		}
		addr = table + tile<<4 + row
	}

	val := p.readVRAM(addr + plane)
	if slot >= sp.count {
		return 0
	}
	if attr&0x40 != 0 { // horizontal flip
		val = reverseBits(val)
	}
	return val
}

func reverseBits(b uint8) uint8 {
	b = (b&0xF0)>>4 | (b&0x0F)<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}

/* pixel output */

func (p *PPU) bgPixel(x int) uint8 {
	if !p.maskBit(showBg) || (x < 8 && !p.maskBit(leftmostBg)) {
		return 0
	}
	mux := uint16(0x8000) >> p.x
	var px uint8
	if p.bg.patternLo&mux != 0 {
		px |= 1
	}
	if p.bg.patternHi&mux != 0 {
		px |= 2
	}
	if px == 0 {
		return 0
	}
	if p.bg.attrLo&mux != 0 {
		px |= 4
	}
	if p.bg.attrHi&mux != 0 {
		px |= 8
	}
	return px
}

// spritePixel returns the color of the frontmost opaque sprite pixel at x,
// and the slot of that sprite.
func (p *PPU) spritePixel(x int) (px uint8, slot int) {
	if !p.maskBit(showSprites) || (x < 8 && !p.maskBit(leftmostSprites)) {
		return 0, 0
	}
	sp := &p.sprites
	for i := range sp.count {
		off := x - int(sp.x[i])
		if off < 0 || off > 7 {
			continue
		}
		shift := 7 - off
		px = (sp.lo[i]>>shift)&1 | ((sp.hi[i]>>shift)&1)<<1
		if px == 0 {
			continue
		}
		return 0x10 | (sp.attr[i]&0x03)<<2 | px, i
	}
	return 0, 0
}

func (p *PPU) renderPixel(x int, rendering bool) {
	var color uint8

	if !rendering {
		// With rendering disabled, the backdrop is displayed, unless v points
		// to the palette.
		if p.v&0x3F00 == 0x3F00 {
			color = uint8(paletteIndex(p.v))
		}
	} else {
		bg := p.bgPixel(x)
		spr, slot := p.spritePixel(x)

		switch {
		case bg == 0 && spr == 0:
			color = 0
		case bg == 0:
			color = spr
		case spr == 0:
			color = bg
		default:
			sp := &p.sprites
			if sp.ids[slot] == 0 && x != 255 {
				p.status |= 1 << sprite0Hit
			}
			if sp.attr[slot]&0x20 != 0 { // behind background
				color = bg
			} else {
				color = spr
			}
		}
	}

	idx := p.palette[paletteIndex(0x3F00|uint16(color))]
	if p.maskBit(greyscale) {
		idx &= 0x30
	}
	p.frames[p.back].Pixels[p.Scanline*256+x] = idx
}
