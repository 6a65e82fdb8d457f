package mappers

var GxROM = MapperDesc{
	Name:         "GxROM",
	Load:         loadGxROM,
	PRGROMbanksz: 0x8000,
	CHRROMbanksz: 0x2000,
}

type gxrom struct {
	*base

	chrbank int
	prgbank int
}

func (m *gxrom) WritePRGROM(addr uint16, val uint8) {
	// 7  bit  0
	// ---- ----
	// xxPP xxCC
	//   ||   ||
	//   ||   ++- Select 8 KB CHR ROM bank for PPU $0000-$1FFF
	//   ++------ Select 32 KB PRG ROM bank for CPU $8000-$FFFF
	prevchr := m.chrbank
	m.chrbank = int(val & 0x3)
	if prevchr != m.chrbank {
		m.selectCHRPage8KB(m.chrbank)
		m.log.DebugZ("CHRROM bank switch").String("mapper", m.desc.Name).Int("prev", prevchr).Int("new", m.chrbank).End()
	}

	prevprg := m.prgbank
	m.prgbank = int((val >> 4) & 0x3)
	if prevprg != m.prgbank {
		m.selectPRGPage32KB(m.prgbank)
		m.log.DebugZ("PRGROM bank switch").String("mapper", m.desc.Name).Int("prev", prevprg).Int("new", m.prgbank).End()
	}
}

func (m *gxrom) Reset(soft bool) {
	if soft {
		return
	}
	m.resetBanks()
	m.chrbank, m.prgbank = 0, 0
}

func loadGxROM(b *base) Mapper {
	m := &gxrom{base: b}
	b.write = m.WritePRGROM
	return m
}
