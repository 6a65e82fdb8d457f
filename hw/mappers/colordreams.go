package mappers

import "nescore/ines"

var ColorDreams = MapperDesc{
	Name:         "ColorDreams",
	Load:         loadColorDreams,
	PRGROMbanksz: 0x8000,
	CHRROMbanksz: 0x2000,
	// All boards have bus conflicts.
	HasBusConflicts: func(*ines.Cartridge) bool { return true },
}

type colorDreams struct {
	*base
}

func (m *colorDreams) WritePRGROM(addr uint16, val uint8) {
	// 7  bit  0
	// ---- ----
	// CCCC LLPP
	// |||| ||||
	// |||| ||++- Select 32 KB PRG ROM bank for CPU $8000-$FFFF
	// |||| ++--- Used for lockout defeat
	// ++++------ Select 8 KB CHR ROM bank for PPU $0000-$1FFF
	m.selectPRGPage32KB(int(val & 0x03))
	m.selectCHRPage8KB(int(val >> 4))
}

func (m *colorDreams) Reset(soft bool) {
	if soft {
		return
	}
	m.resetBanks()
}

func loadColorDreams(b *base) Mapper {
	m := &colorDreams{base: b}
	b.write = m.WritePRGROM
	return m
}
