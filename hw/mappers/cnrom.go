package mappers

var CNROM = MapperDesc{
	Name:            "CNROM",
	Load:            loadCNROM,
	PRGROMbanksz:    0x8000,
	CHRROMbanksz:    0x2000,
	HasBusConflicts: submapper2,
}

type cnrom struct {
	*base

	chrbank int
}

func (m *cnrom) WritePRGROM(addr uint16, val uint8) {
	// 7  bit  0
	// ---- ----
	// cccc ccCC
	// |||| ||||
	// ++++-++++- Select 8 KB CHR ROM bank for PPU $0000-$1FFF
	// CNROM only uses lowest 2 bits, we keep them all and wrap around.
	prev := m.chrbank
	m.chrbank = bankIndex(int(val), m.chrBankCount(0x2000))
	if prev != m.chrbank {
		m.selectCHRPage8KB(m.chrbank)
		m.log.DebugZ("CHRROM bank switch").String("mapper", m.desc.Name).Int("prev", prev).Int("new", m.chrbank).End()
	}
}

func (m *cnrom) Reset(soft bool) {
	if soft {
		return
	}
	m.resetBanks()
	m.chrbank = 0
}

func loadCNROM(b *base) Mapper {
	m := &cnrom{base: b}
	b.write = m.WritePRGROM
	return m
}
