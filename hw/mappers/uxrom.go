package mappers

var UxROM = MapperDesc{
	Name:            "UNROM",
	Load:            loadUxROM,
	PRGROMbanksz:    0x4000,
	CHRROMbanksz:    0x2000,
	HasBusConflicts: submapper2,
}

type uxrom struct {
	*base

	prgbank int
}

func (m *uxrom) WritePRGROM(addr uint16, val uint8) {
	// 7  bit  0
	// ---- ----
	// xxxx pPPP
	//      ||||
	//      ++++- Select 16 KB PRG ROM bank for CPU $8000-$BFFF
	//            (UNROM uses bits 2-0; UOROM uses bits 3-0)
	prev := m.prgbank
	m.prgbank = bankIndex(int(val), m.prgBankCount(0x4000))
	if prev != m.prgbank {
		m.selectPRGPage16KB(0, m.prgbank)
		m.log.DebugZ("PRGROM bank switch").String("mapper", m.desc.Name).Int("prev", prev).Int("new", m.prgbank).End()
	}
}

func (m *uxrom) Reset(soft bool) {
	if soft {
		return
	}
	m.resetBanks()
	m.prgbank = 0
	m.selectPRGPage16KB(0, 0)
	m.selectPRGPage16KB(1, -1)
}

func loadUxROM(b *base) Mapper {
	m := &uxrom{base: b}
	b.write = m.WritePRGROM
	return m
}
