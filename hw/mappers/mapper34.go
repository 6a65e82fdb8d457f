package mappers

// Mapper 34 covers two unrelated boards. BNROM has CHR RAM and a single PRG
// register at $8000-$FFFF, NINA-001 has CHR ROM and its registers overlay
// the PRG RAM.

var BNROM = MapperDesc{
	Name:         "BNROM",
	Load:         loadBNROM,
	PRGROMbanksz: 0x8000,
	// Original BNROM boards have bus conflicts, later variants don't, and
	// games write values avoiding them anyway.
}

type bnrom struct {
	*base
}

func (m *bnrom) WritePRGROM(addr uint16, val uint8) {
	m.selectPRGPage32KB(int(val))
}

func (m *bnrom) Reset(soft bool) {
	if soft {
		return
	}
	m.resetBanks()
}

func loadBNROM(b *base) Mapper {
	m := &bnrom{base: b}
	b.write = m.WritePRGROM
	return m
}

var NINA001 = MapperDesc{
	Name:         "NINA-001",
	Load:         loadNINA001,
	PRGROMbanksz: 0x8000,
	CHRROMbanksz: 0x1000,
}

type nina001 struct {
	*base
}

func (m *nina001) CPUWrite(addr uint16, val uint8) {
	// Registers are written through to the RAM below them.
	m.base.CPUWrite(addr, val)

	switch addr {
	case 0x7FFD:
		m.selectPRGPage32KB(int(val & 0x01))
	case 0x7FFE:
		m.selectCHRPage4KB(0, int(val&0x0F))
	case 0x7FFF:
		m.selectCHRPage4KB(1, int(val&0x0F))
	}
}

func (m *nina001) Reset(soft bool) {
	if soft {
		return
	}
	m.resetBanks()
}

func loadNINA001(b *base) Mapper {
	if b.prgram == nil {
		b.prgram = make([]byte, 0x2000)
	}
	return &nina001{base: b}
}
