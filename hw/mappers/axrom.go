package mappers

import "nescore/hw/hwdefs"

var AxROM = MapperDesc{
	Name:            "AOROM",
	Load:            loadAxROM,
	PRGROMbanksz:    0x8000,
	HasBusConflicts: submapper2,
}

type axrom struct {
	*base

	prgbank int
}

func (m *axrom) WritePRGROM(addr uint16, val uint8) {
	// 7  bit  0
	// ---- ----
	// xxxM xPPP
	//    |  |||
	//    |  +++- Select 32 KB PRG ROM bank for CPU $8000-$FFFF
	//    +------ Select 1 KB VRAM page for all 4 nametables
	prev := m.prgbank
	m.prgbank = int(val & 0x7)
	if prev != m.prgbank {
		m.selectPRGPage32KB(m.prgbank)
	}

	if val&0x10 == 0x10 {
		m.setMirroring(hwdefs.SingleScreen1)
	} else {
		m.setMirroring(hwdefs.SingleScreen0)
	}
}

func (m *axrom) Reset(soft bool) {
	if soft {
		return
	}
	m.resetBanks()
	m.prgbank = 0
	m.mirroring = hwdefs.SingleScreen0
}

func loadAxROM(b *base) Mapper {
	m := &axrom{base: b}
	b.write = m.WritePRGROM
	return m
}
