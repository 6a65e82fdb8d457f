package mappers

var NROM = MapperDesc{
	Name:         "NROM",
	Load:         loadNROM,
	PRGROMbanksz: 0x4000,
	CHRROMbanksz: 0x2000,
}

type nrom struct {
	*base
}

func (m *nrom) Reset(soft bool) {
	if soft {
		return
	}
	// 16KB roms are mirrored at $C000.
	m.resetBanks()
}

func loadNROM(b *base) Mapper {
	return &nrom{base: b}
}
