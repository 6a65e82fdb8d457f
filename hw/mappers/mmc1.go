package mappers

import "nescore/hw/hwdefs"

var MMC1 = MapperDesc{
	Name:         "MMC1",
	Load:         loadMMC1,
	PRGROMbanksz: 0x4000,
	CHRROMbanksz: 0x1000,
}

type mmc1 struct {
	*base

	cycle     int64 // CPU cycles since power on
	prevWrite int64 // cycle of the last serial port write

	serial  shiftReg // shift register
	counter uint8    // count of bits shifted

	// CTRL reg bits
	chrmode uint8
	prgmode uint8

	// CHR regs
	chrbank0 uint8
	chrbank1 uint8

	// PRG reg bits
	prgbank     uint8
	disableWRAM bool
}

type shiftReg uint8

func (sr shiftReg) push(val uint8) shiftReg {
	sr >>= 1
	sr |= shiftReg((val << 4) & 0x10)
	return sr
}

func (m *mmc1) Tick() {
	m.cycle++
}

func (m *mmc1) WritePRGROM(addr uint16, val uint8) {
	// Ignore consecutive cycle writes (read-modify-write instructions).
	if m.cycle-m.prevWrite < 2 {
		m.prevWrite = m.cycle
		return
	}
	m.prevWrite = m.cycle

	if val&0x80 != 0 {
		// if the resetbit is set.
		//	- ignore databit
		//	- reset shift register (so that the next write is the "first" write)
		//	- bits 2,3 of control reg are set (16k PRG mode, $8000 swappable)
		//	- other bits of $8000 (and other regs) are unchanged
		m.serial = 0
		m.counter = 0
		m.prgmode = 0b11
		m.remap()
		return
	}

	m.serial = m.serial.push(val)
	m.counter++
	if m.counter == 5 {
		m.writeREG(addr, uint8(m.serial))
		m.remap()
		m.serial = 0
		m.counter = 0
	}
}

func (m *mmc1) writeREG(addr uint16, val uint8) {
	switch (addr & 0x6000) >> 13 {
	case 0:
		m.writeCTRL(val)
	case 1:
		m.log.DebugZ("Write CHR0 reg").String("mapper", m.desc.Name).Uint8("val", val).End()
		m.chrbank0 = val & 0b11111
	case 2:
		m.log.DebugZ("Write CHR1 reg").String("mapper", m.desc.Name).Uint8("val", val).End()
		m.chrbank1 = val & 0b11111
	case 3:
		// $E000-FFFF:  [...W PPPP]
		// W = WRAM Disable (0=enabled, 1=disabled)
		// P = PRG Reg
		m.log.DebugZ("Write PRG reg").String("mapper", m.desc.Name).Uint8("val", val).End()
		m.disableWRAM = val&0b1_0000 != 0
		m.prgbank = val & 0b1111
	}
}

func (m *mmc1) writeCTRL(val uint8) {
	m.chrmode = (val & 0x10) >> 4
	m.prgmode = (val & 0x0C) >> 2

	switch val & 0x03 {
	case 0:
		m.setMirroring(hwdefs.SingleScreen0)
	case 1:
		m.setMirroring(hwdefs.SingleScreen1)
	case 2:
		m.setMirroring(hwdefs.Vertical)
	case 3:
		m.setMirroring(hwdefs.Horizontal)
	}

	m.log.DebugZ("Write CTRL reg").String("mapper", m.desc.Name).
		Uint8("val", val).
		Uint8("prgmode", m.prgmode).
		Uint8("chrmode", m.chrmode).
		End()
}

func (m *mmc1) remap() {
	// On 512KB boards (SUROM), bit 4 of the CHR registers selects the 256KB
	// PRG ROM half.
	outer := 0
	if len(m.prgrom) == 512*1024 {
		outer = int(m.chrbank0 & 0x10)
	}

	prg := outer | int(m.prgbank)
	switch m.prgmode {
	case 0, 1:
		// ignore low bit of bank number
		m.selectPRGPage32KB(prg >> 1)
	case 2:
		m.selectPRGPage16KB(0, outer)
		m.selectPRGPage16KB(1, prg)
	case 3:
		m.selectPRGPage16KB(0, prg)
		m.selectPRGPage16KB(1, outer|0x0F)
	}

	switch m.chrmode {
	case 0:
		m.selectCHRPage8KB(int(m.chrbank0 >> 1))
	case 1:
		m.selectCHRPage4KB(0, int(m.chrbank0))
		m.selectCHRPage4KB(1, int(m.chrbank1))
	}

	m.prgRAMEnabled = !m.disableWRAM
}

func (m *mmc1) Reset(soft bool) {
	if soft {
		return
	}

	m.resetBanks()
	m.serial, m.counter = 0, 0

	// On powerup: bits 2,3 of $8000 are set (this ensures the $8000 is bank 0,
	// and $C000 is the last bank - needed for SEROM/SHROM/SH1ROM which do no
	// support banking)
	m.prevWrite = -2
	m.writeCTRL(0x0C)
	m.chrbank0, m.chrbank1, m.prgbank = 0, 0, 0
	m.disableWRAM = false
	m.remap()
}

func loadMMC1(b *base) Mapper {
	m := &mmc1{base: b}
	b.write = m.WritePRGROM
	return m
}
