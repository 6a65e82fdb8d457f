package mappers

import "nescore/hw/hwdefs"

var MMC3 = MapperDesc{
	Name:         "MMC3",
	Load:         loadMMC3,
	PRGROMbanksz: 0x2000,
	CHRROMbanksz: 0x400,
}

// Minimum number of CPU cycles PPU A12 must stay low for a rising edge to
// clock the IRQ counter. This filters the A12 toggles of sprite fetches.
const a12LowCycles = 3

type mmc3 struct {
	*base

	regs      [8]uint8 // R0-R7
	target    uint8    // register selected by the last $8000 write
	prgmode   bool     // true: $C000 swappable, $8000 fixed to -2
	chrinvert bool     // true: 2KB banks at $1000, 1KB banks at $0000

	irqLatch   uint8
	irqCounter uint8
	irqReload  bool
	irqEnabled bool
	irqPending bool

	a12      bool
	a12Ticks int // CPU cycles elapsed since A12 went low
}

func (m *mmc3) WritePRGROM(addr uint16, val uint8) {
	even := addr&1 == 0
	switch addr & 0xE000 {
	case 0x8000:
		if even {
			m.target = val & 0x07
			m.prgmode = val&0x40 != 0
			m.chrinvert = val&0x80 != 0
		} else {
			m.regs[m.target] = val
		}
		m.remap()
	case 0xA000:
		if even {
			if m.cart.Mirroring == hwdefs.FourScreen {
				return
			}
			if val&0x01 == 0 {
				m.setMirroring(hwdefs.Vertical)
			} else {
				m.setMirroring(hwdefs.Horizontal)
			}
		} else {
			// 7  bit  0
			// ---- ----
			// RWXX xxxx
			// ||
			// |+-------- Write protection (0: allow writes; 1: deny writes)
			// +--------- PRG RAM chip enable (0: disable; 1: enable)
			m.prgRAMEnabled = val&0x80 != 0
			m.prgRAMWritable = val&0x40 == 0
		}
	case 0xC000:
		if even {
			m.irqLatch = val
		} else {
			m.irqCounter = 0
			m.irqReload = true
		}
	case 0xE000:
		if even {
			m.irqEnabled = false
			m.irqPending = false
		} else {
			m.irqEnabled = true
		}
	}
}

func (m *mmc3) remap() {
	if m.prgmode {
		m.selectPRGPage8KB(0, -2)
		m.selectPRGPage8KB(2, int(m.regs[6]))
	} else {
		m.selectPRGPage8KB(0, int(m.regs[6]))
		m.selectPRGPage8KB(2, -2)
	}
	m.selectPRGPage8KB(1, int(m.regs[7]))
	m.selectPRGPage8KB(3, -1)

	// 2KB banks ignore the low bit of R0 and R1.
	lo, hi := 0, 4
	if m.chrinvert {
		lo, hi = 4, 0
	}
	m.selectCHRPage1KB(lo+0, int(m.regs[0]&0xFE))
	m.selectCHRPage1KB(lo+1, int(m.regs[0]|0x01))
	m.selectCHRPage1KB(lo+2, int(m.regs[1]&0xFE))
	m.selectCHRPage1KB(lo+3, int(m.regs[1]|0x01))
	m.selectCHRPage1KB(hi+0, int(m.regs[2]))
	m.selectCHRPage1KB(hi+1, int(m.regs[3]))
	m.selectCHRPage1KB(hi+2, int(m.regs[4]))
	m.selectCHRPage1KB(hi+3, int(m.regs[5]))
}

func (m *mmc3) Tick() {
	if !m.a12 {
		m.a12Ticks++
	}
}

func (m *mmc3) IRQ() bool {
	return m.irqPending
}

func (m *mmc3) PPURead(addr uint16) uint8 {
	m.watchA12(addr)
	return m.base.PPURead(addr)
}

func (m *mmc3) PPUWrite(addr uint16, val uint8) {
	m.watchA12(addr)
	m.base.PPUWrite(addr, val)
}

func (m *mmc3) watchA12(addr uint16) {
	a12 := addr&0x1000 != 0
	if a12 && !m.a12 && m.a12Ticks >= a12LowCycles {
		m.clockIRQ()
	}
	if a12 {
		m.a12Ticks = 0
	}
	m.a12 = a12
}

func (m *mmc3) clockIRQ() {
	if m.irqCounter == 0 || m.irqReload {
		m.irqCounter = m.irqLatch
		m.irqReload = false
	} else {
		m.irqCounter--
	}

	if m.irqCounter == 0 && m.irqEnabled {
		if !m.irqPending {
			m.log.DebugZ("IRQ").Uint8("latch", m.irqLatch).End()
		}
		m.irqPending = true
	}
}

func (m *mmc3) Reset(soft bool) {
	if soft {
		return
	}

	m.resetBanks()
	m.regs = [8]uint8{0, 2, 4, 5, 6, 7, 0, 1}
	m.target = 0
	m.prgmode, m.chrinvert = false, false
	m.irqLatch, m.irqCounter = 0, 0
	m.irqReload, m.irqEnabled, m.irqPending = false, false, false
	m.a12, m.a12Ticks = false, 0
	m.remap()
}

func loadMMC3(b *base) Mapper {
	m := &mmc3{base: b}
	b.write = m.WritePRGROM
	return m
}
