package mappers

import (
	"nescore/emu/log"
	"nescore/hw/hwdefs"
	"nescore/ines"
)

const (
	prgWindow = 0x2000 // CPU side banks are switched by 8KB windows.
	chrWindow = 0x400  // PPU side banks are switched by 1KB windows.
)

// base implements the parts common to all mappers: PRG ROM windows at
// $8000-$FFFF, optional PRG RAM at $6000-$7FFF, CHR ROM or RAM windows at
// $0000-$1FFF and nametable mirroring.
type base struct {
	desc MapperDesc
	cart *ines.Cartridge
	log  log.ModLog

	prgrom []byte
	prgram []byte // nil when the cartridge has none
	chr    []byte // CHR ROM, or CHR RAM when chrRAM is true
	chrRAM bool

	prgpages [4]int // offsets in prgrom of the 8KB windows at $8000, $A000, $C000, $E000
	chrpages [8]int // offsets in chr of the 1KB windows

	mirroring hwdefs.Mirroring

	prgRAMEnabled  bool
	prgRAMWritable bool

	busConflicts bool

	// write handles writes to $8000-$FFFF.
	write func(addr uint16, val uint8)
}

func newbase(desc MapperDesc, cart *ines.Cartridge, l log.ModLog) *base {
	b := &base{
		desc:           desc,
		cart:           cart,
		log:            l,
		prgrom:         padToWindow(cart.PRG, prgWindow),
		mirroring:      cart.Mirroring,
		prgRAMEnabled:  true,
		prgRAMWritable: true,
	}

	if len(cart.CHR) > 0 {
		b.chr = padToWindow(cart.CHR, chrWindow)
	} else {
		b.chrRAM = true
		b.chr = make([]byte, max(cart.CHRRAMSize, 0x2000))
	}

	if cart.PRGRAMSize > 0 {
		b.prgram = make([]byte, cart.PRGRAMSize)
	}
	return b
}

func (b *base) Name() string { return b.desc.Name }

func (b *base) Mirroring() hwdefs.Mirroring { return b.mirroring }

func (b *base) Tick() {}

func (b *base) IRQ() bool { return false }

func (b *base) CPURead(addr uint16, bus uint8) uint8 {
	switch {
	case addr >= 0x8000:
		return b.prgrom[b.prgpages[(addr-0x8000)/prgWindow]+int(addr&(prgWindow-1))]
	case addr >= 0x6000:
		if b.prgram != nil && b.prgRAMEnabled {
			return b.prgram[int(addr-0x6000)%len(b.prgram)]
		}
	}
	// Nothing drives the data bus.
	return bus
}

func (b *base) CPUPeek(addr uint16, bus uint8) uint8 {
	return b.CPURead(addr, bus)
}

func (b *base) CPUWrite(addr uint16, val uint8) {
	switch {
	case addr >= 0x8000:
		if b.busConflicts {
			val &= b.CPUPeek(addr, val)
		}
		if b.write != nil {
			b.write(addr, val)
		}
	case addr >= 0x6000:
		if b.prgram != nil && b.prgRAMEnabled && b.prgRAMWritable {
			b.prgram[int(addr-0x6000)%len(b.prgram)] = val
		}
	}
}

func (b *base) PPURead(addr uint16) uint8 {
	addr &= 0x1FFF
	return b.chr[b.chrpages[addr/chrWindow]+int(addr&(chrWindow-1))]
}

func (b *base) PPUWrite(addr uint16, val uint8) {
	if !b.chrRAM {
		return
	}
	addr &= 0x1FFF
	b.chr[b.chrpages[addr/chrWindow]+int(addr&(chrWindow-1))] = val
}

// SaveRAM returns a copy of the battery-backed memories, per kind. The
// battery-backed part of a RAM is at its start.
func (b *base) SaveRAM() map[string][]byte {
	var ram map[string][]byte
	if b.cart.PRGNVRAMSize > 0 && b.prgram != nil {
		n := min(b.cart.PRGNVRAMSize, len(b.prgram))
		ram = map[string][]byte{KindPRG: append([]byte(nil), b.prgram[:n]...)}
	}
	if b.cart.CHRNVRAMSize > 0 && b.chrRAM {
		if ram == nil {
			ram = make(map[string][]byte, 1)
		}
		n := min(b.cart.CHRNVRAMSize, len(b.chr))
		ram[KindCHR] = append([]byte(nil), b.chr[:n]...)
	}
	return ram
}

// LoadRAM restores a battery-backed memory. Unknown kinds are ignored.
func (b *base) LoadRAM(kind string, data []byte) {
	switch kind {
	case KindPRG:
		if b.prgram != nil {
			copy(b.prgram, data)
		}
	case KindCHR:
		if b.chrRAM {
			copy(b.chr, data)
		}
	default:
		b.log.WarnZ("unknown save-RAM kind").String("kind", kind).End()
	}
}

// padToWindow returns rom, extended to a multiple of window bytes by
// repeating its content, as the unconnected address lines of small ROMs do.
func padToWindow(rom []byte, window int) []byte {
	if len(rom)%window == 0 {
		return rom
	}
	out := make([]byte, (len(rom)+window-1)/window*window)
	for i := 0; i < len(out); i += len(rom) {
		copy(out[i:], rom)
	}
	return out
}

func (b *base) prgBankCount(size int) int {
	return max(len(b.prgrom)/size, 1)
}

func (b *base) chrBankCount(size int) int {
	return max(len(b.chr)/size, 1)
}

// bankIndex wraps bank so that it's in [0, count). Negative banks are
// counted from the end: -1 is the last bank.
func bankIndex(bank, count int) int {
	bank %= count
	if bank < 0 {
		bank += count
	}
	return bank
}

// selectPRGPage8KB maps the 8KB PRG ROM bank at the given window, 0 being
// $8000-$9FFF and 3 being $E000-$FFFF.
func (b *base) selectPRGPage8KB(slot, bank int) {
	b.selectPRG(slot, 1, bank)
}

// selectPRGPage16KB maps the 16KB PRG ROM bank at $8000 (slot 0) or $C000
// (slot 1).
func (b *base) selectPRGPage16KB(slot, bank int) {
	b.selectPRG(slot*2, 2, bank)
}

func (b *base) selectPRGPage32KB(bank int) {
	b.selectPRG(0, 4, bank)
}

func (b *base) selectPRG(slot, nwin, bank int) {
	size := nwin * prgWindow
	bank = bankIndex(bank, b.prgBankCount(size))
	for i := range nwin {
		// With less PRG ROM than the bank size, the ROM is mirrored.
		b.prgpages[slot+i] = (bank*size + i*prgWindow) % len(b.prgrom)
	}
}

func (b *base) selectCHRPage1KB(slot, bank int) {
	b.selectCHR(slot, 1, bank)
}

func (b *base) selectCHRPage2KB(slot, bank int) {
	b.selectCHR(slot*2, 2, bank)
}

func (b *base) selectCHRPage4KB(slot, bank int) {
	b.selectCHR(slot*4, 4, bank)
}

func (b *base) selectCHRPage8KB(bank int) {
	b.selectCHR(0, 8, bank)
}

func (b *base) selectCHR(slot, nwin, bank int) {
	size := nwin * chrWindow
	bank = bankIndex(bank, b.chrBankCount(size))
	for i := range nwin {
		b.chrpages[slot+i] = (bank*size + i*chrWindow) % len(b.chr)
	}
}

func (b *base) setMirroring(m hwdefs.Mirroring) {
	if m == b.mirroring {
		return
	}
	b.log.DebugZ("select NT mirroring").
		String("mapper", b.desc.Name).
		Stringer("prev", b.mirroring).
		Stringer("new", m).
		End()
	b.mirroring = m
}

// resetBanks maps the first 32KB of PRG ROM and the first 8KB of CHR.
func (b *base) resetBanks() {
	b.selectPRGPage32KB(0)
	b.selectCHRPage8KB(0)
	b.mirroring = b.cart.Mirroring
	b.prgRAMEnabled = true
	b.prgRAMWritable = true
}
