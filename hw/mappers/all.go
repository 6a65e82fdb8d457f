// Package mappers implements the cartridge boards: the chips that map the
// cartridge ROM and RAM into the CPU and PPU address spaces.
package mappers

import (
	"fmt"

	"nescore/emu/log"
	"nescore/hw/hwdefs"
	"nescore/ines"
)

// Kinds of battery-backed memory.
const (
	KindPRG = "prg"
	KindCHR = "chr"
)

// Mapper is the cartridge, as seen from the console.
type Mapper interface {
	// CPURead reads $4020-$FFFF. bus is the last value seen on the CPU data
	// bus, returned when the cartridge doesn't drive it.
	CPURead(addr uint16, bus uint8) uint8
	CPUPeek(addr uint16, bus uint8) uint8 // same as CPURead, without side effects
	CPUWrite(addr uint16, val uint8)
	PPURead(addr uint16) uint8 // $0000-$1FFF
	PPUWrite(addr uint16, val uint8)

	// Mirroring returns the current nametable mirroring.
	Mirroring() hwdefs.Mirroring

	// Tick is called once per CPU cycle.
	Tick()

	// IRQ reports the level of the cartridge IRQ line.
	IRQ() bool

	// Reset restores the power-on state of the board. The reset button
	// isn't wired to the cartridge, so soft resets leave it untouched.
	Reset(soft bool)

	// SaveRAM returns copies of the battery-backed memories per kind, or nil.
	SaveRAM() map[string][]byte
	LoadRAM(kind string, data []byte)

	Name() string
}

// An UnsupportedMapperError is returned when no mapper implementation exists
// for a cartridge.
type UnsupportedMapperError struct {
	ID        uint16
	SubMapper uint8
}

func (e *UnsupportedMapperError) Error() string {
	return fmt.Sprintf("unsupported mapper %d (%s)", e.ID, ines.MapperName(e.ID, 0))
}

type MapperDesc struct {
	Name         string
	Load         func(*base) Mapper
	PRGROMbanksz int
	CHRROMbanksz int

	// Bus conflicts happen on boards which don't disable the ROM during
	// register writes.
	HasBusConflicts func(*ines.Cartridge) bool
}

var All = map[uint16]MapperDesc{
	0:  NROM,
	1:  MMC1,
	2:  UxROM,
	3:  CNROM,
	4:  MMC3,
	7:  AxROM,
	11: ColorDreams,
	34: BNROM,
	66: GxROM,
}

// Lookup returns the mapper description for the cartridge.
func Lookup(cart *ines.Cartridge) (MapperDesc, bool) {
	if cart.Mapper == 34 && cart.CHRUnits > 0 {
		return NINA001, true
	}
	desc, ok := All[cart.Mapper]
	return desc, ok
}

// New creates the mapper of cart. The cartridge content isn't modified.
func New(cart *ines.Cartridge, l log.ModLog) (Mapper, error) {
	desc, ok := Lookup(cart)
	if !ok {
		return nil, &UnsupportedMapperError{ID: cart.Mapper, SubMapper: cart.SubMapper}
	}
	if len(cart.PRG) == 0 {
		return nil, fmt.Errorf("mapper %s: empty PRG ROM", desc.Name)
	}

	b := newbase(desc, cart, l)
	if desc.HasBusConflicts != nil {
		b.busConflicts = desc.HasBusConflicts(cart)
	}
	m := desc.Load(b)
	m.Reset(hwdefs.HardReset)

	l.InfoZ("mapper loaded").
		String("name", desc.Name).
		Uint16("id", cart.Mapper).
		Uint8("submapper", cart.SubMapper).
		Int("prgrom", len(cart.PRG)).
		Int("chr", len(b.chr)).
		Bool("chrram", b.chrRAM).
		Int("prgram", len(b.prgram)).
		End()
	return m, nil
}

func submapper2(cart *ines.Cartridge) bool { return cart.SubMapper == 2 }
