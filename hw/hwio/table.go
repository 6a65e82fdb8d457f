// Package hwio implements the address decoding of the NES buses: memory areas
// and devices are mapped into a Table, which dispatches accesses to them.
package hwio

import (
	"fmt"

	"nescore/emu/log"
)

type BankIO8 interface {
	// Read8 reads a byte from the given address. If peek is true, the read
	// shouldn't have any side effects (debugging/tracing).
	Read8(addr uint16, peek bool) uint8
	Write8(addr uint16, val uint8)
}

// Table is a 16-bit address space. Each address is associated to at most one
// BankIO8. The lookup is a flat array indexed by address, mapping and
// unmapping are slow but accesses are a single indexing.
type Table struct {
	Name string

	// Unmapped, if set, handles accesses to unmapped addresses, for example
	// to emulate open bus.
	Unmapped BankIO8

	log      log.ModLog
	handlers []BankIO8   // 0 is reserved for 'unmapped'
	index    [1 << 16]uint8
}

func NewTable(name string, l log.ModLog) *Table {
	t := &Table{Name: name, log: l}
	t.Reset()
	return t
}

// Reset unmaps everything.
func (t *Table) Reset() {
	t.handlers = t.handlers[:0]
	t.handlers = append(t.handlers, nil)
	clear(t.index[:])
}

func (t *Table) handlerIdx(io BankIO8) uint8 {
	for i := 1; i < len(t.handlers); i++ {
		if t.handlers[i] == io {
			return uint8(i)
		}
	}
	if len(t.handlers) == 256 {
		panic(fmt.Sprintf("hwio: too many handlers on bus %s", t.Name))
	}
	t.handlers = append(t.handlers, io)
	return uint8(len(t.handlers) - 1)
}

// Map maps io at the addresses [begin, end], replacing what was previously
// mapped there.
func (t *Table) Map(begin, end uint16, io BankIO8) {
	if end < begin {
		panic(fmt.Sprintf("hwio: invalid range [%04x-%04x] on bus %s", begin, end, t.Name))
	}
	idx := t.handlerIdx(io)
	for addr := int(begin); addr <= int(end); addr++ {
		t.index[addr] = idx
	}
}

// MapMem maps mem at addr, for mem.VSize bytes (or len(mem.Data) when VSize
// is 0).
func (t *Table) MapMem(addr uint16, mem *Mem) {
	size := mem.VSize
	if size == 0 {
		size = len(mem.Data)
	}

	t.log.DebugZ("mapping mem").
		Hex16("addr", addr).
		Hex32("size", uint32(size)).
		String("area", mem.Name).
		String("bus", t.Name).
		End()

	t.Map(addr, uint16(int(addr)+size-1), mem.BankIO8())
}

// MapDevice maps dev at addr, for dev.Size bytes.
func (t *Table) MapDevice(addr uint16, dev *Device) {
	t.log.DebugZ("mapping device").
		Hex16("addr", addr).
		Hex32("size", uint32(dev.Size)).
		String("dev", dev.Name).
		String("bus", t.Name).
		End()

	t.Map(addr, uint16(int(addr)+dev.Size-1), dev)
}

func (t *Table) Unmap(begin, end uint16) {
	for addr := int(begin); addr <= int(end); addr++ {
		t.index[addr] = 0
	}
}

// Read8 forwards the read to the device mapped at addr.
func (t *Table) Read8(addr uint16, peek bool) uint8 {
	io := t.handlers[t.index[addr]]
	if io == nil {
		if t.Unmapped != nil {
			return t.Unmapped.Read8(addr, peek)
		}
		return 0
	}
	return io.Read8(addr, peek)
}

// Peek8 is a convenience function.
func (t *Table) Peek8(addr uint16) uint8 {
	return t.Read8(addr, true)
}

func (t *Table) Write8(addr uint16, val uint8) {
	io := t.handlers[t.index[addr]]
	if io == nil {
		if t.Unmapped != nil {
			t.Unmapped.Write8(addr, val)
		}
		return
	}
	if m, ok := io.(*mem); ok {
		if !m.Write8CheckRO(addr, val) {
			t.log.DebugZ("Write8 to read-only address").
				String("name", t.Name).
				Hex16("addr", addr).
				Hex8("val", val).
				End()
		}
		return
	}
	io.Write8(addr, val)
}
