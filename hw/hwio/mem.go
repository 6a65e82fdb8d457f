package hwio

// mem is the BankIO8 adaptor of a Mem.
type mem struct {
	buf  []byte
	mask uint16
	wcb  func(uint16, uint8)
	ro   bool
}

func (m *mem) Read8(addr uint16, _ bool) uint8 {
	return m.buf[addr&m.mask]
}

// Write8CheckRO writes val and reports whether the memory is writable.
func (m *mem) Write8CheckRO(addr uint16, val uint8) bool {
	if m.ro {
		return false
	}
	m.buf[addr&m.mask] = val
	if m.wcb != nil {
		m.wcb(addr, val)
	}
	return true
}

func (m *mem) Write8(addr uint16, val uint8) {
	m.Write8CheckRO(addr, val)
}

// Linear memory area that can be mapped into a Table. The physical buffer is
// mirrored over the virtual size, so its length must be a power of 2.
type Mem struct {
	Name     string              // name of the memory area (for debugging)
	Data     []byte              // actual memory buffer
	VSize    int                 // virtual size of the memory (can be bigger than physical size)
	ReadOnly bool                // writes are silently dropped
	WriteCb  func(uint16, uint8) // optional, called after each write
}

// BankIO8 returns an adaptor implementing BankIO8 for m. It panics if the
// length of m.Data is not a power of 2.
func (m *Mem) BankIO8() BankIO8 {
	n := len(m.Data)
	if n == 0 || n&(n-1) != 0 || n > 1<<16 {
		panic("hwio: memory buffer size is not pow2")
	}
	return &mem{
		buf:  m.Data,
		mask: uint16(n - 1),
		wcb:  m.WriteCb,
		ro:   m.ReadOnly,
	}
}
