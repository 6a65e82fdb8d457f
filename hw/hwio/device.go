package hwio

// Device is a BankIO8 implementation that allows manual management of an entire
// range of memory.
type Device struct {
	Name string // name of the memory area (for debugging)
	Size int    // size of the memory area

	ReadCb  func(addr uint16) uint8
	PeekCb  func(addr uint16) uint8 // if nil, peeking returns 0
	WriteCb func(addr uint16, val uint8)
}

func (d *Device) Read8(addr uint16, peek bool) uint8 {
	if peek {
		if d.PeekCb == nil {
			return 0
		}
		return d.PeekCb(addr)
	}
	if d.ReadCb == nil {
		return 0
	}
	return d.ReadCb(addr)
}

func (d *Device) Write8(addr uint16, val uint8) {
	if d.WriteCb == nil {
		return
	}
	d.WriteCb(addr, val)
}
