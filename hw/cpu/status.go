package cpu

// P is the processor status register.
type P uint8

const (
	Carry = 1 << iota
	Zero
	Interrupt
	Decimal
	Break
	Reserved
	Overflow
	Negative
)

// String returns the flags as "NV-BDIZC", uppercase when set.
func (p P) String() string {
	const bits = "nvubdizcNVUBDIZC"

	s := make([]byte, 8)
	for i := range 8 {
		ibit := (uint8(p) >> (7 - i)) & 1
		s[i] = bits[i+int(8*ibit)]
	}
	return string(s)
}

func (p *P) setFlags(flags uint8) {
	*p |= P(flags)
}

func (p *P) clearFlags(flags uint8) {
	*p &^= P(flags)
}

func (p P) hasFlag(flag P) bool {
	return p&flag == flag
}

// setNZ sets Z and N according to val. Both flags are expected to be cleared
// beforehand.
func (p *P) setNZ(val uint8) {
	if val == 0 {
		p.setFlags(Zero)
	} else if val&0x80 != 0 {
		p.setFlags(Negative)
	}
}

func (p P) intDisable() bool {
	return p.hasFlag(Interrupt)
}
