package cpu

// Addressing modes and helpers used by the generated opcodes. They perform
// the same bus accesses (dummy ones included) as the real CPU.

func (c *CPU) fetch8() uint8 {
	val := c.Read8(c.PC)
	c.PC++
	return val
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

// implied: the byte following the opcode is read and discarded.
func (c *CPU) imp() {
	_ = c.Read8(c.PC)
}

func (c *CPU) acc() {
	_ = c.Read8(c.PC)
}

// rel returns the sign-extended branch offset.
func (c *CPU) rel() uint16 {
	return uint16(int16(int8(c.fetch8())))
}

func (c *CPU) zpg() uint16 {
	return uint16(c.fetch8())
}

func (c *CPU) zpx() uint16 {
	zp := c.fetch8()
	_ = c.Read8(uint16(zp)) // dummy read
	return uint16(zp + c.X)
}

func (c *CPU) zpy() uint16 {
	zp := c.fetch8()
	_ = c.Read8(uint16(zp)) // dummy read
	return uint16(zp + c.Y)
}

func (c *CPU) abs() uint16 {
	return c.fetch16()
}

// abx returns the address indexed by X. When the page is crossed, or when
// dummy is true, the CPU first reads from the address it gets before fixing
// the high byte.
func (c *CPU) abx(dummy bool) uint16 {
	return c.indexed(c.fetch16(), c.X, dummy)
}

func (c *CPU) aby(dummy bool) uint16 {
	return c.indexed(c.fetch16(), c.Y, dummy)
}

func (c *CPU) indexed(base uint16, idx uint8, dummy bool) uint16 {
	addr := base + uint16(idx)
	crossed := pagecrossed(base, addr)
	if crossed || dummy {
		_ = c.Read8((base & 0xff00) | (addr & 0x00ff)) // dummy read
	}
	return addr
}

func (c *CPU) izx() uint16 {
	zp := c.fetch8()
	_ = c.Read8(uint16(zp)) // dummy read
	return c.zpr16(zp + c.X)
}

func (c *CPU) izy(dummy bool) uint16 {
	base := c.zpr16(c.fetch8())
	return c.indexed(base, c.Y, dummy)
}

// ind is only used by JMP. The 6502 doesn't carry into the high byte when
// the pointer lies on the last byte of a page.
func (c *CPU) ind() uint16 {
	oper := c.fetch16()
	lo := c.Read8(oper)
	hi := c.Read8((oper & 0xff00) | ((oper + 1) & 0x00ff))
	return uint16(hi)<<8 | uint16(lo)
}

// zpr16 reads a 16-bit pointer in zero page, wrapping around.
func (c *CPU) zpr16(zp uint8) uint16 {
	lo := c.Read8(uint16(zp))
	hi := c.Read8(uint16(zp + 1))
	return uint16(hi)<<8 | uint16(lo)
}

func pagecrossed(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

/* instruction helpers */

// setreg sets a register and updates N and Z.
func (c *CPU) setreg(reg *uint8, val uint8) {
	*reg = val
	c.P.clearFlags(Zero | Negative)
	c.P.setNZ(val)
}

// add is ADC in binary mode, the 2A03 has no decimal mode.
func (c *CPU) add(val uint8) {
	carry := uint16(c.P & Carry)
	sum := uint16(c.A) + uint16(val) + carry
	res := uint8(sum)

	c.P.clearFlags(Carry | Zero | Overflow | Negative)
	c.P.setNZ(res)
	if (c.A^res)&(val^res)&0x80 != 0 {
		c.P.setFlags(Overflow)
	}
	if sum > 0xff {
		c.P.setFlags(Carry)
	}
	c.A = res
}

// branch takes the branch if flag's value in P differs from val.
func (c *CPU) branch(off uint16, flag, val P) {
	if c.P&flag == val {
		return
	}

	// A taken non-page-crossing branch ignores IRQ during its last clock, so
	// that the next instruction executes before the IRQ.
	if c.runIRQ && !c.prevRunIRQ {
		c.runIRQ = false
	}

	_ = c.Read8(c.PC) // dummy read
	dst := c.PC + off
	if pagecrossed(c.PC, dst) {
		_ = c.Read8((c.PC & 0xff00) | (dst & 0x00ff)) // dummy read
	}
	c.PC = dst
}

// sh implements the unstable SHA/SHX/SHY/TAS stores. On page cross, the
// high byte of the target address is corrupted by val.
func (c *CPU) sh(base uint16, idx, val uint8) {
	addr := base + uint16(idx)
	crossed := pagecrossed(base, addr)
	_ = c.Read8((base & 0xff00) | (addr & 0x00ff)) // dummy read

	hi := uint8(addr >> 8)
	if crossed {
		hi &= val
		addr = uint16(hi)<<8 | addr&0x00ff
	}
	c.Write8(addr, val&(uint8(base>>8)+1))
}
