package cpu

import "fmt"

// Disassembly of each addressing mode. Operands are read with Peek8 so that
// disassembling never has side effects.

func (c *CPU) disasmBytes(pc uint16, n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = c.bus.Peek8(pc + uint16(i))
	}
	return buf
}

func (c *CPU) disasmOp(pc uint16, n int, oper string) DisasmOp {
	buf := c.disasmBytes(pc, n)
	return DisasmOp{
		PC:     pc,
		Buf:    buf,
		Opcode: opcodeNames[buf[0]],
		Oper:   oper,
	}
}

func (c *CPU) peek16(addr uint16) uint16 {
	return uint16(c.bus.Peek8(addr)) | uint16(c.bus.Peek8(addr+1))<<8
}

func disasmImp(c *CPU, pc uint16) DisasmOp { return c.disasmOp(pc, 1, "") }
func disasmAcc(c *CPU, pc uint16) DisasmOp { return c.disasmOp(pc, 1, "A") }

func disasmImm(c *CPU, pc uint16) DisasmOp {
	return c.disasmOp(pc, 2, fmt.Sprintf("#$%02X", c.bus.Peek8(pc+1)))
}

func disasmZpg(c *CPU, pc uint16) DisasmOp {
	return c.disasmOp(pc, 2, fmt.Sprintf("$%02X", c.bus.Peek8(pc+1)))
}

func disasmZpx(c *CPU, pc uint16) DisasmOp {
	return c.disasmOp(pc, 2, fmt.Sprintf("$%02X,X", c.bus.Peek8(pc+1)))
}

func disasmZpy(c *CPU, pc uint16) DisasmOp {
	return c.disasmOp(pc, 2, fmt.Sprintf("$%02X,Y", c.bus.Peek8(pc+1)))
}

func disasmAbs(c *CPU, pc uint16) DisasmOp {
	return c.disasmOp(pc, 3, formatAddr(c.peek16(pc+1)))
}

func disasmAbx(c *CPU, pc uint16) DisasmOp {
	return c.disasmOp(pc, 3, formatAddr(c.peek16(pc+1))+",X")
}

func disasmAby(c *CPU, pc uint16) DisasmOp {
	return c.disasmOp(pc, 3, formatAddr(c.peek16(pc+1))+",Y")
}

func disasmInd(c *CPU, pc uint16) DisasmOp {
	return c.disasmOp(pc, 3, fmt.Sprintf("($%04X)", c.peek16(pc+1)))
}

func disasmIzx(c *CPU, pc uint16) DisasmOp {
	return c.disasmOp(pc, 2, fmt.Sprintf("($%02X,X)", c.bus.Peek8(pc+1)))
}

func disasmIzy(c *CPU, pc uint16) DisasmOp {
	return c.disasmOp(pc, 2, fmt.Sprintf("($%02X),Y", c.bus.Peek8(pc+1)))
}

// disasmRel shows the branch target.
func disasmRel(c *CPU, pc uint16) DisasmOp {
	off := uint16(int16(int8(c.bus.Peek8(pc + 1))))
	return c.disasmOp(pc, 2, fmt.Sprintf("$%04X", pc+2+off))
}

var addressLabels = map[uint16]string{
	0x2000: "PpuControl_2000",
	0x2001: "PpuMask_2001",
	0x2002: "PpuStatus_2002",
	0x2003: "OamAddr_2003",
	0x2004: "OamData_2004",
	0x2005: "PpuScroll_2005",
	0x2006: "PpuAddr_2006",
	0x2007: "PpuData_2007",
	0x4000: "Sq0Duty_4000",
	0x4001: "Sq0Sweep_4001",
	0x4002: "Sq0Timer_4002",
	0x4003: "Sq0Length_4003",
	0x4004: "Sq1Duty_4004",
	0x4005: "Sq1Sweep_4005",
	0x4006: "Sq1Timer_4006",
	0x4007: "Sq1Length_4007",
	0x4008: "TrgLinear_4008",
	0x400A: "TrgTimer_400A",
	0x400B: "TrgLength_400B",
	0x400C: "NoiseVolume_400C",
	0x400E: "NoisePeriod_400E",
	0x400F: "NoiseLength_400F",
	0x4010: "DmcFreq_4010",
	0x4011: "DmcCounter_4011",
	0x4012: "DmcAddress_4012",
	0x4013: "DmcLength_4013",
	0x4014: "SpriteDma_4014",
	0x4015: "ApuStatus_4015",
	0x4016: "Ctrl1_4016",
	0x4017: "Ctrl2_FrameCtr_4017",
}

func formatAddr(addr uint16) string {
	if label, ok := addressLabels[addr]; ok {
		return label
	}
	return fmt.Sprintf("$%04X", addr)
}
