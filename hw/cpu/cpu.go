// Package cpu implements the 2A03 CPU core, a 6502 without decimal mode.
//
// Every memory access performed by an instruction is one CPU cycle, announced
// to the bus with StartCycle and EndCycle. The system clock uses these to run
// the other units in lockstep with the CPU.
package cpu

//go:generate go run ./cpugen -out opcodes.go

import (
	"io"

	"nescore/emu/log"
	"nescore/hw/hwdefs"
)

// Locations reserved for vector pointers.
const (
	NMIVector   = uint16(0xFFFA) // Non-Maskable Interrupt
	ResetVector = uint16(0xFFFC) // Reset
	IRQVector   = uint16(0xFFFE) // Interrupt Request
)

// Bus is the view the CPU has of the rest of the console.
type Bus interface {
	Read8(addr uint16) uint8
	Peek8(addr uint16) uint8 // no side effects
	Write8(addr uint16, val uint8)

	// StartCycle and EndCycle bracket each CPU cycle, before and after the
	// bus access.
	StartCycle(forRead bool)
	EndCycle(forRead bool)

	// DMCAddress returns the address of the next DMC sample byte, and
	// DMCFetched delivers it once the DMA unit has read it.
	DMCAddress() uint16
	DMCFetched(val uint8)
}

type CPU struct {
	bus Bus
	log log.ModLog

	DMA DMA

	Cycles int64 // CPU cycles

	// cpu registers
	A, X, Y, SP uint8
	PC          uint16
	P           P

	// interrupt handling
	nmiFlag, prevNmiFlag bool
	needNmi, prevNeedNmi bool
	runIRQ, prevRunIRQ   bool
	irqFlag              hwdefs.IRQSource

	halted bool
	opcode uint8 // last fetched opcode
	ops    *[256]func(*CPU)

	// Non-nil when execution tracing is enabled.
	tracer *tracer
}

// New creates a CPU at power-up state. Reset must be called before execution
// so that the program counter is loaded from the reset vector.
func New(bus Bus, lg log.ModLog) *CPU {
	c := &CPU{
		bus: bus,
		log: lg,
		SP:  0xFD,
		ops: &ops,
	}
	c.DMA.cpu = c
	return c
}

// SetUnofficialMode selects how undocumented opcodes are executed.
func (c *CPU) SetUnofficialMode(mode UnofficialMode) {
	switch mode {
	case AsNOP:
		c.ops = &nopOps
	default:
		c.ops = &ops
	}
}

// Reset pulses the reset line. A soft reset keeps A, X and Y and decrements
// SP by 3 as the 3 stack writes of the interrupt sequence are turned into
// reads. A hard reset reinitializes all registers.
func (c *CPU) Reset(soft bool) {
	if soft {
		c.SP -= 0x03
		c.P.setFlags(Interrupt)
	} else {
		c.A = 0x00
		c.X = 0x00
		c.Y = 0x00
		c.SP = 0xFD
		c.P = Interrupt
		c.irqFlag = 0
	}

	c.runIRQ, c.prevRunIRQ = false, false
	c.needNmi, c.prevNeedNmi = false, false
	c.nmiFlag, c.prevNmiFlag = false, false
	c.halted = false
	c.DMA.reset()

	// Directly read from the bus to avoid side effects.
	c.PC = uint16(c.bus.Peek8(ResetVector)) | uint16(c.bus.Peek8(ResetVector+1))<<8

	c.Cycles = -1

	// After a reset/power up, the CPU burns 8 cycles before going on with ROM
	// execution.
	for range 8 {
		c.cycleBegin(true)
		c.cycleEnd(true)
	}

	c.log.InfoZ("reset").Bool("soft", soft).Hex16("pc", c.PC).End()
}

// Step executes one instruction, then services a pending interrupt if the
// interrupt lines were asserted soon enough.
//
// A halted CPU, after a JAM opcode, only idles one cycle per call, until it's
// reset.
func (c *CPU) Step() {
	if c.halted {
		c.cycleBegin(true)
		c.cycleEnd(true)
		return
	}

	if c.tracer != nil {
		c.traceOp()
	}
	c.opcode = c.Read8(c.PC)
	c.PC++
	c.ops[c.opcode](c)

	if c.halted {
		c.log.WarnZ("CPU halted").
			Hex16("pc", c.PC-1).
			Hex8("opcode", c.opcode).
			End()
		return
	}

	if c.prevRunIRQ || c.prevNeedNmi {
		c.interrupt()
	}
}

// Halted reports whether the CPU is stuck after executing a JAM opcode.
func (c *CPU) Halted() bool {
	return c.halted
}

func (c *CPU) halt() {
	c.halted = true
}

func (c *CPU) cycleBegin(forRead bool) {
	c.Cycles++
	c.bus.StartCycle(forRead)
}

func (c *CPU) cycleEnd(forRead bool) {
	c.bus.EndCycle(forRead)
	c.handleInterrupts()
}

func (c *CPU) Read8(addr uint16) uint8 {
	c.DMA.process(addr)
	c.cycleBegin(true)
	val := c.bus.Read8(addr)
	c.cycleEnd(true)
	return val
}

func (c *CPU) Write8(addr uint16, val uint8) {
	c.cycleBegin(false)
	c.bus.Write8(addr, val)
	c.cycleEnd(false)
}

func (c *CPU) Read16(addr uint16) uint16 {
	lo := c.Read8(addr)
	hi := c.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

/* stack operations */

func (c *CPU) push8(val uint8) {
	top := uint16(c.SP) + 0x0100
	c.Write8(top, val)
	c.SP--
}

func (c *CPU) push16(val uint16) {
	c.push8(uint8(val >> 8))
	c.push8(uint8(val & 0xff))
}

func (c *CPU) pull8() uint8 {
	c.SP++
	top := uint16(c.SP) + 0x0100
	return c.Read8(top)
}

func (c *CPU) pull16() uint16 {
	lo := c.pull8()
	hi := c.pull8()
	return uint16(hi)<<8 | uint16(lo)
}

/* interrupt handling */

// SetNMILine sets the level of the NMI input, which is edge triggered.
func (c *CPU) SetNMILine(asserted bool) {
	c.nmiFlag = asserted
}

// SetIRQLine asserts or releases the IRQ line of the given source.
func (c *CPU) SetIRQLine(src hwdefs.IRQSource, asserted bool) {
	if asserted {
		c.irqFlag |= src
	} else {
		c.irqFlag &^= src
	}
}

// IRQLines returns the sources currently asserting the IRQ line.
func (c *CPU) IRQLines() hwdefs.IRQSource {
	return c.irqFlag
}

func (c *CPU) handleInterrupts() {
	// The internal signal goes high during φ1 of the cycle that follows the one
	// where the edge is detected and stays high until the NMI has been handled.
	c.prevNeedNmi = c.needNmi

	// The edge detector polls the NMI line during φ2 of each CPU cycle and
	// raises the internal signal if the input goes from inactive during one
	// cycle to active during the next.
	if !c.prevNmiFlag && c.nmiFlag {
		c.needNmi = true
	}
	c.prevNmiFlag = c.nmiFlag

	// It's the status of the interrupt lines at the end of the second-to-last
	// cycle that matters, so keep the value computed at the previous cycle.
	c.prevRunIRQ = c.runIRQ
	c.runIRQ = c.irqFlag != 0 && !c.P.intDisable()
}

// interrupt runs the 7 cycles interrupt sequence, for NMI or IRQ.
func (c *CPU) interrupt() {
	c.Read8(c.PC) // dummy reads
	c.Read8(c.PC)

	c.push16(c.PC)

	// B is only ever set in the pushed copy of P by BRK and PHP.
	p := (c.P | Reserved) &^ Break
	if c.needNmi {
		c.needNmi = false
		c.push8(uint8(p))
		c.P.setFlags(Interrupt)
		c.PC = c.Read16(NMIVector)
		c.log.DebugZ("NMI").Hex16("handler", c.PC).End()
	} else {
		c.push8(uint8(p))
		c.P.setFlags(Interrupt)
		c.PC = c.Read16(IRQVector)
		c.log.DebugZ("IRQ").Stringer("src", c.irqFlag).Hex16("handler", c.PC).End()
	}
}

func BRK(cpu *CPU) {
	cpu.fetch8() // padding byte

	cpu.push16(cpu.PC)

	p := cpu.P | Break | Reserved
	cpu.push8(uint8(p))
	cpu.P.setFlags(Interrupt)

	// An NMI occurring during the first 4 cycles of BRK hijacks the vector
	// fetch, the pushed B flag is still set.
	if cpu.needNmi {
		cpu.needNmi = false
		cpu.PC = cpu.Read16(NMIVector)
	} else {
		cpu.PC = cpu.Read16(IRQVector)
	}

	// The first instruction of the handler must run before an NMI is taken.
	cpu.prevNeedNmi = false
}

func JSR(cpu *CPU) {
	lo := cpu.fetch8()
	_ = cpu.Read8(uint16(cpu.SP) + 0x0100) // dummy read
	cpu.push16(cpu.PC)
	hi := cpu.Read8(cpu.PC)
	cpu.PC = uint16(hi)<<8 | uint16(lo)
}

/* tracing / disassembly */

// PPUPosition provides the PPU position written in execution traces.
type PPUPosition interface {
	Position() (scanline, dot int)
}

// SetTraceOutput enables the execution tracer, writing one line per executed
// instruction to w. Tracing is disabled if w is nil. pos may be nil.
func (c *CPU) SetTraceOutput(w io.Writer, pos PPUPosition) {
	if w == nil {
		c.tracer = nil
		return
	}
	c.tracer = &tracer{w: w, d: c, pos: pos}
}

func (c *CPU) traceOp() {
	c.tracer.write(cpuState{
		A:     c.A,
		X:     c.X,
		Y:     c.Y,
		P:     c.P,
		SP:    c.SP,
		PC:    c.PC,
		Clock: c.Cycles + 1,
	})
}

// Disasm disassembles the instruction at pc, without side effects.
func (c *CPU) Disasm(pc uint16) DisasmOp {
	opcode := c.bus.Peek8(pc)
	return disasmOps[opcode](c, pc)
}

// OpcodeName returns the mnemonic of an opcode.
func OpcodeName(opcode uint8) string {
	return opcodeNames[opcode]
}
