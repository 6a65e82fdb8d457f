package emu

import (
	"nescore/emu/log"
	"nescore/hw/apu"
	"nescore/hw/cpu"
	"nescore/hw/hwdefs"
	"nescore/hw/hwio"
	"nescore/hw/input"
	"nescore/hw/mappers"
	"nescore/hw/ppu"
)

// The PPU runs 1 master clock behind the CPU.
const ppuOffset = 1

// NES holds the hardware of a powered console and clocks it. It implements
// the buses of the CPU and the PPU, and the APU host, so that the units never
// refer to each other.
type NES struct {
	CPU    *cpu.CPU
	PPU    *ppu.PPU
	APU    *apu.APU
	Mapper mappers.Mapper
	Ports  *input.Ports

	params hwdefs.RegionParams
	log    log.ModLog

	ram     [0x800]uint8
	bus     *hwio.Table
	openBus uint8 // last value seen on the CPU data bus

	masterClock uint64
}

func newNES(m mappers.Mapper, params hwdefs.RegionParams, cfg Config, lg *log.Logger) *NES {
	nes := &NES{
		Mapper: m,
		Ports:  input.NewPorts(),
		params: params,
		log:    lg.Mod(log.ModEmu),
	}

	nes.PPU = ppu.New(nes, params, lg.Mod(log.ModPPU))
	nes.APU = apu.New(nes, params, cfg.Audio.SampleRate, lg.Mod(log.ModSound))
	nes.CPU = cpu.New(nes, lg.Mod(log.ModCPU))
	nes.CPU.DMA.SetLog(lg.Mod(log.ModDMA))
	nes.CPU.SetUnofficialMode(cfg.Emulation.UnofficialOpcodes)

	nes.initBus(lg.Mod(log.ModHwIo))
	return nes
}

// initBus maps the CPU address space.
//
//	$0000-$1FFF  2KB internal RAM, mirrored
//	$2000-$3FFF  PPU registers, mirrored every 8 bytes
//	$4000-$4017  APU and I/O registers
//	$4018-$401F  disabled test registers (open bus)
//	$4020-$FFFF  cartridge
func (nes *NES) initBus(lg log.ModLog) {
	nes.bus = hwio.NewTable("cpu", lg)
	nes.bus.Unmapped = &hwio.Device{
		Name:    "open bus",
		ReadCb:  func(uint16) uint8 { return nes.openBus },
		PeekCb:  func(uint16) uint8 { return nes.openBus },
		WriteCb: func(uint16, uint8) {},
	}

	nes.bus.MapMem(0x0000, &hwio.Mem{
		Name:  "RAM",
		Data:  nes.ram[:],
		VSize: 0x2000,
	})
	nes.bus.MapDevice(0x2000, &hwio.Device{
		Name:    "PPU",
		Size:    0x2000,
		ReadCb:  nes.PPU.ReadReg,
		PeekCb:  nes.PPU.PeekReg,
		WriteCb: nes.PPU.WriteReg,
	})
	nes.bus.MapDevice(0x4000, &hwio.Device{
		Name:    "APU/IO",
		Size:    0x18,
		ReadCb:  nes.readIO,
		PeekCb:  nes.peekIO,
		WriteCb: nes.writeIO,
	})
	nes.bus.MapDevice(0x4020, &hwio.Device{
		Name:    "cartridge",
		Size:    0x10000 - 0x4020,
		ReadCb:  func(addr uint16) uint8 { return nes.Mapper.CPURead(addr, nes.openBus) },
		PeekCb:  func(addr uint16) uint8 { return nes.Mapper.CPUPeek(addr, nes.openBus) },
		WriteCb: nes.Mapper.CPUWrite,
	})
}

// Reset resets all units. RAM content is kept, as on real hardware.
func (nes *NES) Reset(soft bool) {
	if !soft {
		nes.masterClock = nes.params.CPUDivider
		nes.openBus = 0
		nes.Ports.Reset()
	}
	nes.Mapper.Reset(soft)
	nes.PPU.Reset(soft)
	nes.APU.Reset(soft)

	// The CPU goes last, it runs the reset sequence cycles.
	nes.CPU.Reset(soft)

	nes.log.InfoZ("console reset").Bool("soft", soft).Hex16("pc", nes.CPU.PC).End()
}

// RAM gives access to the 2KB of internal RAM.
func (nes *NES) RAM() []byte { return nes.ram[:] }

// Params returns the timing parameters of the console region.
func (nes *NES) Params() hwdefs.RegionParams { return nes.params }

/* cpu.Bus */

func (nes *NES) Read8(addr uint16) uint8 {
	nes.openBus = nes.bus.Read8(addr, false)
	return nes.openBus
}

func (nes *NES) Peek8(addr uint16) uint8 {
	return nes.bus.Peek8(addr)
}

func (nes *NES) Write8(addr uint16, val uint8) {
	nes.openBus = val
	nes.bus.Write8(addr, val)
}

// StartCycle advances the master clock to the bus access of the CPU cycle.
// Reads happen slightly earlier in the cycle than writes.
func (nes *NES) StartCycle(forRead bool) {
	if forRead {
		nes.masterClock += nes.params.StartClockCount - 1
	} else {
		nes.masterClock += nes.params.StartClockCount + 1
	}
	nes.PPU.Run(nes.masterClock - ppuOffset)
	nes.APU.Tick()
	nes.Mapper.Tick()
}

// EndCycle completes the CPU cycle and samples the interrupt lines, which
// the CPU polls before the next cycle.
func (nes *NES) EndCycle(forRead bool) {
	if forRead {
		nes.masterClock += nes.params.EndClockCount + 1
	} else {
		nes.masterClock += nes.params.EndClockCount - 1
	}
	nes.PPU.Run(nes.masterClock - ppuOffset)

	nes.CPU.SetNMILine(nes.PPU.NMILine())
	nes.CPU.SetIRQLine(hwdefs.External, nes.Mapper.IRQ())
	irq := nes.APU.IRQ()
	nes.CPU.SetIRQLine(hwdefs.FrameCounter, irq&hwdefs.FrameCounter != 0)
	nes.CPU.SetIRQLine(hwdefs.DMC, irq&hwdefs.DMC != 0)
}

func (nes *NES) DMCAddress() uint16   { return nes.APU.DMCAddress() }
func (nes *NES) DMCFetched(val uint8) { nes.APU.DMCFetched(val) }

/* ppu.Bus */

func (nes *NES) PPURead(addr uint16) uint8       { return nes.Mapper.PPURead(addr) }
func (nes *NES) PPUWrite(addr uint16, val uint8) { nes.Mapper.PPUWrite(addr, val) }
func (nes *NES) Mirroring() hwdefs.Mirroring     { return nes.Mapper.Mirroring() }

/* apu.Host */

func (nes *NES) StartDMCTransfer() { nes.CPU.DMA.StartDMC() }
func (nes *NES) StopDMCTransfer()  { nes.CPU.DMA.StopDMC() }
func (nes *NES) CPUCycles() int64  { return nes.CPU.Cycles }

/* APU and I/O registers */

func (nes *NES) readIO(addr uint16) uint8 {
	switch addr {
	case 0x4015:
		// Bit 5 isn't driven.
		return nes.APU.ReadStatus() | nes.openBus&0x20
	case 0x4016:
		return nes.Ports.Read(0) | nes.openBus&0xE0
	case 0x4017:
		return nes.Ports.Read(1) | nes.openBus&0xE0
	}
	// Write-only registers.
	return nes.openBus
}

func (nes *NES) peekIO(addr uint16) uint8 {
	switch addr {
	case 0x4015:
		return nes.APU.Status() | nes.openBus&0x20
	case 0x4016:
		return nes.Ports.Peek(0) | nes.openBus&0xE0
	case 0x4017:
		return nes.Ports.Peek(1) | nes.openBus&0xE0
	}
	return nes.openBus
}

func (nes *NES) writeIO(addr uint16, val uint8) {
	switch addr {
	case 0x4014:
		nes.CPU.DMA.StartOAM(val)
	case 0x4016:
		nes.Ports.Write(val)
	default:
		nes.APU.WriteReg(addr, val)
	}
}
