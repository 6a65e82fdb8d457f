package cpu

import "nescore/emu/log"

// DMA handles the transfers that halt the CPU: OAM DMA, copying a page of
// memory to the PPU sprite memory, and DMC DMA, fetching a sample byte for the
// APU.
type DMA struct {
	cpu *CPU
	log log.ModLog

	needHalt bool
	// A transfer can only read on even CPU cycles. A dummy cycle is used, when
	// necessary, to align the transfer.
	dummy bool

	dmcRunning bool
	abortDMC   bool

	oamPage    uint8
	oamRunning bool
}

// SetLog sets the logging handle of the DMA unit.
func (dma *DMA) SetLog(lg log.ModLog) {
	dma.log = lg
}

func (dma *DMA) reset() {
	dma.oamPage = 0x00
	dma.dummy = true
	dma.needHalt = false
	dma.oamRunning = false
	dma.dmcRunning = false
	dma.abortDMC = false
}

// StartOAM schedules the copy of the 256 bytes of page $XX00-$XXFF to $2004,
// as triggered by a write to $4014. The transfer starts at the next CPU read.
func (dma *DMA) StartOAM(page uint8) {
	dma.log.DebugZ("start OAM DMA transfer").Hex8("page", page).End()
	dma.oamPage = page
	dma.oamRunning = true
	dma.needHalt = true
}

// StartDMC schedules the fetch of the next DMC sample byte.
func (dma *DMA) StartDMC() {
	dma.log.DebugZ("start DMC DMA transfer").End()
	dma.dmcRunning = true
	dma.dummy = true
	dma.needHalt = true
}

// StopDMC cancels a DMC fetch, when the channel is disabled.
func (dma *DMA) StopDMC() {
	if !dma.dmcRunning {
		return
	}
	dma.log.DebugZ("stop DMC DMA transfer").End()
	if dma.needHalt {
		// The halt cycle didn't start yet, cancel the transfer entirely.
		dma.dmcRunning = false
		dma.dummy = false
		dma.needHalt = false
	} else {
		// Aborting is only possible during the first cycle.
		dma.abortDMC = true
	}
}

func isJoypadReg(addr uint16) bool {
	return addr == 0x4016 || addr == 0x4017
}

// process runs the pending transfers, if any, before the CPU reads from addr.
func (dma *DMA) process(addr uint16) {
	if !dma.needHalt {
		return
	}

	cpu := dma.cpu
	bus := cpu.bus

	// When the halted CPU was reading an APU/IO register, the DMA reads also
	// hit internal registers.
	internalReg := addr&0xFFE0 == 0x4000

	// A DMC fetch from the same internal register as the one the CPU reads
	// keeps /OE active, the joypad doesn't see the first read.
	skipFirstInputClock := internalReg && dma.dmcRunning && isJoypadReg(addr) &&
		bus.DMCAddress()&0x1F == addr&0x1F

	// On NES, only the first of repeated reads of $4016/$4017 has side effects.
	skipDummyReads := isJoypadReg(addr)

	dma.needHalt = false

	// Halt cycle.
	cpu.cycleBegin(true)
	if !(dma.abortDMC && isJoypadReg(addr)) && !skipFirstInputClock {
		bus.Read8(addr)
	}
	cpu.cycleEnd(true)

	if dma.abortDMC {
		dma.dmcRunning = false
		dma.abortDMC = false
		if !dma.oamRunning {
			dma.dummy = false
			return
		}
	}

	begin := func() {
		// OAM DMA cycles count as halt/dummy cycles for the DMC DMA.
		switch {
		case dma.abortDMC:
			dma.dmcRunning = false
			dma.abortDMC = false
			dma.dummy = false
			dma.needHalt = false
		case dma.needHalt:
			dma.needHalt = false
		case dma.dummy:
			dma.dummy = false
		}
		cpu.cycleBegin(true)
	}

	var (
		oamCount int
		oamAddr  uint8
		val      uint8
		prevAddr = addr
	)

	for dma.dmcRunning || dma.oamRunning {
		if cpu.Cycles&0x01 == 0 {
			// Get cycle.
			switch {
			case dma.dmcRunning && !dma.needHalt && !dma.dummy:
				begin()
				val, prevAddr = dma.read(bus.DMCAddress(), prevAddr, internalReg)
				cpu.cycleEnd(true)
				dma.dmcRunning = false
				dma.abortDMC = false
				bus.DMCFetched(val)
			case dma.oamRunning:
				begin()
				val, prevAddr = dma.read(uint16(dma.oamPage)<<8|uint16(oamAddr), prevAddr, internalReg)
				cpu.cycleEnd(true)
				oamAddr++
				oamCount++
			default:
				// DMC is waiting for its halt or dummy cycle.
				begin()
				if !skipDummyReads {
					bus.Read8(addr)
				}
				cpu.cycleEnd(true)
			}
			continue
		}

		// Put cycle.
		if dma.oamRunning && oamCount&0x01 != 0 {
			begin()
			bus.Write8(0x2004, val)
			cpu.cycleEnd(true)
			oamCount++
			if oamCount == 0x200 {
				dma.oamRunning = false
				dma.log.DebugZ("end OAM DMA transfer").End()
			}
		} else {
			// Alignment cycle.
			begin()
			if !skipDummyReads {
				bus.Read8(addr)
			}
			cpu.cycleEnd(true)
		}
	}
}

// read performs a DMA read. When the CPU was halted while reading in the
// $4000-$401F range, the 2A03 also reads its internal registers at the
// address of the DMA unit, with the lower 5 bits only. This can clear the
// frame IRQ flag, delete joypad bits or corrupt the fetched byte.
func (dma *DMA) read(addr, prevAddr uint16, internalReg bool) (val uint8, readAddr uint16) {
	bus := dma.cpu.bus

	if !internalReg {
		if addr >= 0x4000 && addr <= 0x401F {
			// Nothing responds there on the external bus.
			return 0x00, addr
		}
		return bus.Read8(addr), addr
	}

	internal := 0x4000 | (addr & 0x1F)
	same := internal == addr

	switch internal {
	case 0x4015:
		val = bus.Read8(internal)
		if !same {
			bus.Read8(addr)
		}

	case 0x4016, 0x4017:
		// Reading the same joypad register twice in a row doesn't clock the
		// shift register.
		if prevAddr != internal {
			val = bus.Read8(internal)
		}

		if !same {
			// Merge with the external bus value. Open bus bits come from the
			// external value, the other are ANDed (bus conflict).
			const openbusMask = uint8(0xE0)
			ext := bus.Read8(addr)
			val = (ext & openbusMask) | (val &^ openbusMask & ext &^ openbusMask)
		}

	default:
		val = bus.Read8(addr)
	}

	return val, internal
}
