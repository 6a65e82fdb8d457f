package apu

import "nescore/hw/hwdefs"

// The DMC (Delta Modulation Channel) outputs samples composed of 1-bit
// deltas, and its DAC can be directly changed. It contains the following:
// DMA reader, interrupt flag, sample buffer, Timer, output unit, 7-bit
// counter tied to 7-bit DAC.
//
//	+----------+    +---------+
//	|DMA Reader|    |  Timer  |
//	+----------+    +---------+
//	     |               |
//	     |               v
//	+----------+    +---------+     +---------+     +---------+
//	|  Buffer  |----| Output  |---->| Counter |---->|   DAC   |
//	+----------+    +---------+     +---------+     +---------+
type dmcChannel struct {
	apu     *APU
	timer   timer
	periods *[16]uint16

	sampleAddr uint16
	sampleLen  uint16
	outlvl     uint8
	irqEnabled bool
	loop       bool

	curaddr   uint16
	remaining uint16
	readbuf   uint8
	bufEmpty  bool

	shiftReg  uint8
	bitsLeft  uint8
	silence   bool
	needToRun bool

	// Delays, in CPU cycles, before enabling or disabling the channel via
	// $4015 takes effect.
	disableDelay uint8
	startDelay   uint8
}

func newDMC(apu *APU, periods *[16]uint16) dmcChannel {
	return dmcChannel{
		apu:     apu,
		periods: periods,
		silence: true,
		timer: timer{
			channel: DPCM,
			mixer:   apu.mixer,
		},
	}
}

func (dc *dmcChannel) initSample() {
	dc.curaddr = dc.sampleAddr
	dc.remaining = dc.sampleLen
	dc.needToRun = dc.needToRun || dc.remaining > 0
}

func (dc *dmcChannel) reset(soft bool) {
	dc.timer.reset()

	if !soft {
		dc.sampleAddr = 0xC000
		dc.sampleLen = 1
	}

	dc.outlvl = 0
	dc.irqEnabled = false
	dc.loop = false

	dc.curaddr = 0
	dc.remaining = 0
	dc.readbuf = 0
	dc.bufEmpty = true

	dc.shiftReg = 0
	dc.bitsLeft = 8
	dc.silence = true
	dc.needToRun = false
	dc.startDelay = 0
	dc.disableDelay = 0

	dc.timer.period = dc.periods[0] - 1

	// Don't tick on the first cycle.
	dc.timer.counter = dc.timer.period
}

func (dc *dmcChannel) write(reg uint16, val uint8) {
	switch reg & 0x03 {
	case 0: // $4010: IRQ enable, loop, frequency
		dc.irqEnabled = val&0x80 == 0x80
		dc.loop = val&0x40 == 0x40
		dc.timer.period = dc.periods[val&0x0F] - 1

		if !dc.irqEnabled {
			dc.apu.setIRQ(hwdefs.DMC, false)
		}

	case 1: // $4011: direct load
		// The new level is output right away, not on the next timer clock.
		dc.outlvl = val & 0x7F
		dc.timer.addOutput(int8(dc.outlvl))

	case 2: // $4012: sample address = $C000 + $40*val
		dc.sampleAddr = 0xC000 | uint16(val)<<6

	case 3: // $4013: sample length = $10*val + 1 bytes
		dc.sampleLen = uint16(val)<<4 | 0x1
	}

	dc.apu.log.DebugZ("write dmc").
		Uint16("reg", reg&0x03).
		Hex8("val", val).
		End()
}

func (dc *dmcChannel) startTransfer() {
	if dc.bufEmpty && dc.remaining > 0 {
		dc.apu.host.StartDMCTransfer()
	}
}

// setReadBuffer receives the sample byte fetched by the DMA unit.
func (dc *dmcChannel) setReadBuffer(val uint8) {
	if dc.remaining > 0 {
		dc.readbuf = val
		dc.bufEmpty = false

		// Address wraps around to $8000, not $0000.
		dc.curaddr++
		if dc.curaddr == 0 {
			dc.curaddr = 0x8000
		}

		dc.remaining--

		if dc.remaining == 0 {
			if dc.loop {
				// Looped samples never set the IRQ flag.
				dc.initSample()
			} else if dc.irqEnabled {
				dc.apu.setIRQ(hwdefs.DMC, true)
			}
		}
	}

	if dc.sampleLen == 1 && !dc.loop {
		if dc.bitsLeft == 1 && dc.timer.counter < 2 {
			// When the DMA ends on the APU cycle before the bit counter
			// resets, a DMA is triggered and aborted 1 cycle later, causing
			// one halted CPU cycle.
			dc.shiftReg = dc.readbuf
			dc.bufEmpty = false
			dc.initSample()
			dc.disableDelay = 3
		}
	}
}

func (dc *dmcChannel) run(targetCycle uint32) {
	for dc.timer.run(targetCycle) {
		if !dc.silence {
			if dc.shiftReg&0x01 != 0 {
				if dc.outlvl <= 125 {
					dc.outlvl += 2
				}
			} else if dc.outlvl >= 2 {
				dc.outlvl -= 2
			}
			dc.shiftReg >>= 1
		}

		dc.bitsLeft--
		if dc.bitsLeft == 0 {
			dc.bitsLeft = 8
			if dc.bufEmpty {
				dc.silence = true
			} else {
				dc.silence = false
				dc.shiftReg = dc.readbuf
				dc.bufEmpty = true
				dc.needToRun = true
				dc.startTransfer()
			}
		}

		dc.timer.addOutput(int8(dc.outlvl))
	}
}

func (dc *dmcChannel) status() bool {
	return dc.remaining > 0
}

func (dc *dmcChannel) setEnabled(enabled bool) {
	oddCycle := dc.apu.host.CPUCycles()&0x01 != 0

	if !enabled {
		if dc.disableDelay == 0 {
			// Disabling takes effect with a 1 APU cycle delay. A DMA starting
			// during this time gets cancelled, the CPU is still halted for 1
			// cycle.
			if oddCycle {
				dc.disableDelay = 3
			} else {
				dc.disableDelay = 2
			}
		}
		dc.needToRun = true
	} else if dc.remaining == 0 {
		dc.initSample()
		if oddCycle {
			dc.startDelay = 3
		} else {
			dc.startDelay = 2
		}
		dc.needToRun = true
	}
}

// processClock handles the delayed effects of $4015 writes.
func (dc *dmcChannel) processClock() {
	if dc.disableDelay != 0 {
		dc.disableDelay--
		if dc.disableDelay == 0 {
			dc.remaining = 0
			// Abort any transfer that hasn't fully started.
			dc.apu.host.StopDMCTransfer()
		}
	}

	if dc.startDelay != 0 {
		dc.startDelay--
		if dc.startDelay == 0 {
			dc.startTransfer()
		}
	}

	dc.needToRun = dc.disableDelay != 0 || dc.startDelay != 0 || dc.remaining != 0
}

func (dc *dmcChannel) output() uint8 {
	return uint8(dc.timer.lastOutput)
}
