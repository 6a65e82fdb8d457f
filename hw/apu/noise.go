package apu

// noiseChannel generates pseudo-random 1-bit noise at 16 different
// frequencies.
//
//	      Timer --> Shift Register   Length Counter
//	                    |                |
//	                    v                v
//	Envelope -------> Gate ----------> Gate --> (to mixer)
type noiseChannel struct {
	apu      *APU
	env      envelope
	timer    timer
	periods  *[16]uint16
	shiftReg uint16
	mode     bool
}

func newNoiseChannel(apu *APU, periods *[16]uint16) noiseChannel {
	return noiseChannel{
		apu:     apu,
		periods: periods,
		env: envelope{
			lenCounter: lengthCounter{channel: Noise},
		},
		timer: timer{
			channel: Noise,
			mixer:   apu.mixer,
		},
	}
}

func (nc *noiseChannel) write(reg uint16, val uint8) {
	switch reg & 0x03 {
	case 0: // loop, constant volume, volume
		nc.env.init(val)
	case 1: // unused
	case 2: // mode, period
		nc.timer.period = nc.periods[val&0x0F] - 1
		nc.mode = val&0x80 != 0
	case 3: // length counter load
		nc.env.lenCounter.load(val >> 3)
		nc.env.restart()
	}

	nc.apu.log.DebugZ("write noise").
		Uint16("reg", reg&0x03).
		Hex8("val", val).
		End()
}

func (nc *noiseChannel) run(targetCycle uint32) {
	for nc.timer.run(targetCycle) {
		// Feedback is the exclusive-OR of bit 0 and one other bit: bit 6 if
		// the mode flag is set, otherwise bit 1.
		modebit := 1
		if nc.mode {
			modebit = 6
		}

		feedback := (nc.shiftReg & 0x01) ^ ((nc.shiftReg >> modebit) & 0x01)
		nc.shiftReg >>= 1
		nc.shiftReg |= feedback << 14

		// The mixer receives the current envelope volume except when bit 0
		// of the shift register is set.
		if nc.shiftReg&0x01 == 0x01 {
			nc.timer.addOutput(0)
		} else {
			nc.timer.addOutput(int8(nc.env.output()))
		}
	}
}

func (nc *noiseChannel) reset(soft bool) {
	nc.env.reset(soft)
	nc.timer.reset()

	nc.timer.period = nc.periods[0] - 1
	nc.shiftReg = 1
	nc.mode = false
}

func (nc *noiseChannel) output() uint8 {
	return uint8(nc.timer.lastOutput)
}
