package apu

// There are two square channels beginning at registers $4000 and $4004. Each
// contains the following: Envelope Generator, Sweep Unit, Timer with
// divide-by-two on the output, 8-step sequencer, Length Counter.
//
//	               +---------+    +---------+
//	               |  Sweep  |--->|Timer / 2|
//	               +---------+    +---------+
//	                    |              |
//	                    |              v
//	                    |         +---------+    +---------+
//	                    |         |Sequencer|    | Length  |
//	                    |         +---------+    +---------+
//	                    |              |              |
//	                    v              v              v
//	+---------+        |\             |\             |\          +---------+
//	|Envelope |------->| >----------->| >----------->| >-------->|   DAC   |
//	+---------+        |/             |/             |/          +---------+
type squareChannel struct {
	apu      *APU
	envelope envelope
	timer    timer

	// The first square channel negates its sweep adjustment with one's
	// complement, the second with two's complement.
	isChannel1 bool

	duty    uint8
	dutyPos uint8

	sweepEnabled bool
	sweepPeriod  uint8
	sweepNegate  bool
	sweepShift   uint8
	reloadSweep  bool
	sweepDivider uint8
	sweepTarget  uint32
	realPeriod   uint16
}

func newSquareChannel(apu *APU, channel Channel) squareChannel {
	return squareChannel{
		apu:        apu,
		isChannel1: channel == Square1,
		envelope: envelope{
			lenCounter: lengthCounter{channel: channel},
		},
		timer: timer{
			channel: channel,
			mixer:   apu.mixer,
		},
	}
}

// write writes one of the 4 channel registers.
func (sc *squareChannel) write(reg uint16, val uint8) {
	switch reg & 0x03 {
	case 0: // duty, loop, constant volume, volume
		sc.envelope.init(val)
		sc.duty = (val & 0xC0) >> 6

	case 1: // sweep
		sc.initSweep(val)

	case 2: // timer low
		sc.setPeriod(sc.realPeriod&0x0700 | uint16(val))

	case 3: // length counter load, timer high
		sc.envelope.lenCounter.load(val >> 3)
		sc.setPeriod(sc.realPeriod&0xFF | uint16(val&0x07)<<8)

		// The sequencer is restarted at the first value of the current
		// sequence, the envelope is also restarted.
		sc.dutyPos = 0
		sc.envelope.restart()
	}

	sc.apu.log.DebugZ("write square").
		Bool("ch1", sc.isChannel1).
		Uint16("reg", reg&0x03).
		Hex8("val", val).
		End()
}

func (sc *squareChannel) isMuted() bool {
	// A period of t < 8, either set explicitly or via a sweep period update,
	// silences the corresponding pulse channel.
	return sc.realPeriod < 8 || (!sc.sweepNegate && sc.sweepTarget > 0x7FF)
}

func (sc *squareChannel) initSweep(val uint8) {
	sc.sweepEnabled = val&0x80 == 0x80
	sc.sweepNegate = val&0x08 == 0x08

	// The divider's period is set to P + 1.
	sc.sweepPeriod = (val&0x70)>>4 + 1
	sc.sweepShift = val & 0x07

	sc.updateTargetPeriod()
	sc.reloadSweep = true
}

func (sc *squareChannel) updateTargetPeriod() {
	shift := sc.realPeriod >> sc.sweepShift
	if sc.sweepNegate {
		sc.sweepTarget = uint32(sc.realPeriod - shift)
		if sc.isChannel1 {
			sc.sweepTarget--
		}
	} else {
		sc.sweepTarget = uint32(sc.realPeriod + shift)
	}
}

func (sc *squareChannel) setPeriod(period uint16) {
	sc.realPeriod = period
	sc.timer.period = sc.realPeriod*2 + 1
	sc.updateTargetPeriod()
}

// duty cycle sequences for the square channels.
var squareDuty = [4][8]uint8{
	{0, 0, 0, 0, 0, 0, 0, 1},
	{0, 0, 0, 0, 0, 0, 1, 1},
	{0, 0, 0, 0, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 0, 0},
}

func (sc *squareChannel) updateOutput() {
	if sc.isMuted() {
		sc.timer.addOutput(0)
		return
	}
	sc.timer.addOutput(int8(squareDuty[sc.duty][sc.dutyPos] * sc.envelope.output()))
}

func (sc *squareChannel) run(targetCycle uint32) {
	for sc.timer.run(targetCycle) {
		sc.dutyPos = (sc.dutyPos - 1) & 0x07
		sc.updateOutput()
	}
}

func (sc *squareChannel) reset(soft bool) {
	sc.envelope.reset(soft)
	sc.timer.reset()

	sc.duty = 0
	sc.dutyPos = 0
	sc.realPeriod = 0

	sc.sweepEnabled = false
	sc.sweepPeriod = 0
	sc.sweepNegate = false
	sc.sweepShift = 0
	sc.reloadSweep = false
	sc.sweepDivider = 0
	sc.sweepTarget = 0
	sc.updateTargetPeriod()
}

func (sc *squareChannel) tickSweep() {
	sc.sweepDivider--
	if sc.sweepDivider == 0 {
		if sc.sweepShift > 0 && sc.sweepEnabled && sc.realPeriod >= 8 && sc.sweepTarget <= 0x7FF {
			sc.setPeriod(uint16(sc.sweepTarget))
		}
		sc.sweepDivider = sc.sweepPeriod
	}

	if sc.reloadSweep {
		sc.sweepDivider = sc.sweepPeriod
		sc.reloadSweep = false
	}
}

func (sc *squareChannel) output() uint8 {
	return uint8(sc.timer.lastOutput)
}
