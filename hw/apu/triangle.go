package apu

// The triangleChannel contains the following: Timer, 32-step sequencer, Length
// Counter, Linear Counter, 4-bit DAC.
//
//	+---------+    +---------+
//	|LinearCtr|    | Length  |
//	+---------+    +---------+
//	     |              |
//	     v              v
//	+---------+        |\             |\         +---------+    +---------+
//	|  Timer  |------->| >----------->| >------->|Sequencer|--->|   DAC   |
//	+---------+        |/             |/         +---------+    +---------+
type triangleChannel struct {
	apu        *APU
	lenCounter lengthCounter
	timer      timer

	linearCounter uint8
	linearReload  uint8
	reloadFlag    bool
	linearCtrl    bool

	pos uint8 // position in triangleSequence
}

func newTriangleChannel(apu *APU) triangleChannel {
	return triangleChannel{
		apu:        apu,
		lenCounter: lengthCounter{channel: Triangle},
		timer: timer{
			channel: Triangle,
			mixer:   apu.mixer,
		},
	}
}

var triangleSequence = [32]int8{
	15, 14, 13, 12, 11, 10, 9, 8,
	7, 6, 5, 4, 3, 2, 1, 0,
	0, 1, 2, 3, 4, 5, 6, 7,
	8, 9, 10, 11, 12, 13, 14, 15,
}

func (tc *triangleChannel) run(targetCycle uint32) {
	for tc.timer.run(targetCycle) {
		// The sequencer is clocked by the timer as long as both the linear
		// counter and the length counter are nonzero.
		if tc.lenCounter.status() && tc.linearCounter > 0 {
			tc.pos = (tc.pos + 1) & 0x1F

			// Ultrasonic periods are not output, they would only cause pops.
			if tc.timer.period >= 2 {
				tc.timer.addOutput(triangleSequence[tc.pos])
			}
		}
	}
}

func (tc *triangleChannel) reset(soft bool) {
	tc.timer.reset()
	tc.lenCounter.reset(soft)

	tc.linearCounter = 0
	tc.linearReload = 0
	tc.reloadFlag = false
	tc.linearCtrl = false
	tc.pos = 0
}

func (tc *triangleChannel) write(reg uint16, val uint8) {
	switch reg & 0x03 {
	case 0: // control, linear counter reload
		tc.linearCtrl = val&0x80 == 0x80
		tc.linearReload = val & 0x7F
		tc.lenCounter.init(tc.linearCtrl)

	case 1: // unused

	case 2: // timer low
		tc.timer.period = tc.timer.period&0xFF00 | uint16(val)

	case 3: // length counter load, timer high
		tc.lenCounter.load(val >> 3)
		tc.timer.period = tc.timer.period&0xFF | uint16(val&0x07)<<8
		tc.reloadFlag = true
	}

	tc.apu.log.DebugZ("write triangle").
		Uint16("reg", reg&0x03).
		Hex8("val", val).
		End()
}

func (tc *triangleChannel) tickLinearCounter() {
	if tc.reloadFlag {
		tc.linearCounter = tc.linearReload
	} else if tc.linearCounter > 0 {
		tc.linearCounter--
	}

	if !tc.linearCtrl {
		tc.reloadFlag = false
	}
}

func (tc *triangleChannel) output() uint8 {
	return uint8(tc.timer.lastOutput)
}
