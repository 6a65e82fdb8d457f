package apu

// timer is the divider clocking a channel sequencer. Each time the channel
// output changes, the delta is sent to the mixer with the cycle it happened
// at.
type timer struct {
	prevCycle  uint32
	counter    uint16
	period     uint16
	lastOutput int8

	channel Channel
	mixer   *mixer
}

func (t *timer) reset() {
	t.counter = 0
	t.period = 0
	t.prevCycle = 0
	t.lastOutput = 0
}

func (t *timer) addOutput(output int8) {
	if output != t.lastOutput {
		t.mixer.addDelta(t.channel, t.prevCycle, int16(output-t.lastOutput))
		t.lastOutput = output
	}
}

// run advances the timer up to targetCycle, or until the counter reaches 0.
// It returns true in the latter case, the caller then clocks the sequencer
// and calls run again.
func (t *timer) run(targetCycle uint32) bool {
	cyclesToRun := uint16(targetCycle - t.prevCycle)

	if cyclesToRun > t.counter {
		t.prevCycle += uint32(t.counter) + 1
		t.counter = t.period
		return true
	}

	t.counter -= cyclesToRun
	t.prevCycle = targetCycle
	return false
}

func (t *timer) endFrame() {
	t.prevCycle = 0
}
