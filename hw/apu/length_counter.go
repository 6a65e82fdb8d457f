package apu

var lengthTable = [32]uint8{
	10, 254, 20, 2, 40, 4, 80, 6, 160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22, 192, 24, 72, 26, 16, 28, 32, 30,
}

// lengthCounter silences a channel after a programmed duration. Loads and
// halt flag changes are delayed until after the frame counter has run for
// the current cycle, so that a length counter clocked on the same cycle as a
// reload sees the old value.
type lengthCounter struct {
	channel Channel

	enabled   bool
	halt      bool
	newHalt   bool
	counter   uint8
	reloadVal uint8
	prevVal   uint8
}

func (lc *lengthCounter) init(halt bool) {
	lc.newHalt = halt
}

func (lc *lengthCounter) load(idx uint8) {
	if lc.enabled {
		lc.reloadVal = lengthTable[idx&0x1F]
		lc.prevVal = lc.counter
	}
}

func (lc *lengthCounter) reset(soft bool) {
	lc.enabled = false
	if soft && lc.channel == Triangle {
		// The triangle length counter is unaffected by the reset line.
		return
	}
	lc.halt = false
	lc.newHalt = false
	lc.counter = 0
	lc.reloadVal = 0
	lc.prevVal = 0
}

func (lc *lengthCounter) status() bool {
	return lc.counter > 0
}

func (lc *lengthCounter) reload() {
	if lc.reloadVal != 0 {
		if lc.counter == lc.prevVal {
			lc.counter = lc.reloadVal
		}
		lc.reloadVal = 0
	}
	lc.halt = lc.newHalt
}

func (lc *lengthCounter) tick() {
	if lc.counter > 0 && !lc.halt {
		lc.counter--
	}
}

func (lc *lengthCounter) setEnabled(enabled bool) {
	if !enabled {
		lc.counter = 0
	}
	lc.enabled = enabled
}
