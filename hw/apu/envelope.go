package apu

// envelope generates a decreasing saw envelope, or a constant volume, for
// the square and noise channels. Bit 5 of the control register is shared
// between the envelope loop flag and the length counter halt flag.
type envelope struct {
	constVolume bool
	volume      uint8

	start   bool
	divider int8
	counter uint8

	lenCounter lengthCounter
}

func (env *envelope) init(val uint8) {
	env.lenCounter.init(val&0x20 == 0x20)
	env.constVolume = val&0x10 == 0x10
	env.volume = val & 0x0F
}

func (env *envelope) restart() {
	env.start = true
}

func (env *envelope) output() uint8 {
	if !env.lenCounter.status() {
		return 0
	}
	if env.constVolume {
		return env.volume
	}
	return env.counter
}

func (env *envelope) reset(soft bool) {
	env.lenCounter.reset(soft)
	env.constVolume = false
	env.volume = 0
	env.start = false
	env.divider = 0
	env.counter = 0
}

func (env *envelope) tick() {
	if env.start {
		env.start = false
		env.counter = 15
		env.divider = int8(env.volume)
		return
	}

	env.divider--
	if env.divider < 0 {
		env.divider = int8(env.volume)
		if env.counter > 0 {
			env.counter--
		} else if env.lenCounter.halt {
			// Loop flag.
			env.counter = 15
		}
	}
}
