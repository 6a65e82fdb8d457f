// Package apu implements the 2A03 audio processing unit: 2 square channels,
// a triangle channel, a noise channel and a delta modulation channel, driven
// by the frame counter and mixed into 16-bit mono samples.
//
// The APU is ticked once per CPU cycle. Channels only report changes of
// their output level, the mixer turns those into samples through
// band-limited synthesis.
package apu

import (
	"nescore/emu/log"
	"nescore/hw/hwdefs"
)

type APU struct {
	host  Host
	log   log.ModLog
	mixer *mixer

	square1  squareChannel
	square2  squareChannel
	triangle triangleChannel
	noise    noiseChannel
	dmc      dmcChannel
	fc       frameCounter

	noisePeriods [16]uint16
	dmcPeriods   [16]uint16

	irq hwdefs.IRQSource

	prevCycle uint32
	curCycle  uint32
}

// New creates an APU with the timings of region params, producing samples at
// sampleRate Hz (DefaultSampleRate if 0).
func New(host Host, params hwdefs.RegionParams, sampleRate int, lg log.ModLog) *APU {
	if sampleRate == 0 {
		sampleRate = DefaultSampleRate
	}

	a := &APU{
		host:         host,
		log:          lg,
		mixer:        newMixer(float64(params.CPUFrequency), sampleRate),
		noisePeriods: params.NoisePeriods,
		dmcPeriods:   params.DMCPeriods,
	}
	a.square1 = newSquareChannel(a, Square1)
	a.square2 = newSquareChannel(a, Square2)
	a.triangle = newTriangleChannel(a)
	a.noise = newNoiseChannel(a, &a.noisePeriods)
	a.dmc = newDMC(a, &a.dmcPeriods)
	a.fc = frameCounter{apu: a, steps: params.FrameCounterSteps}

	a.Reset(hwdefs.HardReset)
	return a
}

// SampleRate returns the output sample rate.
func (a *APU) SampleRate() int {
	return a.mixer.sampleRate
}

// Reset resets the APU registers. After a soft reset, the frame counter mode
// is preserved and the triangle length counter is left untouched.
func (a *APU) Reset(soft bool) {
	a.curCycle = 0
	a.prevCycle = 0
	a.irq = 0

	a.square1.reset(soft)
	a.square2.reset(soft)
	a.triangle.reset(soft)
	a.noise.reset(soft)
	a.dmc.reset(soft)
	a.fc.reset(soft)
	a.mixer.reset()

	a.log.InfoZ("reset").Bool("soft", soft).End()
}

// IRQ returns the APU sources currently asserting the CPU IRQ line.
func (a *APU) IRQ() hwdefs.IRQSource {
	return a.irq
}

func (a *APU) setIRQ(src hwdefs.IRQSource, asserted bool) {
	if asserted {
		if a.irq&src == 0 {
			a.log.DebugZ("IRQ asserted").Stringer("src", src).End()
		}
		a.irq |= src
	} else {
		a.irq &^= src
	}
}

// Status returns the value of $4015, without side effects. Bit 5 is open bus,
// it's left to 0.
func (a *APU) Status() uint8 {
	var status uint8
	if a.square1.envelope.lenCounter.status() {
		status |= 0x01
	}
	if a.square2.envelope.lenCounter.status() {
		status |= 0x02
	}
	if a.triangle.lenCounter.status() {
		status |= 0x04
	}
	if a.noise.env.lenCounter.status() {
		status |= 0x08
	}
	if a.dmc.status() {
		status |= 0x10
	}
	if a.irq&hwdefs.FrameCounter != 0 {
		status |= 0x40
	}
	if a.irq&hwdefs.DMC != 0 {
		status |= 0x80
	}
	return status
}

// ReadStatus reads $4015. It clears the frame interrupt flag.
func (a *APU) ReadStatus() uint8 {
	a.run()
	status := a.Status()
	a.setIRQ(hwdefs.FrameCounter, false)
	return status
}

// WriteReg writes the APU register at addr: $4000-$4013, $4015 or $4017.
// Other addresses are ignored.
func (a *APU) WriteReg(addr uint16, val uint8) {
	a.run()

	switch {
	case addr >= 0x4000 && addr <= 0x4003:
		a.square1.write(addr, val)
	case addr >= 0x4004 && addr <= 0x4007:
		a.square2.write(addr, val)
	case addr >= 0x4008 && addr <= 0x400B:
		a.triangle.write(addr, val)
	case addr >= 0x400C && addr <= 0x400F:
		a.noise.write(addr, val)
	case addr >= 0x4010 && addr <= 0x4013:
		a.dmc.write(addr, val)
	case addr == 0x4015:
		a.writeStatus(val)
	case addr == 0x4017:
		a.fc.write(val)
	}
}

// $4015
func (a *APU) writeStatus(val uint8) {
	a.log.DebugZ("write status").Hex8("val", val).End()

	// Clear the DMC interrupt flag first, since enabling the DMC can trigger
	// an IRQ.
	a.setIRQ(hwdefs.DMC, false)

	a.square1.envelope.lenCounter.setEnabled(val&0x01 != 0)
	a.square2.envelope.lenCounter.setEnabled(val&0x02 != 0)
	a.triangle.lenCounter.setEnabled(val&0x04 != 0)
	a.noise.env.lenCounter.setEnabled(val&0x08 != 0)
	a.dmc.setEnabled(val&0x10 != 0)
}

// Outputs returns the current DAC value of each channel.
func (a *APU) Outputs() [NumChannels]uint8 {
	return [NumChannels]uint8{
		Square1:  a.square1.output(),
		Square2:  a.square2.output(),
		Triangle: a.triangle.output(),
		Noise:    a.noise.output(),
		DPCM:     a.dmc.output(),
	}
}

// DMCAddress returns the address of the next DMC sample byte.
func (a *APU) DMCAddress() uint16 {
	return a.dmc.curaddr
}

// DMCFetched delivers the DMC sample byte read by the DMA unit.
func (a *APU) DMCFetched(val uint8) {
	a.dmc.setReadBuffer(val)
}

func (a *APU) frameCounterTick(ftyp FrameType) {
	// Quarter and half frames clock envelopes and the linear counter.
	a.square1.envelope.tick()
	a.square2.envelope.tick()
	a.triangle.tickLinearCounter()
	a.noise.env.tick()

	if ftyp == HalfFrame {
		// Half frames also clock length counters and sweep units.
		a.square1.envelope.lenCounter.tick()
		a.square2.envelope.lenCounter.tick()
		a.triangle.lenCounter.tick()
		a.noise.env.lenCounter.tick()

		a.square1.tickSweep()
		a.square2.tickSweep()
	}
}

// Tick runs the APU for one CPU cycle.
func (a *APU) Tick() {
	a.curCycle++
	if a.dmc.needToRun {
		a.dmc.processClock()
	}
	a.run()

	if a.curCycle == cycleLength-1 {
		a.endFrame()
	}
}

// EndFrame ends the current audio frame, making its samples available to
// Samples.
func (a *APU) EndFrame() {
	a.endFrame()
}

// Samples returns the samples produced so far and not yet returned. The
// returned slice is only valid until the next call to Tick or EndFrame.
func (a *APU) Samples() []int16 {
	s := a.mixer.out
	a.mixer.out = a.mixer.out[:0]
	return s
}

func (a *APU) endFrame() {
	a.run()

	a.square1.timer.endFrame()
	a.square2.timer.endFrame()
	a.triangle.timer.endFrame()
	a.noise.timer.endFrame()
	a.dmc.timer.endFrame()

	a.mixer.endFrame(a.curCycle)

	a.curCycle = 0
	a.prevCycle = 0
}

// run catches up with the current cycle: the frame counter then all channels.
func (a *APU) run() {
	cyclesToRun := int32(a.curCycle - a.prevCycle)

	for cyclesToRun > 0 {
		a.prevCycle += a.fc.run(&cyclesToRun)

		// Reload length counters after the frame counter has run, so that a
		// length counter is clocked before being reloaded on the same cycle.
		a.square1.envelope.lenCounter.reload()
		a.square2.envelope.lenCounter.reload()
		a.noise.env.lenCounter.reload()
		a.triangle.lenCounter.reload()

		a.square1.run(a.prevCycle)
		a.square2.run(a.prevCycle)
		a.noise.run(a.prevCycle)
		a.triangle.run(a.prevCycle)
		a.dmc.run(a.prevCycle)
	}
}
