package apu

import "nescore/hw/hwdefs"

// FrameType is the kind of clock the frame counter sends to the channels.
type FrameType uint8

const (
	NoFrame FrameType = iota
	// Quarter frames clock the envelopes and the triangle linear counter.
	QuarterFrame
	// Half frames clock quarter frame units, plus the length counters and
	// the sweep units.
	HalfFrame
)

func (ft FrameType) String() string {
	switch ft {
	case QuarterFrame:
		return "quarter"
	case HalfFrame:
		return "half"
	}
	return "none"
}

var frameTypes = [2][6]FrameType{
	{QuarterFrame, HalfFrame, QuarterFrame, NoFrame, HalfFrame, NoFrame},
	{QuarterFrame, HalfFrame, QuarterFrame, NoFrame, HalfFrame, NoFrame},
}

// A FrameEvent is one step of the frame counter sequence.
type FrameEvent struct {
	Cycle int32 // CPU cycles since the start of the sequence
	Type  FrameType
	IRQ   bool // frame interrupt asserted
}

// FrameCounterEvents returns the sequence of events of the frame counter, in
// 4-step (mode 0) or 5-step (mode 1) mode, with the timings of the APU region.
func (a *APU) FrameCounterEvents(mode int) []FrameEvent {
	mode &= 1
	evs := make([]FrameEvent, 0, 6)
	for i, cycle := range a.fc.steps[mode] {
		evs = append(evs, FrameEvent{
			Cycle: cycle,
			Type:  frameTypes[mode][i],
			IRQ:   mode == 0 && i >= 3,
		})
	}
	return evs
}

// frameCounter is the frame sequencer, controlled by $4017.
type frameCounter struct {
	apu   *APU
	steps [2][6]int32

	prevCycle  int32
	curStep    int
	stepMode   int // 0: 4-step mode, 1: 5-step mode
	inhibitIRQ bool
	blockTick  uint8

	// Pending $4017 value, or -1, and the number of cycles before it's
	// applied.
	newval     int16
	writeDelay int8
}

func (fc *frameCounter) reset(soft bool) {
	fc.prevCycle = 0

	// The mode is unchanged by a soft reset.
	if !soft {
		fc.stepMode = 0
	}

	fc.curStep = 0

	// After reset or power-up, the APU acts as if $4017 was written with the
	// current mode, a few cycles before the first instruction.
	fc.newval = 0
	if fc.stepMode != 0 {
		fc.newval = 0x80
	}
	fc.writeDelay = 3
	fc.inhibitIRQ = false
	fc.blockTick = 0
}

func (fc *frameCounter) write(val uint8) {
	fc.newval = int16(val)

	// The sequence is reset 3 CPU cycles after the write when it happens on
	// an APU cycle, 4 cycles otherwise.
	if fc.apu.host.CPUCycles()&0x01 != 0 {
		fc.writeDelay = 4
	} else {
		fc.writeDelay = 3
	}

	fc.inhibitIRQ = val&0x40 == 0x40
	if fc.inhibitIRQ {
		fc.apu.setIRQ(hwdefs.FrameCounter, false)
	}

	fc.apu.log.DebugZ("write frame counter").
		Hex8("val", val).
		Bool("inhibit", fc.inhibitIRQ).
		End()
}

// run runs the frame counter for at most cyclesToRun cycles, stopping at the
// next step. It returns the number of cycles ran and decrements cyclesToRun
// accordingly.
func (fc *frameCounter) run(cyclesToRun *int32) uint32 {
	var ran int32

	stepCycle := fc.steps[fc.stepMode][fc.curStep]
	if fc.prevCycle+*cyclesToRun >= stepCycle {
		if !fc.inhibitIRQ && fc.stepMode == 0 && fc.curStep >= 3 {
			// The IRQ is asserted during the last 3 cycles of the 4-step
			// sequence.
			fc.apu.setIRQ(hwdefs.FrameCounter, true)
		}

		ftyp := frameTypes[fc.stepMode][fc.curStep]
		if ftyp != NoFrame && fc.blockTick == 0 {
			fc.apu.frameCounterTick(ftyp)

			// A $4017 write can't clock the units again during the next
			// cycle.
			fc.blockTick = 2
		}

		if stepCycle < fc.prevCycle {
			ran = 0
		} else {
			ran = stepCycle - fc.prevCycle
		}
		*cyclesToRun -= ran

		fc.curStep++
		if fc.curStep == 6 {
			fc.curStep = 0
			fc.prevCycle = 0
		} else {
			fc.prevCycle += ran
		}
	} else {
		ran = *cyclesToRun
		*cyclesToRun = 0
		fc.prevCycle += ran
	}

	if fc.newval >= 0 {
		fc.writeDelay--
		if fc.writeDelay == 0 {
			if fc.newval&0x80 == 0x80 {
				fc.stepMode = 1
			} else {
				fc.stepMode = 0
			}

			fc.writeDelay = -1
			fc.curStep = 0
			fc.prevCycle = 0
			fc.newval = -1

			if fc.stepMode != 0 && fc.blockTick == 0 {
				// Entering 5-step mode immediately clocks both the quarter
				// and half frame units.
				fc.apu.frameCounterTick(HalfFrame)
				fc.blockTick = 2
			}
		}
	}

	if fc.blockTick > 0 {
		fc.blockTick--
	}

	return uint32(ran)
}
