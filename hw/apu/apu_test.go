package apu

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nescore/emu/log"
	"nescore/hw/hwdefs"
)

type testHost struct {
	cycles int64
	starts int
	stops  int
}

func (h *testHost) StartDMCTransfer() { h.starts++ }
func (h *testHost) StopDMCTransfer()  { h.stops++ }
func (h *testHost) CPUCycles() int64  { return h.cycles }

func newTestAPU(t *testing.T, region hwdefs.Region) (*APU, *testHost) {
	t.Helper()
	h := &testHost{}
	return New(h, hwdefs.Params(region), DefaultSampleRate, log.ModLog{}), h
}

func tick(a *APU, h *testHost, n int) {
	for range n {
		h.cycles++
		a.Tick()
	}
}

func TestLengthCounterLoad(t *testing.T) {
	tests := []struct {
		idx  uint8
		want uint8
	}{
		{0x00, 10},
		{0x01, 254},
		{0x03, 2},
		{0x10, 12},
		{0x1F, 30},
	}
	for _, tt := range tests {
		a, h := newTestAPU(t, hwdefs.NTSC)
		a.WriteReg(0x4015, 0x01)
		a.WriteReg(0x4003, tt.idx<<3)
		tick(a, h, 1)

		if got := a.square1.envelope.lenCounter.counter; got != tt.want {
			t.Errorf("length index %#02x: counter = %d, want %d", tt.idx, got, tt.want)
		}
	}

	// Loads are ignored while the channel is disabled.
	a, h := newTestAPU(t, hwdefs.NTSC)
	a.WriteReg(0x400F, 0x08)
	tick(a, h, 1)
	if a.Status()&0x08 != 0 {
		t.Errorf("noise length counter loaded while disabled")
	}
}

func TestLengthCounterHalfFrames(t *testing.T) {
	tests := []struct {
		name string
		ctrl uint8 // $4000
		want uint8 // status after 2 half frames
	}{
		{"counting", 0x00, 0x00},
		{"halted", 0x20, 0x01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, h := newTestAPU(t, hwdefs.NTSC)
			a.WriteReg(0x4015, 0x01)
			a.WriteReg(0x4000, tt.ctrl)
			a.WriteReg(0x4003, 0x03<<3) // length 2

			tick(a, h, 1)
			if a.Status()&0x01 == 0 {
				t.Fatalf("length counter not loaded")
			}
			tick(a, h, 14000)
			if a.Status()&0x01 == 0 {
				t.Fatalf("length counter expired before the first half frame")
			}
			tick(a, h, 16000)
			if got := a.Status() & 0x01; got != tt.want {
				t.Errorf("status = %#02x after 2 half frames, want %#02x", got, tt.want)
			}
		})
	}

	// Disabling the channel clears its length counter.
	a, h := newTestAPU(t, hwdefs.NTSC)
	a.WriteReg(0x4015, 0x04)
	a.WriteReg(0x400B, 0x08)
	tick(a, h, 1)
	if a.Status()&0x04 == 0 {
		t.Fatalf("triangle length counter not loaded")
	}
	a.WriteReg(0x4015, 0x00)
	if a.Status()&0x04 != 0 {
		t.Errorf("triangle length counter not cleared")
	}
}

func TestFrameIRQ(t *testing.T) {
	a, h := newTestAPU(t, hwdefs.NTSC)

	n := 0
	for a.IRQ() == 0 && n < 100000 {
		tick(a, h, 1)
		n++
	}
	// $4017 is considered written 3 cycles after reset, the IRQ is then
	// asserted at the 4th step of the sequence.
	if want := 3 + 29828; n != want {
		t.Errorf("frame IRQ after %d cycles, want %d", n, want)
	}
	if a.IRQ() != hwdefs.FrameCounter {
		t.Fatalf("IRQ() = %v, want %v", a.IRQ(), hwdefs.FrameCounter)
	}

	if st := a.ReadStatus(); st&0x40 == 0 {
		t.Errorf("status = %#02x, frame interrupt flag not set", st)
	}
	if a.IRQ() != 0 {
		t.Errorf("reading $4015 didn't clear the frame interrupt")
	}

	tests := []struct {
		name string
		val  uint8
	}{
		{"inhibited", 0x40},
		{"5-step", 0x80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, h := newTestAPU(t, hwdefs.NTSC)
			a.WriteReg(0x4017, tt.val)
			for range 100000 {
				tick(a, h, 1)
				if a.IRQ() != 0 {
					t.Fatalf("unexpected IRQ %v", a.IRQ())
				}
			}
		})
	}

	// Setting the inhibit flag clears a pending frame interrupt.
	a, h = newTestAPU(t, hwdefs.NTSC)
	tick(a, h, 30000)
	if a.IRQ() == 0 {
		t.Fatalf("frame IRQ not asserted")
	}
	a.WriteReg(0x4017, 0x40)
	if a.IRQ() != 0 {
		t.Errorf("frame IRQ still asserted after inhibit")
	}
}

func TestFrameCounterEvents(t *testing.T) {
	a, _ := newTestAPU(t, hwdefs.NTSC)

	want4 := []FrameEvent{
		{Cycle: 7457, Type: QuarterFrame},
		{Cycle: 14913, Type: HalfFrame},
		{Cycle: 22371, Type: QuarterFrame},
		{Cycle: 29828, Type: NoFrame, IRQ: true},
		{Cycle: 29829, Type: HalfFrame, IRQ: true},
		{Cycle: 29830, Type: NoFrame, IRQ: true},
	}
	if diff := cmp.Diff(want4, a.FrameCounterEvents(0)); diff != "" {
		t.Errorf("4-step mode mismatch (-want +got):\n%s", diff)
	}

	want5 := []FrameEvent{
		{Cycle: 7457, Type: QuarterFrame},
		{Cycle: 14913, Type: HalfFrame},
		{Cycle: 22371, Type: QuarterFrame},
		{Cycle: 29829, Type: NoFrame},
		{Cycle: 37281, Type: HalfFrame},
		{Cycle: 37282, Type: NoFrame},
	}
	if diff := cmp.Diff(want5, a.FrameCounterEvents(1)); diff != "" {
		t.Errorf("5-step mode mismatch (-want +got):\n%s", diff)
	}

	pal, _ := newTestAPU(t, hwdefs.PAL)
	if got := pal.FrameCounterEvents(0)[0].Cycle; got != 8313 {
		t.Errorf("PAL first step at %d, want 8313", got)
	}
}

func TestMix(t *testing.T) {
	if got := Mix(0, 0, 0, 0, 0); got != 0 {
		t.Errorf("silence = %v, want 0", got)
	}

	const eps = 1e-9

	pulse := 95.88 / (8128.0/30 + 100)
	if got := Mix(15, 15, 0, 0, 0); math.Abs(got-pulse) > eps {
		t.Errorf("Mix(15, 15, 0, 0, 0) = %v, want %v", got, pulse)
	}

	tnd := 159.79 / (1/(15.0/8227) + 100)
	if got := Mix(0, 0, 15, 0, 0); math.Abs(got-tnd) > eps {
		t.Errorf("Mix(0, 0, 15, 0, 0) = %v, want %v", got, tnd)
	}

	full := Mix(15, 15, 15, 15, 127)
	if full <= 0 || full >= 1 {
		t.Errorf("full output = %v, want in (0, 1)", full)
	}

	// The output increases with each input.
	prev := 0.0
	for v := range uint8(16) {
		cur := Mix(v, v, v, v, v*8)
		if v > 0 && cur <= prev {
			t.Errorf("Mix not increasing at %d: %v <= %v", v, cur, prev)
		}
		prev = cur
	}
}

func TestSamples(t *testing.T) {
	const frameCycles = 29780

	t.Run("silence", func(t *testing.T) {
		a, h := newTestAPU(t, hwdefs.NTSC)
		tick(a, h, frameCycles)
		a.EndFrame()
		for i, s := range a.Samples() {
			if s != 0 {
				t.Fatalf("sample %d = %d, want 0", i, s)
			}
		}
	})

	t.Run("square", func(t *testing.T) {
		a, h := newTestAPU(t, hwdefs.NTSC)
		a.WriteReg(0x4015, 0x01)
		a.WriteReg(0x4000, 0xBF) // 50% duty, halted, constant volume 15
		a.WriteReg(0x4002, 0xFD)
		a.WriteReg(0x4003, 0x00)

		var samples []int16
		for range 3 {
			tick(a, h, frameCycles)
			a.EndFrame()
			samples = append(samples, a.Samples()...)
		}

		// 3 frames at 44.1kHz.
		if n := len(samples); n < 3*730 || n > 3*737 {
			t.Errorf("got %d samples, want about %d", n, 3*734)
		}

		var peak int16
		for _, s := range samples {
			peak = max(peak, s, -s)
		}
		if peak < 1000 {
			t.Errorf("peak amplitude %d, square channel not audible", peak)
		}

		if got := a.Samples(); len(got) != 0 {
			t.Errorf("samples read twice")
		}
	})
}

func TestDMC(t *testing.T) {
	a, h := newTestAPU(t, hwdefs.NTSC)

	a.WriteReg(0x4011, 0x45)
	if got := a.Outputs()[DPCM]; got != 0x45 {
		t.Errorf("DMC output = %#02x after direct load, want 0x45", got)
	}

	a.WriteReg(0x4010, 0x8F) // IRQ enabled, no loop
	a.WriteReg(0x4012, 0x01)
	a.WriteReg(0x4013, 0x00) // 1 byte
	a.WriteReg(0x4015, 0x10)

	if a.Status()&0x10 == 0 {
		t.Fatalf("DMC not active after $4015 write")
	}
	tick(a, h, 4)
	if h.starts != 1 {
		t.Fatalf("DMC transfers started = %d, want 1", h.starts)
	}
	if got := a.DMCAddress(); got != 0xC040 {
		t.Errorf("DMC address = %#04x, want 0xc040", got)
	}

	a.DMCFetched(0xAA)
	if got := a.Status(); got&0x90 != 0x80 {
		t.Errorf("status = %#02x, want DMC IRQ and sample finished", got)
	}
	if a.IRQ() != hwdefs.DMC {
		t.Errorf("IRQ() = %v, want %v", a.IRQ(), hwdefs.DMC)
	}

	// Writing $4015 clears the DMC interrupt.
	a.WriteReg(0x4015, 0x00)
	if a.IRQ() != 0 {
		t.Errorf("DMC IRQ not cleared by $4015 write")
	}
}

func TestSoftReset(t *testing.T) {
	a, h := newTestAPU(t, hwdefs.NTSC)
	a.WriteReg(0x4017, 0x80)
	a.WriteReg(0x4015, 0x05)
	a.WriteReg(0x4008, 0x80)
	a.WriteReg(0x400B, 0x08)
	a.WriteReg(0x4003, 0x08)
	tick(a, h, 10)

	a.Reset(hwdefs.SoftReset)

	if a.fc.stepMode != 1 {
		t.Errorf("frame counter mode changed by soft reset")
	}
	if got := a.Status(); got != 0x04 {
		t.Errorf("status = %#02x after soft reset, want 0x04 (triangle only)", got)
	}

	a.Reset(hwdefs.HardReset)
	if a.fc.stepMode != 0 {
		t.Errorf("frame counter mode not reset by hard reset")
	}
}
