package apu

import (
	"slices"

	"github.com/arl/blip"
)

const (
	DefaultSampleRate = 44100
	MinSampleRate     = 8000
	MaxSampleRate     = 96000
)

// Maximum number of CPU cycles in an audio frame. An audio frame is ended
// early when a video frame lasts longer.
const cycleLength = 10000

// Amplitude of the 16-bit output for a mixer output of 1.0.
const outputScale = 32000

// Mix computes the output level, in [0, 1), of the non-linear mixer for the
// given channel DAC values: square channels in [0, 15], triangle in [0, 15],
// noise in [0, 15], DMC in [0, 127].
func Mix(sq1, sq2, tri, noise, dmc uint8) float64 {
	var pulse, tnd float64
	if sum := float64(sq1) + float64(sq2); sum != 0 {
		pulse = 95.88 / (8128.0/sum + 100)
	}
	if sum := float64(tri)/8227 + float64(noise)/12241 + float64(dmc)/22638; sum != 0 {
		tnd = 159.79 / (1/sum + 100)
	}
	return pulse + tnd
}

// mixer accumulates the channel output changes of an audio frame, then
// mixes them and feeds the result into a band-limited synthesis buffer.
type mixer struct {
	buf *blip.Buffer

	sampleRate int
	clockRate  float64

	prevOut    int32
	timestamps []uint32
	deltas     [NumChannels][cycleLength]int16
	levels     [NumChannels]int16

	out     []int16 // samples ready to be read
	scratch []int16
}

func newMixer(clockRate float64, sampleRate int) *mixer {
	// Enough room for a full audio frame.
	nsamples := int(float64(sampleRate)*cycleLength/clockRate) + 16

	m := &mixer{
		buf:        blip.NewBuffer(nsamples),
		sampleRate: sampleRate,
		clockRate:  clockRate,
		scratch:    make([]int16, nsamples),
	}
	m.reset()
	return m
}

func (m *mixer) reset() {
	m.prevOut = 0
	m.buf.Clear()
	m.buf.SetRates(m.clockRate, float64(m.sampleRate))
	m.timestamps = m.timestamps[:0]
	for i := range m.deltas {
		clear(m.deltas[i][:])
	}
	clear(m.levels[:])
	m.out = m.out[:0]
}

func (m *mixer) addDelta(ch Channel, time uint32, delta int16) {
	if delta != 0 {
		m.timestamps = append(m.timestamps, time)
		m.deltas[ch][time] += delta
	}
}

func (m *mixer) output() int32 {
	l := &m.levels
	return int32(outputScale * Mix(uint8(l[Square1]), uint8(l[Square2]), uint8(l[Triangle]), uint8(l[Noise]), uint8(l[DPCM])))
}

// endFrame mixes the deltas of the audio frame which lasted time cycles, and
// makes the resulting samples available.
func (m *mixer) endFrame(time uint32) {
	slices.Sort(m.timestamps)
	m.timestamps = slices.Compact(m.timestamps)

	for _, stamp := range m.timestamps {
		for ch := range NumChannels {
			m.levels[ch] += m.deltas[ch][stamp]
		}

		out := m.output()
		m.buf.AddDelta(uint64(stamp), out-m.prevOut)
		m.prevOut = out
	}

	m.buf.EndFrame(int(time))

	n := m.buf.ReadSamples(m.scratch, len(m.scratch), blip.Mono)
	m.out = append(m.out, m.scratch[:n]...)

	m.timestamps = m.timestamps[:0]
	for i := range m.deltas {
		clear(m.deltas[i][:])
	}
}
