package main

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// wavSink is an emu.AudioSink recording the console audio to a 16-bit mono
// WAV file. Samples are streamed to disk, the header sizes are written on
// Close.
type wavSink struct {
	f   *os.File
	enc *wav.Encoder
	buf *audio.IntBuffer
}

func newWavSink(path string, sampleRate int) (*wavSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	const pcm = 1
	return &wavSink{
		f:   f,
		enc: wav.NewEncoder(f, sampleRate, 16, 1, pcm),
		buf: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
			SourceBitDepth: 16,
		},
	}, nil
}

func (ws *wavSink) WriteSamples(samples []int16) error {
	ws.buf.Data = ws.buf.Data[:0]
	for _, s := range samples {
		ws.buf.Data = append(ws.buf.Data, int(s))
	}
	if err := ws.enc.Write(ws.buf); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	return nil
}

func (ws *wavSink) Close() error {
	if err := ws.enc.Close(); err != nil {
		ws.f.Close()
		return fmt.Errorf("wav: %w", err)
	}
	return ws.f.Close()
}
