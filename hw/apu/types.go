package apu

// Channel identifies one of the 5 sound generators.
type Channel uint8

const (
	Square1 Channel = iota
	Square2
	Triangle
	Noise
	DPCM

	NumChannels = 5
)

func (c Channel) String() string {
	switch c {
	case Square1:
		return "square1"
	case Square2:
		return "square2"
	case Triangle:
		return "triangle"
	case Noise:
		return "noise"
	case DPCM:
		return "dpcm"
	}
	return "unknown"
}

// Host is the view the APU has of the rest of the console.
type Host interface {
	// StartDMCTransfer requests a DMA fetch of the next DMC sample byte, at
	// the address returned by APU.DMCAddress. The byte is delivered back
	// with APU.DMCFetched.
	StartDMCTransfer()
	// StopDMCTransfer aborts a pending DMC fetch.
	StopDMCTransfer()

	// CPUCycles returns the current CPU cycle count. Some register writes
	// take effect after a delay depending on its parity.
	CPUCycles() int64
}
