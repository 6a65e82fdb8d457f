package hwdefs

import (
	"fmt"
	"time"
)

// Region is the television standard the console runs under.
type Region uint8

const (
	NTSC Region = iota
	PAL
)

func (r Region) String() string {
	switch r {
	case NTSC:
		return "NTSC"
	case PAL:
		return "PAL"
	}
	return fmt.Sprintf("Region(%d)", uint8(r))
}

// ParseRegion accepts "ntsc" or "pal", case-sensitive as written in
// configuration files.
func ParseRegion(s string) (Region, error) {
	switch s {
	case "ntsc", "NTSC":
		return NTSC, nil
	case "pal", "PAL":
		return PAL, nil
	}
	return 0, fmt.Errorf("unknown region %q", s)
}

// RegionParams holds the timing constants of a region. Values are never
// modified once selected.
type RegionParams struct {
	Region Region

	FramesPerSecond float64
	CPUFrequency    uint32 // in Hz

	// On NTSC the top and bottom 8 lines are usually hidden by the TV.
	ClipTopBottom bool

	// Master clock layout. A CPU cycle lasts CPUDivider master clocks, split
	// in StartClockCount clocks before the bus access and EndClockCount
	// after it. A PPU dot lasts PPUDivider master clocks.
	MasterClock     uint32
	CPUDivider      uint64
	PPUDivider      uint64
	StartClockCount uint64
	EndClockCount   uint64

	Scanlines      int // scanlines per frame, including vblank and pre-render
	VBlankScanline int

	// CPU cycles at which each step of the APU frame counter occurs,
	// for 4-step ([0]) and 5-step ([1]) modes.
	FrameCounterSteps [2][6]int32

	NoisePeriods [16]uint16
	DMCPeriods   [16]uint16
}

var ntsc = RegionParams{
	Region:          NTSC,
	FramesPerSecond: 60.0988,
	CPUFrequency:    1789773,
	ClipTopBottom:   true,

	MasterClock:     21477272,
	CPUDivider:      12,
	PPUDivider:      4,
	StartClockCount: 6,
	EndClockCount:   6,

	Scanlines:      262,
	VBlankScanline: 241,

	FrameCounterSteps: [2][6]int32{
		{7457, 14913, 22371, 29828, 29829, 29830},
		{7457, 14913, 22371, 29829, 37281, 37282},
	},
	NoisePeriods: [16]uint16{4, 8, 16, 32, 64, 96, 128, 160, 202, 254, 380, 508, 762, 1016, 2034, 4068},
	DMCPeriods:   [16]uint16{428, 380, 340, 320, 286, 254, 226, 214, 190, 160, 142, 128, 106, 84, 72, 54},
}

var pal = RegionParams{
	Region:          PAL,
	FramesPerSecond: 50.0070,
	CPUFrequency:    1662607,
	ClipTopBottom:   false,

	MasterClock:     26601712,
	CPUDivider:      16,
	PPUDivider:      5,
	StartClockCount: 8,
	EndClockCount:   8,

	Scanlines:      312,
	VBlankScanline: 241,

	FrameCounterSteps: [2][6]int32{
		{8313, 16627, 24939, 33252, 33253, 33254},
		{8313, 16627, 24939, 33253, 41565, 41566},
	},
	NoisePeriods: [16]uint16{4, 8, 14, 30, 60, 88, 118, 148, 188, 236, 354, 472, 708, 944, 1890, 3778},
	DMCPeriods:   [16]uint16{398, 354, 316, 298, 276, 236, 210, 198, 176, 148, 132, 118, 98, 78, 66, 50},
}

// Params returns a copy of the timing parameters of region r. It panics for an
// unknown region.
func Params(r Region) RegionParams {
	switch r {
	case NTSC:
		return ntsc
	case PAL:
		return pal
	}
	panic(fmt.Sprintf("unknown region %d", r))
}

// FrameDuration is the real time taken by one frame.
func (p *RegionParams) FrameDuration() time.Duration {
	return time.Duration(float64(time.Second) / p.FramesPerSecond)
}
