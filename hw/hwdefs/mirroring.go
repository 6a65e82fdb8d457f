package hwdefs

import "fmt"

// Mirroring describes how the 4 logical nametables of the PPU address space
// are backed by the physical nametable areas.
type Mirroring uint8

const (
	Horizontal Mirroring = iota
	Vertical
	FourScreen
	SingleScreen0
	SingleScreen1
	SingleScreen2
	SingleScreen3
)

var mirroringAreas = [...][4]uint8{
	Horizontal:    {0, 0, 1, 1},
	Vertical:      {0, 1, 0, 1},
	FourScreen:    {0, 1, 2, 3},
	SingleScreen0: {0, 0, 0, 0},
	SingleScreen1: {1, 1, 1, 1},
	SingleScreen2: {2, 2, 2, 2},
	SingleScreen3: {3, 3, 3, 3},
}

var mirroringNames = [...]string{
	Horizontal:    "horizontal",
	Vertical:      "vertical",
	FourScreen:    "four-screen",
	SingleScreen0: "single-screen-0",
	SingleScreen1: "single-screen-1",
	SingleScreen2: "single-screen-2",
	SingleScreen3: "single-screen-3",
}

// Areas returns, for each of the logical nametables at $2000, $2400, $2800
// and $2C00, the index of the 1KB physical area backing it.
func (m Mirroring) Areas() [4]uint8 {
	if int(m) >= len(mirroringAreas) {
		panic(fmt.Sprintf("invalid mirroring %d", m))
	}
	return mirroringAreas[m]
}

func (m Mirroring) String() string {
	if int(m) < len(mirroringNames) {
		return mirroringNames[m]
	}
	return fmt.Sprintf("Mirroring(%d)", uint8(m))
}

// AllMirrorings lists all valid mirroring values.
func AllMirrorings() []Mirroring {
	return []Mirroring{Horizontal, Vertical, FourScreen, SingleScreen0, SingleScreen1, SingleScreen2, SingleScreen3}
}
