package ppu

import (
	"image"
	"image/color"

	"nescore/hw/hwdefs"
)

// Frame is a complete picture, as palette indices (0-63).
type Frame struct {
	Pixels [hwdefs.ScreenWidth * hwdefs.ScreenHeight]uint8

	// Emphasis holds the 3 color emphasis bits of PPUMASK at the end of the
	// frame.
	Emphasis uint8
	Number   uint64
}

// At returns the palette index of pixel (x, y).
func (f *Frame) At(x, y int) uint8 {
	return f.Pixels[y*hwdefs.ScreenWidth+x]
}

// Palette is the 2C02 palette, converting palette indices to RGB.
var Palette [64]color.RGBA

func init() {
	colors := [64]uint32{
		0x666666, 0x002A88, 0x1412A7, 0x3B00A4, 0x5C007E, 0x6E0040, 0x6C0600, 0x561D00,
		0x333500, 0x0B4800, 0x005200, 0x004F08, 0x00404D, 0x000000, 0x000000, 0x000000,
		0xADADAD, 0x155FD9, 0x4240FF, 0x7527FE, 0xA01ACC, 0xB71E7B, 0xB53120, 0x994E00,
		0x6B6D00, 0x388700, 0x0C9300, 0x008F32, 0x007C8D, 0x000000, 0x000000, 0x000000,
		0xFFFEFF, 0x64B0FF, 0x9290FF, 0xC676FF, 0xF36AFF, 0xFE6ECC, 0xFE8170, 0xEA9E22,
		0xBCBE00, 0x88D800, 0x5CE430, 0x45E082, 0x48CDDE, 0x4F4F4F, 0x000000, 0x000000,
		0xFFFEFF, 0xC0DFFF, 0xD3D2FF, 0xE8C8FF, 0xFBC2FF, 0xFEC4EA, 0xFECCC5, 0xF7D8A5,
		0xE4E594, 0xCFEF96, 0xBDF4AB, 0xB3F3CC, 0xB5EBF2, 0xB8B8B8, 0x000000, 0x000000,
	}
	for i, c := range colors {
		Palette[i] = color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xFF}
	}
}

// RGBA converts the frame to an image, ignoring color emphasis. When clip is
// true, the top and bottom 8 lines, usually hidden on NTSC TVs, are left out.
func (f *Frame) RGBA(clip bool) *image.RGBA {
	y0, y1 := 0, hwdefs.ScreenHeight
	if clip {
		y0, y1 = 8, hwdefs.ScreenHeight-8
	}

	img := image.NewRGBA(image.Rect(0, 0, hwdefs.ScreenWidth, y1-y0))
	for y := y0; y < y1; y++ {
		for x := range hwdefs.ScreenWidth {
			img.SetRGBA(x, y-y0, Palette[f.At(x, y)&0x3F])
		}
	}
	return img
}
