package ines

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// MapperName returns the board name of mapper id. chrUnits disambiguates
// mappers that have different boards depending on the presence of CHR ROM.
// Unknown mappers are named after their number.
func MapperName(id uint16, chrUnits int) string {
	switch id {
	case 0:
		return "NROM"
	case 1:
		return "MMC1"
	case 2:
		return "UNROM"
	case 3:
		return "CNROM"
	case 4:
		return "MMC3"
	case 7:
		return "AOROM"
	case 11:
		return "ColorDreams"
	case 34:
		if chrUnits == 0 {
			return "BNROM"
		}
		return "NINA-001"
	case 66:
		return "GxROM"
	}
	return strconv.Itoa(int(id))
}

// MapperName returns the board name of the cartridge mapper.
func (c *Cartridge) MapperName() string {
	return MapperName(c.Mapper, c.CHRUnits)
}

// PrintInfos writes a human-readable summary of the cartridge to w.
func (c *Cartridge) PrintInfos(w io.Writer) error {
	format := "iNES"
	if c.NES20 {
		format = "NES 2.0"
	}

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "Format:\t%s\n", format)
	fmt.Fprintf(tw, "Mapper:\t%d (%s)\n", c.Mapper, c.MapperName())
	fmt.Fprintf(tw, "SubMapper:\t%d\n", c.SubMapper)
	fmt.Fprintf(tw, "PRG ROM:\t%d bytes\n", len(c.PRG))
	fmt.Fprintf(tw, "CHR ROM:\t%d bytes\n", len(c.CHR))
	fmt.Fprintf(tw, "PRG RAM:\t%d bytes (%d battery-backed)\n", c.PRGRAMSize, c.PRGNVRAMSize)
	fmt.Fprintf(tw, "CHR RAM:\t%d bytes (%d battery-backed)\n", c.CHRRAMSize, c.CHRNVRAMSize)
	fmt.Fprintf(tw, "Mirroring:\t%s\n", c.Mirroring)
	fmt.Fprintf(tw, "Region:\t%s\n", c.Region)
	fmt.Fprintf(tw, "Battery:\t%t\n", c.Battery)
	fmt.Fprintf(tw, "Trainer:\t%t\n", c.Trainer != nil)
	fmt.Fprintf(tw, "Hash:\t%s\n", c.Hash())
	return tw.Flush()
}
