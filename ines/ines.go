// Package ines decodes roms in the iNES and NES 2.0 file formats, used for the
// distribution of NES binary programs.
package ines

import (
	"fmt"
	"os"

	"nescore/hw/hwdefs"
)

const Magic = "NES\x1a"

const (
	headerSize  = 16
	trainerSize = 512
	prgUnitSize = 16384
	chrUnitSize = 8192
)

// Cartridge holds the decoded content of a rom file. It is never modified once
// returned by Decode.
type Cartridge struct {
	PRG     []byte // PRG ROM, at least 16KB.
	CHR     []byte // CHR ROM, nil when the board uses CHR RAM.
	Trainer []byte // 512 bytes if present, or nil.

	PRGUnits int // Number of 16KB PRG ROM units, as found in the header.
	CHRUnits int // Number of 8KB CHR ROM units, as found in the header.

	PRGRAMSize   int // Total PRG RAM size, battery-backed part included.
	PRGNVRAMSize int // Battery-backed part of the PRG RAM.
	CHRRAMSize   int // Total CHR RAM size, battery-backed part included.
	CHRNVRAMSize int // Battery-backed part of the CHR RAM.

	Mirroring hwdefs.Mirroring
	Region    hwdefs.Region
	Mapper    uint16
	SubMapper uint8
	Battery   bool
	NES20     bool // Header is in NES 2.0 format.
}

// A MalformedHeaderError is returned when a buffer doesn't contain a valid rom.
type MalformedHeaderError struct {
	Reason string
}

func (e *MalformedHeaderError) Error() string {
	return "malformed rom header: " + e.Reason
}

func malformed(format string, args ...any) error {
	return &MalformedHeaderError{Reason: fmt.Sprintf(format, args...)}
}

// ReadFile reads and decodes the rom at path.
func ReadFile(path string) (*Cartridge, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cart, err := Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cart, nil
}

// Decode decodes a rom from buf. The returned cartridge doesn't share memory
// with buf.
func Decode(buf []byte) (*Cartridge, error) {
	if len(buf) < headerSize {
		return nil, malformed("too small, needs %d bytes, got %d", headerSize, len(buf))
	}
	if string(buf[:4]) != Magic {
		return nil, malformed("invalid magic number % x", buf[:4])
	}

	var hdr header
	copy(hdr[:], buf[:headerSize])

	cart := &Cartridge{
		NES20:    hdr.isNES20(),
		Battery:  hdr.hasBattery(),
		PRGUnits: hdr.prgUnits(),
		CHRUnits: hdr.chrUnits(),
	}

	prgsz := hdr.prgSize()
	chrsz := hdr.chrSize()
	cart.Mapper = hdr.mapper()
	cart.Mirroring = hdr.mirroring()
	if cart.NES20 {
		cart.SubMapper = hdr[8] >> 4
		cart.PRGRAMSize = shiftSize(hdr[10] & 0x0F)
		cart.PRGNVRAMSize = shiftSize(hdr[10] >> 4)
		cart.CHRRAMSize = shiftSize(hdr[11] & 0x0F)
		cart.CHRNVRAMSize = shiftSize(hdr[11] >> 4)
		// Sizes are exclusive in the header, combined in Cartridge.
		cart.PRGRAMSize += cart.PRGNVRAMSize
		cart.CHRRAMSize += cart.CHRNVRAMSize
		if hdr[12]&0x03 == 1 {
			cart.Region = hwdefs.PAL
		}
	} else {
		cart.PRGRAMSize = int(hdr[8]) * 8192
		if cart.PRGRAMSize == 0 {
			cart.PRGRAMSize = 8192
		}
		if cart.Battery {
			cart.PRGNVRAMSize = cart.PRGRAMSize
		}
		if hdr[9]&0x01 != 0 {
			cart.Region = hwdefs.PAL
		}
	}

	if chrsz == 0 && cart.CHRRAMSize == 0 {
		cart.CHRRAMSize = 8192
	}

	off := headerSize
	if hdr.hasTrainer() {
		if len(buf) < off+trainerSize {
			return nil, malformed("truncated: incomplete trainer section")
		}
		cart.Trainer = clone(buf[off : off+trainerSize])
		off += trainerSize
	}

	if len(buf) < off+prgsz {
		return nil, malformed("truncated: PRG section needs %d bytes, got %d", prgsz, len(buf)-off)
	}
	cart.PRG = clone(buf[off : off+prgsz])
	off += prgsz

	if len(buf) < off+chrsz {
		return nil, malformed("truncated: CHR section needs %d bytes, got %d", chrsz, len(buf)-off)
	}
	if chrsz > 0 {
		cart.CHR = clone(buf[off : off+chrsz])
	}
	return cart, nil
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}

// shiftSize decodes a NES 2.0 RAM shift count.
func shiftSize(n uint8) int {
	if n == 0 {
		return 0
	}
	return 64 << n
}

type header [headerSize]byte

func (hdr *header) isNES20() bool {
	return hdr[7]&0x0C == 0x08
}

// Some old rom dumping tools wrote their name in the unused bytes 7-15, which
// then contain garbage for the mapper high nibble.
func (hdr *header) hasGarbage() bool {
	return !hdr.isNES20() && (hdr[12] != 0 || hdr[13] != 0 || hdr[14] != 0 || hdr[15] != 0)
}

func (hdr *header) hasTrainer() bool {
	return hdr[6]&0x04 != 0
}

func (hdr *header) hasBattery() bool {
	return hdr[6]&0x02 != 0
}

func (hdr *header) mirroring() hwdefs.Mirroring {
	switch {
	case hdr[6]&0x08 != 0:
		return hwdefs.FourScreen
	case hdr[6]&0x01 != 0:
		return hwdefs.Vertical
	}
	return hwdefs.Horizontal
}

func (hdr *header) mapper() uint16 {
	id := uint16(hdr[6] >> 4)
	if !hdr.hasGarbage() {
		id |= uint16(hdr[7] & 0xF0)
	}
	if hdr.isNES20() {
		id |= uint16(hdr[8]&0x0F) << 8
	}
	return id
}

func (hdr *header) prgUnits() int {
	if hdr.isNES20() && hdr[9]&0x0F != 0x0F {
		return int(hdr[9]&0x0F)<<8 | int(hdr[4])
	}
	return int(hdr[4])
}

func (hdr *header) chrUnits() int {
	if hdr.isNES20() && hdr[9]>>4 != 0x0F {
		return int(hdr[9]>>4)<<8 | int(hdr[5])
	}
	return int(hdr[5])
}

func (hdr *header) prgSize() int {
	if hdr.isNES20() && hdr[9]&0x0F == 0x0F {
		return exponentSize(hdr[4])
	}
	return max(hdr.prgUnits(), 1) * prgUnitSize
}

func (hdr *header) chrSize() int {
	if hdr.isNES20() && hdr[9]>>4 == 0x0F {
		return exponentSize(hdr[5])
	}
	return hdr.chrUnits() * chrUnitSize
}

// exponentSize decodes the exponent-multiplier size notation of NES 2.0,
// EEEEEEMM: 2^E * (MM*2+1).
func exponentSize(b uint8) int {
	exp := b >> 2
	mul := int(b&0x03)*2 + 1
	if exp > 30 {
		exp = 30
	}
	return (1 << exp) * mul
}
