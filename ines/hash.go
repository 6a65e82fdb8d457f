package ines

import (
	"crypto/sha1"
	"encoding/hex"
)

// Hash returns the lowercase hexadecimal SHA-1 digest of prg followed by chr.
// The header and trainer never take part in the digest so that the same game
// dumped with different headers maps to the same identity.
func Hash(prg, chr []byte) string {
	h := sha1.New()
	h.Write(prg)
	h.Write(chr)
	return hex.EncodeToString(h.Sum(nil))
}

// Hash returns the content hash of the cartridge, used as the key of its
// battery-backed RAM.
func (c *Cartridge) Hash() string {
	return Hash(c.PRG, c.CHR)
}
