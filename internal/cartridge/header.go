package cartridge

import (
	"fmt"
	"strings"
)

// Type is the cartridge type byte at 0x0147, describing the mapper and
// extra hardware the cartridge carries.
type Type uint8

const (
	ROM         Type = 0x00
	MBC1        Type = 0x01
	MBC1RAM     Type = 0x02
	MBC1RAMBATT Type = 0x03
	MBC2        Type = 0x05
	MBC2BATT    Type = 0x06
	ROMRAM      Type = 0x08
	ROMRAMBATT  Type = 0x09
	MBC3        Type = 0x11
	MBC3RAM     Type = 0x12
	MBC3RAMBATT Type = 0x13
	MBC5        Type = 0x19
	MBC5RAM     Type = 0x1A
	MBC5RAMBATT Type = 0x1B
)

// ramMap maps the RAM size byte at 0x0149 to a size in bytes.
var ramMap = map[uint8]uint{
	0x00: 0,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Header represents the cartridge header at 0x0100-0x014F. The header
// contains information about the cartridge itself and the hardware it
// expects to run on.
type Header struct {
	// 0x0134-0x0143 - Title of the game, padded with zeroes
	Title string

	// 0x0147 - CartridgeType describes the mapper and extra hardware
	CartridgeType Type

	// 0x0148 - ROMSize in bytes, calculated as 32kB << n
	ROMSize uint

	// 0x0149 - RAMSize of the external RAM in bytes
	RAMSize uint

	// 0x014C - MaskROMVersion of the game
	MaskROMVersion uint8

	// 0x014D - HeaderChecksum over 0x0134-0x014C
	HeaderChecksum uint8

	// 0x014E-0x014F - GlobalChecksum over the whole ROM, big-endian
	GlobalChecksum uint16
}

// parseHeader parses the 0x50 bytes of header starting at 0x0100 and
// returns a Header.
func parseHeader(header []byte) Header {
	h := Header{}

	if len(header) != 0x50 {
		panic(fmt.Sprintf("invalid header length: %d", len(header)))
	}

	h.Title = string(header[0x34:0x44])
	h.CartridgeType = Type(header[0x47])
	h.ROMSize = (32 * 1024) << header[0x48]
	h.RAMSize = ramMap[header[0x49]]
	h.MaskROMVersion = header[0x4C]
	h.HeaderChecksum = header[0x4D]
	h.GlobalChecksum = uint16(header[0x4E])<<8 | uint16(header[0x4F])

	return h
}

// ValidateChecksum recomputes the header checksum the boot ROM checks
// and compares it against the stored value. A cartridge too small to
// hold a header fails the check.
func (c *Cartridge) ValidateChecksum() bool {
	if len(c.rom) < 0x150 {
		return false
	}

	var x uint8
	for i := 0x134; i <= 0x14C; i++ {
		x = x - c.rom[i] - 1
	}
	return x == c.header.HeaderChecksum
}

func (h Header) String() string {
	title := strings.TrimRight(h.Title, "\x00 ")
	return fmt.Sprintf("%s | Type: 0x%02X | ROM Size: %dkB | RAM Size: %dkB", title, uint8(h.CartridgeType), h.ROMSize/1024, h.RAMSize/1024)
}
