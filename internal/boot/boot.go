// Package boot provides a boot ROM implementation for the Game Boy.
// The emulator runs fine without one; when present it is mapped over
// 0x0000-0x00FF until the program disables it, and the hardware model
// it came from is identified by checksum.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// ROM represents a boot ROM. When the Game Boy first powers on, the
// boot ROM is mapped to memory addresses 0x0000-0x00FF, shadowing the
// cartridge. It initializes the hardware, scrolls the Nintendo logo
// and verifies the cartridge header, then unmaps itself by writing to
// the BDIS register, which maps the cartridge back in and prevents the
// boot ROM from being executed again.
type ROM struct {
	raw      []byte
	checksum string
}

// LoadBootROM wraps the given image as a boot ROM. Only the 256 byte
// DMG sized image is accepted, and its MD5 checksum is computed for
// model identification.
func LoadBootROM(b []byte) (*ROM, error) {
	if len(b) != 256 {
		return nil, fmt.Errorf("boot: invalid boot rom length: %d", len(b))
	}

	checksum := md5.Sum(b)

	return &ROM{
		raw:      b,
		checksum: hex.EncodeToString(checksum[:]),
	}, nil
}

// Read returns the byte at the given address.
func (b *ROM) Read(address uint16) byte {
	return b.raw[address]
}

// Checksum returns the MD5 checksum of the boot ROM. A nil ROM returns
// the empty string.
func (b *ROM) Checksum() string {
	if b == nil {
		return ""
	}
	return b.checksum
}

// Model returns the hardware model the boot ROM shipped in, determined
// by checksum. A nil ROM returns "none".
func (b *ROM) Model() string {
	if b == nil {
		return "none"
	}
	if model, ok := knownBootROMChecksums[b.checksum]; ok {
		return model
	}
	return "unknown"
}

// knownBootROMChecksums maps the MD5 checksum of a boot ROM to the
// hardware model it shipped in.
var knownBootROMChecksums = map[string]string{
	DMG0:        "Game Boy (DMG-0)",
	DMG:         "Game Boy (DMG-01)",
	MGB:         "Game Boy Pocket",
	FORTUNE:     "Fortune/Bitman 3000B",
	GameFighter: "Game Fighter",
	MaxStation:  "Max Station",
}

const (
	// DMG0 is the checksum of the early DMG boot ROM found in very
	// early units only ever sold in Japan. On a boot failure it
	// flashes the screen rather than hanging after the Nintendo logo.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the checksum of the boot ROM found in the common DMG-01
	// models.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB is the checksum of the Game Boy Pocket boot ROM. It differs
	// from the DMG boot ROM by a single byte, loading 0xFF into the A
	// register instead of 0x01, which games use to detect MGB
	// hardware.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// FORTUNE is the checksum of the boot ROM found in the Game Boy
	// clone "Fortune/Bitman 3000B".
	FORTUNE = "92ed4eca17d61fcd53f8a64c3ce84743"
	// GameFighter is the checksum of the boot ROM found in the Game
	// Boy clone "Game Fighter".
	GameFighter = "6a7b8ee12a793f66a969c6a2b8926cc9"
	// MaxStation is the checksum of the boot ROM found in the Game
	// Boy clone "Maxstation".
	MaxStation = "77a7021db824010a678791f6d062943d"
)
