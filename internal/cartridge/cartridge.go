// Package cartridge provides the game cartridge for the DMG. The
// cartridge holds the game ROM and answers bus reads for the two
// cartridge regions of the memory map: ROM below 0x8000 and external
// RAM at 0xA000-0xBFFF.
package cartridge

import (
	"fmt"
	"strings"
)

// Cartridge represents an unbanked game cartridge. Only mapper-less
// ROM cartridges are supported; the ROM is read-only and there is no
// external RAM, so the RAM region reads open bus.
type Cartridge struct {
	rom    []byte
	header Header
}

// NewCartridge parses the header of the given ROM and returns a
// Cartridge. ROMs that declare a memory bank controller are rejected.
func NewCartridge(rom []byte) (*Cartridge, error) {
	if len(rom) < 0x150 {
		return nil, fmt.Errorf("cartridge: ROM too small for a header: %d bytes", len(rom))
	}

	header := parseHeader(rom[0x100:0x150])
	switch header.CartridgeType {
	case ROM, ROMRAM, ROMRAMBATT:
	default:
		return nil, fmt.Errorf("cartridge: unsupported mapper type 0x%02X", uint8(header.CartridgeType))
	}

	return &Cartridge{
		rom:    rom,
		header: header,
	}, nil
}

// NewEmptyCartridge returns a cartridge with no ROM at all; every read
// returns open bus. Used when the emulator is started without a game.
func NewEmptyCartridge() *Cartridge {
	return &Cartridge{}
}

// Header returns the parsed cartridge header.
func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns the cartridge title with trailing padding removed.
func (c *Cartridge) Title() string {
	return strings.TrimRight(c.header.Title, "\x00 ")
}

// Read returns the value at the given bus address. Reads past the end
// of the ROM, and reads of the external RAM region, return 0xFF.
func (c *Cartridge) Read(address uint16) uint8 {
	if address < 0x8000 && int(address) < len(c.rom) {
		return c.rom[address]
	}
	return 0xFF
}

// Write ignores the value; the ROM is not writable and there is no
// external RAM to accept it.
func (c *Cartridge) Write(address uint16, value uint8) {}
