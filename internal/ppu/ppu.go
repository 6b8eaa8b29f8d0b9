// Package ppu implements the Game Boy's (P)ixel (P)rocessing (U)nit:
// the video RAM and OAM, the LCD register file, and a background
// renderer that paces itself through the four LCD modes and produces
// one frame every 70224 dots.
//
// References:
//   - [Pan Docs](https://gbdev.io/pandocs/Graphics.html)
package ppu

import (
	"github.com/cespare/xxhash"

	"github.com/RainbowCookie32/rusty-boi/internal/ppu/palette"
	"github.com/RainbowCookie32/rusty-boi/internal/types"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144

	// FrameDots is the length of a full frame in dots: 154 lines of
	// 456 dots each.
	FrameDots = 456 * 154

	// tileCount is the number of tiles the tile data region holds.
	tileCount = 384
)

const (
	// ModeHBlank (Mode 0) - Horizontal Blanking Period
	//
	//	Duration 204 dots
	//	- Allows CPU access to VRAM/OAM
	ModeHBlank = iota

	// ModeVBlank (Mode 1) - Vertical Blanking Period
	//
	//	Duration 4560 dots (10 lines)
	//	- Allows full CPU access to VRAM/OAM
	//	- Active during LY 144-153
	ModeVBlank

	// ModeOAM (Mode 2) - OAM Scan
	//
	//	Duration: 80 dots (fixed)
	//	- Occurs at start of each visible line
	ModeOAM

	// ModeVRAM (Mode 3) - Pixel Transfer
	//
	//	Duration: 172 dots
	//	- Active during visible pixel rendering
	ModeVRAM
)

// PPU holds the video state: 8KiB of VRAM, 160 bytes of OAM and the
// LCD registers. It renders the background layer one scanline at a
// time into PreparedFrame as the dot clock crosses each line's pixel
// transfer period.
type PPU struct {
	vram [0x2000]uint8
	oam  [0xA0]uint8

	// LCD registers, stored raw. LY is the current line and advances
	// with the dot clock; the rest hold whatever was last written.
	lcdc   uint8
	status uint8
	scy    uint8
	scx    uint8
	ly     uint8
	lyc    uint8
	bgp    uint8
	obp0   uint8
	obp1   uint8
	wy     uint8
	wx     uint8

	mode uint8
	dot  uint16

	// Decoded tile cache. A VRAM write into the tile data region
	// marks the touched tile dirty; the scanline renderer re-decodes
	// dirty tiles on first use, keyed by a hash of the tile bytes so
	// rewriting a tile with identical data skips the decode.
	tileCache  [tileCount][8][8]uint8
	tileDirty  [tileCount]bool
	tileHashes [tileCount]uint64

	// vramWrites counts every write accepted into VRAM, for
	// diagnostics and conformance checks.
	vramWrites uint64

	// PreparedFrame is the most recently completed frame in RGB,
	// coloured through the selected display palette.
	PreparedFrame [ScreenHeight][ScreenWidth][3]uint8
}

// New returns a PPU with cleared VRAM and the LCD switched off.
func New() *PPU {
	return &PPU{}
}

// Read returns the value at the given bus address. The PPU answers for
// VRAM, OAM and the LCD registers.
func (p *PPU) Read(address uint16) uint8 {
	switch {
	case address >= 0x8000 && address <= 0x9FFF:
		return p.vram[address-0x8000]
	case address >= 0xFE00 && address <= 0xFE9F:
		return p.oam[address-0xFE00]
	}

	switch address {
	case types.LCDC:
		return p.lcdc
	case types.STAT:
		var coincidence uint8
		if p.ly == p.lyc {
			coincidence = types.Bit2
		}
		return 0x80 | p.status&0x78 | coincidence | p.mode
	case types.SCY:
		return p.scy
	case types.SCX:
		return p.scx
	case types.LY:
		return p.ly
	case types.LYC:
		return p.lyc
	case types.BGP:
		return p.bgp
	case types.OBP0:
		return p.obp0
	case types.OBP1:
		return p.obp1
	case types.WY:
		return p.wy
	case types.WX:
		return p.wx
	}
	return 0xFF
}

// Write writes the value to the given bus address. Writes to LY are
// ignored and only the interrupt select bits of STAT are writable.
func (p *PPU) Write(address uint16, value uint8) {
	switch {
	case address >= 0x8000 && address <= 0x9FFF:
		p.vram[address-0x8000] = value
		p.vramWrites++
		if address <= 0x97FF {
			p.tileDirty[(address-0x8000)/16] = true
		}
		return
	case address >= 0xFE00 && address <= 0xFE9F:
		p.oam[address-0xFE00] = value
		return
	}

	switch address {
	case types.LCDC:
		if p.lcdc&types.Bit7 != 0 && value&types.Bit7 == 0 {
			// switching the LCD off resets the dot clock; LY reads 0
			// and STAT reports HBlank until it is switched back on
			p.ly, p.dot, p.mode = 0, 0, ModeHBlank
		} else if p.lcdc&types.Bit7 == 0 && value&types.Bit7 != 0 {
			p.mode = ModeOAM
		}
		p.lcdc = value
	case types.STAT:
		p.status = value & 0x78
	case types.SCY:
		p.scy = value
	case types.SCX:
		p.scx = value
	case types.LYC:
		p.lyc = value
	case types.BGP:
		p.bgp = value
	case types.OBP0:
		p.obp0 = value
	case types.OBP1:
		p.obp1 = value
	case types.WY:
		p.wy = value
	case types.WX:
		p.wx = value
	}
}

// Mode returns the LCD mode the PPU is currently in.
func (p *PPU) Mode() uint8 {
	return p.mode
}

// VRAMWrites returns the number of writes accepted into VRAM since
// power on.
func (p *PPU) VRAMWrites() uint64 {
	return p.vramWrites
}

// TileAt returns the raw bytes of the given tile (0-383).
func (p *PPU) TileAt(index int) Tile {
	var t Tile
	copy(t[:], p.vram[index*16:index*16+16])
	return t
}

// Tick advances the PPU by the given number of dots and reports
// whether a frame was completed, which happens as the dot clock enters
// VBlank. With the LCD switched off the dot clock does not run.
func (p *PPU) Tick(dots uint32) bool {
	if p.lcdc&types.Bit7 == 0 {
		return false
	}

	var frameReady bool
	for i := uint32(0); i < dots; i++ {
		p.dot++

		if p.ly < ScreenHeight {
			switch p.dot {
			case 80:
				p.mode = ModeVRAM
			case 80 + 172:
				p.mode = ModeHBlank
				p.renderScanline()
			}
		}

		if p.dot == 456 {
			p.dot = 0
			p.ly++

			switch {
			case p.ly == ScreenHeight:
				p.mode = ModeVBlank
				frameReady = true
			case p.ly > 153:
				p.ly = 0
				p.mode = ModeOAM
			case p.ly < ScreenHeight:
				p.mode = ModeOAM
			}
		}
	}

	return frameReady
}

// tilePixel returns the colour index of the given pixel of the given
// tile, decoding the tile into the cache if it has been written since
// its last use.
func (p *PPU) tilePixel(tile, x, y int) uint8 {
	if p.tileDirty[tile] {
		if sum := xxhash.Sum64(p.vram[tile*16 : tile*16+16]); sum != p.tileHashes[tile] {
			p.tileCache[tile] = p.TileAt(tile).Pixels()
			p.tileHashes[tile] = sum
		}
		p.tileDirty[tile] = false
	}
	return p.tileCache[tile][y][x]
}

// renderScanline draws the background layer of the current line into
// PreparedFrame. With the background disabled via LCDC.0 the line is
// drawn in shade 0.
func (p *PPU) renderScanline() {
	if p.lcdc&types.Bit0 == 0 {
		for x := 0; x < ScreenWidth; x++ {
			p.PreparedFrame[p.ly][x] = palette.GetColour(0)
		}
		return
	}

	mapBase := uint16(0x1800)
	if p.lcdc&types.Bit3 != 0 {
		mapBase = 0x1C00
	}

	y := p.scy + p.ly // wraps around the 256 pixel background
	for x := 0; x < ScreenWidth; x++ {
		px := p.scx + uint8(x)

		entry := p.vram[mapBase+uint16(y/8)*32+uint16(px/8)]
		tile := int(entry)
		if p.lcdc&types.Bit4 == 0 {
			// 0x8800 addressing: the map entry is signed, relative to
			// tile 256
			tile = 256 + int(int8(entry))
		}

		index := p.tilePixel(tile, int(px%8), int(y%8))
		p.PreparedFrame[p.ly][x] = palette.GetColourFor(index, p.bgp)
	}
}
