package ppu

import (
	"image"
	"image/color"

	"github.com/RainbowCookie32/rusty-boi/internal/ppu/palette"
)

// Tile represents a single 8x8 tile as the 16 raw bytes the hardware
// stores it in: two bytes per row, the first holding the low bit of
// each pixel's colour index and the second the high bit, most
// significant bit leftmost.
type Tile [16]uint8

// PixelAt returns the colour index (0-3) of the pixel at the given
// tile coordinates.
func (t Tile) PixelAt(x, y int) uint8 {
	lo, hi := t[y*2], t[y*2+1]
	return (lo >> (7 - x) & 1) | (hi>>(7-x)&1)<<1
}

// Pixels decodes the tile into an 8x8 grid of colour indices, indexed
// [y][x].
func (t Tile) Pixels() [8][8]uint8 {
	var pixels [8][8]uint8
	for y := 0; y < 8; y++ {
		lo, hi := t[y*2], t[y*2+1]
		for x := 0; x < 8; x++ {
			pixels[y][x] = (lo >> (7 - x) & 1) | (hi>>(7-x)&1)<<1
		}
	}
	return pixels
}

// Encode builds a tile from an 8x8 grid of colour indices, the inverse
// of Pixels.
func Encode(pixels [8][8]uint8) Tile {
	var t Tile
	for y := 0; y < 8; y++ {
		var lo, hi uint8
		for x := 0; x < 8; x++ {
			lo |= (pixels[y][x] & 1) << (7 - x)
			hi |= (pixels[y][x] >> 1 & 1) << (7 - x)
		}
		t[y*2], t[y*2+1] = lo, hi
	}
	return t
}

// Draw draws the tile to the given image at the given position using
// the currently selected palette.
func (t Tile) Draw(img *image.RGBA, atX, atY int) {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			rgb := palette.GetColour(t.PixelAt(x, y))
			img.Set(atX+x, atY+y, color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF})
		}
	}
}
