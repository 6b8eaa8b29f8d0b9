package ppu

import "fmt"

// InvalidTileIndexError is returned when a tile map entry references a
// tile beyond the provided tile data.
type InvalidTileIndexError struct {
	// Index is the offending tile map entry.
	Index int
	// Tiles is the number of tiles the provided data holds.
	Tiles int
}

func (e InvalidTileIndexError) Error() string {
	return fmt.Sprintf("ppu: tile index %d out of range (%d tiles of data)", e.Index, e.Tiles)
}

// RenderTileMap renders a tile map against raw tile data into a
// framebuffer of colour indices. The map is width x height tiles, read
// row-major, and the returned framebuffer is width*8 x height*8
// pixels, also row-major.
//
// Tile data need not be complete: a trailing partial tile decodes with
// its missing bytes as zero, and a map shorter than width*height reads
// as tile 0 past its end. A map entry that references a tile beyond
// the data returns an InvalidTileIndexError.
func RenderTileMap(tileData, tileMap []byte, width, height int) ([]uint8, error) {
	if width <= 0 || height <= 0 {
		return nil, nil
	}

	tiles := (len(tileData) + 15) / 16

	fb := make([]uint8, width*8*height*8)
	for ty := 0; ty < height; ty++ {
		for tx := 0; tx < width; tx++ {
			var entry uint8
			if i := ty*width + tx; i < len(tileMap) {
				entry = tileMap[i]
			}
			if int(entry) >= tiles {
				return nil, InvalidTileIndexError{Index: int(entry), Tiles: tiles}
			}

			var t Tile
			copy(t[:], tileData[int(entry)*16:])

			for y := 0; y < 8; y++ {
				row := (ty*8 + y) * width * 8
				for x := 0; x < 8; x++ {
					fb[row+tx*8+x] = t.PixelAt(x, y)
				}
			}
		}
	}

	return fb, nil
}
