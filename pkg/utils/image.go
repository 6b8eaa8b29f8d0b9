//go:build !test

package utils

import (
	"image"
	"image/png"
	"os"

	"github.com/sqweek/dialog"
	"golang.org/x/image/draw"
)

// ScaleImage returns img scaled by the given integer factor, using
// nearest-neighbour sampling to keep the pixel edges sharp.
func ScaleImage(img image.Image, scale int) image.Image {
	if scale <= 1 {
		return img
	}

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	return dst
}

// SaveImage asks the user where to save the image and writes it there
// as a PNG.
func SaveImage(img image.Image) error {
	filename, err := dialog.File().Filter("PNG Image", "png").Title("Save Image").Save()
	if err != nil {
		return err
	}
	if len(filename) < 4 || filename[len(filename)-4:] != ".png" {
		filename += ".png"
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
