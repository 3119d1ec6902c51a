package pdf

import (
	"image"
	"image/draw"
)

// Image is a decoded raster ready for embedding: 8-bit RGB samples plus an
// optional alpha channel that becomes a soft mask.
type Image struct {
	Width  int
	Height int
	Data   []byte // W*H*3 bytes, row-major RGB
	Alpha  []byte // W*H bytes when the source had transparency, else nil
}

// FromImage converts a standard image.Image into an embeddable Image,
// splitting out the alpha channel when any pixel is translucent.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// Non-premultiplied alpha so the raw color values survive.
	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)

	pixels := make([]byte, 0, w*h*3)
	alpha := make([]byte, 0, w*h)
	hasAlpha := false
	for i := 0; i < w*h; i++ {
		offset := i * 4
		pixels = append(pixels, nrgba.Pix[offset], nrgba.Pix[offset+1], nrgba.Pix[offset+2])
		a := nrgba.Pix[offset+3]
		alpha = append(alpha, a)
		if a < 255 {
			hasAlpha = true
		}
	}

	img := &Image{Width: w, Height: h, Data: pixels}
	if hasAlpha {
		img.Alpha = alpha
	}
	return img
}
