package rimage

import (
	"fmt"
	"image"
	"image/color"

	"github.com/pkg/errors"

	"go.viam.com/latch/utils"
)

// GrayAccessor gives read access to the intensities of a single channel 8-bit image.
// Rows grow along the image's Y axis and columns along its X axis.
type GrayAccessor interface {
	At(row, col int) uint8
	Stride() int
	Bounds() image.Rectangle
}

// Gray is a GrayAccessor over an *image.Gray. Pixels are shared with the wrapped image.
type Gray struct {
	img *image.Gray
}

// NewGray wraps img so it can be used as a GrayAccessor.
func NewGray(img *image.Gray) *Gray {
	return &Gray{img: img}
}

// NewGrayFromFunc builds a width x height image whose intensity at (row, col) is f(row, col).
func NewGrayFromFunc(width, height int, f func(row, col int) uint8) *Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			img.Pix[row*img.Stride+col] = f(row, col)
		}
	}
	return NewGray(img)
}

// At returns the intensity at (row, col). It panics if the position is outside Bounds.
func (g *Gray) At(row, col int) uint8 {
	r := g.img.Rect
	if !image.Pt(col, row).In(r) {
		panic(fmt.Sprintf("pixel (row %d, col %d) outside image bounds %v", row, col, r))
	}
	return g.img.Pix[(row-r.Min.Y)*g.img.Stride+(col-r.Min.X)]
}

// Stride returns the distance in bytes between vertically adjacent pixels.
func (g *Gray) Stride() int {
	return g.img.Stride
}

// Bounds returns the image rectangle.
func (g *Gray) Bounds() image.Rectangle {
	return g.img.Rect
}

// In reports whether (row, col) is inside the image.
func (g *Gray) In(row, col int) bool {
	return image.Pt(col, row).In(g.img.Rect)
}

// Image returns the wrapped image.
func (g *Gray) Image() *image.Gray {
	return g.img
}

// Crop returns the part of g inside r with its origin moved to (0, 0), so that (row, col) in
// the crop is (row+o.Y, col+o.X) in g where o is the top left corner of r clipped to Bounds.
// The crop shares pixels with g.
func (g *Gray) Crop(r image.Rectangle) (*Gray, error) {
	overlap := r.Intersect(g.img.Rect)
	if overlap.Empty() {
		return nil, errors.Errorf("crop %v does not overlap image bounds %v", r, g.img.Rect)
	}
	subImg := g.img.SubImage(overlap)
	sub, ok := subImg.(*image.Gray)
	if !ok {
		return nil, utils.NewUnexpectedTypeError(sub, subImg)
	}
	return NewGray(&image.Gray{Pix: sub.Pix, Stride: sub.Stride, Rect: overlap.Sub(overlap.Min)}), nil
}

// ToGray returns img as an *image.Gray when it already is a single channel 8-bit image.
// Color images are rejected rather than converted.
func ToGray(img image.Image) (*image.Gray, error) {
	switch v := img.(type) {
	case *image.Gray:
		return v, nil
	case *image.Paletted:
		if !isGrayPalette(v.Palette) {
			return nil, errors.New("paletted image has non gray colors")
		}
		out := image.NewGray(v.Rect)
		for y := v.Rect.Min.Y; y < v.Rect.Max.Y; y++ {
			for x := v.Rect.Min.X; x < v.Rect.Max.X; x++ {
				out.SetGray(x, y, color.GrayModel.Convert(v.At(x, y)).(color.Gray))
			}
		}
		return out, nil
	default:
		return nil, errors.Errorf("expected a grayscale image but got %T", img)
	}
}

func isGrayPalette(p color.Palette) bool {
	for _, c := range p {
		r, g, b, _ := c.RGBA()
		if r != g || g != b {
			return false
		}
	}
	return true
}
