package latch

import (
	"image"

	"go.viam.com/latch/rimage"
)

// patchDistanceFunc returns the squared Frobenius distance between the patches of the given
// radius centered at a and b.
type patchDistanceFunc func(a, b image.Point, radius int) int64

// distanceFunc picks the fastest patch distance for img. *rimage.Gray images are read straight
// from their pixel buffer.
func distanceFunc(img rimage.GrayAccessor) patchDistanceFunc {
	if g, ok := img.(*rimage.Gray); ok {
		gray := g.Image()
		return func(a, b image.Point, radius int) int64 {
			return grayDistanceSquared(gray, a, b, radius)
		}
	}
	return func(a, b image.Point, radius int) int64 {
		return FrobeniusDistanceSquared(img, a, b, radius)
	}
}

// FrobeniusDistanceSquared returns the sum of squared intensity differences between the
// (2*radius+1) x (2*radius+1) patches centered at a and b. Points use X for the column and
// Y for the row.
func FrobeniusDistanceSquared(img rimage.GrayAccessor, a, b image.Point, radius int) int64 {
	var total int64
	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			d := int64(img.At(a.Y+i, a.X+j)) - int64(img.At(b.Y+i, b.X+j))
			total += d * d
		}
	}
	return total
}

// grayDistanceSquared is FrobeniusDistanceSquared on the raw pixels of an *image.Gray.
func grayDistanceSquared(img *image.Gray, a, b image.Point, radius int) int64 {
	stride := img.Stride
	side := 2*radius + 1
	off1 := img.PixOffset(a.X-radius, a.Y-radius)
	off2 := img.PixOffset(b.X-radius, b.Y-radius)
	var total int64
	for i := 0; i < side; i++ {
		row1 := img.Pix[off1 : off1+side]
		row2 := img.Pix[off2 : off2+side]
		for j, v := range row1 {
			d := int64(v) - int64(row2[j])
			total += d * d
		}
		off1 += stride
		off2 += stride
	}
	return total
}

// FrobeniusNormSquared returns the sum of squared intensities of the patch centered at center.
func FrobeniusNormSquared(img rimage.GrayAccessor, center image.Point, radius int) int64 {
	var total int64
	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			v := int64(img.At(center.Y+i, center.X+j))
			total += v * v
		}
	}
	return total
}

// ComparePatches reports whether the patch at p2 is strictly closer to the anchor patch than
// the patch at p1. Ties report false.
func ComparePatches(img rimage.GrayAccessor, p1, p2, anchor image.Point, radius int) bool {
	dist1 := FrobeniusDistanceSquared(img, p1, anchor, radius)
	dist2 := FrobeniusDistanceSquared(img, p2, anchor, radius)
	return dist2 < dist1
}
