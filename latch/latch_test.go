package latch

import (
	"context"
	"image"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/latch/descriptor"
	"go.viam.com/latch/keypoints"
	"go.viam.com/latch/logging"
	"go.viam.com/latch/rimage"
	"go.viam.com/latch/utils"
)

// accessorOnly hides the concrete *rimage.Gray type so the generic patch distance is used.
type accessorOnly struct {
	rimage.GrayAccessor
}

// panickingAccessor panics when reading pixels below a row.
type panickingAccessor struct {
	rimage.GrayAccessor
	maxRow int
}

func (p panickingAccessor) At(row, col int) uint8 {
	if row > p.maxRow {
		panic("unreadable pixel row")
	}
	return p.GrayAccessor.At(row, col)
}

func randomImage(width, height int, seed int64) *rimage.Gray {
	rng := rand.New(rand.NewSource(seed))
	return rimage.NewGrayFromFunc(width, height, func(row, col int) uint8 {
		return uint8(rng.Intn(256))
	})
}

func newTestBuilder(t *testing.T, cfg *Config) *Builder {
	t.Helper()
	b, err := NewBuilder(cfg, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	return b
}

func TestTriplets(t *testing.T) {
	test.That(t, len(tripletOffsets), test.ShouldEqual, 6*descriptor.BitSize)
	test.That(t, MaxTripletOffset(), test.ShouldEqual, 24)
	first := TripletAt(0)
	test.That(t, first.P1, test.ShouldResemble, image.Point{X: -6, Y: 13})
	test.That(t, first.P2, test.ShouldResemble, image.Point{X: 19, Y: 19})
	test.That(t, first.Anchor, test.ShouldResemble, image.Point{X: -4, Y: 23})
	last := TripletAt(descriptor.BitSize - 1)
	test.That(t, last.P1, test.ShouldResemble, image.Point{X: -12, Y: 11})
	test.That(t, last.P2, test.ShouldResemble, image.Point{X: -21, Y: 5})
	test.That(t, last.Anchor, test.ShouldResemble, image.Point{X: -13, Y: -2})
}

func TestBuilderConfig(t *testing.T) {
	b := newTestBuilder(t, nil)
	test.That(t, b.Config(), test.ShouldResemble, *DefaultConfig())
	test.That(t, b.Radius(), test.ShouldEqual, 27)

	_, err := NewBuilder(&Config{PatchRadius: 0, WindowRadius: 24}, nil)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "patch_radius")

	_, err = NewBuilder(&Config{PatchRadius: 3, WindowRadius: 10}, nil)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "window_radius")

	b = newTestBuilder(t, &Config{PatchRadius: 2, WindowRadius: 30})
	test.That(t, b.Radius(), test.ShouldEqual, 32)
}

func TestValidRegion(t *testing.T) {
	b := newTestBuilder(t, nil)
	test.That(t, b.ValidRegion(image.Rect(0, 0, 64, 64)), test.ShouldResemble, image.Rect(27, 27, 37, 37))
	test.That(t, b.ValidRegion(image.Rect(10, 20, 110, 80)), test.ShouldResemble, image.Rect(37, 47, 83, 53))
	test.That(t, b.ValidRegion(image.Rect(0, 0, 54, 100)).Empty(), test.ShouldBeTrue)
	test.That(t, b.ValidRegion(image.Rect(0, 0, 20, 20)).Empty(), test.ShouldBeTrue)
}

func TestFrobenius(t *testing.T) {
	// 0-48 in (row, col) order
	small := rimage.NewGrayFromFunc(7, 7, func(row, col int) uint8 { return uint8(7*row + col) })
	center := image.Point{X: 3, Y: 3}
	test.That(t, FrobeniusNormSquared(small, center, 3), test.ShouldEqual, int64(38024))
	test.That(t, FrobeniusDistanceSquared(small, center, center, 3), test.ShouldEqual, int64(0))

	img := rimage.NewGrayFromFunc(16, 16, func(row, col int) uint8 { return uint8(7*row + col) })
	a := image.Point{X: 5, Y: 5}
	b := image.Point{X: 6, Y: 8}
	// every pixel differs by 7*3+1 = 22
	test.That(t, FrobeniusDistanceSquared(img, a, b, 3), test.ShouldEqual, int64(49*22*22))
	test.That(t, FrobeniusDistanceSquared(img, b, a, 3), test.ShouldEqual, int64(23716))
	test.That(t, grayDistanceSquared(img.Image(), a, b, 3), test.ShouldEqual, int64(23716))
	test.That(t, FrobeniusDistanceSquared(img, a, b, 1), test.ShouldEqual, int64(9*22*22))

	// the largest possible 7x7 distance does not overflow
	checker := rimage.NewGrayFromFunc(14, 7, func(row, col int) uint8 {
		if col < 7 {
			return 0
		}
		return 255
	})
	test.That(t, FrobeniusDistanceSquared(checker, image.Point{3, 3}, image.Point{10, 3}, 3),
		test.ShouldEqual, int64(3186225))
}

func TestComparePatches(t *testing.T) {
	img := rimage.NewGrayFromFunc(32, 32, func(row, col int) uint8 { return uint8(4 * col) })
	anchor := image.Point{X: 10, Y: 10}
	near := image.Point{X: 11, Y: 20}
	far := image.Point{X: 15, Y: 3}
	test.That(t, ComparePatches(img, far, near, anchor, 3), test.ShouldBeTrue)
	test.That(t, ComparePatches(img, near, far, anchor, 3), test.ShouldBeFalse)
	// ties resolve to false
	test.That(t, ComparePatches(img, near, near, anchor, 3), test.ShouldBeFalse)
	sameCol := image.Point{X: 11, Y: 5}
	test.That(t, ComparePatches(img, near, sameCol, anchor, 3), test.ShouldBeFalse)
}

func TestDescribeGradient(t *testing.T) {
	// intensity 2*row+col never wraps, so the distance between two patches is
	// 49*(2*drow+dcol)^2 and every bit can be predicted from the triplet alone.
	img := rimage.NewGrayFromFunc(64, 64, func(row, col int) uint8 { return uint8(2*row + col) })
	b := newTestBuilder(t, nil)
	descs, err := b.Describe(img, keypoints.KeyPoints{{X: 32, Y: 32}})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, descs, test.ShouldHaveLength, 1)
	test.That(t, len(descs[0]), test.ShouldEqual, 8)

	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	for p := 0; p < descriptor.BitSize; p++ {
		tr := TripletAt(p)
		d1 := abs(2*(tr.P1.Y-tr.Anchor.Y) + (tr.P1.X - tr.Anchor.X))
		d2 := abs(2*(tr.P2.Y-tr.Anchor.Y) + (tr.P2.X - tr.Anchor.X))
		test.That(t, descs[0].Bit(p), test.ShouldEqual, d2 < d1)
	}
}

func TestDescribeMatchesPerBitReference(t *testing.T) {
	img := randomImage(100, 90, 1)
	b := newTestBuilder(t, nil)
	kps := keypoints.KeyPoints{{X: 27, Y: 27}, {X: 50, Y: 40}, {X: 72, Y: 62}}
	descs, err := b.Describe(img, kps)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, descs, test.ShouldHaveLength, len(kps))
	for i, kp := range kps {
		for p := 0; p < descriptor.BitSize; p++ {
			tr := TripletAt(p)
			expected := ComparePatches(img, kp.Add(tr.P1), kp.Add(tr.P2), kp.Add(tr.Anchor), DefaultPatchRadius)
			test.That(t, descs[i].Bit(p), test.ShouldEqual, expected)
		}
	}

	generic, err := b.Describe(accessorOnly{img}, kps)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, generic, test.ShouldResemble, descs)
}

func TestDescribeDeterministic(t *testing.T) {
	img := rimage.NewGrayFromFunc(64, 64, func(row, col int) uint8 { return uint8(7*row + col) })
	b := newTestBuilder(t, nil)
	kps := keypoints.KeyPoints{{X: 32, Y: 32}}
	d1, err := b.Describe(img, kps)
	test.That(t, err, test.ShouldBeNil)
	d2, err := b.Describe(img, kps)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, d1, test.ShouldResemble, d2)

	// a crop that moves the origin sees the same pixels around the translated keypoint
	crop, err := img.Crop(image.Rect(5, 3, 64, 64))
	test.That(t, err, test.ShouldBeNil)
	d3, err := b.Describe(crop, keypoints.KeyPoints{{X: 27, Y: 29}})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, d3, test.ShouldResemble, d1)

	// a sub image keeps absolute coordinates
	sub := rimage.NewGray(img.Image().SubImage(image.Rect(2, 1, 63, 62)).(*image.Gray))
	d4, err := b.Describe(sub, kps)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, d4, test.ShouldResemble, d1)
}

func TestDescribeEmpty(t *testing.T) {
	b := newTestBuilder(t, nil)
	descs, err := b.Describe(randomImage(10, 10, 2), nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, descs, test.ShouldNotBeNil)
	test.That(t, descs, test.ShouldHaveLength, 0)
}

func TestDescribeOutOfBounds(t *testing.T) {
	img := randomImage(64, 64, 3)
	b := newTestBuilder(t, nil)
	for _, kp := range []image.Point{{26, 32}, {32, 26}, {37, 32}, {32, 37}, {0, 0}, {-5, 80}} {
		descs, err := b.Describe(img, keypoints.KeyPoints{{32, 32}, kp})
		test.That(t, descs, test.ShouldBeNil)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, errors.Is(err, ErrKeypointOutOfBounds), test.ShouldBeTrue)
		test.That(t, err.Error(), test.ShouldContainSubstring, "keypoint 1")
	}
	for _, kp := range []image.Point{{27, 27}, {36, 36}, {27, 36}} {
		_, err := b.Describe(img, keypoints.KeyPoints{kp})
		test.That(t, err, test.ShouldBeNil)
	}
}

func TestDescribeParallel(t *testing.T) {
	origFactor := utils.ParallelFactor
	defer func() { utils.ParallelFactor = origFactor }()
	utils.ParallelFactor = 4

	img := randomImage(120, 100, 4)
	b := newTestBuilder(t, nil)
	rng := rand.New(rand.NewSource(5))
	region := b.ValidRegion(img.Bounds())
	kps := make(keypoints.KeyPoints, 37)
	for i := range kps {
		kps[i] = image.Point{
			X: region.Min.X + rng.Intn(region.Dx()),
			Y: region.Min.Y + rng.Intn(region.Dy()),
		}
	}
	sequential, err := b.Describe(img, kps)
	test.That(t, err, test.ShouldBeNil)
	parallel, err := b.DescribeParallel(context.Background(), img, kps)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, parallel, test.ShouldResemble, sequential)

	cfg := DefaultConfig()
	cfg.Parallel = true
	pb := newTestBuilder(t, cfg)
	viaConfig, err := pb.Describe(img, kps)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, viaConfig, test.ShouldResemble, sequential)

	_, err = b.DescribeParallel(context.Background(), img, keypoints.KeyPoints{{1, 1}})
	test.That(t, errors.Is(err, ErrKeypointOutOfBounds), test.ShouldBeTrue)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = b.DescribeParallel(ctx, img, kps)
	test.That(t, errors.Is(err, context.Canceled), test.ShouldBeTrue)
}

func TestDescribeParallelPanic(t *testing.T) {
	origFactor := utils.ParallelFactor
	defer func() { utils.ParallelFactor = origFactor }()
	utils.ParallelFactor = 2

	img := panickingAccessor{GrayAccessor: randomImage(120, 100, 8), maxRow: 60}
	b := newTestBuilder(t, nil)
	kps := keypoints.KeyPoints{{40, 30}, {60, 60}}
	descs, err := b.DescribeParallel(context.Background(), img, kps)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "unreadable pixel row")
	test.That(t, descs, test.ShouldBeNil)

	// the first keypoint alone stays above the bad rows
	descs, err = b.DescribeParallel(context.Background(), img, kps[:1])
	test.That(t, err, test.ShouldBeNil)
	test.That(t, descs, test.ShouldHaveLength, 1)
}

func TestDescribeContext(t *testing.T) {
	img := randomImage(64, 64, 9)
	kps := keypoints.KeyPoints{{32, 32}, {30, 34}}
	for _, parallel := range []bool{false, true} {
		cfg := DefaultConfig()
		cfg.Parallel = parallel
		b := newTestBuilder(t, cfg)

		descs, err := b.DescribeContext(context.Background(), img, kps)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, descs, test.ShouldHaveLength, 2)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		descs, err = b.DescribeContext(ctx, img, kps)
		test.That(t, errors.Is(err, context.Canceled), test.ShouldBeTrue)
		test.That(t, descs, test.ShouldBeNil)
	}
}

func TestNewBuilderGlobalLogger(t *testing.T) {
	orig := logging.Global()
	defer logging.ReplaceGlobal(orig)
	logger, logs := logging.NewObservedTestLogger(t)
	logging.ReplaceGlobal(logger)

	b, err := NewBuilder(nil, nil)
	test.That(t, err, test.ShouldBeNil)
	_, err = b.Describe(randomImage(64, 64, 10), keypoints.KeyPoints{{32, 32}})
	test.That(t, err, test.ShouldBeNil)
	entries := logs.FilterMessage("computed LATCH descriptors").All()
	test.That(t, entries, test.ShouldHaveLength, 1)
	test.That(t, entries[0].LoggerName, test.ShouldEqual, "latch")
}

func TestDescribeLogs(t *testing.T) {
	logger, logs := logging.NewObservedTestLogger(t)
	b, err := NewBuilder(nil, logger)
	test.That(t, err, test.ShouldBeNil)
	_, err = b.Describe(randomImage(64, 64, 6), keypoints.KeyPoints{{32, 32}})
	test.That(t, err, test.ShouldBeNil)
	entries := logs.FilterMessage("computed LATCH descriptors").All()
	test.That(t, entries, test.ShouldHaveLength, 1)
	test.That(t, entries[0].ContextMap()["keypoints"], test.ShouldEqual, int64(1))
}

func BenchmarkDescribe(b *testing.B) {
	img := randomImage(640, 480, 7)
	builder, err := NewBuilder(nil, nil)
	if err != nil {
		b.Fatal(err)
	}
	kps := keypoints.KeyPoints{{100, 100}, {320, 240}, {500, 400}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := builder.Describe(img, kps); err != nil {
			b.Fatal(err)
		}
	}
}
