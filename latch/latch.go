// Package latch computes LATCH binary descriptors. Each of the 512 descriptor bits compares
// two small patches around a keypoint against a third anchor patch and records which of the
// two is closer to the anchor.
package latch

import (
	"context"
	"image"
	"time"

	"github.com/pkg/errors"

	"go.viam.com/latch/descriptor"
	"go.viam.com/latch/keypoints"
	"go.viam.com/latch/logging"
	"go.viam.com/latch/rimage"
	"go.viam.com/latch/utils"
)

// ErrKeypointOutOfBounds is returned when a keypoint is too close to the image border for its
// patches to fit inside the image.
var ErrKeypointOutOfBounds = errors.New("keypoint too close to image border")

// Builder computes descriptors for keypoints of grayscale images. It holds no mutable state and
// is safe for concurrent use.
type Builder struct {
	cfg    Config
	logger logging.Logger
}

// NewBuilder returns a Builder for cfg. A nil cfg uses DefaultConfig and a nil logger logs to a
// "latch" sublogger of the global logger.
func NewBuilder(cfg *Config, logger logging.Logger) (*Builder, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate("latch"); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Global().Sublogger("latch")
	}
	return &Builder{cfg: *cfg, logger: logger}, nil
}

// Config returns a copy of the builder configuration.
func (b *Builder) Config() Config {
	return b.cfg
}

// Radius is the minimum distance between a keypoint and every image border.
func (b *Builder) Radius() int {
	return b.cfg.PatchRadius + b.cfg.WindowRadius
}

// ValidRegion returns the rectangle of keypoint positions that can be described in an image with
// the given bounds. It is empty when the image is too small.
func (b *Builder) ValidRegion(bounds image.Rectangle) image.Rectangle {
	r := b.Radius()
	// image.Rect would swap inverted corners, so build the rectangle directly.
	region := image.Rectangle{
		Min: image.Point{X: bounds.Min.X + r, Y: bounds.Min.Y + r},
		Max: image.Point{X: bounds.Max.X - r, Y: bounds.Max.Y - r},
	}
	if region.Empty() {
		return image.Rectangle{}
	}
	return region
}

// Describe computes one descriptor per keypoint, in keypoint order. Every keypoint must lie in
// ValidRegion(img.Bounds()); otherwise an error wrapping ErrKeypointOutOfBounds is returned and no
// descriptors are.
func (b *Builder) Describe(img rimage.GrayAccessor, kps keypoints.KeyPoints) (descriptor.Descriptors, error) {
	return b.DescribeContext(context.Background(), img, kps)
}

// DescribeContext is Describe stopping early when ctx is done. Parallel configs go through
// DescribeParallel.
func (b *Builder) DescribeContext(ctx context.Context, img rimage.GrayAccessor, kps keypoints.KeyPoints,
) (descriptor.Descriptors, error) {
	if b.cfg.Parallel {
		return b.DescribeParallel(ctx, img, kps)
	}
	if err := b.checkBounds(img, kps); err != nil {
		return nil, err
	}
	start := time.Now()
	dist := distanceFunc(img)
	descs := make(descriptor.Descriptors, len(kps))
	for i, kp := range kps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		descs[i] = b.describeOne(dist, kp)
	}
	b.logger.Debugw("computed LATCH descriptors", "keypoints", len(kps), "elapsed", time.Since(start))
	return descs, nil
}

// DescribeParallel is Describe with the keypoints spread over utils.ParallelFactor workers. The
// result is identical to Describe. A panic while reading pixels is returned as an error, and no
// descriptors are.
func (b *Builder) DescribeParallel(ctx context.Context, img rimage.GrayAccessor, kps keypoints.KeyPoints,
) (descriptor.Descriptors, error) {
	if err := b.checkBounds(img, kps); err != nil {
		return nil, err
	}
	start := time.Now()
	dist := distanceFunc(img)
	descs := make(descriptor.Descriptors, len(kps))
	err := utils.GroupWorkParallel(
		ctx,
		len(kps),
		func(numGroups int) {},
		func(groupNum, groupSize, from, to int) (utils.MemberWorkFunc, utils.GroupWorkDoneFunc) {
			return func(memberNum, workNum int) {
				descs[workNum] = b.describeOne(dist, kps[workNum])
			}, nil
		},
	)
	if err != nil {
		return nil, err
	}
	b.logger.Debugw("computed LATCH descriptors in parallel", "keypoints", len(kps), "elapsed", time.Since(start))
	return descs, nil
}

func (b *Builder) checkBounds(img rimage.GrayAccessor, kps keypoints.KeyPoints) error {
	region := b.ValidRegion(img.Bounds())
	for i, kp := range kps {
		if !kp.In(region) {
			return errors.Wrapf(ErrKeypointOutOfBounds,
				"keypoint %d at (row %d, col %d) needs %d pixels of margin in image bounds %v",
				i, kp.Y, kp.X, b.Radius(), img.Bounds())
		}
	}
	return nil
}

// describeOne builds the descriptor of a single in-bounds keypoint.
func (b *Builder) describeOne(dist patchDistanceFunc, kp image.Point) descriptor.Descriptor {
	var desc descriptor.Descriptor
	radius := b.cfg.PatchRadius
	for j := 0; j < descriptor.Words; j++ {
		var word uint64
		for k := 0; k < descriptor.BitsPerWord; k++ {
			t := &triplets[descriptor.BitsPerWord*j+k]
			anchor := kp.Add(t.Anchor)
			dist1 := dist(kp.Add(t.P1), anchor, radius)
			dist2 := dist(kp.Add(t.P2), anchor, radius)
			if dist2 < dist1 {
				word |= 1 << uint(k)
			}
		}
		desc[j] = word
	}
	return desc
}
