// Package main is the latch CLI: it describes keypoints of grayscale images with LATCH
// descriptors and matches them between two images.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"go.viam.com/utils"

	"go.viam.com/latch/descriptor"
	"go.viam.com/latch/keypoints"
	"go.viam.com/latch/latch"
	"go.viam.com/latch/logging"
	"go.viam.com/latch/matching"
	"go.viam.com/latch/rimage"
)

const (
	// Flags.
	flagConfig         = "config"
	flagDebug          = "debug"
	flagImage          = "image"
	flagKeypoints      = "keypoints"
	flagLeft           = "left"
	flagLeftKeypoints  = "left-keypoints"
	flagRight          = "right"
	flagRightKeypoints = "right-keypoints"
	flagMaxDist        = "max-dist"
	flagNoCrossCheck   = "no-cross-check"
	flagParallel       = "parallel"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	logger := logging.NewBlankLogger("latch")
	return &cli.App{
		Name:  "latch",
		Usage: "compute and match LATCH binary descriptors",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "load descriptor configuration from `FILE`",
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  flagParallel,
				Usage: "spread descriptor and matching work over all cores",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger = logging.NewDebugLogger("latch")
			}
			return nil
		},
		After: func(c *cli.Context) error {
			utils.UncheckedError(logger.Sync())
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "describe",
				Usage: "print the descriptors of the keypoints of an image",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagImage, Required: true, Usage: "grayscale image `FILE`"},
					&cli.StringFlag{Name: flagKeypoints, Required: true, Usage: "json keypoints `FILE`"},
				},
				Action: func(c *cli.Context) error {
					return describeAction(c, logger)
				},
			},
			{
				Name:  "match",
				Usage: "match the keypoints of two images",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagLeft, Required: true, Usage: "left grayscale image `FILE`"},
					&cli.StringFlag{Name: flagLeftKeypoints, Required: true, Usage: "left json keypoints `FILE`"},
					&cli.StringFlag{Name: flagRight, Required: true, Usage: "right grayscale image `FILE`"},
					&cli.StringFlag{Name: flagRightKeypoints, Required: true, Usage: "right json keypoints `FILE`"},
					&cli.IntFlag{Name: flagMaxDist, Usage: "drop matches whose hamming distance is not below `N` (0 keeps all)"},
					&cli.BoolFlag{Name: flagNoCrossCheck, Usage: "keep one-way nearest neighbors"},
				},
				Action: func(c *cli.Context) error {
					return matchAction(c, logger)
				},
			},
		},
	}
}

func newBuilder(c *cli.Context, logger logging.Logger) (*latch.Builder, error) {
	cfg := latch.DefaultConfig()
	if path := c.String(flagConfig); path != "" {
		var err error
		if cfg, err = latch.LoadConfig(path); err != nil {
			return nil, err
		}
	}
	if c.Bool(flagParallel) {
		cfg.Parallel = true
	}
	return latch.NewBuilder(cfg, logger.Sublogger("builder"))
}

func describeFile(ctx context.Context, builder *latch.Builder, imagePath, keypointsPath string,
) (keypoints.KeyPoints, descriptor.Descriptors, error) {
	img, err := rimage.ReadGrayFromFile(imagePath)
	if err != nil {
		return nil, nil, err
	}
	kps, err := keypoints.LoadKeyPoints(keypointsPath)
	if err != nil {
		return nil, nil, err
	}
	descs, err := builder.DescribeContext(ctx, img, kps)
	if err != nil {
		return nil, nil, err
	}
	return kps, descs, nil
}

type describedKeyPoint struct {
	Row        int                   `json:"row"`
	Col        int                   `json:"col"`
	Descriptor descriptor.Descriptor `json:"descriptor"`
}

func describeAction(c *cli.Context, logger logging.Logger) error {
	builder, err := newBuilder(c, logger)
	if err != nil {
		return err
	}
	kps, descs, err := describeFile(c.Context, builder, c.String(flagImage), c.String(flagKeypoints))
	if err != nil {
		return err
	}
	out := make([]describedKeyPoint, len(kps))
	for i, kp := range kps {
		out[i] = describedKeyPoint{Row: kp.Y, Col: kp.X, Descriptor: descs[i]}
	}
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func matchAction(c *cli.Context, logger logging.Logger) error {
	builder, err := newBuilder(c, logger)
	if err != nil {
		return err
	}
	leftKps, leftDescs, err := describeFile(c.Context, builder, c.String(flagLeft), c.String(flagLeftKeypoints))
	if err != nil {
		return err
	}
	rightKps, rightDescs, err := describeFile(c.Context, builder, c.String(flagRight), c.String(flagRightKeypoints))
	if err != nil {
		return err
	}

	cfg := &matching.MatchingConfig{
		DoCrossCheck: !c.Bool(flagNoCrossCheck),
		MaxDist:      c.Int(flagMaxDist),
	}
	var matches *matching.DescriptorMatches
	if c.Bool(flagParallel) {
		matches, err = matching.MatchDescriptorsParallel(c.Context, leftDescs, rightDescs, cfg, logger.Sublogger("matching"))
		if err != nil {
			return err
		}
	} else {
		matches = matching.MatchDescriptors(leftDescs, rightDescs, cfg, logger.Sublogger("matching"))
	}

	matchedLeft, matchedRight, err := matching.GetMatchingKeyPoints(matches, leftKps, rightKps)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%d matches found\n", len(matches.Indices))
	for i := range matches.Indices {
		fmt.Fprintf(c.App.Writer, "left (row %d, col %d) -> right (row %d, col %d) distance %d\n",
			matchedLeft[i].Y, matchedLeft[i].X, matchedRight[i].Y, matchedRight[i].X, matches.Distances[i])
	}
	return nil
}
