// Package keypoints contains the keypoint types consumed by LATCH descriptors. Keypoints are
// produced by an external detector; this package only carries and filters them.
package keypoints

import (
	"encoding/json"
	"image"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.viam.com/utils"

	"go.viam.com/latch/rimage"
)

type (
	// KeyPoint is an image.Point that contains coordinates of a kp. X is the column and Y the row.
	KeyPoint image.Point // keypoint type
	// KeyPoints is a slice of image.Point that contains several kps.
	KeyPoints []image.Point // set of keypoints type
)

// Detector finds keypoints in a grayscale image. Implementations live outside this module.
type Detector interface {
	Detect(img rimage.GrayAccessor) (KeyPoints, error)
}

// DetectorFunc adapts a function to a Detector.
type DetectorFunc func(img rimage.GrayAccessor) (KeyPoints, error)

// Detect calls f(img).
func (f DetectorFunc) Detect(img rimage.GrayAccessor) (KeyPoints, error) {
	return f(img)
}

// FilterInterior returns the keypoints that lie inside region, keeping their order.
func FilterInterior(kps KeyPoints, region image.Rectangle) KeyPoints {
	out := make(KeyPoints, 0, len(kps))
	for _, kp := range kps {
		if kp.In(region) {
			out = append(out, kp)
		}
	}
	return out
}

// jsonKeyPoint is the on-disk form of a keypoint.
type jsonKeyPoint struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// LoadKeyPoints reads keypoints from a json file holding a list of {"row": r, "col": c}.
func LoadKeyPoints(file string) (KeyPoints, error) {
	//nolint:gosec
	f, err := os.Open(filepath.Clean(file))
	if err != nil {
		return nil, err
	}
	defer utils.UncheckedErrorFunc(f.Close)
	var raw []jsonKeyPoint
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, errors.Wrapf(err, "could not parse keypoints file %q", file)
	}
	kps := make(KeyPoints, len(raw))
	for i, kp := range raw {
		kps[i] = image.Point{X: kp.Col, Y: kp.Row}
	}
	return kps, nil
}

// MarshalKeyPoints encodes keypoints in the format read by LoadKeyPoints.
func MarshalKeyPoints(kps KeyPoints) ([]byte, error) {
	raw := make([]jsonKeyPoint, len(kps))
	for i, kp := range kps {
		raw[i] = jsonKeyPoint{Row: kp.Y, Col: kp.X}
	}
	return json.Marshal(raw)
}
