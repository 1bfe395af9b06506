package rimage

import (
	"image"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.viam.com/utils"
	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/tiff" // register decoder
)

// ReadGrayFromFile decodes a single channel image from a PNG, JPEG, BMP or TIFF file.
func ReadGrayFromFile(path string) (*Gray, error) {
	//nolint:gosec
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer utils.UncheckedErrorFunc(f.Close)

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode %q", path)
	}
	gray, err := ToGray(img)
	if err != nil {
		return nil, errors.Wrapf(err, "%s image %q", format, path)
	}
	return NewGray(gray), nil
}
