package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.viam.com/test"

	"go.viam.com/latch/keypoints"
	"go.viam.com/latch/rimage"
)

func writePNG(t *testing.T, dir, name string, img *image.Gray) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, png.Encode(f, img), test.ShouldBeNil)
	test.That(t, f.Close(), test.ShouldBeNil)
	return path
}

func writeKeyPoints(t *testing.T, dir, name string, kps keypoints.KeyPoints) string {
	t.Helper()
	data, err := keypoints.MarshalKeyPoints(kps)
	test.That(t, err, test.ShouldBeNil)
	path := filepath.Join(dir, name)
	test.That(t, os.WriteFile(path, data, 0o600), test.ShouldBeNil)
	return path
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"latch"}, args...))
	return out.String(), err
}

type fixture struct {
	left, leftKps, right, rightKps string
	kps                            keypoints.KeyPoints
}

// newFixture writes a textured image, a copy shifted by (5 rows, 7 cols) and keypoints that
// correspond between the two.
func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	rng := rand.New(rand.NewSource(99))
	left := rimage.NewGrayFromFunc(140, 120, func(row, col int) uint8 { return uint8(rng.Intn(256)) })
	right, err := left.Crop(image.Rect(7, 5, 140, 120))
	test.That(t, err, test.ShouldBeNil)

	kps := keypoints.KeyPoints{{40, 40}, {60, 50}, {80, 70}, {100, 80}, {50, 85}}
	shifted := make(keypoints.KeyPoints, len(kps))
	for i, kp := range kps {
		shifted[i] = kp.Sub(image.Point{7, 5})
	}
	return fixture{
		left:     writePNG(t, dir, "left.png", left.Image()),
		leftKps:  writeKeyPoints(t, dir, "left.json", kps),
		right:    writePNG(t, dir, "right.png", right.Image()),
		rightKps: writeKeyPoints(t, dir, "right.json", shifted),
		kps:      kps,
	}
}

func TestDescribeCommand(t *testing.T) {
	fx := newFixture(t)
	out, err := runApp(t, "describe", "--image", fx.left, "--keypoints", fx.leftKps)
	test.That(t, err, test.ShouldBeNil)

	var described []describedKeyPoint
	test.That(t, json.Unmarshal([]byte(out), &described), test.ShouldBeNil)
	test.That(t, described, test.ShouldHaveLength, len(fx.kps))
	for i, d := range described {
		test.That(t, d.Row, test.ShouldEqual, fx.kps[i].Y)
		test.That(t, d.Col, test.ShouldEqual, fx.kps[i].X)
	}

	// the shifted keypoints of the shifted image have the same descriptors
	out, err = runApp(t, "--parallel", "describe", "--image", fx.right, "--keypoints", fx.rightKps)
	test.That(t, err, test.ShouldBeNil)
	var shifted []describedKeyPoint
	test.That(t, json.Unmarshal([]byte(out), &shifted), test.ShouldBeNil)
	for i := range shifted {
		test.That(t, shifted[i].Descriptor, test.ShouldEqual, described[i].Descriptor)
	}
}

func TestMatchCommand(t *testing.T) {
	fx := newFixture(t)
	for _, extra := range [][]string{nil, {"--parallel"}} {
		args := append(append([]string{}, extra...), "match",
			"--left", fx.left, "--left-keypoints", fx.leftKps,
			"--right", fx.right, "--right-keypoints", fx.rightKps)
		out, err := runApp(t, args...)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, out, test.ShouldContainSubstring, fmt.Sprintf("%d matches found", len(fx.kps)))
		for _, kp := range fx.kps {
			line := fmt.Sprintf("left (row %d, col %d) -> right (row %d, col %d) distance 0",
				kp.Y, kp.X, kp.Y-5, kp.X-7)
			test.That(t, out, test.ShouldContainSubstring, line)
		}
	}
}

func TestMatchCommandParallelAgrees(t *testing.T) {
	fx := newFixture(t)
	for _, opts := range [][]string{
		nil,
		{"--no-cross-check"},
		{"--max-dist", "40"},
		{"--no-cross-check", "--max-dist", "40"},
	} {
		args := append([]string{"match",
			"--left", fx.left, "--left-keypoints", fx.leftKps,
			"--right", fx.right, "--right-keypoints", fx.rightKps,
		}, opts...)
		sequential, err := runApp(t, args...)
		test.That(t, err, test.ShouldBeNil)
		parallel, err := runApp(t, append([]string{"--parallel"}, args...)...)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, parallel, test.ShouldEqual, sequential)
		test.That(t, parallel, test.ShouldContainSubstring, "matches found")
	}
}

func TestCommandErrors(t *testing.T) {
	fx := newFixture(t)
	dir := t.TempDir()

	_, err := runApp(t, "describe", "--image", fx.left)
	test.That(t, err, test.ShouldNotBeNil)

	edge := writeKeyPoints(t, dir, "edge.json", keypoints.KeyPoints{{3, 3}})
	_, err = runApp(t, "describe", "--image", fx.left, "--keypoints", edge)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "too close to image border")

	badCfg := filepath.Join(dir, "latch.json")
	test.That(t, os.WriteFile(badCfg, []byte(`{"patch_radius": 0}`), 0o600), test.ShouldBeNil)
	_, err = runApp(t, "--config", badCfg, "describe", "--image", fx.left, "--keypoints", fx.leftKps)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, strings.Contains(err.Error(), "patch_radius"), test.ShouldBeTrue)

	_, err = runApp(t, "match", "--left", fx.left, "--left-keypoints", fx.leftKps,
		"--right", filepath.Join(dir, "missing.png"), "--right-keypoints", fx.rightKps)
	test.That(t, err, test.ShouldNotBeNil)
}
