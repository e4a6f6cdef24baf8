package service

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func uniformImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestPreprocessOutputShape(t *testing.T) {
	sizes := []struct{ w, h int }{
		{224, 224},
		{1, 1},
		{640, 480},
		{50, 300},
		{1024, 1024},
	}
	for _, s := range sizes {
		out := Preprocess(uniformImage(s.w, s.h, color.NRGBA{R: 120, G: 60, B: 30, A: 255}))
		if len(out) != ImageSize*ImageSize*3 {
			t.Errorf("%dx%d: got %d values, want %d", s.w, s.h, len(out), ImageSize*ImageSize*3)
		}
	}
}

func TestPreprocessChannelOrderAndMean(t *testing.T) {
	// Pure red input: BGR layout puts (0 - meanB) first and
	// (255 - meanR) last within each pixel.
	out := Preprocess(uniformImage(100, 80, color.NRGBA{R: 255, A: 255}))

	checks := []struct {
		name string
		got  float32
		want float32
	}{
		{"blue channel", out[0], 0 - VGGMean[0]},
		{"green channel", out[1], 0 - VGGMean[1]},
		{"red channel", out[2], 255 - VGGMean[2]},
	}
	for _, c := range checks {
		if math.Abs(float64(c.got-c.want)) > 1.5 {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}

	// uniform input stays uniform after resizing
	last := len(out) - 3
	for i := 0; i < 3; i++ {
		if math.Abs(float64(out[last+i]-out[i])) > 1.5 {
			t.Errorf("channel %d: last pixel %v differs from first %v", i, out[last+i], out[i])
		}
	}
}

func TestPreprocessGrayValues(t *testing.T) {
	// MRI scans are typically grayscale; a mid-gray pixel lands at
	// 128 minus each channel mean.
	out := Preprocess(uniformImage(300, 300, color.NRGBA{R: 128, G: 128, B: 128, A: 255}))
	for i, mean := range VGGMean {
		want := 128 - mean
		if math.Abs(float64(out[i]-want)) > 1.5 {
			t.Errorf("channel %d: got %v, want %v", i, out[i], want)
		}
	}
}
