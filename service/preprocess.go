package service

import (
	"image"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/gen2brain/avif"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
)

// Preprocess converts a decoded image into the model's input tensor:
// NHWC (1, 224, 224, 3), BGR channel order, VGG16 per-channel means
// subtracted. This must mirror the training pipeline exactly; a deviation
// here produces wrong predictions with no error signal, since the model
// accepts any correctly shaped tensor.
func Preprocess(img image.Image) []float32 {
	rgb := imaging.Resize(img, ImageSize, ImageSize, imaging.Linear)

	out := make([]float32, ImageSize*ImageSize*3)
	i := 0
	for y := 0; y < ImageSize; y++ {
		for x := 0; x < ImageSize; x++ {
			c := rgb.NRGBAAt(x, y)
			out[i] = float32(c.B) - VGGMean[0]
			out[i+1] = float32(c.G) - VGGMean[1]
			out[i+2] = float32(c.R) - VGGMean[2]
			i += 3
		}
	}
	return out
}
