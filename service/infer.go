package service

import (
	"fmt"
	"image"

	ort "github.com/yalue/onnxruntime_go"
)

// Predict runs a decoded MRI image through the loaded model and returns
// the classification result.
func Predict(img image.Image) (*Prediction, error) {
	inputData := Preprocess(img)
	if modelPool == nil {
		return nil, fmt.Errorf("model not initialized")
	}

	m := <-modelPool
	defer func() { modelPool <- m }()

	copy(m.input.(*ort.Tensor[float32]).GetData(), inputData)
	if err := m.session.Run(); err != nil {
		return nil, err
	}

	outputTensor := m.output.(*ort.Tensor[float32]).GetData()
	raw := make([]float32, len(outputTensor))
	copy(raw, outputTensor)

	return Postprocess(raw)
}
