package service

import (
	ort "github.com/yalue/onnxruntime_go"
)

// ImageSize is the spatial resolution the backbone was trained on.
const ImageSize = 224

// Labels must stay in the training-time class-index order of the model
// artifact. Never reorder independently of the .onnx file.
var Labels = [4]string{"glioma", "meningioma", "notumor", "pituitary"}

// VGGMean holds the VGG16 per-channel means in B, G, R order. The
// training pipeline flips channels to BGR and subtracts these, with no
// further scaling.
var VGGMean = [3]float32{103.939, 116.779, 123.68}

type Prediction struct {
	Class         string             `json:"class"`
	Confidence    float32            `json:"confidence"`
	Probabilities map[string]float32 `json:"probabilities"`
}

type Model struct {
	session    *ort.AdvancedSession
	input      ort.Value
	output     ort.Value
	inputName  string
	outputName string
}

var modelPool chan *Model
