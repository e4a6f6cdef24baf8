package service

import (
	"context"
	"fmt"
	"path/filepath"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/zuzik/neuroscan/config"
)

// LoadModel provisions the model artifact and builds the ONNX Runtime
// session. The session is created once and cached for the life of the
// process; there is no reload policy.
func LoadModel(ctx context.Context) error {
	onnxPath := filepath.Join(config.C().ModelDir, config.C().ModelFileName)
	if err := EnsureModel(ctx, onnxPath, config.C().ModelUrl); err != nil {
		return err
	}

	inputs, outputs, err := ort.GetInputOutputInfo(onnxPath)
	if err != nil {
		return fmt.Errorf("failed to get model input/output info: %w", err)
	}

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return fmt.Errorf("failed to create session options: %w", err)
	}
	// NHWC, as exported from the Keras model
	inputTensor, err := ort.NewTensor(ort.NewShape(1, ImageSize, ImageSize, 3), make([]float32, ImageSize*ImageSize*3))
	if err != nil {
		return fmt.Errorf("failed to create input tensor: %w", err)
	}
	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(len(Labels))))
	if err != nil {
		return fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(
		onnxPath,
		[]string{inputs[0].Name},
		[]string{outputs[0].Name},
		[]ort.Value{inputTensor},
		[]ort.Value{outputTensor},
		opts,
	)
	if err != nil {
		return fmt.Errorf("failed to create ONNX Runtime session: %w", err)
	}

	modelPool = make(chan *Model, 1)
	modelPool <- &Model{
		session:    session,
		input:      inputTensor,
		output:     outputTensor,
		inputName:  inputs[0].Name,
		outputName: outputs[0].Name,
	}
	return nil
}
