package service

import (
	"fmt"
	"math"
)

// Tolerance on the output sum when deciding whether the model already
// applied softmax.
const sumTolerance = 1e-3

// Postprocess interprets the model's raw output vector as a probability
// distribution over Labels. A vector that already sums to one is used
// as-is (the exported model ends in a softmax layer); anything else is
// treated as raw scores and normalized. A length mismatch against the
// label contract is a configuration error.
func Postprocess(raw []float32) (*Prediction, error) {
	if len(raw) != len(Labels) {
		return nil, fmt.Errorf("model returned %d outputs, expected %d: label order no longer matches the model artifact", len(raw), len(Labels))
	}

	probs := make([]float32, len(raw))
	copy(probs, raw)
	if !isDistribution(probs) {
		softmax(probs)
	}

	top := 0
	for i, p := range probs {
		if p > probs[top] {
			top = i
		}
	}

	dist := make(map[string]float32, len(Labels))
	for i, label := range Labels {
		dist[label] = probs[i]
	}

	return &Prediction{
		Class:         Labels[top],
		Confidence:    probs[top],
		Probabilities: dist,
	}, nil
}

func isDistribution(v []float32) bool {
	var sum float64
	for _, p := range v {
		if p < 0 {
			return false
		}
		sum += float64(p)
	}
	return math.Abs(sum-1) <= sumTolerance
}

// softmax normalizes in place, subtracting the max first so large scores
// cannot overflow the exponential.
func softmax(v []float32) {
	maxVal := v[0]
	for _, x := range v[1:] {
		if x > maxVal {
			maxVal = x
		}
	}
	var sum float64
	for i, x := range v {
		e := math.Exp(float64(x - maxVal))
		v[i] = float32(e)
		sum += e
	}
	for i := range v {
		v[i] = float32(float64(v[i]) / sum)
	}
}
