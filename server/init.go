package server

import (
	"context"

	"github.com/zuzik/neuroscan/service"
)

// Init provisions the model artifact and builds the inference session.
// Called once at startup; failure is fatal.
func Init(ctx context.Context) error {
	return service.LoadModel(ctx)
}
