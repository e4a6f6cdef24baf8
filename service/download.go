package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// ErrModelNotFound means no model file exists locally and no URL is
// configured to fetch one from.
var ErrModelNotFound = errors.New("model file not found")

const downloadChunkSize = 8192

// EnsureModel makes sure the model artifact exists at path, streaming it
// down from url when missing. A missing file with an empty url is fatal.
func EnsureModel(ctx context.Context, path, url string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if url == "" {
		return fmt.Errorf("%w at %s: place the .onnx file there, or set model_url in config.toml (or the MODEL_URL environment variable) to download it at startup", ErrModelNotFound, path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	slog.Info("Downloading model", slog.String("url", url), slog.String("path", path))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download model from %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download model from %s: %s", url, resp.Status)
	}

	// write to a temp file and rename, so a partial download never
	// masquerades as a model
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".part-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	buf := make([]byte, downloadChunkSize)
	if _, err := io.CopyBuffer(tmp, resp.Body, buf); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to download model from %s: %w", url, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return err
	}
	slog.Info("Model downloaded", slog.String("path", path))
	return nil
}
