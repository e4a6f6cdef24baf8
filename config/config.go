package config

import (
	"os"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Token   string `toml:"token" mapstructure:"token"`
	Host    string `toml:"host" mapstructure:"host"`
	Port    string `toml:"port" mapstructure:"port"`
	Libonnx string `toml:"libonnx" mapstructure:"libonnx"`

	ModelUrl       string `toml:"model_url" mapstructure:"model_url"`
	ModelDir       string `toml:"model_dir" mapstructure:"model_dir"`
	ModelFileName  string `toml:"model_file_name" mapstructure:"model_file_name"`
	MaxUploadBytes int64  `toml:"max_upload_bytes" mapstructure:"max_upload_bytes"`
}

var (
	cfg = Config{
		Token:          "",
		Host:           "0.0.0.0",
		Port:           "8080",
		ModelUrl:       "",
		ModelDir:       "models",
		ModelFileName:  "brain_tumor_vgg16.onnx",
		MaxUploadBytes: 20 << 20,
	}
	loadOnce sync.Once
)

func C() Config {
	loadOnce.Do(func() {
		if _, err := os.Stat("config.toml"); err == nil {
			data, err := os.ReadFile("config.toml")
			if err != nil {
				panic(err)
			}
			if err := toml.Unmarshal(data, &cfg); err != nil {
				panic(err)
			}
		}
		// deployment secret takes precedence over the file
		if v := strings.TrimSpace(os.Getenv("MODEL_URL")); v != "" {
			cfg.ModelUrl = v
		}
	})
	return cfg
}
