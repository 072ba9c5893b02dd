package envconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/docker/go-units"
)

type stagingEnv struct {
	Dir           string `env:"UPLOAD_DIR"`
	MaxUploadSize string `env:"MAX_UPLOAD_SIZE" envDefault:"10MB"`
}

type staging struct {
	raw           stagingEnv
	maxUploadSize int64
}

func NewStagingConfig() (*staging, error) {
	var raw stagingEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	if raw.Dir == "" {
		raw.Dir = filepath.Join(os.TempDir(), "material-uploads")
	}

	size, err := units.FromHumanSize(raw.MaxUploadSize)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_SIZE: %w", err)
	}
	if size <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_SIZE must be positive")
	}

	return &staging{raw: raw, maxUploadSize: size}, nil
}

func (cfg *staging) Dir() string          { return cfg.raw.Dir }
func (cfg *staging) MaxUploadSize() int64 { return cfg.maxUploadSize }
