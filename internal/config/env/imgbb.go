package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type imgbbEnv struct {
	APIKey     string        `env:"IMGBB_API,required"`
	URL        string        `env:"IMGBB_URL" envDefault:"https://api.imgbb.com/1/upload"`
	Timeout    time.Duration `env:"IMGBB_TIMEOUT" envDefault:"30s"`
	Expiration time.Duration `env:"IMGBB_EXPIRATION" envDefault:"0s"`
}

type imgbb struct {
	raw imgbbEnv
}

func NewImgbbConfig() (*imgbb, error) {
	var raw imgbbEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &imgbb{raw: raw}, nil
}

func (cfg *imgbb) APIKey() string            { return cfg.raw.APIKey }
func (cfg *imgbb) URL() string               { return cfg.raw.URL }
func (cfg *imgbb) Timeout() time.Duration    { return cfg.raw.Timeout }
func (cfg *imgbb) Expiration() time.Duration { return cfg.raw.Expiration }
