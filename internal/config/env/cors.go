package envconfig

import "github.com/caarlos0/env/v11"

type corsEnv struct {
	AllowedOrigin string `env:"CORS_ALLOWED_ORIGIN" envDefault:"http://localhost:5173"`
}

type cors struct {
	raw corsEnv
}

func NewCORSConfig() (*cors, error) {
	var raw corsEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &cors{raw: raw}, nil
}

func (cfg *cors) AllowedOrigin() string { return cfg.raw.AllowedOrigin }
