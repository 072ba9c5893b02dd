package envconfig

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/caarlos0/env/v11"
)

const schemeSRV = "mongodb+srv"

type mongoEnv struct {
	Scheme              string `env:"MONGO_SCHEME" envDefault:"mongodb+srv"`
	Host                string `env:"MONGO_HOST,required"`
	Port                int    `env:"MONGO_PORT" envDefault:"27017"`
	User                string `env:"DB_USER"`
	Password            string `env:"DB_PASS"`
	DBName              string `env:"MONGO_DATABASE" envDefault:"3dPrinting"`
	AuthDB              string `env:"MONGO_AUTH_DB"`
	AppName             string `env:"MONGO_APP_NAME" envDefault:"Cluster0"`
	MaterialsCollection string `env:"MONGO_MATERIALS_COLLECTION" envDefault:"materials"`
}

type mongo struct {
	raw mongoEnv
}

func NewMongoConfig() (*mongo, error) {
	var raw mongoEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	if raw.Scheme != schemeSRV && raw.Scheme != "mongodb" {
		return nil, fmt.Errorf("unsupported MONGO_SCHEME %q", raw.Scheme)
	}
	return &mongo{raw: raw}, nil
}

func (cfg *mongo) DatabaseName() string {
	return cfg.raw.DBName
}

func (cfg *mongo) MaterialsCollection() string {
	return cfg.raw.MaterialsCollection
}

// DSN builds the connection string. SRV records carry the port, so it is
// only appended for the plain scheme.
func (cfg *mongo) DSN() string {
	u := url.URL{
		Scheme: cfg.raw.Scheme,
		Host:   cfg.raw.Host,
		Path:   "/",
	}
	if cfg.raw.Scheme != schemeSRV {
		u.Host = cfg.raw.Host + ":" + strconv.Itoa(cfg.raw.Port)
	}
	if cfg.raw.User != "" {
		u.User = url.UserPassword(cfg.raw.User, cfg.raw.Password)
	}

	q := url.Values{}
	if cfg.raw.AppName != "" {
		q.Set("appName", cfg.raw.AppName)
	}
	if cfg.raw.AuthDB != "" {
		q.Set("authSource", cfg.raw.AuthDB)
	}
	u.RawQuery = q.Encode()

	return u.String()
}
