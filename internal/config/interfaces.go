package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
	ExposeErrorDetails() bool
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	DatabaseName() string
	MaterialsCollection() string
	DSN() string
}

type ImageHost interface {
	APIKey() string
	URL() string
	Timeout() time.Duration
	Expiration() time.Duration
}

type Staging interface {
	Dir() string
	MaxUploadSize() int64
}

type CORS interface {
	AllowedOrigin() string
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	MaterialChangedTopic() string
	ProducerConfig() *sarama.Config
}
