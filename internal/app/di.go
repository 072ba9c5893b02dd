package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/afero"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/you-humble/material-catalog/internal/client/http/imgbb"
	"github.com/you-humble/material-catalog/internal/config"
	"github.com/you-humble/material-catalog/internal/converter"
	"github.com/you-humble/material-catalog/internal/model"
	repository "github.com/you-humble/material-catalog/internal/repository/material"
	service "github.com/you-humble/material-catalog/internal/service/material"
	matproducer "github.com/you-humble/material-catalog/internal/service/producer/material"
	"github.com/you-humble/material-catalog/internal/staging"
	"github.com/you-humble/material-catalog/internal/transport/http/health"
	thttp "github.com/you-humble/material-catalog/internal/transport/http/material/v1"
	"github.com/you-humble/material-catalog/platform/closer"
	"github.com/you-humble/material-catalog/platform/kafka"
	"github.com/you-humble/material-catalog/platform/kafka/producer"
	"github.com/you-humble/material-catalog/platform/logger"
)

const connectTimeout = 10 * time.Second

type Converter interface {
	MaterialChangedToPayload(m model.MaterialChanged) ([]byte, error)
}

type Stager interface {
	service.Stager
	Init() error
}

type di struct {
	mongo      *mongo.Client
	collection *mongo.Collection
	repository service.MaterialRepository

	fs        afero.Fs
	stager    Stager
	imageHost service.ImageHost

	syncProducer            sarama.SyncProducer
	materialChangedProducer kafka.Producer
	materialProducer        service.EventSender

	conv Converter

	service thttp.MaterialService
	handler MaterialHandler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

// MongoDB connects lazily; a failed ping is logged and the client is kept so
// requests can succeed once the server becomes reachable.
func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.Mongo.DSN()).
				SetConnectTimeout(connectTimeout),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()

		if err := mongoClient.Ping(pingCtx, readpref.Primary()); err != nil {
			logger.Error(ctx, "failed to ping database", logger.ErrorF(err))
		} else {
			logger.Info(ctx, "connected to MongoDB")
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) MaterialsCollection(ctx context.Context) *mongo.Collection {
	if d.collection == nil {
		d.collection = d.MongoDB(ctx).
			Database(config.C().Mongo.DatabaseName()).
			Collection(config.C().Mongo.MaterialsCollection())
	}

	return d.collection
}

func (d *di) MaterialRepository(ctx context.Context) service.MaterialRepository {
	if d.repository == nil {
		d.repository = repository.NewMaterialRepository(d.MaterialsCollection(ctx))
	}

	return d.repository
}

func (d *di) FS(_ context.Context) afero.Fs {
	if d.fs == nil {
		d.fs = afero.NewOsFs()
	}

	return d.fs
}

func (d *di) Stager(ctx context.Context) Stager {
	if d.stager == nil {
		cfg := config.C()
		d.stager = staging.NewStager(
			d.FS(ctx),
			cfg.Staging.Dir(),
			cfg.Staging.MaxUploadSize(),
		)
	}

	return d.stager
}

func (d *di) ImageHost(ctx context.Context) service.ImageHost {
	if d.imageHost == nil {
		d.imageHost = imgbb.NewClient(config.C().ImageHost, d.FS(ctx))
	}

	return d.imageHost
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) MaterialChangedProducer(ctx context.Context) kafka.Producer {
	if d.materialChangedProducer == nil {
		d.materialChangedProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.MaterialChangedTopic(),
			logger.L(),
		)
	}

	return d.materialChangedProducer
}

func (d *di) MaterialProducer(ctx context.Context) service.EventSender {
	if d.materialProducer == nil {
		if !config.C().Kafka.Enabled() {
			logger.Info(ctx, "KAFKA_BROKERS not set, material events are disabled")
			d.materialProducer = matproducer.NewNoopProducer()
			return d.materialProducer
		}

		d.materialProducer = matproducer.NewMaterialProducer(
			d.MaterialChangedProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.materialProducer
}

func (d *di) MaterialService(ctx context.Context) thttp.MaterialService {
	if d.service == nil {
		d.service = service.NewMaterialService(
			d.MaterialRepository(ctx),
			d.Stager(ctx),
			d.ImageHost(ctx),
			d.MaterialProducer(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.service
}

func (d *di) MaterialHandler(ctx context.Context) MaterialHandler {
	if d.handler == nil {
		cfg := config.C()
		d.handler = thttp.NewMaterialHandler(
			d.MaterialService(ctx),
			cfg.Staging.MaxUploadSize(),
			cfg.Server.ExposeErrorDetails(),
		)
	}

	return d.handler
}

func (d *di) Router(ctx context.Context) *chi.Mux {
	if d.router == nil {
		client := d.MongoDB(ctx)
		healthHandler := health.NewHealthHandler(health.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		}))

		d.router = NewRouter(
			d.MaterialHandler(ctx),
			http.HandlerFunc(healthHandler.HealthCheck),
			config.C().CORS.AllowedOrigin(),
		)
	}

	return d.router
}
