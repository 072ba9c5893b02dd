package app

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/you-humble/material-catalog/internal/config"
	repository "github.com/you-humble/material-catalog/internal/repository/material"
	"github.com/you-humble/material-catalog/platform/closer"
	"github.com/you-humble/material-catalog/platform/logger"
)

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initIndexes,
		a.initStaging,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	closer.AddNamed("Logger", func(context.Context) error {
		_ = logger.L().Sync()
		return nil
	})
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

// initIndexes does not stop startup; the service keeps serving and the
// driver reconnects once MongoDB is reachable.
func (a *app) initIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, config.C().Server.DBWriteTimeout())
	defer cancel()

	if err := repository.EnsureIndexes(ctx, a.di.MaterialsCollection(ctx)); err != nil {
		logger.Error(ctx, "failed to ensure indexes", logger.ErrorF(err))
	}
	return nil
}

func (a *app) initStaging(ctx context.Context) error {
	if err := a.di.Stager(ctx).Init(); err != nil {
		logger.Error(ctx, "failed to prepare upload directory",
			logger.String("dir", config.C().Staging.Dir()),
			logger.ErrorF(err),
		)
		return err
	}
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           a.di.Router(ctx),
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}

	closer.AddNamed("HTTP server", func(ctx context.Context) error {
		return a.server.Shutdown(ctx)
	})

	return nil
}

func (a *app) run(ctx context.Context) error {
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 material catalog listening",
			logger.String("address", config.C().Server.Address()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		gracefulShutdown()
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
