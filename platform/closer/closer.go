package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFunc struct {
	name string
	fn   func(ctx context.Context) error
}

type closer struct {
	mu     sync.Mutex
	funcs  []namedFunc
	once   sync.Once
	logger Logger
}

var global = &closer{logger: noopLogger{}}

func SetLogger(l Logger) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.logger = l
}

func Add(fn func(ctx context.Context) error) {
	AddNamed("unnamed", fn)
}

// AddNamed registers fn to be called by CloseAll. Functions run in reverse
// registration order.
func AddNamed(name string, fn func(ctx context.Context) error) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.funcs = append(global.funcs, namedFunc{name: name, fn: fn})
}

func CloseAll(ctx context.Context) error {
	return global.closeAll(ctx)
}

func (c *closer) closeAll(ctx context.Context) error {
	var result error

	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.funcs = nil
		log := c.logger
		c.mu.Unlock()

		var errs []error
		for i := len(funcs) - 1; i >= 0; i-- {
			f := funcs[i]

			if err := ctx.Err(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
				continue
			}

			if err := f.fn(ctx); err != nil {
				log.Error(ctx, "failed to close resource",
					zap.String("name", f.name), zap.Error(err))
				errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
				continue
			}
			log.Info(ctx, "resource closed", zap.String("name", f.name))
		}

		result = errors.Join(errs...)
	})

	return result
}

type noopLogger struct{}

func (noopLogger) Info(context.Context, string, ...zap.Field)  {}
func (noopLogger) Error(context.Context, string, ...zap.Field) {}
