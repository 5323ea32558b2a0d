package results

import (
	"go.uber.org/zap"
)

// Option configures the adapters returned by Wrap and WrapAsync.
type Option func(*config)

type config struct {
	logger        *zap.Logger
	name          string
	capturePanics bool
}

// WithLogger sets the logger used to report captured panics and invalid targets.
// By default adapters do not log.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithName names the wrapped function in log entries.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithPanicCapture controls whether a panic raised by the target is converted into a FAIL result.
// It is enabled by default.  When disabled the panic propagates to the caller; returned errors are still captured.
func WithPanicCapture(capture bool) Option {
	return func(c *config) {
		c.capturePanics = capture
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		logger:        zap.NewNop(),
		capturePanics: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.validate()

	if c.name != "" {
		c.logger = c.logger.With(zap.String("func", c.name))
	}
	return c
}

func (c *config) validate() {
	if c.logger == nil {
		panic("adapter logger must not be nil")
	}
}

func (c *config) panicked(err error) {
	fields := []zap.Field{zap.Error(err)}
	if pe, ok := err.(*PanicError); ok {
		fields = append(fields, zap.Any("panic", pe.Value), zap.ByteString("stack", pe.Stack))
	}
	c.logger.Warn("captured panic", fields...)
}

func (c *config) misused(err error) error {
	c.logger.Error("invalid adapter target", zap.Error(err))
	return err
}
