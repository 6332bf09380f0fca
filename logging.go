package presets

import "time"

// StoreLogEvent describes one store operation for logging.
type StoreLogEvent struct {
	Op       string
	Preset   string
	File     string
	Path     string
	Widgets  int
	Duration time.Duration
	Err      error
}

// StoreLogger records store operations. Implementations decide transport and
// verbosity; the store itself never writes to any log sink directly.
type StoreLogger interface {
	LogOperation(StoreLogEvent)
}

// StoreLoggerFunc adapts a function to StoreLogger.
type StoreLoggerFunc func(StoreLogEvent)

// LogOperation implements StoreLogger.
func (f StoreLoggerFunc) LogOperation(event StoreLogEvent) {
	if f != nil {
		f(event)
	}
}

type noopStoreLogger struct{}

func (noopStoreLogger) LogOperation(StoreLogEvent) {}

// WithStoreLogger attaches a store logger.
func WithStoreLogger(logger StoreLogger) Option {
	return func(cfg *storeConfig) {
		if logger == nil {
			cfg.logger = noopStoreLogger{}
			return
		}
		cfg.logger = logger
	}
}
