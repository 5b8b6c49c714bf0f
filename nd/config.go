package nd

import (
	"fmt"
	"sync"
)

const (
	defaultPrintThreshold = 7
	defaultPrecision      = 5
	maxPrecision          = 17
)

// Config holds package-wide presentation settings.
type Config struct {
	// PrintThreshold is the longest axis printed in full; longer axes
	// show their first and last PrintThreshold/2 entries around "...".
	PrintThreshold int
	// Precision is the number of decimals kept when printing values.
	Precision int
}

// Option mutates a Config.
type Option func(*Config) error

// DefaultConfig returns the settings in effect before any Configure call.
func DefaultConfig() Config {
	return Config{
		PrintThreshold: defaultPrintThreshold,
		Precision:      defaultPrecision,
	}
}

// WithPrintThreshold sets the summarization threshold. Range: >= 2.
func WithPrintThreshold(n int) Option {
	return func(cfg *Config) error {
		if n < 2 {
			return fmt.Errorf("%w: print threshold must be >= 2: %d", ErrConfig, n)
		}
		cfg.PrintThreshold = n
		return nil
	}
}

// WithPrecision sets the number of printed decimals. Range: [0, 17].
func WithPrecision(n int) Option {
	return func(cfg *Config) error {
		if n < 0 || n > maxPrecision {
			return fmt.Errorf("%w: precision must be in [0, %d]: %d", ErrConfig, maxPrecision, n)
		}
		cfg.Precision = n
		return nil
	}
}

var (
	configMu sync.RWMutex
	config   = DefaultConfig()
)

// Configure applies opts to the package settings. If any option fails
// nothing is applied.
func Configure(opts ...Option) error {
	configMu.Lock()
	defer configMu.Unlock()

	cfg := config
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return err
		}
	}
	config = cfg
	return nil
}

// CurrentConfig returns a copy of the package settings.
func CurrentConfig() Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return config
}
