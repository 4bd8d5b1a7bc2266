// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/cryptokaro/internal/config"
	cryptoService "github.com/allisson/cryptokaro/internal/crypto/service"
	"github.com/allisson/cryptokaro/internal/dispatch/invoke"
	dispatchUsecase "github.com/allisson/cryptokaro/internal/dispatch/usecase"
	"github.com/allisson/cryptokaro/internal/metrics"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config    *config.Config
	logOutput io.Writer

	// Infrastructure
	logger          *slog.Logger
	settings        *config.Settings
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Services
	hasher        cryptoService.Hasher
	cipherManager cryptoService.CipherManager
	keyGenerator  cryptoService.KeyGenerator

	// Use Cases
	executor   dispatchUsecase.Executor
	dispatcher *invoke.Dispatcher

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	settingsInit        sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	hasherInit          sync.Once
	cipherManagerInit   sync.Once
	keyGeneratorInit    sync.Once
	executorInit        sync.Once
	dispatcherInit      sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
// Logs are written to stderr because stdout carries responses.
func NewContainer(cfg *config.Config) *Container {
	return NewContainerWithLogOutput(cfg, os.Stderr)
}

// NewContainerWithLogOutput is like NewContainer but writes logs to w.
func NewContainerWithLogOutput(cfg *config.Config, w io.Writer) *Container {
	return &Container{
		config:     cfg,
		logOutput:  w,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// Settings returns the operation settings, loaded once from the configured file.
// A file that cannot be read is logged and kept in the returned value.
func (c *Container) Settings() *config.Settings {
	c.settingsInit.Do(func() {
		c.settings = config.LoadSettings(c.config.SettingsFile)
		if err := c.settings.Err(); err != nil {
			c.Logger().Warn("settings unavailable",
				slog.String("file", c.config.SettingsFile),
				slog.Any("error", err),
			)
		}
	})
	return c.settings
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder, a no-op when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// Hasher returns the SHA-256 hasher.
func (c *Container) Hasher() cryptoService.Hasher {
	c.hasherInit.Do(func() {
		c.hasher = cryptoService.NewSHA256Hasher()
	})
	return c.hasher
}

// CipherManager returns the AES-256-CBC cipher manager.
func (c *Container) CipherManager() cryptoService.CipherManager {
	c.cipherManagerInit.Do(func() {
		c.cipherManager = cryptoService.NewCipherManager()
	})
	return c.cipherManager
}

// KeyGenerator returns the random key generator.
func (c *Container) KeyGenerator() cryptoService.KeyGenerator {
	c.keyGeneratorInit.Do(func() {
		c.keyGenerator = cryptoService.NewKeyGenerator()
	})
	return c.keyGenerator
}

// Executor returns the operation router, decorated with metrics when enabled.
func (c *Container) Executor() (dispatchUsecase.Executor, error) {
	var err error
	c.executorInit.Do(func() {
		c.executor, err = c.initExecutor()
		if err != nil {
			c.initErrors["executor"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["executor"]; exists {
		return nil, storedErr
	}
	return c.executor, nil
}

// Dispatcher returns the request dispatcher.
func (c *Container) Dispatcher() (*invoke.Dispatcher, error) {
	var err error
	c.dispatcherInit.Do(func() {
		c.dispatcher, err = c.initDispatcher()
		if err != nil {
			c.initErrors["dispatcher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["dispatcher"]; exists {
		return nil, storedErr
	}
	return c.dispatcher, nil
}

// Shutdown releases the resources held by initialized components.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(c.logOutput, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initMetricsProvider creates the metrics provider when metrics are enabled.
func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initBusinessMetrics creates the business metrics recorder.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// initExecutor wires the router to its services and settings.
func (c *Container) initExecutor() (dispatchUsecase.Executor, error) {
	router := dispatchUsecase.NewRouter(
		c.Hasher(),
		c.CipherManager(),
		c.KeyGenerator(),
		c.Settings(),
	)

	if !c.config.MetricsEnabled {
		return router, nil
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for executor: %w", err)
	}
	return dispatchUsecase.NewExecutorWithMetrics(router, businessMetrics), nil
}

// initDispatcher creates the dispatcher around the executor.
func (c *Container) initDispatcher() (*invoke.Dispatcher, error) {
	executor, err := c.Executor()
	if err != nil {
		return nil, fmt.Errorf("failed to get executor for dispatcher: %w", err)
	}
	return invoke.NewDispatcher(executor, c.Logger(), c.config.MaxRequestBytes), nil
}
