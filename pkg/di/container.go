// Package di provides dependency injection container
package di

import (
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/ssargent/fwinfo/pkg/config"
	"github.com/ssargent/fwinfo/pkg/metrics"
	"github.com/ssargent/fwinfo/pkg/storage"
	"github.com/ssargent/fwinfo/pkg/store"
)

// Container holds all the dependencies for one CLI invocation. The
// journal and catalog are opened on first use.
type Container struct {
	config  *config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu      sync.Mutex
	journal *store.Journal
	catalog *storage.Catalog
}

// NewContainer creates a container with the default configuration and a
// logger that discards everything.
func NewContainer() *Container {
	return &Container{
		config:  config.DefaultConfig(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: metrics.NewMetrics(),
	}
}

// Configure replaces the configuration and logger
func (c *Container) Configure(cfg *config.Config, logger *slog.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.config = cfg
	c.logger = logger
}

// Config returns the active configuration
func (c *Container) Config() *config.Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.config
}

// Logger returns the active logger
func (c *Container) Logger() *slog.Logger {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.logger
}

// Metrics returns the metrics of this invocation
func (c *Container) Metrics() *metrics.Metrics {
	return c.metrics
}

// Journal opens the configured journal on first call
func (c *Container) Journal() (*store.Journal, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.journal != nil {
		return c.journal, nil
	}

	j, recovery, err := store.OpenJournal(store.JournalConfig{
		FilePath:      c.config.Journal.Path,
		FsyncInterval: c.config.Journal.FsyncInterval,
		BufferSize:    c.config.Journal.BufferSize,
	})
	if err != nil {
		return nil, err
	}
	if recovery.BytesTruncated > 0 {
		c.logger.Warn("truncated damaged journal tail",
			"path", c.config.Journal.Path,
			"bytes", recovery.BytesTruncated,
			"valid_records", recovery.RecordsValidated)
	}
	c.logger.Debug("journal opened", "path", c.config.Journal.Path, "recovery", recovery.RecoveryTime)

	c.journal = j
	return j, nil
}

// Catalog opens the configured catalog on first call
func (c *Container) Catalog() (*storage.Catalog, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.catalog != nil {
		return c.catalog, nil
	}

	cat, err := storage.Open(c.config.Catalog.Dir)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("catalog opened", "dir", c.config.Catalog.Dir)

	c.catalog = cat
	return cat, nil
}

// Close releases whatever was opened and writes the metrics textfile when
// one is configured.
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	if c.journal != nil {
		stats := c.journal.Stats()
		c.metrics.UpdateJournalStats(stats.Names, stats.DataSize)
		errs = append(errs, c.journal.Close())
		c.journal = nil
	}
	if c.catalog != nil {
		errs = append(errs, c.catalog.Close())
		c.catalog = nil
	}
	if path := c.config.Metrics.Textfile; path != "" {
		errs = append(errs, c.metrics.WriteTextfile(path))
	}
	return errors.Join(errs...)
}
