package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jsamuelsen/learning-journal/internal/adapters/clients"
	"github.com/jsamuelsen/learning-journal/internal/adapters/clients/acl"
	"github.com/jsamuelsen/learning-journal/internal/adapters/persistence/gormstore"
	"github.com/jsamuelsen/learning-journal/internal/platform/config"
	"github.com/jsamuelsen/learning-journal/internal/platform/logging"
	"github.com/jsamuelsen/learning-journal/internal/ports"
)

// session is what a subcommand needs after configuration is loaded.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
}

// bootstrap loads and validates configuration (fail fast) and builds the
// logger. Logs go to logOut so commands that print data keep stdout clean.
func bootstrap(opts *rootOptions, logOut io.Writer) (*session, error) {
	cfg, err := config.Load(opts.profile,
		config.WithDir(opts.configDir),
		config.WithFile(opts.configFile),
	)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, logOut)
	slog.SetDefault(logger)

	return &session{cfg: cfg, logger: logger}, nil
}

// openStore connects to the configured database.
func (s *session) openStore(ctx context.Context, metrics ports.JournalMetrics) (*gormstore.Store, error) {
	opts := []gormstore.Option{gormstore.WithLogger(s.logger)}
	if metrics != nil {
		opts = append(opts, gormstore.WithMetrics(metrics))
	}

	store, err := gormstore.Open(ctx, s.cfg.Database, opts...)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	return store, nil
}

// remoteJournal builds a client for the journal server at baseURL. An
// empty baseURL falls back to remote.base_url from configuration.
func (s *session) remoteJournal(baseURL string) (*acl.JournalClient, error) {
	if baseURL == "" {
		baseURL = s.cfg.Remote.BaseURL
	}

	httpClient, err := clients.New(&clients.Config{
		BaseURL:     baseURL,
		ServiceName: s.cfg.Remote.Name,
		Settings:    s.cfg.Client,
		Logger:      s.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating remote client: %w", err)
	}

	return acl.NewJournalClient(acl.JournalClientConfig{
		Client: httpClient,
		Logger: s.logger,
	}), nil
}

// closeStore logs instead of failing: the command's own result matters more.
func (s *session) closeStore(store *gormstore.Store) {
	if err := store.Close(); err != nil {
		s.logger.Error("closing store", slog.Any("error", err))
	}
}
