package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/engihub/internal/config"
	"github.com/abhisek/engihub/internal/gateway"
	"github.com/abhisek/engihub/internal/llm"
	"github.com/abhisek/engihub/internal/logging"
	"github.com/abhisek/engihub/internal/store"
)

// deps is everything a command needs to talk to the model.
type deps struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *store.Store
	provider llm.Provider
	gateway  *gateway.Gateway

	closeLog func()
}

// loadConfig reads configuration honouring the --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{ConfigFile: path})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// buildDeps loads config, opens the logger and usage log, and builds the
// provider and gateway. The usage log is optional: if it cannot be opened
// the command continues without it.
func buildDeps(ctx context.Context, cmd *cobra.Command) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	d := &deps{cfg: cfg, logger: logger, closeLog: closeLog}

	var events store.EventRepo
	if noLog, _ := cmd.Flags().GetBool("no-log"); !noLog {
		st, err := openStore(cmd, cfg)
		if err != nil {
			logger.Warn("usage log unavailable", zap.Error(err))
		} else {
			d.store = st
			events = st.EventRepo()
		}
	}

	provider, err := llm.NewProvider(ctx, cfg.LLM, events, logger)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("LLM provider not configured: %w", err)
	}
	d.provider = provider
	d.gateway = gateway.New(provider, cfg.Gateway, logger)

	logger.Info("engihub started",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", provider.ModelID()),
		zap.String("config_file", cfg.File),
		zap.Bool("usage_log", d.store != nil))
	return d, nil
}

func openStore(cmd *cobra.Command, cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// Close releases the store and flushes the log.
func (d *deps) Close() {
	if d.store != nil {
		if err := d.store.Close(); err != nil {
			d.logger.Warn("close store", zap.Error(err))
		}
	}
	if d.closeLog != nil {
		d.closeLog()
	}
}
