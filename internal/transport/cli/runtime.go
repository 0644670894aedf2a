// Package cli exposes the drawer as command-line commands.
package cli

import (
	"context"
	"fmt"

	"github.com/grape-tasting-acid/workshop-team-drawer/config"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/entities"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/export"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/repository"
	"github.com/grape-tasting-acid/workshop-team-drawer/internal/usecase"
	"github.com/grape-tasting-acid/workshop-team-drawer/pkg/logger"

	"go.uber.org/zap"
)

// Options are command-line overrides applied on top of the loaded configuration.
type Options struct {
	ConfigPath    string
	LogLevel      string
	RosterDir     string
	RosterFormat  string
	ExportFormat  string
	ExportDir     string
	SkipBootstrap bool
}

// Runtime holds the wired dependencies of one command run.
type Runtime struct {
	Config  *config.Config
	Log     *zap.SugaredLogger
	Repo    repository.Repository
	Usecase usecase.InterfaceUsecase
}

// Setup loads configuration and wires logger, repository, exporter and usecases.
func Setup(ctx context.Context, opts Options) (*Runtime, error) {
	cfg, err := config.NewConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	applyOverrides(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var outputs []string
	if cfg.Logging.File != "" {
		outputs = append(outputs, cfg.Logging.File)
	}
	log, err := logger.New(cfg.Logging.Level, outputs...)
	if err != nil {
		return nil, err
	}

	repo, err := repository.New(ctx, cfg.Roster.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return nil, err
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return nil, fmt.Errorf("start repository: %w", err)
	}

	exp, err := export.New(cfg.Export.Backend, log, cfg)
	if err != nil {
		_ = repo.OnStop(ctx)
		log.Errorw("exporter initialization error", "error", err)
		return nil, err
	}

	rules := entities.DrawRules{LeaderCount: cfg.Draw.LeaderCount}
	uc := usecase.New(log, ctx, repo, exp, cfg.Command.Timeout, rules)

	return &Runtime{
		Config:  cfg,
		Log:     log,
		Repo:    repo,
		Usecase: uc,
	}, nil
}

// Close stops the repository and flushes the logger.
func (r *Runtime) Close(ctx context.Context) error {
	err := r.Repo.OnStop(ctx)
	_ = r.Log.Sync()
	return err
}

func applyOverrides(cfg *config.Config, opts Options) {
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.RosterDir != "" {
		cfg.Roster.Dir = opts.RosterDir
	}
	if opts.RosterFormat != "" {
		cfg.Roster.Backend = opts.RosterFormat
	}
	if opts.ExportFormat != "" {
		cfg.Export.Backend = opts.ExportFormat
	}
	if opts.ExportDir != "" {
		cfg.Export.Dir = opts.ExportDir
	}
	if opts.SkipBootstrap {
		cfg.Roster.Bootstrap = false
	}
}
