// Package app provides the dependency injection container for the application.
package app

import (
	"log/slog"
	"os"

	gogit "github.com/go-git/go-git/v5"

	"github.com/gitea-tools/triage/internal/domain"
	"github.com/gitea-tools/triage/internal/infra/config"
	"github.com/gitea-tools/triage/internal/infra/git"
	"github.com/gitea-tools/triage/internal/infra/gitea"
	"github.com/gitea-tools/triage/internal/infra/logging"
)

// Container provides dependency injection for the application.
// It holds all port implementations used by the CLI commands.
type Container struct {
	Forge    domain.Forge
	Resolver domain.UsernameResolver
	Clock    domain.Clock
	Config   *domain.Config
	Logger   *slog.Logger
}

// New creates a Container rooted at dir. Running outside a git working
// copy is fine: configuration then comes from the global file only and
// username auto-detection reports no default.
func New(dir string) (*Container, error) {
	cfg, err := config.NewLoader(findRepoRoot(dir)).Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(os.Stderr, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Forge:    gitea.New(cfg.Gitea.BaseURL, cfg.Gitea.AccessToken, logger),
		Resolver: git.NewResolver(dir, logger),
		Clock:    domain.RealClock{},
		Config:   cfg,
		Logger:   logger,
	}, nil
}

// findRepoRoot returns the root of the working copy enclosing dir, or
// "" when there is none.
func findRepoRoot(dir string) string {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}
	wt, err := repo.Worktree()
	if err != nil {
		return ""
	}
	return wt.Filesystem.Root()
}
