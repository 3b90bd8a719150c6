// Package git resolves a default forge username from the local git
// configuration.
package git

import (
	"errors"
	"fmt"
	"log/slog"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"

	"github.com/gitea-tools/triage/internal/domain"
)

// Ensure Resolver implements domain.UsernameResolver.
var _ domain.UsernameResolver = (*Resolver)(nil)

// Resolver reads user.username from the merged git configuration of the
// working copy enclosing dir. The configured name may not match the
// account name on the forge; it is a convenience default for callers
// that do not supply a username explicitly, never a requirement.
type Resolver struct {
	logger *slog.Logger
	dir    string
}

// NewResolver creates a Resolver rooted at dir.
func NewResolver(dir string, logger *slog.Logger) *Resolver {
	return &Resolver{
		logger: logger,
		dir:    dir,
	}
}

// Resolve returns the configured username. Failures (no enclosing
// repository, no configured value) are logged and reported as domain
// errors; callers treat them as "no default available".
func (r *Resolver) Resolve() (string, error) {
	repo, err := gogit.PlainOpenWithOptions(r.dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			r.logger.Debug("username detection skipped", "dir", r.dir, "error", err)
			return "", domain.ErrNotGitRepository
		}
		return "", fmt.Errorf("open repository: %w", err)
	}

	cfg, err := repo.ConfigScoped(gitconfig.SystemScope)
	if err != nil {
		return "", fmt.Errorf("read git config: %w", err)
	}

	username := cfg.Raw.Section("user").Option("username")
	if username == "" {
		r.logger.Debug("user.username not set in git config", "dir", r.dir)
		return "", domain.ErrUsernameNotFound
	}
	return username, nil
}
