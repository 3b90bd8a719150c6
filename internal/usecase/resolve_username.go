package usecase

import (
	"github.com/gitea-tools/triage/internal/domain"
)

// ResolveUsername is the use case behind username defaulting: an
// explicit name wins, then the configured default, then the local git
// configuration.
type ResolveUsername struct {
	resolver domain.UsernameResolver
	fallback string // configured default username, may be empty
}

// NewResolveUsername creates a new ResolveUsername use case. resolver
// may be nil when no local working copy is available.
func NewResolveUsername(resolver domain.UsernameResolver, fallback string) *ResolveUsername {
	return &ResolveUsername{
		resolver: resolver,
		fallback: fallback,
	}
}

// Execute returns explicit when non-empty, otherwise the configured
// default, otherwise the resolver's answer.
func (uc *ResolveUsername) Execute(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if uc.fallback != "" {
		return uc.fallback, nil
	}
	if uc.resolver == nil {
		return "", domain.ErrMissingUsername
	}
	username, err := uc.resolver.Resolve()
	if err != nil {
		return "", err
	}
	return username, nil
}
