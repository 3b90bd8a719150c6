// Package usecase contains the application operations behind the CLI
// commands.
package usecase

import (
	"context"
	"fmt"

	"github.com/gitea-tools/triage/internal/domain"
)

// LookupUserInput contains the parameters for looking up a user.
type LookupUserInput struct {
	Username string // Forge username (required)
}

// LookupUserOutput contains the result of looking up a user.
type LookupUserOutput struct {
	User *domain.User
}

// LookupUser is the use case for fetching one user profile.
type LookupUser struct {
	forge domain.Forge
}

// NewLookupUser creates a new LookupUser use case.
func NewLookupUser(forge domain.Forge) *LookupUser {
	return &LookupUser{forge: forge}
}

// Execute fetches the user profile.
func (uc *LookupUser) Execute(ctx context.Context, in LookupUserInput) (*LookupUserOutput, error) {
	if in.Username == "" {
		return nil, domain.ErrMissingUsername
	}
	user, err := uc.forge.GetUser(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", in.Username, err)
	}
	return &LookupUserOutput{User: user}, nil
}
