package usecase

import (
	"context"
	"fmt"

	"github.com/gitea-tools/triage/internal/domain"
)

// dateFormat is the day format the activity feed endpoint expects.
const dateFormat = "2006-01-02"

// UserActivityInput contains the parameters for listing user activity.
type UserActivityInput struct {
	Username string // Falls back to the resolved local username when empty
	Date     string // YYYY-MM-DD; today when empty
}

// UserActivityOutput contains the result of listing user activity.
type UserActivityOutput struct {
	Username   string
	Date       string
	Activities []*domain.Activity
}

// UserActivity is the use case for listing a user's activity feed for
// one day.
type UserActivity struct {
	forge    domain.Forge
	resolver *ResolveUsername
	clock    domain.Clock
}

// NewUserActivity creates a new UserActivity use case.
func NewUserActivity(forge domain.Forge, resolver *ResolveUsername, clock domain.Clock) *UserActivity {
	return &UserActivity{
		forge:    forge,
		resolver: resolver,
		clock:    clock,
	}
}

// Execute lists the activity feed entries.
func (uc *UserActivity) Execute(ctx context.Context, in UserActivityInput) (*UserActivityOutput, error) {
	username, err := uc.resolver.Execute(in.Username)
	if err != nil {
		return nil, err
	}

	date := in.Date
	if date == "" {
		date = uc.clock.Now().Format(dateFormat)
	}

	activities, err := uc.forge.UserActivity(ctx, username, date)
	if err != nil {
		return nil, fmt.Errorf("list activity for %s: %w", username, err)
	}

	return &UserActivityOutput{
		Username:   username,
		Date:       date,
		Activities: activities,
	}, nil
}
