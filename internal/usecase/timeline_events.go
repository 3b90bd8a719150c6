package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/gitea-tools/triage/internal/domain"
)

// TimelineEventsInput contains the parameters for the filtered timeline.
type TimelineEventsInput struct {
	Since    *time.Time // Only events updated after this time
	Before   *time.Time // Only events updated before this time
	IssueRef string     // "{owner}/{repo}/issues/{number}" (required)
	Username string     // Falls back to the resolved local username when empty
	Labels   []string   // Keep "label" events applying one of these
	Types    []string   // Keep events of one of these types
}

// TimelineEventsOutput contains the filtered timeline.
type TimelineEventsOutput struct {
	Username string
	Events   []*domain.Event
}

// TimelineEvents is the use case for fetching an issue timeline and
// filtering it down to one user's label and type events.
type TimelineEvents struct {
	forge    domain.Forge
	resolver *ResolveUsername
}

// NewTimelineEvents creates a new TimelineEvents use case.
func NewTimelineEvents(forge domain.Forge, resolver *ResolveUsername) *TimelineEvents {
	return &TimelineEvents{
		forge:    forge,
		resolver: resolver,
	}
}

// Execute fetches all timeline pages and applies the event filter.
func (uc *TimelineEvents) Execute(ctx context.Context, in TimelineEventsInput) (*TimelineEventsOutput, error) {
	if err := domain.ValidateIssueRef(in.IssueRef); err != nil {
		return nil, err
	}
	username, err := uc.resolver.Execute(in.Username)
	if err != nil {
		return nil, err
	}

	events, err := uc.forge.IssueTimeline(ctx, in.IssueRef, in.Since, in.Before)
	if err != nil {
		return nil, fmt.Errorf("get timeline for %s: %w", in.IssueRef, err)
	}

	filtered := domain.FilterEvents(events, domain.EventFilter{
		Username: username,
		Labels:   in.Labels,
		Types:    in.Types,
	})

	return &TimelineEventsOutput{
		Username: username,
		Events:   filtered,
	}, nil
}
