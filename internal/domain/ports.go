package domain

import (
	"context"
	"time"
)

// Forge is the read-only Gitea API surface the triage reports use.
type Forge interface {
	// GetUser retrieves one user profile.
	GetUser(ctx context.Context, username string) (*User, error)

	// GetIssue retrieves one issue or pull request. issueRef is the
	// pre-joined "{owner}/{repo}/issues/{number}" reference.
	GetIssue(ctx context.Context, issueRef string) (*Issue, error)

	// UserActivity lists a user's activity feed for one day, all pages.
	// date is formatted YYYY-MM-DD.
	UserActivity(ctx context.Context, username, date string) ([]*Activity, error)

	// SearchIssues searches issues and pulls across all repositories the
	// token grants access to, all pages.
	SearchIssues(ctx context.Context, opts SearchOptions) ([]*Issue, error)

	// IssueTimeline lists the timeline of one issue, all pages,
	// optionally bounded to the [since, before] window.
	IssueTimeline(ctx context.Context, issueRef string, since, before *time.Time) ([]*Event, error)
}

// UsernameResolver supplies a username when the caller does not. The
// default implementation reads the local git configuration; the resolved
// name may differ from the forge account name.
type UsernameResolver interface {
	Resolve() (string, error)
}

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}
