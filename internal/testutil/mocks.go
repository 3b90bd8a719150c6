// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"time"

	"github.com/gitea-tools/triage/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockResolver is a test double for domain.UsernameResolver.
type MockResolver struct {
	Username string
	Err      error
}

// Resolve returns the configured username or error.
func (m *MockResolver) Resolve() (string, error) {
	return m.Username, m.Err
}

// MockForge is a test double for domain.Forge. It returns the canned
// values and records the arguments of the last call per operation.
type MockForge struct {
	User       *domain.User
	Issue      *domain.Issue
	Activities []*domain.Activity
	Issues     []*domain.Issue
	Events     []*domain.Event

	UserErr     error
	IssueErr    error
	ActivityErr error
	SearchErr   error
	TimelineErr error

	GotUsername   string
	GotIssueRef   string
	GotDate       string
	GotSearchOpts domain.SearchOptions
	GotSince      *time.Time
	GotBefore     *time.Time
}

// GetUser returns the canned user.
func (m *MockForge) GetUser(_ context.Context, username string) (*domain.User, error) {
	m.GotUsername = username
	return m.User, m.UserErr
}

// GetIssue returns the canned issue.
func (m *MockForge) GetIssue(_ context.Context, issueRef string) (*domain.Issue, error) {
	m.GotIssueRef = issueRef
	return m.Issue, m.IssueErr
}

// UserActivity returns the canned activities.
func (m *MockForge) UserActivity(_ context.Context, username, date string) ([]*domain.Activity, error) {
	m.GotUsername = username
	m.GotDate = date
	return m.Activities, m.ActivityErr
}

// SearchIssues returns the canned issues.
func (m *MockForge) SearchIssues(_ context.Context, opts domain.SearchOptions) ([]*domain.Issue, error) {
	m.GotSearchOpts = opts
	return m.Issues, m.SearchErr
}

// IssueTimeline returns the canned events.
func (m *MockForge) IssueTimeline(_ context.Context, issueRef string, since, before *time.Time) ([]*domain.Event, error) {
	m.GotIssueRef = issueRef
	m.GotSince = since
	m.GotBefore = before
	return m.Events, m.TimelineErr
}
