package gitea

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/gitea-tools/triage/internal/domain"
)

// GetUser retrieves one user profile.
func (c *Client) GetUser(ctx context.Context, username string) (*domain.User, error) {
	body, err := c.getJSON(ctx, c.baseURL+"/users/"+url.PathEscape(username))
	if err != nil {
		return nil, err
	}
	var user domain.User
	if err := json.Unmarshal(body, &user); err != nil {
		c.logger.Warn("unexpected user document", "username", username, "error", err)
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &user, nil
}

// GetIssue retrieves one issue or pull request by its pre-joined
// "{owner}/{repo}/issues/{number}" reference.
func (c *Client) GetIssue(ctx context.Context, issueRef string) (*domain.Issue, error) {
	body, err := c.getJSON(ctx, c.baseURL+"/repos/"+issueRef)
	if err != nil {
		return nil, err
	}
	var issue domain.Issue
	if err := json.Unmarshal(body, &issue); err != nil {
		c.logger.Warn("unexpected issue document", "issue", issueRef, "error", err)
		return nil, fmt.Errorf("decode issue: %w", err)
	}
	return &issue, nil
}

// UserActivity lists the activity feed entries the user performed on the
// given day (YYYY-MM-DD), across all pages.
func (c *Client) UserActivity(ctx context.Context, username, date string) ([]*domain.Activity, error) {
	feedURL := fmt.Sprintf("%s/users/%s/activities/feeds?only-performed-by=true&date=%s",
		c.baseURL, url.PathEscape(username), url.QueryEscape(date))
	items, err := c.getAllPages(ctx, feedURL, defaultPageSize)
	if err != nil {
		return nil, err
	}
	return decodeItems[domain.Activity](c.logger, items), nil
}

// SearchIssues searches issues and pulls across the repositories the
// token grants access to, across all pages.
func (c *Client) SearchIssues(ctx context.Context, opts domain.SearchOptions) ([]*domain.Issue, error) {
	searchURL := c.baseURL + "/repos/issues/search?" + opts.Params().Encode()
	items, err := c.getAllPages(ctx, searchURL, defaultPageSize)
	if err != nil {
		return nil, err
	}
	return decodeItems[domain.Issue](c.logger, items), nil
}

// IssueTimeline lists the timeline events of one issue across all
// pages, optionally bounded by the since/before window (sent as UTC
// RFC 3339 timestamps).
func (c *Client) IssueTimeline(ctx context.Context, issueRef string, since, before *time.Time) ([]*domain.Event, error) {
	timelineURL := c.baseURL + "/repos/" + issueRef + "/timeline"

	params := url.Values{}
	if since != nil {
		params.Set("since", since.UTC().Format(time.RFC3339))
	}
	if before != nil {
		params.Set("before", before.UTC().Format(time.RFC3339))
	}
	if len(params) > 0 {
		timelineURL += "?" + params.Encode()
	}

	items, err := c.getAllPages(ctx, timelineURL, defaultPageSize)
	if err != nil {
		return nil, err
	}
	return decodeItems[domain.Event](c.logger, items), nil
}
