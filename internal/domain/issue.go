package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Actor is the author sub-document attached to issues, comments, and
// timeline events. Gitea duplicates the login under "username"; the
// triage filters match on that field.
type Actor struct {
	UserName string `json:"username"`
	Login    string `json:"login"`
	ID       int64  `json:"id"`
}

// Label is an issue label.
type Label struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	ID    int64  `json:"id"`
}

// pullRequestMeta marks an issue document as a pull request.
type pullRequestMeta struct {
	Merged bool `json:"merged"`
}

// Issue is one issue or pull request. Raw retains the full wire
// document for pass-through output.
type Issue struct {
	Raw         json.RawMessage  `json:"-"`
	User        *Actor           `json:"user"`
	PullRequest *pullRequestMeta `json:"pull_request"`
	Title       string           `json:"title"`
	State       string           `json:"state"`
	HTMLURL     string           `json:"html_url"`
	Labels      []Label          `json:"labels"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	ID          int64            `json:"id"`
	Number      int64            `json:"number"`
}

// UnmarshalJSON decodes the inspected fields and keeps the raw document.
func (i *Issue) UnmarshalJSON(data []byte) error {
	type issue Issue
	var v issue
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*i = Issue(v)
	i.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// IsPull reports whether the document describes a pull request.
func (i *Issue) IsPull() bool {
	return i.PullRequest != nil
}

// Kind returns "pull" or "issue" for display.
func (i *Issue) Kind() string {
	if i.IsPull() {
		return "pull"
	}
	return "issue"
}

// ValidateIssueRef checks an "{owner}/{repo}/issues/{number}" reference.
// The reference is passed to the service pre-joined, exactly as given.
func ValidateIssueRef(ref string) error {
	parts := strings.Split(ref, "/")
	if len(parts) != 4 || parts[0] == "" || parts[1] == "" || parts[2] != "issues" || parts[3] == "" {
		return fmt.Errorf("%w: %q", ErrInvalidIssueRef, ref)
	}
	return nil
}
