package gitea

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gitea-tools/triage/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUser_ReturnsDocumentUnchanged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/alice", r.URL.Path)
		fmt.Fprint(w, `{"id":1,"username":"alice"}`)
	}))
	defer srv.Close()

	c := New(srv.URL, "", discardLogger())
	user, err := c.GetUser(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.UserName)
	assert.Equal(t, int64(1), user.ID)
	assert.JSONEq(t, `{"id":1,"username":"alice"}`, string(user.Raw))
}

func TestGetUser_ConnectionErrorLogsURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse all connections

	var logs strings.Builder
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	c := New(srv.URL, "", logger)
	user, err := c.GetUser(context.Background(), "alice")

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, logs.String(), "/users/alice")
}

func TestGetIssue_UsesPreJoinedReference(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/blender/blender/issues/42", r.URL.Path)
		fmt.Fprint(w, `{"id":9,"number":42,"title":"Crash"}`)
	}))
	defer srv.Close()

	c := New(srv.URL, "", discardLogger())
	issue, err := c.GetIssue(context.Background(), "blender/blender/issues/42")

	require.NoError(t, err)
	assert.Equal(t, int64(42), issue.Number)
	assert.Equal(t, "Crash", issue.Title)
}

func TestUserActivity_QueryAndDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/alice/activities/feeds", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "true", q.Get("only-performed-by"))
		assert.Equal(t, "2024-03-01", q.Get("date"))
		fmt.Fprint(w, `[{"id":1,"op_type":"commit_repo","repo":{"full_name":"blender/blender"}},null]`)
	}))
	defer srv.Close()

	c := New(srv.URL, "", discardLogger())
	activities, err := c.UserActivity(context.Background(), "alice", "2024-03-01")

	require.NoError(t, err)
	require.Len(t, activities, 1, "null entries are dropped")
	assert.Equal(t, "commit_repo", activities[0].OpType)
	assert.Equal(t, "blender/blender", activities[0].Repo.FullName)
}

func TestSearchIssues_EncodesOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/issues/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "issue", q.Get("type"))
		assert.Equal(t, "all", q.Get("state"))
		assert.Equal(t, "true", q.Get("created"))
		assert.False(t, q.Has("reviewed"))
		fmt.Fprint(w, `[{"id":1,"number":7,"title":"Bug"}]`)
	}))
	defer srv.Close()

	c := New(srv.URL, "", discardLogger())
	issues, err := c.SearchIssues(context.Background(), domain.SearchOptions{
		Type:    "issue",
		State:   "all",
		Created: true,
	})

	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, int64(7), issues[0].Number)
}

func TestIssueTimeline_WindowParameters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/blender/blender/issues/42/timeline", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2024-03-01T00:00:00Z", q.Get("since"))
		assert.Equal(t, "2024-03-08T00:00:00Z", q.Get("before"))
		fmt.Fprint(w, `[{"id":1,"type":"close","user":{"username":"alice"}}]`)
	}))
	defer srv.Close()

	since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)

	c := New(srv.URL, "", discardLogger())
	events, err := c.IssueTimeline(context.Background(), "blender/blender/issues/42", &since, &before)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventTypeClose, events[0].Type)
	assert.Equal(t, "alice", events[0].User.UserName)
}

func TestIssueTimeline_NoWindowNoQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	c := New(srv.URL, "", discardLogger())
	events, err := c.IssueTimeline(context.Background(), "blender/blender/issues/42", nil, nil)

	require.NoError(t, err)
	assert.Empty(t, events)
}
