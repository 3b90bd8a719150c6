package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitea-tools/triage/internal/app"
	"github.com/gitea-tools/triage/internal/domain"
	"github.com/gitea-tools/triage/internal/testutil"
)

// newTestContainer builds a container around a mock forge.
func newTestContainer(forge *testutil.MockForge) *app.Container {
	return &app.Container{
		Forge:    forge,
		Resolver: &testutil.MockResolver{Username: "alice"},
		Clock:    &testutil.MockClock{NowTime: time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)},
		Config:   domain.NewDefaultConfig(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, c *app.Container, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand(c, "test")
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func userDoc(t *testing.T, raw string) *domain.User {
	t.Helper()
	var user domain.User
	require.NoError(t, json.Unmarshal([]byte(raw), &user))
	return &user
}

func TestUserCommandTable(t *testing.T) {
	forge := &testutil.MockForge{
		User: userDoc(t, `{"id":7,"username":"bob","full_name":"Bob B.","email":"bob@example.org"}`),
	}

	out, err := execute(t, newTestContainer(forge), "user", "bob")

	require.NoError(t, err)
	assert.Equal(t, "bob", forge.GotUsername)
	assert.Contains(t, out, "Username:  bob")
	assert.Contains(t, out, "Full name: Bob B.")
	assert.Contains(t, out, "ID:        7")
}

func TestUserCommandJSONPassesRawThrough(t *testing.T) {
	raw := `{"id":7,"username":"bob","starred_repos_count":12}`
	forge := &testutil.MockForge{User: userDoc(t, raw)}

	out, err := execute(t, newTestContainer(forge), "user", "bob", "-o", "json")

	require.NoError(t, err)
	// Fields the commands never inspect survive into the output.
	assert.JSONEq(t, raw, out)
}

func TestUserCommandYAML(t *testing.T) {
	forge := &testutil.MockForge{
		User: userDoc(t, `{"id":7,"username":"bob"}`),
	}

	out, err := execute(t, newTestContainer(forge), "user", "bob", "-o", "yaml")

	require.NoError(t, err)
	assert.Contains(t, out, "username: bob")
}

func TestUserCommandUnknownFormat(t *testing.T) {
	forge := &testutil.MockForge{
		User: userDoc(t, `{"id":7,"username":"bob"}`),
	}

	_, err := execute(t, newTestContainer(forge), "user", "bob", "-o", "xml")

	require.ErrorContains(t, err, `unknown output format "xml"`)
}

func TestWhoamiUsesResolver(t *testing.T) {
	out, err := execute(t, newTestContainer(&testutil.MockForge{}), "whoami")

	require.NoError(t, err)
	assert.Equal(t, "alice\n", out)
}

func TestWhoamiPrefersConfiguredDefault(t *testing.T) {
	c := newTestContainer(&testutil.MockForge{})
	c.Config.Defaults.Username = "configured"

	out, err := execute(t, c, "whoami")

	require.NoError(t, err)
	assert.Equal(t, "configured\n", out)
}

func TestSearchCommandForwardsOptions(t *testing.T) {
	forge := &testutil.MockForge{}

	out, err := execute(t, newTestContainer(forge),
		"search", "--type", "pull", "--state", "open", "--label", "Type/Bug", "--created")

	require.NoError(t, err)
	assert.Equal(t, "pull", forge.GotSearchOpts.Type)
	assert.Equal(t, "open", forge.GotSearchOpts.State)
	assert.Equal(t, []string{"Type/Bug"}, forge.GotSearchOpts.Labels)
	assert.True(t, forge.GotSearchOpts.Created)
	assert.Contains(t, out, "No results")
}

func TestSearchCommandTable(t *testing.T) {
	var issue domain.Issue
	require.NoError(t, json.Unmarshal([]byte(
		`{"number":42,"title":"Crash on startup","state":"open","labels":[{"name":"Type/Bug"}]}`,
	), &issue))
	forge := &testutil.MockForge{Issues: []*domain.Issue{&issue}}

	out, err := execute(t, newTestContainer(forge), "search")

	require.NoError(t, err)
	assert.Contains(t, out, "#42")
	assert.Contains(t, out, "Crash on startup")
	assert.Contains(t, out, "Type/Bug")
}

func TestTimelineCommandFiltersAndRenders(t *testing.T) {
	events := decodeEvents(t, `[
		{"type":"label","user":{"username":"alice"},"label":{"name":"Severity: High"},"created_at":"2024-03-02T10:00:00Z"},
		{"type":"close","user":{"username":"alice"},"created_at":"2024-03-03T10:00:00Z"},
		{"type":"close","user":{"username":"bob"},"created_at":"2024-03-03T11:00:00Z"}
	]`)
	forge := &testutil.MockForge{Events: events}

	out, err := execute(t, newTestContainer(forge),
		"timeline", "blender/blender/issues/42",
		"--label", "Severity: High", "--type", "close",
		"--since", "2024-03-01", "--before", "2024-03-08T00:00:00Z")

	require.NoError(t, err)
	assert.Equal(t, "blender/blender/issues/42", forge.GotIssueRef)
	require.NotNil(t, forge.GotSince)
	require.NotNil(t, forge.GotBefore)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), forge.GotSince.UTC())

	assert.Contains(t, out, "Severity: High")
	assert.Contains(t, out, "close")
	// No line for bob's event.
	assert.Equal(t, 3, len(bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n"))))
}

func TestTimelineCommandRejectsBadRef(t *testing.T) {
	_, err := execute(t, newTestContainer(&testutil.MockForge{}),
		"timeline", "blender/blender/42")

	require.ErrorIs(t, err, domain.ErrInvalidIssueRef)
}

func TestTimelineCommandRejectsBadTime(t *testing.T) {
	_, err := execute(t, newTestContainer(&testutil.MockForge{}),
		"timeline", "blender/blender/issues/42", "--since", "yesterday")

	require.ErrorContains(t, err, `invalid time "yesterday"`)
}

func decodeEvents(t *testing.T, raw string) []*domain.Event {
	t.Helper()
	var events []*domain.Event
	require.NoError(t, json.Unmarshal([]byte(raw), &events))
	return events
}

func TestActivityCommand(t *testing.T) {
	activities := decodeActivities(t, `[
		{"op_type":"close_issue","created":"2024-03-08T09:30:00Z",
		 "repo":{"full_name":"blender/blender"},"content":"104297|Crash on startup"}
	]`)
	forge := &testutil.MockForge{Activities: activities}

	out, err := execute(t, newTestContainer(forge), "activity", "bob")

	require.NoError(t, err)
	assert.Equal(t, "bob", forge.GotUsername)
	assert.Equal(t, "2024-03-08", forge.GotDate)
	assert.Contains(t, out, "close_issue")
	assert.Contains(t, out, "blender/blender")
}

func decodeActivities(t *testing.T, raw string) []*domain.Activity {
	t.Helper()
	var activities []*domain.Activity
	require.NoError(t, json.Unmarshal([]byte(raw), &activities))
	return activities
}
