package domain

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchOptions_Params_DropsFalsyValues(t *testing.T) {
	opts := SearchOptions{
		Type:     "pull",
		State:    "all",
		Created:  true,
		Reviewed: false,
	}

	params := opts.Params()

	assert.Equal(t, "pull", params.Get("type"))
	assert.Equal(t, "all", params.Get("state"))
	assert.Equal(t, "true", params.Get("created"))
	assert.False(t, params.Has("reviewed"))
	assert.False(t, params.Has("since"))
	assert.False(t, params.Has("labels"))
	assert.False(t, params.Has("access_token"))
}

func TestSearchOptions_Params_JoinsLabels(t *testing.T) {
	opts := SearchOptions{Labels: []string{"bug", "high priority"}}

	params := opts.Params()

	assert.Equal(t, "bug,high priority", params.Get("labels"))
}

func TestSearchOptions_Params_EncodingRoundTrip(t *testing.T) {
	opts := SearchOptions{
		Type:    "issue",
		Since:   "2024-01-02T15:04:05Z",
		State:   "open",
		Labels:  []string{"bug"},
		Token:   "secret",
		Created: true,
	}

	encoded := opts.Params().Encode()
	decoded, err := url.ParseQuery(encoded)
	require.NoError(t, err)

	assert.Equal(t, opts.Params(), decoded)
}

func TestSearchOptions_RedactedParams(t *testing.T) {
	opts := SearchOptions{
		Type:  "issue",
		State: "all",
		Token: "secret",
	}

	params := opts.RedactedParams()

	assert.False(t, params.Has("type"))
	assert.False(t, params.Has("access_token"))
	assert.Equal(t, "all", params.Get("state"))
}

func TestSearchOptions_Scope(t *testing.T) {
	assert.Equal(t, "pull", SearchOptions{Type: "pull"}.Scope())
	assert.Equal(t, "issues and pulls", SearchOptions{}.Scope())
}
