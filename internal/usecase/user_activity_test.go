package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitea-tools/triage/internal/domain"
	"github.com/gitea-tools/triage/internal/testutil"
)

func TestUserActivity_Execute(t *testing.T) {
	forge := &testutil.MockForge{
		Activities: []*domain.Activity{{ID: 1, OpType: "commit_repo"}},
	}
	clock := &testutil.MockClock{NowTime: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)}

	uc := NewUserActivity(forge, NewResolveUsername(nil, ""), clock)
	out, err := uc.Execute(context.Background(), UserActivityInput{
		Username: "alice",
		Date:     "2024-03-01",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", forge.GotUsername)
	assert.Equal(t, "2024-03-01", forge.GotDate)
	assert.Len(t, out.Activities, 1)
}

func TestUserActivity_Execute_DateDefaultsToToday(t *testing.T) {
	forge := &testutil.MockForge{}
	clock := &testutil.MockClock{NowTime: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)}

	uc := NewUserActivity(forge, NewResolveUsername(nil, ""), clock)
	out, err := uc.Execute(context.Background(), UserActivityInput{Username: "alice"})

	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", out.Date)
	assert.Equal(t, "2024-03-05", forge.GotDate)
}

func TestUserActivity_Execute_UsernameFromResolver(t *testing.T) {
	forge := &testutil.MockForge{}
	clock := &testutil.MockClock{NowTime: time.Now()}
	resolver := NewResolveUsername(&testutil.MockResolver{Username: "bob"}, "")

	uc := NewUserActivity(forge, resolver, clock)
	out, err := uc.Execute(context.Background(), UserActivityInput{})

	require.NoError(t, err)
	assert.Equal(t, "bob", out.Username)
	assert.Equal(t, "bob", forge.GotUsername)
}

func TestUserActivity_Execute_NoUsernameAnywhere(t *testing.T) {
	uc := NewUserActivity(&testutil.MockForge{}, NewResolveUsername(nil, ""), &testutil.MockClock{})
	_, err := uc.Execute(context.Background(), UserActivityInput{})

	assert.ErrorIs(t, err, domain.ErrMissingUsername)
}
