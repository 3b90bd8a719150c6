package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitea-tools/triage/internal/domain"
	"github.com/gitea-tools/triage/internal/testutil"
)

func TestShowIssue_Execute(t *testing.T) {
	forge := &testutil.MockForge{
		Issue: &domain.Issue{Number: 42, Title: "Crash on startup"},
	}

	uc := NewShowIssue(forge)
	out, err := uc.Execute(context.Background(), ShowIssueInput{
		IssueRef: "blender/blender/issues/42",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), out.Issue.Number)
	assert.Equal(t, "blender/blender/issues/42", forge.GotIssueRef)
}

func TestShowIssue_Execute_InvalidRef(t *testing.T) {
	uc := NewShowIssue(&testutil.MockForge{})
	_, err := uc.Execute(context.Background(), ShowIssueInput{IssueRef: "blender/blender/42"})

	assert.ErrorIs(t, err, domain.ErrInvalidIssueRef)
}
