package usecase

import (
	"context"
	"fmt"

	"github.com/gitea-tools/triage/internal/domain"
)

// ShowIssueInput contains the parameters for showing an issue.
type ShowIssueInput struct {
	IssueRef string // "{owner}/{repo}/issues/{number}" (required)
}

// ShowIssueOutput contains the result of showing an issue.
type ShowIssueOutput struct {
	Issue *domain.Issue
}

// ShowIssue is the use case for fetching one issue or pull request.
type ShowIssue struct {
	forge domain.Forge
}

// NewShowIssue creates a new ShowIssue use case.
func NewShowIssue(forge domain.Forge) *ShowIssue {
	return &ShowIssue{forge: forge}
}

// Execute fetches the issue.
func (uc *ShowIssue) Execute(ctx context.Context, in ShowIssueInput) (*ShowIssueOutput, error) {
	if err := domain.ValidateIssueRef(in.IssueRef); err != nil {
		return nil, err
	}
	issue, err := uc.forge.GetIssue(ctx, in.IssueRef)
	if err != nil {
		return nil, fmt.Errorf("get issue %s: %w", in.IssueRef, err)
	}
	return &ShowIssueOutput{Issue: issue}, nil
}
