package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/gitea-tools/triage/internal/domain"
)

// SearchIssuesInput contains the parameters for the issue search.
type SearchIssuesInput struct {
	Progress io.Writer // Verbose reporting destination; nil disables it
	Options  domain.SearchOptions
	Verbose  bool
}

// SearchIssuesOutput contains the result of the issue search.
type SearchIssuesOutput struct {
	Issues []*domain.Issue
}

// SearchIssues is the use case for the cross-repository issue search.
type SearchIssues struct {
	forge domain.Forge
}

// NewSearchIssues creates a new SearchIssues use case.
func NewSearchIssues(forge domain.Forge) *SearchIssues {
	return &SearchIssues{forge: forge}
}

// Execute runs the search. When verbose, the search scope, the redacted
// parameter set, and the final result count are written to Progress.
func (uc *SearchIssues) Execute(ctx context.Context, in SearchIssuesInput) (*SearchIssuesOutput, error) {
	verbose := in.Verbose && in.Progress != nil
	if verbose {
		fmt.Fprintf(in.Progress, "# Searching for %s #\n", in.Options.Scope())
		fmt.Fprintf(in.Progress, "Query params: %v\n", in.Options.RedactedParams())
	}

	issues, err := uc.forge.SearchIssues(ctx, in.Options)
	if err != nil {
		return nil, fmt.Errorf("search issues: %w", err)
	}

	if verbose {
		fmt.Fprintf(in.Progress, "Total: %d\n\n", len(issues))
	}

	return &SearchIssuesOutput{Issues: issues}, nil
}
