package domain

import "errors"

// Domain errors.
var (
	ErrPageSizeTooLarge = errors.New("page size exceeds the service maximum of 50 items")
	ErrInvalidIssueRef  = errors.New(`issue reference must look like "owner/repo/issues/number"`)
	ErrUsernameNotFound = errors.New("no username configured in git config (user.username)")
	ErrMissingUsername  = errors.New("username is required (pass one explicitly or configure user.username)")
	ErrNotGitRepository = errors.New("not a git repository (or any of the parent directories)")
)
