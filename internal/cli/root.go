// Package cli provides the command-line interface for triage.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/gitea-tools/triage/internal/app"
)

// Command group IDs.
const (
	groupLookup = "lookup"
	groupReport = "report"
)

// NewRootCommand creates the root command for triage.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "triage",
		Short: "Triage reporting for a Gitea issue tracker",
		Long: `triage inspects users, issues, and pull requests on a Gitea
instance (https://projects.blender.org by default) to power triage
reports: user profiles, activity feeds, cross-repository searches,
and per-issue timeline digests.

Configuration is read from .triage.toml at the repository root and
from config.toml in the user config directory.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddGroup(
		&cobra.Group{ID: groupLookup, Title: "Lookup Commands:"},
		&cobra.Group{ID: groupReport, Title: "Report Commands:"},
	)

	root.AddCommand(
		newUserCommand(c),
		newWhoamiCommand(c),
		newIssueCommand(c),
		newActivityCommand(c),
		newSearchCommand(c),
		newTimelineCommand(c),
		newBrowseCommand(c),
	)

	return root
}
