package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gitea-tools/triage/internal/app"
	"github.com/gitea-tools/triage/internal/domain"
	"github.com/gitea-tools/triage/internal/usecase"
)

// newUserCommand creates the user command for showing a user profile.
func newUserCommand(c *app.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "user <username>",
		Short:   "Show a user's profile",
		GroupID: groupLookup,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := usecase.NewLookupUser(c.Forge)
			out, err := uc.Execute(cmd.Context(), usecase.LookupUserInput{Username: args[0]})
			if err != nil {
				return err
			}
			return renderRaw(cmd.OutOrStdout(), output, out.User.Raw, func(w io.Writer) error {
				return printUser(w, out.User)
			})
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}

func printUser(w io.Writer, user *domain.User) error {
	fmt.Fprintf(w, "Username:  %s\n", user.UserName)
	if user.FullName != "" {
		fmt.Fprintf(w, "Full name: %s\n", user.FullName)
	}
	if user.Email != "" {
		fmt.Fprintf(w, "Email:     %s\n", user.Email)
	}
	fmt.Fprintf(w, "ID:        %d\n", user.ID)
	return nil
}

// newWhoamiCommand creates the whoami command for showing the resolved
// local username.
func newWhoamiCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "whoami",
		Short:   "Show the username triage would use by default",
		GroupID: groupLookup,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := usecase.NewResolveUsername(c.Resolver, c.Config.Defaults.Username)
			username, err := uc.Execute("")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), username)
			return nil
		},
	}
}
