package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/planmytrip/tripstore/internal/models"
)

func usersCmd(o *options) *cobra.Command {
	c := &cobra.Command{
		Use:   "users",
		Short: "List, find and add users",
	}

	c.AddCommand(usersListCmd(o), usersFindCmd(o), usersAddCmd(o))
	return c
}

func usersListCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, o, func(ctx context.Context, s *session) error {
				users, err := s.store.GetAllUsers(ctx)
				if err != nil {
					return err
				}
				return printUsers(cmd.OutOrStdout(), users)
			})
		},
	}
}

func usersFindCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "find <username>",
		Short: "Find users by exact username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, o, func(ctx context.Context, s *session) error {
				users, err := s.store.GetUserByUsername(ctx, args[0])
				if err != nil {
					return err
				}
				return printUsers(cmd.OutOrStdout(), users)
			})
		},
	}
}

func usersAddCmd(o *options) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Add a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, o, func(ctx context.Context, s *session) error {
				u := &models.User{UserName: args[0], Email: email}
				added, err := s.store.AddUser(ctx, u)
				if err != nil {
					return err
				}
				if !added {
					return fmt.Errorf("username %q is already taken", u.UserName)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "user %d added\n", u.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "contact email")
	return cmd
}

func printUsers(w io.Writer, users []*models.User) error {
	if len(users) == 0 {
		_, err := fmt.Fprintln(w, "(no users found)")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tCREATED")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.UserName, u.Email, u.CreatedAt.Format("2006-01-02"))
	}
	return tw.Flush()
}
