package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"huddle/internal/adapters/api"
	"huddle/internal/adapters/render"
)

func newGroupCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage accountability groups",
	}

	cmd.AddCommand(
		newGroupListCmd(app),
		newGroupCreateCmd(app),
		newGroupShowCmd(app),
		newGroupJoinCmd(app),
		newGroupLeaveCmd(app),
		newGroupMembersCmd(app),
		newGroupInviteCmd(app),
	)

	return cmd
}

func newGroupListCmd(app *app) *cobra.Command {
	var public bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your groups, or public ones with --public",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.requireSession(cmd); err != nil {
				return err
			}

			scope := api.ScopeMine
			if public {
				scope = api.ScopePublic
			}

			groups, err := app.client.ListGroups(cmd.Context(), scope)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.Groups(groups, string(scope)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&public, "public", false, "List public groups open to joining")

	return cmd
}

func newGroupCreateCmd(app *app) *cobra.Command {
	var in api.CreateGroupInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.requireSession(cmd); err != nil {
				return err
			}

			group, err := app.client.CreateGroup(cmd.Context(), in)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.Group(group))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Group name")
	cmd.Flags().StringVar(&in.Description, "description", "", "What the group is about (optional)")
	cmd.Flags().StringVar(&in.StartDate, "start", "", "First day of the challenge (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.EndDate, "end", "", "Last day of the challenge (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.Visibility, "visibility", "private", "Group visibility: public or private")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newGroupShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <group-id>",
		Short: "Show one group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireSession(cmd); err != nil {
				return err
			}

			group, err := app.client.GetGroup(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.Group(group))
			return nil
		},
	}
}

func newGroupJoinCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "join <group-id>",
		Short: "Join a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireSession(cmd); err != nil {
				return err
			}

			if err := app.client.JoinGroup(cmd.Context(), args[0]); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Joined group %s\n", args[0])
			return nil
		},
	}
}

func newGroupLeaveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "leave <group-id>",
		Short: "Leave a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireSession(cmd); err != nil {
				return err
			}

			if err := app.client.LeaveGroup(cmd.Context(), args[0]); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Left group %s\n", args[0])
			return nil
		},
	}
}

func newGroupMembersCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "members <group-id>",
		Short: "List the members of a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireSession(cmd); err != nil {
				return err
			}

			members, err := app.client.ListMembers(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.Members(members))
			return nil
		},
	}
}

func newGroupInviteCmd(app *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "invite <group-id>",
		Short: "Invite someone to a group by email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireSession(cmd); err != nil {
				return err
			}

			in := api.InviteInput{GroupID: args[0], Email: email}
			if err := app.client.CreateInvite(cmd.Context(), in); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Invite sent to %s\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address to invite")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
