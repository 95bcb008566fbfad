package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"huddle/internal/adapters/api"
	"huddle/internal/adapters/render"
	"huddle/internal/domain"
)

func newGoalCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage your goals within a group",
	}

	cmd.AddCommand(newGoalListCmd(app), newGoalCreateCmd(app))

	return cmd
}

func newGoalListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <group-id>",
		Short: "List your goals in a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			membershipID, err := resolveMembership(cmd, app, args[0])
			if err != nil {
				return err
			}

			goals, err := app.client.ListGoals(cmd.Context(), membershipID)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.Goals(goals))
			return nil
		},
	}
}

func newGoalCreateCmd(app *app) *cobra.Command {
	var (
		title    string
		goalType string
		unit     string
		target   int
	)

	cmd := &cobra.Command{
		Use:   "create <group-id>",
		Short: "Create a goal on your membership in a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			membershipID, err := resolveMembership(cmd, app, args[0])
			if err != nil {
				return err
			}

			goal, err := app.client.CreateGoal(cmd.Context(), api.CreateGoalInput{
				MembershipID: membershipID,
				Title:        title,
				Type:         goalType,
				Unit:         unit,
				PerDayTarget: target,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.Goals([]domain.Goal{goal}))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Goal title")
	cmd.Flags().StringVar(&goalType, "type", string(domain.GoalBinary), "Goal type: binary (did it or not) or count")
	cmd.Flags().StringVar(&unit, "unit", "", "Unit for count goals, e.g. pages or km (optional)")
	cmd.Flags().IntVar(&target, "target", 0, "Per-day target for count goals (optional)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

// resolveMembership maps a group to the caller's active membership; goals
// hang off memberships, not groups.
func resolveMembership(cmd *cobra.Command, app *app, groupID string) (string, error) {
	user, err := app.requireSession(cmd)
	if err != nil {
		return "", err
	}

	members, err := app.client.ListMembers(cmd.Context(), groupID)
	if err != nil {
		return "", err
	}

	membershipID, ok := domain.FindActiveMembership(members, user.ID)
	if !ok {
		return "", fmt.Errorf("you are not an active member of group %s", groupID)
	}

	return membershipID, nil
}
