package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"huddle/internal/adapters/render"
	"huddle/internal/domain"
)

func newActivityCmd(app *app) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "activity <group-id>",
		Short: "Show recent group activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireSession(cmd)
			if err != nil {
				return err
			}

			fromDate, toDate, err := resolveRange(app, from, to)
			if err != nil {
				return err
			}

			var items []domain.ActivityItem
			fetch := func(ctx context.Context) error {
				var fetchErr error
				items, fetchErr = app.activity.GroupActivity(ctx, args[0], user.ID, fromDate, toDate)
				return fetchErr
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching activity...", fetch); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.Activity(items, fromDate, toDate))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD, default: window start from config)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD, default: today)")

	return cmd
}

func resolveRange(app *app, from, to string) (domain.Date, domain.Date, error) {
	fromDate, toDate := app.activity.RangeEndingToday(app.cfg.WindowDays)

	if from != "" {
		normalized, err := domain.NormalizeDate(from)
		if err != nil {
			return "", "", fmt.Errorf("--from: %w", err)
		}
		fromDate = normalized
	}
	if to != "" {
		normalized, err := domain.NormalizeDate(to)
		if err != nil {
			return "", "", fmt.Errorf("--to: %w", err)
		}
		toDate = normalized
	}

	if string(toDate) < string(fromDate) {
		return "", "", fmt.Errorf("range end %s is before range start %s", toDate, fromDate)
	}

	return fromDate, toDate, nil
}
