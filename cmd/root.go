package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"huddle/internal/adapters/render"
)

func Execute() error {
	rootCmd, app := newRootCmd()

	err := rootCmd.Execute()

	// The request log prints even when the command failed; a failing
	// request is exactly when the log is wanted.
	if app != nil && app.showHTTPLog {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), render.HTTPLog(app.requests.Entries()))
	}

	return err
}

func newRootCmd() (*cobra.Command, *app) {
	rootCmd := &cobra.Command{
		Use:           "huddle",
		Short:         "Huddle CLI: group accountability from the terminal",
		Long:          "huddle talks to a Huddle server: sign up, join accountability groups, track per-member goals, and review recent group activity.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd, nil
	}

	rootCmd.PersistentFlags().StringVar(&app.apiURL, "api-url", "", "API base URL (overrides HUDDLE_API_URL and the config file)")
	rootCmd.PersistentFlags().BoolVar(&app.showHTTPLog, "http-log", false, "Print the request log after the command finishes")

	// The gateway is built after flag parsing so --api-url can outrank
	// every other base-URL source.
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		app.connect()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newSignupCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newGroupCmd(app),
		newGoalCmd(app),
		newActivityCmd(app),
		newConfigCmd(),
	)

	return rootCmd, app
}
