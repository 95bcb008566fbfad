package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"huddle/internal/adapters/api"
	"huddle/internal/adapters/netlog"
	chainstore "huddle/internal/adapters/secrets/chain"
	"huddle/internal/application"
	"huddle/internal/config"
	"huddle/internal/domain"
	"huddle/internal/ports"
)

var errNotLoggedIn = errors.New("not logged in: run `huddle login` first")

type app struct {
	cfg      config.Config
	requests *netlog.Log
	secrets  ports.SecretStore
	client   *api.Client
	session  *application.SessionService
	activity *application.ActivityService

	apiURL      string
	showHTTPLog bool
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	secrets, err := chainstore.NewDefault(cfg.SecretsDir)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	return &app{
		cfg:      cfg,
		requests: netlog.New(),
		secrets:  secrets,
	}, nil
}

// connect builds the request gateway and the services on top of it. Runs
// once per invocation, after flags are parsed.
func (a *app) connect() {
	baseURL := a.cfg.BaseURL
	if a.apiURL != "" {
		baseURL = a.apiURL
	}

	a.client = api.New(baseURL, api.WithRecorder(a.requests))
	a.session = application.NewSessionService(a.secrets, a.client)
	a.activity = application.NewActivityService(a.client, ports.SystemClock{})
}

// requireSession restores the persisted session and fails when none
// exists. Commands that talk to authenticated endpoints go through here.
func (a *app) requireSession(cmd *cobra.Command) (*domain.UserProfile, error) {
	if err := a.session.Restore(cmd.Context()); err != nil {
		return nil, err
	}
	if !a.session.Authenticated() {
		return nil, errNotLoggedIn
	}

	_, user := a.session.Current()
	return user, nil
}
