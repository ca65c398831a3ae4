package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cliento/cliento/internal/infrastructure/clients/practiceapi"
	"github.com/cliento/cliento/internal/infrastructure/observability"
	"github.com/cliento/cliento/internal/session"
	"github.com/cliento/cliento/pkg/config"
)

// app carries the wired dependencies shared by every command
type app struct {
	cfg     *config.Config
	api     *practiceapi.HTTPClient
	session *session.Manager
	store   *session.FileStore
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	observability.InitLogger("cliento", cfg.Env, cfg.LogLevel)

	api, err := practiceapi.New(cfg.APIBaseURL, cfg.APITimeout())
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}

	storePath := cfg.SessionFile
	if storePath == "" {
		storePath = session.DefaultStorePath()
	}
	store := &session.FileStore{Path: storePath}

	cookies, err := store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("could not restore session, starting unauthenticated")
	} else if len(cookies) > 0 {
		api.SetCookies(cookies)
	}

	return &app{
		cfg:     cfg,
		api:     api,
		session: session.NewManager(api),
		store:   store,
	}, nil
}

// saveSession writes the current cookies back to the marker file
func (a *app) saveSession() {
	if err := a.store.Save(a.api.Cookies()); err != nil {
		log.Warn().Err(err).Msg("could not persist session")
	}
}

func main() {
	var a *app

	root := &cobra.Command{
		Use:           "cliento",
		Short:         "Practice management client for the Cliento API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp()
			return err
		},
	}

	root.AddCommand(
		loginCmd(&a),
		logoutCmd(&a),
		registerCmd(&a),
		whoamiCmd(&a),
		patientsCmd(&a),
		appointmentsCmd(&a),
		notesCmd(&a),
		paymentsCmd(&a),
		dashboardCmd(&a),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", renderError(err))
		os.Exit(1)
	}
}
