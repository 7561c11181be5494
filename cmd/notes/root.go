package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"note-keep/internal/app"
	"note-keep/internal/clients/noteapi"
	"note-keep/internal/config"
	"note-keep/internal/logger"
	"note-keep/internal/session"
	"note-keep/internal/utils/validate"
)

var (
	serverFlag string
	userFlag   string
)

var rootCmd = &cobra.Command{
	Use:          "notes",
	Short:        "Manage your notes on a remote note service",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "note service base URL (defaults to SERVER_URL)")
	rootCmd.PersistentFlags().StringVar(&userFlag, "user", "", "user identity (defaults to NOTES_USER)")
	rootCmd.AddCommand(listCmd, addCmd, editCmd, deleteCmd, pinCmd)
}

// consoleNotifier renders the core's notification events on the terminal,
// the CLI's stand-in for toasts.
type consoleNotifier struct{}

func (consoleNotifier) Success(msg string) { fmt.Println("✓ " + msg) }
func (consoleNotifier) Error(msg string)   { fmt.Fprintln(os.Stderr, "✗ "+msg) }

// buildApp wires the client core for one invocation.
func buildApp() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logg, err := logger.Init(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	serverURL := cfg.ServerURL
	if serverFlag != "" {
		serverURL = serverFlag
	}
	identity := cfg.NotesUser
	if userFlag != "" {
		identity = userFlag
	}

	gw := noteapi.New(serverURL, time.Duration(cfg.HTTPTimeoutSec)*time.Second, logg)
	gate := session.NewGate(
		session.IdentityFunc(func() (string, bool) {
			return identity, identity != ""
		}),
		session.RedirectFunc(func() {
			fmt.Fprintln(os.Stderr, "Please log in first: set NOTES_USER or pass --user")
		}),
		logg,
	)

	return app.New(gate, gw, consoleNotifier{}, validate.V(), logg), nil
}
