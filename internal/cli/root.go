package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/clientbuddy/internal/cli/formatter"
	"github.com/alexanderramin/clientbuddy/internal/domain"
	"github.com/alexanderramin/clientbuddy/internal/intelligence"
	"github.com/alexanderramin/clientbuddy/internal/logger"
	"github.com/alexanderramin/clientbuddy/internal/random"
)

// App holds the services and wiring the commands run against.
type App struct {
	Briefs     intelligence.BriefService
	Feedback   intelligence.FeedbackService
	Reviews    intelligence.ReviewService
	Challenges intelligence.ChallengeService

	// AIErr explains why the AI services are nil, e.g. a missing API key.
	AIErr error

	Rand random.Source
	Log  *logger.Logger

	// Handler builds the HTTP API for "serve".
	Handler    func() (http.Handler, error)
	ServerAddr string

	// IsInteractive reports whether stdin is a terminal. Forms, spinners
	// and the full-screen chat only run when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "clientbuddy" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.Log == nil {
		app.Log = logger.Nop()
	}
	if app.Rand == nil {
		app.Rand = random.Default()
	}

	root := &cobra.Command{
		Use:           "clientbuddy",
		Short:         "Practice design work against a simulated client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "Config file (default ./clientbuddy.yaml)")

	root.AddCommand(
		newCatalogCmd(),
		newBriefCmd(app),
		newChatCmd(app),
		newFeedbackCmd(app),
		newChallengeCmd(app),
		newScenarioCmd(app),
		newServeCmd(app),
	)
	return root
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

// requireAI fails commands that need the model when it is not configured.
func (app *App) requireAI() error {
	if app.Briefs != nil && app.Feedback != nil && app.Reviews != nil && app.Challenges != nil {
		return nil
	}
	if app.AIErr != nil {
		return fmt.Errorf("AI features are unavailable: %w", app.AIErr)
	}
	return fmt.Errorf("AI features are unavailable")
}

// spin shows a spinner on stderr while fn runs, in interactive sessions only.
func (app *App) spin(cmd *cobra.Command, message string, fn func() error) error {
	if !app.interactive() {
		return fn()
	}
	stop := formatter.StartSpinner(cmd.ErrOrStderr(), message)
	defer stop()
	return fn()
}

func readBrief(path string) (domain.Brief, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading brief: %w", err)
	}
	return domain.UnmarshalBrief(data)
}

func writeJSON(path string, data []byte) error {
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
