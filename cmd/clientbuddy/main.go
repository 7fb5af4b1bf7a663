package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/clientbuddy/internal/cli"
	"github.com/alexanderramin/clientbuddy/internal/config"
	"github.com/alexanderramin/clientbuddy/internal/httpapi"
	"github.com/alexanderramin/clientbuddy/internal/intelligence"
	"github.com/alexanderramin/clientbuddy/internal/llm"
	"github.com/alexanderramin/clientbuddy/internal/logger"
	"github.com/alexanderramin/clientbuddy/internal/random"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// configPath pulls --config out of args before cobra parses them; the
// services have to exist before the command tree is built.
func configPath(args []string) string {
	fs := pflag.NewFlagSet("bootstrap", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)
	path := fs.String("config", "", "")
	_ = fs.Parse(args)
	return *path
}

func run() error {
	cfg, err := config.Load(configPath(os.Args[1:]))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()

	rnd := random.Default()
	app := &cli.App{
		Rand:       rnd,
		Log:        log,
		ServerAddr: cfg.Server.Addr,
	}

	// Detect interactive terminal for forms and the full-screen chat.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	observers := llm.MultiObserver{}
	if cfg.LLM.LogCalls {
		observers = append(observers, llm.NewLogObserver(log))
	}
	promObserver, err := llm.NewPrometheusObserver(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("registering llm metrics: %w", err)
	}
	observers = append(observers, promObserver)

	client, err := llm.NewClient(context.Background(), cfg.LLM, observers)
	if err != nil {
		// Catalog browsing and the offline chat still work without a model.
		app.AIErr = err
		log.Debug("llm disabled", "provider", cfg.LLM.Provider, "error", err)
	} else {
		app.Briefs = intelligence.NewBriefService(client, rnd)
		app.Feedback = intelligence.NewFeedbackService(client)
		app.Reviews = intelligence.NewReviewService(client)
		app.Challenges, err = intelligence.NewChallengeService(client, cfg.Cache.Challenges)
		if err != nil {
			return fmt.Errorf("building challenge service: %w", err)
		}
	}

	app.Handler = func() (http.Handler, error) {
		if strings.HasPrefix(strings.ToLower(cfg.LogMode), "prod") {
			gin.SetMode(gin.ReleaseMode)
		}
		return httpapi.New(httpapi.Deps{
			Briefs:      app.Briefs,
			Feedback:    app.Feedback,
			Reviews:     app.Reviews,
			Challenges:  app.Challenges,
			Rand:        rnd,
			Log:         log,
			CORSOrigins: cfg.Server.CORSOrigins,
			MaxSessions: cfg.Cache.Sessions,
		})
	}

	return cli.NewRootCmd(app).Execute()
}
