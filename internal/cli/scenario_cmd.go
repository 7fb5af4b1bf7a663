package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/clientbuddy/internal/catalog"
	"github.com/alexanderramin/clientbuddy/internal/cli/formatter"
	"github.com/alexanderramin/clientbuddy/internal/imagecap"
	"github.com/alexanderramin/clientbuddy/internal/intelligence"
	"github.com/alexanderramin/clientbuddy/internal/scenario"
)

const scenarioHelp = `Commands:
  submit <image> [note]  send a design (file path or data: URL) for feedback
  complete               finish the project and get a final review
  status                 show the project log
  brief                  show the brief again
  reset                  clear the project
  start                  start a new project with the same settings
  quit                   leave`

func newScenarioCmd(app *App) *cobra.Command {
	var flags briefRequestFlags

	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Run a full project: brief, revisions with feedback, final review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAI(); err != nil {
				return err
			}
			req, err := flags.resolve(cmd, app)
			if err != nil {
				return err
			}

			m := scenario.New(scenario.Deps{
				Briefs:   app.Briefs,
				Feedback: app.Feedback,
				Reviewer: app.Reviews,
				Observer: scenario.NewLogObserver(app.Log),
			})
			r := &scenarioREPL{app: app, cmd: cmd, m: m, req: req, out: cmd.OutOrStdout()}
			return r.run(cmd.Context(), cmd.InOrStdin())
		},
	}
	flags.register(cmd)
	return cmd
}

type scenarioREPL struct {
	app *App
	cmd *cobra.Command
	m   *scenario.Machine
	req intelligence.BriefRequest
	out io.Writer
}

func (r *scenarioREPL) run(ctx context.Context, in io.Reader) error {
	r.start(ctx)
	fmt.Fprintln(r.out, formatter.Dim(scenarioHelp))

	scanner := bufio.NewScanner(in)
	for {
		if r.app.interactive() {
			fmt.Fprint(r.out, formatter.StylePurple.Render("scenario")+formatter.Dim("> "))
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !r.handle(ctx, line) {
			return nil
		}
	}
}

// handle runs one command line. It returns false when the user quits.
// Errors are printed and the loop continues.
func (r *scenarioREPL) handle(ctx context.Context, line string) bool {
	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(verb) {
	case "quit", "exit", "q":
		return false
	case "help", "?":
		fmt.Fprintln(r.out, formatter.Dim(scenarioHelp))
	case "start":
		r.start(ctx)
	case "submit":
		r.submit(ctx, rest)
	case "complete":
		r.complete(ctx)
	case "status":
		fmt.Fprintln(r.out, formatter.FormatScenario(r.m.Snapshot()))
	case "brief":
		fmt.Fprintln(r.out, formatter.FormatBrief(r.m.Snapshot().Brief))
	case "reset":
		if err := r.m.Reset(); err != nil {
			r.fail(err)
			return true
		}
		fmt.Fprintln(r.out, formatter.Dim("Project cleared. Type start for a new brief."))
	default:
		fmt.Fprintln(r.out, formatter.StyleYellow.Render(fmt.Sprintf("Unknown command %q. Type help.", verb)))
	}
	return true
}

func (r *scenarioREPL) start(ctx context.Context) {
	err := r.app.spin(r.cmd, "The client is writing a brief...", func() error {
		_, err := r.m.Start(ctx, r.req)
		return err
	})
	if err != nil {
		r.fail(err)
		return
	}
	fmt.Fprintln(r.out, formatter.FormatBrief(r.m.Snapshot().Brief))
}

func (r *scenarioREPL) submit(ctx context.Context, args string) {
	ref, note, _ := strings.Cut(args, " ")
	if ref == "" {
		fmt.Fprintln(r.out, formatter.StyleYellow.Render("Usage: submit <image> [note]"))
		return
	}
	img, err := imagecap.Load(ref)
	if err != nil {
		r.fail(err)
		return
	}

	var text string
	err = r.app.spin(r.cmd, "The client is looking at your design...", func() error {
		fb, err := r.m.SubmitRevision(ctx, img, strings.TrimSpace(note))
		text = fb.Feedback
		return err
	})
	if err != nil {
		r.fail(err)
		return
	}
	snap := r.m.Snapshot()
	p := snap.Brief.Meta().ClientPersonality
	fmt.Fprintln(r.out, formatter.FormatFeedback(p, catalog.PersonaName(p, snap.Lang), text))
}

func (r *scenarioREPL) complete(ctx context.Context) {
	err := r.app.spin(r.cmd, "The client is writing a review...", func() error {
		_, err := r.m.Complete(ctx)
		return err
	})
	if err != nil {
		r.fail(err)
		return
	}
	fmt.Fprintln(r.out, formatter.FormatReview(*r.m.Snapshot().Review))
}

func (r *scenarioREPL) fail(err error) {
	fmt.Fprintln(r.out, formatter.ErrorLine(err))
}
