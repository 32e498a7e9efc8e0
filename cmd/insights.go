package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/etnz/selftrack"
	"github.com/etnz/selftrack/feedback"
	"github.com/etnz/selftrack/renderer"
	"github.com/google/subcommands"
)

type feedbackCmd struct {
	prompt bool
}

func (*feedbackCmd) Name() string     { return "feedback" }
func (*feedbackCmd) Synopsis() string { return "ask Gemini for feedback on the portfolio" }
func (*feedbackCmd) Usage() string {
	return `selftrack feedback [-prompt]

  Sends a summary of the portfolio to Gemini and prints its feedback and a
  motivational message. Without an API key, or when Gemini cannot be reached,
  a generic message is printed instead.

  The API key is read from the 'api_key' configuration key, or the
  GEMINI_API_KEY environment variable.
`
}
func (c *feedbackCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.prompt, "prompt", false, "Print the prompt instead of sending it")
}

func (c *feedbackCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(s *session) error {
		state := s.tracker.State()
		if c.prompt {
			fmt.Println(feedback.Prompt(state))
			return nil
		}
		printMarkdown(renderer.FeedbackMarkdown(feedbackClient(ctx, s).Request(ctx, state)))
		return nil
	})
}

// feedbackClient returns a client on Gemini, or one that always falls back if it cannot be created.
func feedbackClient(ctx context.Context, s *session) *feedback.Client {
	if s.cfg.APIKey == "" {
		log.Println("warning: no API key configured")
		return feedback.New(nil, s.cfg.Model)
	}
	client, err := feedback.NewGemini(ctx, s.cfg.APIKey, s.cfg.Model)
	if err != nil {
		log.Printf("warning: %v", err)
		return feedback.New(nil, s.cfg.Model)
	}
	return client
}

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression on the portfolio" }
func (*queryCmd) Usage() string {
	return `selftrack query <jsonpath>

  Evaluates a JSONPath expression on the JSON form of the portfolio and prints
  the result as JSON. See 'selftrack topic query'.

Usage Examples:
$ selftrack query '$.academics[*].gpa'
$ selftrack query '$.experiences[?(@.type == "Work")].organization'
`
}
func (*queryCmd) SetFlags(*flag.FlagSet) {}

func (*queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: query takes exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}
	return run(ctx, func(s *session) error {
		v, err := selftrack.Query(s.tracker.State(), f.Arg(0))
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	})
}

type exportCmd struct {
	format string
	output string
	inline bool
}

// exportFormats are the formats of the export command.
var exportFormats = []string{"json", "yaml", "md", "html", "xlsx"}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the whole portfolio" }
func (*exportCmd) Usage() string {
	return `selftrack export [-format <json|yaml|md|html|xlsx>] [-o <file>]

  Exports the whole portfolio. 'json' is the storage format, a backup that can
  be restored with 'selftrack import'. 'md' and 'html' are printable
  documents, 'xlsx' is a workbook with one sheet per section.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "json", "Output format: "+strings.Join(exportFormats, ", "))
	f.StringVar(&c.output, "o", "", "Output file (default: standard output)")
	f.BoolVar(&c.inline, "inline", false, "Render images inline in the 'md' format")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	write, err := c.writer()
	if err != nil {
		return exitStatus(err)
	}
	return run(ctx, func(s *session) error {
		state := s.tracker.State()
		if c.output == "" {
			w := bufio.NewWriter(os.Stdout)
			if err := write(w, state); err != nil {
				return err
			}
			return w.Flush()
		}
		f, err := os.Create(c.output)
		if err != nil {
			return fmt.Errorf("could not create export file: %w", err)
		}
		if err := write(f, state); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Portfolio exported to %s\n", c.output)
		return nil
	})
}

// writer returns the function writing the portfolio in the selected format.
func (c *exportCmd) writer() (func(io.Writer, selftrack.AppState) error, error) {
	switch strings.ToLower(c.format) {
	case "json":
		return selftrack.EncodeState, nil
	case "yaml", "yml":
		return selftrack.EncodeYAML, nil
	case "md", "markdown":
		return func(w io.Writer, s selftrack.AppState) error {
			_, err := io.WriteString(w, renderer.PortfolioMarkdown(s, renderer.Options{InlineImages: c.inline}))
			return err
		}, nil
	case "html":
		return renderer.WriteHTMLPage, nil
	case "xlsx":
		return renderer.WriteWorkbook, nil
	default:
		return nil, fmt.Errorf("%w: unknown export format %q, want one of %s", selftrack.ErrRejected, c.format, strings.Join(exportFormats, ", "))
	}
}
