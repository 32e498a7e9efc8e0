package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/selftrack/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type chatCmd struct {
	noAdvisor bool
}

func (*chatCmd) Name() string     { return "chat" }
func (*chatCmd) Synopsis() string { return "chat with a Gemini mentor about the portfolio" }
func (*chatCmd) Usage() string {
	return `selftrack chat [-no-advisor] [<message>...]

  Starts an interactive chat with a mentor that reads the portfolio. The
  message, if any, is sent first. Type 'bye' to exit.

  The mentor asks a career advisor grounded with Google Search for recent
  information, unless -no-advisor is set.

  Requires a Gemini API key, see 'selftrack topic feedback'.
`
}

func (c *chatCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.noAdvisor, "no-advisor", false, "Do not use the career advisor")
}

func (c *chatCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(s *session) error {
		if s.cfg.APIKey == "" {
			return fmt.Errorf("chat requires a Gemini API key, see 'selftrack topic feedback'")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI, APIKey: s.cfg.APIKey})
		if err != nil {
			return fmt.Errorf("error initializing Gemini's client: %w", err)
		}

		var experts []*agent.Expert
		if !c.noAdvisor {
			experts = append(experts, agent.NewCareerAdvisor(s.cfg.Model))
		}
		mentor := agent.NewMentor(s.cfg.Model, s.tracker.State, experts...)
		a := agent.New(os.Stdout, os.Stdin, mentor, experts...)
		a.Print = func(_ io.Writer, answer string) { printMarkdown(answer) }

		var prompts []string
		if f.NArg() > 0 {
			prompts = append(prompts, strings.Join(f.Args(), " "))
		}
		return a.Run(ctx, client, prompts...)
	})
}
