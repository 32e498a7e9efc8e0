package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/selftrack"
	"github.com/etnz/selftrack/renderer"
	"github.com/google/subcommands"
)

type academicsCmd struct{}

func (*academicsCmd) Name() string     { return "academics" }
func (*academicsCmd) Synopsis() string { return "show the GPA history" }
func (*academicsCmd) Usage() string {
	return `selftrack academics

  Shows the GPA of every semester and the running average.
`
}
func (*academicsCmd) SetFlags(*flag.FlagSet) {}

func (*academicsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(s *session) error {
		printMarkdown(renderer.AcademicsMarkdown(s.tracker.State()))
		return nil
	})
}

type addGPACmd struct{}

func (*addGPACmd) Name() string     { return "add-gpa" }
func (*addGPACmd) Synopsis() string { return "record the GPA of the next semester" }
func (*addGPACmd) Usage() string {
	return `selftrack add-gpa <gpa>

  Records the GPA of the next semester. The GPA is a number between 0 and 4,
  both '.' and ',' are accepted as decimal separator.

Usage Examples:
$ selftrack add-gpa 3.9
`
}
func (*addGPACmd) SetFlags(*flag.FlagSet) {}

func (*addGPACmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: add-gpa takes exactly one GPA value")
		return subcommands.ExitUsageError
	}
	return run(ctx, func(s *session) error {
		rec, err := s.tracker.AddAcademicRecord(ctx, f.Arg(0))
		if err != nil {
			return err
		}
		fmt.Printf("✅ Added %s with a GPA of %s\n", rec.Semester, selftrack.GPA(rec.GPA))
		return nil
	})
}
