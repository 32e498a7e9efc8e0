package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/selftrack"
	"github.com/google/subcommands"
)

type importCmd struct {
	format string
	yes    bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "restore the portfolio from a backup" }
func (*importCmd) Usage() string {
	return `selftrack import -yes [-format <json|yaml>] <file>

  Replaces the whole portfolio with a backup made by 'selftrack export'.
  The format defaults to the file extension. The backup is checked before
  anything is replaced. Use '-' to read the standard input.
`
}
func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "", "Backup format: json or yaml (default: from the file extension)")
	f.BoolVar(&c.yes, "yes", false, "Confirm the replacement of the portfolio")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import takes exactly one backup file")
		return subcommands.ExitUsageError
	}
	if !c.yes {
		fmt.Fprintln(os.Stderr, "Error: import replaces the portfolio, confirm with -yes")
		return subcommands.ExitUsageError
	}
	backup, err := c.read(f.Arg(0))
	if err != nil {
		return exitStatus(err)
	}
	return run(ctx, func(s *session) error {
		if err := s.tracker.Restore(ctx, backup); err != nil {
			return err
		}
		fmt.Printf("✅ Portfolio restored from %s\n", f.Arg(0))
		return nil
	})
}

// read decodes the backup in file.
func (c *importCmd) read(file string) (selftrack.AppState, error) {
	format := strings.ToLower(c.format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(file)), ".")
	}
	var decode func(io.Reader) (selftrack.AppState, error)
	switch format {
	case "json", "":
		decode = selftrack.DecodeState
	case "yaml", "yml":
		decode = selftrack.DecodeYAML
	default:
		return selftrack.AppState{}, fmt.Errorf("%w: unknown backup format %q, want json or yaml", selftrack.ErrRejected, format)
	}

	var r io.Reader = os.Stdin
	if file != "-" {
		fh, err := os.Open(file)
		if err != nil {
			return selftrack.AppState{}, fmt.Errorf("could not open backup: %w", err)
		}
		defer fh.Close()
		r = fh
	}
	s, err := decode(r)
	if err != nil {
		return selftrack.AppState{}, fmt.Errorf("invalid backup %s: %w", file, err)
	}
	return s, nil
}
