// Package cmd implements the CLI application to keep a student portfolio.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/selftrack"
	"github.com/etnz/selftrack/config"
	"github.com/etnz/selftrack/storage"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range groups {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

type group struct {
	name     string
	commands []subcommands.Command
}

var groups = []group{
	{"portfolio", []subcommands.Command{&dashboardCmd{}, &profileCmd{}, &setProfileCmd{}, &importCmd{}, &resetCmd{}}},
	{"achievements", []subcommands.Command{&achievementsCmd{}, &addAchievementCmd{}, &rmAchievementCmd{}}},
	{"experiences", []subcommands.Command{&experiencesCmd{}, &addExperienceCmd{}, &rmExperienceCmd{}}},
	{"academics", []subcommands.Command{&academicsCmd{}, &addGPACmd{}}},
	{"hobbies", []subcommands.Command{&hobbiesCmd{}, &addHobbyCmd{}, &rmHobbyCmd{}}},
	{"insights", []subcommands.Command{&feedbackCmd{}, &chatCmd{}, &queryCmd{}, &exportCmd{}}},
	{"help", []subcommands.Command{&topicCmd{}}},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", "", "Path to the configuration file (default: selftrack.yaml in the working directory or the user's config folder)")
	backend    = flag.String("backend", "", "Storage backend: file, sqlite or redis")
	dataDir    = flag.String("data-dir", "", "Folder of the file storage backend")
	sqlitePath = flag.String("sqlite", "", "Database file of the sqlite storage backend")
	redisURL   = flag.String("redis", "", "URL of the redis storage backend")
	model      = flag.String("model", "", "Gemini model used for feedback")
	// Verbose enables logging of the storage and feedback activity.
	Verbose = flag.Bool("v", false, "Verbose output")
)

// flagKeys maps the global flags to their configuration keys.
var flagKeys = map[string]string{
	"backend":  config.KeyBackend,
	"data-dir": config.KeyDataDir,
	"sqlite":   config.KeySQLitePath,
	"redis":    config.KeyRedisURL,
	"model":    config.KeyModel,
	"v":        config.KeyVerbose,
}

// LoadConfig loads the configuration, overridden by the global flags explicitly set.
func LoadConfig() (*config.Config, error) {
	overrides := make(map[string]any)
	flag.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = f.Value.(flag.Getter).Get()
		}
	})
	cfg, err := config.Load(config.Options{ConfigFile: *configFile, Overrides: overrides})
	if err != nil {
		return nil, err
	}
	SetupLogging(cfg.Verbose)
	return cfg, nil
}

// SetupLogging discards the log output unless verbose.
func SetupLogging(verbose bool) {
	if verbose {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}

// session is an opened portfolio.
type session struct {
	cfg     *config.Config
	store   *storage.Adapter
	tracker *selftrack.Tracker
}

// openSession loads the configuration, opens the storage and boots the portfolio.
func openSession(ctx context.Context) (*session, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(ctx, cfg.StorageOptions())
	if err != nil {
		return nil, err
	}
	tracker, err := selftrack.Boot(ctx, store)
	if err != nil {
		store.Close()
		return nil, err
	}
	return &session{cfg: cfg, store: store, tracker: tracker}, nil
}

func (s *session) Close() error { return s.store.Close() }

// exitStatus reports err on stderr and returns the matching exit status.
func exitStatus(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, selftrack.ErrRejected) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// run opens a session, calls f and closes the session.
func run(ctx context.Context, f func(s *session) error) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		return exitStatus(err)
	}
	defer s.Close()
	return exitStatus(f(s))
}

// printMarkdown prints md on stdout, rendered for the terminal if stdout is one.
func printMarkdown(md string) {
	if !isTerminal(os.Stdout) {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100), glamour.WithEmoji())
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
