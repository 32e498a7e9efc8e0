package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/selftrack"
	"github.com/etnz/selftrack/renderer"
	"github.com/google/subcommands"
)

type hobbiesCmd struct{}

func (*hobbiesCmd) Name() string     { return "hobbies" }
func (*hobbiesCmd) Synopsis() string { return "list the hobbies" }
func (*hobbiesCmd) Usage() string {
	return `selftrack hobbies

  Lists the hobbies with their id.
`
}
func (*hobbiesCmd) SetFlags(*flag.FlagSet) {}

func (*hobbiesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(s *session) error {
		printMarkdown(renderer.HobbiesMarkdown(s.tracker.State().Hobbies))
		return nil
	})
}

type addHobbyCmd struct {
	icon string
}

func (*addHobbyCmd) Name() string     { return "add-hobby" }
func (*addHobbyCmd) Synopsis() string { return "add a hobby" }
func (*addHobbyCmd) Usage() string {
	return `selftrack add-hobby [-icon <glyph>] <name>...

  Adds a hobby. The words of the name are joined with spaces.

Usage Examples:
$ selftrack add-hobby -icon 🎸 Guitar
`
}
func (c *addHobbyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.icon, "icon", "⭐", "Short glyph displayed next to the hobby")
}

func (c *addHobbyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.Join(f.Args(), " ")
	return run(ctx, func(s *session) error {
		h, err := s.tracker.AddHobby(ctx, selftrack.Hobby{Name: name, Icon: c.icon})
		if err != nil {
			return err
		}
		fmt.Printf("✅ Added hobby %s %s (%s)\n", h.Icon, h.Name, h.ID)
		return nil
	})
}

type rmHobbyCmd struct{}

func (*rmHobbyCmd) Name() string     { return "rm-hobby" }
func (*rmHobbyCmd) Synopsis() string { return "remove hobbies" }
func (*rmHobbyCmd) Usage() string {
	return `selftrack rm-hobby <id>...

  Removes the hobbies with these ids. Unknown ids are reported but are not an error.
`
}
func (*rmHobbyCmd) SetFlags(*flag.FlagSet) {}

func (*rmHobbyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return removeAll(ctx, f.Args(), "hobby", func(s *session) func(context.Context, string) (bool, error) {
		return s.tracker.RemoveHobby
	})
}
