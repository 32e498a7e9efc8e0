package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/selftrack"
	"github.com/etnz/selftrack/renderer"
	"github.com/google/subcommands"
)

type experiencesCmd struct {
	typ string
}

func (*experiencesCmd) Name() string     { return "experiences" }
func (*experiencesCmd) Synopsis() string { return "list the experiences" }
func (*experiencesCmd) Usage() string {
	return `selftrack experiences [-type <work|organization|volunteer>]

  Lists the experiences, most recent first.
`
}
func (c *experiencesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", "", "Only list experiences of this type")
}

func (c *experiencesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(s *session) error {
		list := s.tracker.State().Experiences
		if c.typ != "" {
			t, err := selftrack.ParseExperienceType(c.typ)
			if err != nil {
				return fmt.Errorf("%w: %v", selftrack.ErrRejected, err)
			}
			list = selftrack.FilterExperiences(list, t)
		}
		printMarkdown(renderer.ExperiencesMarkdown(list))
		return nil
	})
}

type addExperienceCmd struct {
	role, organization, location, period, typ, description string
}

func (*addExperienceCmd) Name() string     { return "add-experience" }
func (*addExperienceCmd) Synopsis() string { return "record a new experience" }
func (*addExperienceCmd) Usage() string {
	return `selftrack add-experience -role <role> -org <organization> [-location <place>] [-period <label>] [-type <work|organization|volunteer>] [-description <text>]

  Records a new experience. It is listed first.

Usage Examples:
$ selftrack add-experience -role "Mentor" -org "Coding Camp" -period "2024" -type volunteer
`
}

func (c *addExperienceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.role, "role", "", "Role held (required)")
	f.StringVar(&c.organization, "org", "", "Company or organization (required)")
	f.StringVar(&c.location, "location", "", "Location")
	f.StringVar(&c.period, "period", "", "Free text period label, e.g. 'Jul 2024 - Sep 2024'")
	f.StringVar(&c.typ, "type", selftrack.Work.String(), "Type: work, organization or volunteer")
	f.StringVar(&c.description, "description", "", "Short description")
}

func (c *addExperienceCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := selftrack.ParseExperienceType(c.typ)
	if err != nil {
		return exitStatus(fmt.Errorf("%w: %v", selftrack.ErrRejected, err))
	}
	return run(ctx, func(s *session) error {
		e, err := s.tracker.AddExperience(ctx, selftrack.Experience{
			Role:         c.role,
			Organization: c.organization,
			Location:     c.location,
			Period:       c.period,
			Type:         t,
			Description:  c.description,
		})
		if err != nil {
			return err
		}
		fmt.Printf("✅ Added %s experience %q at %q (%s)\n", e.Type, e.Role, e.Organization, e.ID)
		return nil
	})
}

type rmExperienceCmd struct{}

func (*rmExperienceCmd) Name() string     { return "rm-experience" }
func (*rmExperienceCmd) Synopsis() string { return "remove experiences" }
func (*rmExperienceCmd) Usage() string {
	return `selftrack rm-experience <id>...

  Removes the experiences with these ids. Unknown ids are reported but are not an error.
`
}
func (*rmExperienceCmd) SetFlags(*flag.FlagSet) {}

func (*rmExperienceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return removeAll(ctx, f.Args(), "experience", func(s *session) func(context.Context, string) (bool, error) {
		return s.tracker.RemoveExperience
	})
}
