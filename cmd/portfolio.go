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

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the portfolio overview" }
func (*dashboardCmd) Usage() string {
	return `selftrack dashboard

  Shows the headline figures (current and average GPA, number of achievements,
  work and organization experiences), the GPA history, the latest achievements
  and the hobbies.
`
}
func (*dashboardCmd) SetFlags(*flag.FlagSet) {}

func (*dashboardCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(s *session) error {
		printMarkdown(renderer.DashboardMarkdown(s.tracker.State()))
		return nil
	})
}

type profileCmd struct {
	inline bool
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "show the profile" }
func (*profileCmd) Usage() string {
	return `selftrack profile [-inline]

  Shows the profile card.
`
}
func (c *profileCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.inline, "inline", false, "Render images inline instead of as links")
}

func (c *profileCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(s *session) error {
		printMarkdown(renderer.ProfileMarkdown(s.tracker.State(), renderer.Options{InlineImages: c.inline}))
		return nil
	})
}

type setProfileCmd struct {
	name, major, university, bio, email, avatar, avatarFile string
}

func (*setProfileCmd) Name() string     { return "set-profile" }
func (*setProfileCmd) Synopsis() string { return "edit the profile" }
func (*setProfileCmd) Usage() string {
	return `selftrack set-profile [-name <name>] [-major <major>] [-university <university>] [-bio <bio>] [-email <email>] [-avatar <url> | -avatar-file <image>]

  Edits the profile. Only the given fields are changed, an explicitly empty
  value clears the field.

Usage Examples:
$ selftrack set-profile -major "Sistem Informasi" -bio ""
`
}

func (c *setProfileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Full name")
	f.StringVar(&c.major, "major", "", "Study program")
	f.StringVar(&c.university, "university", "", "University")
	f.StringVar(&c.bio, "bio", "", "Short biography")
	f.StringVar(&c.email, "email", "", "Student email")
	f.StringVar(&c.avatar, "avatar", "", "Avatar image URL")
	f.StringVar(&c.avatarFile, "avatar-file", "", "Avatar image file, embedded in the portfolio")
}

func (c *setProfileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	u, err := c.update(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return run(ctx, func(s *session) error {
		if err := s.tracker.UpdateProfile(ctx, u); err != nil {
			return err
		}
		fmt.Println("✅ Profile updated.")
		return nil
	})
}

// update builds the profile update from the flags explicitly set.
func (c *setProfileCmd) update(f *flag.FlagSet) (selftrack.ProfileUpdate, error) {
	var u selftrack.ProfileUpdate
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	if len(set) == 0 {
		return u, fmt.Errorf("nothing to update, see 'selftrack help set-profile'")
	}
	if set["avatar"] && set["avatar-file"] {
		return u, fmt.Errorf("-avatar and -avatar-file are mutually exclusive")
	}
	fields := []struct {
		name  string
		value *string
		dst   **string
	}{
		{"name", &c.name, &u.Name},
		{"major", &c.major, &u.Major},
		{"university", &c.university, &u.University},
		{"bio", &c.bio, &u.Bio},
		{"email", &c.email, &u.Email},
		{"avatar", &c.avatar, &u.Avatar},
	}
	for _, fd := range fields {
		if set[fd.name] {
			*fd.dst = fd.value
		}
	}
	if set["avatar-file"] {
		img, err := selftrack.LoadImage(c.avatarFile)
		if err != nil {
			return u, err
		}
		u.Avatar = &img
	}
	return u, nil
}

type resetCmd struct {
	yes bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "replace the portfolio with the sample data" }
func (*resetCmd) Usage() string {
	return `selftrack reset -yes

  Replaces the whole portfolio with the sample data. This cannot be undone:
  export the portfolio first.
`
}
func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "Confirm the reset")
}

func (c *resetCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		fmt.Fprintln(os.Stderr, "Error: reset erases the portfolio, confirm with -yes")
		return subcommands.ExitUsageError
	}
	return run(ctx, func(s *session) error {
		if err := s.tracker.Reset(ctx); err != nil {
			return err
		}
		fmt.Println("✅ Portfolio reset to the sample data.")
		return nil
	})
}
