package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/selftrack"
	"github.com/etnz/selftrack/renderer"
	"github.com/google/subcommands"
)

type achievementsCmd struct {
	category string
	inline   bool
}

func (*achievementsCmd) Name() string     { return "achievements" }
func (*achievementsCmd) Synopsis() string { return "list the achievements" }
func (*achievementsCmd) Usage() string {
	return `selftrack achievements [-category <campus|national|international>] [-inline]

  Lists the achievements, most recent first.
`
}
func (c *achievementsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Only list achievements of this category")
	f.BoolVar(&c.inline, "inline", false, "Render certificates inline instead of as links")
}

func (c *achievementsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(s *session) error {
		list := s.tracker.State().Achievements
		if c.category != "" {
			cat, err := selftrack.ParseCategory(c.category)
			if err != nil {
				return fmt.Errorf("%w: %v", selftrack.ErrRejected, err)
			}
			list = selftrack.FilterAchievements(list, cat)
		}
		printMarkdown(renderer.AchievementsMarkdown(list, renderer.Options{InlineImages: c.inline}))
		return nil
	})
}

type addAchievementCmd struct {
	title, issuer, year, description, category, cert string
}

func (*addAchievementCmd) Name() string     { return "add-achievement" }
func (*addAchievementCmd) Synopsis() string { return "record a new achievement" }
func (*addAchievementCmd) Usage() string {
	return `selftrack add-achievement -title <title> -issuer <issuer> [-year <label>] [-category <campus|national|international>] [-description <text>] [-cert <url|image file>]

  Records a new achievement. It is listed first.

Usage Examples:
$ selftrack add-achievement -title "Best Paper" -issuer "IEEE" -year 2024 -category international -cert ./certificate.png
`
}

func (c *addAchievementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Title of the achievement (required)")
	f.StringVar(&c.issuer, "issuer", "", "Issuing body (required)")
	f.StringVar(&c.year, "year", "", "Free text date label, e.g. 'Okt 2023'")
	f.StringVar(&c.description, "description", "", "Short description")
	f.StringVar(&c.category, "category", selftrack.Campus.String(), "Category: campus, national or international")
	f.StringVar(&c.cert, "cert", "", "Certificate image: a URL or an image file to embed")
}

func (c *addAchievementCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := c.achievement()
	if err != nil {
		return exitStatus(err)
	}
	return run(ctx, func(s *session) error {
		a, err := s.tracker.AddAchievement(ctx, a)
		if err != nil {
			return err
		}
		fmt.Printf("✅ Added achievement %q (%s)\n", a.Title, a.ID)
		return nil
	})
}

func (c *addAchievementCmd) achievement() (selftrack.Achievement, error) {
	cat, err := selftrack.ParseCategory(c.category)
	if err != nil {
		return selftrack.Achievement{}, fmt.Errorf("%w: %v", selftrack.ErrRejected, err)
	}
	cert, err := imageRef(c.cert)
	if err != nil {
		return selftrack.Achievement{}, err
	}
	return selftrack.Achievement{
		Title:          c.title,
		Issuer:         c.issuer,
		Year:           c.year,
		Description:    c.description,
		Category:       cat,
		CertificateURL: cert,
	}, nil
}

// imageRef returns ref unchanged if it is a URL, or the data URL of the image file it names.
func imageRef(ref string) (string, error) {
	switch {
	case ref == "":
		return "", nil
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"), strings.HasPrefix(ref, "data:"):
		return ref, nil
	}
	if _, err := os.Stat(ref); err != nil {
		return "", fmt.Errorf("%w: %q is neither a URL nor a readable file", selftrack.ErrRejected, ref)
	}
	return selftrack.LoadImage(ref)
}

type rmAchievementCmd struct{}

func (*rmAchievementCmd) Name() string     { return "rm-achievement" }
func (*rmAchievementCmd) Synopsis() string { return "remove achievements" }
func (*rmAchievementCmd) Usage() string {
	return `selftrack rm-achievement <id>...

  Removes the achievements with these ids. Unknown ids are reported but are not an error.
`
}
func (*rmAchievementCmd) SetFlags(*flag.FlagSet) {}

func (*rmAchievementCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return removeAll(ctx, f.Args(), "achievement", func(s *session) func(context.Context, string) (bool, error) {
		return s.tracker.RemoveAchievement
	})
}

// removeAll removes every id with the remover of the session.
func removeAll(ctx context.Context, ids []string, kind string, remover func(s *session) func(context.Context, string) (bool, error)) subcommands.ExitStatus {
	if len(ids) == 0 {
		fmt.Fprintf(os.Stderr, "Error: at least one %s id is required\n", kind)
		return subcommands.ExitUsageError
	}
	return run(ctx, func(s *session) error {
		remove := remover(s)
		for _, id := range ids {
			found, err := remove(ctx, id)
			if err != nil {
				return err
			}
			if !found {
				fmt.Printf("no %s with id %q\n", kind, id)
				continue
			}
			fmt.Printf("🗑️ Removed %s %s\n", kind, id)
		}
		return nil
	})
}
