// Package renderer renders a portfolio as markdown, and exports it to HTML
// and spreadsheets.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/selftrack"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates = must(fs.Sub(templatesFS, "templates"))

// partials are available to every view under their own name.
var partials = map[string]string{
	"stats":        "stats.md",
	"academics":    "academics.md",
	"achievements": "achievements.md",
	"experiences":  "experiences.md",
	"hobbies":      "hobbies.md",
}

// Options control how a view is rendered.
type Options struct {
	// InlineImages renders image references as markdown images. Otherwise
	// data URLs are only mentioned, to keep the terminal readable.
	InlineImages bool
}

// view is the data passed to all templates.
type view struct {
	State    selftrack.AppState
	Stats    selftrack.Stats
	Feedback selftrack.Feedback
}

func newView(s selftrack.AppState) view {
	return view{State: s, Stats: selftrack.Summary(s)}
}

// DashboardMarkdown renders the overview: headline figures, GPA history, latest achievements and hobbies.
func DashboardMarkdown(s selftrack.AppState) string {
	return renderTemplate("dashboard.md", Options{}, newView(s))
}

// ProfileMarkdown renders the profile card.
func ProfileMarkdown(s selftrack.AppState, opts Options) string {
	return renderTemplate("profile.md", opts, newView(s))
}

// AchievementsMarkdown renders a list of achievements.
func AchievementsMarkdown(list []selftrack.Achievement, opts Options) string {
	return renderTemplate("achievements.md", opts, view{State: selftrack.AppState{Achievements: list}})
}

// ExperiencesMarkdown renders a list of experiences.
func ExperiencesMarkdown(list []selftrack.Experience) string {
	return renderTemplate("experiences.md", Options{}, view{State: selftrack.AppState{Experiences: list}})
}

// AcademicsMarkdown renders the academic records with the GPA figures.
func AcademicsMarkdown(s selftrack.AppState) string {
	return renderTemplate("stats.md", Options{}, newView(s)) + "\n" +
		renderTemplate("academics.md", Options{}, newView(s))
}

// HobbiesMarkdown renders the hobbies.
func HobbiesMarkdown(list []selftrack.Hobby) string {
	return renderTemplate("hobbies.md", Options{}, view{State: selftrack.AppState{Hobbies: list}})
}

// FeedbackMarkdown renders a mentor feedback.
func FeedbackMarkdown(fb selftrack.Feedback) string {
	return renderTemplate("feedback.md", Options{}, view{Feedback: fb})
}

// PortfolioMarkdown renders the whole portfolio as a single document.
func PortfolioMarkdown(s selftrack.AppState, opts Options) string {
	return renderTemplate("portfolio.md", opts, newView(s))
}

func funcs(opts Options) template.FuncMap {
	return template.FuncMap{
		"cell": cell,
		"gpa":  func(v float64) string { return selftrack.GPA(v).String() },
		"image": func(alt, ref string) string {
			switch {
			case ref == "":
				return ""
			case opts.InlineImages:
				return fmt.Sprintf("![%s](%s)", alt, ref)
			case strings.HasPrefix(ref, "data:"):
				return "attached"
			default:
				return fmt.Sprintf("[%s](%s)", strings.ToLower(alt), ref)
			}
		},
		"latest": func(list []selftrack.Achievement, n int) []selftrack.Achievement {
			if len(list) > n {
				return list[:n]
			}
			return list
		},
	}
}

// cell escapes a value for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// renderTemplate renders the main template file, with all the partials available.
func renderTemplate(mainFile string, opts Options, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(mainFile).Funcs(funcs(opts)).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, mainFile, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", mainFile, err)
	}
	return b.String()
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

