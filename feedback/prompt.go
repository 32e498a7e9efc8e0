package feedback

import (
	"fmt"
	"strings"

	"github.com/etnz/selftrack"
)

// Prompt builds the request sent to the model for the portfolio s.
func Prompt(s selftrack.AppState) string {
	academics := make([]string, len(s.Academics))
	for i, a := range s.Academics {
		academics[i] = fmt.Sprintf("%s: %s", a.Semester, selftrack.GPA(a.GPA))
	}
	titles := make([]string, len(s.Achievements))
	for i, a := range s.Achievements {
		titles[i] = a.Title
	}
	experiences := make([]string, len(s.Experiences))
	for i, e := range s.Experiences {
		experiences[i] = fmt.Sprintf("%s at %s", e.Role, e.Organization)
	}

	var b strings.Builder
	fmt.Fprintln(&b, "Act as a professional career mentor. Here is a university student's portfolio:")
	fmt.Fprintf(&b, "Name: %s\n", s.Profile.Name)
	fmt.Fprintf(&b, "Major: %s\n", s.Profile.Major)
	fmt.Fprintf(&b, "GPA: %s\n", strings.Join(academics, ", "))
	fmt.Fprintf(&b, "Achievements: %s\n", strings.Join(titles, ", "))
	fmt.Fprintf(&b, "Experiences: %s\n", strings.Join(experiences, ", "))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Give 3 points of constructive feedback to improve this portfolio so that the student is ready for the job market.")
	fmt.Fprintln(&b, `Answer in JSON with the properties "feedback" (array of strings) and "motivation" (string).`)
	return b.String()
}
