package agent

import (
	"context"
	"encoding/json"

	"github.com/etnz/selftrack"
	"github.com/etnz/selftrack/renderer"
	"google.golang.org/genai"
)

// Snapshot returns the current portfolio.
type Snapshot func() selftrack.AppState

func instruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{genai.NewPartFromText(text)}}
}

// NewMentor creates the facilitator: a mentor reading the portfolio with
// tools, and asking the experts when needed.
func NewMentor(model string, snapshot Snapshot, experts ...*Expert) *Expert {
	tools := []Function{PortfolioQuery(snapshot), PortfolioSummary(snapshot)}
	for _, e := range experts {
		tools = append(tools, e)
	}
	return &Expert{
		Name:      "Mentor",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{{FunctionDeclarations: NewDeclaration(tools)}},
			SystemInstruction: instruction(`
			You are an academic and career mentor for a university student.
			Answer the student's questions about their studies, achievements, experiences and career.

			Always check the student's portfolio with the tools before giving advice,
			and ground your answers in it: GPA history, achievements, experiences, hobbies.
			Ask the experts available as tools when the question goes beyond the portfolio.

			Be concise, concrete and encouraging. Answer in markdown.
			`),
		},
		Library: NewLibrary(tools),
	}
}

// NewCareerAdvisor creates an expert on jobs, internships, scholarships and
// competitions, grounded with Google Search.
func NewCareerAdvisor(model string) *Expert {
	return &Expert{
		Name: "CareerAdvisor",
		Description: `This is a career advisor, aware of the job market, internships,
		scholarships, student competitions and certifications, and of their recent news.
		Ask the CareerAdvisor whenever you need recent or grounded information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
			SystemInstruction: instruction(`
			You are a career advisor for university students. Use Google Search to ground
			your answers: job offers, internships, scholarships, competitions, certifications.
			Cite the sources you rely on.
			`),
		},
	}
}

// PortfolioQuery is the tool evaluating a JSONPath expression on the portfolio.
func PortfolioQuery(snapshot Snapshot) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "QueryPortfolio",
			Description: `QueryPortfolio evaluates a JSONPath expression on the student's portfolio, and returns the result as JSON.

			The portfolio is an object with the fields:
			  - profile: {name, major, university, bio, email, avatar}
			  - achievements: [{id, title, issuer, year, description, category (Campus, National or International), certificateUrl}]
			  - experiences: [{id, role, organization, location, period, type (Work, Organization or Volunteer), description}]
			  - academics: [{semester, gpa}], in chronological order
			  - hobbies: [{id, name, icon}]

			For instance "$.achievements[?(@.category == 'International')].title".`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"path": {Type: genai.TypeString, Description: "The JSONPath expression, '$' is the whole portfolio."},
				},
				Required: []string{"path"},
			},
			Response: &genai.Schema{Type: genai.TypeString, Description: "The JSON result."},
		},
		Func: func(_ context.Context, args map[string]any) (any, error) {
			path, err := stringArg(args, "path")
			if err != nil {
				return nil, err
			}
			v, err := selftrack.Query(snapshot(), path)
			if err != nil {
				return nil, err
			}
			out, err := json.Marshal(v)
			return string(out), err
		},
	}
}

// PortfolioSummary is the tool returning the whole portfolio as markdown, with the GPA figures.
func PortfolioSummary(snapshot Snapshot) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "PortfolioSummary",
			Description: "PortfolioSummary returns the whole student's portfolio as a markdown document, including the current and average GPA.",
			Response:    &genai.Schema{Type: genai.TypeString, Description: "The markdown document."},
		},
		Func: func(context.Context, map[string]any) (any, error) {
			return renderer.PortfolioMarkdown(snapshot(), renderer.Options{}), nil
		},
	}
}
