// Package agent runs an interactive chat with a Gemini mentor that knows the
// student's portfolio.
//
// The conversation is led by a facilitator Expert. It answers the student
// with the help of Functions: tools that read the portfolio, and other
// Experts it can ask questions to.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the chat session with the student.
type Agent struct {
	w           io.Writer
	r           *bufio.Reader
	Facilitator *Expert
	Experts     []*Expert
	// Print writes an answer, by default as is.
	Print func(w io.Writer, answer string)
}

// New creates an Agent reading the student's messages from r and writing the
// conversation in w. The facilitator can call tools and ask the experts.
func New(w io.Writer, r io.Reader, facilitator *Expert, experts ...*Expert) *Agent {
	return &Agent{
		w:           w,
		r:           bufio.NewReader(r),
		Experts:     experts,
		Facilitator: facilitator,
		Print:       func(w io.Writer, answer string) { fmt.Fprintln(w, answer) },
	}
}

// Start creates the chats of the facilitator and of every expert.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.Facilitator.Start(ctx, client)
}

const prompt = "mentor> "

// Run runs the chat until the student says 'bye' or closes the input.
// prompts are sent first, as if the student typed them.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Facilitator.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome! Ask your mentor anything about your studies. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
		}

		input = strings.TrimSpace(input)
		switch input {
		case "":
			continue
		case "bye":
			return nil
		}

		content, err := a.Facilitator.Ask(ctx, genai.NewPartFromText(input))
		if err != nil {
			return err
		}
		a.Print(a.w, Text(content))
	}
}

// Text returns the concatenated text parts of content.
func Text(content *genai.Content) string {
	var b strings.Builder
	for _, p := range content.Parts {
		if p.Thought {
			continue
		}
		b.WriteString(p.Text)
	}
	return b.String()
}
