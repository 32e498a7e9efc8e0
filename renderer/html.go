package renderer

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/etnz/selftrack"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML converts a markdown document into an HTML fragment.
func HTML(md string) (string, error) {
	var b bytes.Buffer
	if err := markdown.Convert([]byte(md), &b); err != nil {
		return "", fmt.Errorf("could not convert markdown: %w", err)
	}
	return b.String(), nil
}

// WriteHTMLPage writes the whole portfolio as a standalone HTML page, images inlined.
func WriteHTMLPage(w io.Writer, s selftrack.AppState) error {
	body, err := HTML(PortfolioMarkdown(s, Options{InlineImages: true}))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`, html.EscapeString(s.Profile.Name), body)
	return err
}
