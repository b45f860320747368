package display

import "github.com/charmbracelet/glamour"

// MarkdownRenderer renders loader descriptions for the terminal using glamour
type MarkdownRenderer struct {
	Style string // "auto", "dark", "light", "notty" or a path to a style file
	Width int    // 0 keeps glamour's default
}

// NewMarkdownRenderer creates a renderer with automatic style detection
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Style: "auto"}
}

// Render converts markdown to styled terminal output, returning content
// unchanged if glamour fails
func (r *MarkdownRenderer) Render(content string) string {
	var options []glamour.TermRendererOption

	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}

	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
