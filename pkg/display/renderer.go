package display

import (
	"io"
	"strings"

	"github.com/arthur-debert/dview/pkg/types"
)

// LoaderRow is one line of the loader listing
type LoaderRow struct {
	Name    string `json:"name"`
	Entry   string `json:"entry,omitempty"`
	Summary string `json:"summary"`
}

// Renderer writes command results in one output format
type Renderer interface {
	// RenderDataset prints ds; total is the row count before truncation
	RenderDataset(title string, ds *types.Dataset, total int) error
	RenderInstances(instances []*types.Instance) error
	RenderLoaders(rows []LoaderRow) error
	RenderMarkdown(content string) error
	RenderError(err error) error
}

// New returns the renderer for format. FormatAuto is treated as text;
// callers resolve it first.
func New(format Format, w io.Writer) Renderer {
	switch format {
	case FormatTerminal:
		return &termRenderer{w: w}
	case FormatJSON:
		return newJSONRenderer(w)
	default:
		return &textRenderer{w: w}
	}
}

// Summary returns the first line of prose in a markdown description
func Summary(description string) string {
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "|") {
			continue
		}
		return line
	}
	return ""
}

// instanceRows flattens instances for tabular output
func instanceRows(instances []*types.Instance) [][]string {
	rows := make([][]string, 0, len(instances))
	for _, inst := range instances {
		rows = append(rows, []string{
			inst.ID,
			inst.Name,
			inst.Loader,
			inst.Source.Path,
			itoa(inst.Dataset.Len()),
			itoa(len(inst.Dataset.Columns)),
		})
	}
	return rows
}

var instanceHeader = []string{"id", "name", "loader", "source", "rows", "columns"}
