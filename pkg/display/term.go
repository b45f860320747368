package display

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/dview/pkg/types"
)

// termRenderer renders boxed tables with pterm and styled titles with lipgloss
type termRenderer struct {
	w io.Writer
}

func (r *termRenderer) table(header []string, rows [][]string) error {
	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, header)
	data = append(data, rows...)

	out, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(data).
		Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.w, out)
	return err
}

func (r *termRenderer) RenderDataset(title string, ds *types.Dataset, total int) error {
	if title != "" {
		fmt.Fprintln(r.w, TitleStyle.Render(title))
	}
	if len(ds.Columns) == 0 {
		_, err := fmt.Fprintln(r.w, MutedStyle.Render("(empty dataset)"))
		return err
	}
	if err := r.table(ds.Columns, ds.Rows); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.w, MutedStyle.Render(footer(ds.Len(), total)))
	return err
}

func (r *termRenderer) RenderInstances(instances []*types.Instance) error {
	if len(instances) == 0 {
		_, err := fmt.Fprintln(r.w, MutedStyle.Render("No instances."))
		return err
	}
	return r.table(instanceHeader, instanceRows(instances))
}

func (r *termRenderer) RenderLoaders(rows []LoaderRow) error {
	fmt.Fprintln(r.w, TitleStyle.Render("Loaders"))
	for _, row := range rows {
		entry := MutedStyle.Render("(load only)")
		if row.Entry != "" {
			entry = EntryStyle.Render(row.Entry)
		}
		if _, err := fmt.Fprintf(r.w, "  %-12s %-20s %s\n", row.Name, entry, row.Summary); err != nil {
			return err
		}
	}
	return nil
}

func (r *termRenderer) RenderMarkdown(content string) error {
	_, err := fmt.Fprint(r.w, NewMarkdownRenderer().Render(content))
	return err
}

func (r *termRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.w, ErrorStyle.Render("Error: ")+err.Error())
	return werr
}
