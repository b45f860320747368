package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/arthur-debert/dview/pkg/types"
)

// textRenderer renders tab-aligned plain text without any styling
type textRenderer struct {
	w io.Writer
}

func (r *textRenderer) table(header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(sanitize(row), "\t"))
	}
	return tw.Flush()
}

func (r *textRenderer) RenderDataset(title string, ds *types.Dataset, total int) error {
	if title != "" {
		fmt.Fprintf(r.w, "%s\n\n", title)
	}
	if len(ds.Columns) == 0 {
		_, err := fmt.Fprintln(r.w, "(empty dataset)")
		return err
	}
	if err := r.table(ds.Columns, ds.Rows); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.w, footer(ds.Len(), total))
	return err
}

func (r *textRenderer) RenderInstances(instances []*types.Instance) error {
	if len(instances) == 0 {
		_, err := fmt.Fprintln(r.w, "No instances.")
		return err
	}
	return r.table(instanceHeader, instanceRows(instances))
}

func (r *textRenderer) RenderLoaders(rows []LoaderRow) error {
	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		entry := row.Entry
		if entry == "" {
			entry = "-"
		}
		table = append(table, []string{row.Name, entry, row.Summary})
	}
	return r.table([]string{"loader", "entry", "summary"}, table)
}

func (r *textRenderer) RenderMarkdown(content string) error {
	_, err := fmt.Fprint(r.w, content)
	return err
}

func (r *textRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.w, "Error: %s\n", err)
	return werr
}

// sanitize keeps cells on one line so tab alignment holds
func sanitize(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = strings.NewReplacer("\t", " ", "\n", " ", "\r", "").Replace(cell)
	}
	return out
}

func footer(shown, total int) string {
	if total > shown {
		return fmt.Sprintf("%d of %d rows", shown, total)
	}
	if total == 1 {
		return "1 row"
	}
	return fmt.Sprintf("%d rows", total)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
