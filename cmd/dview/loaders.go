package dview

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dview/pkg/display"
	"github.com/arthur-debert/dview/pkg/entries"
)

// loaderRows lists every loader with its entry symbol when it has one
func (o *rootOptions) loaderRows() []display.LoaderRow {
	var rows []display.LoaderRow
	for _, name := range o.app.Catalog.Names() {
		desc, err := o.app.Catalog.Get(name)
		if err != nil {
			continue
		}
		row := display.LoaderRow{Name: name, Summary: display.Summary(desc.Description)}
		if _, ok := o.app.Entries.Lookup(name); ok {
			row.Entry = entries.Symbol(name)
		}
		rows = append(rows, row)
	}
	return rows
}

// loaderCompletion completes the loader argument; showOnly restricts it
// to loaders with an entry
func (o *rootOptions) loaderCompletion(showOnly bool) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveDefault
		}
		var names []string
		for _, row := range o.loaderRows() {
			if showOnly && row.Entry == "" {
				continue
			}
			names = append(names, fmt.Sprintf("%s\t%s", row.Name, row.Summary))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

func newLoadersCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "loaders",
		Short:   MsgLoadersShort,
		GroupID: "loaders",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.renderer(cmd).RenderLoaders(o.loaderRows())
		},
	}
}

func newEntriesCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "entries",
		Short:   MsgEntriesShort,
		GroupID: "loaders",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows []display.LoaderRow
			for _, row := range o.loaderRows() {
				if row.Entry != "" {
					rows = append(rows, row)
				}
			}
			if len(rows) == 0 && o.format != display.FormatJSON {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), MsgNoEntries)
				return err
			}
			return o.renderer(cmd).RenderLoaders(rows)
		},
	}
}

func newDescribeCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "describe <loader>",
		Short:             MsgDescribeShort,
		GroupID:           "loaders",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: o.loaderCompletion(false),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := o.app.Catalog.Get(args[0])
			if err != nil {
				return err
			}
			return o.renderer(cmd).RenderMarkdown(desc.Description)
		},
	}
}
