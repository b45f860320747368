package dview

import (
	"fmt"
	"maps"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dview/pkg/errors"
	"github.com/arthur-debert/dview/pkg/logging"
	"github.com/arthur-debert/dview/pkg/types"
)

// entryFor resolves a loader name to its published show capability
func (o *rootOptions) entryFor(loader string) (types.ShowFunc, error) {
	if show, ok := o.app.Entries.Lookup(loader); ok {
		return show, nil
	}
	if _, err := o.app.Catalog.Get(loader); err != nil {
		return nil, err
	}
	return nil, errors.Newf(errors.ErrLoaderNoShow, MsgErrLoaderNoShow, loader).
		WithDetail("loader", loader)
}

// previewRows returns the flag value, or the configured default when unset
func (o *rootOptions) previewRows(cmd *cobra.Command, rows int) (int, error) {
	if !cmd.Flags().Changed("rows") {
		return o.app.Config.Preview.Rows, nil
	}
	if rows < 0 {
		return 0, errors.New(errors.ErrInvalidInput, MsgErrBadRows)
	}
	return rows, nil
}

func newShowCmd(o *rootOptions) *cobra.Command {
	var (
		name string
		rows int
	)

	cmd := &cobra.Command{
		Use:               "show <loader> <path>... [key=value...]",
		Short:             MsgShowShort,
		Long:              MsgShowLong,
		Example:           MsgShowExample,
		GroupID:           "data",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: o.loaderCompletion(true),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.show")

			loader := args[0]
			show, err := o.entryFor(loader)
			if err != nil {
				return err
			}

			paths, params := splitArgs(args[1:])
			if len(paths) == 0 {
				return errors.New(errors.ErrInvalidInput, MsgErrNoSource)
			}
			if name != "" {
				if len(paths) > 1 {
					return errors.New(errors.ErrInvalidInput, MsgErrNameWithPaths)
				}
				params["name"] = name
			}

			limit, err := o.previewRows(cmd, rows)
			if err != nil {
				return err
			}

			r := o.renderer(cmd)
			for _, path := range paths {
				inst, err := show(cmd.Context(), types.Source{Path: path, Params: maps.Clone(params)})
				if err != nil {
					return err
				}
				logger.Debug().Str("id", inst.ID).Str("path", path).Msg("Instance shown")

				title := fmt.Sprintf(MsgInstanceTitle, inst.ID, inst.Name, inst.Loader)
				if err := r.RenderDataset(title, inst.Dataset.Head(limit), inst.Dataset.Len()); err != nil {
					return err
				}
			}

			if len(paths) > 1 {
				return r.RenderInstances(o.app.Store.List())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", MsgFlagName)
	cmd.Flags().IntVarP(&rows, "rows", "n", 0, MsgFlagRows)
	return cmd
}

func newPreviewCmd(o *rootOptions) *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:               "preview <loader> [path] [key=value...]",
		Short:             MsgPreviewShort,
		Long:              MsgPreviewLong,
		GroupID:           "data",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: o.loaderCompletion(false),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := o.app.Catalog.Get(args[0])
			if err != nil {
				return err
			}

			paths, params := splitArgs(args[1:])
			if len(paths) > 1 {
				return errors.Newf(errors.ErrInvalidInput, "preview takes one source, got %d", len(paths))
			}
			src := types.Source{Params: params}
			if len(paths) == 1 {
				src.Path = paths[0]
			}

			limit, err := o.previewRows(cmd, rows)
			if err != nil {
				return err
			}

			ds, err := desc.Load(cmd.Context(), src)
			if err != nil {
				return err
			}

			title := desc.Name
			if dn := src.DisplayName(); dn != "" {
				title = fmt.Sprintf(MsgPreviewTitle, dn, desc.Name)
			}
			return o.renderer(cmd).RenderDataset(title, ds.Head(limit), ds.Len())
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "n", 0, MsgFlagRows)
	return cmd
}

func newInstancesCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "instances",
		Short:   MsgInstancesShort,
		GroupID: "data",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.renderer(cmd).RenderInstances(o.app.Store.List())
		},
	}
}
