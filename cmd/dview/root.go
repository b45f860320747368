package dview

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dview/internal/version"
	"github.com/arthur-debert/dview/pkg/core"
	"github.com/arthur-debert/dview/pkg/display"
	"github.com/arthur-debert/dview/pkg/logging"
)

// rootOptions carries the initialised app and the global flags to
// every subcommand
type rootOptions struct {
	app        *core.App
	verbosity  int
	formatName string
	format     display.Format
}

// renderer returns the renderer for the command's output stream
func (o *rootOptions) renderer(cmd *cobra.Command) display.Renderer {
	return newRenderer(o.format, cmd.OutOrStdout())
}

// newRenderer resolves FormatAuto against out; writers that are not
// files get plain text
func newRenderer(format display.Format, out io.Writer) display.Renderer {
	if f, ok := out.(*os.File); ok {
		format = display.Resolve(format, f)
	} else if format == display.FormatAuto {
		format = display.FormatText
	}
	return display.New(format, out)
}

// PrintError reports a failed execution on the command's error stream,
// honouring --format. An unparsable format falls back to auto.
func PrintError(rootCmd *cobra.Command, err error) {
	format := display.FormatAuto
	if name, ferr := rootCmd.PersistentFlags().GetString("format"); ferr == nil {
		if parsed, perr := display.ParseFormat(name); perr == nil {
			format = parsed
		}
	}
	_ = newRenderer(format, rootCmd.ErrOrStderr()).RenderError(err)
}

// NewRootCmd creates and returns the root command around an initialised app
func NewRootCmd(app *core.App) *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{app: app}

	rootCmd := &cobra.Command{
		Use:     "dview",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			format, err := display.ParseFormat(opts.formatName)
			if err != nil {
				return err
			}
			opts.format = format
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.formatName, "format", "auto", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "data", Title: "DATA:"})
	rootCmd.AddGroup(&cobra.Group{ID: "loaders", Title: "LOADERS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newPreviewCmd(opts))
	rootCmd.AddCommand(newInstancesCmd(opts))
	rootCmd.AddCommand(newLoadersCmd(opts))
	rootCmd.AddCommand(newEntriesCmd(opts))
	rootCmd.AddCommand(newDescribeCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
