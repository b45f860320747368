package dview

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Preview tabular data through named loaders"
	MsgLoadersShort    = "List available loaders and their entries"
	MsgEntriesShort    = "List the published entry symbols"
	MsgShowShort       = "Load sources through a loader entry and register them as instances"
	MsgPreviewShort    = "Preview a source without registering an instance"
	MsgPreviewLong     = "Preview loads a source through any loader, including load-only ones, and prints the first rows."
	MsgInstancesShort  = "List instances registered in this session"
	MsgDescribeShort   = "Show the documentation of a loader"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgInstanceTitle = "[%s] %s (%s)"
	MsgPreviewTitle  = "%s (%s)"
	MsgVersionFormat = "dview version %s\n  commit: %s\n  built:  %s\n"
	MsgNoEntries     = "No entries published."

	// Error messages
	MsgErrNoCommand     = "no command specified"
	MsgErrNoSource      = "no source path given"
	MsgErrLoaderNoShow  = "loader %q has no show capability, use preview instead"
	MsgErrBadRows       = "--rows must be zero or positive"
	MsgErrNameWithPaths = "--name applies to a single source; use name=<value> to name every instance"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagRows    = "Number of rows to preview, 0 for all (default from config preview.rows)"
	MsgFlagName    = "Instance name for a single source (defaults to the source file name)"
)

const MsgShowExample = `  # Show a CSV file
  dview show csv people.csv

  # Semicolon separated, with an explicit instance name
  dview show csv export.csv delimiter=";" name=export

  # Several access logs at once, as JSON
  dview show access_log --format json access.log access.log.1.gz`

const MsgCompletionLong = `To load completions:

Bash:
  $ source <(dview completion bash)

Zsh:
  $ dview completion zsh > "${fpath[1]}/_dview"

Fish:
  $ dview completion fish | source

PowerShell:
  PS> dview completion powershell | Out-String | Invoke-Expression`

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/show-long.txt
	msgShowLongRaw string
	MsgShowLong    = strings.TrimSpace(msgShowLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
