package st7735setup

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Clone and install the ST7735 display library"
	MsgStatusShort     = "Show the state of the checkout and the last run"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"
	MsgConfigShort     = "Print the default configuration file"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Log each step without touching the filesystem or running tools"
	MsgFlagConfig    = "Config file (default $XDG_CONFIG_HOME/st7735-setup/config.toml)"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagRoot      = "Projects directory the library is cloned into (default ~/projects)"
	MsgFlagPreflight = "Check git, pip and the projects directory before changing anything"
	MsgFlagSamples   = "Write sample scripts configured for your panel"
	MsgFlagManDir    = "Write one page per command into this directory instead of stdout"

	// Status messages
	MsgDryRunNotice = "\nDRY RUN MODE - No changes were made"

	// Error messages
	MsgErrRecordRun = "Failed to record run history"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	MsgUsageTemplate string
)
