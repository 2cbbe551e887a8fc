package st7735setup

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/st7735-setup/internal/version"
	"github.com/arthur-debert/st7735-setup/pkg/config"
	"github.com/arthur-debert/st7735-setup/pkg/datastore"
	"github.com/arthur-debert/st7735-setup/pkg/errors"
	"github.com/arthur-debert/st7735-setup/pkg/executor"
	"github.com/arthur-debert/st7735-setup/pkg/filesystem"
	"github.com/arthur-debert/st7735-setup/pkg/logging"
	"github.com/arthur-debert/st7735-setup/pkg/paths"
	"github.com/arthur-debert/st7735-setup/pkg/setup"
	"github.com/arthur-debert/st7735-setup/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// RunnerFactory builds the command runner used by a run
type RunnerFactory func(stdout, stderr io.Writer, dryRun bool) executor.Runner

func defaultRunner(stdout, stderr io.Writer, dryRun bool) executor.Runner {
	return executor.NewCommandExecutor(stdout, stderr, dryRun)
}

type globalOptions struct {
	verbosity  int
	dryRun     bool
	configFile string
	format     string

	root      string
	preflight bool
	samples   bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultRunner)
}

func newRootCmd(newRunner RunnerFactory) *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "st7735-setup",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd, opts, newRunner)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "auto", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp))

	rootCmd.Flags().StringVar(&opts.root, "root", "", MsgFlagRoot)
	rootCmd.Flags().BoolVar(&opts.preflight, "preflight", false, MsgFlagPreflight)
	rootCmd.Flags().BoolVar(&opts.samples, "samples", false, MsgFlagSamples)
	_ = rootCmd.MarkFlagDirname("root")

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newVersionCmd(opts))
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// loadConfig layers flag overrides over the file and environment settings.
// Only flags the user actually set override anything.
func loadConfig(cmd *cobra.Command, opts *globalOptions) (*config.Config, error) {
	overrides := map[string]interface{}{}
	if f := cmd.Flags().Lookup("root"); f != nil && f.Changed {
		overrides["workspace.root"] = opts.root
	}
	if f := cmd.Flags().Lookup("preflight"); f != nil && f.Changed {
		overrides["preflight"] = opts.preflight
	}
	if f := cmd.Flags().Lookup("samples"); f != nil && f.Changed {
		overrides["samples.enabled"] = opts.samples
	}

	cfg, err := config.Load(config.LoadOptions{File: opts.configFile, Overrides: overrides})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// ErrorFormat returns the format errors from an executed root command should
// be rendered in. It is FormatAuto when --format was never parsed or invalid.
func ErrorFormat(rootCmd *cobra.Command) ui.Format {
	value, err := rootCmd.PersistentFlags().GetString("format")
	if err != nil {
		return ui.FormatAuto
	}
	format, err := ui.ParseFormat(value)
	if err != nil {
		return ui.FormatAuto
	}
	return format
}

func outputFormat(cmd *cobra.Command, opts *globalOptions) (ui.Format, error) {
	format, err := ui.ParseFormat(opts.format)
	if err != nil {
		return format, err
	}
	return ui.Resolve(format, cmd.OutOrStdout()), nil
}

func runSetup(cmd *cobra.Command, opts *globalOptions, newRunner RunnerFactory) error {
	logger := logging.GetLogger("cmd.setup")

	format, err := outputFormat(cmd, opts)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	toolOut := out
	if format == ui.FormatJSON {
		// keep stdout a single JSON document
		toolOut = cmd.ErrOrStderr()
	}

	proc, err := setup.New(setup.Options{
		Config:   cfg,
		Runner:   newRunner(toolOut, cmd.ErrOrStderr(), opts.dryRun),
		Reporter: ui.NewReporter(out, format, opts.dryRun),
		DryRun:   opts.dryRun,
	})
	if err != nil {
		return err
	}

	done := logging.LogOperationStart(logger, "setup")
	res, runErr := proc.Run(ctx)
	done()

	recordRun(res)

	switch {
	case format == ui.FormatJSON:
		if err := ui.WriteJSON(out, res); err != nil {
			logger.Error().Err(err).Msg("Failed to write result")
		}
	case opts.dryRun:
		_, _ = io.WriteString(out, MsgDryRunNotice+"\n")
	}

	if runErr != nil && errors.HasErrorCode(runErr, errors.ErrInterrupted) {
		logger.Warn().Str("step", string(res.FailedStep)).Msg("Interrupted, checkout may be incomplete")
	}
	return runErr
}

// recordRun appends res to the run history. History problems are logged and
// never change the outcome of the run.
func recordRun(res *setup.Result) {
	if res == nil {
		return
	}
	store := datastore.New(filesystem.NewOS(), paths.RunsFile())
	if err := store.RecordRun(res.Record()); err != nil {
		logger := logging.GetLogger("cmd.setup")
		logger.Warn().Err(err).Msg(MsgErrRecordRun)
	}
}
