package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/strx/core/config"
	mdwerror "github.com/msto63/strx/core/error"
	"github.com/msto63/strx/core/errors"
	"github.com/msto63/strx/core/log"
	"github.com/msto63/strx/utils/stringx"
)

// defaults are the configuration values used when neither a file nor the
// environment sets them
var defaults = map[string]interface{}{
	"log.level":                  "warn",
	"log.format":                 "text",
	"pad.string":                 stringx.DefaultPadString,
	"words.delimiters":           stringx.DefaultWordDelimiters,
	"number.decimals":            0,
	"number.decimal_point":       ".",
	"number.thousands_separator": ",",
}

var errorPrefix = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))

// app carries the state shared by all subcommands of one invocation
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string

	cfg    *config.Config
	logger *log.Logger
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{logger: log.Discard}

	root := &cobra.Command{
		Use:   "strx",
		Short: "String transformations from the command line",
		Long: `strx applies string transformations to its argument or to standard input.

Input is taken from the single positional argument. Without an argument, or
with "-", standard input is read and one trailing newline is removed.

Configuration is read from strx.toml or strx.yaml in the working directory
or the user configuration directory; STRX_* environment variables override
it (for example STRX_NUMBER_DECIMALS=2).`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: strx.toml or strx.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text, console, json or logfmt")

	root.AddCommand(
		newUpperCmd(a),
		newLowerCmd(a),
		newCapitalizeCmd(a),
		newCapitalizeWordsCmd(a),
		newPadCmd(a, "pad-left", stringx.PadLeft),
		newPadCmd(a, "pad-right", stringx.PadRight),
		newRepeatCmd(a),
		newReverseCmd(a),
		newReplaceCmd(a),
		newSpliceCmd(a),
		newFormatNumberCmd(a),
		newToIntCmd(a),
		newVersionCmd(),
	)

	return root, a
}

// Execute runs the command line and returns the process exit status
func Execute() int {
	root, a := newRootCmd()
	return run(root, a)
}

func run(root *cobra.Command, a *app) int {
	err := root.Execute()
	if err == nil {
		return 0
	}

	a.logger.LogError(err)
	printError(root.ErrOrStderr(), err)
	return ExitCode(err)
}

// ExitCode returns the process exit status for err
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return mdwerror.GetCode(err).ExitCode()
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorPrefix.Render("error:"), err)
}

// setup loads the configuration and builds the request logger
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := log.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		return errors.ConfigInvalid("log.level", cfg.GetString("log.level"), "one of trace, debug, info, warn, error")
	}
	if a.verbose {
		level = log.LevelDebug
	}

	format, err := a.resolveLogFormat()
	if err != nil {
		return err
	}

	a.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "strx",
	}).WithRequestID(uuid.NewString()).WithField("command", cmd.Name())

	a.logger.Debug("configuration loaded", log.String("config_file", cfg.FilePath()))
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.cfgFile != "" {
		return config.LoadWithOptions(a.cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: "STRX",
			Defaults:  defaults,
		})
	}

	opts := config.DefaultDiscoveryOptions()
	opts.Defaults = defaults
	return config.Discover(opts)
}

func (a *app) resolveLogFormat() (log.Format, error) {
	if a.logFormat != "" {
		format, err := log.ParseFormat(a.logFormat)
		if err != nil {
			return format, errors.InvalidInput(errors.ModuleCLI, "log-format", a.logFormat, "one of text, console, json, logfmt")
		}
		return format, nil
	}

	value := a.cfg.GetString("log.format")
	format, err := log.ParseFormat(value)
	if err != nil {
		return format, errors.ConfigInvalid("log.format", value, "one of text, console, json, logfmt")
	}
	return format, nil
}

// readInput returns the positional argument, or standard input when there
// is none or it is "-"
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.OperationFailed(errors.ModuleCLI, "read-input", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// transform runs fn on the command input and prints its result
func (a *app) transform(fn func(string) (string, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		input, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		timer := a.logger.StartTimer(cmd.Name()).WithField("input_bytes", len(input))
		result, err := fn(input)
		if err != nil {
			// run logs err itself
			timer.WithField("failed", true).Stop()
			return err
		}
		timer.Stop()

		_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
		return err
	}
}

// pure adapts a transformation that cannot fail
func pure(fn func(string) string) func(string) (string, error) {
	return func(s string) (string, error) {
		return fn(s), nil
	}
}

var inputArgs = cobra.MaximumNArgs(1)
