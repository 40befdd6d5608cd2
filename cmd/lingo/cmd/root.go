package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lingo/core/config"
	"github.com/dmitrymomot/lingo/core/logger"
)

// settings holds the environment configuration. Flags override it.
type settings struct {
	LocalesDir   string `env:"LINGO_LOCALES_DIR" envDefault:"./locales"`
	BaseLanguage string `env:"LINGO_BASE_LANG" envDefault:"en"`
	LogFormat    string `env:"LINGO_LOG_FORMAT" envDefault:"text"`
}

// rootFlags carries the persistent flags shared by every subcommand.
type rootFlags struct {
	dir     string
	verbose bool
}

// runtime is the resolved environment a subcommand executes in.
type runtime struct {
	dir  string
	base string
	log  *slog.Logger
}

// Execute runs the lingo command line tool.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "lingo",
		Short: "Translation dictionary tooling",
		Long: `lingo inspects translation dictionaries on disk.

A locales directory holds one subdirectory per language with one file per
namespace, or one file per language; JSON, YAML and TOML are recognized.

Commands:
  check   validate every template in the dictionaries
  keys    list translation keys per language
  stats   report per-language coverage against a base language`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.dir, "dir", "d", "", "locales directory (default $LINGO_LOCALES_DIR or ./locales)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newKeysCmd(flags))
	cmd.AddCommand(newStatsCmd(flags))
	return cmd
}

// newRuntime resolves environment configuration and flags into the
// environment a subcommand runs in.
func newRuntime(flags *rootFlags) (runtime, error) {
	var cfg settings
	if err := config.Load(&cfg); err != nil {
		return runtime{}, err
	}

	dir := cfg.LocalesDir
	if flags.dir != "" {
		dir = flags.dir
	}

	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}
	logOpts := []logger.Option{logger.WithOutput(os.Stderr), logger.WithLevel(level)}
	if cfg.LogFormat == "json" {
		logOpts = append(logOpts, logger.WithJSON())
	} else {
		logOpts = append(logOpts, logger.WithText())
	}

	return runtime{
		dir:  dir,
		base: cfg.BaseLanguage,
		log:  logger.New(logOpts...),
	}, nil
}
