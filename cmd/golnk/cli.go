package main

import (
	"fmt"
	"log/slog"

	"github.com/desertwitch/golnk/internal/configuration"
	"github.com/desertwitch/golnk/internal/schema"
	"github.com/desertwitch/golnk/internal/validation"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type cliFlags struct {
	symbolic  bool
	force     bool
	backup    bool
	relative  bool
	suffix    string
	targetDir string
	filesOnly bool
	verbose   bool
	ui        bool
	config    string
	logLevel  string
}

func newRootCmd(app *App) *cobra.Command {
	flags := &cliFlags{}

	cmd := &cobra.Command{
		Use:   "golnk [flags] TARGET... [DESTINATION]",
		Short: "Mirror files and directory trees as hard or symbolic links",
		Long: `golnk mirrors a file, a directory tree or a wildcard pattern into a
destination by creating hard links (default) or symbolic links.

  golnk SRC            link SRC into the working directory
  golnk SRC DST        link SRC to DST, or into DST if it is a directory
  golnk SRC... DIR     link every SRC into the directory DIR
  golnk -t DIR SRC...  link every SRC into the directory DIR`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, app, flags, args)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&flags.symbolic, "symbolic", "s", false, "make symbolic links instead of hard links")
	f.BoolVarP(&flags.force, "force", "f", false, "remove existing destination files")
	f.BoolVarP(&flags.backup, "backup", "b", false, "make a backup of each existing destination file")
	f.BoolVarP(&flags.relative, "relative", "r", false, "create symbolic links relative to link location")
	f.StringVarP(&flags.suffix, "suffix", "S", schema.DefaultBackupSuffix, "override the usual backup suffix")
	f.StringVarP(&flags.targetDir, "target-directory", "t", "", "specify the directory in which to create the links")
	f.BoolVarP(&flags.filesOnly, "files-only", "F", false, "only link files symbolically, recreate directories")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "log every created link")
	f.BoolVarP(&flags.ui, "ui", "u", false, "pick source and destination interactively")
	f.StringVar(&flags.config, "config", "", "read defaults from this file instead of "+configuration.DefaultFile)
	f.StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	return cmd
}

func runRoot(cmd *cobra.Command, app *App, flags *cliFlags, args []string) error {
	config, err := app.configHandler.Load(flags.config)
	if err != nil {
		return fmt.Errorf("(cli) %w", err)
	}

	level, err := resolveLogLevel(cmd.Flags(), flags, config)
	if err != nil {
		return fmt.Errorf("(cli) %w", err)
	}
	setupLogging(app.logManager, app.stderr, level)

	opts := mergeOptions(cmd.Flags(), flags, config.Options)
	if err := validation.ValidateOptions(opts); err != nil {
		return fmt.Errorf("(cli) %w", err)
	}

	slog.Debug("Resolved options",
		"symbolic", opts.Symbolic,
		"relative", opts.Relative,
		"force", opts.Force,
		"backup", opts.Backup,
		"suffix", opts.BackupSuffix,
		"filesOnly", opts.SymlinkFilesOnly,
	)

	if flags.ui {
		return app.LaunchUI(cmd.Context(), cmd.OutOrStdout(), args, opts, level)
	}

	jobs, err := planJobs(app.fsHandler, args, flags.targetDir)
	if err != nil {
		return fmt.Errorf("(cli) %w", err)
	}

	return app.Launch(cmd.Context(), cmd.OutOrStdout(), jobs, opts)
}

// mergeOptions returns the configured options, overridden by every flag
// given explicitly on the command line.
func mergeOptions(set *pflag.FlagSet, flags *cliFlags, configured schema.LinkOptions) schema.LinkOptions {
	opts := configured

	overrides := []struct {
		name   string
		value  bool
		target *bool
	}{
		{"symbolic", flags.symbolic, &opts.Symbolic},
		{"force", flags.force, &opts.Force},
		{"backup", flags.backup, &opts.Backup},
		{"relative", flags.relative, &opts.Relative},
		{"files-only", flags.filesOnly, &opts.SymlinkFilesOnly},
	}

	for _, o := range overrides {
		if set.Changed(o.name) {
			*o.target = o.value
		}
	}

	if set.Changed("suffix") {
		opts.BackupSuffix = flags.suffix
	}

	return opts.Normalized()
}

// resolveLogLevel returns debug for verbose runs, else the explicit flag,
// else the configured level.
func resolveLogLevel(set *pflag.FlagSet, flags *cliFlags, config *configuration.Config) (slog.Level, error) {
	if flags.verbose {
		return slog.LevelDebug, nil
	}

	if set.Changed("log-level") {
		return parseLogLevel(flags.logLevel)
	}

	return parseLogLevel(config.LogLevel)
}
