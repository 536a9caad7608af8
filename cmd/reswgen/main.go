// Package main provides the CLI entrypoint for reswgen.
//
// reswgen builds the strongly typed model of a resource file:
//   - Reads resource entries from a YAML interchange list
//   - Groups plural and variant families
//   - Resolves #Format / #FormatNet comment tags into accessor parameters
//   - Exports the model as YAML for language emitters
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"reswgen/internal/config"
)

type rootOptions struct {
	configFile string
	envFile    string
	verbose    bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "reswgen",
		Short:        "Build strongly typed localization models from resource files",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", config.DefaultFile, "config file")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "env file loaded before reading RESWGEN_* variables")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log informational diagnostics")

	cmd.AddCommand(newBuildCommand(opts), newCheckCommand(opts), newNamespaceCommand())

	return cmd
}

func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
