// Package commands implements the nearpair command line.
package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose bool
	config  string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "nearpair",
		Short: "Nearest-pair agglomerative clustering of 3D points",
		Long: `nearpair - cluster 3D integer points by repeatedly joining the nearest pair.

Commands:
  run       Cluster an input file for a step budget and print the answer
  history   List recorded runs from a SQLite history database
  version   Version information

Examples:
  nearpair run input.txt
  nearpair run input.txt --budget 1000 --method heap --format json
  nearpair run input.txt --db runs.db && nearpair history --db runs.db`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "verbose (debug) logging on stderr")
	root.PersistentFlags().StringVarP(&g.config, "config", "c", "", "YAML configuration file")

	root.AddCommand(newRunCmd(g), newHistoryCmd(g), newVersionCmd())

	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// newLogger returns a text slog logger on w; verbose enables debug records.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
