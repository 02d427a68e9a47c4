package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

// log is shared by all subcommands; solve hands it to the solver so search
// progress lands on the same stream.
var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "npuzzle",
	Short: "Solve and generate sliding-tile puzzles",
	Long: `npuzzle solves the k×k sliding-tile puzzle (1 ≤ k ≤ 5) with IDA*
search and generates random solvable boards for benchmarking.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
	SilenceUsage: true,
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
