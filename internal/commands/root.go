package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kmyport-dev/kmyport/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered. File paths passed directly to the root command are converted
// as if given to the convert subcommand; with no arguments the usage
// message is printed.
func NewRootCommand() *cobra.Command {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "kmyport",
	})

	flags := &convertFlags{}

	rootCmd := &cobra.Command{
		Use:     "kmyport [file...]",
		Short:   "Convert KMyMoney documents to plain-text ledger journals",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			return runConvert(logger, cfg, args)
		},
	}

	flags.register(rootCmd)

	rootCmd.AddCommand(newConvertCommand(logger))
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}
