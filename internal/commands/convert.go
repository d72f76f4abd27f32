package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kmyport-dev/kmyport/internal/config"
	"github.com/kmyport-dev/kmyport/internal/convert"
	"github.com/kmyport-dev/kmyport/internal/kmyfile"
)

// convertFlags holds the flags shared by the convert subcommand and the
// root command's default invocation.
type convertFlags struct {
	configPath string
	suffix     string
	lineBreak  string
	places     int32
}

func (f *convertFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "path to kmyport.yaml")
	cmd.Flags().StringVar(&f.suffix, "suffix", ".journal", "output file suffix")
	cmd.Flags().StringVar(&f.lineBreak, "line-break", "", "token substituted for newlines in memos")
	cmd.Flags().Int32Var(&f.places, "places", 2, "decimal places for amounts")
}

// resolve builds the effective configuration: defaults, then the config
// file if given, then any flags set on the command line.
func (f *convertFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("suffix") {
		cfg.Output.Suffix = f.suffix
	}
	if cmd.Flags().Changed("line-break") {
		cfg.Journal.LineBreak = f.lineBreak
	}
	if cmd.Flags().Changed("places") {
		cfg.Journal.DecimalPlaces = f.places
	}
	return cfg, nil
}

func newConvertCommand(logger *log.Logger) *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert <file>...",
		Short: "Convert one or more documents to ledger journals",
		Long: `Convert reads each document and writes a plain-text ledger journal next
to it. Documents are converted independently; one document's failure does
not stop the rest of the batch.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			return runConvert(logger, cfg, args)
		},
	}

	flags.register(cmd)

	return cmd
}

// runConvert converts each document in turn. Failures are per-document: the
// batch continues, and the command exits non-zero if any document failed.
func runConvert(logger *log.Logger, cfg *config.Config, paths []string) error {
	failed := 0
	for _, path := range paths {
		outPath := path + cfg.Output.Suffix
		stats, err := convertFile(path, outPath, cfg)
		if err != nil {
			logger.Error("conversion failed", "file", path, "error", err)
			failed++
			continue
		}
		logger.Info("converted",
			"file", path,
			"output", outPath,
			"accounts", stats.Accounts,
			"payees", stats.Payees,
			"transactions", stats.Transactions,
		)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(paths))
	}
	return nil
}

func convertFile(inPath, outPath string, cfg *config.Config) (convert.Stats, error) {
	doc, err := kmyfile.Load(inPath)
	if err != nil {
		return convert.Stats{}, err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return convert.Stats{}, fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	conv := convert.New(doc, out, convert.Options{
		LineBreak:     cfg.Journal.LineBreak,
		DecimalPlaces: cfg.Journal.DecimalPlaces,
	})
	stats := conv.Stats()

	// Partial output stays on disk if conversion stops midway.
	if err := conv.Run(); err != nil {
		return stats, err
	}
	return stats, nil
}
