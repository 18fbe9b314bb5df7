package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/glotscan/glotscan/internal/config"
	"github.com/glotscan/glotscan/internal/pipeline"
	"github.com/glotscan/glotscan/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// scanCmd runs the one-shot analysis and prints the report.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan local artifacts and report candidate languages",
	Long: `Scan reads the system locale, keyboard layouts, browser profiles, the
Steam config, and the music folder, and prints a consolidated report of
candidate languages with supporting evidence. Missing artifacts (no
Chrome, no Steam, empty music folder) simply contribute nothing.

Examples:
  glotscan scan
  glotscan scan --format json
  glotscan scan --music-dir /srv/media/music --examples 5
  glotscan scan --tables my-tld-rules.yaml`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		p, err := pipeline.New(pipeline.Options{
			ExampleCap:   cfg.Scan.ExampleCap,
			HistoryLimit: cfg.Scan.HistoryLimit,
			MusicDir:     cfg.Scan.MusicDir,
			TablesPath:   cfg.Tables.Path,
			Sources:      cfg.Scan.Sources,
			Logger:       slog.Default(),
		})
		if err != nil {
			return err
		}

		result := p.Run(cmd.Context())

		out := cmd.OutOrStdout()
		if cfg.Output.File != "" {
			f, err := os.Create(cfg.Output.File)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()
			out = f
		}
		return renderReport(out, result, cfg.Output.Format)
	},
}

func renderReport(w io.Writer, r *report.Report, format string) error {
	switch format {
	case config.FormatJSON:
		return report.RenderJSON(w, r)
	case config.FormatText:
		return report.RenderText(w, r)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().String("format", config.FormatText, "output format (text, json)")
	scanCmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")
	scanCmd.Flags().String("music-dir", "", "music folder to scan (default is the platform's ~/Music)")
	scanCmd.Flags().Int("examples", 3, "example labels kept per entry (0 = unlimited)")
	scanCmd.Flags().Int("history-limit", 0, "max rows read per history database (0 = unlimited)")
	scanCmd.Flags().String("tables", "", "YAML file replacing the built-in domain-language tables")
	scanCmd.Flags().StringSlice("source", nil, "restrict the scan to the named sources (firefox, chrome, steam, music-folder)")

	_ = viper.BindPFlag("output.format", scanCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("output.file", scanCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("scan.music_dir", scanCmd.Flags().Lookup("music-dir"))
	_ = viper.BindPFlag("scan.example_cap", scanCmd.Flags().Lookup("examples"))
	_ = viper.BindPFlag("scan.history_limit", scanCmd.Flags().Lookup("history-limit"))
	_ = viper.BindPFlag("tables.path", scanCmd.Flags().Lookup("tables"))
	_ = viper.BindPFlag("scan.sources", scanCmd.Flags().Lookup("source"))
}
