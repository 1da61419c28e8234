package cmd

import (
	"github.com/JA3G3R/modescan/report"
	"github.com/JA3G3R/modescan/scanners"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	scanFormat   string
	scanSnippets bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [directory]",
	Short: "Scan source files for demo/live mode issues",
	Long: `Scan every source file directly inside directory (default: --folder) for local
mode toggles, hardcoded demo flags and direct "Demo Mode" checks. The exit
status does not depend on what was found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	if err := report.CheckFormat(scanFormat, report.FormatText, report.FormatTable, report.FormatJSON); err != nil {
		return err
	}

	dir := folder
	if len(args) == 1 {
		dir = args[0]
	}
	out := cmd.OutOrStdout()

	if scanFormat == report.FormatText {
		report.PrintScanBanner(out, dir)
	}

	scanner := scanners.NewDemoModeScanner(dir, logger)
	scanner.Suffix = settings.Suffix
	issues, err := scanner.ScanFiles()
	if err != nil {
		return err
	}
	logger.Debug("Scan finished", zap.String("dir", dir), zap.Int("files", len(issues)), zap.Int("issues", issues.Total()))

	if scanFormat != report.FormatText {
		return report.PrintFindings(out, issues.Findings(), scanFormat)
	}

	report.PrintScanReport(out, issues, settings.LineWidth)
	if len(issues) > 0 {
		report.PrintGuides(out, settings.Guides)
		if scanSnippets {
			report.PrintSnippets(out, scanner.FixSnippets())
		}
	}
	return nil
}

func init() {
	scanCmd.Flags().StringVar(&scanFormat, "format", report.FormatText, "output format (text|table|json)")
	scanCmd.Flags().BoolVar(&scanSnippets, "snippets", false, "append fix snippets when issues are found")
	rootCmd.AddCommand(scanCmd)
}
