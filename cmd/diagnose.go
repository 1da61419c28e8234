package cmd

import (
	"errors"
	"path/filepath"

	"github.com/JA3G3R/modescan/report"
	"github.com/JA3G3R/modescan/scanners"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	diagnoseFile   string
	diagnoseFormat string
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Check whether the demo mode fix was applied",
	Long: `Verify that the target module no longer uses a local view_mode toggle and
reads the mode from st.session_state instead. Exits 1 when the fix is missing
or the file does not exist.`,
	Args: cobra.NoArgs,
	RunE: runDiagnose,
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	if err := report.CheckFormat(diagnoseFormat, report.FormatText, report.FormatJSON); err != nil {
		return err
	}

	target := settings.Target
	if diagnoseFile != "" {
		target = diagnoseFile
	}
	path := target
	if !filepath.IsAbs(path) {
		path = filepath.Join(folder, target)
	}

	d, err := scanners.CheckFixApplied(path)
	missing := errors.Is(err, scanners.ErrTargetNotFound)
	if err != nil && !missing {
		return err
	}
	logger.Debug("Diagnosis finished", zap.String("file", path), zap.Bool("missing", missing), zap.Bool("passed", d.Passed))

	out := cmd.OutOrStdout()
	if diagnoseFormat == report.FormatJSON {
		if err := report.PrintDiagnosisJSON(out, d); err != nil {
			return err
		}
	} else {
		report.PrintDiagnosticIntro(out)
		if missing {
			dir, absErr := filepath.Abs(filepath.Dir(path))
			if absErr != nil {
				dir = filepath.Dir(path)
			}
			report.PrintMissingTarget(out, filepath.Base(path), dir)
		} else {
			report.PrintDiagnosis(out, d)
		}
		report.PrintDiagnosticStatus(out, d.Passed)
	}

	if !d.Passed {
		return errFixNotApplied
	}
	return nil
}

func init() {
	diagnoseCmd.Flags().StringVar(&diagnoseFile, "file", "", "file to verify (default "+scanners.DefaultTarget+")")
	diagnoseCmd.Flags().StringVar(&diagnoseFormat, "format", report.FormatText, "output format (text|json)")
	rootCmd.AddCommand(diagnoseCmd)
}
