package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JA3G3R/modescan/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	folder     string
	configPath string
	verbose    bool
	noColor    bool

	settings = config.Default()
	logger   = zap.NewNop()
)

// errFixNotApplied makes the process exit 1 without printing anything
// beyond the diagnostic report itself.
var errFixNotApplied = errors.New("demo mode fix not applied")

var rootCmd = &cobra.Command{
	Use:   "modescan",
	Short: "modescan finds demo/live mode toggle bugs in dashboard sources",
	Long: `modescan scans Streamlit dashboard modules for local demo/live mode toggles
and verifies that the global session_state mode fix was applied.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}

		path, required := configPath, true
		if path == "" {
			path, required = filepath.Join(folder, config.DefaultFile), false
		}
		s, err := config.Load(path, required)
		if err != nil {
			return err
		}
		settings = s

		l, err := newLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		logger.Debug("Loaded settings", zap.String("config", path), zap.String("suffix", settings.Suffix))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFixNotApplied) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// newLogger writes human readable records to stderr.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	cfg.EncoderConfig.CallerKey = ""
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&folder, "folder", "f", ".", "Folder containing the relevant files")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "HCL config file (default <folder>/"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}
