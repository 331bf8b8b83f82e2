// Command basicops-verify executes cross-language parity vector suites
// against the Go basicops implementation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/scalecode-solutions/basicops/internal/parity"
)

var (
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "basicops-verify",
	Short: "Cross-language parity verification for basicops",
	Long: `basicops-verify evaluates YAML test-vector suites against the Go
implementation of the basicops operation surface.

The same vector files are consumed by the sibling implementations in other
languages; a suite that passes everywhere demonstrates behavioral parity.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run [files...]",
	Short: "Execute vector suites and report mismatches",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		suites, err := parity.LoadSuites(args)
		if err != nil {
			return err
		}

		report := parity.Run(suites)
		for _, sr := range report.Suites {
			logger.Info("suite complete",
				zap.String("run_id", report.RunID),
				zap.String("suite", sr.Name),
				zap.Int("passed", sr.Passed),
				zap.Int("failed", sr.Failed))
			for _, f := range sr.Failures {
				if f.Err != "" {
					fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %s/%s (%s): %s\n", f.Suite, f.Name, f.Op, f.Err)
					continue
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %s/%s (%s): mismatch (-want +got):\n%s\n", f.Suite, f.Name, f.Op, f.Diff)
			}
		}

		if !report.OK() {
			return fmt.Errorf("%d of %d cases failed", report.Failed, report.Passed+report.Failed)
		}
		logger.Info("parity verified",
			zap.String("run_id", report.RunID),
			zap.Int("cases", report.Passed))
		return nil
	},
}

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List the operation identifiers vector files may use",
	Run: func(cmd *cobra.Command, args []string) {
		for _, op := range parity.Operations() {
			fmt.Fprintln(cmd.OutOrStdout(), op)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(opsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
