package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Harshitk-cp/stratcheck/internal/config"
	"github.com/Harshitk-cp/stratcheck/internal/outlier"
)

var (
	verbose bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "stratcheck",
	Short: "Find age outliers in stratigraphic transects",
	Long: `stratcheck ranks the samples of a transect by stratigraphic position and
checks each exposure age against its neighbors, top-down and bottom-up.
Samples flagged in both directions are distinct outliers; samples flagged in
one direction are likely outliers.

Transect files may be YAML, JSON or CSV.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	checkCmd.Flags().StringVar(&checkMask, "mask", "", "comma-separated sample indices to include (default all)")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print the result as JSON")
	checkCmd.Flags().BoolVar(&checkPlot, "plot", false, "draw the transect before the report")
	checkCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "re-check whenever the file changes")
	checkCmd.Flags().IntVar(&plotWidth, "width", 0, "plot width in columns")

	batchCmd.Flags().IntVar(&batchStratLevel, "strat-level", 0, "lookahead depth, 2 or 3")
	batchCmd.Flags().BoolVar(&batchExcludeEnds, "exclude-ends", false, "pass samples with no neighbor ahead")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "j", 0, "files checked at once")

	plotCmd.Flags().IntVar(&plotWidth, "width", 0, "plot width in columns")

	rootCmd.AddCommand(checkCmd, batchCmd, plotCmd, versionCmd)
}

// defaultParams returns detection parameters from the environment.
func defaultParams() outlier.Params {
	return outlier.Params{
		StratLevel:  config.OutlierStratLevel(),
		ExcludeEnds: config.OutlierExcludeEnds(),
	}
}

func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
