package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Harshitk-cp/stratcheck/internal/dataset"
	"github.com/Harshitk-cp/stratcheck/internal/outlier"
	"github.com/Harshitk-cp/stratcheck/internal/plot"
)

var (
	checkMask  string
	checkJSON  bool
	checkPlot  bool
	checkWatch bool
	plotWidth  int
)

var checkCmd = &cobra.Command{
	Use:   "check FILE [STRAT_LEVEL [EXCLUDE_ENDS]]",
	Short: "Report outliers in a transect file",
	Long: `Loads a transect and prints its distinct and likely outliers.

STRAT_LEVEL is the number of neighbors ahead a sample is compared with (2 or
3). EXCLUDE_ENDS decides whether a sample with no neighbor ahead passes
(true) or is flagged (false). Both default to OUTLIER_STRAT_LEVEL and
OUTLIER_EXCLUDE_ENDS.

Examples:
  stratcheck check ridge.yaml
  stratcheck check ridge.csv 2 true --mask 0,1,3
  stratcheck check ridge.yaml --plot --watch`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	params, err := outlier.ParseArgsWithDefaults(args[1:], defaultParams())
	if err != nil {
		return err
	}
	mask, err := outlier.ParseMask(checkMask)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	check := func() error {
		return checkFile(out, path, mask, params)
	}

	if !checkWatch {
		return check()
	}
	return watchFile(cmd.Context(), path, check, cmd.ErrOrStderr())
}

func checkFile(w io.Writer, path string, mask outlier.Mask, params outlier.Params) error {
	t, err := dataset.Load(path)
	if err != nil {
		return err
	}

	res, err := outlier.Detect(t, mask, params)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("transect checked",
		zap.String("file", path),
		zap.String("status", string(res.Status)),
		zap.Int("samples", len(res.Entries)),
		zap.Int("distinct", len(res.Distinct)),
		zap.Int("likely", len(res.Likely)))

	if checkJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if checkPlot {
		if _, err := io.WriteString(w, plot.Render(res, width())); err != nil {
			return err
		}
		if !res.Applicable() {
			return nil
		}
	}
	_, err = io.WriteString(w, res.Report())
	return err
}

func width() int {
	if plotWidth > 0 {
		return plotWidth
	}
	return plot.DefaultWidth
}
