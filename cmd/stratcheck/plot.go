package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Harshitk-cp/stratcheck/internal/dataset"
	"github.com/Harshitk-cp/stratcheck/internal/outlier"
	"github.com/Harshitk-cp/stratcheck/internal/plot"
)

var plotCmd = &cobra.Command{
	Use:   "plot FILE [STRAT_LEVEL [EXCLUDE_ENDS]]",
	Short: "Draw a transect with its outliers marked",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPlot,
}

func runPlot(cmd *cobra.Command, args []string) error {
	params, err := outlier.ParseArgsWithDefaults(args[1:], defaultParams())
	if err != nil {
		return err
	}

	t, err := dataset.Load(args[0])
	if err != nil {
		return err
	}
	res, err := outlier.Detect(t, nil, params)
	if err != nil {
		return err
	}

	_, err = io.WriteString(cmd.OutOrStdout(), plot.Render(res, width()))
	return err
}
