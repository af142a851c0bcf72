package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xiles84/minimizersa"
)

var inspectCmd = &cobra.Command{
	Use:   "inspectsa <index_path> <sample_rate> <output_path>",
	Short: "Report base-space LCP statistics and SA samples (not part of the query path)",
	Args:  cobra.ExactArgs(3),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	indexPath, rateArg, outputPath := args[0], args[1], args[2]

	rate, err := strconv.Atoi(rateArg)
	if err != nil || rate < 1 {
		return argErr(errors.Errorf("sample_rate must be a positive integer, got %q", rateArg))
	}

	idx, err := minimizersa.LoadIndex(indexPath)
	if err != nil {
		return ioErr(errors.Wrap(err, "load index"))
	}

	report, err := minimizersa.Inspect(idx.Reference, rate)
	if err != nil {
		return argErr(err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return ioErr(errors.Wrapf(err, "create output file %q", outputPath))
	}
	defer out.Close()

	samples := make([]string, len(report.Samples))
	for i, s := range report.Samples {
		samples[i] = strconv.Itoa(s)
	}

	fmt.Fprintf(out, "%g\n%g\n%g\n%s\n",
		report.MeanLCP, report.MedianLCP, report.MaxLCP, strings.Join(samples, "\t"))

	fmt.Fprintf(cmd.OutOrStdout(), "inspected %s over %s reference bytes\n",
		indexPath, humanize.Bytes(uint64(len(idx.Reference))))

	return nil
}
