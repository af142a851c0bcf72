package main

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xiles84/minimizersa"
)

var buildNoTerminator bool

var buildCmd = &cobra.Command{
	Use:   "build <reference_path> <k> <w> <output_path>",
	Short: "Build a minimizer-space suffix array index from a reference FASTA file",
	Args:  cobra.ExactArgs(4),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&buildNoTerminator, "no-terminator", false,
		"omit the optional synthetic terminal anchor (spec §4.4)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	referencePath, kArg, wArg, outputPath := args[0], args[1], args[2], args[3]

	k, err := strconv.Atoi(kArg)
	if err != nil {
		return argErr(errors.Wrapf(err, "k must be an integer, got %q", kArg))
	}
	w, err := strconv.Atoi(wArg)
	if err != nil {
		return argErr(errors.Wrapf(err, "w must be an integer, got %q", wArg))
	}
	if k < 1 || w < k {
		return argErr(errors.Errorf("invalid parameters: require w >= k >= 1 (got k=%d, w=%d)", k, w))
	}

	start := time.Now()

	reference, err := minimizersa.LoadReference(referencePath)
	if err != nil {
		return ioErr(errors.Wrap(err, "load reference"))
	}

	idx, err := minimizersa.BuildIndex(reference, k, w, !buildNoTerminator)
	if err != nil {
		// Bad parameters, a reserved sentinel byte, and an empty
		// minimizer sequence are all argument-shaped failures per spec §7.
		return argErr(err)
	}

	if err := idx.Save(outputPath); err != nil {
		return ioErr(errors.Wrap(err, "save index"))
	}

	log.Printf("built index: %s minimizers, %s reference bytes, in %s",
		humanize.Comma(int64(len(idx.MinimizerPositions))),
		humanize.Bytes(uint64(len(reference))),
		time.Since(start))
	fmt.Fprintf(cmd.OutOrStdout(), "index written to %s\n", outputPath)

	return nil
}
