package main

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/xiles84/minimizersa"
)

var (
	queryConfigPath string
	queryMode       string
)

var queryCmd = &cobra.Command{
	Use:   "query <index_path> <queries_path> <output_path> [partial_check_ct] [delta_check_ct]",
	Short: "Query a minimizer-space suffix array index",
	Args:  cobra.RangeArgs(3, 5),
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryConfigPath, "config", "", "YAML file overriding partial/delta check counts and mode")
	queryCmd.Flags().StringVar(&queryMode, "mode", "", `verification mode: "" (default, filter-only) or "full"`)
}

// queryFileConfig is the shape of --config's YAML file. Flags and
// positional arguments take precedence over whatever a loaded config sets,
// field by field, per SPEC_FULL.md's configuration section.
type queryFileConfig struct {
	PartialCheckCt *int    `yaml:"partial_check_ct"`
	DeltaCheckCt   *int    `yaml:"delta_check_ct"`
	Mode           *string `yaml:"mode"`
}

func runQuery(cmd *cobra.Command, args []string) error {
	indexPath, queriesPath, outputPath := args[0], args[1], args[2]

	opts := minimizersa.QueryOptions{}

	if queryConfigPath != "" {
		cfg, err := loadQueryConfig(queryConfigPath)
		if err != nil {
			return ioErr(err)
		}
		if cfg.PartialCheckCt != nil {
			opts.PartialCheckCt = *cfg.PartialCheckCt
		}
		if cfg.DeltaCheckCt != nil {
			opts.DeltaCheckCt = *cfg.DeltaCheckCt
		}
		if cfg.Mode != nil {
			opts.Mode = minimizersa.VerificationMode(*cfg.Mode)
		}
	}

	if len(args) >= 4 {
		n, err := strconv.Atoi(args[3])
		if err != nil {
			return argErr(errors.Wrapf(err, "partial_check_ct must be an integer, got %q", args[3]))
		}
		opts.PartialCheckCt = n
	}
	if len(args) >= 5 {
		n, err := strconv.Atoi(args[4])
		if err != nil {
			return argErr(errors.Wrapf(err, "delta_check_ct must be an integer, got %q", args[4]))
		}
		opts.DeltaCheckCt = n
	}
	if cmd.Flags().Changed("mode") {
		opts.Mode = minimizersa.VerificationMode(queryMode)
	}

	idx, err := minimizersa.LoadIndex(indexPath)
	if err != nil {
		return ioErr(errors.Wrap(err, "load index"))
	}
	acc := minimizersa.BuildPrefixAccelerator(idx)

	queriesFile, err := os.Open(queriesPath)
	if err != nil {
		return ioErr(errors.Wrapf(err, "open queries file %q", queriesPath))
	}
	defer queriesFile.Close()

	records, err := minimizersa.ReadQueryRecords(queriesFile)
	if err != nil {
		return ioErr(err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return ioErr(errors.Wrapf(err, "create output file %q", outputPath))
	}
	defer out.Close()

	for _, rec := range records {
		var positions []int
		if len(rec.Sequence) >= idx.W {
			positions = minimizersa.Query(idx, acc, rec.Sequence, opts)
		}
		if err := minimizersa.WriteMatchLine(out, rec.Name, positions); err != nil {
			return ioErr(err)
		}
	}

	return nil
}

func loadQueryConfig(path string) (*queryFileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read query config %q", path)
	}
	var cfg queryFileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse query config %q", path)
	}
	return &cfg, nil
}
