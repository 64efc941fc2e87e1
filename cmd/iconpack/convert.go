// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/iconpack/internal/convert"
	"github.com/pdiddy/iconpack/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Scan the source tree and emit the icon document",
	Long: `Convert walks the source directory, extracts the icon definition
embedded in each candidate file, and writes all records to one output
document. Files without a recognizable definition are skipped with a
notice; files whose palette contains an unclassifiable token are
reported as failed and excluded. The output file is fully replaced.`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := convertConfig(cmd)

	summary, err := convert.Run(cfg, os.Stdout)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", summary.Failed)
	}
	return nil
}

// convertConfig resolves the conversion settings: explicit flags win,
// then config file / environment, then built-in defaults.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	cfg := types.ConvertConfig{
		SourceDir:  viper.GetString("convert.source_dir"),
		Extension:  viper.GetString("convert.extension"),
		OutputFile: viper.GetString("convert.output_file"),
	}

	if cmd.Flags().Changed("source-dir") {
		cfg.SourceDir, _ = cmd.Flags().GetString("source-dir")
	}
	if cmd.Flags().Changed("ext") {
		cfg.Extension, _ = cmd.Flags().GetString("ext")
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputFile, _ = cmd.Flags().GetString("output")
	}

	return cfg
}

func init() {
	convertCmd.Flags().String("source-dir", "distros", "root directory scanned for icon definitions")
	convertCmd.Flags().String("ext", ".py", "file suffix of candidate definition files")
	convertCmd.Flags().String("output", "data/icons.yaml", "path of the emitted document")

	rootCmd.AddCommand(convertCmd)
}
