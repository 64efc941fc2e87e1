// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the iconpack CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the iconpack CLI.
var rootCmd = &cobra.Command{
	Use:   "iconpack",
	Short: "Convert embedded ASCII-art icon definitions into one icon document",
	Long: `iconpack scans a tree of source files that each embed a stylized
ASCII-art definition (display aliases, a terminal color palette, and an
art template with color placeholders), extracts the embedded data, and
re-emits it as a single structured document.

The conversion is a one-shot batch pass: convert reads every candidate
file and writes one output document. The optional index and search
commands maintain a local SQLite index over the same source tree.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./iconpack.yaml or ~/.config/iconpack/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("iconpack")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "iconpack"))
		}
	}

	viper.SetEnvPrefix("ICONPACK")
	viper.AutomaticEnv()

	viper.SetDefault("convert.source_dir", "distros")
	viper.SetDefault("convert.extension", ".py")
	viper.SetDefault("convert.output_file", filepath.Join("data", "icons.yaml"))
	viper.SetDefault("index.index_dir", "index")
	viper.SetDefault("index.max_results", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
