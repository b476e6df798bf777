// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the lingtex CLI, which renders
// linguistic example lists from exported document trees into LaTeX
// fragments formatted for the gb4e or linguex citation package.
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

// rootCmd is the base command for the lingtex CLI.
var rootCmd = &cobra.Command{
	Use:   "lingtex",
	Short: "Render linguistic examples as gb4e or linguex LaTeX",
	Long: `lingtex transforms document trees exported by a word-processor export
engine into LaTeX example lists. Lists that declare a citation package
(gb4e or linguex) are rendered with that package's commands, including
grammaticality judgments, cross-reference labels, override tags, and
nested sub-examples; everything else passes through untouched.

Each stage is a subcommand: render produces LaTeX output, inspect shows
the annotations extracted from a document, and labels maintains a
cross-document label catalog.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./lingtex.yaml or ~/.config/lingtex/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("lingtex")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "lingtex"))
		}
	}

	viper.SetEnvPrefix("LINGTEX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
