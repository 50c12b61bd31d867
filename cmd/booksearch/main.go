// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the booksearch CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/booksearch/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the booksearch CLI.
var rootCmd = &cobra.Command{
	Use:   "booksearch",
	Short: "Search the Open Library catalog by book title",
	Long: `booksearch looks up books by title in the Open Library catalog.

The tui subcommand opens an interactive search that queries as you type and
pages through results twenty at a time. The search subcommand runs a single
query and prints one page as a table, JSON, or YAML.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./booksearch.yaml or ~/.config/booksearch/config.yaml)")
	pf.String("search-url", types.DefaultSearchURL, "Open Library search endpoint")
	pf.String("covers-url", types.DefaultCoversURL, "Open Library cover image base URL")
	pf.String("catalog-url", types.DefaultCatalogURL, "base URL prefixed to record keys for detail links")
	pf.Duration("timeout", types.DefaultTimeout, "HTTP request timeout")
	pf.String("user-agent", types.DefaultUserAgent, "User-Agent header sent to Open Library")
	pf.Bool("verbose", false, "enable debug logging")

	bindFlag(rootCmd, "api.search_url", "search-url")
	bindFlag(rootCmd, "api.covers_url", "covers-url")
	bindFlag(rootCmd, "api.catalog_url", "catalog-url")
	bindFlag(rootCmd, "http.timeout", "timeout")
	bindFlag(rootCmd, "http.user_agent", "user-agent")
	bindFlag(rootCmd, "log.verbose", "verbose")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("booksearch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "booksearch"))
		}
	}

	viper.SetEnvPrefix("BOOKSEARCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the search configuration from flags, environment,
// and config file.
func loadConfig() types.SearchConfig {
	cfg := types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: viper.GetString("http.user_agent"),
		},
		CatalogConfig: types.CatalogConfig{
			SearchURL:  viper.GetString("api.search_url"),
			CoversURL:  viper.GetString("api.covers_url"),
			CatalogURL: viper.GetString("api.catalog_url"),
		},
		Debounce: viper.GetDuration("search.debounce"),
	}
	return cfg.WithDefaults()
}

// newLogger builds a zap logger writing JSON lines to path, or to stderr
// when path is empty.
func newLogger(path string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if viper.GetBool("log.verbose") {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	if path != "" {
		zcfg.OutputPaths = []string{path}
		zcfg.ErrorOutputPaths = []string{path}
	}
	return zcfg.Build()
}

// bindFlag binds a config key to a flag of cmd, panicking on programmer error.
func bindFlag(cmd *cobra.Command, key, flag string) {
	f := cmd.Flags().Lookup(flag)
	if f == nil {
		f = cmd.PersistentFlags().Lookup(flag)
	}
	if err := viper.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("binding %s to --%s: %v", key, flag, err))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
