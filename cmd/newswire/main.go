// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the newswire CLI, a single-shot
// scraper that prints recent news articles for a search term as JSON.
// The process is the transaction: resolve the term, run one scrape, emit
// the result, exit. Success writes the article array to stdout; any failure
// writes a single-line {"error": ...} object to stderr and exits 1.
package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/newswire/internal/news"
	"github.com/pdiddy/newswire/internal/scrape"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd carries the single positional argument: the search term. The
// scrape parameters (7-day window, 15 results, readable URLs) are fixed;
// only the browser environment is configurable.
var rootCmd = &cobra.Command{
	Use:   "newswire <search-term>",
	Short: "Scrape recent news results for a search term as JSON",
	Long: `newswire retrieves recent news articles matching a search term and prints
them to stdout as pretty-printed JSON, for consumption by scripts and
pipelines rather than people.

The scrape is fixed: articles from the last 7 days, at most 15 results,
redirect links decoded to publisher URLs where possible. On any failure the
process prints a single-line {"error": ...} object to stderr and exits 1.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScrape,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./newswire.yaml or ~/.config/newswire/config.yaml)")
}

// initConfig wires viper for the browser-environment settings. Nothing is
// printed on success: stdout belongs to the result set and stderr to the
// error report.
func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("newswire")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "newswire"))
		}
	}

	viper.SetEnvPrefix("NEWSWIRE")
	viper.AutomaticEnv()

	viper.SetDefault("browser.nav_timeout", 60*time.Second)

	viper.ReadInConfig()
}

func runScrape(cmd *cobra.Command, args []string) error {
	provider := scrape.New(scrape.Options{
		BrowserBin: viper.GetString("browser.bin"),
		RemoteURL:  viper.GetString("browser.remote_url"),
		NavTimeout: viper.GetDuration("browser.nav_timeout"),
		Headful:    viper.GetBool("browser.headful"),
	})

	return scrapeTo(cmd.Context(), os.Stdout, provider, args)
}

// scrapeTo is the whole transaction: resolve the term, run one scrape, write
// the result set to w. Any returned error is converted into the stderr
// report by main.
func scrapeTo(ctx context.Context, w io.Writer, p news.Provider, args []string) error {
	term, err := news.ResolveTerm(args)
	if err != nil {
		return err
	}

	articles, err := news.Fetch(ctx, p, term)
	if err != nil {
		return err
	}

	return news.WriteArticles(w, articles)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		news.WriteError(os.Stderr, err)
		os.Exit(1)
	}
}
