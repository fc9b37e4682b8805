package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/postboard/internal/config"
)

var (
	cfgFile     string
	verbose     bool
	baseURLFlag string
)

var rootCmd = &cobra.Command{
	Use:   "postboard",
	Short: "Minimal front-end for a blog-post REST API",
	Long: `Postboard lists, searches, sorts, creates, edits and deletes posts held by
a blog-post REST API. It serves a small browser front-end, offers the same
operations on the command line and over MCP, and ships a reference API
backed by SQLite.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "API base URL, e.g. http://localhost:5002/api (saved to the config file)")
}
